package core

import "strings"

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a domain-level validation failure that the input
// validator cannot express, either as a plain message or per field.
type ValidationError struct {
	msg    string
	Fields []FieldError
}

func NewValidationError(msg string, flds ...FieldError) error {
	return &ValidationError{msg: msg, Fields: flds}
}

func (err *ValidationError) Error() string {
	if err.msg != "" {
		return err.msg
	}
	parts := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}
