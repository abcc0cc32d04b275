package school

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

var (
	gradeTypeTag  = "gradetype"
	gradeTypeText = "must be one of quiz, exam or assignment"

	attendanceStatusTag  = "attendancestatus"
	attendanceStatusText = "must be one of present, absent or late"
)

func init() {
	_ = core.Validate.RegisterValidation(gradeTypeTag, gradeTypeValidation)
	core.RegisterCustomTranslation(gradeTypeTag, gradeTypeText)

	_ = core.Validate.RegisterValidation(attendanceStatusTag, attendanceStatusValidation)
	core.RegisterCustomTranslation(attendanceStatusTag, attendanceStatusText)
}

func gradeTypeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case GradeTypeQuiz, GradeTypeExam, GradeTypeAssignment:
		return true
	}
	return false
}

func attendanceStatusValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}
