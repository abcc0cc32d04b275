package school

import "strings"

// Filters are applied by the caller over a Scope's results: a case-insensitive
// substring search over displayed text fields, AND-combined with any active
// categorical filter. Empty fields match everything.

type (
	StudentFilter struct {
		Search string `query:"search"`
		Grade  string `query:"grade"`
	}

	TeacherFilter struct {
		Search  string `query:"search"`
		Subject string `query:"subject"`
	}

	ClassFilter struct {
		Search string `query:"search"`
		Grade  string `query:"grade"`
	}

	GradeFilter struct {
		ClassID string `query:"class_id"`
		Type    string `query:"type"`
	}

	AttendanceFilter struct {
		ClassID string `query:"class_id"`
		Date    string `query:"date"`
		Status  string `query:"status"`
	}

	QueryFilter struct {
		Status string `query:"status"`
	}
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func FilterStudents(students []Student, f StudentFilter) []Student {
	filtered := make([]Student, 0, len(students))
	for _, s := range students {
		if f.Search != "" && !containsFold(s.Name, f.Search) && !containsFold(s.Email, f.Search) {
			continue
		}
		if f.Grade != "" && s.Grade != f.Grade {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func FilterTeachers(teachers []Teacher, f TeacherFilter) []Teacher {
	filtered := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if f.Search != "" && !containsFold(t.Name, f.Search) && !containsFold(t.Email, f.Search) && !containsFold(t.Subject, f.Search) {
			continue
		}
		if f.Subject != "" && t.Subject != f.Subject {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func FilterClasses(classes []Class, f ClassFilter) []Class {
	filtered := make([]Class, 0, len(classes))
	for _, c := range classes {
		if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Subject, f.Search) {
			continue
		}
		if f.Grade != "" && c.Grade != f.Grade {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func FilterGrades(grades []Grade, f GradeFilter) []Grade {
	filtered := make([]Grade, 0, len(grades))
	for _, g := range grades {
		if f.ClassID != "" && g.ClassID != f.ClassID {
			continue
		}
		if f.Type != "" && g.Type != f.Type {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

func FilterAttendance(records []Attendance, f AttendanceFilter) []Attendance {
	filtered := make([]Attendance, 0, len(records))
	for _, a := range records {
		if f.ClassID != "" && a.ClassID != f.ClassID {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func FilterQueries(queries []StudentQuery, f QueryFilter) []StudentQuery {
	filtered := make([]StudentQuery, 0, len(queries))
	for _, q := range queries {
		if f.Status != "" && q.Status != f.Status {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}
