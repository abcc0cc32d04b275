package school

import "errors"

var ErrNotFound = errors.New("record not found")

// Repository owns the six collections. Collections are insertion-ordered
// sequences; every query method returns them in insertion order.
//
// The mutation contract is deliberately permissive, matching the system's
// store semantics: Add* appends without uniqueness or referential checks,
// Update* replaces the record whose id matches and is a silent no-op when
// none does, Delete* filters out by id and is a silent no-op when absent.
// Deletes never cascade; a dangling reference resolves to "not found" at
// join time, not to an error.
type Repository interface {
	AddStudent(s Student) error
	UpdateStudent(s Student) error
	DeleteStudent(id string) error
	AllStudents() ([]Student, error)
	GetStudentByID(id string) (Student, error)
	GetStudentByEmail(email string) (Student, error)

	AddTeacher(t Teacher) error
	UpdateTeacher(t Teacher) error
	DeleteTeacher(id string) error
	AllTeachers() ([]Teacher, error)
	GetTeacherByID(id string) (Teacher, error)
	GetTeacherByEmail(email string) (Teacher, error)

	AddClass(c Class) error
	UpdateClass(c Class) error
	DeleteClass(id string) error
	AllClasses() ([]Class, error)
	GetClassByID(id string) (Class, error)

	AddGrade(g Grade) error
	UpdateGrade(g Grade) error
	DeleteGrade(id string) error
	AllGrades() ([]Grade, error)

	AddAttendance(a Attendance) error
	DeleteAttendance(id string) error
	AllAttendance() ([]Attendance, error)
	// AttendanceByClassDate returns the records for one class-day; the
	// re-take flow deletes these before inserting replacements.
	AttendanceByClassDate(classID, date string) ([]Attendance, error)

	AddQuery(q StudentQuery) error
	UpdateQuery(q StudentQuery) error
	DeleteQuery(id string) error
	AllQueries() ([]StudentQuery, error)
	GetQueryByID(id string) (StudentQuery, error)
}
