package school

import (
	"github.com/trezcool/shule/core"
)

// Grade types
const (
	GradeTypeQuiz       = "quiz"
	GradeTypeExam       = "exam"
	GradeTypeAssignment = "assignment"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Query statuses
const (
	QueryPending  = "pending"
	QueryAnswered = "answered"
)

type Student struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Grade          string `json:"grade"`
	Class          string `json:"class"`
	Avatar         string `json:"avatar"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	ParentName     string `json:"parent_name"`
	ParentPhone    string `json:"parent_phone"`
	EnrollmentDate string `json:"enrollment_date"`
}

type Teacher struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Subject       string   `json:"subject"`
	Experience    int      `json:"experience"`
	Avatar        string   `json:"avatar"`
	Qualification string   `json:"qualification"`
	Classes       []string `json:"classes"`
	Salary        int      `json:"salary"`
}

type Class struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Grade            string   `json:"grade"`
	Subject          string   `json:"subject"`
	TeacherID        string   `json:"teacher_id"`
	Schedule         string   `json:"schedule"`
	Room             string   `json:"room"`
	Capacity         int      `json:"capacity"`
	EnrolledStudents []string `json:"enrolled_students"`
}

// Enrolls reports whether the student id is in the class roster.
func (c Class) Enrolls(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}

type Grade struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	ClassID   string  `json:"class_id"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Type      string  `json:"type"` // quiz | exam | assignment
}

type Attendance struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	ClassID   string `json:"class_id"`
	Date      string `json:"date"`   // YYYY-MM-DD
	Status    string `json:"status"` // present | absent | late
}

type StudentQuery struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	TeacherID   string `json:"teacher_id"`
	ClassID     string `json:"class_id"`
	Message     string `json:"message"`
	Response    string `json:"response,omitempty"`
	Date        string `json:"date"`   // YYYY-MM-DD
	Status      string `json:"status"` // pending | answered
	FromTeacher bool   `json:"from_teacher,omitempty"`
}

// Inputs. Each New* carries the information needed to create a record; the
// service fills in the id. Updates take the full record — the stored row is
// replaced wholesale, matching the store's replace-by-id contract.

type NewStudent struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Grade          string `json:"grade" validate:"required"`
	Class          string `json:"class"`
	Avatar         string `json:"avatar"`
	DateOfBirth    string `json:"date_of_birth"`
	Address        string `json:"address"`
	ParentName     string `json:"parent_name"`
	ParentPhone    string `json:"parent_phone"`
	EnrollmentDate string `json:"enrollment_date"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

type NewTeacher struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject" validate:"required"`
	Experience    int    `json:"experience" validate:"min=0"`
	Avatar        string `json:"avatar"`
	Qualification string `json:"qualification"`
	Salary        int    `json:"salary" validate:"min=0"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	return core.Validate.Struct(nt)
}

type NewClass struct {
	Name             string   `json:"name" validate:"required"`
	Grade            string   `json:"grade" validate:"required"`
	Subject          string   `json:"subject" validate:"required"`
	TeacherID        string   `json:"teacher_id" validate:"required"`
	Schedule         string   `json:"schedule"`
	Room             string   `json:"room"`
	Capacity         int      `json:"capacity" validate:"min=0"`
	EnrolledStudents []string `json:"enrolled_students"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

type NewGrade struct {
	StudentID string  `json:"student_id" validate:"required"`
	ClassID   string  `json:"class_id" validate:"required"`
	Subject   string  `json:"subject"`
	Score     float64 `json:"score" validate:"min=0"`
	MaxScore  float64 `json:"max_score" validate:"min=0"`
	Date      string  `json:"date"`
	Type      string  `json:"type" validate:"required,gradetype"`
}

func (ng *NewGrade) Validate() error { return core.Validate.Struct(ng) }

// AttendanceSheet is one class-day submission: one status per student.
// Recording a sheet replaces any previously recorded statuses for the same
// (class, date) pair.
type AttendanceSheet struct {
	ClassID  string            `json:"class_id" validate:"required"`
	Date     string            `json:"date" validate:"required"`
	Statuses map[string]string `json:"statuses" validate:"required,dive,attendancestatus"`
}

func (as *AttendanceSheet) Validate() error { return core.Validate.Struct(as) }

type NewQuery struct {
	StudentID string `json:"student_id" validate:"required"`
	ClassID   string `json:"class_id"`
	Message   string `json:"message" validate:"required"`
	// FromTeacher marks a teacher-initiated message; the class is then resolved
	// from the (teacher, student) pair instead of being provided.
	FromTeacher bool   `json:"from_teacher"`
	TeacherID   string `json:"teacher_id"`
}

func (nq *NewQuery) Validate() error {
	nq.Message = core.CleanString(nq.Message)
	return core.Validate.Struct(nq)
}
