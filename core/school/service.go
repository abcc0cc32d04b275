package school

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core"
)

type Service struct {
	repo    Repository
	mailSvc core.EmailService
}

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func newID() string { return uuid.NewString() }

func today() string { return time.Now().UTC().Format("2006-01-02") }

// Students

func (svc *Service) CreateStudent(ns NewStudent) (Student, error) {
	s := Student{
		ID:             newID(),
		Name:           ns.Name,
		Email:          ns.Email,
		Phone:          ns.Phone,
		Grade:          ns.Grade,
		Class:          ns.Class,
		Avatar:         ns.Avatar,
		DateOfBirth:    ns.DateOfBirth,
		Address:        ns.Address,
		ParentName:     ns.ParentName,
		ParentPhone:    ns.ParentPhone,
		EnrollmentDate: ns.EnrollmentDate,
	}
	if s.EnrollmentDate == "" {
		s.EnrollmentDate = today()
	}
	return s, svc.repo.AddStudent(s)
}

func (svc *Service) UpdateStudent(s Student) error {
	return svc.repo.UpdateStudent(s)
}

// DeleteStudent removes the student record only. Grades, attendance and class
// rosters referencing the id are left in place and resolve as unknown
// downstream.
func (svc *Service) DeleteStudent(id string) error {
	return svc.repo.DeleteStudent(id)
}

func (svc *Service) AllStudents() ([]Student, error) {
	return svc.repo.AllStudents()
}

// Teachers

func (svc *Service) CreateTeacher(nt NewTeacher) (Teacher, error) {
	t := Teacher{
		ID:            newID(),
		Name:          nt.Name,
		Email:         nt.Email,
		Phone:         nt.Phone,
		Subject:       nt.Subject,
		Experience:    nt.Experience,
		Avatar:        nt.Avatar,
		Qualification: nt.Qualification,
		Salary:        nt.Salary,
	}
	return t, svc.repo.AddTeacher(t)
}

func (svc *Service) UpdateTeacher(t Teacher) error {
	return svc.repo.UpdateTeacher(t)
}

func (svc *Service) DeleteTeacher(id string) error {
	return svc.repo.DeleteTeacher(id)
}

func (svc *Service) AllTeachers() ([]Teacher, error) {
	return svc.repo.AllTeachers()
}

// Classes

func (svc *Service) CreateClass(nc NewClass) (Class, error) {
	c := Class{
		ID:               newID(),
		Name:             nc.Name,
		Grade:            nc.Grade,
		Subject:          nc.Subject,
		TeacherID:        nc.TeacherID,
		Schedule:         nc.Schedule,
		Room:             nc.Room,
		Capacity:         nc.Capacity,
		EnrolledStudents: nc.EnrolledStudents,
	}
	if c.EnrolledStudents == nil {
		c.EnrolledStudents = []string{}
	}
	return c, svc.repo.AddClass(c)
}

func (svc *Service) UpdateClass(c Class) error {
	return svc.repo.UpdateClass(c)
}

func (svc *Service) DeleteClass(id string) error {
	return svc.repo.DeleteClass(id)
}

func (svc *Service) AllClasses() ([]Class, error) {
	return svc.repo.AllClasses()
}

// Grades

func (svc *Service) CreateGrade(ng NewGrade) (Grade, error) {
	g := Grade{
		ID:        newID(),
		StudentID: ng.StudentID,
		ClassID:   ng.ClassID,
		Subject:   ng.Subject,
		Score:     ng.Score,
		MaxScore:  ng.MaxScore,
		Date:      ng.Date,
		Type:      ng.Type,
	}
	if g.Date == "" {
		g.Date = today()
	}
	if g.Subject == "" {
		// convenience join; a missing class leaves it blank
		if cls, err := svc.repo.GetClassByID(g.ClassID); err == nil {
			g.Subject = cls.Subject
		}
	}
	return g, svc.repo.AddGrade(g)
}

func (svc *Service) UpdateGrade(g Grade) error {
	return svc.repo.UpdateGrade(g)
}

func (svc *Service) DeleteGrade(id string) error {
	return svc.repo.DeleteGrade(id)
}

func (svc *Service) AllGrades() ([]Grade, error) {
	return svc.repo.AllGrades()
}

// Attendance

// RecordAttendance applies one class-day sheet. Existing records for the
// (class, date) pair are deleted first, then one record per student is
// inserted — this delete-then-insert sequence is the only uniqueness
// enforcement for (student, class, date).
func (svc *Service) RecordAttendance(sheet AttendanceSheet) ([]Attendance, error) {
	existing, err := svc.repo.AttendanceByClassDate(sheet.ClassID, sheet.Date)
	if err != nil {
		return nil, err
	}
	for _, rec := range existing {
		if err := svc.repo.DeleteAttendance(rec.ID); err != nil {
			return nil, err
		}
	}

	records := make([]Attendance, 0, len(sheet.Statuses))
	for studentID, status := range sheet.Statuses {
		rec := Attendance{
			ID:        newID(),
			StudentID: studentID,
			ClassID:   sheet.ClassID,
			Date:      sheet.Date,
			Status:    status,
		}
		if err := svc.repo.AddAttendance(rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (svc *Service) DeleteAttendance(id string) error {
	return svc.repo.DeleteAttendance(id)
}

func (svc *Service) AllAttendance() ([]Attendance, error) {
	return svc.repo.AllAttendance()
}

// Queries

// AskQuery files a student question (or a teacher-initiated message when
// FromTeacher is set) and notifies the counterpart by email.
func (svc *Service) AskQuery(nq NewQuery) (StudentQuery, error) {
	q := StudentQuery{
		ID:          newID(),
		StudentID:   nq.StudentID,
		ClassID:     nq.ClassID,
		TeacherID:   nq.TeacherID,
		Message:     nq.Message,
		Date:        today(),
		Status:      QueryPending,
		FromTeacher: nq.FromTeacher,
	}

	if nq.FromTeacher {
		// resolve the class shared by the (teacher, student) pair
		if q.ClassID == "" {
			classes, err := svc.repo.AllClasses()
			if err != nil {
				return StudentQuery{}, err
			}
			for _, cls := range classes {
				if cls.TeacherID == q.TeacherID && cls.Enrolls(q.StudentID) {
					q.ClassID = cls.ID
					break
				}
			}
		}
	} else if cls, err := svc.repo.GetClassByID(q.ClassID); err == nil {
		q.TeacherID = cls.TeacherID
	}

	if err := svc.repo.AddQuery(q); err != nil {
		return StudentQuery{}, err
	}
	svc.notifyNewQuery(q)
	return q, nil
}

// AnswerQuery records the teacher's response and marks the query answered.
func (svc *Service) AnswerQuery(id, response string) (StudentQuery, error) {
	q, err := svc.repo.GetQueryByID(id)
	if err != nil {
		return StudentQuery{}, err
	}
	q.Response = response
	q.Status = QueryAnswered
	if err := svc.repo.UpdateQuery(q); err != nil {
		return StudentQuery{}, err
	}
	svc.notifyAnsweredQuery(q)
	return q, nil
}

func (svc *Service) DeleteQuery(id string) error {
	return svc.repo.DeleteQuery(id)
}

func (svc *Service) AllQueries() ([]StudentQuery, error) {
	return svc.repo.AllQueries()
}

func (svc *Service) notifyNewQuery(q StudentQuery) {
	if svc.mailSvc == nil {
		return
	}
	if q.FromTeacher {
		if student, err := svc.repo.GetStudentByID(q.StudentID); err == nil {
			svc.mailSvc.SendMessages(&core.EmailMessage{
				To:      []mail.Address{{Name: student.Name, Address: student.Email}},
				Subject: "New message from your teacher",
				BodyStr: q.Message,
			})
		}
		return
	}
	if teacher, err := svc.repo.GetTeacherByID(q.TeacherID); err == nil {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: teacher.Name, Address: teacher.Email}},
			Subject: "New student query",
			BodyStr: q.Message,
		})
	}
}

func (svc *Service) notifyAnsweredQuery(q StudentQuery) {
	if svc.mailSvc == nil {
		return
	}
	if student, err := svc.repo.GetStudentByID(q.StudentID); err == nil {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: student.Name, Address: student.Email}},
			Subject: "Your query was answered",
			BodyStr: fmt.Sprintf("Q: %s\n\nA: %s", q.Message, q.Response),
		})
	}
}
