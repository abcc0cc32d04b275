package inmem

import (
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

const seedPassword = "password123"

// Seed loads the fixture dataset into an empty DB: the demo login accounts,
// five students, five teachers, eight classes and a handful of grade,
// attendance and query records. Every seeded student and teacher also gets a
// registry account (same demo password) so each portal is reachable.
// State is volatile; this runs on every process start.
func Seed(db *DB) error {
	students := SeedStudents()
	teachers := SeedTeachers()

	db.mu.Lock()
	db.students = append(db.students, students...)
	db.teachers = append(db.teachers, teachers...)
	db.classes = append(db.classes, SeedClasses()...)
	db.grades = append(db.grades, SeedGrades()...)
	db.attendance = append(db.attendance, SeedAttendance()...)
	db.queries = append(db.queries, SeedQueries()...)
	db.mu.Unlock()

	accounts := []auth.Account{
		{Identity: auth.Identity{Email: "admin@school.com", Name: "Admin User", Role: auth.RoleAdmin}},
		{Identity: auth.Identity{Email: "teacher@school.com", Name: "Sarah Johnson", Role: auth.RoleTeacher}},
		// no Student record matches this email: logging in lands on an empty
		// (unresolved) scope, by design
		{Identity: auth.Identity{Email: "student@school.com", Name: "Alex Smith", Role: auth.RoleStudent}},
	}
	for _, t := range teachers {
		accounts = append(accounts, auth.Account{Identity: auth.Identity{Email: t.Email, Name: t.Name, Role: auth.RoleTeacher, Avatar: t.Avatar}})
	}
	for _, s := range students {
		accounts = append(accounts, auth.Account{Identity: auth.Identity{Email: s.Email, Name: s.Name, Role: auth.RoleStudent, Avatar: s.Avatar}})
	}

	repo := NewAccountRepository(db)
	for _, acct := range accounts {
		if err := acct.SetPassword(seedPassword); err != nil {
			return errors.Wrap(err, "hashing seed password")
		}
		if _, err := repo.CreateAccount(acct); err != nil {
			return errors.Wrapf(err, "seeding account %s", acct.Email)
		}
	}
	return nil
}

func SeedStudents() []school.Student {
	return []school.Student{
		{
			ID: "1", Name: "Emma Thompson", Email: "emma.thompson@student.edu", Phone: "(555) 123-4567",
			Grade: "10", Class: "Math Advanced", DateOfBirth: "2008-03-15",
			Address: "123 Maple St, Springfield", ParentName: "John Thompson", ParentPhone: "(555) 123-4568",
			EnrollmentDate: "2023-09-01",
		},
		{
			ID: "2", Name: "Liam Rodriguez", Email: "liam.rodriguez@student.edu", Phone: "(555) 234-5678",
			Grade: "11", Class: "Physics Honors", DateOfBirth: "2007-07-22",
			Address: "456 Oak Ave, Springfield", ParentName: "Maria Rodriguez", ParentPhone: "(555) 234-5679",
			EnrollmentDate: "2022-09-01",
		},
		{
			ID: "3", Name: "Sophia Chen", Email: "sophia.chen@student.edu", Phone: "(555) 345-6789",
			Grade: "12", Class: "Chemistry AP", DateOfBirth: "2006-11-08",
			Address: "789 Pine Rd, Springfield", ParentName: "David Chen", ParentPhone: "(555) 345-6790",
			EnrollmentDate: "2021-09-01",
		},
		{
			ID: "4", Name: "Noah Williams", Email: "noah.williams@student.edu", Phone: "(555) 456-7890",
			Grade: "9", Class: "English Literature", DateOfBirth: "2009-01-14",
			Address: "321 Elm St, Springfield", ParentName: "Lisa Williams", ParentPhone: "(555) 456-7891",
			EnrollmentDate: "2024-09-01",
		},
		{
			ID: "5", Name: "Ava Johnson", Email: "ava.johnson@student.edu", Phone: "(555) 567-8901",
			Grade: "10", Class: "Biology", DateOfBirth: "2008-05-20",
			Address: "654 Cedar Ave, Springfield", ParentName: "Robert Johnson", ParentPhone: "(555) 567-8902",
			EnrollmentDate: "2023-09-01",
		},
	}
}

func SeedTeachers() []school.Teacher {
	return []school.Teacher{
		{
			ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@school.edu", Phone: "(555) 111-2222",
			Subject: "Mathematics", Experience: 8, Qualification: "PhD in Mathematics",
			Classes: []string{"1", "2"}, Salary: 65000,
		},
		{
			ID: "2", Name: "Mr. Michael Brown", Email: "michael.brown@school.edu", Phone: "(555) 222-3333",
			Subject: "Physics", Experience: 12, Qualification: "MS in Physics",
			Classes: []string{"3", "4"}, Salary: 62000,
		},
		{
			ID: "3", Name: "Ms. Emily Davis", Email: "emily.davis@school.edu", Phone: "(555) 333-4444",
			Subject: "Chemistry", Experience: 6, Qualification: "MS in Chemistry",
			Classes: []string{"5"}, Salary: 58000,
		},
		{
			ID: "4", Name: "Mr. James Wilson", Email: "james.wilson@school.edu", Phone: "(555) 444-5555",
			Subject: "English Literature", Experience: 10, Qualification: "MA in English Literature",
			Classes: []string{"6", "7"}, Salary: 60000,
		},
		{
			ID: "5", Name: "Dr. Lisa Anderson", Email: "lisa.anderson@school.edu", Phone: "(555) 555-6666",
			Subject: "Biology", Experience: 15, Qualification: "PhD in Biology",
			Classes: []string{"8"}, Salary: 68000,
		},
	}
}

func SeedClasses() []school.Class {
	return []school.Class{
		{
			ID: "1", Name: "Math Advanced", Grade: "10", Subject: "Mathematics", TeacherID: "1",
			Schedule: "Mon, Wed, Fri 9:00-10:00 AM", Room: "Room 101", Capacity: 30,
			EnrolledStudents: []string{"1", "5"},
		},
		{
			ID: "2", Name: "Algebra II", Grade: "11", Subject: "Mathematics", TeacherID: "1",
			Schedule: "Tue, Thu 10:00-11:00 AM", Room: "Room 102", Capacity: 25,
			EnrolledStudents: []string{"2"},
		},
		{
			ID: "3", Name: "Physics Honors", Grade: "11", Subject: "Physics", TeacherID: "2",
			Schedule: "Mon, Wed, Fri 11:00-12:00 PM", Room: "Lab 201", Capacity: 20,
			EnrolledStudents: []string{"2"},
		},
		{
			ID: "4", Name: "General Physics", Grade: "10", Subject: "Physics", TeacherID: "2",
			Schedule: "Tue, Thu 1:00-2:00 PM", Room: "Lab 202", Capacity: 25,
			EnrolledStudents: []string{"1"},
		},
		{
			ID: "5", Name: "Chemistry AP", Grade: "12", Subject: "Chemistry", TeacherID: "3",
			Schedule: "Mon, Wed, Fri 2:00-3:00 PM", Room: "Lab 301", Capacity: 18,
			EnrolledStudents: []string{"3"},
		},
		{
			ID: "6", Name: "English Literature", Grade: "9", Subject: "English", TeacherID: "4",
			Schedule: "Daily 9:00-10:00 AM", Room: "Room 401", Capacity: 28,
			EnrolledStudents: []string{"4"},
		},
		{
			ID: "7", Name: "Advanced Writing", Grade: "12", Subject: "English", TeacherID: "4",
			Schedule: "Tue, Thu 11:00-12:00 PM", Room: "Room 402", Capacity: 22,
			EnrolledStudents: []string{"3"},
		},
		{
			ID: "8", Name: "Biology", Grade: "10", Subject: "Biology", TeacherID: "5",
			Schedule: "Mon, Wed, Fri 10:00-11:00 AM", Room: "Lab 501", Capacity: 24,
			EnrolledStudents: []string{"5", "1"},
		},
	}
}

func SeedGrades() []school.Grade {
	return []school.Grade{
		{ID: "1", StudentID: "1", ClassID: "1", Subject: "Mathematics", Score: 92, MaxScore: 100, Date: "2024-01-15", Type: school.GradeTypeExam},
		{ID: "2", StudentID: "2", ClassID: "3", Subject: "Physics", Score: 88, MaxScore: 100, Date: "2024-01-20", Type: school.GradeTypeQuiz},
		{ID: "3", StudentID: "3", ClassID: "5", Subject: "Chemistry", Score: 95, MaxScore: 100, Date: "2024-01-25", Type: school.GradeTypeAssignment},
	}
}

func SeedAttendance() []school.Attendance {
	return []school.Attendance{
		{ID: "1", StudentID: "1", ClassID: "1", Date: "2024-01-15", Status: school.AttendancePresent},
		{ID: "2", StudentID: "2", ClassID: "3", Date: "2024-01-15", Status: school.AttendancePresent},
		{ID: "3", StudentID: "3", ClassID: "5", Date: "2024-01-15", Status: school.AttendanceLate},
		{ID: "4", StudentID: "2", ClassID: "3", Date: "2024-01-16", Status: school.AttendanceAbsent},
		{ID: "5", StudentID: "3", ClassID: "5", Date: "2024-01-16", Status: school.AttendancePresent},
	}
}

func SeedQueries() []school.StudentQuery {
	return []school.StudentQuery{
		{
			ID: "1", StudentID: "1", TeacherID: "1", ClassID: "1",
			Message: "Could you go over quadratic factoring again?",
			Date:    "2024-01-16", Status: school.QueryPending,
		},
		{
			ID: "2", StudentID: "2", TeacherID: "2", ClassID: "3",
			Message:  "Is the lab report due Friday?",
			Response: "Yes, end of day Friday.", Date: "2024-01-17", Status: school.QueryAnswered,
		},
	}
}
