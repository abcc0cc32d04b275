package inmem

import (
	"github.com/trezcool/shule/core/school"
)

// schoolRepository implements school.Repository over the DB's slice tables.
// Adds append without uniqueness or referential checks, updates replace by id
// and are silent no-ops when the id is absent, deletes filter by id and never
// cascade.
type schoolRepository struct {
	db *DB
}

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db}
}

// Students

func (repo *schoolRepository) AddStudent(s school.Student) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.students = append(repo.db.students, s)
	return nil
}

func (repo *schoolRepository) UpdateStudent(s school.Student) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	for i := range repo.db.students {
		if repo.db.students[i].ID == s.ID {
			repo.db.students[i] = s
			break
		}
	}
	return nil
}

func (repo *schoolRepository) DeleteStudent(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.students = deleteByID(repo.db.students, id, func(s school.Student) string { return s.ID })
	return nil
}

func (repo *schoolRepository) AllStudents() ([]school.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.students), nil
}

func (repo *schoolRepository) GetStudentByID(id string) (school.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, s := range repo.db.students {
		if s.ID == id {
			return s, nil
		}
	}
	return school.Student{}, school.ErrNotFound
}

func (repo *schoolRepository) GetStudentByEmail(email string) (school.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, s := range repo.db.students {
		if s.Email == email {
			return s, nil
		}
	}
	return school.Student{}, school.ErrNotFound
}

// Teachers

func (repo *schoolRepository) AddTeacher(t school.Teacher) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.teachers = append(repo.db.teachers, t)
	return nil
}

func (repo *schoolRepository) UpdateTeacher(t school.Teacher) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	for i := range repo.db.teachers {
		if repo.db.teachers[i].ID == t.ID {
			repo.db.teachers[i] = t
			break
		}
	}
	return nil
}

func (repo *schoolRepository) DeleteTeacher(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.teachers = deleteByID(repo.db.teachers, id, func(t school.Teacher) string { return t.ID })
	return nil
}

func (repo *schoolRepository) AllTeachers() ([]school.Teacher, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.teachers), nil
}

func (repo *schoolRepository) GetTeacherByID(id string) (school.Teacher, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, t := range repo.db.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return school.Teacher{}, school.ErrNotFound
}

func (repo *schoolRepository) GetTeacherByEmail(email string) (school.Teacher, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, t := range repo.db.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return school.Teacher{}, school.ErrNotFound
}

// Classes

func (repo *schoolRepository) AddClass(c school.Class) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.classes = append(repo.db.classes, c)
	return nil
}

func (repo *schoolRepository) UpdateClass(c school.Class) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	for i := range repo.db.classes {
		if repo.db.classes[i].ID == c.ID {
			repo.db.classes[i] = c
			break
		}
	}
	return nil
}

func (repo *schoolRepository) DeleteClass(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.classes = deleteByID(repo.db.classes, id, func(c school.Class) string { return c.ID })
	return nil
}

func (repo *schoolRepository) AllClasses() ([]school.Class, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.classes), nil
}

func (repo *schoolRepository) GetClassByID(id string) (school.Class, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, c := range repo.db.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return school.Class{}, school.ErrNotFound
}

// Grades

func (repo *schoolRepository) AddGrade(g school.Grade) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.grades = append(repo.db.grades, g)
	return nil
}

func (repo *schoolRepository) UpdateGrade(g school.Grade) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	for i := range repo.db.grades {
		if repo.db.grades[i].ID == g.ID {
			repo.db.grades[i] = g
			break
		}
	}
	return nil
}

func (repo *schoolRepository) DeleteGrade(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.grades = deleteByID(repo.db.grades, id, func(g school.Grade) string { return g.ID })
	return nil
}

func (repo *schoolRepository) AllGrades() ([]school.Grade, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.grades), nil
}

// Attendance

func (repo *schoolRepository) AddAttendance(a school.Attendance) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.attendance = append(repo.db.attendance, a)
	return nil
}

func (repo *schoolRepository) DeleteAttendance(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.attendance = deleteByID(repo.db.attendance, id, func(a school.Attendance) string { return a.ID })
	return nil
}

func (repo *schoolRepository) AllAttendance() ([]school.Attendance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.attendance), nil
}

func (repo *schoolRepository) AttendanceByClassDate(classID, date string) ([]school.Attendance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	records := make([]school.Attendance, 0)
	for _, a := range repo.db.attendance {
		if a.ClassID == classID && a.Date == date {
			records = append(records, a)
		}
	}
	return records, nil
}

// Queries

func (repo *schoolRepository) AddQuery(q school.StudentQuery) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.queries = append(repo.db.queries, q)
	return nil
}

func (repo *schoolRepository) UpdateQuery(q school.StudentQuery) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	for i := range repo.db.queries {
		if repo.db.queries[i].ID == q.ID {
			repo.db.queries[i] = q
			break
		}
	}
	return nil
}

func (repo *schoolRepository) DeleteQuery(id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()
	repo.db.queries = deleteByID(repo.db.queries, id, func(q school.StudentQuery) string { return q.ID })
	return nil
}

func (repo *schoolRepository) AllQueries() ([]school.StudentQuery, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return snapshot(repo.db.queries), nil
}

func (repo *schoolRepository) GetQueryByID(id string) (school.StudentQuery, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	for _, q := range repo.db.queries {
		if q.ID == id {
			return q, nil
		}
	}
	return school.StudentQuery{}, school.ErrNotFound
}

// helpers

func snapshot[T any](table []T) []T {
	out := make([]T, len(table))
	copy(out, table)
	return out
}

func deleteByID[T any](table []T, id string, idOf func(T) string) []T {
	out := table[:0]
	for _, rec := range table {
		if idOf(rec) != id {
			out = append(out, rec)
		}
	}
	return out
}
