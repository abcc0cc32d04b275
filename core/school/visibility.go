package school

import (
	"github.com/trezcool/shule/core/auth"
)

// Scope is the role-scoped view over the store's collections for one
// authenticated identity. The store itself never filters; every read goes
// through a Scope resolved from the caller's session.
//
// A teacher or student whose session email matches no Teacher/Student record
// gets an empty (but valid) scope: all reads yield empty results, never an
// error.
type Scope struct {
	repo  Repository
	ident auth.Identity

	teacher *Teacher // resolved own record, teacher role only
	student *Student // resolved own record, student role only
}

// NewScope resolves the identity's own domain record by session email.
func NewScope(repo Repository, ident auth.Identity) (*Scope, error) {
	sc := &Scope{repo: repo, ident: ident}
	switch ident.Role {
	case auth.RoleTeacher:
		if t, err := repo.GetTeacherByEmail(ident.Email); err == nil {
			sc.teacher = &t
		} else if err != ErrNotFound {
			return nil, err
		}
	case auth.RoleStudent:
		if s, err := repo.GetStudentByEmail(ident.Email); err == nil {
			sc.student = &s
		} else if err != ErrNotFound {
			return nil, err
		}
	}
	return sc, nil
}

func (sc *Scope) Identity() auth.Identity { return sc.ident }

// OwnTeacher returns the teacher record backing this scope, if resolved.
func (sc *Scope) OwnTeacher() (Teacher, bool) {
	if sc.teacher == nil {
		return Teacher{}, false
	}
	return *sc.teacher, true
}

// OwnStudent returns the student record backing this scope, if resolved.
func (sc *Scope) OwnStudent() (Student, bool) {
	if sc.student == nil {
		return Student{}, false
	}
	return *sc.student, true
}

// ownedClassIDs is the set of class ids taught by the scope's teacher.
func (sc *Scope) ownedClassIDs() (map[string]bool, error) {
	owned := make(map[string]bool)
	if sc.teacher == nil {
		return owned, nil
	}
	classes, err := sc.repo.AllClasses()
	if err != nil {
		return nil, err
	}
	for _, cls := range classes {
		if cls.TeacherID == sc.teacher.ID {
			owned[cls.ID] = true
		}
	}
	return owned, nil
}

func (sc *Scope) Students() ([]Student, error) {
	students, err := sc.repo.AllStudents()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return students, nil
	case auth.RoleTeacher:
		owned, err := sc.ownedClassIDs()
		if err != nil {
			return nil, err
		}
		classes, err := sc.repo.AllClasses()
		if err != nil {
			return nil, err
		}
		visible := make([]Student, 0)
		for _, s := range students {
			for _, cls := range classes {
				if owned[cls.ID] && cls.Enrolls(s.ID) {
					visible = append(visible, s)
					break
				}
			}
		}
		return visible, nil
	case auth.RoleStudent:
		visible := make([]Student, 0)
		if sc.student != nil {
			visible = append(visible, *sc.student)
		}
		return visible, nil
	}
	return []Student{}, nil
}

func (sc *Scope) Teachers() ([]Teacher, error) {
	teachers, err := sc.repo.AllTeachers()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return teachers, nil
	case auth.RoleTeacher:
		visible := make([]Teacher, 0)
		if sc.teacher != nil {
			visible = append(visible, *sc.teacher)
		}
		return visible, nil
	case auth.RoleStudent:
		// teachers of the classes the student is enrolled in
		classes, err := sc.Classes()
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		visible := make([]Teacher, 0)
		for _, t := range teachers {
			for _, cls := range classes {
				if cls.TeacherID == t.ID && !seen[t.ID] {
					seen[t.ID] = true
					visible = append(visible, t)
					break
				}
			}
		}
		return visible, nil
	}
	return []Teacher{}, nil
}

func (sc *Scope) Classes() ([]Class, error) {
	classes, err := sc.repo.AllClasses()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return classes, nil
	case auth.RoleTeacher:
		visible := make([]Class, 0)
		if sc.teacher != nil {
			for _, cls := range classes {
				if cls.TeacherID == sc.teacher.ID {
					visible = append(visible, cls)
				}
			}
		}
		return visible, nil
	case auth.RoleStudent:
		visible := make([]Class, 0)
		if sc.student != nil {
			for _, cls := range classes {
				if cls.Enrolls(sc.student.ID) {
					visible = append(visible, cls)
				}
			}
		}
		return visible, nil
	}
	return []Class{}, nil
}

func (sc *Scope) Grades() ([]Grade, error) {
	grades, err := sc.repo.AllGrades()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return grades, nil
	case auth.RoleTeacher:
		owned, err := sc.ownedClassIDs()
		if err != nil {
			return nil, err
		}
		visible := make([]Grade, 0)
		for _, g := range grades {
			if owned[g.ClassID] {
				visible = append(visible, g)
			}
		}
		return visible, nil
	case auth.RoleStudent:
		visible := make([]Grade, 0)
		if sc.student != nil {
			for _, g := range grades {
				if g.StudentID == sc.student.ID {
					visible = append(visible, g)
				}
			}
		}
		return visible, nil
	}
	return []Grade{}, nil
}

func (sc *Scope) Attendance() ([]Attendance, error) {
	records, err := sc.repo.AllAttendance()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return records, nil
	case auth.RoleTeacher:
		owned, err := sc.ownedClassIDs()
		if err != nil {
			return nil, err
		}
		visible := make([]Attendance, 0)
		for _, a := range records {
			if owned[a.ClassID] {
				visible = append(visible, a)
			}
		}
		return visible, nil
	case auth.RoleStudent:
		visible := make([]Attendance, 0)
		if sc.student != nil {
			for _, a := range records {
				if a.StudentID == sc.student.ID {
					visible = append(visible, a)
				}
			}
		}
		return visible, nil
	}
	return []Attendance{}, nil
}

func (sc *Scope) Queries() ([]StudentQuery, error) {
	queries, err := sc.repo.AllQueries()
	if err != nil {
		return nil, err
	}
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return queries, nil
	case auth.RoleTeacher:
		owned, err := sc.ownedClassIDs()
		if err != nil {
			return nil, err
		}
		visible := make([]StudentQuery, 0)
		for _, q := range queries {
			if owned[q.ClassID] {
				visible = append(visible, q)
			}
		}
		return visible, nil
	case auth.RoleStudent:
		visible := make([]StudentQuery, 0)
		if sc.student != nil {
			for _, q := range queries {
				if q.StudentID == sc.student.ID {
					visible = append(visible, q)
				}
			}
		}
		return visible, nil
	}
	return []StudentQuery{}, nil
}

// CanWriteClass reports whether the scope's identity may record grades or
// attendance for the class: admins always, teachers for their own classes.
func (sc *Scope) CanWriteClass(classID string) (bool, error) {
	switch sc.ident.Role {
	case auth.RoleAdmin:
		return true, nil
	case auth.RoleTeacher:
		owned, err := sc.ownedClassIDs()
		if err != nil {
			return false, err
		}
		return owned[classID], nil
	}
	return false, nil
}
