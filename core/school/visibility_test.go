package school_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
	"github.com/trezcool/shule/storage/inmem"
	testutil "github.com/trezcool/shule/tests"
)

func newScope(t *testing.T, repo school.Repository, email, role string) *school.Scope {
	t.Helper()

	scope, err := school.NewScope(repo, auth.Identity{Email: email, Role: role})
	if err != nil {
		t.Fatalf("NewScope(): %v", err)
	}
	return scope
}

func ids[T any](list []T, idOf func(T) string) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = idOf(v)
	}
	return out
}

func TestScope_admin_seesEverything(t *testing.T) {
	repo := inmem.NewSchoolRepository(testutil.PrepareDB(t))
	scope := newScope(t, repo, "admin@school.com", auth.RoleAdmin)

	students, err := scope.Students()
	assert.NoError(t, err)
	assert.Len(t, students, 5)

	teachers, err := scope.Teachers()
	assert.NoError(t, err)
	assert.Len(t, teachers, 5)

	classes, err := scope.Classes()
	assert.NoError(t, err)
	assert.Len(t, classes, 8)

	grades, err := scope.Grades()
	assert.NoError(t, err)
	assert.Len(t, grades, 3)

	ok, err := scope.CanWriteClass("8")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestScope_teacher_ownClassesOnly(t *testing.T) {
	repo := inmem.NewSchoolRepository(testutil.PrepareDB(t))
	// Dr. Sarah Johnson teaches classes 1 and 2
	scope := newScope(t, repo, "sarah.johnson@school.edu", auth.RoleTeacher)

	own, ok := scope.OwnTeacher()
	assert.True(t, ok)
	assert.Equal(t, "1", own.ID)

	classes, err := scope.Classes()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(classes, func(c school.Class) string { return c.ID }))

	// students enrolled in her classes
	students, err := scope.Students()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, ids(students, func(s school.Student) string { return s.ID }))

	// grade 1 belongs to class 1; grades 2 and 3 are other teachers' classes
	grades, err := scope.Grades()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(grades, func(g school.Grade) string { return g.ID }))

	attendance, err := scope.Attendance()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(attendance, func(a school.Attendance) string { return a.ID }))

	queries, err := scope.Queries()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(queries, func(q school.StudentQuery) string { return q.ID }))

	// she only sees herself in the teachers list
	teachers, err := scope.Teachers()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(teachers, func(tc school.Teacher) string { return tc.ID }))

	ok, err = scope.CanWriteClass("2")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = scope.CanWriteClass("3")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScope_student_ownRecordsOnly(t *testing.T) {
	repo := inmem.NewSchoolRepository(testutil.PrepareDB(t))
	// Emma Thompson (student 1) is enrolled in classes 1, 4 and 8
	scope := newScope(t, repo, "emma.thompson@student.edu", auth.RoleStudent)

	own, ok := scope.OwnStudent()
	assert.True(t, ok)
	assert.Equal(t, "1", own.ID)

	students, err := scope.Students()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(students, func(s school.Student) string { return s.ID }))

	classes, err := scope.Classes()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "8"}, ids(classes, func(c school.Class) string { return c.ID }))

	// teachers of her classes
	teachers, err := scope.Teachers()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, ids(teachers, func(tc school.Teacher) string { return tc.ID }))

	grades, err := scope.Grades()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(grades, func(g school.Grade) string { return g.ID }))

	attendance, err := scope.Attendance()
	assert.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(attendance, func(a school.Attendance) string { return a.ID }))

	ok, err = scope.CanWriteClass("1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScope_unresolvedSession_isEmptyNotError(t *testing.T) {
	repo := inmem.NewSchoolRepository(testutil.PrepareDB(t))
	// the demo student account matches no Student record
	scope := newScope(t, repo, "student@school.com", auth.RoleStudent)

	if _, ok := scope.OwnStudent(); ok {
		t.Fatal("OwnStudent() must not resolve")
	}

	students, err := scope.Students()
	assert.NoError(t, err)
	assert.Empty(t, students)

	grades, err := scope.Grades()
	assert.NoError(t, err)
	assert.Empty(t, grades)

	queries, err := scope.Queries()
	assert.NoError(t, err)
	assert.Empty(t, queries)
}
