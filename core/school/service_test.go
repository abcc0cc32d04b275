package school_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/school"
	"github.com/trezcool/shule/storage/inmem"
	testutil "github.com/trezcool/shule/tests"
)

func setup(t *testing.T) (*school.Service, school.Repository) {
	db := testutil.PrepareDB(t)
	repo := inmem.NewSchoolRepository(db)
	return school.NewService(repo, nil /* mailSvc */), repo
}

func TestService_emptyStore(t *testing.T) {
	svc := school.NewService(inmem.NewSchoolRepository(testutil.PrepareEmptyDB(t)), nil /* mailSvc */)

	all, err := svc.AllStudents()
	assert.NoError(t, err)
	assert.Empty(t, all)

	// mutations against an empty store are silent no-ops
	assert.NoError(t, svc.UpdateStudent(school.Student{ID: "1", Name: "Ghost"}))
	assert.NoError(t, svc.DeleteStudent("1"))

	grades, err := svc.AllGrades()
	assert.NoError(t, err)
	assert.Equal(t, 0, school.AveragePercent(grades))
}

func TestService_studentLifecycle(t *testing.T) {
	svc, _ := setup(t)

	student, err := svc.CreateStudent(school.NewStudent{Name: "New Kid", Email: "new.kid@student.edu", Grade: "9"})
	assert.NoError(t, err)
	assert.NotEmpty(t, student.ID)

	all, err := svc.AllStudents()
	assert.NoError(t, err)
	assert.Len(t, all, 6) // 5 seeded + 1
	// appended, insertion order preserved
	assert.Equal(t, student.ID, all[5].ID)

	// adding the same email again is allowed; the store enforces nothing
	dup, err := svc.CreateStudent(school.NewStudent{Name: "New Kid", Email: "new.kid@student.edu", Grade: "9"})
	assert.NoError(t, err)
	assert.NotEqual(t, student.ID, dup.ID)

	// update replaces the stored record wholesale
	student.Name = "Renamed Kid"
	assert.NoError(t, svc.UpdateStudent(student))
	updated, err := svc.AllStudents()
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Kid", updated[5].Name)

	// updating a missing id is a silent no-op
	assert.NoError(t, svc.UpdateStudent(school.Student{ID: "nope", Name: "Ghost"}))
	after, err := svc.AllStudents()
	assert.NoError(t, err)
	assert.Len(t, after, 7)

	// delete is idempotent
	assert.NoError(t, svc.DeleteStudent(dup.ID))
	assert.NoError(t, svc.DeleteStudent(dup.ID))
	left, err := svc.AllStudents()
	assert.NoError(t, err)
	assert.Len(t, left, 6)
}

func TestService_CreateGrade_backfillsSubject(t *testing.T) {
	svc, _ := setup(t)

	grade, err := svc.CreateGrade(school.NewGrade{
		StudentID: "1", ClassID: "1", Score: 85, MaxScore: 100, Type: school.GradeTypeQuiz,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Mathematics", grade.Subject)
	assert.NotEmpty(t, grade.Date)

	// a dangling class reference is tolerated; the subject just stays empty
	dangling, err := svc.CreateGrade(school.NewGrade{
		StudentID: "1", ClassID: "999", Score: 50, MaxScore: 100, Type: school.GradeTypeQuiz,
	})
	assert.NoError(t, err)
	assert.Empty(t, dangling.Subject)
}

func TestService_RecordAttendance_retakeReplaces(t *testing.T) {
	svc, repo := setup(t)

	// first take: three students
	first, err := svc.RecordAttendance(school.AttendanceSheet{
		ClassID: "2",
		Date:    "2024-02-01",
		Statuses: map[string]string{
			"1": school.AttendancePresent,
			"2": school.AttendanceLate,
			"5": school.AttendanceAbsent,
		},
	})
	assert.NoError(t, err)
	assert.Len(t, first, 3)

	// re-take for the same class and date replaces the whole sheet
	second, err := svc.RecordAttendance(school.AttendanceSheet{
		ClassID: "2",
		Date:    "2024-02-01",
		Statuses: map[string]string{
			"1": school.AttendanceAbsent,
			"2": school.AttendancePresent,
		},
	})
	assert.NoError(t, err)
	assert.Len(t, second, 2)

	day, err := repo.AttendanceByClassDate("2", "2024-02-01")
	assert.NoError(t, err)
	assert.Len(t, day, 2)

	// other class-days are untouched
	other, err := repo.AttendanceByClassDate("1", "2024-01-15")
	assert.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestService_AskQuery(t *testing.T) {
	svc, _ := setup(t)

	// a student question resolves the teacher from the class
	q, err := svc.AskQuery(school.NewQuery{StudentID: "1", ClassID: "1", Message: "When is the exam?"})
	assert.NoError(t, err)
	assert.Equal(t, "1", q.TeacherID)
	assert.Equal(t, school.QueryPending, q.Status)
	assert.False(t, q.FromTeacher)

	// a teacher message resolves the shared class from the pair
	tq, err := svc.AskQuery(school.NewQuery{
		StudentID: "2", TeacherID: "2", Message: "Please see me after class.", FromTeacher: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "3", tq.ClassID) // Physics Honors: teacher 2, student 2
	assert.True(t, tq.FromTeacher)

	answered, err := svc.AnswerQuery(q.ID, "Next Friday.")
	assert.NoError(t, err)
	assert.Equal(t, school.QueryAnswered, answered.Status)
	assert.Equal(t, "Next Friday.", answered.Response)

	// answering an unknown query fails
	_, err = svc.AnswerQuery("nope", "hi")
	assert.ErrorIs(t, err, school.ErrNotFound)
}
