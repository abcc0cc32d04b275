package reportsvc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
	reportsvc "github.com/trezcool/shule/services/report"
	"github.com/trezcool/shule/storage/inmem"
	testutil "github.com/trezcool/shule/tests"
)

func TestService_WriteGrades_danglingRefsRenderUnknown(t *testing.T) {
	repo := inmem.NewSchoolRepository(testutil.PrepareDB(t))
	svc := reportsvc.NewService(repo)

	// a grade pointing at records that are gone
	assert.NoError(t, repo.AddGrade(school.Grade{
		ID: "99", StudentID: "404", ClassID: "404", Score: 50, MaxScore: 100,
		Date: "2024-03-01", Type: school.GradeTypeQuiz,
	}))

	scope, err := school.NewScope(repo, auth.Identity{Email: "admin@school.com", Role: auth.RoleAdmin})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, svc.WriteGrades(&buf, scope, school.GradeFilter{}))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Grades")
	assert.NoError(t, err)
	assert.Len(t, rows, 5) // header + 3 seeded + 1 dangling

	last := rows[4]
	assert.Equal(t, "Unknown", last[1]) // student
	assert.Equal(t, "Unknown", last[2]) // class
	assert.Equal(t, "50%", last[6])

	// a resolvable row keeps its names
	assert.Equal(t, "Emma Thompson", rows[1][1])
	assert.Equal(t, "Math Advanced", rows[1][2])
}
