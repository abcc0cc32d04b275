package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core/school"
	"github.com/trezcool/shule/storage/inmem"
)

func Test_queryApi_query(t *testing.T) {
	app := setup(t)
	seeded := inmem.SeedQueries()

	tests := []httpTest{
		{
			name: "admin sees all", path: "/v1/queries", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallObj(t, seeded),
		},
		{
			name: "teacher sees own classes' queries", path: "/v1/queries", token: getToken(t, teacherIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "student sees own queries", path: "/v1/queries", token: getToken(t, studentIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "status filter", path: "/v1/queries?status=answered", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[1]),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_queryApi_ask(t *testing.T) {
	app := setup(t)

	// a student files as themselves; the teacher is resolved from the class
	body := marchallObj(t, school.NewQuery{ClassID: "1", Message: "When is the exam?"})
	req, rec := newAuthRequest(http.MethodPost, "/v1/queries", getToken(t, studentIdent), body)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var created school.StudentQuery
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "1", created.StudentID)
	assert.Equal(t, "1", created.TeacherID)
	assert.Equal(t, school.QueryPending, created.Status)
	assert.False(t, created.FromTeacher)

	// an account with no student record cannot file
	req, rec = newAuthRequest(http.MethodPost, "/v1/queries", getToken(t, ghostIdent), body)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// a teacher files a message to a student; the shared class is resolved
	tBody := marchallObj(t, school.NewQuery{StudentID: "5", Message: "Please see me after class."})
	req, rec = newAuthRequest(http.MethodPost, "/v1/queries", getToken(t, teacherIdent), tBody)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var fromTeacher school.StudentQuery
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fromTeacher))
	assert.True(t, fromTeacher.FromTeacher)
	assert.Equal(t, "1", fromTeacher.TeacherID)
	assert.Equal(t, "1", fromTeacher.ClassID) // Math Advanced enrolls student 5
}

func Test_queryApi_answer(t *testing.T) {
	app := setup(t)

	answer := marchallObj(t, AnswerRequest{Response: "Next Friday."})

	// students cannot answer
	req, rec := newAuthRequest(http.MethodPut, "/v1/queries/1/answer", getToken(t, studentIdent), answer)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	// a teacher cannot answer another class's query
	req, rec = newAuthRequest(http.MethodPut, "/v1/queries/2/answer", getToken(t, teacherIdent), answer)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req, rec = newAuthRequest(http.MethodPut, "/v1/queries/1/answer", getToken(t, teacherIdent), answer)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var answered school.StudentQuery
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answered))
	assert.Equal(t, school.QueryAnswered, answered.Status)
	assert.Equal(t, "Next Friday.", answered.Response)
}

func Test_queryApi_destroy(t *testing.T) {
	app := setup(t)

	// admin-only
	req, rec := newAuthRequest(http.MethodDelete, "/v1/queries/1", getToken(t, teacherIdent))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/queries/1", getToken(t, adminIdent))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	all, err := schoolRepo.AllQueries()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}
