package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/school"
	"github.com/trezcool/shule/storage/inmem"
)

func Test_studentApi_query(t *testing.T) {
	app := setup(t)
	seeded := inmem.SeedStudents()

	tests := []httpTest{
		{
			name: "auth required", path: "/v1/students",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "admin sees all", path: "/v1/students", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallObj(t, seeded),
		},
		{
			name: "teacher sees own classes' students", path: "/v1/students", token: getToken(t, teacherIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0], seeded[1], seeded[4]),
		},
		{
			name: "student sees self", path: "/v1/students", token: getToken(t, studentIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "unresolved session sees nothing", path: "/v1/students", token: getToken(t, ghostIdent),
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
		{
			name: "search", path: "/v1/students?search=emma", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "search AND grade", path: "/v1/students?search=emma&grade=11", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
		{
			name: "search matches name and email only", path: "/v1/students?search=advanced", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t),
		},
		{
			name: "grade filter", path: "/v1/students?grade=10", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0], seeded[4]),
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

func Test_studentApi_retrieve(t *testing.T) {
	app := setup(t)
	seeded := inmem.SeedStudents()

	tests := []httpTest{
		{
			name: "own record", path: "/v1/students/1", token: getToken(t, studentIdent),
			wantCode: http.StatusOK, wantData: marchallObj(t, seeded[0]),
		},
		{
			name: "invisible record reads as missing", path: "/v1/students/2", token: getToken(t, studentIdent),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name: "unknown id", path: "/v1/students/404", token: getToken(t, adminIdent),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"}),
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

func Test_studentApi_create(t *testing.T) {
	app := setup(t)

	body := marchallObj(t, school.NewStudent{Name: "New Kid", Email: "new.kid@student.edu", Grade: "9"})

	// writes are admin-only
	req, rec := newAuthRequest(http.MethodPost, "/v1/students", getToken(t, teacherIdent), body)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
	}, rec)

	req, rec = newAuthRequest(http.MethodPost, "/v1/students", getToken(t, adminIdent), body)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var created school.Student
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Kid", created.Name)

	all, err := schoolRepo.AllStudents()
	assert.NoError(t, err)
	assert.Len(t, all, 6)
}

func Test_studentApi_updateDestroy(t *testing.T) {
	app := setup(t)
	seeded := inmem.SeedStudents()

	// update replaces the record, keeping the path id
	upd := seeded[0]
	upd.Name = "Emma Renamed"
	req, rec := newAuthRequest(http.MethodPut, "/v1/students/1", getToken(t, adminIdent), marchallObj(t, upd))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, upd)}, rec)

	// destroy
	req, rec = newAuthRequest(http.MethodDelete, "/v1/students/1", getToken(t, adminIdent))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	all, err := schoolRepo.AllStudents()
	assert.NoError(t, err)
	assert.Len(t, all, 4)

	// a second destroy reads as missing
	req, rec = newAuthRequest(http.MethodDelete, "/v1/students/1", getToken(t, adminIdent))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
