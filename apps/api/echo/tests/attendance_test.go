package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/school"
	"github.com/trezcool/shule/storage/inmem"
)

func Test_attendanceApi_query(t *testing.T) {
	app := setup(t)
	seeded := inmem.SeedAttendance()

	tests := []httpTest{
		{
			name: "admin sees all", path: "/v1/attendance", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallObj(t, seeded),
		},
		{
			name: "teacher sees own classes only", path: "/v1/attendance", token: getToken(t, teacherIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "student sees own records only", path: "/v1/attendance", token: getToken(t, studentIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0]),
		},
		{
			name: "date AND status filter", path: "/v1/attendance?date=2024-01-15&status=present", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[0], seeded[1]),
		},
		{
			name: "class filter", path: "/v1/attendance?class_id=5", token: getToken(t, adminIdent),
			wantCode: http.StatusOK, wantData: marchallList(t, seeded[2], seeded[4]),
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

func Test_attendanceApi_record(t *testing.T) {
	app := setup(t)

	sheet := school.AttendanceSheet{
		ClassID: "1",
		Date:    "2024-02-01",
		Statuses: map[string]string{
			"1": school.AttendancePresent,
			"5": school.AttendanceLate,
		},
	}

	// students cannot record
	req, rec := newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, studentIdent), marchallObj(t, sheet))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	// a teacher cannot record for a class they do not teach
	other := sheet
	other.ClassID = "3"
	req, rec = newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, teacherIdent), marchallObj(t, other))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	// bad status is rejected
	bad := school.AttendanceSheet{ClassID: "1", Date: "2024-02-01", Statuses: map[string]string{"1": "awol"}}
	req, rec = newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, teacherIdent), marchallObj(t, bad))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// own class: ok
	req, rec = newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, teacherIdent), marchallObj(t, sheet))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	day, err := schoolRepo.AttendanceByClassDate("1", "2024-02-01")
	assert.NoError(t, err)
	assert.Len(t, day, 2)

	// a re-take replaces the sheet for that class and date
	retake := school.AttendanceSheet{
		ClassID: "1", Date: "2024-02-01",
		Statuses: map[string]string{"1": school.AttendanceAbsent},
	}
	req, rec = newAuthRequest(http.MethodPost, "/v1/attendance", getToken(t, teacherIdent), marchallObj(t, retake))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	day, err = schoolRepo.AttendanceByClassDate("1", "2024-02-01")
	assert.NoError(t, err)
	assert.Len(t, day, 1)
	assert.Equal(t, school.AttendanceAbsent, day[0].Status)
}

func Test_attendanceApi_destroy(t *testing.T) {
	app := setup(t)

	// a teacher cannot delete another class's record
	req, rec := newAuthRequest(http.MethodDelete, "/v1/attendance/2", getToken(t, teacherIdent))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code) // invisible, reads as missing

	req, rec = newAuthRequest(http.MethodDelete, "/v1/attendance/1", getToken(t, teacherIdent))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	all, err := schoolRepo.AllAttendance()
	assert.NoError(t, err)
	assert.Len(t, all, 4)
}
