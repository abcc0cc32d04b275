package tests

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func Test_reportApi(t *testing.T) {
	app := setup(t)

	tests := []struct {
		name     string
		path     string
		sheet    string
		wantRows int // header included
	}{
		{name: "grades, admin", path: "/v1/reports/grades.xlsx", sheet: "Grades", wantRows: 4},
		{name: "grades, student scope", path: "/v1/reports/grades.xlsx", sheet: "Grades", wantRows: 2},
		{name: "attendance, teacher scope", path: "/v1/reports/attendance.xlsx", sheet: "Attendance", wantRows: 2},
		{name: "attendance, filtered", path: "/v1/reports/attendance.xlsx?class_id=5", sheet: "Attendance", wantRows: 3},
	}
	tokens := []string{
		getToken(t, adminIdent), getToken(t, studentIdent), getToken(t, teacherIdent), getToken(t, adminIdent),
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tokens[i])
			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			assert.NoError(t, err)
			defer func() { _ = f.Close() }()

			rows, err := f.GetRows(tt.sheet)
			assert.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}
