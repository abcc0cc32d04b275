package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/shule/apps/api/echo"
)

func Test_dashboardApi_retrieve(t *testing.T) {
	app := setup(t)

	get := func(t *testing.T, token string) DashboardResponse {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		var resp DashboardResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	t.Run("admin", func(t *testing.T) {
		resp := get(t, getToken(t, adminIdent))
		assert.Equal(t, 5, resp.TotalStudents)
		assert.Equal(t, 5, resp.TotalTeachers)
		assert.Equal(t, 8, resp.TotalClasses)
		assert.Equal(t, 92, resp.AveragePercent) // round(mean(92, 88, 95))
		assert.Equal(t, 60, resp.AttendanceRate) // 3 of 5 present
		assert.Equal(t, 1, resp.PendingQueries)
		assert.Zero(t, resp.GPA) // admin dashboards carry no GPA
		assert.Len(t, resp.RecentGrades, 3)
		assert.Len(t, resp.RecentQueries, 2)
	})

	t.Run("teacher", func(t *testing.T) {
		resp := get(t, getToken(t, teacherIdent))
		assert.Equal(t, 3, resp.TotalStudents) // enrolled in classes 1 and 2
		assert.Equal(t, 1, resp.TotalTeachers)
		assert.Equal(t, 2, resp.TotalClasses)
		assert.Equal(t, 92, resp.AveragePercent) // grade 1 only
		assert.Equal(t, 100, resp.AttendanceRate)
		assert.Equal(t, 1, resp.PendingQueries)
		assert.Len(t, resp.RecentGrades, 1)
	})

	t.Run("student", func(t *testing.T) {
		resp := get(t, getToken(t, studentIdent))
		assert.Equal(t, 1, resp.TotalStudents)
		assert.Equal(t, 3, resp.TotalClasses)
		assert.Equal(t, 92, resp.AveragePercent)
		assert.Equal(t, 3.7, resp.GPA) // 92 / 25, one decimal
		assert.Equal(t, 100, resp.AttendanceRate)
	})

	t.Run("unresolved session is all zeros", func(t *testing.T) {
		resp := get(t, getToken(t, ghostIdent))
		assert.Zero(t, resp.TotalStudents)
		assert.Zero(t, resp.AveragePercent)
		assert.Zero(t, resp.GPA)
		assert.Empty(t, resp.RecentGrades)
	})
}
