package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

// recentCount is how many recent grades/queries the dashboard shows.
const recentCount = 5

type dashboardApi struct {
	repo school.Repository
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, repo school.Repository) {
	api := dashboardApi{repo: repo}
	g.GET("/dashboard", api.retrieve, jwt)
}

// DashboardResponse carries the landing-page stats; every number is computed
// over the caller's visible slice of the data, so the same endpoint serves
// all three roles.
type DashboardResponse struct {
	TotalStudents  int `json:"total_students"`
	TotalTeachers  int `json:"total_teachers"`
	TotalClasses   int `json:"total_classes"`
	AveragePercent int `json:"average_percent"`
	AttendanceRate int `json:"attendance_rate"`
	PendingQueries int `json:"pending_queries"`

	// GPA is only reported on the student dashboard.
	GPA float64 `json:"gpa,omitempty"`

	RecentGrades  []school.Grade        `json:"recent_grades"`
	RecentQueries []school.StudentQuery `json:"recent_queries"`
}

func (api *dashboardApi) retrieve(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}

	students, err := scope.Students()
	if err != nil {
		return errors.Wrap(err, "listing visible students")
	}
	teachers, err := scope.Teachers()
	if err != nil {
		return errors.Wrap(err, "listing visible teachers")
	}
	classes, err := scope.Classes()
	if err != nil {
		return errors.Wrap(err, "listing visible classes")
	}
	grades, err := scope.Grades()
	if err != nil {
		return errors.Wrap(err, "listing visible grades")
	}
	attendance, err := scope.Attendance()
	if err != nil {
		return errors.Wrap(err, "listing visible attendance")
	}
	queries, err := scope.Queries()
	if err != nil {
		return errors.Wrap(err, "listing visible queries")
	}

	resp := DashboardResponse{
		TotalStudents:  len(students),
		TotalTeachers:  len(teachers),
		TotalClasses:   len(classes),
		AveragePercent: school.AveragePercent(grades),
		AttendanceRate: school.AttendanceRate(attendance),
		PendingQueries: len(school.FilterQueries(queries, school.QueryFilter{Status: school.QueryPending})),
		RecentGrades:   school.Recent(grades, recentCount),
		RecentQueries:  school.Recent(queries, recentCount),
	}
	if scope.Identity().Role == auth.RoleStudent {
		resp.GPA = school.GPA(grades)
	}
	return ctx.JSON(http.StatusOK, resp)
}
