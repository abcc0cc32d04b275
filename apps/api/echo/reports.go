package echoapi

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
	reportsvc "github.com/trezcool/shule/services/report"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportApi struct {
	svc  *reportsvc.Service
	repo school.Repository
}

func registerReportAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *reportsvc.Service, repo school.Repository) {
	api := reportApi{svc: svc, repo: repo}

	rg := g.Group("/reports", jwt)
	rg.GET("/attendance.xlsx", api.attendance)
	rg.GET("/grades.xlsx", api.grades)
}

// Handlers

func (api *reportApi) attendance(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}

	var filter school.AttendanceFilter
	_ = ctx.Bind(&filter)

	var buf bytes.Buffer
	if err := api.svc.WriteAttendance(&buf, scope, filter); err != nil {
		return errors.Wrap(err, "exporting attendance")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="attendance.xlsx"`)
	return ctx.Blob(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func (api *reportApi) grades(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}

	var filter school.GradeFilter
	_ = ctx.Bind(&filter)

	var buf bytes.Buffer
	if err := api.svc.WriteGrades(&buf, scope, filter); err != nil {
		return errors.Wrap(err, "exporting grades")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="grades.xlsx"`)
	return ctx.Blob(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
