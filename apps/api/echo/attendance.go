package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

type attendanceApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := attendanceApi{svc: svc, repo: repo}

	ag := g.Group("/attendance", jwt)
	ag.GET("", api.query)

	staff := requireRole(auth.RoleAdmin, auth.RoleTeacher)
	ag.POST("", api.record, staff)
	ag.DELETE("/:id", api.destroy, staff)
}

// Handlers

func (api *attendanceApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	records, err := scope.Attendance()
	if err != nil {
		return errors.Wrap(err, "listing visible attendance")
	}

	var filter school.AttendanceFilter
	if err := ctx.Bind(&filter); err == nil {
		records = school.FilterAttendance(records, filter)
	}
	return ctx.JSON(http.StatusOK, records)
}

// record takes one class-day sheet; a re-take replaces whatever was recorded
// for that class and date.
func (api *attendanceApi) record(ctx echo.Context) error {
	var data school.AttendanceSheet
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AttendanceSheet")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	if ok, err := scope.CanWriteClass(data.ClassID); err != nil {
		return errors.Wrap(err, "checking class ownership")
	} else if !ok {
		return errHttpForbidden
	}

	records, err := api.svc.RecordAttendance(data)
	if err != nil {
		return errors.Wrap(err, "recording attendance")
	}
	return ctx.JSON(http.StatusCreated, records)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	records, err := scope.Attendance()
	if err != nil {
		return errors.Wrap(err, "listing visible attendance")
	}

	for _, rec := range records {
		if rec.ID == ctx.Param("id") {
			if ok, err := scope.CanWriteClass(rec.ClassID); err != nil {
				return errors.Wrap(err, "checking class ownership")
			} else if !ok {
				return errHttpForbidden
			}
			if err := api.svc.DeleteAttendance(rec.ID); err != nil {
				return errors.Wrap(err, "deleting attendance")
			}
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return errHttpNotFound
}
