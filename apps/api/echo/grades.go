package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

type gradeApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerGradeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := gradeApi{svc: svc, repo: repo}

	gg := g.Group("/grades", jwt)
	gg.GET("", api.query)

	staff := requireRole(auth.RoleAdmin, auth.RoleTeacher)
	gg.POST("", api.create, staff)

	dg := gg.Group("/:id", staff, api.objectMiddleware())
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// objectMiddleware resolves the grade by id among the caller's visible grades
// and rejects writes to classes the caller does not teach.
func (api *gradeApi) objectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scope, err := getContextScope(ctx, api.repo)
			if err != nil {
				return errors.Wrap(err, "getting context scope")
			}
			grades, err := scope.Grades()
			if err != nil {
				return errors.Wrap(err, "listing visible grades")
			}
			for _, gr := range grades {
				if gr.ID == ctx.Param("id") {
					if ok, err := scope.CanWriteClass(gr.ClassID); err != nil {
						return errors.Wrap(err, "checking class ownership")
					} else if !ok {
						return errHttpForbidden
					}
					ctx.Set("object", gr)
					return next(ctx)
				}
			}
			return errHttpNotFound
		}
	}
}

// Handlers

func (api *gradeApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	grades, err := scope.Grades()
	if err != nil {
		return errors.Wrap(err, "listing visible grades")
	}

	var filter school.GradeFilter
	if err := ctx.Bind(&filter); err == nil {
		grades = school.FilterGrades(grades, filter)
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) create(ctx echo.Context) error {
	var data school.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
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

	grade, err := api.svc.CreateGrade(data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, grade)
}

func (api *gradeApi) update(ctx echo.Context) error {
	grade, ok := ctx.Get("object").(school.Grade)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving grade from context")
	}

	var data school.Grade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Grade")
	}
	data.ID = grade.ID

	if err := api.svc.UpdateGrade(data); err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *gradeApi) destroy(ctx echo.Context) error {
	grade, ok := ctx.Get("object").(school.Grade)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving grade from context")
	}

	if err := api.svc.DeleteGrade(grade.ID); err != nil {
		return errors.Wrap(err, "deleting grade")
	}
	return ctx.NoContent(http.StatusNoContent)
}
