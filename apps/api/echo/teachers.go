package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

type teacherApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := teacherApi{svc: svc, repo: repo}

	tg := g.Group("/teachers", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create, adminMiddleware())

	dg := tg.Group("/:id", api.objectMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

func (api *teacherApi) objectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scope, err := getContextScope(ctx, api.repo)
			if err != nil {
				return errors.Wrap(err, "getting context scope")
			}
			teachers, err := scope.Teachers()
			if err != nil {
				return errors.Wrap(err, "listing visible teachers")
			}
			for _, t := range teachers {
				if t.ID == ctx.Param("id") {
					ctx.Set("object", t)
					return next(ctx)
				}
			}
			return errHttpNotFound
		}
	}
}

// Handlers

func (api *teacherApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	teachers, err := scope.Teachers()
	if err != nil {
		return errors.Wrap(err, "listing visible teachers")
	}

	var filter school.TeacherFilter
	if err := ctx.Bind(&filter); err == nil {
		teachers = school.FilterTeachers(teachers, filter)
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data school.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	teacher, err := api.svc.CreateTeacher(data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, teacher)
}

func (api *teacherApi) retrieve(ctx echo.Context) error {
	teacher, ok := ctx.Get("object").(school.Teacher)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving teacher from context")
	}
	return ctx.JSON(http.StatusOK, teacher)
}

func (api *teacherApi) update(ctx echo.Context) error {
	teacher, ok := ctx.Get("object").(school.Teacher)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving teacher from context")
	}

	var data school.Teacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Teacher")
	}
	data.ID = teacher.ID

	if err := api.svc.UpdateTeacher(data); err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	teacher, ok := ctx.Get("object").(school.Teacher)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving teacher from context")
	}

	if err := api.svc.DeleteTeacher(teacher.ID); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}
