package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

var errObjNotFoundInCtx = errors.New("object not found in echo.Context")

type studentApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := studentApi{svc: svc, repo: repo}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.POST("", api.create, adminMiddleware())

	// detail endpoints
	dg := sg.Group("/:id", api.objectMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

// objectMiddleware resolves the student by id among the caller's visible
// students; anything outside the caller's scope is indistinguishable from a
// missing record.
func (api *studentApi) objectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scope, err := getContextScope(ctx, api.repo)
			if err != nil {
				return errors.Wrap(err, "getting context scope")
			}
			students, err := scope.Students()
			if err != nil {
				return errors.Wrap(err, "listing visible students")
			}
			for _, s := range students {
				if s.ID == ctx.Param("id") {
					ctx.Set("object", s)
					return next(ctx)
				}
			}
			return errHttpNotFound
		}
	}
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	students, err := scope.Students()
	if err != nil {
		return errors.Wrap(err, "listing visible students")
	}

	var filter school.StudentFilter
	if err := ctx.Bind(&filter); err == nil {
		students = school.FilterStudents(students, filter)
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data school.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	student, err := api.svc.CreateStudent(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	student, ok := ctx.Get("object").(school.Student)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving student from context")
	}
	return ctx.JSON(http.StatusOK, student)
}

func (api *studentApi) update(ctx echo.Context) error {
	student, ok := ctx.Get("object").(school.Student)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving student from context")
	}

	var data school.Student
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	data.ID = student.ID

	if err := api.svc.UpdateStudent(data); err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	student, ok := ctx.Get("object").(school.Student)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving student from context")
	}

	if err := api.svc.DeleteStudent(student.ID); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}
