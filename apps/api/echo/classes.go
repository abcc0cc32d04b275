package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/school"
)

type classApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerClassAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := classApi{svc: svc, repo: repo}

	cg := g.Group("/classes", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create, adminMiddleware())

	dg := cg.Group("/:id", api.objectMiddleware())
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, adminMiddleware())
	dg.DELETE("", api.destroy, adminMiddleware())
}

func (api *classApi) objectMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			scope, err := getContextScope(ctx, api.repo)
			if err != nil {
				return errors.Wrap(err, "getting context scope")
			}
			classes, err := scope.Classes()
			if err != nil {
				return errors.Wrap(err, "listing visible classes")
			}
			for _, c := range classes {
				if c.ID == ctx.Param("id") {
					ctx.Set("object", c)
					return next(ctx)
				}
			}
			return errHttpNotFound
		}
	}
}

// Handlers

func (api *classApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	classes, err := scope.Classes()
	if err != nil {
		return errors.Wrap(err, "listing visible classes")
	}

	var filter school.ClassFilter
	if err := ctx.Bind(&filter); err == nil {
		classes = school.FilterClasses(classes, filter)
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) create(ctx echo.Context) error {
	var data school.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	class, err := api.svc.CreateClass(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, class)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	class, ok := ctx.Get("object").(school.Class)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving class from context")
	}
	return ctx.JSON(http.StatusOK, class)
}

func (api *classApi) update(ctx echo.Context) error {
	class, ok := ctx.Get("object").(school.Class)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving class from context")
	}

	var data school.Class
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Class")
	}
	data.ID = class.ID

	if err := api.svc.UpdateClass(data); err != nil {
		return errors.Wrap(err, "updating class")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *classApi) destroy(ctx echo.Context) error {
	class, ok := ctx.Get("object").(school.Class)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving class from context")
	}

	if err := api.svc.DeleteClass(class.ID); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.NoContent(http.StatusNoContent)
}
