package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
)

type queryApi struct {
	svc  *school.Service
	repo school.Repository
}

func registerQueryAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service, repo school.Repository) {
	api := queryApi{svc: svc, repo: repo}

	qg := g.Group("/queries", jwt)
	qg.GET("", api.query)
	qg.POST("", api.ask)
	qg.PUT("/:id/answer", api.answer, requireRole(auth.RoleAdmin, auth.RoleTeacher))
	qg.DELETE("/:id", api.destroy, adminMiddleware())
}

// Handlers

func (api *queryApi) query(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	queries, err := scope.Queries()
	if err != nil {
		return errors.Wrap(err, "listing visible queries")
	}

	var filter school.QueryFilter
	if err := ctx.Bind(&filter); err == nil {
		queries = school.FilterQueries(queries, filter)
	}
	return ctx.JSON(http.StatusOK, queries)
}

// ask files a question. Students and teachers always file as themselves; the
// submitted ids only stand as-is for admins.
func (api *queryApi) ask(ctx echo.Context) error {
	var data school.NewQuery
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuery")
	}

	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	switch scope.Identity().Role {
	case auth.RoleStudent:
		student, ok := scope.OwnStudent()
		if !ok {
			return core.NewValidationError("no student record is linked to this account")
		}
		data.StudentID = student.ID
		data.FromTeacher = false
		data.TeacherID = ""
	case auth.RoleTeacher:
		teacher, ok := scope.OwnTeacher()
		if !ok {
			return core.NewValidationError("no teacher record is linked to this account")
		}
		data.TeacherID = teacher.ID
		data.FromTeacher = true
	}

	if err := data.Validate(); err != nil {
		return err
	}

	q, err := api.svc.AskQuery(data)
	if err != nil {
		return errors.Wrap(err, "filing query")
	}
	return ctx.JSON(http.StatusCreated, q)
}

func (api *queryApi) answer(ctx echo.Context) error {
	var data AnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// the query must be visible to the caller: admins see all, teachers only
	// the queries of their own classes
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	queries, err := scope.Queries()
	if err != nil {
		return errors.Wrap(err, "listing visible queries")
	}
	for _, q := range queries {
		if q.ID == ctx.Param("id") {
			answered, err := api.svc.AnswerQuery(q.ID, data.Response)
			if err != nil {
				return errors.Wrap(err, "answering query")
			}
			return ctx.JSON(http.StatusOK, answered)
		}
	}
	return errHttpNotFound
}

func (api *queryApi) destroy(ctx echo.Context) error {
	scope, err := getContextScope(ctx, api.repo)
	if err != nil {
		return errors.Wrap(err, "getting context scope")
	}
	queries, err := scope.Queries()
	if err != nil {
		return errors.Wrap(err, "listing visible queries")
	}
	for _, q := range queries {
		if q.ID == ctx.Param("id") {
			if err := api.svc.DeleteQuery(q.ID); err != nil {
				return errors.Wrap(err, "deleting query")
			}
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return errHttpNotFound
}

type AnswerRequest struct {
	Response string `json:"response" validate:"required"`
}

func (ar *AnswerRequest) Validate() error {
	ar.Response = core.CleanString(ar.Response)
	return core.Validate.Struct(ar)
}
