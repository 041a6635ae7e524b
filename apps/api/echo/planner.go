package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/planner"
)

type plannerApi struct {
	svc *planner.Service
}

func registerPlannerAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *planner.Service) {
	api := plannerApi{svc: svc}

	tg := g.Group("/tasks", jwt)
	tg.POST("", api.create)
	tg.GET("", api.query)
	tg.GET("/summary", api.summary)
	tg.POST("/plan", api.generatePlan)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
}

func (api *plannerApi) create(ctx echo.Context) error {
	var data planner.NewStudyTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudyTask")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	task, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating study task")
	}
	return ctx.JSON(http.StatusCreated, task)
}

func (api *plannerApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	tasks, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying study tasks")
	}
	if tasks == nil {
		tasks = []planner.StudyTask{}
	}
	return ctx.JSON(http.StatusOK, tasks)
}

func (api *plannerApi) summary(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	summary, err := api.svc.Summary(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "summarizing study tasks")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *plannerApi) generatePlan(ctx echo.Context) error {
	var data GeneratePlanRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GeneratePlanRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	tasks, err := api.svc.GeneratePlan(
		ctx.Request().Context(), claims.Subject, data.Subject, data.Syllabus, data.StartDate, data.EndDate)
	if err != nil {
		switch errors.Cause(err) {
		case planner.ErrEmptySyllabus:
			return core.NewValidationError(nil, core.FieldError{Field: "syllabus", Error: err.Error()})
		case planner.ErrInvalidRange:
			return core.NewValidationError(nil, core.FieldError{Field: "end_date", Error: err.Error()})
		}
		return errors.Wrap(err, "generating study plan")
	}
	return ctx.JSON(http.StatusCreated, tasks)
}

func (api *plannerApi) update(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	orig, err := api.svc.GetByID(ctx.Request().Context(), claims.Subject, id)
	if err != nil {
		if errors.Cause(err) == planner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding study task")
	}

	var data planner.UpdateStudyTask
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudyTask")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	task, err := api.svc.Update(ctx.Request().Context(), claims.Subject, orig, data)
	if err != nil {
		return errors.Wrap(err, "updating study task")
	}
	return ctx.JSON(http.StatusOK, task)
}

func (api *plannerApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Delete(ctx.Request().Context(), claims.Subject, id); err != nil {
		if errors.Cause(err) == planner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting study task")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type GeneratePlanRequest struct {
	Subject   string    `json:"subject" validate:"required"`
	Syllabus  string    `json:"syllabus" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

func (gp *GeneratePlanRequest) Validate() error {
	gp.Subject = core.CleanString(gp.Subject)
	gp.Syllabus = core.CleanString(gp.Syllabus)
	return core.Validate.Struct(gp)
}
