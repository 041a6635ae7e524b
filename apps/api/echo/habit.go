package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/habit"
)

type habitApi struct {
	svc *habit.Service
}

func registerHabitAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *habit.Service) {
	api := habitApi{svc: svc}

	hg := g.Group("/habits", jwt)
	hg.POST("", api.create)
	hg.GET("", api.query)
	hg.POST("/:id/toggle", api.toggle)
	hg.DELETE("/:id", api.destroy)
}

func (api *habitApi) create(ctx echo.Context) error {
	var data habit.NewHabit
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewHabit")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	h, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating habit")
	}
	return ctx.JSON(http.StatusCreated, h)
}

func (api *habitApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	habits, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying habits")
	}
	if habits == nil {
		habits = []habit.Habit{}
	}
	return ctx.JSON(http.StatusOK, habits)
}

func (api *habitApi) toggle(ctx echo.Context) error {
	var data habit.ToggleHabit
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ToggleHabit")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	h, err := api.svc.Toggle(ctx.Request().Context(), claims.Subject, ctx.Param("id"), data.Date)
	if err != nil {
		if errors.Cause(err) == habit.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "toggling habit")
	}
	return ctx.JSON(http.StatusOK, h)
}

func (api *habitApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Delete(ctx.Request().Context(), claims.Subject, ctx.Param("id")); err != nil {
		if errors.Cause(err) == habit.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting habit")
	}
	return ctx.NoContent(http.StatusNoContent)
}
