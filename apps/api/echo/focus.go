package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/focus"
)

type focusApi struct {
	svc *focus.Service
}

func registerFocusAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *focus.Service) {
	api := focusApi{svc: svc}

	fg := g.Group("/focus-sessions", jwt)
	fg.POST("", api.create)
	fg.GET("", api.query)
	fg.GET("/metrics", api.metrics)
}

func (api *focusApi) create(ctx echo.Context) error {
	var data focus.NewSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSession")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	session, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "recording focus session")
	}
	return ctx.JSON(http.StatusCreated, session)
}

func (api *focusApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	sessions, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying focus sessions")
	}
	if sessions == nil {
		sessions = []focus.Session{}
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *focusApi) metrics(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	metrics, err := api.svc.Metrics(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "computing focus metrics")
	}
	return ctx.JSON(http.StatusOK, metrics)
}
