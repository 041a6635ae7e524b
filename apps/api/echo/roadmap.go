package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/roadmap"
)

type roadmapApi struct {
	svc *roadmap.Service
}

func registerRoadmapAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *roadmap.Service) {
	api := roadmapApi{svc: svc}

	rg := g.Group("/roadmap", jwt)
	rg.POST("", api.generate)
	rg.GET("", api.retrieve)
}

func (api *roadmapApi) generate(ctx echo.Context) error {
	var data roadmap.GenerateRoadmap
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateRoadmap")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	rm, err := api.svc.Generate(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "generating career roadmap")
	}
	return ctx.JSON(http.StatusOK, rm)
}

func (api *roadmapApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	rm, err := api.svc.Get(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Cause(err) == roadmap.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting career roadmap")
	}
	return ctx.JSON(http.StatusOK, rm)
}
