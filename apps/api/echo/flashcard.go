package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/flashcard"
)

type flashcardApi struct {
	svc *flashcard.Service
}

func registerFlashcardAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *flashcard.Service) {
	api := flashcardApi{svc: svc}

	fg := g.Group("/flashcards", jwt)
	fg.POST("", api.create)
	fg.GET("", api.query)
	fg.DELETE("/:id", api.destroy)
}

func (api *flashcardApi) create(ctx echo.Context) error {
	var data flashcard.NewFlashcard
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFlashcard")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	card, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating flashcard")
	}
	return ctx.JSON(http.StatusCreated, card)
}

func (api *flashcardApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	cards, err := api.svc.Query(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying flashcards")
	}
	if cards == nil {
		cards = []flashcard.Flashcard{}
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *flashcardApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	if err := api.svc.Delete(ctx.Request().Context(), claims.Subject, ctx.Param("id")); err != nil {
		if errors.Cause(err) == flashcard.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting flashcard")
	}
	return ctx.NoContent(http.StatusNoContent)
}
