package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/user"
)

type assistantApi struct {
	svc     *assistant.Service
	userSvc *user.Service
}

func registerAssistantAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *assistant.Service, userSvc *user.Service) {
	api := assistantApi{svc: svc, userSvc: userSvc}

	ag := g.Group("/assistant", jwt)
	ag.GET("/quota", api.quota)
	ag.GET("/history", api.history)
	ag.DELETE("/history", api.clear)
	ag.POST("/ask", api.ask)
}

func (api *assistantApi) quota(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	quota, err := api.svc.Quota(ctx.Request().Context(), usr)
	if err != nil {
		return errors.Wrap(err, "getting quota")
	}
	return ctx.JSON(http.StatusOK, quota)
}

func (api *assistantApi) history(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	msgs, err := api.svc.History(ctx.Request().Context(), usr)
	if err != nil {
		return errors.Wrap(err, "getting chat history")
	}
	if msgs == nil {
		msgs = []assistant.ChatMessage{}
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *assistantApi) clear(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	if err := api.svc.Clear(ctx.Request().Context(), usr); err != nil {
		return errors.Wrap(err, "clearing chat history")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assistantApi) ask(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data AskRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AskRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	reply, err := api.svc.Ask(ctx.Request().Context(), usr, data.Query)
	if err != nil {
		if errors.Cause(err) == assistant.ErrQuotaExhausted {
			return errQuotaExceeded
		}
		return errors.Wrap(err, "asking assistant")
	}
	return ctx.JSON(http.StatusOK, reply)
}

type AskRequest struct {
	Query string `json:"query" validate:"required"`
}

func (ar *AskRequest) Validate() error {
	ar.Query = core.CleanString(ar.Query)
	return core.Validate.Struct(ar)
}
