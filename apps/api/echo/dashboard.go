package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/focus"
	"github.com/academiahq/academia/core/planner"
	"github.com/academiahq/academia/core/user"
)

type dashboardApi struct {
	deps ServerDeps
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := dashboardApi{deps: deps}
	g.GET("/dashboard", api.retrieve, jwt)
}

// Dashboard is the home screen aggregate: profile, task completion,
// focus metrics and the assistant quota in one round trip.
type Dashboard struct {
	User    user.User            `json:"user"`
	Tasks   planner.TaskSummary  `json:"tasks"`
	Focus   focus.Metrics        `json:"focus"`
	Quota   assistant.QuotaState `json:"quota"`
	Streak  int                  `json:"streak"`
	Message string               `json:"message"`
}

func (api *dashboardApi) retrieve(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	reqCtx := ctx.Request().Context()

	tasks, err := api.deps.PlannerSvc.Summary(reqCtx, usr.ID)
	if err != nil {
		return errors.Wrap(err, "summarizing study tasks")
	}
	metrics, err := api.deps.FocusSvc.Metrics(reqCtx, usr.ID)
	if err != nil {
		return errors.Wrap(err, "computing focus metrics")
	}
	quota, err := api.deps.AssistantSvc.Quota(reqCtx, usr)
	if err != nil {
		return errors.Wrap(err, "getting quota")
	}

	return ctx.JSON(http.StatusOK, Dashboard{
		User:    usr,
		Tasks:   tasks,
		Focus:   metrics,
		Quota:   quota,
		Streak:  metrics.Streak,
		Message: greeting(usr),
	})
}

func greeting(usr user.User) string {
	if usr.FullName == "" {
		return "Welcome back!"
	}
	return "Welcome back, " + usr.FullName + "!"
}
