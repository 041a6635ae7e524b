package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/flashcard"
	"github.com/academiahq/academia/core/focus"
	"github.com/academiahq/academia/core/habit"
	"github.com/academiahq/academia/core/planner"
	"github.com/academiahq/academia/core/resource"
	"github.com/academiahq/academia/core/roadmap"
	"github.com/academiahq/academia/core/user"
)

type (
	ServerDeps struct {
		Conf         *core.Config
		Logger       core.Logger
		UserSvc      *user.Service
		AssistantSvc *assistant.Service
		PlannerSvc   *planner.Service
		FocusSvc     *focus.Service
		HabitSvc     *habit.Service
		FlashcardSvc *flashcard.Service
		ResourceSvc  *resource.Service
		RoadmapSvc   *roadmap.Service
	}

	Server struct {
		deps ServerDeps
		app  *echo.Echo

		errCh      chan error
		shutdownCh chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:       deps,
		app:        echo.New(),
		errCh:      make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerUserAPI(v1, jwt, s.deps.UserSvc, conf)
	registerDashboardAPI(v1, jwt, s.deps)
	registerAssistantAPI(v1, jwt, s.deps.AssistantSvc, s.deps.UserSvc)
	registerPlannerAPI(v1, jwt, s.deps.PlannerSvc)
	registerFocusAPI(v1, jwt, s.deps.FocusSvc)
	registerHabitAPI(v1, jwt, s.deps.HabitSvc)
	registerFlashcardAPI(v1, jwt, s.deps.FlashcardSvc)
	registerResourceAPI(v1, jwt, s.deps.ResourceSvc)
	registerRoadmapAPI(v1, jwt, s.deps.RoadmapSvc)
}

func (s *Server) Start() {
	s.errCh <- s.app.Start(s.deps.Conf.Server.APIHost)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errCh
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

// signalShutdown lets the error handler trigger a graceful stop on
// unrecoverable errors.
func (s *Server) signalShutdown() {
	s.shutdownCh <- syscall.SIGTERM
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Academia API!")
}
