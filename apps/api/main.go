package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/academiahq/academia/apps/api/echo"
	"github.com/academiahq/academia/core"
	"github.com/academiahq/academia/core/assistant"
	"github.com/academiahq/academia/core/flashcard"
	"github.com/academiahq/academia/core/focus"
	"github.com/academiahq/academia/core/habit"
	"github.com/academiahq/academia/core/planner"
	"github.com/academiahq/academia/core/resource"
	"github.com/academiahq/academia/core/roadmap"
	"github.com/academiahq/academia/core/user"
	emailsvc "github.com/academiahq/academia/services/email"
	generativesvc "github.com/academiahq/academia/services/generative"
	knowledgesvc "github.com/academiahq/academia/services/knowledge"
	logsvc "github.com/academiahq/academia/services/logger"
	"github.com/academiahq/academia/storage/database"
	sqlxrepos "github.com/academiahq/academia/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Fatal("Failed to close", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var generator assistant.Generator
	switch conf.Assistant.Generative {
	case "huggingface":
		generator = generativesvc.NewHuggingFaceGenerator(conf)
	case "openai":
		generator = generativesvc.NewOpenAIGenerator(conf)
	}

	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc, conf)
	assistantSvc := assistant.NewService(
		sqlxrepos.NewChatRepository(db), knowledgesvc.NewWikipediaSource(conf), generator, conf)
	plannerSvc := planner.NewService(sqlxrepos.NewTaskRepository(db))
	focusSvc := focus.NewService(sqlxrepos.NewFocusRepository(db))
	habitSvc := habit.NewService(sqlxrepos.NewHabitRepository(db))
	flashcardSvc := flashcard.NewService(sqlxrepos.NewFlashcardRepository(db))
	resourceSvc := resource.NewService(sqlxrepos.NewResourceRepository(db))
	roadmapSvc := roadmap.NewService(sqlxrepos.NewRoadmapRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	planner.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			UserSvc:      usrSvc,
			AssistantSvc: assistantSvc,
			PlannerSvc:   plannerSvc,
			FocusSvc:     focusSvc,
			HabitSvc:     habitSvc,
			FlashcardSvc: flashcardSvc,
			ResourceSvc:  resourceSvc,
			RoadmapSvc:   roadmapSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
