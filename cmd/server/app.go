package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/hub"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	boardStore   store.BoardStore
	taskStore    store.TaskStore
	commentStore store.CommentStore

	// Service layer
	tokenService   auth.TokenService
	passwordHasher *auth.BcryptHasher
	userService    *service.UserService
	boardService   *service.BoardService
	taskService    *service.TaskService
	commentService *service.CommentService

	// Event system
	emitter *events.InMemoryEmitter
	hub     *hub.Hub

	// Cancels the hub's run loop on shutdown.
	stopHub context.CancelFunc
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher()

	// Stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.boardStore = postgres.NewPostgresBoardStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)

	// Event emitter and broadcast hub. The hub subscribes to every emitted
	// event and fans it out to connected websocket clients.
	app.emitter = events.NewInMemoryEmitter(logger)
	app.hub = hub.New(logger)
	app.emitter.RegisterHandler(app.hub)

	hubCtx, stopHub := context.WithCancel(ctx)
	app.stopHub = stopHub
	go app.hub.Run(hubCtx)

	// Services
	app.userService, err = service.NewUserService(db, app.userStore, app.passwordHasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.boardService, err = service.NewBoardService(
		db,
		app.boardStore,
		app.userStore,
		app.taskStore,
		app.emitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create board service: %w", err)
	}

	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.boardStore,
		app.userStore,
		app.emitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.commentService, err = service.NewCommentService(
		app.commentStore,
		app.taskStore,
		app.boardStore,
		app.userStore,
		app.emitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Stop the broadcast hub; this closes all websocket connections.
	if app.stopHub != nil {
		app.stopHub()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
