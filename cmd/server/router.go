package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/taskboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// API handlers
	authHandler := api.NewAuthHandler(
		app.userService,
		app.userStore,
		app.tokenService,
		app.passwordHasher,
	)
	boardHandler := api.NewBoardHandler(app.boardService)
	taskHandler := api.NewTaskHandler(app.taskService)
	commentHandler := api.NewCommentHandler(app.commentService)
	userHandler := api.NewUserHandler(app.userService)
	wsHandler := api.NewWSHandler(app.hub, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Websocket endpoint; the handshake is unauthenticated.
	r.Get("/ws", wsHandler.Serve)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", boardHandler.ListBoards)
			r.Post("/", boardHandler.CreateBoard)
			r.Patch("/{boardID}", boardHandler.UpdateBoard)
			r.Delete("/{boardID}", boardHandler.DeleteBoard)
			r.Get("/{boardID}/members", boardHandler.ListMembers)
			r.Post("/{boardID}/members", boardHandler.AddMember)
			r.Delete("/{boardID}/members/{memberID}", boardHandler.RemoveMember)
			r.Get("/{boardID}/tasks", boardHandler.ListTasks)
			r.Post("/{boardID}/tasks", taskHandler.CreateTask)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Patch("/{taskID}", taskHandler.UpdateTask)
			r.Delete("/{taskID}", taskHandler.DeleteTask)
			r.Get("/{taskID}/comments", commentHandler.ListComments)
			r.Post("/{taskID}/comments", commentHandler.CreateComment)
		})

		r.Get("/users/available", userHandler.ListAvailable)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
