package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/todo-api/internal/api"
	apiMiddleware "github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Paths are accepted with or without a trailing slash.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	resetHandler := api.NewPasswordResetHandler(app.passwordResetService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Post("/token/refresh", authHandler.RefreshToken)
	r.Post("/password-reset", resetHandler.RequestReset)
	r.Post("/password-reset-confirm/{"+api.ResetUIDParam+"}/{"+api.ResetTokenParam+"}", resetHandler.ConfirmReset)

	r.With(authMiddleware.Authenticate).Get("/home", authHandler.Home)

	r.Group(func(r chi.Router) {
		if app.config.Tasks.RequireAuth {
			r.Use(authMiddleware.Authenticate)
		}

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)

			r.Route("/{"+api.TaskIDParam+":[0-9]+}", func(r chi.Router) {
				r.Get("/", taskHandler.GetTask)
				r.Put("/", taskHandler.ReplaceTask)
				r.Patch("/", taskHandler.PatchTask)
				r.Delete("/", taskHandler.DeleteTask)
			})
		})
	})

	r.Get("/health", api.Health)

	return r
}
