// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	boardHandler *handlers.BoardHandler,
	preferenceHandler *handlers.PreferenceHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Project list.
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
		r.Post("/projects/reorder", projectHandler.ReorderProjects)
		r.Patch("/projects/{id}", projectHandler.RenameProject)
		r.Delete("/projects/{id}", projectHandler.DeleteProject)
		r.Post("/projects/{id}/duplicate", projectHandler.DuplicateProject)

		// Per-project board.
		r.Get("/projects/{id}/board", boardHandler.GetBoard)
		r.Post("/projects/{id}/board/columns", boardHandler.AddColumn)
		r.Patch("/projects/{id}/board/columns/{columnId}", boardHandler.RenameColumn)
		r.Delete("/projects/{id}/board/columns/{columnId}", boardHandler.DeleteColumn)
		r.Post("/projects/{id}/board/tasks", boardHandler.CreateTask)
		r.Patch("/projects/{id}/board/tasks/{taskId}", boardHandler.UpdateTask)
		r.Delete("/projects/{id}/board/tasks/{taskId}", boardHandler.DeleteTask)
		r.Post("/projects/{id}/board/moves", boardHandler.MoveTask)
		r.Get("/boards/summary", boardHandler.Summaries)

		// Preferences.
		r.Get("/preferences/theme", preferenceHandler.GetTheme)
		r.Put("/preferences/theme", preferenceHandler.SetTheme)
		r.Post("/preferences/theme/toggle", preferenceHandler.ToggleTheme)
	})

	return r
}
