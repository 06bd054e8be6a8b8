// Package router sets up the HTTP routes and middleware chain for the
// PromptPress API server.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"promptpress/internal/handlers"
	"promptpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Write endpoints can trigger external AI calls; keep them rate limited.
	limiter := middleware.NewRateLimiter(120, time.Minute)
	r.Use(limiter.Middleware)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Post("/", api.TemplateCreate)
			r.Get("/", api.TemplateList)
			r.Get("/{id}", api.TemplateGet)
			r.Put("/{id}", api.TemplateUpdate)
			r.Delete("/{id}", api.TemplateDelete)
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Post("/", api.PromptCreate)
			r.Get("/", api.PromptList)
			r.Get("/{id}", api.PromptGet)
			r.Delete("/{id}", api.PromptDelete)
			r.Get("/{id}/preview", api.PromptPreview)

			r.Post("/{id}/response", api.ResponseSubmit)
			r.Get("/{id}/response", api.ResponseGet)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
