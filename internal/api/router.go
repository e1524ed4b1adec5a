package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Auth endpoints (no auth required)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/gadgets", func(r chi.Router) {
			r.Get("/", s.handleListGadgets)
			r.Post("/", s.handleCreateGadget)

			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/", s.handleUpdateGadget)
				r.Delete("/", s.handleDecommissionGadget)
				r.Post("/self-destruct/generate-code", s.handleGenerateSelfDestructCode)
				r.Post("/self-destruct", s.handleConfirmSelfDestruct)
			})
		})

		// Real-time gadget lifecycle events
		r.Get("/events", s.handleEvents)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
