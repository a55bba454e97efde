// Package v1handler implements the v1 HTTP API on top of the scan coordinator.
package v1handler

import (
	"net/http"
	"privacymon/internal/scanning"

	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Coordinator scanning.Coordinator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router. Every route requires a bearer token checked
// by sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Route("/scans", func(r chi.Router) {
		r.Post("/", h.CreateScan)
		r.Get("/", h.ListScans)
		r.Get("/{id}", h.GetScan)
	})

	return r
}
