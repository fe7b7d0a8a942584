package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/munro/internal/munroservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *munroservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Route("/munros", func(r chi.Router) {
		r.Get("/", h.ListMunros)
		r.Get("/minimum-height/{minHeight}/maximum-height/{maxHeight}", h.HeightRange)
		r.Get("/minimum-height/{height}", h.MinimumHeight)
		r.Get("/maximum-height/{height}", h.MaximumHeight)
		r.Get("/{runningNo}", h.GetMunro)
	})

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
