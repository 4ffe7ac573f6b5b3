package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the dashboard API
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/stats", h.GetStats)
		r.Get("/ranking", h.GetRanking)
		r.Get("/goal", h.GetGoal)
		r.Put("/goal", h.PutGoal)
		r.Post("/refresh", h.PostRefresh)
	})

	return r
}
