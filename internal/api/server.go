package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cigo/compound-calculator/internal/config"
	"github.com/cigo/compound-calculator/internal/i18n"
)

// NewRouter creates the API router with the standard middleware stack and
// applies the server's default locale to the handler.
func NewRouter(h *Handler, cfg config.ServerConfig) *chi.Mux {
	if tag, ok := i18n.ParseTag(cfg.DefaultLocale); ok {
		h.DefaultLocale = tag
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/chart", h.Chart)
		r.Get("/frequencies", h.Frequencies)
		r.Get("/healthz", h.Healthz)
	})

	return r
}
