package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handlers interface {
	Health(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
	GetOrderMeta(w http.ResponseWriter, r *http.Request)
	GetTotal(w http.ResponseWriter, r *http.Request)
}

// InitRoutes - apiMiddlewares применяются только к /api/*
func InitRoutes(r *chi.Mux, h Handlers, apiMiddlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r.Get("/", h.Health)
	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddlewares...)

		r.Get("/order-meta", h.GetOrderMeta)
		r.Get("/total", h.GetTotal)
	})

	return r
}
