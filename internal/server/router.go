package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter は API のルーティングを構築します。
func NewRouter(h *Handler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, middleware.RealIP, middleware.Recoverer, Logger(logger))

	r.Get("/healthz", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/options", h.PoemOptions)
		r.Get("/samples", h.Samples)
		r.Post("/poems", h.CreatePoem)
		r.Post("/poems/upload", h.UploadPoem)
	})

	return r
}
