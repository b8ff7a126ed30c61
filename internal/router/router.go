// Package router maps method and path onto exactly one handler.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quiet-dev/quiet/internal/handler"
	"github.com/quiet-dev/quiet/internal/middleware"
)

func New(h *handler.Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Home)
	r.Get("/post", h.NewPostForm)
	r.Post("/post", h.CreatePost)
	r.Post("/users", h.CreateProfile)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
