package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// RouterOptions configures the API middleware stack.
type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	// TokenSecret enables bearer token auth on /api/v1 when non-empty.
	TokenSecret string
}

// NewRouter wires the API routes. ctx bounds the lifetime of background
// middleware work such as rate limiter cleanup.
func NewRouter(ctx context.Context, svc *service.GeneratorService, opts RouterOptions) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
		}
		if opts.TokenSecret != "" {
			r.Use(middleware.TokenAuth(opts.TokenSecret))
		}

		r.Post("/generate", genHandler.HandleGenerate)
		r.Get("/presets", genHandler.HandlePresets)
	})

	return r
}
