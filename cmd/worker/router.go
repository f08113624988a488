package main

import (
	"context"
	"net/http"
	"time"

	"marcingest/internal/config"
	"marcingest/internal/httpx"
	"marcingest/internal/importer"

	"github.com/go-chi/chi/v5"
)

type routerConfig struct {
	InternalSecret string
	MaxBodyBytes   int64
	RateLimit      config.RateLimitConfig
}

func newRouter(ctx context.Context, cfg routerConfig, ping func(context.Context) error, jobs *importer.HTTPHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			perSecond := float64(cfg.RateLimit.RequestsPerMinute) / 60
			r.Use(httpx.NewRateLimitMiddleware(ctx, perSecond, cfg.RateLimit.RequestsPerMinute).Middleware)
		}
		if cfg.MaxBodyBytes > 0 {
			r.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
		}
		r.Use(httpx.InternalSecretMiddleware(cfg.InternalSecret))
		jobs.Routes(r)
	})

	return r
}
