// Package api exposes a loaded MO catalog over HTTP: translation lookups,
// catalog info, entry dumps, and an explicit reload endpoint, plus
// Prometheus metrics for scraping.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// StartServer starts the HTTP server with all routes configured. It
// blocks until the listener fails.
func StartServer(catalog Catalog, config ServerConfig) error {
	metrics := NewMetrics()
	metrics.SetCatalogEntries(catalog.Count())

	server := NewServer(catalog, config, metrics)
	router := server.Routes()

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Info().
		Str("addr", addr).
		Int("entries", catalog.Count()).
		Bool("authenticated", config.APIKey != "").
		Msg("mocat API listening")

	return http.ListenAndServe(addr, router)
}

// Routes builds the chi router for the server.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			r.Use(apiKeyMiddleware(s.config.APIKey))
		}

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Get("/lookup", s.metrics.InstrumentHandler("GET", "/api/v1/lookup", s.handleLookup))
		r.Get("/info", s.metrics.InstrumentHandler("GET", "/api/v1/info", s.handleInfo))
		r.Get("/entries", s.metrics.InstrumentHandler("GET", "/api/v1/entries", s.handleEntries))
		r.Post("/reload", s.metrics.InstrumentHandler("POST", "/api/v1/reload", s.handleReload))
	})

	return r
}
