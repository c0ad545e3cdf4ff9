package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// Server holds the API server state.
type Server struct {
	catalog Catalog
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server.
func NewServer(catalog Catalog, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		catalog: catalog,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleLookup answers GET /api/v1/lookup?msgid=...&context=...
// A miss is not an error: the response carries the msgid itself as its
// translation, mirroring the gettext fallback.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	msgid := r.URL.Query().Get("msgid")
	if msgid == "" {
		sendError(w, "Missing msgid query parameter", http.StatusBadRequest)
		return
	}
	context := r.URL.Query().Get("context")

	var translation string
	if context != "" {
		translation = s.catalog.LookupWithContext(context, msgid)
	} else {
		translation = s.catalog.Lookup(msgid)
	}
	s.metrics.RecordLookup(translation != msgid)

	sendSuccess(w, LookupResponse{
		MsgID:       msgid,
		Context:     context,
		Translation: translation,
	})
}

// handleInfo answers GET /api/v1/info with catalog statistics.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	entries := s.catalog.Entries()

	info := InfoResponse{
		Entries:     s.catalog.Count(),
		Header:      s.catalog.Header(),
		CatalogPath: s.config.CatalogPath,
	}
	contexts := make(map[string]struct{})
	for _, e := range entries {
		if e.Context == "" {
			info.Flat++
			continue
		}
		info.Contextual++
		contexts[e.Context] = struct{}{}
	}
	info.Contexts = len(contexts)

	sendSuccess(w, info)
}

// handleEntries answers GET /api/v1/entries with the full entry dump.
func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, s.catalog.Entries())
}

// handleReload answers POST /api/v1/reload by re-reading the configured
// catalog file. The table is rebuilt from scratch; entries of the
// previous load do not survive.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.config.CatalogPath == "" {
		sendError(w, "No catalog path configured", http.StatusBadRequest)
		return
	}

	if err := s.catalog.Open(s.config.CatalogPath); err != nil {
		s.metrics.RecordLoad(false)
		log.Error().Err(err).Str("catalog", s.config.CatalogPath).Msg("catalog reload failed")
		sendError(w, s.catalog.LastError(), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordLoad(true)
	s.metrics.SetCatalogEntries(s.catalog.Count())
	log.Info().Str("catalog", s.config.CatalogPath).Int("entries", s.catalog.Count()).Msg("catalog reloaded")

	sendSuccess(w, ReloadResponse{
		CatalogPath: s.config.CatalogPath,
		Entries:     s.catalog.Count(),
	})
}
