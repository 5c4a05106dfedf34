// Package server provides the HTTP server for the FormCheck analysis
// service.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/formcheck/internal/config"
	"github.com/ayusman/formcheck/internal/server/api"
	"github.com/ayusman/formcheck/internal/store"
)

// Config holds the server configuration.
type Config struct {
	App   config.Config
	Store *store.Store
}

// Server represents the HTTP server for the FormCheck application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	var tunings *store.TuningRepository
	if s.config.Store != nil {
		tunings = s.config.Store.Tunings()

		tuningHandler := api.NewTuningHandler(s.config.App, tunings)
		s.mux.Handle("/api/tuning", tuningHandler)
		s.mux.Handle("/api/tuning/", tuningHandler)
	}

	analyzeHandler := api.NewAnalyzeHandler(s.config.App, tunings)
	s.mux.Handle("/api/analyze", analyzeHandler)
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
