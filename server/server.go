// Package server exposes the manifest registry over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"agenticdb/application"
	"agenticdb/domain"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config wires the server's collaborators. Everything here is
// constructed once at startup and shared read-only across requests.
type Config struct {
	Registry    *application.RegistryService
	Ratings     *application.RatingService
	Maintenance *application.MaintenanceService
	Chat        domain.ChatCompleter
	StaticDir   string
	Logger      *slog.Logger
}

// Server is the HTTP server for the Agentic DB API.
type Server struct {
	registry    *application.RegistryService
	ratings     *application.RatingService
	maintenance *application.MaintenanceService
	chat        domain.ChatCompleter
	staticDir   string
	logger      *slog.Logger
	handler     http.Handler
}

// New creates a new Server with all routes and middleware registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		registry:    cfg.Registry,
		ratings:     cfg.Ratings,
		maintenance: cfg.Maintenance,
		chat:        cfg.Chat,
		staticDir:   cfg.StaticDir,
		logger:      logger,
	}

	mux := http.NewServeMux()
	s.routes(mux)
	s.handler = s.withLogging(s.withMetrics(s.withCORS(mux)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// routes registers all HTTP routes on the mux.
func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /agents", s.handleAddAgents)
	mux.HandleFunc("GET /agents", s.handleSearchAgents)

	mux.HandleFunc("POST /applications", s.handleAddApplications)
	mux.HandleFunc("GET /applications", s.handleSearchApplications)

	mux.HandleFunc("POST /ratings", s.handleSubmitRating)
	mux.HandleFunc("GET /ratings", s.handleGetRating)

	mux.HandleFunc("DELETE /collections", s.handleResetCollections)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /schema", s.handleSchema)
	mux.HandleFunc("POST /joke", s.handleJoke)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /", s.handleIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the structured error body every failure carries.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeEncoded serializes a batch of response items in the negotiated
// encoding: a JSON array or a YAML multi-document stream.
func (s *Server) writeEncoded(w http.ResponseWriter, status int, items []any, ct domain.ContentType) {
	out, err := domain.EncodeDocuments(items, ct)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", ct.MediaType())
	w.WriteHeader(status)
	w.Write(out)
}

// writeServiceError maps a service error onto its HTTP status and writes
// the error body.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnsupportedContentType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrMalformedContent), errors.Is(err, domain.ErrMissingMetadata):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRatingsNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("error", err.Error()))
	}
	writeError(w, status, err.Error())
}
