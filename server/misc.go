package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"agenticdb/domain"
)

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "agenticdb",
	})
}

// handleSchema returns the JSON schema manifests are expected to follow.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.ManifestJSONSchema())
}

// handleIndex serves the static landing page at /, falling back to a
// service banner when no static directory is present.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"service": "Agentic DB API"})
		return
	}
	http.ServeFile(w, r, index)
}

// jokeRequest is the JSON body of POST /joke.
type jokeRequest struct {
	Topic string `json:"topic"`
}

// handleJoke asks the configured chat model for a joke about a topic.
func (s *Server) handleJoke(w http.ResponseWriter, r *http.Request) {
	var req jokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON content")
		return
	}
	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "missing topic")
		return
	}
	if s.chat == nil {
		writeError(w, http.StatusInternalServerError, "chat model not configured")
		return
	}

	joke, err := s.chat.Complete(r.Context(), fmt.Sprintf("tell me a joke about %s", req.Topic))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"joke": joke})
}
