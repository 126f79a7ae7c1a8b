package server

import (
	"io"
	"net/http"

	"agenticdb/domain"
)

// handleAddApplications ingests a batch of application manifests. Unlike
// /agents this route is JSON only, and the response carries the stamped
// manifests without the rating pairs.
func (s *Server) handleAddApplications(w http.ResponseWriter, r *http.Request) {
	ct, err := domain.ParseContentType(r.Header.Get("Content-Type"))
	if err != nil || ct != domain.ContentJSON {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported content type: application/json required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	pairs, err := s.registry.Register(r.Context(), domain.KindApplication, body, domain.ContentJSON)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	manifests := make([]any, len(pairs))
	for i, pair := range pairs {
		manifests[i] = pair.Manifest
	}
	writeJSON(w, http.StatusOK, manifests)
}

// handleSearchApplications runs a similarity query over the applications
// collection, JSON only.
func (s *Server) handleSearchApplications(w http.ResponseWriter, r *http.Request) {
	accept, err := domain.ParseContentType(r.Header.Get("Accept"))
	if err != nil || accept != domain.ContentJSON {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported accept type: application/json required")
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter")
		return
	}

	results, err := s.registry.Search(r.Context(), domain.KindApplication, query)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
