package server

import (
	"io"
	"net/http"

	"agenticdb/domain"
)

// handleAddAgents ingests a batch of agent manifests. The body may be a
// JSON object or array, or a YAML multi-document stream; the response
// uses the request's encoding and pairs each stamped manifest with its
// new rating record.
func (s *Server) handleAddAgents(w http.ResponseWriter, r *http.Request) {
	ct, err := domain.ParseContentType(r.Header.Get("Content-Type"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}

	pairs, err := s.registry.Register(r.Context(), domain.KindAgent, body, ct)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	items := make([]any, len(pairs))
	for i, pair := range pairs {
		items[i] = map[string]any{
			"agent_manifest":   pair.Manifest,
			"ratings_manifest": pair.Rating,
		}
	}
	s.writeEncoded(w, http.StatusOK, items, ct)
}

// handleSearchAgents runs a similarity query over the agents collection
// and returns each hit merged with its rating record, encoded per the
// Accept header.
func (s *Server) handleSearchAgents(w http.ResponseWriter, r *http.Request) {
	accept, err := domain.ParseContentType(r.Header.Get("Accept"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter")
		return
	}

	results, err := s.registry.Search(r.Context(), domain.KindAgent, query)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	items := make([]any, len(results))
	for i, result := range results {
		items[i] = result
	}
	s.writeEncoded(w, http.StatusOK, items, accept)
}
