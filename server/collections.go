package server

import "net/http"

// handleResetCollections wipes and recreates every collection. Each
// collection is reset best-effort; the response carries one status
// string per collection.
func (s *Server) handleResetCollections(w http.ResponseWriter, r *http.Request) {
	results := s.maintenance.ResetAll(r.Context())
	writeJSON(w, http.StatusOK, results)
}
