package server

import (
	"bytes"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// ratingSubmission is the YAML body of POST /ratings.
type ratingSubmission struct {
	Ratings *struct {
		ID   string `yaml:"id"`
		Data struct {
			Score float64 `yaml:"score"`
		} `yaml:"data"`
	} `yaml:"ratings"`
}

// handleSubmitRating folds one submitted score into an existing rating
// record. The body is YAML; the response is JSON.
func (s *Server) handleSubmitRating(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, "empty or whitespace-only body")
		return
	}

	var submission ratingSubmission
	if err := yaml.Unmarshal(body, &submission); err != nil {
		writeError(w, http.StatusBadRequest, "invalid YAML content")
		return
	}
	if submission.Ratings == nil || submission.Ratings.ID == "" {
		writeError(w, http.StatusBadRequest, "ratings id not found in content")
		return
	}

	record, err := s.ratings.Submit(r.Context(), submission.Ratings.ID, submission.Ratings.Data.Score)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ratings": record})
}

// handleGetRating returns one rating record by id.
func (s *Server) handleGetRating(w http.ResponseWriter, r *http.Request) {
	ratingsID := r.URL.Query().Get("ratings_id")
	if ratingsID == "" {
		writeError(w, http.StatusBadRequest, "missing ratings_id parameter")
		return
	}

	record, err := s.ratings.Get(r.Context(), ratingsID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
