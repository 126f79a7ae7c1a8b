package domain

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// RatingData holds the aggregate score for one manifest.
type RatingData struct {
	Score   float64 `json:"score" yaml:"score"`
	Samples int     `json:"samples" yaml:"samples"`
}

// RatingRecord is the mutable score side-record paired 1:1 with a
// manifest. Exactly one of AgentID or ApplicationsID is set, depending on
// the owning entity kind.
type RatingRecord struct {
	ID             string     `json:"id" yaml:"id"`
	AgentID        string     `json:"agent_id,omitempty" yaml:"agent_id,omitempty"`
	ApplicationsID string     `json:"applications_id,omitempty" yaml:"applications_id,omitempty"`
	Data           RatingData `json:"data" yaml:"data"`
}

// NewRatingRecord builds the zero-valued rating record for a freshly
// stamped manifest.
func NewRatingRecord(id string, kind EntityKind, ownerID string) RatingRecord {
	r := RatingRecord{
		ID:   id,
		Data: RatingData{Score: 0, Samples: 0},
	}
	if kind == KindApplication {
		r.ApplicationsID = ownerID
	} else {
		r.AgentID = ownerID
	}
	return r
}

// Apply folds one submitted score into the record:
//
//	samples' = samples + 1
//	score'   = round((score + submitted) / samples', 2)
//
// The previous score field is treated as an accumulated total when
// dividing, not re-weighted as an average, so for samples > 1 the result
// is not the true mean of all submitted scores. Deployed clients depend
// on this exact update; do not change it without versioning the API.
func (r *RatingRecord) Apply(score float64) {
	r.Data.Samples++
	r.Data.Score = round2((r.Data.Score + score) / float64(r.Data.Samples))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// DecodeRatingRecord parses a stored rating document. The YAML parser
// covers both stored encodings, as in DecodeDocument.
func DecodeRatingRecord(content string) (RatingRecord, error) {
	var r RatingRecord
	if err := yaml.Unmarshal([]byte(content), &r); err != nil {
		return RatingRecord{}, fmt.Errorf("failed to decode rating record: %w", err)
	}
	return r, nil
}
