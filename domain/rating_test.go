package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatingRecordZeroValued(t *testing.T) {
	r := NewRatingRecord("r-1", KindAgent, "a-1")

	assert.Equal(t, "r-1", r.ID)
	assert.Equal(t, "a-1", r.AgentID)
	assert.Empty(t, r.ApplicationsID)
	assert.Zero(t, r.Data.Score)
	assert.Zero(t, r.Data.Samples)
}

func TestNewRatingRecordApplicationOwner(t *testing.T) {
	r := NewRatingRecord("r-1", KindApplication, "app-1")

	assert.Equal(t, "app-1", r.ApplicationsID)
	assert.Empty(t, r.AgentID)
}

func TestApplyFormula(t *testing.T) {
	r := NewRatingRecord("r-1", KindAgent, "a-1")

	r.Apply(4)
	assert.Equal(t, 1, r.Data.Samples)
	assert.Equal(t, 4.0, r.Data.Score)

	r.Apply(2)
	assert.Equal(t, 2, r.Data.Samples)
	assert.Equal(t, 3.0, r.Data.Score)
}

// The accumulated score is divided by the new sample count without
// re-weighting, so repeated identical submissions drift downward. That
// drift is part of the wire contract.
func TestApplyTreatsScoreAsTotal(t *testing.T) {
	r := NewRatingRecord("r-1", KindAgent, "a-1")

	r.Apply(3)
	assert.Equal(t, 3.0, r.Data.Score)
	r.Apply(3)
	assert.Equal(t, 3.0, r.Data.Score)
	r.Apply(3)
	assert.Equal(t, 2.0, r.Data.Score)
	assert.Equal(t, 3, r.Data.Samples)
}

func TestApplyRoundsToTwoDecimals(t *testing.T) {
	r := NewRatingRecord("r-1", KindAgent, "a-1")

	r.Apply(2)
	r.Apply(0.005)
	assert.Equal(t, 1.0, r.Data.Score)
}

func TestDecodeRatingRecord(t *testing.T) {
	record, err := DecodeRatingRecord("id: r-1\nagent_id: a-1\ndata:\n  score: 3.5\n  samples: 2\n")
	require.NoError(t, err)
	assert.Equal(t, "r-1", record.ID)
	assert.Equal(t, "a-1", record.AgentID)
	assert.Equal(t, 3.5, record.Data.Score)
	assert.Equal(t, 2, record.Data.Samples)

	record, err = DecodeRatingRecord(`{"id": "r-2", "applications_id": "app-1", "data": {"score": 0, "samples": 0}}`)
	require.NoError(t, err)
	assert.Equal(t, "app-1", record.ApplicationsID)
}
