package application

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"agenticdb/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterStampsIdentity(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	body := []byte(`{"metadata": {"name": "agent-1", "namespace": "production", "description": "retrieves prices"}, "spec": {"type": "agent"}}`)
	pairs, err := svc.Register(context.Background(), domain.KindAgent, body, domain.ContentJSON)
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	manifest := pairs[0].Manifest
	_, err = uuid.Parse(manifest.ID())
	assert.NoError(t, err, "entity id must be UUID-shaped")
	_, err = uuid.Parse(manifest.RatingsID())
	assert.NoError(t, err, "ratings id must be UUID-shaped")

	rating := pairs[0].Rating
	assert.Equal(t, manifest.RatingsID(), rating.ID)
	assert.Equal(t, manifest.ID(), rating.AgentID)
	assert.Zero(t, rating.Data.Score)
	assert.Zero(t, rating.Data.Samples)

	// Both documents persisted, entity in agents and the side-record in
	// ratings.
	doc, found, err := store.Get(context.Background(), domain.CollectionAgents, manifest.ID())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, doc.Version)
	assert.NotEmpty(t, doc.Timestamp)

	ratingDoc, found, err := store.Get(context.Background(), domain.CollectionRatings, rating.ID)
	require.NoError(t, err)
	require.True(t, found)
	stored, err := domain.DecodeRatingRecord(ratingDoc.Content)
	require.NoError(t, err)
	assert.Equal(t, manifest.ID(), stored.AgentID)
}

func TestRegisterApplicationOwnerKey(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	body := []byte(`[{"metadata": {"name": "app-1"}}]`)
	pairs, err := svc.Register(context.Background(), domain.KindApplication, body, domain.ContentJSON)
	require.NoError(t, err)
	require.Len(t, pairs, 1)

	assert.Empty(t, pairs[0].Rating.AgentID)
	assert.Equal(t, pairs[0].Manifest.ID(), pairs[0].Rating.ApplicationsID)
	assert.Equal(t, 1, store.count(domain.CollectionApplications))
}

func TestRegisterMissingMetadataAbortsBatch(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	body := []byte(`[{"metadata": {"name": "good"}}, {"spec": {"type": "agent"}}, {"metadata": {"name": "never reached"}}]`)
	_, err := svc.Register(context.Background(), domain.KindAgent, body, domain.ContentJSON)
	require.ErrorIs(t, err, domain.ErrMissingMetadata)

	// Items before the failing one are already persisted; the rest of
	// the batch is abandoned.
	assert.Equal(t, 1, store.count(domain.CollectionAgents))
	assert.Equal(t, 1, store.count(domain.CollectionRatings))
}

func TestRegisterYAMLStoresYAML(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	body := []byte("metadata:\n  name: a\n---\nmetadata:\n  name: b\n")
	pairs, err := svc.Register(context.Background(), domain.KindAgent, body, domain.ContentYAML)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	doc, found, err := store.Get(context.Background(), domain.CollectionAgents, pairs[0].Manifest.ID())
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, strings.Contains(doc.Content, "metadata:"), "YAML requests store YAML documents")
}

func TestSearchJoinsRatings(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	body := []byte(`{"metadata": {"name": "agent-1", "description": "weather forecasts"}}`)
	pairs, err := svc.Register(context.Background(), domain.KindAgent, body, domain.ContentJSON)
	require.NoError(t, err)

	results, err := svc.Search(context.Background(), domain.KindAgent, "weather")
	require.NoError(t, err)
	require.Len(t, results, 1)

	ratings, ok := results[0]["ratings"].(map[string]any)
	require.True(t, ok, "result must embed the rating record under 'ratings'")
	data, ok := ratings["data"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 0, data["score"])
	assert.EqualValues(t, 0, data["samples"])
	assert.Equal(t, pairs[0].Rating.ID, ratings["id"])
}

func TestSearchDanglingRatingFails(t *testing.T) {
	store := newFakeStore()
	svc := NewRegistryService(store, 10, testLogger())

	// An entity document whose ratings_id resolves to nothing: the weak
	// reference is only checked here, at read time.
	err := store.Put(context.Background(), domain.CollectionAgents, []domain.Document{{
		ID:      "a-1",
		Content: `{"metadata": {"id": "a-1", "ratings_id": "gone"}}`,
		Version: 1,
	}})
	require.NoError(t, err)

	_, err = svc.Search(context.Background(), domain.KindAgent, "anything")
	assert.ErrorIs(t, err, domain.ErrRatingsNotFound)
}

func TestRegisterMalformedBody(t *testing.T) {
	svc := NewRegistryService(newFakeStore(), 10, testLogger())

	_, err := svc.Register(context.Background(), domain.KindAgent, []byte("   "), domain.ContentJSON)
	assert.ErrorIs(t, err, domain.ErrMalformedContent)

	_, err = svc.Register(context.Background(), domain.KindAgent, []byte(`{"metadata"`), domain.ContentJSON)
	assert.ErrorIs(t, err, domain.ErrMalformedContent)
}
