package application

import (
	"context"
	"errors"
	"testing"

	"agenticdb/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetAllClearsEveryCollection(t *testing.T) {
	store := newFakeStore()
	svc := NewMaintenanceService(store, testLogger())

	err := store.Put(context.Background(), domain.CollectionAgents, []domain.Document{{ID: "a-1", Content: "{}"}})
	require.NoError(t, err)

	results := svc.ResetAll(context.Background())
	require.Len(t, results, 3)
	for _, collection := range domain.Collections {
		assert.Contains(t, results[collection], "Successfully deleted")
	}
	assert.Zero(t, store.count(domain.CollectionAgents))
}

// failingStore fails Reset for one collection to exercise the
// best-effort path.
type failingStore struct {
	*fakeStore
	failOn string
}

func (s *failingStore) Reset(ctx context.Context, collection string) error {
	if collection == s.failOn {
		return errors.New("connection refused")
	}
	return s.fakeStore.Reset(ctx, collection)
}

func TestResetAllContinuesPastFailures(t *testing.T) {
	store := &failingStore{fakeStore: newFakeStore(), failOn: domain.CollectionApplications}
	svc := NewMaintenanceService(store, testLogger())

	results := svc.ResetAll(context.Background())
	assert.Contains(t, results[domain.CollectionAgents], "Successfully deleted")
	assert.Contains(t, results[domain.CollectionApplications], "Failed to delete")
	assert.Contains(t, results[domain.CollectionRatings], "Successfully deleted")
}
