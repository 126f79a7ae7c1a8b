package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"agenticdb/domain"
)

// RatingService reads rating records and folds submitted scores into
// them.
type RatingService struct {
	store  domain.Store
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRatingService creates a RatingService.
func NewRatingService(store domain.Store, logger *slog.Logger) *RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RatingService{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Get fetches a rating record by id. An id with no stored document fails
// with ErrRatingsNotFound.
func (s *RatingService) Get(ctx context.Context, ratingsID string) (domain.RatingRecord, error) {
	doc, found, err := s.store.Get(ctx, domain.CollectionRatings, ratingsID)
	if err != nil {
		return domain.RatingRecord{}, fmt.Errorf("failed to fetch ratings document: %w", err)
	}
	if !found {
		return domain.RatingRecord{}, fmt.Errorf("%w: %s", domain.ErrRatingsNotFound, ratingsID)
	}
	return domain.DecodeRatingRecord(doc.Content)
}

// Submit applies one score to a rating record and persists the result.
// Submissions for the same id are serialized through a per-id lock so the
// read-modify-write cannot lose a sample under concurrent callers.
func (s *RatingService) Submit(ctx context.Context, ratingsID string, score float64) (domain.RatingRecord, error) {
	lock := s.lockFor(ratingsID)
	lock.Lock()
	defer lock.Unlock()

	doc, found, err := s.store.Get(ctx, domain.CollectionRatings, ratingsID)
	if err != nil {
		return domain.RatingRecord{}, fmt.Errorf("failed to fetch ratings document: %w", err)
	}
	if !found {
		return domain.RatingRecord{}, fmt.Errorf("%w: %s", domain.ErrRatingsNotFound, ratingsID)
	}

	record, err := domain.DecodeRatingRecord(doc.Content)
	if err != nil {
		return domain.RatingRecord{}, err
	}
	record.Apply(score)

	content, err := domain.EncodeDocument(record, domain.ContentYAML)
	if err != nil {
		return domain.RatingRecord{}, err
	}
	updated := domain.Document{
		ID:        ratingsID,
		Content:   content,
		Version:   doc.Version + 1,
		Timestamp: time.Now().UTC().Format(timestampLayout),
	}
	if err := s.store.Update(ctx, domain.CollectionRatings, updated); err != nil {
		return domain.RatingRecord{}, fmt.Errorf("failed to update ratings document: %w", err)
	}

	s.logger.Info("rating updated",
		slog.String("ratings_id", ratingsID),
		slog.Float64("score", record.Data.Score),
		slog.Int("samples", record.Data.Samples))

	return record, nil
}

// lockFor returns the mutex guarding one ratings id. Locks are never
// freed; the map is bounded by the number of distinct rated records.
func (s *RatingService) lockFor(ratingsID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[ratingsID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[ratingsID] = lock
	}
	return lock
}
