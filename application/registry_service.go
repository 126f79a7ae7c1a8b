package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agenticdb/domain"

	"github.com/google/uuid"
)

// timestampLayout renders UTC timestamps with millisecond precision and a
// trailing Z, the format the metadata side-records carry.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ManifestPair is one ingestion result: the stamped manifest and the
// zero-valued rating record created alongside it.
type ManifestPair struct {
	Manifest domain.Manifest
	Rating   domain.RatingRecord
}

// RegistryService runs the manifest ingestion pipeline and the
// search-plus-join read path for agents and applications.
type RegistryService struct {
	store  domain.Store
	topK   int
	logger *slog.Logger
}

// NewRegistryService creates a RegistryService searching topK candidates
// per query.
func NewRegistryService(store domain.Store, topK int, logger *slog.Logger) *RegistryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistryService{
		store:  store,
		topK:   topK,
		logger: logger,
	}
}

// Register parses a request body into a batch of manifests, stamps each
// with a fresh entity id and ratings id, creates the paired zero-valued
// rating record, and persists both documents in the request's encoding.
//
// Items are persisted one by one in batch order; the first failing item
// aborts the remaining batch, so earlier items may already be stored when
// an error is returned.
func (s *RegistryService) Register(ctx context.Context, kind domain.EntityKind, body []byte, ct domain.ContentType) ([]ManifestPair, error) {
	manifests, err := domain.DecodeManifests(body, ct)
	if err != nil {
		return nil, err
	}

	pairs := make([]ManifestPair, 0, len(manifests))
	for _, manifest := range manifests {
		entityID := uuid.NewString()
		ratingsID := uuid.NewString()

		if err := manifest.AssignIdentity(entityID, ratingsID); err != nil {
			return nil, err
		}
		rating := domain.NewRatingRecord(ratingsID, kind, entityID)

		entityContent, err := domain.EncodeDocument(map[string]any(manifest), ct)
		if err != nil {
			return nil, err
		}
		ratingContent, err := domain.EncodeDocument(rating, ct)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC().Format(timestampLayout)
		err = s.store.Put(ctx, kind.Collection(), []domain.Document{
			{ID: entityID, Content: entityContent, Version: 1, Timestamp: now},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s document: %w", kind, err)
		}
		err = s.store.Put(ctx, domain.CollectionRatings, []domain.Document{
			{ID: ratingsID, Content: ratingContent, Version: 1, Timestamp: now},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add ratings document: %w", err)
		}

		s.logger.Info("manifest registered",
			slog.String("kind", string(kind)),
			slog.String("id", entityID),
			slog.String("ratings_id", ratingsID))

		pairs = append(pairs, ManifestPair{Manifest: manifest, Rating: rating})
	}

	return pairs, nil
}

// Search runs a similarity query over the kind's collection and joins
// each hit with its rating record via metadata.ratings_id, attaching the
// record under a "ratings" key. A hit whose ratings id resolves to no
// stored record fails the whole response with ErrRatingsNotFound;
// referential consistency is enforced here at read time, not at write
// time.
func (s *RegistryService) Search(ctx context.Context, kind domain.EntityKind, query string) ([]map[string]any, error) {
	docs, err := s.store.Search(ctx, kind.Collection(), query, s.topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed for %s: %w", kind.Collection(), err)
	}

	results := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		entity, err := domain.DecodeDocument(doc.Content)
		if err != nil {
			return nil, err
		}

		ratingsID := domain.Manifest(entity).RatingsID()
		ratingDoc, found, err := s.store.Get(ctx, domain.CollectionRatings, ratingsID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ratings document: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", domain.ErrRatingsNotFound, ratingsID)
		}

		rating, err := domain.DecodeDocument(ratingDoc.Content)
		if err != nil {
			return nil, err
		}
		entity["ratings"] = rating
		results = append(results, entity)
	}

	return results, nil
}
