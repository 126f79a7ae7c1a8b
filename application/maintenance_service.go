package application

import (
	"context"
	"fmt"
	"log/slog"

	"agenticdb/domain"
)

// MaintenanceService performs bulk operations on the collection store.
type MaintenanceService struct {
	store  domain.Store
	logger *slog.Logger
}

// NewMaintenanceService creates a MaintenanceService.
func NewMaintenanceService(store domain.Store, logger *slog.Logger) *MaintenanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaintenanceService{store: store, logger: logger}
}

// ResetAll drops and recreates every collection, best-effort per
// collection. The returned map carries a human-readable status string for
// each collection; a failure on one collection does not stop the others.
func (s *MaintenanceService) ResetAll(ctx context.Context) map[string]string {
	results := make(map[string]string, len(domain.Collections))
	for _, collection := range domain.Collections {
		if err := s.store.Reset(ctx, collection); err != nil {
			s.logger.Error("collection reset failed",
				slog.String("collection", collection),
				slog.String("error", err.Error()))
			results[collection] = fmt.Sprintf("Failed to delete %s collection: %v", collection, err)
			continue
		}
		results[collection] = fmt.Sprintf("Successfully deleted %s collection", collection)
	}
	return results
}
