package domain

import "context"

// Collection names in the document store. One logical collection per
// entity kind, plus one for the rating side-records.
const (
	CollectionAgents       = "agents"
	CollectionApplications = "applications"
	CollectionRatings      = "ratings"
)

// Collections lists every collection the service owns, in reset order.
var Collections = []string{CollectionAgents, CollectionApplications, CollectionRatings}

// Document is one stored manifest or rating record together with its
// metadata side-record. Content is the serialized document text; the
// store owns the bytes, the core owns their interpretation.
type Document struct {
	ID        string
	Content   string
	Version   int
	Timestamp string
}

// Store is the collection store the core persists into. Implementations
// delegate embedding and nearest-neighbor search to an external engine;
// the core treats Search as best-effort, ordered only by the store's own
// relevance scoring, returning at most topK results.
type Store interface {
	// Put adds documents to a collection.
	Put(ctx context.Context, collection string, docs []Document) error

	// Get fetches one document by id. The boolean reports whether the
	// document exists.
	Get(ctx context.Context, collection, id string) (Document, bool, error)

	// Update replaces the content of an existing document.
	Update(ctx context.Context, collection string, doc Document) error

	// Search runs a similarity query over a collection.
	Search(ctx context.Context, collection, query string, topK int) ([]Document, error)

	// Reset drops and recreates a collection.
	Reset(ctx context.Context, collection string) error
}
