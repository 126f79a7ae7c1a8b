package application

import (
	"context"
	"sync"

	"agenticdb/domain"
)

// fakeStore is an in-memory domain.Store. Search ignores the query and
// returns documents in insertion order, which is enough to exercise the
// join path.
type fakeStore struct {
	mu          sync.Mutex
	collections map[string]map[string]domain.Document
	order       map[string][]string
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		collections: make(map[string]map[string]domain.Document),
		order:       make(map[string][]string),
	}
	for _, c := range domain.Collections {
		s.collections[c] = make(map[string]domain.Document)
	}
	return s
}

func (s *fakeStore) Put(ctx context.Context, collection string, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		if _, exists := s.collections[collection][doc.ID]; !exists {
			s.order[collection] = append(s.order[collection], doc.ID)
		}
		s.collections[collection][doc.ID] = doc
	}
	return nil
}

func (s *fakeStore) Get(ctx context.Context, collection, id string) (domain.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	return doc, ok, nil
}

func (s *fakeStore) Update(ctx context.Context, collection string, doc domain.Document) error {
	return s.Put(ctx, collection, []domain.Document{doc})
}

func (s *fakeStore) Search(ctx context.Context, collection, query string, topK int) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var docs []domain.Document
	for _, id := range s.order[collection] {
		if len(docs) == topK {
			break
		}
		docs = append(docs, s.collections[collection][id])
	}
	return docs, nil
}

func (s *fakeStore) Reset(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = make(map[string]domain.Document)
	s.order[collection] = nil
	return nil
}

func (s *fakeStore) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}
