package vectorstore

import (
	"context"
	"fmt"

	"agenticdb/domain"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/proto"
)

// Payload field names for stored documents. Content carries the
// serialized manifest or rating record; the rest is the metadata
// side-record.
const (
	fieldContent   = "content"
	fieldID        = "id"
	fieldVersion   = "version"
	fieldTimestamp = "timestamp"
)

// QdrantStore implements domain.Store on a Qdrant instance. Document
// text is embedded through the injected domain.Embedder on every write
// and query; similarity ordering is whatever Qdrant returns for cosine
// distance.
type QdrantStore struct {
	points      qdrant.PointsClient
	collections qdrant.CollectionsClient
	embedder    domain.Embedder
	vectorSize  uint64
	initialized bool
}

// NewQdrantStore connects to Qdrant at addr (host:port, plaintext gRPC).
// Collections are not created here; call EnsureCollections before first
// use.
func NewQdrantStore(addr string, embedder domain.Embedder, vectorSize uint64) (*QdrantStore, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("could not connect to Qdrant: %w", err)
	}

	return &QdrantStore{
		points:      qdrant.NewPointsClient(conn),
		collections: qdrant.NewCollectionsClient(conn),
		embedder:    embedder,
		vectorSize:  vectorSize,
	}, nil
}

// EnsureCollections creates every collection that does not exist yet.
// Until it has succeeded once, all other operations fail with
// domain.ErrStoreUninitialized.
func (s *QdrantStore) EnsureCollections(ctx context.Context) error {
	for _, collection := range domain.Collections {
		if err := s.ensureCollection(ctx, collection); err != nil {
			return err
		}
	}
	s.initialized = true
	return nil
}

func (s *QdrantStore) ensureCollection(ctx context.Context, name string) error {
	_, err := s.collections.Get(ctx, &qdrant.GetCollectionInfoRequest{
		CollectionName: name,
	})
	if err == nil {
		return nil
	}

	_, err = s.collections.Create(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	return nil
}

func (s *QdrantStore) guard() error {
	if !s.initialized {
		return fmt.Errorf("%w", domain.ErrStoreUninitialized)
	}
	return nil
}

// Put embeds and upserts documents into a collection.
func (s *QdrantStore) Put(ctx context.Context, collection string, docs []domain.Document) error {
	if err := s.guard(); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}
	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("embedder returned %d embeddings for %d documents", len(embeddings), len(docs))
	}

	points := make([]*qdrant.PointStruct, len(docs))
	for i, doc := range docs {
		points[i] = &qdrant.PointStruct{
			Id:      &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: doc.ID}},
			Vectors: &qdrant.Vectors{VectorsOptions: &qdrant.Vectors_Vector{Vector: &qdrant.Vector{Data: embeddings[i]}}},
			Payload: documentPayload(doc),
		}
	}

	_, err = s.points.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
		Wait:           proto.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points to Qdrant: %w", err)
	}
	return nil
}

// Get fetches one document by point id.
func (s *QdrantStore) Get(ctx context.Context, collection, id string) (domain.Document, bool, error) {
	if err := s.guard(); err != nil {
		return domain.Document{}, false, err
	}

	resp, err := s.points.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            []*qdrant.PointId{{PointIdOptions: &qdrant.PointId_Uuid{Uuid: id}}},
		WithPayload:    &qdrant.WithPayloadSelector{SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return domain.Document{}, false, fmt.Errorf("failed to get point from Qdrant: %w", err)
	}

	result := resp.GetResult()
	if len(result) == 0 {
		return domain.Document{}, false, nil
	}
	return documentFromPayload(id, result[0].GetPayload()), true, nil
}

// Update re-embeds and upserts a single document. Qdrant's upsert
// replaces the stored point for an existing id.
func (s *QdrantStore) Update(ctx context.Context, collection string, doc domain.Document) error {
	return s.Put(ctx, collection, []domain.Document{doc})
}

// Search embeds the query text and runs a similarity search, returning
// at most topK documents in the store's relevance order.
func (s *QdrantStore) Search(ctx context.Context, collection, query string, topK int) ([]domain.Document, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	embeddings, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(embeddings) != 1 {
		return nil, fmt.Errorf("embedder returned %d embeddings for one query", len(embeddings))
	}

	resp, err := s.points.Search(ctx, &qdrant.SearchPoints{
		CollectionName: collection,
		Vector:         embeddings[0],
		Limit:          uint64(topK),
		WithPayload:    &qdrant.WithPayloadSelector{SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search points in Qdrant: %w", err)
	}

	docs := make([]domain.Document, 0, len(resp.GetResult()))
	for _, hit := range resp.GetResult() {
		id := ""
		if uuidVal, ok := hit.GetId().GetPointIdOptions().(*qdrant.PointId_Uuid); ok {
			id = uuidVal.Uuid
		}
		docs = append(docs, documentFromPayload(id, hit.GetPayload()))
	}
	return docs, nil
}

// Reset drops and recreates a collection.
func (s *QdrantStore) Reset(ctx context.Context, collection string) error {
	if err := s.guard(); err != nil {
		return err
	}

	_, err := s.collections.Delete(ctx, &qdrant.DeleteCollection{
		CollectionName: collection,
	})
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	if err := s.ensureCollection(ctx, collection); err != nil {
		return err
	}
	return nil
}

func documentPayload(doc domain.Document) map[string]*qdrant.Value {
	return map[string]*qdrant.Value{
		fieldContent:   {Kind: &qdrant.Value_StringValue{StringValue: doc.Content}},
		fieldID:        {Kind: &qdrant.Value_StringValue{StringValue: doc.ID}},
		fieldVersion:   {Kind: &qdrant.Value_IntegerValue{IntegerValue: int64(doc.Version)}},
		fieldTimestamp: {Kind: &qdrant.Value_StringValue{StringValue: doc.Timestamp}},
	}
}

func documentFromPayload(id string, payload map[string]*qdrant.Value) domain.Document {
	doc := domain.Document{ID: id}
	if payload == nil {
		return doc
	}
	doc.Content = payload[fieldContent].GetStringValue()
	doc.Version = int(payload[fieldVersion].GetIntegerValue())
	doc.Timestamp = payload[fieldTimestamp].GetStringValue()
	if stored := payload[fieldID].GetStringValue(); stored != "" {
		doc.ID = stored
	}
	return doc
}
