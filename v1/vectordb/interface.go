package vectordb

import "context"

// Service is the database-agnostic contract for vector similarity search.
// Application code depends on Service; milvus.NewAdapter provides the
// Milvus-backed implementation.
type Service interface {
	// Search runs one similarity search per request. The outer slice of the
	// result is aligned with requests. Per-request failures are joined into
	// the returned error; results of successful requests are still returned.
	Search(ctx context.Context, requests ...SearchRequest) ([][]SearchResult, error)

	// Insert writes embeddings into a collection, replacing entries with the same ID.
	Insert(ctx context.Context, collectionName string, inputs []EmbeddingInput) error

	// Delete removes entries by ID.
	Delete(ctx context.Context, collectionName string, ids []string) error

	// EnsureCollection creates the collection if it does not exist yet.
	EnsureCollection(ctx context.Context, name string, vectorSize uint64) error

	// GetCollection returns collection metadata.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)
}
