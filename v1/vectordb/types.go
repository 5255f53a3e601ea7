package vectordb

// SearchRequest is a single similarity query.
type SearchRequest struct {
	// CollectionName is the collection to search.
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding.
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results.
	TopK int `json:"maxResults"`

	// Filters optionally restricts candidates by payload.
	Filters *FilterSet `json:"filters,omitempty"`
}

// SearchResult is one hit.
type SearchResult struct {
	ID string `json:"id"`

	// Score is the similarity reported by the database (higher is closer for cosine/IP).
	Score float32 `json:"score"`

	Payload map[string]any `json:"payload"`

	// CollectionName is the collection the hit came from.
	CollectionName string `json:"collectionName,omitempty"`
}

// EmbeddingInput is one entry to insert.
type EmbeddingInput struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Collection describes a collection.
type Collection struct {
	Name string `json:"name"`

	// Status is the load state as reported by the database, e.g. "LoadStateLoaded".
	Status string `json:"status"`

	VectorSize int `json:"vectorSize"`

	// Distance is the index metric, e.g. "COSINE", "IP", "L2". Empty if no index exists.
	Distance string `json:"distance"`

	// PointCount is the number of stored entities.
	PointCount uint64 `json:"pointCount"`
}
