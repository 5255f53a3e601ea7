package milvus

import "context"

// Indexes manages the indexes of a collection. Obtain it from Client.Indexes.
type Indexes struct {
	caller *caller
}

// CreateIndexRequest creates one index per entry of IndexParams.
type CreateIndexRequest struct {
	CollectionName string
	IndexParams    []IndexParam
	DBName         string
}

// IndexRequest addresses one index by name.
type IndexRequest struct {
	CollectionName string
	IndexName      string
	DBName         string
}

// Create builds one index per entry of req.IndexParams.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName and a non-empty IndexParams are required
//
// Returns:
//   - *Result: Acknowledged on success
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	_, err := client.Indexes().Create(ctx, milvus.CreateIndexRequest{
//	    CollectionName: "docs",
//	    IndexParams: []milvus.IndexParam{{
//	        FieldName:  "vector",
//	        IndexName:  "vector_hnsw",
//	        MetricType: milvus.MetricCosine,
//	        IndexType:  "HNSW",
//	        Params:     map[string]any{"M": 16, "efConstruction": 200},
//	    }},
//	})
func (i *Indexes) Create(ctx context.Context, req CreateIndexRequest) (*Result, error) {
	op := write(pathIndexes, "create")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pIndexParams, req.IndexParams).
		optional(pDBName, req.DBName)
	return i.caller.call(ctx, op, req.CollectionName, b)
}

// Describe returns the type, metric, parameters and build progress of an index.
func (i *Indexes) Describe(ctx context.Context, req IndexRequest) (*Result, error) {
	return i.named(ctx, read(pathIndexes, "describe"), req)
}

// List returns the index names of a collection.
func (i *Indexes) List(ctx context.Context, collectionName, dbName string) (*Result, error) {
	op := read(pathIndexes, "list")
	b := newBuilder(op).
		required(pCollectionName, collectionName).
		optional(pDBName, dbName)
	return i.caller.call(ctx, op, collectionName, b)
}

// Drop removes an index. The collection must be released first.
func (i *Indexes) Drop(ctx context.Context, req IndexRequest) (*Result, error) {
	return i.named(ctx, write(pathIndexes, "drop"), req)
}

func (i *Indexes) named(ctx context.Context, op operation, req IndexRequest) (*Result, error) {
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pIndexName, req.IndexName).
		optional(pDBName, req.DBName)
	return i.caller.call(ctx, op, req.CollectionName, b)
}
