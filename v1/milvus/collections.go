package milvus

import "context"

// Collections manages collections. Obtain it from Client.Collections.
//
// Methods taking (collectionName, dbName) treat an empty dbName as omitted,
// which makes the server use the default database.
type Collections struct {
	caller *caller
}

// CreateCollectionRequest holds the arguments of Collections.Create.
type CreateCollectionRequest struct {
	CollectionName string
	DBName         string

	// AutoID lets the server generate primary keys. Always sent.
	AutoID bool

	Fields    []FieldSchema
	Functions []Function

	// IndexParams creates indexes together with the collection, which makes
	// the server load it right away.
	IndexParams []IndexParam

	// Params holds collection properties such as "consistencyLevel" or "ttlSeconds".
	Params map[string]any
}

// RenameCollectionRequest holds the arguments of Collections.Rename. Setting
// NewDBName moves the collection to another database.
type RenameCollectionRequest struct {
	CollectionName    string
	NewCollectionName string
	DBName            string
	NewDBName         string
}

// LoadStateRequest holds the arguments of Collections.GetLoadState.
type LoadStateRequest struct {
	CollectionName string
	DBName         string
	PartitionNames []string
}

// Has reports whether a collection exists.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - collectionName: Collection to look up
//   - dbName: Optional database; empty means the default database
//
// Returns:
//   - *Result: Body with data.has set to true or false
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	res, err := client.Collections().Has(ctx, "docs", "")
//	if err != nil {
//	    return err
//	}
//	if !res.Data().Get("has").Bool() {
//	    // create it
//	}
func (c *Collections) Has(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, read(pathCollections, "has"), collectionName, dbName)
}

// Rename renames a collection. Setting NewDBName also moves it to another
// database. DBName and NewDBName are sent only when set.
//
// Example:
//
//	_, err := client.Collections().Rename(ctx, milvus.RenameCollectionRequest{
//	    CollectionName:    "docs",
//	    NewCollectionName: "docs_v2",
//	})
func (c *Collections) Rename(ctx context.Context, req RenameCollectionRequest) (*Result, error) {
	op := write(pathCollections, "rename")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pNewCollectionName, req.NewCollectionName).
		optional(pDBName, req.DBName).
		optional(pNewDBName, req.NewDBName)
	return c.caller.call(ctx, op, req.CollectionName, b)
}

// GetStats returns the entity count of a collection.
func (c *Collections) GetStats(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, read(pathCollections, "get_stats"), collectionName, dbName)
}

// Create creates a collection.
//
// The request body nests the schema as {autoId, fields, name, functions}.
// The schema name always repeats CollectionName, which older servers
// require, and autoId is always sent. IndexParams and Params are top-level
// keys sent only when set; supplying IndexParams makes the server build the
// indexes and load the collection immediately.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName and Fields are required
//
// Returns:
//   - *Result: Acknowledged on success
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	_, err := client.Collections().Create(ctx, milvus.CreateCollectionRequest{
//	    CollectionName: "docs",
//	    AutoID:         true,
//	    Fields: []milvus.FieldSchema{
//	        {FieldName: "id", DataType: milvus.DataTypeInt64, IsPrimary: true},
//	        {FieldName: "vector", DataType: milvus.DataTypeFloatVector,
//	            ElementTypeParams: map[string]any{"dim": 768}},
//	    },
//	    IndexParams: []milvus.IndexParam{{FieldName: "vector", MetricType: milvus.MetricCosine}},
//	})
func (c *Collections) Create(ctx context.Context, req CreateCollectionRequest) (*Result, error) {
	op := write(pathCollections, "create")
	schema := newBuilder(op).
		required(pAutoID, req.AutoID).
		required(pFields, req.Fields).
		required(pSchemaName, req.CollectionName).
		optional(pFunctions, req.Functions)

	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		nested(pSchema, schema).
		optional(pDBName, req.DBName).
		optional(pIndexParams, req.IndexParams).
		optional(pParams, req.Params)
	return c.caller.call(ctx, op, req.CollectionName, b)
}

// Describe returns the schema, indexes, load state and properties of a
// collection under data.
func (c *Collections) Describe(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, read(pathCollections, "describe"), collectionName, dbName)
}

// List returns the collection names of a database, the default one if dbName is empty.
func (c *Collections) List(ctx context.Context, dbName string) (*Result, error) {
	op := read(pathCollections, "list")
	return c.caller.call(ctx, op, dbName, newBuilder(op).optional(pDBName, dbName))
}

// Drop deletes a collection and all of its data. The server acknowledges
// with an empty body.
func (c *Collections) Drop(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, write(pathCollections, "drop"), collectionName, dbName)
}

// Load brings a collection into memory so it can be searched and queried.
func (c *Collections) Load(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, write(pathCollections, "load"), collectionName, dbName)
}

// GetLoadState reports the load state, optionally for a subset of partitions.
func (c *Collections) GetLoadState(ctx context.Context, req LoadStateRequest) (*Result, error) {
	op := read(pathCollections, "get_load_state")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		optional(pDBName, req.DBName).
		optional(pPartitionNames, req.PartitionNames)
	return c.caller.call(ctx, op, req.CollectionName, b)
}

// Release evicts a collection from memory.
func (c *Collections) Release(ctx context.Context, collectionName, dbName string) (*Result, error) {
	return c.named(ctx, write(pathCollections, "release"), collectionName, dbName)
}

// named runs operations whose only arguments are the collection and database names.
func (c *Collections) named(ctx context.Context, op operation, collectionName, dbName string) (*Result, error) {
	b := newBuilder(op).
		required(pCollectionName, collectionName).
		optional(pDBName, dbName)
	return c.caller.call(ctx, op, collectionName, b)
}
