package milvus

import "context"

const defaultBatchSize = 200

// Entities reads and writes entities. Obtain it from Client.Entities.
type Entities struct {
	caller *caller
}

// InsertRequest holds the arguments of Entities.Insert and Entities.Upsert.
// Each row maps field names to values.
type InsertRequest struct {
	CollectionName string
	Data           []map[string]any
	DBName         string
	PartitionName  string
}

// DeleteRequest deletes the entities matching Filter, e.g. `id in [1, 2]`.
type DeleteRequest struct {
	CollectionName string
	Filter         string
	DBName         string
	PartitionName  string
}

// QueryRequest selects entities by a scalar boolean expression.
type QueryRequest struct {
	CollectionName string
	Filter         string
	OutputFields   []string
	Limit          *int
	Offset         *int
	DBName         string
	PartitionNames []string
}

// GetRequest fetches entities by primary key. ID is a single key or a slice of keys.
type GetRequest struct {
	CollectionName string
	ID             any
	DBName         string
	OutputFields   []string
	PartitionNames []string
}

// SearchRequest is a single-vector similarity search. Data holds the query
// vectors, typically [][]float32.
type SearchRequest struct {
	CollectionName string
	Data           any
	AnnsField      string
	DBName         string
	Filter         string
	Limit          *int
	Offset         *int

	// GroupingField deduplicates results by the value of this field.
	GroupingField string
	OutputFields  []string

	// SearchParams is passed through, e.g. {"params": {"ef": 64}}.
	SearchParams   map[string]any
	PartitionNames []string
}

// HybridSearchItem is one of the searches fused by HybridSearch. Unset
// fields inherit the outer request.
type HybridSearchItem struct {
	Data          any
	AnnsField     string
	Filter        string
	GroupingField string
	MetricType    string
	Limit         *int
	Offset        *int
	Params        map[string]any
}

// HybridSearchRequest runs several searches and fuses them with Rerank.
type HybridSearchRequest struct {
	CollectionName string
	Search         []HybridSearchItem
	Rerank         Rerank
	DBName         string
	Limit          *int
	OutputFields   []string
	PartitionNames []string
}

// Insert adds rows to a collection.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName and a non-empty Data are required; PartitionName
//     and DBName are sent only when set
//
// Returns:
//   - *Result: Body with data.insertCount and data.insertIds, or Acknowledged
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	res, err := client.Entities().Insert(ctx, milvus.InsertRequest{
//	    CollectionName: "docs",
//	    Data: []map[string]any{
//	        {"id": 1, "vector": []float32{0.1, 0.2}, "title": "intro"},
//	        {"id": 2, "vector": []float32{0.3, 0.4}, "title": "setup"},
//	    },
//	})
//	count := res.Data().Get("insertCount").Int()
func (e *Entities) Insert(ctx context.Context, req InsertRequest) (*Result, error) {
	return e.write(ctx, write(pathEntities, "insert"), req)
}

// Upsert inserts rows or replaces those with an existing primary key.
func (e *Entities) Upsert(ctx context.Context, req InsertRequest) (*Result, error) {
	return e.write(ctx, write(pathEntities, "upsert"), req)
}

// InsertBatches inserts req.Data in chunks of batchSize rows, one request per
// chunk, and stops at the first failure. Results of the completed chunks
// are returned along with the error. A batchSize <= 0 uses 200.
func (e *Entities) InsertBatches(ctx context.Context, req InsertRequest, batchSize int) ([]*Result, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if len(req.Data) == 0 {
		return nil, &MissingArgumentError{Operation: write(pathEntities, "insert").path(), Argument: pData.name}
	}

	results := make([]*Result, 0, (len(req.Data)+batchSize-1)/batchSize)
	for start := 0; start < len(req.Data); start += batchSize {
		end := min(start+batchSize, len(req.Data))

		chunk := req
		chunk.Data = req.Data[start:end]
		res, err := e.Insert(ctx, chunk)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Entities) write(ctx context.Context, op operation, req InsertRequest) (*Result, error) {
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pData, req.Data).
		optional(pDBName, req.DBName).
		optional(pPartitionName, req.PartitionName)
	return e.caller.call(ctx, op, req.CollectionName, b)
}

// Delete removes the entities matching Filter.
//
// Filter is a Milvus boolean expression and is sent as given; it is not
// validated locally. RenderFilter builds one from a vectordb.FilterSet.
//
// Example:
//
//	_, err := client.Entities().Delete(ctx, milvus.DeleteRequest{
//	    CollectionName: "docs",
//	    Filter:         "id in [1, 2, 3]",
//	})
func (e *Entities) Delete(ctx context.Context, req DeleteRequest) (*Result, error) {
	op := write(pathEntities, "delete")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pFilter, req.Filter).
		optional(pDBName, req.DBName).
		optional(pPartitionName, req.PartitionName)
	return e.caller.call(ctx, op, req.CollectionName, b)
}

// Query returns the entities matching a scalar filter.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName and Filter are required. OutputFields and
//     PartitionNames are sent only when non-empty; Limit and Offset only
//     when non-nil, so Ptr(0) sends an explicit zero
//
// Returns:
//   - *Result: Body with the matching rows under data
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	res, err := client.Entities().Query(ctx, milvus.QueryRequest{
//	    CollectionName: "docs",
//	    Filter:         `status == "published" and year >= 2020`,
//	    OutputFields:   []string{"id", "title"},
//	    Limit:          milvus.Ptr(100),
//	})
//	for _, row := range res.Data().Array() {
//	    fmt.Println(row.Get("title").String())
//	}
func (e *Entities) Query(ctx context.Context, req QueryRequest) (*Result, error) {
	op := read(pathEntities, "query")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pFilter, req.Filter).
		optional(pOutputFields, req.OutputFields).
		optional(pLimit, req.Limit).
		optional(pOffset, req.Offset).
		optional(pDBName, req.DBName).
		optional(pPartitionNames, req.PartitionNames)
	return e.caller.call(ctx, op, req.CollectionName, b)
}

// Get fetches entities by primary key. ID is a single key or a slice of
// keys and is sent as given.
//
// Example:
//
//	res, err := client.Entities().Get(ctx, milvus.GetRequest{
//	    CollectionName: "docs",
//	    ID:             []int64{1, 2},
//	    OutputFields:   []string{"title"},
//	})
func (e *Entities) Get(ctx context.Context, req GetRequest) (*Result, error) {
	op := read(pathEntities, "get")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pID, req.ID).
		optional(pDBName, req.DBName).
		optional(pOutputFields, req.OutputFields).
		optional(pPartitionNames, req.PartitionNames)
	return e.caller.call(ctx, op, req.CollectionName, b)
}

// Search runs a similarity search on one vector field.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName, Data (the query vectors) and AnnsField are
//     required. Every other field is optional and sent only when set;
//     GroupingField is sent as groupingField
//
// Returns:
//   - *Result: Body with the hits under data, each carrying the primary key,
//     distance and requested output fields
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	res, err := client.Entities().Search(ctx, milvus.SearchRequest{
//	    CollectionName: "docs",
//	    Data:           [][]float32{queryVector},
//	    AnnsField:      "vector",
//	    Filter:         `lang == "en"`,
//	    Limit:          milvus.Ptr(10),
//	    SearchParams:   map[string]any{"params": map[string]any{"ef": 64}},
//	})
//	for _, hit := range res.Data().Array() {
//	    fmt.Println(hit.Get("id").Int(), hit.Get("distance").Float())
//	}
func (e *Entities) Search(ctx context.Context, req SearchRequest) (*Result, error) {
	op := read(pathEntities, "search")
	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		required(pData, req.Data).
		required(pAnnsField, req.AnnsField).
		optional(pDBName, req.DBName).
		optional(pFilter, req.Filter).
		optional(pLimit, req.Limit).
		optional(pOffset, req.Offset).
		optional(pGroupingField, req.GroupingField).
		optional(pOutputFields, req.OutputFields).
		optional(pSearchParams, req.SearchParams).
		optional(pPartitionNames, req.PartitionNames)
	return e.caller.call(ctx, op, req.CollectionName, b)
}

// HybridSearch runs several searches over different vector fields and
// fuses their results with a reranker.
//
// The request body carries "search" as a list with one object per item,
// each built like a Search body (data and annsField required, the rest only
// when set), and "rerank" as {strategy, params}. An empty Search list or a
// missing strategy is a missing argument.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - req: CollectionName, at least one Search item and Rerank are required
//
// Returns:
//   - *Result: Body with the fused hits under data
//   - error: *MissingArgumentError, *TransportError or *ServerError
//
// Example:
//
//	res, err := client.Entities().HybridSearch(ctx, milvus.HybridSearchRequest{
//	    CollectionName: "docs",
//	    Search: []milvus.HybridSearchItem{
//	        {Data: [][]float32{dense}, AnnsField: "vector", Limit: milvus.Ptr(20)},
//	        {Data: []string{"release notes"}, AnnsField: "sparse", Limit: milvus.Ptr(20)},
//	    },
//	    Rerank:       milvus.WeightedRanker(0.7, 0.3),
//	    Limit:        milvus.Ptr(10),
//	    OutputFields: []string{"title"},
//	})
func (e *Entities) HybridSearch(ctx context.Context, req HybridSearchRequest) (*Result, error) {
	op := read(pathEntities, "hybrid_search")

	items := make([]*builder, 0, len(req.Search))
	for _, s := range req.Search {
		items = append(items, newBuilder(op).
			required(pData, s.Data).
			required(pAnnsField, s.AnnsField).
			optional(pFilter, s.Filter).
			optional(pGroupingField, s.GroupingField).
			optional(pMetricType, s.MetricType).
			optional(pLimit, s.Limit).
			optional(pOffset, s.Offset).
			optional(pParams, s.Params))
	}
	rerank := newBuilder(op).
		required(pStrategy, req.Rerank.Strategy).
		optional(pParams, req.Rerank.Params)

	b := newBuilder(op).
		required(pCollectionName, req.CollectionName).
		nestedList(pSearch, items).
		nested(pRerank, rerank).
		optional(pDBName, req.DBName).
		optional(pLimit, req.Limit).
		optional(pOutputFields, req.OutputFields).
		optional(pPartitionNames, req.PartitionNames)
	return e.caller.call(ctx, op, req.CollectionName, b)
}
