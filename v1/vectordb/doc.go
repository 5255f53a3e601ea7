// Package vectordb holds database-agnostic types for vector similarity search.
//
// Application code depends on Service and the request, result and filter
// types defined here. A database package supplies the implementation; in
// this module that is milvus.Adapter, which speaks the Milvus REST API.
// Code written against Service can switch databases without changes.
//
// # Core Types
//
//   - Service: EnsureCollection, Insert, Delete, Search, GetCollection, ListCollections
//   - SearchRequest: collection, query vector, TopK and optional filters
//   - SearchResult: ID, score, payload and source collection of one hit
//   - EmbeddingInput: ID, vector and payload of one entry to insert
//   - Collection: name, load status, vector size, metric and entity count
//
// # Basic Usage
//
//	client, _ := milvus.New(milvus.FromEndpoint("http://localhost:19530"))
//	var db vectordb.Service = milvus.NewAdapter(client, milvus.AdapterConfig{})
//
//	if err := db.EnsureCollection(ctx, "documents", 1536); err != nil {
//	    return err
//	}
//
//	err := db.Insert(ctx, "documents", []vectordb.EmbeddingInput{
//	    {ID: "doc-1", Vector: vec, Payload: map[string]any{"status": "published"}},
//	})
//
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "documents",
//	    Vector:         vec,
//	    TopK:           10,
//	})
//	for _, hit := range results[0] {
//	    fmt.Println(hit.ID, hit.Score, hit.Payload["status"])
//	}
//
// Search takes several requests at once and returns one result slice per
// request, in request order.
//
// # Filtering
//
// A FilterSet combines three clauses, all optional:
//
//	type FilterSet struct {
//	    Must    *ConditionSet // AND: all conditions must match
//	    Should  *ConditionSet // OR: at least one condition must match
//	    MustNot *ConditionSet // NOT: none of the conditions may match
//	}
//
// Condition types:
//
//   - MatchCondition: exact match (string, bool, integer)
//   - MatchAnyCondition: IN
//   - MatchExceptCondition: NOT IN
//   - NumericRangeCondition: gt, gte, lt, lte on numbers
//   - TimeRangeCondition: gt, gte, lt, lte on timestamps
//   - IsNullCondition: field is null
//   - IsEmptyCondition: field is null or empty
//
// Build them with the constructors:
//
//	// status = "published" AND (tag = "ml" OR tag = "ai") AND NOT deleted = true
//	filters := vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("status", "published")),
//	    vectordb.Should(
//	        vectordb.NewUserMatch("tag", "ml"),
//	        vectordb.NewUserMatch("tag", "ai"),
//	    ),
//	    vectordb.MustNot(vectordb.NewMatch("deleted", true)),
//	)
//
//	// price >= 100 AND price < 500
//	lo, hi := float64(100), float64(500)
//	vectordb.NewNumericRange("price", vectordb.NumericRange{Gte: &lo, Lt: &hi})
//
//	// created in the last 24 hours
//	since := time.Now().Add(-24 * time.Hour)
//	vectordb.NewTimeRange("created_at", vectordb.TimeRange{Gte: &since})
//
// NewMatchAny and NewMatchExcept panic when their values mix strings,
// numbers and booleans.
//
// # Field Types
//
// Conditions distinguish internal fields (top level of the stored payload)
// from user fields (stored under "custom"), so tenants' metadata cannot
// collide with system fields:
//
//	const (
//	    InternalField FieldType = iota // "status"
//	    UserField                      // custom["document_id"]
//	)
//
// The New* constructors create internal-field conditions, the NewUser*
// constructors user-field ones.
//
// # Testing
//
// Depend on Service and substitute a fake in tests:
//
//	type fakeDB struct{ vectordb.Service }
//
//	func (fakeDB) Search(ctx context.Context, reqs ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
//	    return [][]vectordb.SearchResult{{{ID: "doc-1", Score: 0.9}}}, nil
//	}
package vectordb
