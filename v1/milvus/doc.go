// Package milvus provides a dependency-injected client for the Milvus REST API (v2).
//
// The milvus package shapes keyword-style arguments into the JSON bodies the
// Milvus HTTP API expects, sends them through a pluggable Transport and
// normalizes every response into a *Result. It integrates with the fx
// dependency injection framework, supports builder-style configuration and
// reports every call to the tracing, logging and metrics packages of this module.
//
// # Core Features
//
//   - Typed access to databases, collections, entities, partitions, indexes and aliases
//   - One presence rule for optional arguments: absent values are never sent
//   - Missing required arguments fail locally, before any request is made
//   - Uniform Result type: a verbatim JSON body or an Acknowledged sentinel
//   - Default HTTP transport with bearer auth, rate limiting and retries
//   - Config struct supporting environment variables and YAML files
//   - Client spans, debug/warn logging and observability.Observer hooks per call
//   - Database-agnostic interface via vectordb.Service
//
// # Operations
//
// Every operation is a POST of a JSON object to {resource}/{action} under
// the configured base path, e.g. collections/has or entities/hybrid_search.
// Operations are grouped by resource family:
//
//	client.Databases()    create, alter, describe, list, drop
//	client.Collections()  has, rename, get_stats, create, describe, list, drop, load, get_load_state, release
//	client.Entities()     insert, delete, query, upsert, get, search, hybrid_search
//	client.Partitions()   list, create, drop, has, load, release, get_stats
//	client.Indexes()      create, describe, list, drop
//	client.Aliases()      list, describe, create, alter, drop
//
// Operations with one or two arguments take them positionally; an empty
// string means the argument is omitted. Larger operations take a request
// struct such as QueryRequest or CreateCollectionRequest.
//
// # Basic Usage
//
//	import (
//	    "github.com/Aleph-Alpha/milvus/v1/milvus"
//	)
//
//	cfg := milvus.FromEndpoint("http://localhost:19530").
//	    WithToken(os.Getenv("MILVUS_TOKEN"))
//
//	client, err := milvus.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a collection with an index, which makes the server load it
//	_, err = client.Collections().Create(ctx, milvus.CreateCollectionRequest{
//	    CollectionName: "docs",
//	    Fields: []milvus.FieldSchema{
//	        {FieldName: "id", DataType: milvus.DataTypeInt64, IsPrimary: true},
//	        {FieldName: "vector", DataType: milvus.DataTypeFloatVector,
//	            ElementTypeParams: map[string]any{"dim": 768}},
//	    },
//	    IndexParams: []milvus.IndexParam{
//	        {FieldName: "vector", MetricType: milvus.MetricCosine, IndexType: "AUTOINDEX"},
//	    },
//	})
//
//	// Insert rows
//	_, err = client.Entities().Insert(ctx, milvus.InsertRequest{
//	    CollectionName: "docs",
//	    Data: []map[string]any{
//	        {"id": 1, "vector": embedding},
//	    },
//	})
//
//	// Search
//	res, err := client.Entities().Search(ctx, milvus.SearchRequest{
//	    CollectionName: "docs",
//	    Data:           [][]float32{query},
//	    AnnsField:      "vector",
//	    Limit:          milvus.Ptr(5),
//	})
//	for _, hit := range res.Data().Array() {
//	    fmt.Println(hit.Get("id").Int(), hit.Get("distance").Float())
//	}
//
// # Request Bodies
//
// Arguments use Go names and are sent under their camelCase wire names
// (CollectionName -> collectionName). Optional arguments are sent only when
// they carry a value: empty strings, nil pointers and empty slices or maps
// are left out entirely rather than sent as null or []. Numeric options that
// may legitimately be zero are pointers; use Ptr:
//
//	res, err := client.Entities().Query(ctx, milvus.QueryRequest{
//	    CollectionName: "docs",
//	    Filter:         `status == "published"`,
//	    Limit:          milvus.Ptr(100),
//	    Offset:         milvus.Ptr(0),
//	})
//
// A missing required argument fails with a *MissingArgumentError before
// anything is sent:
//
//	_, err := client.Collections().Describe(ctx, "", "")
//	milvus.IsMissingArgumentError(err) // true, no request was made
//
// Collections.Create always sends the schema name equal to the collection
// name, and always sends autoId, since a Go bool cannot be absent.
//
// # Hybrid Search
//
// HybridSearch runs several searches and fuses them with a reranker:
//
//	res, err := client.Entities().HybridSearch(ctx, milvus.HybridSearchRequest{
//	    CollectionName: "docs",
//	    Search: []milvus.HybridSearchItem{
//	        {Data: [][]float32{dense}, AnnsField: "vector", Limit: milvus.Ptr(10)},
//	        {Data: []string{"tokyo hotels"}, AnnsField: "sparse", Limit: milvus.Ptr(10)},
//	    },
//	    Rerank: milvus.RRFRanker(60),
//	    Limit:  milvus.Ptr(5),
//	})
//
// # Results
//
// A successful call returns a *Result. If the server replied with a JSON body
// the result holds it verbatim (Body, Decode, Map, Get, Data); if the body was
// empty, or an empty object or array, the result is Acknowledged. Both are success.
//
//	res, err := client.Collections().Has(ctx, "docs", "")
//	if err != nil {
//	    return err
//	}
//	exists := res.Data().Get("has").Bool()
//
//	var described struct {
//	    Data struct {
//	        CollectionName string `json:"collectionName"`
//	    } `json:"data"`
//	}
//	err = res.Decode(&described)
//
// # Error Handling
//
// Errors fall into four kinds, each with a sentinel and a helper:
//
//	ErrMissingArgument   IsMissingArgumentError  argument absent, nothing sent
//	ErrTransport         IsTransportError        request not delivered or response not read
//	ErrServer            IsServerError           non-2xx status or non-zero envelope code
//	ErrMalformedResponse IsMalformedResponseError body is not JSON
//
// IsTimeout reports cancellations by deadline, which stay matchable with
// errors.Is(err, context.DeadlineExceeded). Errors from the transport are
// returned unchanged. A *ServerError carries the raw body for inspection:
//
//	var se *milvus.ServerError
//	if errors.As(err, &se) {
//	    log.Printf("milvus code=%d message=%s", se.Code, se.Message)
//	}
//
// # Transport
//
// HTTPTransport is the default. It authenticates with a bearer token
// (Token, or Username:Password), is instrumented with otelhttp, optionally
// rate limits, and retries connection failures and 429/502/503/504 responses
// with exponential backoff. Context cancellation is never retried. Any other
// Transport can be plugged in with WithTransport.
//
// # Configuration
//
// Milvus can be configured via environment variables or YAML:
//
//	MILVUS_ENDPOINT=http://localhost:19530
//	MILVUS_TOKEN=root:Milvus
//	MILVUS_TIMEOUT=10s
//	MILVUS_MAX_RETRIES=2
//	MILVUS_RATE_LIMIT=50
//
//	cfg, err := milvus.NewConfig()               // environment only
//	cfg, err := milvus.LoadConfig("milvus.yaml") // YAML, then environment overrides
//
// # FX Module Integration
//
// The package exposes an Fx module for automatic dependency injection. A
// *Config must be in the container; a logger, observer, transport and tracer
// provider are used when present:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(milvus.NewConfig),
//	    milvus.FXModule,
//	)
//	app.Run()
//
// # Observability
//
// Each operation runs in a client span from the configured TracerProvider,
// is reported to an observability.Observer when one is set, and logged at
// debug level (warn on failure) when a Logger is set.
//
// # VectorDB Interface
//
// Adapter implements the database-agnostic vectordb.Service on top of a
// Client, and RenderFilter turns a vectordb.FilterSet into a Milvus boolean
// expression:
//
//	var db vectordb.Service = milvus.NewAdapter(client, milvus.AdapterConfig{})
//
//	err := db.EnsureCollection(ctx, "documents", 1536)
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "documents",
//	    Vector:         queryVector,
//	    TopK:           5,
//	    Filters: vectordb.NewFilterSet(
//	        vectordb.Must(vectordb.NewMatch("status", "published")),
//	        vectordb.MustNot(vectordb.NewUserMatch("hidden", true)),
//	    ),
//	})
//
// # Thread Safety
//
// A Client and its resource modules are immutable after construction and
// safe for concurrent use by multiple goroutines.
//
// # Package Layout
//
//	milvus/
//	├── client.go          // Client, options and the shared call path
//	├── body.go            // request body builder and presence rule
//	├── params.go          // argument name to wire name table
//	├── paths.go           // resource and action paths
//	├── result.go          // response normalization
//	├── transport.go       // Transport interface
//	├── http_transport.go  // default HTTP transport
//	├── databases.go ...   // one file per resource family
//	├── schema.go          // field, function, index and rerank types
//	├── filters.go         // vectordb filters to Milvus expressions
//	├── adapter.go         // vectordb.Service implementation
//	├── configs.go         // configuration loading
//	└── fx_module.go       // Fx dependency injection module
//
// # Related Packages
//
//   - [vectordb]: Database-agnostic types and interfaces
//   - [observability]: Observer hook reported for every call
//   - [tracer]: Tracer provider setup
package milvus
