package milvus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/milvus/v1/vectordb"
)

const (
	defaultIDField        = "id"
	defaultVectorField    = "vector"
	defaultPayloadField   = "payload"
	defaultIDMaxLength    = 512
	maxConcurrentSearches = 10
)

// AdapterConfig controls how vectordb entries map onto a Milvus collection.
// Zero values fall back to defaults.
type AdapterConfig struct {
	DBName string

	IDField      string // VarChar primary key, default "id"
	VectorField  string // FloatVector, default "vector"
	PayloadField string // JSON, default "payload"

	// IDMaxLength is the max_length of the primary key. Default 512.
	IDMaxLength int

	// MetricType of the vector index. Default COSINE.
	MetricType string

	// BatchSize of upserts. Default 200.
	BatchSize int
}

// Adapter implements vectordb.Service on top of a Client.
//
// Collections it creates have three fields: a VarChar primary key, a
// FloatVector and a JSON payload. User fields in filters are looked up under
// payload["custom"].
type Adapter struct {
	client *Client
	cfg    AdapterConfig
}

var _ vectordb.Service = (*Adapter)(nil)

// NewAdapter wraps client.
func NewAdapter(client *Client, cfg AdapterConfig) *Adapter {
	if cfg.IDField == "" {
		cfg.IDField = defaultIDField
	}
	if cfg.VectorField == "" {
		cfg.VectorField = defaultVectorField
	}
	if cfg.PayloadField == "" {
		cfg.PayloadField = defaultPayloadField
	}
	if cfg.IDMaxLength <= 0 {
		cfg.IDMaxLength = defaultIDMaxLength
	}
	if cfg.MetricType == "" {
		cfg.MetricType = MetricCosine
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Adapter{client: client, cfg: cfg}
}

// EnsureCollection creates the collection with an AUTOINDEX vector index if
// it does not exist. Creating it with an index makes the server load it.
func (a *Adapter) EnsureCollection(ctx context.Context, name string, vectorSize uint64) error {
	if vectorSize == 0 {
		return fmt.Errorf("milvus: vector size must be positive")
	}

	res, err := a.client.Collections().Has(ctx, name, a.cfg.DBName)
	if err != nil {
		return err
	}
	if res.Data().Get("has").Bool() {
		return nil
	}

	_, err = a.client.Collections().Create(ctx, CreateCollectionRequest{
		CollectionName: name,
		DBName:         a.cfg.DBName,
		AutoID:         false,
		Fields: []FieldSchema{
			{
				FieldName:         a.cfg.IDField,
				DataType:          DataTypeVarChar,
				IsPrimary:         true,
				ElementTypeParams: map[string]any{"max_length": a.cfg.IDMaxLength},
			},
			{
				FieldName:         a.cfg.VectorField,
				DataType:          DataTypeFloatVector,
				ElementTypeParams: map[string]any{"dim": vectorSize},
			},
			{
				FieldName: a.cfg.PayloadField,
				DataType:  DataTypeJSON,
				Nullable:  true,
			},
		},
		IndexParams: []IndexParam{{
			FieldName:  a.cfg.VectorField,
			IndexName:  a.cfg.VectorField,
			MetricType: a.cfg.MetricType,
			IndexType:  "AUTOINDEX",
		}},
	})
	return err
}

// Insert upserts inputs in batches, so entries with an existing ID are replaced.
func (a *Adapter) Insert(ctx context.Context, collectionName string, inputs []vectordb.EmbeddingInput) error {
	if len(inputs) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(inputs))
	for i, in := range inputs {
		if in.ID == "" {
			return fmt.Errorf("milvus: input %d has an empty ID", i)
		}
		row := map[string]any{
			a.cfg.IDField:     in.ID,
			a.cfg.VectorField: in.Vector,
		}
		if in.Payload != nil {
			row[a.cfg.PayloadField] = in.Payload
		}
		rows = append(rows, row)
	}

	for start := 0; start < len(rows); start += a.cfg.BatchSize {
		end := min(start+a.cfg.BatchSize, len(rows))
		if _, err := a.client.Entities().Upsert(ctx, InsertRequest{
			CollectionName: collectionName,
			Data:           rows[start:end],
			DBName:         a.cfg.DBName,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes entries by ID.
func (a *Adapter) Delete(ctx context.Context, collectionName string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = strconv.Quote(id)
	}
	_, err := a.client.Entities().Delete(ctx, DeleteRequest{
		CollectionName: collectionName,
		Filter:         a.cfg.IDField + " in [" + strings.Join(quoted, ", ") + "]",
		DBName:         a.cfg.DBName,
	})
	return err
}

// Search runs the requests concurrently. Failed requests leave a nil entry
// in the result and contribute to the joined error.
func (a *Adapter) Search(ctx context.Context, requests ...vectordb.SearchRequest) ([][]vectordb.SearchResult, error) {
	results := make([][]vectordb.SearchResult, len(requests))
	errs := make([]error, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	for i, req := range requests {
		g.Go(func() error {
			results[i], errs[i] = a.search(gctx, req)
			if errs[i] != nil {
				errs[i] = fmt.Errorf("search %d (%s): %w", i, req.CollectionName, errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func (a *Adapter) search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if len(req.Vector) == 0 {
		return nil, &MissingArgumentError{Operation: read(pathEntities, "search").path(), Argument: pData.name}
	}

	filter, err := RenderFilter(req.Filters, JSONFieldResolver(a.cfg.PayloadField))
	if err != nil {
		return nil, err
	}

	sr := SearchRequest{
		CollectionName: req.CollectionName,
		Data:           [][]float32{req.Vector},
		AnnsField:      a.cfg.VectorField,
		DBName:         a.cfg.DBName,
		Filter:         filter,
		OutputFields:   []string{a.cfg.IDField, a.cfg.PayloadField},
	}
	if req.TopK > 0 {
		sr.Limit = Ptr(req.TopK)
	}

	res, err := a.client.Entities().Search(ctx, sr)
	if err != nil {
		return nil, err
	}

	var hits []vectordb.SearchResult
	var decodeErr error
	res.Data().ForEach(func(_, hit gjson.Result) bool {
		out := vectordb.SearchResult{
			ID:             hit.Get(a.cfg.IDField).String(),
			Score:          float32(hit.Get("distance").Float()),
			CollectionName: req.CollectionName,
		}
		if p := hit.Get(a.cfg.PayloadField); p.IsObject() {
			if err := json.Unmarshal([]byte(p.Raw), &out.Payload); err != nil {
				decodeErr = fmt.Errorf("%w: payload of %q: %v", ErrMalformedResponse, out.ID, err)
				return false
			}
		}
		hits = append(hits, out)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return hits, nil
}

// GetCollection combines describe, get_stats and get_load_state.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	desc, err := a.client.Collections().Describe(ctx, name, a.cfg.DBName)
	if err != nil {
		return nil, err
	}
	stats, err := a.client.Collections().GetStats(ctx, name, a.cfg.DBName)
	if err != nil {
		return nil, err
	}
	state, err := a.client.Collections().GetLoadState(ctx, LoadStateRequest{CollectionName: name, DBName: a.cfg.DBName})
	if err != nil {
		return nil, err
	}

	info := &vectordb.Collection{
		Name:       name,
		Status:     state.Data().Get("loadState").String(),
		PointCount: stats.Data().Get("rowCount").Uint(),
	}

	desc.Data().Get("fields").ForEach(func(_, field gjson.Result) bool {
		if field.Get("name").String() != a.cfg.VectorField {
			return true
		}
		field.Get("params").ForEach(func(_, p gjson.Result) bool {
			if p.Get("key").String() == "dim" {
				info.VectorSize = int(p.Get("value").Int())
				return false
			}
			return true
		})
		return false
	})

	desc.Data().Get("indexes").ForEach(func(_, idx gjson.Result) bool {
		if idx.Get("fieldName").String() == a.cfg.VectorField {
			info.Distance = idx.Get("metricType").String()
			return false
		}
		return true
	})

	return info, nil
}

// ListCollections returns the collection names of the configured database.
func (a *Adapter) ListCollections(ctx context.Context) ([]string, error) {
	res, err := a.client.Collections().List(ctx, a.cfg.DBName)
	if err != nil {
		return nil, err
	}
	names := []string{}
	res.Data().ForEach(func(_, v gjson.Result) bool {
		names = append(names, v.String())
		return true
	})
	return names, nil
}
