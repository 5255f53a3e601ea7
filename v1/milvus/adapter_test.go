package milvus

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/milvus/v1/vectordb"
)

// routeTransport answers per path and records payloads.
type routeTransport struct {
	mu       sync.Mutex
	routes   map[string]string
	payloads map[string][]Payload
}

func newRouteTransport(routes map[string]string) *routeTransport {
	return &routeTransport{routes: routes, payloads: map[string][]Payload{}}
}

func (r *routeTransport) Post(_ context.Context, path string, payload Payload) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads[path] = append(r.payloads[path], payload)
	body, ok := r.routes[path]
	if !ok {
		return &Response{StatusCode: 404, Body: []byte(`{"code":404,"message":"no route"}`)}, nil
	}
	return &Response{StatusCode: 200, Body: []byte(body)}, nil
}

func (r *routeTransport) sent(path string) []Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payloads[path]
}

func TestAdapterEnsureCollection(t *testing.T) {
	t.Run("creates missing collection", func(t *testing.T) {
		tr := newRouteTransport(map[string]string{
			"collections/has":    `{"code":0,"data":{"has":false}}`,
			"collections/create": `{"code":0,"data":{}}`,
		})
		a := NewAdapter(newTestClient(t, tr), AdapterConfig{})

		require.NoError(t, a.EnsureCollection(context.Background(), "docs", 4))

		created := tr.sent("collections/create")
		require.Len(t, created, 1)
		data, err := json.Marshal(created[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"collectionName": "docs",
			"schema": {
				"autoId": false,
				"name": "docs",
				"fields": [
					{"fieldName": "id", "dataType": "VarChar", "isPrimary": true, "elementTypeParams": {"max_length": 512}},
					{"fieldName": "vector", "dataType": "FloatVector", "elementTypeParams": {"dim": 4}},
					{"fieldName": "payload", "dataType": "JSON", "nullable": true}
				]
			},
			"indexParams": [{"fieldName": "vector", "indexName": "vector", "metricType": "COSINE", "indexType": "AUTOINDEX"}]
		}`, string(data))
	})

	t.Run("existing collection", func(t *testing.T) {
		tr := newRouteTransport(map[string]string{
			"collections/has": `{"code":0,"data":{"has":true}}`,
		})
		a := NewAdapter(newTestClient(t, tr), AdapterConfig{DBName: "analytics"})

		require.NoError(t, a.EnsureCollection(context.Background(), "docs", 4))
		assert.Empty(t, tr.sent("collections/create"))
		assert.Equal(t, "analytics", tr.sent("collections/has")[0]["dbName"])
	})

	t.Run("zero vector size", func(t *testing.T) {
		a := NewAdapter(newTestClient(t, newRouteTransport(nil)), AdapterConfig{})
		assert.Error(t, a.EnsureCollection(context.Background(), "docs", 0))
	})
}

func TestAdapterInsertBatches(t *testing.T) {
	tr := newRouteTransport(map[string]string{"entities/upsert": `{"code":0,"data":{"upsertCount":2}}`})
	a := NewAdapter(newTestClient(t, tr), AdapterConfig{BatchSize: 2})

	inputs := []vectordb.EmbeddingInput{
		{ID: "a", Vector: []float32{0.1}, Payload: map[string]any{"title": "A"}},
		{ID: "b", Vector: []float32{0.2}},
		{ID: "c", Vector: []float32{0.3}},
	}
	require.NoError(t, a.Insert(context.Background(), "docs", inputs))

	sent := tr.sent("entities/upsert")
	require.Len(t, sent, 2)
	rows := sent[0]["data"].([]map[string]any)
	assert.Equal(t, "a", rows[0]["id"])
	assert.Equal(t, map[string]any{"title": "A"}, rows[0]["payload"])
	assert.NotContains(t, rows[1], "payload")

	assert.Error(t, a.Insert(context.Background(), "docs", []vectordb.EmbeddingInput{{Vector: []float32{1}}}))
	assert.NoError(t, a.Insert(context.Background(), "docs", nil))
}

func TestAdapterDelete(t *testing.T) {
	tr := newRouteTransport(map[string]string{"entities/delete": ""})
	a := NewAdapter(newTestClient(t, tr), AdapterConfig{})

	require.NoError(t, a.Delete(context.Background(), "docs", []string{"a", `b"c`}))
	assert.Equal(t, `id in ["a", "b\"c"]`, tr.sent("entities/delete")[0]["filter"])

	require.NoError(t, a.Delete(context.Background(), "docs", nil))
	assert.Len(t, tr.sent("entities/delete"), 1)
}

func TestAdapterSearch(t *testing.T) {
	tr := newRouteTransport(map[string]string{
		"entities/search": `{"code":0,"data":[
			{"id":"a","distance":0.91,"payload":{"title":"A","custom":{"team":"x"}}},
			{"id":"b","distance":0.5,"payload":null}
		]}`,
	})
	a := NewAdapter(newTestClient(t, tr), AdapterConfig{})

	results, err := a.Search(context.Background(),
		vectordb.SearchRequest{
			CollectionName: "docs",
			Vector:         []float32{0.1, 0.2},
			TopK:           2,
			Filters:        vectordb.NewFilterSet(vectordb.Must(vectordb.NewUserMatch("team", "x"))),
		},
		vectordb.SearchRequest{CollectionName: "other"},
	)

	require.Error(t, err)
	assert.True(t, IsMissingArgumentError(err))
	require.Len(t, results, 2)
	assert.Nil(t, results[1])

	hits := results[0]
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].ID)
	assert.InDelta(t, 0.91, hits[0].Score, 1e-6)
	assert.Equal(t, "A", hits[0].Payload["title"])
	assert.Equal(t, "docs", hits[0].CollectionName)
	assert.Nil(t, hits[1].Payload)

	sent := tr.sent("entities/search")
	require.Len(t, sent, 1)
	assert.Equal(t, `payload["custom"]["team"] == "x"`, sent[0]["filter"])
	assert.Equal(t, 2, sent[0]["limit"])
	assert.Equal(t, "vector", sent[0]["annsField"])
	assert.Equal(t, []string{"id", "payload"}, sent[0]["outputFields"])
}

func TestAdapterGetCollection(t *testing.T) {
	tr := newRouteTransport(map[string]string{
		"collections/describe": `{"code":0,"data":{
			"collectionName":"docs",
			"fields":[
				{"name":"id","type":"VarChar","params":[{"key":"max_length","value":"512"}]},
				{"name":"vector","type":"FloatVector","params":[{"key":"dim","value":"768"}]}
			],
			"indexes":[{"fieldName":"vector","indexName":"vector","metricType":"COSINE"}]
		}}`,
		"collections/get_stats":      `{"code":0,"data":{"rowCount":1234}}`,
		"collections/get_load_state": `{"code":0,"data":{"loadState":"LoadStateLoaded"}}`,
	})
	a := NewAdapter(newTestClient(t, tr), AdapterConfig{})

	info, err := a.GetCollection(context.Background(), "docs")
	require.NoError(t, err)
	assert.Equal(t, &vectordb.Collection{
		Name:       "docs",
		Status:     "LoadStateLoaded",
		VectorSize: 768,
		Distance:   "COSINE",
		PointCount: 1234,
	}, info)
}

func TestAdapterListCollections(t *testing.T) {
	tr := newRouteTransport(map[string]string{"collections/list": `{"code":0,"data":["a","b"]}`})
	a := NewAdapter(newTestClient(t, tr), AdapterConfig{})

	names, err := a.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = NewAdapter(newTestClient(t, newRouteTransport(nil)), AdapterConfig{}).ListCollections(context.Background())
	assert.True(t, IsServerError(err))
}
