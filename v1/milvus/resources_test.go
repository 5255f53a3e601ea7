package milvus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplementaryResources(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) (*Result, error)
		path string
		want map[string]any
	}{
		{
			name: "partitions list",
			call: func(c *Client) (*Result, error) { return c.Partitions().List(ctx, "c", "") },
			path: "partitions/list",
			want: map[string]any{"collectionName": "c"},
		},
		{
			name: "partitions create",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().Create(ctx, PartitionRequest{CollectionName: "c", PartitionName: "p"})
			},
			path: "partitions/create",
			want: map[string]any{"collectionName": "c", "partitionName": "p"},
		},
		{
			name: "partitions has",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().Has(ctx, PartitionRequest{CollectionName: "c", PartitionName: "p", DBName: "db"})
			},
			path: "partitions/has",
			want: map[string]any{"collectionName": "c", "partitionName": "p", "dbName": "db"},
		},
		{
			name: "partitions get_stats",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().GetStats(ctx, PartitionRequest{CollectionName: "c", PartitionName: "p"})
			},
			path: "partitions/get_stats",
			want: map[string]any{"collectionName": "c", "partitionName": "p"},
		},
		{
			name: "partitions drop",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().Drop(ctx, PartitionRequest{CollectionName: "c", PartitionName: "p"})
			},
			path: "partitions/drop",
			want: map[string]any{"collectionName": "c", "partitionName": "p"},
		},
		{
			name: "partitions load",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().Load(ctx, PartitionsRequest{CollectionName: "c", PartitionNames: []string{"p1", "p2"}})
			},
			path: "partitions/load",
			want: map[string]any{"collectionName": "c", "partitionNames": []any{"p1", "p2"}},
		},
		{
			name: "partitions release",
			call: func(c *Client) (*Result, error) {
				return c.Partitions().Release(ctx, PartitionsRequest{CollectionName: "c", PartitionNames: []string{"p1"}})
			},
			path: "partitions/release",
			want: map[string]any{"collectionName": "c", "partitionNames": []any{"p1"}},
		},
		{
			name: "indexes create",
			call: func(c *Client) (*Result, error) {
				return c.Indexes().Create(ctx, CreateIndexRequest{
					CollectionName: "c",
					IndexParams:    []IndexParam{{FieldName: "vec", MetricType: MetricL2, IndexType: "HNSW", Params: map[string]any{"M": 16}}},
				})
			},
			path: "indexes/create",
			want: map[string]any{"collectionName": "c", "indexParams": []any{map[string]any{
				"fieldName": "vec", "metricType": "L2", "indexType": "HNSW", "params": map[string]any{"M": float64(16)},
			}}},
		},
		{
			name: "indexes describe",
			call: func(c *Client) (*Result, error) {
				return c.Indexes().Describe(ctx, IndexRequest{CollectionName: "c", IndexName: "vec"})
			},
			path: "indexes/describe",
			want: map[string]any{"collectionName": "c", "indexName": "vec"},
		},
		{
			name: "indexes list",
			call: func(c *Client) (*Result, error) { return c.Indexes().List(ctx, "c", "db") },
			path: "indexes/list",
			want: map[string]any{"collectionName": "c", "dbName": "db"},
		},
		{
			name: "indexes drop",
			call: func(c *Client) (*Result, error) {
				return c.Indexes().Drop(ctx, IndexRequest{CollectionName: "c", IndexName: "vec"})
			},
			path: "indexes/drop",
			want: map[string]any{"collectionName": "c", "indexName": "vec"},
		},
		{
			name: "aliases list",
			call: func(c *Client) (*Result, error) { return c.Aliases().List(ctx, "") },
			path: "aliases/list",
			want: map[string]any{},
		},
		{
			name: "aliases describe",
			call: func(c *Client) (*Result, error) { return c.Aliases().Describe(ctx, "latest", "") },
			path: "aliases/describe",
			want: map[string]any{"aliasName": "latest"},
		},
		{
			name: "aliases create",
			call: func(c *Client) (*Result, error) {
				return c.Aliases().Create(ctx, AliasRequest{AliasName: "latest", CollectionName: "docs_v1"})
			},
			path: "aliases/create",
			want: map[string]any{"aliasName": "latest", "collectionName": "docs_v1"},
		},
		{
			name: "aliases alter",
			call: func(c *Client) (*Result, error) {
				return c.Aliases().Alter(ctx, AliasRequest{AliasName: "latest", CollectionName: "docs_v2", DBName: "db"})
			},
			path: "aliases/alter",
			want: map[string]any{"aliasName": "latest", "collectionName": "docs_v2", "dbName": "db"},
		},
		{
			name: "aliases drop",
			call: func(c *Client) (*Result, error) { return c.Aliases().Drop(ctx, "latest", "") },
			path: "aliases/drop",
			want: map[string]any{"aliasName": "latest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newRecorder("")
			res, err := tt.call(newTestClient(t, tr))
			require.NoError(t, err)
			assert.True(t, res.Acknowledged())
			assert.Equal(t, tt.path, tr.last(t).path)
			assert.Equal(t, tt.want, tr.wire(t))
		})
	}
}

func TestSupplementaryResourcesRequireArguments(t *testing.T) {
	ctx := context.Background()
	tr := newRecorder("")
	c := newTestClient(t, tr)

	_, err := c.Partitions().Load(ctx, PartitionsRequest{CollectionName: "c"})
	assert.True(t, IsMissingArgumentError(err))

	_, err = c.Indexes().Create(ctx, CreateIndexRequest{CollectionName: "c"})
	assert.True(t, IsMissingArgumentError(err))

	_, err = c.Aliases().Create(ctx, AliasRequest{AliasName: "a"})
	assert.True(t, IsMissingArgumentError(err))

	assert.Equal(t, 0, tr.count())
}
