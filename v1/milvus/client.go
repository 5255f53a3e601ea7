package milvus

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/milvus/v1/observability"
	"github.com/Aleph-Alpha/milvus/v1/tracer"
)

const instrumentationName = "github.com/Aleph-Alpha/milvus/v1/milvus"

//go:generate mockgen -source=client.go -destination=mock_logger_test.go -package=milvus

// Logger is the subset of logger.Logger the client needs.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Client gives typed access to the Milvus REST API. It is immutable after
// construction and safe for concurrent use.
//
//	client, err := milvus.New(milvus.FromEndpoint("http://localhost:19530"),
//	    milvus.WithLogger(log),
//	    milvus.WithObserver(metrics),
//	)
//	res, err := client.Entities().Search(ctx, milvus.SearchRequest{
//	    CollectionName: "docs",
//	    Data:           [][]float32{vec},
//	    AnnsField:      "vector",
//	    Limit:          milvus.Ptr(10),
//	})
type Client struct {
	cfg    *Config
	caller *caller

	databases   *Databases
	collections *Collections
	entities    *Entities
	partitions  *Partitions
	indexes     *Indexes
	aliases     *Aliases
}

// Option customizes a Client.
type Option func(*caller)

// WithTransport replaces the default HTTPTransport.
func WithTransport(t Transport) Option {
	return func(c *caller) { c.transport = t }
}

// WithLogger enables request logging. Without it the client is silent.
func WithLogger(l Logger) Option {
	return func(c *caller) { c.logger = l }
}

// WithObserver reports every operation to o.
func WithObserver(o observability.Observer) Option {
	return func(c *caller) { c.observer = o }
}

// WithTracerProvider sets the provider spans are created from.
// Defaults to the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *caller) { c.tracerProvider = tp }
}

// New builds a Client. Unless WithTransport is given, requests go through an
// HTTPTransport built from cfg.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &caller{}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		t, err := NewHTTPTransport(cfg)
		if err != nil {
			return nil, fmt.Errorf("milvus: failed to create transport: %w", err)
		}
		c.transport = t
	}
	if c.tracerProvider == nil {
		c.tracerProvider = otel.GetTracerProvider()
	}
	c.spans = c.tracerProvider.Tracer(instrumentationName)

	return &Client{
		cfg:         cfg,
		caller:      c,
		databases:   &Databases{caller: c},
		collections: &Collections{caller: c},
		entities:    &Entities{caller: c},
		partitions:  &Partitions{caller: c},
		indexes:     &Indexes{caller: c},
		aliases:     &Aliases{caller: c},
	}, nil
}

// Databases returns the database operations (databases/*).
func (c *Client) Databases() *Databases { return c.databases }

// Collections returns the collection operations (collections/*).
func (c *Client) Collections() *Collections { return c.collections }

// Entities returns the entity operations (entities/*): insert, upsert,
// delete, query, get, search and hybrid search.
func (c *Client) Entities() *Entities { return c.entities }

// Partitions returns the partition operations (partitions/*).
func (c *Client) Partitions() *Partitions { return c.partitions }

// Indexes returns the index operations (indexes/*).
func (c *Client) Indexes() *Indexes { return c.indexes }

// Aliases returns the alias operations (aliases/*).
func (c *Client) Aliases() *Aliases { return c.aliases }

// Config returns the configuration the client was built with.
func (c *Client) Config() *Config { return c.cfg }

// Ping checks that the server answers by listing collections.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.collections.List(ctx, "")
	return err
}

// Close releases transport resources if the transport holds any.
func (c *Client) Close() error {
	if closer, ok := c.caller.transport.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// caller is shared by all endpoint modules. It runs one operation: build
// the payload, post it, normalize the response, and report the outcome.
type caller struct {
	transport      Transport
	logger         Logger
	observer       observability.Observer
	tracerProvider trace.TracerProvider
	spans          trace.Tracer
}

// call executes op. resource is the collection or database the operation
// targets and is only used for telemetry. Transport errors are returned unchanged.
func (c *caller) call(ctx context.Context, op operation, resource string, b *builder) (*Result, error) {
	payload, err := b.build()
	if err != nil {
		return nil, err
	}

	path := op.path()
	ctx, span := c.spans.Start(ctx, "milvus "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(tracer.Attributes(map[string]interface{}{
			"db.system":       "milvus",
			"db.operation":    path,
			"milvus.resource": resource,
			"milvus.mutating": op.mutating,
		})...),
	)
	defer span.End()

	c.debug(ctx, "milvus request", nil, map[string]interface{}{
		"operation": path,
		"resource":  resource,
	})

	start := time.Now()
	resp, err := c.transport.Post(ctx, path, payload)
	if err == nil && resp == nil {
		err = &TransportError{Path: path, Attempts: 1, Err: errNoResponse}
	}
	var result *Result
	var size int64
	if err == nil {
		size = int64(len(resp.Body))
		tracer.SetAttributes(span, map[string]interface{}{"http.response.status_code": resp.StatusCode})
		result, err = normalize(resp)
	}
	duration := time.Since(start)

	c.observeOperation(ctx, path, resource, duration, err, size, map[string]interface{}{
		"mutating": op.mutating,
	})

	if err != nil {
		tracer.RecordError(span, err)
		c.warn(ctx, "milvus request failed", err, map[string]interface{}{
			"operation":   path,
			"resource":    resource,
			"duration_ms": duration.Milliseconds(),
		})
		return nil, err
	}

	tracer.SetAttributes(span, map[string]interface{}{"milvus.result": result.Kind().String()})
	return result, nil
}

func (c *caller) debug(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.DebugWithContext(ctx, msg, err, fields)
	}
}

func (c *caller) warn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, err, fields)
	}
}

func (c *caller) info(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.InfoWithContext(ctx, msg, err, fields)
	}
}

func (c *caller) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.ErrorWithContext(ctx, msg, err, fields)
	}
}
