package milvus

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/milvus/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - operation: the endpoint path, e.g. "entities/search"
//   - resource: the collection or database name the call targets
//   - size: response body size in bytes
func (c *caller) observeOperation(_ context.Context, operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "milvus",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
