package observability

import "time"

// Observer receives a notification for every operation a client performs.
// Implementations must be safe for concurrent use; they are called inline on
// the request path, so they should return quickly.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component is the client that performed the operation (e.g. "milvus").
	Component string

	// Operation is the action name (e.g. "collections/load").
	Operation string

	// Resource is the primary object the operation targeted, such as a
	// collection or database name. May be empty.
	Resource string

	// SubResource narrows Resource further, such as a partition name. May be empty.
	SubResource string

	// Duration is the wall time the operation took, including the round trip.
	Duration time.Duration

	// Error is the error the operation returned, or nil on success.
	Error error

	// Size is the number of bytes received from the server.
	Size int64

	// Metadata carries component-specific details.
	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
