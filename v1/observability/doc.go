// Package observability defines the hook clients in this module use to report
// the operations they perform.
//
// A client accepts an optional Observer and calls ObserveOperation once per
// completed operation, successful or not. The OperationContext carries:
//
//   - Component: the reporting client, e.g. "milvus"
//   - Operation: the action, e.g. "entities/search"
//   - Resource: the collection or database the operation targeted
//   - Duration, Error and Size: latency, outcome and response bytes
//   - Metadata: client-specific details such as "mutating"
//
// The metrics package ships a Prometheus-backed implementation:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "search"})
//	client, err := milvus.New(cfg, milvus.WithObserver(m))
//
// Any function can serve as an observer through ObserverFunc:
//
//	obs := observability.ObserverFunc(func(op observability.OperationContext) {
//	    if op.Error != nil {
//	        log.Printf("%s %s failed after %s: %v", op.Component, op.Operation, op.Duration, op.Error)
//	    }
//	})
//
// Observers never influence the outcome of an operation; a nil observer
// disables reporting. Calls that fail before a request is sent, such as a
// missing argument, are not reported.
package observability
