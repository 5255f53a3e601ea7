package metrics

import (
	"github.com/Aleph-Alpha/milvus/v1/observability"
)

var _ observability.Observer = (*Metrics)(nil)

// ObserveOperation records the outcome, latency and response size of an operation.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		m.responseSize.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}
}
