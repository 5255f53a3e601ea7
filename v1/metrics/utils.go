package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementOperations increments the operation counter.
// Example: m.IncrementOperations("milvus", "collections/load", "success")
func (m *Metrics) IncrementOperations(component, operation, status string) {
	m.operationsTotal.WithLabelValues(component, operation, status).Inc()
}

// RecordOperationDuration observes the time elapsed since start.
// Example: defer m.RecordOperationDuration(time.Now(), "milvus", "entities/search")
func (m *Metrics) RecordOperationDuration(start time.Time, component, operation string) {
	m.operationDuration.WithLabelValues(component, operation).Observe(time.Since(start).Seconds())
}

// CreateCounter creates and registers an additional CounterVec.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec("", name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates and registers an additional HistogramVec.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec("", name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
