package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "match_store",
		Name:      "operations_total",
		Help:      "Count of match store operations.",
	}, []string{"operation", "status"})
	matchStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "collider",
		Subsystem: "match_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of match store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// MatchStore tracks metrics for the SQLite match store.
type MatchStore struct{}

func NewMatchStore() *MatchStore {
	return &MatchStore{}
}

func (m MatchStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	matchStoreOperationsTotal.WithLabelValues(operation, status).Inc()
	matchStoreOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
