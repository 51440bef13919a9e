package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "http_api",
		Name:      "requests_total",
		Help:      "Count of control API requests.",
	}, []string{"route", "code"})
	httpAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "collider",
		Subsystem: "http_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of control API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// HTTPAPI tracks control API requests.
type HTTPAPI struct{}

func NewHTTPAPI() *HTTPAPI {
	return &HTTPAPI{}
}

func (m HTTPAPI) Observe(route string, code int, started time.Time) {
	c := strconv.Itoa(code)
	httpAPIRequestsTotal.WithLabelValues(route, c).Inc()
	httpAPIRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}
