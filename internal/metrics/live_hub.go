package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	liveHubClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "live_hub",
		Name:      "clients",
		Help:      "Connected websocket clients.",
	})
	liveHubMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "live_hub",
		Name:      "messages_total",
		Help:      "Count of websocket messages by event and delivery status.",
	}, []string{"event", "status"})
)

// LiveHub tracks websocket fan-out.
type LiveHub struct{}

func NewLiveHub() *LiveHub {
	return &LiveHub{}
}

func (m LiveHub) ObserveClients(n int) {
	liveHubClients.Set(float64(n))
}

// ObserveMessage records whether a message was queued for a client or the
// client was dropped for being too slow.
func (m LiveHub) ObserveMessage(event string, delivered bool) {
	status := "queued"
	if !delivered {
		status = "dropped"
	}
	liveHubMessagesTotal.WithLabelValues(event, status).Inc()
}
