// Package metrics exposes application metrics collectors.
package metrics

import (
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineGenerated = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "generated",
		Help:      "Candidates generated in the current or last run.",
	}, []string{"chain"})

	engineMatched = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "matched",
		Help:      "Matches recorded in the current or last run.",
	}, []string{"chain"})

	engineSpeed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "candidates_per_second",
		Help:      "Most recent sampled generation throughput.",
	}, []string{"chain"})

	engineRunning = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "running",
		Help:      "1 while a generation run is active.",
	}, []string{"chain"})

	engineMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "matches_total",
		Help:      "Count of match recording outcomes.",
	}, []string{"chain", "outcome"})

	enginePendingMatches = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "pending_matches",
		Help:      "Matches waiting to be persisted.",
	}, []string{"chain"})

	engineWorkerFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collider",
		Subsystem: "engine",
		Name:      "worker_failures_total",
		Help:      "Count of workers terminated by generator errors.",
	}, []string{"chain"})
)

// Engine mirrors orchestrator and recorder state into Prometheus.
type Engine struct {
	chain string
}

func NewEngine(chain model.Chain) *Engine {
	if chain == "" {
		chain = "unknown"
	}
	return &Engine{chain: string(chain)}
}

func (m Engine) ObserveSnapshot(snapshot model.StatsSnapshot) {
	engineGenerated.WithLabelValues(m.chain).Set(float64(snapshot.Generated))
	engineMatched.WithLabelValues(m.chain).Set(float64(snapshot.Matched))
	engineSpeed.WithLabelValues(m.chain).Set(float64(snapshot.Speed))
	running := 0.0
	if snapshot.Running {
		running = 1
	}
	engineRunning.WithLabelValues(m.chain).Set(running)
}

func (m Engine) ObserveMatch(outcome string) {
	engineMatchesTotal.WithLabelValues(m.chain, outcome).Inc()
}

func (m Engine) ObservePending(n int) {
	enginePendingMatches.WithLabelValues(m.chain).Set(float64(n))
}

func (m Engine) ObserveWorkerFailure() {
	engineWorkerFailuresTotal.WithLabelValues(m.chain).Inc()
}
