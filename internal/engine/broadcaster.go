package engine

import (
	"context"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"go.uber.org/zap"
)

// Broadcaster publishes a stats snapshot every interval while a run is active,
// plus one final snapshot after it ends.
type Broadcaster struct {
	source   SnapshotSource
	notifier Notifier
	metrics  Metrics
	interval time.Duration
	logger   *zap.Logger
}

func NewBroadcaster(source SnapshotSource, notifier Notifier, metrics Metrics, cfg Config, logger *zap.Logger) *Broadcaster {
	cfg = cfg.withDefaults()
	return &Broadcaster{
		source:   source,
		notifier: notifier,
		metrics:  metrics,
		interval: cfg.BroadcastInterval,
		logger:   logger.Named("broadcaster"),
	}
}

// Run blocks until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	wasActive := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot := b.source.Snapshot()
			b.metrics.ObserveSnapshot(snapshot)

			active := snapshot.State != model.StateIdle
			if active || wasActive {
				b.notifier.PublishStats(snapshot)
			}
			if wasActive && !active {
				b.logger.Debug("published final run snapshot",
					zap.Uint64("generated", snapshot.Generated),
					zap.Uint64("matched", snapshot.Matched),
				)
			}
			wasActive = active
		}
	}
}
