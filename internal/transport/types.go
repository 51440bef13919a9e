// Package transport exposes the HTTP control API and the live websocket hub.
package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// Control is the generation control surface.
type Control interface {
	Start() (bool, error)
	Stop() bool
	Snapshot() model.StatsSnapshot
	Health() model.Health
}

// MatchLister reads persisted matches.
type MatchLister interface {
	RecentMatches(ctx context.Context, limit int) ([]model.MatchRecord, error)
}

// Metrics records control API requests.
type Metrics interface {
	Observe(route string, code int, started time.Time)
}

// HubMetrics records websocket fan-out.
type HubMetrics interface {
	ObserveClients(n int)
	ObserveMessage(event string, delivered bool)
}
