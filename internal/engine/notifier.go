package engine

import "github.com/goodnatureofminers/collider-backend/internal/model"

// MultiNotifier fans every event out to each notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) PublishStats(snapshot model.StatsSnapshot) {
	for _, n := range m {
		n.PublishStats(snapshot)
	}
}

func (m MultiNotifier) PublishMatch(event model.MatchEvent) {
	for _, n := range m {
		n.PublishMatch(event)
	}
}
