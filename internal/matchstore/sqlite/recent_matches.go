package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

const (
	DefaultRecentLimit = 100
	MaxRecentLimit     = 1000
)

// RecentMatches returns up to limit matches, newest first.
func (s *Store) RecentMatches(ctx context.Context, limit int) (matches []model.MatchRecord, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("recent_matches", err, start)
	}()

	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	const query = `
SELECT chain, address, private_key, matched_at
FROM matches
ORDER BY matched_at DESC, id DESC
LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent matches: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	matches = make([]model.MatchRecord, 0, limit)
	for rows.Next() {
		var (
			rec   model.MatchRecord
			chain string
		)
		if err = rows.Scan(&chain, &rec.Address, &rec.Secret, &rec.MatchedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		rec.Chain = model.Chain(chain)
		matches = append(matches, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}
	return matches, nil
}
