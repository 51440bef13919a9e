package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// InsertMatch stores rec unless a match for the same chain and address exists.
// It reports whether a new row was written. Only the (chain, address) conflict
// is treated as a duplicate; other constraint failures are returned.
func (s *Store) InsertMatch(ctx context.Context, rec model.MatchRecord) (inserted bool, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("insert_match", err, start)
	}()

	const query = `
INSERT INTO matches (chain, address, private_key, matched_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (chain, address) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query, string(rec.Chain), rec.Address, rec.Secret, rec.MatchedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("insert match: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert match rows affected: %w", err)
	}
	return n == 1, nil
}
