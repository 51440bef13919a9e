package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// CountAddresses returns the number of target rows stored for a chain.
func (r *Repository) CountAddresses(ctx context.Context, chain model.Chain) (total uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_addresses", chain, err, start)
	}()

	const query = `
SELECT count() AS total
FROM target_addresses FINAL
WHERE chain = ?`

	rows, err := r.conn.Query(ctx, query, string(chain))
	if err != nil {
		return 0, fmt.Errorf("query address count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("address count not found")
	}
	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan address count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate address count: %w", err)
	}

	return total, nil
}
