package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// AddressesAfter returns up to limit addresses of a chain ordered by address and
// strictly greater than after. An empty after starts from the beginning.
func (r *Repository) AddressesAfter(ctx context.Context, chain model.Chain, after string, limit uint64) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("addresses_after", chain, err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	const query = `
SELECT address
FROM target_addresses FINAL
WHERE chain = ? AND address > ?
ORDER BY address
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(chain), after, limit)
	if err != nil {
		return nil, fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]string, 0, limit)
	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return addresses, nil
}
