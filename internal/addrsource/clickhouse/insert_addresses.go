package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// InsertAddresses stores target address rows. Duplicates collapse on merge.
func (r *Repository) InsertAddresses(ctx context.Context, addresses []model.TargetAddress) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_addresses", firstChain(addresses), err, start)
	}()

	if len(addresses) == 0 {
		return nil
	}

	const query = `
INSERT INTO target_addresses (
	chain,
	address
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare addresses batch: %w", err)
	}

	for _, address := range addresses {
		if err = batch.Append(
			string(address.Chain),
			address.Address,
		); err != nil {
			return fmt.Errorf("append address: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert addresses: %w", err)
	}
	return nil
}

func firstChain(addresses []model.TargetAddress) model.Chain {
	if len(addresses) == 0 {
		return ""
	}
	return addresses[0].Chain
}
