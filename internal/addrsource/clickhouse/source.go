package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/goodnatureofminers/collider-backend/pkg/safe"
)

// Source exposes one chain of the target table as a paginated address stream.
type Source struct {
	repo  *Repository
	chain model.Chain
}

func NewSource(repo *Repository, chain model.Chain) *Source {
	return &Source{repo: repo, chain: chain}
}

func (s *Source) Count(ctx context.Context) (uint64, error) {
	return s.repo.CountAddresses(ctx, s.chain)
}

// Stream walks the table with keyset pagination and hands each page to fn.
func (s *Source) Stream(ctx context.Context, batchSize int, fn func(batch []string) error) error {
	limit, err := safe.Uint64(batchSize)
	if err != nil {
		return fmt.Errorf("batch size: %w", err)
	}

	var after string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.repo.AddressesAfter(ctx, s.chain, after, limit)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		if err := fn(page); err != nil {
			return err
		}
		if uint64(len(page)) < limit {
			return nil
		}
		after = page[len(page)-1]
	}
}
