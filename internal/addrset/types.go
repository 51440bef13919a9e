package addrset

import (
	"context"

	"github.com/goodnatureofminers/collider-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source streams raw target addresses from a bulk store.
	Source interface {
		Count(ctx context.Context) (uint64, error)
		Stream(ctx context.Context, batchSize int, fn func(batch []string) error) error
	}
	// Parser normalizes raw address text into its canonical binary form.
	Parser interface {
		ParseAddress(s string) (model.Address, error)
	}
)
