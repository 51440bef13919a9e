package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the subset of clickhouse.Conn the repository relies on.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Close() error
	}
	// Rows mirrors driver.Rows so result sets can be mocked.
	Rows interface {
		driver.Rows
	}
	Metrics interface {
		Observe(operation string, chain model.Chain, err error, started time.Time)
	}
)
