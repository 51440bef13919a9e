// Package main exports the ClickHouse target table into address batch files
// that the collider can load without a database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/collider-backend/internal/addrsource/batchfile"
	chsource "github.com/goodnatureofminers/collider-backend/internal/addrsource/clickhouse"
	"github.com/goodnatureofminers/collider-backend/internal/metrics"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

type config struct {
	Chain         model.Chain `long:"chain" env:"COLLIDER_CHAIN" description:"target chain (eth|btc)" default:"eth"`
	ClickhouseDSN string      `long:"clickhouse-dsn" env:"COLLIDER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	OutDir        string      `long:"out-dir" env:"COLLIDER_DATA_DIR" description:"output directory" default:"data"`
	RowsPerFile   int         `long:"rows-per-file" env:"COLLIDER_EXPORT_ROWS_PER_FILE" description:"addresses per batch file" default:"1000000"`
	Compress      bool        `long:"compress" env:"COLLIDER_EXPORT_COMPRESS" description:"write zstd compressed batch files"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("batch export failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := chsource.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close clickhouse connection", zap.Error(err))
		}
	}()

	logger = logger.With(zap.String("chain", string(cfg.Chain)))
	source := chsource.NewSource(repo, cfg.Chain)
	total, err := source.Count(ctx)
	if err != nil {
		return fmt.Errorf("count addresses: %w", err)
	}
	logger.Info("exporting target addresses", zap.Uint64("total", total), zap.String("out_dir", cfg.OutDir))

	files, err := export(ctx, source, cfg.OutDir, prefixFor(cfg.Chain), cfg.RowsPerFile, cfg.Compress, logger)
	if err != nil {
		return err
	}
	logger.Info("export finished", zap.Int("files", files))
	return nil
}

func prefixFor(chain model.Chain) string {
	switch chain {
	case model.BTC:
		return "btc"
	default:
		return "eth"
	}
}

type streamer interface {
	Stream(ctx context.Context, batchSize int, fn func(batch []string) error) error
}

func export(ctx context.Context, source streamer, dir, prefix string, rowsPerFile int, compress bool, logger *zap.Logger) (int, error) {
	if rowsPerFile <= 0 {
		return 0, errors.New("rows per file must be positive")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	files := 0
	err := source.Stream(ctx, rowsPerFile, func(batch []string) error {
		path := filepath.Join(dir, batchfile.FileName(prefix, files, compress))
		if err := batchfile.WriteFile(path, batch); err != nil {
			return err
		}
		files++
		logger.Debug("batch file written", zap.String("path", path), zap.Int("rows", len(batch)))
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("export batches: %w", err)
	}
	return files, nil
}
