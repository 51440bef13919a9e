// Package main imports newline-separated target addresses into ClickHouse.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	chsource "github.com/goodnatureofminers/collider-backend/internal/addrsource/clickhouse"
	"github.com/goodnatureofminers/collider-backend/internal/keygen"
	"github.com/goodnatureofminers/collider-backend/internal/metrics"
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/goodnatureofminers/collider-backend/pkg/batcher"
)

type config struct {
	Chain         model.Chain   `long:"chain" env:"COLLIDER_CHAIN" description:"target chain (eth|btc)" default:"eth"`
	Network       model.Network `long:"network" env:"COLLIDER_NETWORK" description:"network name (mainnet|testnet)" default:"mainnet"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"COLLIDER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	FlushSize     int           `long:"flush-size" env:"COLLIDER_IMPORT_FLUSH_SIZE" description:"addresses per insert" default:"50000"`
	FlushInterval time.Duration `long:"flush-interval" env:"COLLIDER_IMPORT_FLUSH_INTERVAL" description:"max time between inserts" default:"5s"`
	RPS           int           `long:"rps" env:"COLLIDER_IMPORT_RPS" description:"max inserts per second" default:"10"`
	Args          struct {
		Files []string `positional-arg-name:"file" description:"address files; stdin when empty"`
	} `positional-args:"yes"`
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
		logger.Fatal("address import failed", zap.Error(err))
	}
}

type importStats struct {
	read    uint64
	queued  uint64
	invalid uint64
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	scheme, err := keygen.NewScheme(cfg.Chain, cfg.Network)
	if err != nil {
		return fmt.Errorf("init address scheme: %w", err)
	}
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
	b := batcher.New(logger.Named("batcher"), repo.InsertAddresses, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	b.Start(ctx)

	var stats importStats
	err = importAll(ctx, cfg.Args.Files, scheme, &stats, func(addr string) error {
		return b.Add(ctx, model.TargetAddress{Chain: cfg.Chain, Address: addr})
	})
	b.Stop()

	logger.Info("import finished",
		zap.Uint64("read", stats.read),
		zap.Uint64("queued", stats.queued),
		zap.Uint64("invalid", stats.invalid),
		zap.Uint64("failed", b.Failed()),
	)
	if err != nil {
		return err
	}
	if failed := b.Failed(); failed > 0 {
		return fmt.Errorf("%d addresses were not inserted", failed)
	}
	return nil
}

func importAll(ctx context.Context, files []string, scheme keygen.Scheme, stats *importStats, add func(string) error) error {
	if len(files) == 0 {
		return importReader(ctx, os.Stdin, scheme, stats, add)
	}
	for _, path := range files {
		if err := importFile(ctx, path, scheme, stats, add); err != nil {
			return err
		}
	}
	return nil
}

func importFile(ctx context.Context, path string, scheme keygen.Scheme, stats *importStats, add func(string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := importReader(ctx, f, scheme, stats, add); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// importReader normalizes every line through the chain scheme so the table
// only holds canonical address text.
func importReader(ctx context.Context, r io.Reader, scheme keygen.Scheme, stats *importStats, add func(string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.read++

		addr, err := scheme.ParseAddress(line)
		if err != nil {
			stats.invalid++
			continue
		}
		if err := add(scheme.FormatAddress(addr)); err != nil {
			return err
		}
		stats.queued++
	}
	return scanner.Err()
}
