// Package main runs the address collider: it loads the target set, generates
// candidate keypairs and records matches.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/collider-backend/internal/addrset"
	"github.com/goodnatureofminers/collider-backend/internal/addrsource/batchfile"
	chsource "github.com/goodnatureofminers/collider-backend/internal/addrsource/clickhouse"
	"github.com/goodnatureofminers/collider-backend/internal/engine"
	"github.com/goodnatureofminers/collider-backend/internal/keygen"
	"github.com/goodnatureofminers/collider-backend/internal/matchstore/sqlite"
	"github.com/goodnatureofminers/collider-backend/internal/metrics"
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/goodnatureofminers/collider-backend/internal/transport"
)

const (
	sourceClickhouse = "clickhouse"
	sourceFiles      = "files"
)

type config struct {
	Chain           model.Chain   `long:"chain" env:"COLLIDER_CHAIN" description:"target chain (eth|btc)" default:"eth"`
	Network         model.Network `long:"network" env:"COLLIDER_NETWORK" description:"network name (mainnet|testnet)" default:"mainnet"`
	Source          string        `long:"source" env:"COLLIDER_SOURCE" description:"bulk address source" choice:"clickhouse" choice:"files" default:"clickhouse"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"COLLIDER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	DataDir         string        `long:"data-dir" env:"COLLIDER_DATA_DIR" description:"directory with address batch files" default:"data"`
	SQLitePath      string        `long:"sqlite-path" env:"COLLIDER_SQLITE_PATH" description:"match store database file" default:"matches.db"`
	Workers         int           `long:"workers" env:"COLLIDER_WORKERS" description:"generator workers" default:"8"`
	BloomFPRate     float64       `long:"bloom-fp-rate" env:"COLLIDER_BLOOM_FP_RATE" description:"bloom filter false-positive rate" default:"0.000001"`
	CapacityMargin  uint64        `long:"capacity-margin" env:"COLLIDER_CAPACITY_MARGIN" description:"extra bloom filter capacity over the source count" default:"1000000"`
	BatchSize       int           `long:"batch-size" env:"COLLIDER_BATCH_SIZE" description:"addresses per source batch" default:"100000"`
	PersistAttempts int           `long:"persist-attempts" env:"COLLIDER_PERSIST_ATTEMPTS" description:"match insert attempts before queueing" default:"3"`
	PersistBackoff  time.Duration `long:"persist-backoff" env:"COLLIDER_PERSIST_BACKOFF" description:"pause between match insert attempts" default:"200ms"`
	HTTPAddr        string        `long:"http-addr" env:"COLLIDER_HTTP_ADDR" description:"control API and websocket addr" default:":5001"`
	MetricsAddr     string        `long:"metrics-addr" env:"COLLIDER_METRICS_ADDR" description:"prometheus metrics addr" default:":2112"`
	AutoStart       bool          `long:"auto-start" env:"COLLIDER_AUTO_START" description:"start generating as soon as the target set is loaded"`
	LogLevel        string        `long:"log-level" env:"COLLIDER_LOG_LEVEL" description:"log level" default:"info"`
	LogFile         string        `long:"log-file" env:"COLLIDER_LOG_FILE" description:"additional log output file"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Source == sourceClickhouse && cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required for the clickhouse source")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("collider failed", zap.Error(err))
	}
}

func newLogger(level, file string) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg.Level = lvl
	if file != "" {
		zcfg.OutputPaths = append(zcfg.OutputPaths, file)
	}
	return zcfg.Build()
}

// lateNotifier forwards events to the live hub, which can only be built once
// the orchestrator exists.
type lateNotifier struct {
	hub *transport.Hub
}

func (n *lateNotifier) PublishStats(snapshot model.StatsSnapshot) {
	if n.hub != nil {
		n.hub.PublishStats(snapshot)
	}
}

func (n *lateNotifier) PublishMatch(event model.MatchEvent) {
	if n.hub != nil {
		n.hub.PublishMatch(event)
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("chain", string(cfg.Chain)))

	scheme, err := keygen.NewScheme(cfg.Chain, cfg.Network)
	if err != nil {
		return fmt.Errorf("init address scheme: %w", err)
	}

	go serveMetrics(ctx, cfg.MetricsAddr, logger)

	store, err := sqlite.Open(ctx, cfg.SQLitePath, metrics.NewMatchStore(), logger)
	if err != nil {
		return fmt.Errorf("open match store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("close match store", zap.Error(closeErr))
		}
	}()

	engineCfg := engine.Config{
		Workers:         cfg.Workers,
		PersistAttempts: cfg.PersistAttempts,
		PersistBackoff:  cfg.PersistBackoff,
	}
	engineMetrics := metrics.NewEngine(cfg.Chain)
	stats := engine.NewRunStats()
	notifier := &lateNotifier{}

	recorder, err := engine.NewRecorder(store, scheme, notifier, stats, engineMetrics, engineCfg, logger)
	if err != nil {
		return err
	}
	orchestrator, err := engine.NewOrchestrator(keygen.NewGenerator(scheme), recorder, stats, engineMetrics, engineCfg, logger)
	if err != nil {
		return err
	}
	hub, err := transport.NewHub(orchestrator, metrics.NewLiveHub(), transport.DefaultSendQueue, logger)
	if err != nil {
		return err
	}
	notifier.hub = hub

	handler, err := transport.NewHandler(orchestrator, store, metrics.NewHTTPAPI(), logger)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(hub),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := hub.Close(shutdownCtx); err != nil {
			logger.Error("Failed to close live hub", zap.Error(err))
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	orchestrator.MarkLoading()
	set, err := loadTargets(ctx, cfg, scheme, logger)
	if err != nil {
		orchestrator.MarkLoadFailed(err)
		return fmt.Errorf("load target set: %w", err)
	}
	prometheus.MustRegister(metrics.NewTargetSetCollector(cfg.Chain, set))
	if err := orchestrator.Attach(set); err != nil {
		return err
	}

	logBanner(cfg, set, logger)

	service, err := engine.NewService(orchestrator, recorder, engine.NewBroadcaster(orchestrator, notifier, engineMetrics, engineCfg, logger), notifier, logger)
	if err != nil {
		return err
	}
	if cfg.AutoStart {
		if _, err := orchestrator.Start(); err != nil {
			return fmt.Errorf("auto start: %w", err)
		}
		logger.Info("generation started")
	}
	return service.Run(ctx)
}

func loadTargets(ctx context.Context, cfg config, scheme keygen.Scheme, logger *zap.Logger) (*addrset.Set, error) {
	var source addrset.Source
	switch cfg.Source {
	case sourceFiles:
		source = batchfile.NewSource(cfg.DataDir, cfg.Workers, logger)
	default:
		repo, err := chsource.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse connection", zap.Error(err))
			}
		}()
		source = chsource.NewSource(repo, cfg.Chain)
	}

	loaderMetrics := metrics.NewAddressLoader(cfg.Chain)
	started := time.Now()
	set, err := addrset.Load(ctx, source, scheme, addrset.Options{
		FalsePositiveRate: cfg.BloomFPRate,
		CapacityMargin:    cfg.CapacityMargin,
		BatchSize:         cfg.BatchSize,
		Progress:          loaderMetrics.ObserveProgress,
	}, logger.Named("loader"))
	loaderMetrics.ObserveLoad(err, started)
	return set, err
}

func logBanner(cfg config, set *addrset.Set, logger *zap.Logger) {
	logger.Info("collider ready",
		zap.String("network", string(cfg.Network)),
		zap.String("source", cfg.Source),
		zap.Int("workers", cfg.Workers),
		zap.Int("target_addresses", set.Len()),
		zap.Float64("bloom_fp_rate", set.FalsePositiveRate()),
		zap.Float64("bloom_memory_mb", float64(set.FilterBytes())/(1<<20)),
		zap.Duration("load_duration", set.LoadDuration()),
		zap.String("sqlite_path", cfg.SQLitePath),
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("metrics_addr", cfg.MetricsAddr),
		zap.Bool("auto_start", cfg.AutoStart),
	)
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	logger.Info("Starting metrics server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve metrics", zap.Error(err))
	}
}
