package addrset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/collider-backend/pkg/safe"
	"go.uber.org/zap"
)

// Options tune how the target set is sized and streamed.
type Options struct {
	FalsePositiveRate float64
	CapacityMargin    uint64
	BatchSize         int
	ProgressEvery     uint64
	// Progress, when set, is called with loaded and expected totals while loading.
	Progress func(loaded, total uint64)
}

func (o Options) withDefaults() Options {
	if o.FalsePositiveRate <= 0 || o.FalsePositiveRate >= 1 {
		o.FalsePositiveRate = defaultFalsePositiveRate
	}
	if o.CapacityMargin == 0 {
		o.CapacityMargin = defaultCapacityMargin
	}
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	if o.ProgressEvery == 0 {
		o.ProgressEvery = defaultProgressEvery
	}
	return o
}

// Load builds a Set from source. The source count sizes the bloom tier, then
// addresses are streamed in batches, normalized by parser and inserted into
// both tiers.
func Load(ctx context.Context, source Source, parser Parser, opts Options, logger *zap.Logger) (*Set, error) {
	opts = opts.withDefaults()
	started := time.Now()

	logger.Info("counting target addresses")
	total, err := source.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count: %w", ErrSourceUnavailable, err)
	}
	if total == 0 {
		return nil, ErrEmptySource
	}
	logger.Info("target addresses counted", zap.Uint64("total", total))

	capacity := total + opts.CapacityMargin
	sizeHint, err := safe.Int(total)
	if err != nil {
		return nil, fmt.Errorf("size exact set: %w", err)
	}
	set := newSet(capacity, opts.FalsePositiveRate, sizeHint)

	var (
		read         uint64
		invalid      uint64
		nextProgress = opts.ProgressEvery
	)
	err = source.Stream(ctx, opts.BatchSize, func(batch []string) error {
		for _, raw := range batch {
			read++
			addr, err := parser.ParseAddress(raw)
			if err != nil {
				invalid++
				if invalid <= invalidLogLimit {
					logger.Warn("skip invalid target address", zap.String("address", raw), zap.Error(err))
				}
				continue
			}
			set.add(addr)
		}
		if read >= nextProgress {
			logger.Info("loading target addresses", zap.Uint64("loaded", read), zap.Uint64("total", total))
			nextProgress = (read/opts.ProgressEvery + 1) * opts.ProgressEvery
		}
		if opts.Progress != nil {
			opts.Progress(read, total)
		}
		return ctx.Err()
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: stream: %w", ErrSourceUnavailable, err)
	}
	if set.Len() == 0 {
		return nil, ErrEmptySource
	}

	distinct := uint64(set.Len())
	if distinct > set.Capacity() {
		logger.Warn("target count exceeds bloom capacity, rebuilding filter",
			zap.Uint64("distinct", distinct),
			zap.Uint64("capacity", set.Capacity()),
		)
		set.rebuildFilter(distinct + opts.CapacityMargin)
	}
	set.seal()

	set.loadDuration = time.Since(started)
	logger.Info("target addresses loaded",
		zap.Duration("took", set.loadDuration),
		zap.Int("distinct", set.Len()),
		zap.Uint64("read", read),
		zap.Uint64("invalid", invalid),
		zap.Uint64("capacity", set.Capacity()),
		zap.Float64("filter_mb", float64(set.FilterBytes())/1024/1024),
		zap.Float64("fill_ratio", set.FillRatio()),
	)
	return set, nil
}
