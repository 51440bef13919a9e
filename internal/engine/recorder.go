package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/clock"
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"go.uber.org/zap"
)

// Recorder persists confirmed matches exactly once per address and announces
// them to observers.
type Recorder struct {
	store     MatchStore
	formatter Formatter
	notifier  Notifier
	stats     *RunStats
	metrics   Metrics
	logger    *zap.Logger

	attempts int
	backoff  time.Duration
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time

	claimed sync.Map

	pendingMu sync.Mutex
	pending   []model.MatchRecord
}

func NewRecorder(
	store MatchStore,
	formatter Formatter,
	notifier Notifier,
	stats *RunStats,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Recorder, error) {
	if store == nil {
		return nil, errors.New("match store is required")
	}
	if formatter == nil {
		return nil, errors.New("address formatter is required")
	}
	if stats == nil {
		return nil, errors.New("run stats are required")
	}
	if metrics == nil {
		return nil, errors.New("recorder metrics is required")
	}
	cfg = cfg.withDefaults()

	return &Recorder{
		store:     store,
		formatter: formatter,
		notifier:  notifier,
		stats:     stats,
		metrics:   metrics,
		logger:    logger.Named("recorder").With(zap.String("chain", string(formatter.Chain()))),
		attempts:  cfg.PersistAttempts,
		backoff:   cfg.PersistBackoff,
		sleep:     clock.SleepWithContext,
		now:       time.Now,
	}, nil
}

// Record stores the match for candidate. It returns false when the address
// was already recorded, in this process or in the store. A persistence failure
// still counts the match and returns true together with ErrPersistenceTransient;
// the record stays pending until Drain.
func (r *Recorder) Record(ctx context.Context, candidate model.Candidate) (bool, error) {
	if _, loaded := r.claimed.LoadOrStore(candidate.Address, struct{}{}); loaded {
		r.metrics.ObserveMatch(MatchDuplicate)
		return false, nil
	}

	rec := model.MatchRecord{
		Chain:     r.formatter.Chain(),
		Address:   r.formatter.FormatAddress(candidate.Address),
		Secret:    r.formatter.FormatSecret(candidate.Secret),
		MatchedAt: r.now().UTC(),
	}

	inserted, err := r.persist(ctx, rec)
	if err == nil && !inserted {
		r.logger.Info("match already stored", zap.String("address", rec.Address))
		r.metrics.ObserveMatch(MatchDuplicate)
		return false, nil
	}

	event := model.MatchEvent{
		Chain:        rec.Chain,
		Address:      rec.Address,
		Secret:       rec.Secret,
		MatchedAt:    rec.MatchedAt,
		TotalMatched: r.stats.IncMatched(),
		Persisted:    err == nil,
	}

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrPersistenceTransient, err)
		event.PersistError = err.Error()
		r.enqueue(rec)
		r.metrics.ObserveMatch(MatchUnpersisted)
		r.logger.Error("match not persisted, kept pending",
			zap.String("address", rec.Address),
			zap.Int("attempts", r.attempts),
			zap.Error(err),
		)
	} else {
		r.metrics.ObserveMatch(MatchRecorded)
		r.logger.Info("match recorded",
			zap.String("address", rec.Address),
			zap.Uint64("total_matched", event.TotalMatched),
		)
	}

	if r.notifier != nil {
		r.notifier.PublishMatch(event)
	}
	return true, err
}

func (r *Recorder) persist(ctx context.Context, rec model.MatchRecord) (bool, error) {
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		var inserted bool
		inserted, err = r.store.InsertMatch(ctx, rec)
		if err == nil {
			return inserted, nil
		}
		if attempt == r.attempts {
			break
		}
		r.logger.Warn("insert match failed, retrying",
			zap.String("address", rec.Address),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if sleepErr := r.sleep(ctx, r.backoff); sleepErr != nil {
			return false, errors.Join(err, sleepErr)
		}
	}
	return false, err
}

func (r *Recorder) enqueue(rec model.MatchRecord) {
	r.pendingMu.Lock()
	r.pending = append(r.pending, rec)
	n := len(r.pending)
	r.pendingMu.Unlock()
	r.metrics.ObservePending(n)
}

// Pending returns the number of matches waiting to be persisted.
func (r *Recorder) Pending() int {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	return len(r.pending)
}

// Drain retries every pending match. Matches that still fail are logged in
// full, secret included, and remain pending.
func (r *Recorder) Drain(ctx context.Context) error {
	r.pendingMu.Lock()
	pending := r.pending
	r.pending = nil
	r.pendingMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	r.logger.Info("draining pending matches", zap.Int("pending", len(pending)))

	var (
		failed []model.MatchRecord
		errs   []error
	)
	for _, rec := range pending {
		if _, err := r.persist(ctx, rec); err != nil {
			r.logger.Error("pending match could not be persisted",
				zap.String("chain", string(rec.Chain)),
				zap.String("address", rec.Address),
				zap.String("private_key", rec.Secret),
				zap.Time("matched_at", rec.MatchedAt),
				zap.Error(err),
			)
			failed = append(failed, rec)
			errs = append(errs, err)
			continue
		}
		r.logger.Info("pending match persisted", zap.String("address", rec.Address))
	}

	r.pendingMu.Lock()
	r.pending = append(failed, r.pending...)
	n := len(r.pending)
	r.pendingMu.Unlock()
	r.metrics.ObservePending(n)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d pending matches: %w", ErrPersistenceTransient, len(failed), errors.Join(errs...))
	}
	return nil
}
