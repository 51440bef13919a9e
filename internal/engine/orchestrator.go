package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"go.uber.org/zap"
)

type run struct {
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	done     chan struct{}
	counters *runCounters
}

// Orchestrator owns the Idle -> Running -> Stopping -> Idle state machine and
// the generation workers. Workers touch only atomics; the mutex guards state
// transitions and is never taken inside the generation loop.
type Orchestrator struct {
	generator Generator
	recorder  MatchRecorder
	stats     *RunStats
	metrics   Metrics
	logger    *zap.Logger

	workers        int
	sampleInterval time.Duration
	now            func() time.Time

	mu      sync.Mutex
	run     *run
	set     Matcher
	loading bool
	loadErr error

	state       atomic.Value
	liveWorkers atomic.Int32
	workerErr   atomic.Value
}

func NewOrchestrator(
	generator Generator,
	recorder MatchRecorder,
	stats *RunStats,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Orchestrator, error) {
	if generator == nil {
		return nil, errors.New("candidate generator is required")
	}
	if recorder == nil {
		return nil, errors.New("match recorder is required")
	}
	if stats == nil {
		return nil, errors.New("run stats are required")
	}
	if metrics == nil {
		return nil, errors.New("orchestrator metrics is required")
	}
	cfg = cfg.withDefaults()

	o := &Orchestrator{
		generator:      generator,
		recorder:       recorder,
		stats:          stats,
		metrics:        metrics,
		logger:         logger.Named("orchestrator"),
		workers:        cfg.Workers,
		sampleInterval: cfg.SampleInterval,
		now:            time.Now,
	}
	o.state.Store(model.StateIdle)
	return o, nil
}

// MarkLoading reports that the target set is being built.
func (o *Orchestrator) MarkLoading() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = true
	o.loadErr = nil
}

// MarkLoadFailed records why the target set could not be built.
func (o *Orchestrator) MarkLoadFailed(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = false
	o.loadErr = err
}

// Attach hands the loaded target set to the orchestrator. It can be called once.
func (o *Orchestrator) Attach(set Matcher) error {
	if set == nil {
		return errors.New("target set is nil")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.set != nil {
		return errors.New("target set already attached")
	}
	o.set = set
	o.loading = false
	o.loadErr = nil
	o.stats.setTargets(uint64(set.Len()), set.LoadDuration())
	return nil
}

// Start launches the workers. It returns false without error when a run is
// already active.
func (o *Orchestrator) Start() (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.State() {
	case model.StateRunning:
		return false, nil
	case model.StateStopping:
		return false, ErrStopping
	}
	if o.set == nil {
		return false, ErrNotLoaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &run{
		cancel:   cancel,
		done:     make(chan struct{}),
		counters: o.stats.reset(o.workers, o.now()),
	}
	o.workerErr.Store("")

	for i := range o.workers {
		r.wg.Add(1)
		go o.work(ctx, r, i, o.set)
	}
	r.wg.Add(1)
	go o.sample(ctx, r)

	o.run = r
	o.state.Store(model.StateRunning)
	o.logger.Info("generation started", zap.Int("workers", o.workers))
	return true, nil
}

// Stop cancels the active run and waits for every worker to finish its
// current iteration. It returns false when nothing was running.
func (o *Orchestrator) Stop() bool {
	o.mu.Lock()
	r := o.run
	switch o.State() {
	case model.StateIdle:
		o.mu.Unlock()
		return false
	case model.StateStopping:
		o.mu.Unlock()
		<-r.done
		return false
	}
	o.state.Store(model.StateStopping)
	o.mu.Unlock()

	o.logger.Info("stopping generation")
	r.cancel()
	r.wg.Wait()
	o.stats.freeze(o.now())

	o.mu.Lock()
	o.run = nil
	o.state.Store(model.StateIdle)
	o.mu.Unlock()
	close(r.done)

	o.logger.Info("generation stopped",
		zap.Uint64("generated", o.stats.Generated()),
		zap.Uint64("matched", o.stats.Matched()),
	)
	return true
}

func (o *Orchestrator) State() model.RunState {
	return o.state.Load().(model.RunState)
}

func (o *Orchestrator) work(ctx context.Context, r *run, id int, set Matcher) {
	defer r.wg.Done()
	o.liveWorkers.Add(1)
	defer o.liveWorkers.Add(-1)

	counter := &r.counters.generated[id]
	// Match recording must finish even when the run is being stopped.
	recordCtx := context.WithoutCancel(ctx)

	for ctx.Err() == nil {
		candidate, err := o.generator.Generate()
		if err != nil {
			o.workerErr.Store(err.Error())
			o.metrics.ObserveWorkerFailure()
			o.logger.Error("worker terminated", zap.Int("worker", id), zap.Error(err))
			return
		}

		if set.Test(candidate.Address) == model.Match {
			if _, err := o.recorder.Record(recordCtx, candidate); err != nil {
				o.logger.Debug("record match", zap.Int("worker", id), zap.Error(err))
			}
		}
		counter.Add(1)
	}
}

func (o *Orchestrator) sample(ctx context.Context, r *run) {
	defer r.wg.Done()

	ticker := time.NewTicker(o.sampleInterval)
	defer ticker.Stop()

	last := r.counters.total()
	lastAt := o.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := o.now()
			total := r.counters.total()
			if secs := now.Sub(lastAt).Seconds(); secs > 0 {
				r.counters.speed.Store(uint64(float64(total-last) / secs))
			}
			last, lastAt = total, now
		}
	}
}

// Snapshot copies the current counters using atomic loads only.
func (o *Orchestrator) Snapshot() model.StatsSnapshot {
	now := o.now()
	c := o.stats.current.Load()
	state := o.State()
	elapsed := o.stats.elapsed(now)
	loadDuration := time.Duration(o.stats.loadDuration.Load())

	snapshot := model.StatsSnapshot{
		Generated:      c.total(),
		Matched:        c.matched.Load(),
		StartedAt:      c.startedAt,
		Elapsed:        elapsed,
		ElapsedSeconds: int64(elapsed / time.Second),
		TotalAddresses: o.stats.totalAddresses.Load(),
		LoadDuration:   loadDuration,
		LoadSeconds:    loadDuration.Seconds(),
		State:          state,
		Running:        state == model.StateRunning,
	}
	if state != model.StateIdle {
		snapshot.Speed = c.speed.Load()
	}
	return snapshot
}

// Health reports load and run status for operators.
func (o *Orchestrator) Health() model.Health {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := o.State()
	h := model.Health{
		TargetsLoaded:  o.set != nil,
		TotalAddresses: o.stats.totalAddresses.Load(),
		Running:        state == model.StateRunning,
		Workers:        int(o.liveWorkers.Load()),
	}
	if v, ok := o.workerErr.Load().(string); ok {
		h.LastWorkerError = v
	}

	switch {
	case o.loadErr != nil:
		h.Status = model.HealthLoadFailed
		h.LoadError = o.loadErr.Error()
	case o.set == nil && o.loading:
		h.Status = model.HealthLoading
	case o.set == nil:
		h.Status = model.HealthNotLoaded
	case state == model.StateRunning:
		h.Status = model.HealthRunning
	case state == model.StateStopping:
		h.Status = model.HealthStopping
	default:
		h.Status = model.HealthIdle
	}
	return h
}
