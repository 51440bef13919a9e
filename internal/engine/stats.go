package engine

import (
	"sync/atomic"
	"time"
)

// workerCounter sits on its own cache line so workers never share one.
type workerCounter struct {
	atomic.Uint64
	_ [56]byte
}

type runCounters struct {
	generated []workerCounter
	matched   atomic.Uint64
	speed     atomic.Uint64
	startedAt time.Time
	stoppedAt atomic.Int64
}

func (c *runCounters) total() uint64 {
	var sum uint64
	for i := range c.generated {
		sum += c.generated[i].Load()
	}
	return sum
}

// RunStats holds the counters of the current or most recent run. Counters are
// replaced on every start and frozen on stop.
type RunStats struct {
	current        atomic.Pointer[runCounters]
	totalAddresses atomic.Uint64
	loadDuration   atomic.Int64
}

func NewRunStats() *RunStats {
	s := &RunStats{}
	s.current.Store(&runCounters{})
	return s
}

func (s *RunStats) reset(workers int, now time.Time) *runCounters {
	c := &runCounters{
		generated: make([]workerCounter, workers),
		startedAt: now,
	}
	s.current.Store(c)
	return c
}

func (s *RunStats) freeze(now time.Time) {
	s.current.Load().stoppedAt.Store(now.UnixNano())
}

func (s *RunStats) setTargets(total uint64, loadDuration time.Duration) {
	s.totalAddresses.Store(total)
	s.loadDuration.Store(int64(loadDuration))
}

// IncMatched counts a newly recorded match and returns the run total.
func (s *RunStats) IncMatched() uint64 {
	return s.current.Load().matched.Add(1)
}

func (s *RunStats) Generated() uint64 {
	return s.current.Load().total()
}

func (s *RunStats) Matched() uint64 {
	return s.current.Load().matched.Load()
}

func (s *RunStats) elapsed(now time.Time) time.Duration {
	c := s.current.Load()
	if c.startedAt.IsZero() {
		return 0
	}
	if stopped := c.stoppedAt.Load(); stopped != 0 {
		return time.Unix(0, stopped).Sub(c.startedAt)
	}
	return now.Sub(c.startedAt)
}
