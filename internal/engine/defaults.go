package engine

import "time"

const (
	defaultWorkers           = 8
	defaultSampleInterval    = time.Second
	defaultBroadcastInterval = time.Second
	defaultPersistAttempts   = 3
	defaultPersistBackoff    = 200 * time.Millisecond

	MatchRecorded    = "recorded"
	MatchDuplicate   = "duplicate"
	MatchUnpersisted = "unpersisted"
)

// Config tunes the worker pool and match recording.
type Config struct {
	Workers           int
	SampleInterval    time.Duration
	BroadcastInterval time.Duration
	PersistAttempts   int
	PersistBackoff    time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	if c.SampleInterval <= 0 {
		c.SampleInterval = defaultSampleInterval
	}
	if c.BroadcastInterval <= 0 {
		c.BroadcastInterval = defaultBroadcastInterval
	}
	if c.PersistAttempts <= 0 {
		c.PersistAttempts = defaultPersistAttempts
	}
	if c.PersistBackoff < 0 {
		c.PersistBackoff = defaultPersistBackoff
	}
	return c
}
