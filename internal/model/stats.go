package model

import "time"

// RunState describes the generation state machine.
type RunState string

var (
	StateIdle     RunState = "idle"
	StateRunning  RunState = "running"
	StateStopping RunState = "stopping"
)

// HealthStatus is the operator-facing engine status.
type HealthStatus string

var (
	HealthNotLoaded  HealthStatus = "not_loaded"
	HealthLoading    HealthStatus = "loading"
	HealthLoadFailed HealthStatus = "load_failed"
	HealthIdle       HealthStatus = "idle"
	HealthRunning    HealthStatus = "running"
	HealthStopping   HealthStatus = "stopping"
)

// StatsSnapshot is a point-in-time copy of the run counters.
type StatsSnapshot struct {
	Generated      uint64        `json:"generated"`
	Matched        uint64        `json:"matched"`
	Speed          uint64        `json:"speed"`
	StartedAt      time.Time     `json:"start_time"`
	Elapsed        time.Duration `json:"-"`
	ElapsedSeconds int64         `json:"elapsed"`
	TotalAddresses uint64        `json:"total_addresses"`
	LoadDuration   time.Duration `json:"-"`
	LoadSeconds    float64       `json:"load_time"`
	State          RunState      `json:"state"`
	Running        bool          `json:"is_running"`
}

// Health describes whether the target set is loaded and what the run is doing.
type Health struct {
	Status          HealthStatus `json:"status"`
	TargetsLoaded   bool         `json:"bloom_filter_loaded"`
	TotalAddresses  uint64       `json:"total_addresses"`
	Running         bool         `json:"is_running"`
	Workers         int          `json:"workers"`
	LoadError       string       `json:"load_error,omitempty"`
	LastWorkerError string       `json:"last_worker_error,omitempty"`
}
