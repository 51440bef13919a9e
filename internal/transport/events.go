package transport

import "github.com/goodnatureofminers/collider-backend/internal/model"

const (
	EventStatsUpdate   = "stats_update"
	EventWalletMatched = "wallet_matched"
	EventStatus        = "status"

	ActionStart = "start"
	ActionStop  = "stop"

	MessageStarted        = "generation started"
	MessageAlreadyRunning = "already running"
	MessageStopped        = "generation stopped"
)

// Envelope is the frame sent to websocket clients.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Command is a frame received from a websocket client.
type Command struct {
	Action string `json:"action"`
}

// Status answers a client command.
type Status struct {
	Message string `json:"message"`
	Running bool   `json:"is_running"`
	Error   string `json:"error,omitempty"`
}

// ControlResponse is returned by the start and stop endpoints.
type ControlResponse struct {
	Changed bool           `json:"changed"`
	State   model.RunState `json:"state"`
	Message string         `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func startStatus(started bool, err error) Status {
	switch {
	case err != nil:
		return Status{Message: err.Error(), Error: err.Error()}
	case started:
		return Status{Message: MessageStarted, Running: true}
	default:
		return Status{Message: MessageAlreadyRunning, Running: true}
	}
}
