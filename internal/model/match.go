package model

import "time"

// MatchRecord is a confirmed hit persisted to the match store.
type MatchRecord struct {
	Chain     Chain     `json:"chain"`
	Address   string    `json:"address"`
	Secret    string    `json:"private_key"`
	MatchedAt time.Time `json:"matched_at"`
}

// MatchEvent is pushed to observers when a new match is recorded.
type MatchEvent struct {
	Chain        Chain     `json:"chain"`
	Address      string    `json:"address"`
	Secret       string    `json:"private_key"`
	MatchedAt    time.Time `json:"matched_at"`
	TotalMatched uint64    `json:"total_matched"`
	Persisted    bool      `json:"persisted"`
	PersistError string    `json:"persist_error,omitempty"`
}
