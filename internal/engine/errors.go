package engine

import "errors"

var (
	// ErrPersistenceTransient marks a match that could not be written to the
	// match store. The match is still counted and kept pending for Drain.
	ErrPersistenceTransient = errors.New("match persistence failed")
	ErrNotLoaded            = errors.New("target set not loaded")
	ErrStopping             = errors.New("generation is stopping")
)
