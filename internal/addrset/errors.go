package addrset

import "errors"

var (
	// ErrSourceUnavailable means the bulk source could not be reached or read.
	ErrSourceUnavailable = errors.New("address source unavailable")
	// ErrEmptySource means the bulk source yielded no usable addresses.
	ErrEmptySource = errors.New("address source is empty")
)
