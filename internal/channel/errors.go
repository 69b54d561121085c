package channel

import "errors"

var (
	// ErrInvalidInput marks mismatched or empty series passed to an
	// internal stage.
	ErrInvalidInput = errors.New("channel: invalid input")

	// ErrInsufficientData marks a top-level series with fewer than two
	// points; regression over one point has no meaningful answer.
	ErrInsufficientData = errors.New("channel: insufficient data")
)
