package service

import "TrendPull/internal/domain/models"

// TrendAnalyzer converts a chronological closing-price series into a
// regression channel and trading signal. Implementations must be pure:
// no I/O and no state between calls, so no context is taken.
type TrendAnalyzer interface {
	Analyze(prices []float64, stdDevMultiplier float64) (models.ChannelResult, error)
}
