package channel

import (
	"math"

	"TrendPull/internal/domain/models"
)

// Fixed decision thresholds in half-channel-widths from the midline.
const (
	buyThreshold  = -0.7
	sellThreshold = 0.7
)

// Classify maps the latest price's normalized position within the channel
// to a signal and a strength in [0,100].
//
// BUY/SELL strength grows with distance from the midline; HOLD strength is
// the inverse, the confidence of staying within range. The asymmetry is
// deliberate product semantics.
//
// A zero-width channel means the price sits exactly on a perfectly fitting
// line, so the classifier reports HOLD with full strength instead of
// dividing by zero.
func Classify(currentPrice, predictedPrice, upperBand, lowerBand float64) (models.Signal, float64) {
	width := upperBand - lowerBand
	if width == 0 {
		return models.SignalHold, 100
	}

	position := (currentPrice - predictedPrice) / (width / 2)
	magnitude := math.Min(100, math.Abs(position)*100)

	switch {
	case position <= buyThreshold:
		return models.SignalBuy, magnitude
	case position >= sellThreshold:
		return models.SignalSell, magnitude
	default:
		return models.SignalHold, 100 - magnitude
	}
}
