package channel

import (
	"fmt"

	"TrendPull/internal/domain/models"
)

// Analyze runs the full price-channel pipeline over a chronological series
// of closing prices (oldest first): OLS fit over x=0..n-1, residual
// dispersion, band construction, and signal classification, plus the
// latest-point view consumed by the dashboard.
//
// The function is pure: no I/O, no state, deterministic for identical
// inputs, and safe to call concurrently.
func Analyze(prices []float64, stdDevMultiplier float64) (models.ChannelResult, error) {
	if len(prices) < 2 {
		return models.ChannelResult{}, fmt.Errorf("analyze: %d price(s): %w", len(prices), ErrInsufficientData)
	}

	x := make([]float64, len(prices))
	for i := range x {
		x[i] = float64(i)
	}

	fit, err := Fit(x, prices)
	if err != nil {
		return models.ChannelResult{}, err
	}

	stdDev, err := StandardDeviation(prices, fit.Predictions)
	if err != nil {
		return models.ChannelResult{}, err
	}

	bands := Bands(fit.Predictions, stdDev, stdDevMultiplier)

	last := len(prices) - 1
	current := prices[last]
	predicted := fit.Predictions[last]
	upper := bands.Upper[last]
	lower := bands.Lower[last]
	width := upper - lower

	signal, strength := Classify(current, predicted, upper, lower)

	// Percent distances are reported as 0 for a collapsed channel rather
	// than NaN; the signal already carries the degenerate-case answer.
	var distUpper, distLower float64
	if width != 0 {
		distUpper = (upper - current) / width * 100
		distLower = (current - lower) / width * 100
	}

	return models.ChannelResult{
		Fit:               fit,
		Bands:             bands,
		StdDev:            stdDev,
		Multiplier:        stdDevMultiplier,
		CurrentPrice:      current,
		PredictedPrice:    predicted,
		UpperBand:         upper,
		LowerBand:         lower,
		ChannelWidth:      width,
		Signal:            signal,
		Strength:          strength,
		DistanceFromUpper: distUpper,
		DistanceFromLower: distLower,
		Equation:          Equation(fit.Slope, fit.Intercept),
	}, nil
}
