package channel

import "TrendPull/internal/domain/models"

// DefaultMultiplier is the default band width in residual standard
// deviations. 2 approximates a 95% band under a normality assumption on
// the residuals; it is a heuristic, not a verified confidence interval.
const DefaultMultiplier = 2.0

// Bands offsets each prediction by multiplier*stdDev in both directions.
// Channel width is constant across the series by construction.
func Bands(predictions []float64, stdDev, multiplier float64) models.ChannelBands {
	offset := multiplier * stdDev
	upper := make([]float64, len(predictions))
	lower := make([]float64, len(predictions))
	for i, p := range predictions {
		upper[i] = p + offset
		lower[i] = p - offset
	}
	return models.ChannelBands{Upper: upper, Lower: lower}
}
