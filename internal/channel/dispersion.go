package channel

import (
	"fmt"
	"math"
)

// StandardDeviation returns the population standard deviation of the
// residuals actual[i]-predicted[i]. The population divisor (n, not n-1)
// is intentional: the channel is built over the full series, not a sample.
func StandardDeviation(actual, predicted []float64) (float64, error) {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0, fmt.Errorf("stddev: len(actual)=%d len(predicted)=%d: %w", len(actual), len(predicted), ErrInvalidInput)
	}

	var ss float64
	for i := range actual {
		d := actual[i] - predicted[i]
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(actual))), nil
}
