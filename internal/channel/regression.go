package channel

import (
	"fmt"

	"TrendPull/internal/domain/models"
)

// Fit performs an ordinary least squares fit of y over x using the
// closed-form sums. x is expected to be strictly increasing index values
// (0..n-1), which Analyze guarantees by construction; for such x the
// denominator cannot vanish when len(x) >= 2.
//
// RSquared is defined as 0 when y has zero total variance (a flat series
// has nothing to explain), rather than NaN.
func Fit(x, y []float64) (models.RegressionFit, error) {
	if len(x) == 0 || len(x) != len(y) {
		return models.RegressionFit{}, fmt.Errorf("fit: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrInvalidInput)
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumXSqr float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXSqr += x[i] * x[i]
	}

	var slope float64
	if denom := n*sumXSqr - sumX*sumX; denom != 0 {
		slope = (n*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / n

	preds := make([]float64, len(x))
	for i := range x {
		preds[i] = slope*x[i] + intercept
	}

	mean := sumY / n
	var ssTot, ssRes float64
	for i := range y {
		d := y[i] - mean
		ssTot += d * d
		r := y[i] - preds[i]
		ssRes += r * r
	}
	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return models.RegressionFit{
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    rSquared,
		Predictions: preds,
	}, nil
}

// Equation renders the fitted line for display, e.g. "y = +1.0000x +1.00".
func Equation(slope, intercept float64) string {
	return fmt.Sprintf("y = %+.4fx %+.2f", slope, intercept)
}
