package channel

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func indices(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func TestFitPerfectLine(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	fit, err := Fit(indices(5), y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(fit.Slope, 1) || !approx(fit.Intercept, 1) {
		t.Fatalf("slope=%v intercept=%v, want 1 and 1", fit.Slope, fit.Intercept)
	}
	if !approx(fit.RSquared, 1) {
		t.Fatalf("rsquared=%v, want 1", fit.RSquared)
	}
	if len(fit.Predictions) != len(y) {
		t.Fatalf("predictions len=%d, want %d", len(fit.Predictions), len(y))
	}
	for i, p := range fit.Predictions {
		if !approx(p, fit.Slope*float64(i)+fit.Intercept) {
			t.Fatalf("prediction[%d]=%v does not lie on fitted line", i, p)
		}
	}
}

func TestFitFlatSeries(t *testing.T) {
	fit, err := Fit(indices(5), []float64{10, 10, 10, 10, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(fit.Slope, 0) {
		t.Fatalf("slope=%v, want 0", fit.Slope)
	}
	if !approx(fit.Intercept, 10) {
		t.Fatalf("intercept=%v, want 10", fit.Intercept)
	}
	// Zero total variance: R^2 is defined as 0 by policy, not NaN.
	if fit.RSquared != 0 {
		t.Fatalf("rsquared=%v, want 0", fit.RSquared)
	}
}

func TestFitNoisySeriesRSquaredRange(t *testing.T) {
	y := []float64{10, 12, 9, 14, 13, 17, 15, 20}
	fit, err := Fit(indices(len(y)), y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fit.RSquared < 0 || fit.RSquared > 1 {
		t.Fatalf("rsquared=%v outside [0,1]", fit.RSquared)
	}
	if fit.RSquared == 0 || fit.RSquared == 1 {
		t.Fatalf("rsquared=%v, want strictly between 0 and 1 for noisy series", fit.RSquared)
	}
}

func TestFitSinglePoint(t *testing.T) {
	fit, err := Fit([]float64{0}, []float64{42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(fit.Slope, 0) || !approx(fit.Intercept, 42) {
		t.Fatalf("slope=%v intercept=%v, want 0 and 42", fit.Slope, fit.Intercept)
	}
}

func TestFitInvalidInput(t *testing.T) {
	if _, err := Fit([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("mismatched lengths: got %v, want ErrInvalidInput", err)
	}
	if _, err := Fit(nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty input: got %v, want ErrInvalidInput", err)
	}
}

func TestEquationFormat(t *testing.T) {
	cases := []struct {
		slope, intercept float64
		want             string
	}{
		{1, 1, "y = +1.0000x +1.00"},
		{-0.12345, 99.999, "y = -0.1235x +100.00"},
		{0, -3.5, "y = +0.0000x -3.50"},
	}
	for _, c := range cases {
		if got := Equation(c.slope, c.intercept); got != c.want {
			t.Fatalf("Equation(%v, %v) = %q, want %q", c.slope, c.intercept, got, c.want)
		}
	}
}

func TestStandardDeviation(t *testing.T) {
	sd, err := StandardDeviation([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sd != 0 {
		t.Fatalf("sd=%v, want 0 for identical series", sd)
	}

	// Residuals {1,-1,1,-1}: population variance 1, sd 1.
	sd, err = StandardDeviation([]float64{2, 1, 2, 1}, []float64{1, 2, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(sd, 1) {
		t.Fatalf("sd=%v, want 1", sd)
	}
}

func TestStandardDeviationUsesPopulationDivisor(t *testing.T) {
	// Residuals {3,-3}: population sd = sqrt(18/2) = 3, sample sd would be
	// sqrt(18/1) ~ 4.2426.
	sd, err := StandardDeviation([]float64{3, -3}, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(sd, 3) {
		t.Fatalf("sd=%v, want population divisor result 3", sd)
	}
}

func TestStandardDeviationInvalidInput(t *testing.T) {
	if _, err := StandardDeviation([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("mismatched lengths: got %v, want ErrInvalidInput", err)
	}
	if _, err := StandardDeviation(nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty input: got %v, want ErrInvalidInput", err)
	}
}

func TestBandsConstantWidth(t *testing.T) {
	preds := []float64{10, 11, 12, 13}
	bands := Bands(preds, 1.5, 2)
	if len(bands.Upper) != len(preds) || len(bands.Lower) != len(preds) {
		t.Fatalf("band lengths %d/%d, want %d", len(bands.Upper), len(bands.Lower), len(preds))
	}
	for i := range preds {
		if !approx(bands.Upper[i]-bands.Lower[i], 2*2*1.5) {
			t.Fatalf("width[%d]=%v, want %v", i, bands.Upper[i]-bands.Lower[i], 2*2*1.5)
		}
		if bands.Upper[i] < bands.Lower[i] {
			t.Fatalf("upper[%d] < lower[%d]", i, i)
		}
		if !approx(bands.Upper[i]+bands.Lower[i], 2*preds[i]) {
			t.Fatalf("bands not centered on prediction at %d", i)
		}
	}
}

func TestBandsZeroDispersionCollapses(t *testing.T) {
	preds := []float64{10, 10, 10}
	bands := Bands(preds, 0, 2)
	for i := range preds {
		if bands.Upper[i] != preds[i] || bands.Lower[i] != preds[i] {
			t.Fatalf("bands did not collapse onto predictions at %d", i)
		}
	}
}
