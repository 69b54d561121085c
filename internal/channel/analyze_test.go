package channel

import (
	"errors"
	"testing"

	"TrendPull/internal/domain/models"
)

func TestAnalyzeFlatSeries(t *testing.T) {
	res, err := Analyze([]float64{10, 10, 10, 10, 10}, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(res.Fit.Slope, 0) || !approx(res.Fit.Intercept, 10) {
		t.Fatalf("slope=%v intercept=%v, want 0 and 10", res.Fit.Slope, res.Fit.Intercept)
	}
	if res.Fit.RSquared != 0 {
		t.Fatalf("rsquared=%v, want 0 for flat series", res.Fit.RSquared)
	}
	if res.StdDev != 0 {
		t.Fatalf("stddev=%v, want 0", res.StdDev)
	}
	if !approx(res.UpperBand, 10) || !approx(res.LowerBand, 10) {
		t.Fatalf("bands %v/%v, want both collapsed to 10", res.UpperBand, res.LowerBand)
	}
	if res.Signal != models.SignalHold || res.Strength != 100 {
		t.Fatalf("signal=%s/%v, want HOLD/100", res.Signal, res.Strength)
	}
	if res.ChannelWidth != 0 || res.DistanceFromUpper != 0 || res.DistanceFromLower != 0 {
		t.Fatalf("degenerate channel should report zero width and distances")
	}
}

func TestAnalyzePerfectTrend(t *testing.T) {
	res, err := Analyze([]float64{1, 2, 3, 4, 5}, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(res.Fit.Slope, 1) || !approx(res.Fit.Intercept, 1) {
		t.Fatalf("slope=%v intercept=%v, want 1 and 1", res.Fit.Slope, res.Fit.Intercept)
	}
	if !approx(res.Fit.RSquared, 1) {
		t.Fatalf("rsquared=%v, want 1 for perfect fit", res.Fit.RSquared)
	}
	if res.StdDev != 0 {
		t.Fatalf("stddev=%v, want 0", res.StdDev)
	}
	if !approx(res.CurrentPrice, 5) || !approx(res.PredictedPrice, 5) {
		t.Fatalf("current=%v predicted=%v, want both 5", res.CurrentPrice, res.PredictedPrice)
	}
	if res.Signal != models.SignalHold || res.Strength != 100 {
		t.Fatalf("signal=%s/%v, want HOLD/100", res.Signal, res.Strength)
	}
	if res.Equation != "y = +1.0000x +1.00" {
		t.Fatalf("equation=%q", res.Equation)
	}
}

// A steep outlier at the end of an otherwise calm series must push the
// normalized position past the 0.7 cutoff and flip the signal.
func TestAnalyzeOutlierFlipsSignal(t *testing.T) {
	up := []float64{100, 100.1, 100.2, 100.1, 100.3, 100.2, 100.4, 108}
	res, err := Analyze(up, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Signal != models.SignalSell {
		t.Fatalf("upward outlier: signal=%s, want SELL", res.Signal)
	}
	if res.Strength < 70 {
		t.Fatalf("upward outlier: strength=%v, want >= 70 past the cutoff", res.Strength)
	}

	down := []float64{100, 100.1, 100.2, 100.1, 100.3, 100.2, 100.4, 92}
	res, err = Analyze(down, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Signal != models.SignalBuy {
		t.Fatalf("downward outlier: signal=%s, want BUY", res.Signal)
	}
}

// The middle line of the result must be exactly the regression predictions.
func TestAnalyzeRoundTrip(t *testing.T) {
	prices := []float64{10, 12, 9, 14, 13, 17, 15, 20}
	res, err := Analyze(prices, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fit, err := Fit(indices(len(prices)), prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Fit.Predictions) != len(fit.Predictions) {
		t.Fatalf("prediction lengths differ")
	}
	for i := range fit.Predictions {
		if !approx(res.Fit.Predictions[i], fit.Predictions[i]) {
			t.Fatalf("prediction[%d] differs: %v vs %v", i, res.Fit.Predictions[i], fit.Predictions[i])
		}
	}
}

func TestAnalyzeDistances(t *testing.T) {
	prices := []float64{10, 12, 9, 14, 13, 17, 15, 20}
	res, err := Analyze(prices, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(res.ChannelWidth, res.UpperBand-res.LowerBand) {
		t.Fatalf("width=%v inconsistent with bands", res.ChannelWidth)
	}
	if !approx(res.ChannelWidth, 2*res.Multiplier*res.StdDev) {
		t.Fatalf("width=%v, want 2*multiplier*stddev", res.ChannelWidth)
	}
	// The two percentages partition the channel.
	if !approx(res.DistanceFromUpper+res.DistanceFromLower, 100) {
		t.Fatalf("distances sum to %v, want 100", res.DistanceFromUpper+res.DistanceFromLower)
	}
}

func TestAnalyzeCustomMultiplier(t *testing.T) {
	prices := []float64{10, 12, 9, 14, 13, 17, 15, 20}
	narrow, err := Analyze(prices, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := Analyze(prices, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if narrow.ChannelWidth >= wide.ChannelWidth {
		t.Fatalf("widths %v vs %v: larger multiplier must widen the channel", narrow.ChannelWidth, wide.ChannelWidth)
	}
}

func TestAnalyzeInsufficientData(t *testing.T) {
	if _, err := Analyze([]float64{42}, DefaultMultiplier); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("single price: got %v, want ErrInsufficientData", err)
	}
	if _, err := Analyze(nil, DefaultMultiplier); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("empty series: got %v, want ErrInsufficientData", err)
	}
}

func TestEngineImplementsAnalyzer(t *testing.T) {
	res, err := NewEngine().Analyze([]float64{1, 2, 3}, DefaultMultiplier)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Signal != models.SignalHold {
		t.Fatalf("signal=%s, want HOLD on a perfect trend", res.Signal)
	}
}
