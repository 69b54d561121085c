package models

// Signal is the discrete trading signal emitted by the channel engine.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// Valid reports whether s is one of the known signal variants.
func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalSell, SignalHold:
		return true
	default:
		return false
	}
}

// RegressionFit is the result of an ordinary least squares fit over an
// index-based x-axis. Predictions has the same length as the fitted series.
type RegressionFit struct {
	Slope       float64
	Intercept   float64
	RSquared    float64
	Predictions []float64
}

// ChannelBands holds the upper and lower channel lines, one value per
// fitted point. Upper[i] >= Lower[i] whenever stddev and multiplier are
// non-negative.
type ChannelBands struct {
	Upper []float64
	Lower []float64
}

// ChannelResult is the full analysis bundle for one price series.
// Note: no transport (json/http) concerns here.
type ChannelResult struct {
	Fit        RegressionFit
	Bands      ChannelBands
	StdDev     float64
	Multiplier float64

	// Latest-point view used by the dashboard overlay.
	CurrentPrice   float64
	PredictedPrice float64
	UpperBand      float64
	LowerBand      float64
	ChannelWidth   float64

	Signal   Signal
	Strength float64

	// Distances are percentages of channel width; they exceed [0,100]
	// when the price sits outside the band.
	DistanceFromUpper float64
	DistanceFromLower float64

	Equation string
}
