package models

// Requests and responses for the channel HTTP endpoint. Defined in domain
// for consistency and reuse by the Kafka intake path.

type ChannelRequest struct {
	Symbol     string    `json:"symbol" validate:"omitempty,max=32"`
	Prices     []float64 `json:"prices" validate:"required,min=2,max=10000"`
	Multiplier float64   `json:"multiplier" default:"2" validate:"gt=0,lte=10"`
}

// ChannelResponse is the wire shape of a ChannelResult.
type ChannelResponse struct {
	Symbol            string    `json:"symbol,omitempty"`
	Signal            Signal    `json:"signal"`
	Strength          float64   `json:"strength"`
	Slope             float64   `json:"slope"`
	Intercept         float64   `json:"intercept"`
	RSquared          float64   `json:"r_squared"`
	StdDev            float64   `json:"std_dev"`
	Multiplier        float64   `json:"multiplier"`
	CurrentPrice      float64   `json:"current_price"`
	PredictedPrice    float64   `json:"predicted_price"`
	UpperBand         float64   `json:"upper_band"`
	LowerBand         float64   `json:"lower_band"`
	ChannelWidth      float64   `json:"channel_width"`
	DistanceFromUpper float64   `json:"distance_from_upper"`
	DistanceFromLower float64   `json:"distance_from_lower"`
	Equation          string    `json:"equation"`
	MiddleLine        []float64 `json:"middle_line"`
	UpperBandSeries   []float64 `json:"upper_band_series"`
	LowerBandSeries   []float64 `json:"lower_band_series"`
}

// NewChannelResponse maps a domain ChannelResult onto the wire shape.
func NewChannelResponse(symbol string, res *ChannelResult) *ChannelResponse {
	return &ChannelResponse{
		Symbol:            symbol,
		Signal:            res.Signal,
		Strength:          res.Strength,
		Slope:             res.Fit.Slope,
		Intercept:         res.Fit.Intercept,
		RSquared:          res.Fit.RSquared,
		StdDev:            res.StdDev,
		Multiplier:        res.Multiplier,
		CurrentPrice:      res.CurrentPrice,
		PredictedPrice:    res.PredictedPrice,
		UpperBand:         res.UpperBand,
		LowerBand:         res.LowerBand,
		ChannelWidth:      res.ChannelWidth,
		DistanceFromUpper: res.DistanceFromUpper,
		DistanceFromLower: res.DistanceFromLower,
		Equation:          res.Equation,
		MiddleLine:        res.Fit.Predictions,
		UpperBandSeries:   res.Bands.Upper,
		LowerBandSeries:   res.Bands.Lower,
	}
}
