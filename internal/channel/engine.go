package channel

import (
	"TrendPull/internal/domain/models"
	domsvc "TrendPull/internal/domain/service"
)

// Engine adapts the free analysis functions to the domain TrendAnalyzer
// port for dependency injection.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (*Engine) Analyze(prices []float64, stdDevMultiplier float64) (models.ChannelResult, error) {
	return Analyze(prices, stdDevMultiplier)
}

var _ domsvc.TrendAnalyzer = (*Engine)(nil)
