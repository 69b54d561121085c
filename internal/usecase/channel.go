package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"time"

	"TrendPull/internal/channel"
	"TrendPull/internal/domain/models"
	domrepo "TrendPull/internal/domain/repository"
	domsvc "TrendPull/internal/domain/service"
	icache "TrendPull/internal/service/cache"
	xlogger "TrendPull/pkg/logger"
)

// Broadcaster pushes computed results to live dashboard subscribers.
type Broadcaster interface {
	Broadcast(v interface{})
}

// ChannelUseCase runs the channel engine behind a result cache and fans
// emitted signals out to Kafka and websocket subscribers.
type ChannelUseCase struct {
	analyzer    domsvc.TrendAnalyzer
	cache       icache.BytesCache
	metrics     domrepo.Metrics
	publisher   domrepo.SignalPublisher
	broadcaster Broadcaster
	logger      *xlogger.Logger
	cacheTTL    time.Duration
}

func NewChannelUseCase(
	analyzer domsvc.TrendAnalyzer,
	cache icache.BytesCache,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	cacheTTL time.Duration,
) *ChannelUseCase {
	return &ChannelUseCase{
		analyzer: analyzer,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// SetPublisher wires an optional downstream signal publisher.
func (uc *ChannelUseCase) SetPublisher(p domrepo.SignalPublisher) { uc.publisher = p }

// SetBroadcaster wires an optional live subscriber feed.
func (uc *ChannelUseCase) SetBroadcaster(b Broadcaster) { uc.broadcaster = b }

type AnalyzeParams struct {
	Symbol     string
	Prices     []float64
	Multiplier float64
	Source     string // "http" or "kafka", for metrics
}

// SignalEvent is the payload published per emitted signal.
type SignalEvent struct {
	Symbol         string        `json:"symbol,omitempty"`
	Signal         models.Signal `json:"signal"`
	Strength       float64       `json:"strength"`
	Slope          float64       `json:"slope"`
	RSquared       float64       `json:"r_squared"`
	CurrentPrice   float64       `json:"current_price"`
	PredictedPrice float64       `json:"predicted_price"`
	ChannelWidth   float64       `json:"channel_width"`
	Equation       string        `json:"equation"`
	Timestamp      int64         `json:"ts"`
}

// Analyze computes the price channel for the given series, consulting the
// result cache first. Side effects (publish, broadcast, metrics) only fire
// on fresh computations.
func (uc *ChannelUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.ChannelResult, error) {
	if p.Multiplier <= 0 {
		p.Multiplier = channel.DefaultMultiplier
	}
	if p.Source == "" {
		p.Source = "http"
	}

	key := cacheKey(p.Prices, p.Multiplier)
	if uc.cache != nil {
		if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
			var cached models.ChannelResult
			if err := json.Unmarshal(b, &cached); err == nil {
				uc.metrics.RecordCacheLookup(true)
				return &cached, nil
			}
		}
		uc.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	res, err := uc.analyzer.Analyze(p.Prices, p.Multiplier)
	if err != nil {
		uc.metrics.RecordError("engine")
		return nil, err
	}
	uc.metrics.RecordAnalysis(p.Source, time.Since(start).Seconds())
	uc.metrics.RecordSignal(string(res.Signal), res.Strength)

	if uc.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			if err := uc.cache.SetBytes(key, b, uc.cacheTTL); err != nil {
				uc.logger.Warn("result cache store failed", xlogger.Error(err))
			}
		}
	}

	uc.emit(ctx, p.Symbol, &res)

	return &res, nil
}

func (uc *ChannelUseCase) emit(ctx context.Context, symbol string, res *models.ChannelResult) {
	if uc.broadcaster != nil {
		uc.broadcaster.Broadcast(models.NewChannelResponse(symbol, res))
	}

	if uc.publisher == nil {
		return
	}
	ev := SignalEvent{
		Symbol:         symbol,
		Signal:         res.Signal,
		Strength:       res.Strength,
		Slope:          res.Fit.Slope,
		RSquared:       res.Fit.RSquared,
		CurrentPrice:   res.CurrentPrice,
		PredictedPrice: res.PredictedPrice,
		ChannelWidth:   res.ChannelWidth,
		Equation:       res.Equation,
		Timestamp:      time.Now().Unix(),
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := uc.publisher.PublishSignal(pubCtx, symbol, ev); err != nil {
		uc.metrics.RecordError("signal_publish")
		uc.logger.Warn("signal publish failed",
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
	}
}

// cacheKey hashes the series and multiplier; identical inputs share a key
// across replicas regardless of symbol labeling.
func cacheKey(prices []float64, multiplier float64) string {
	h := sha256.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(multiplier))
	h.Write(buf[:])
	for _, p := range prices {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p))
		h.Write(buf[:])
	}
	return "channel:" + hex.EncodeToString(h.Sum(nil))
}
