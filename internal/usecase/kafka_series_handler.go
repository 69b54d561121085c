package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"TrendPull/internal/channel"
	domrepo "TrendPull/internal/domain/repository"
	pkgkafka "TrendPull/pkg/kafka"
)

// KafkaSeriesHandler consumes price-series messages from upstream
// collaborators and runs them through the channel usecase. The series
// arrives already materialized; this service never fetches prices itself.
type KafkaSeriesHandler struct {
	topic   string
	uc      *ChannelUseCase
	metrics domrepo.Metrics
}

func NewKafkaSeriesHandler(topic string, uc *ChannelUseCase, metrics domrepo.Metrics) *KafkaSeriesHandler {
	return &KafkaSeriesHandler{topic: topic, uc: uc, metrics: metrics}
}

func (h *KafkaSeriesHandler) Topic() string { return h.topic }

// incoming message schema: {symbol, prices, multiplier?}
func (h *KafkaSeriesHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		Symbol     string    `json:"symbol"`
		Prices     []float64 `json:"prices"`
		Multiplier float64   `json:"multiplier"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	_, err := h.uc.Analyze(ctx, AnalyzeParams{
		Symbol:     m.Symbol,
		Prices:     m.Prices,
		Multiplier: m.Multiplier,
		Source:     "kafka",
	})
	if err != nil {
		// Malformed series will never succeed; drop without retry.
		if errors.Is(err, channel.ErrInsufficientData) || errors.Is(err, channel.ErrInvalidInput) {
			h.metrics.RecordError("consumer_bad_series")
			return nil
		}
		return err
	}
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaSeriesHandler)(nil)
