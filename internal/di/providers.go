package di

import (
	"fmt"

	"TrendPull/internal/channel"
	domrepo "TrendPull/internal/domain/repository"
	domsvc "TrendPull/internal/domain/service"
	"TrendPull/internal/handler/api"
	"TrendPull/internal/handler/ws"
	internalrepo "TrendPull/internal/repository"
	icache "TrendPull/internal/service/cache"
	"TrendPull/internal/usecase"
	"TrendPull/pkg/config"
	xhttp "TrendPull/pkg/http"
	pkgkafka "TrendPull/pkg/kafka"
	xlogger "TrendPull/pkg/logger"
	"TrendPull/pkg/metrics"
	"TrendPull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideEngine creates the channel analysis engine.
func ProvideEngine() domsvc.TrendAnalyzer {
	return channel.NewEngine()
}

// ProvideCache selects the result cache backend: shared Redis when
// configured, process-local TTL map otherwise.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideHub creates the websocket broadcast hub.
func ProvideHub(l *xlogger.Logger) *ws.Hub {
	return ws.NewHub(l)
}

// ProvideSignalPublisher creates a Kafka-backed signal publisher, or nil
// when Kafka is not configured.
func ProvideSignalPublisher(cfg *config.Config) (domrepo.SignalPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatch(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.BatchBytes, cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaSignalPublisher(producer, cfg.Kafka.SignalsTopic), nil
}

// ProvideChannelUseCase creates the channel usecase with its optional
// fan-out collaborators.
func ProvideChannelUseCase(
	cfg *config.Config,
	analyzer domsvc.TrendAnalyzer,
	cache icache.BytesCache,
	m domrepo.Metrics,
	l *xlogger.Logger,
	pub domrepo.SignalPublisher,
	hub *ws.Hub,
) *usecase.ChannelUseCase {
	uc := usecase.NewChannelUseCase(analyzer, cache, m, l, cfg.Engine.CacheTTL)
	if pub != nil {
		uc.SetPublisher(pub)
	}
	if hub != nil {
		uc.SetBroadcaster(hub)
	}
	return uc
}

// ProvideKafkaConsumer creates a Kafka consumer configured from YAML, or
// nil when Kafka is not configured.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerDLQ(cfg.Kafka.Consumer.DLQTopic),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideSeriesHandler registers the handler for the price-series topic.
func ProvideSeriesHandler(cfg *config.Config, uc *usecase.ChannelUseCase, m domrepo.Metrics) *usecase.KafkaSeriesHandler {
	return usecase.NewKafkaSeriesHandler(cfg.Kafka.SeriesTopic, uc, m)
}

// ProvideHTTPHandler creates the echo route handler.
func ProvideHTTPHandler(l *xlogger.Logger, uc *usecase.ChannelUseCase, hub *ws.Hub) xhttp.Handler {
	return api.NewChannelHandler(l, uc, hub)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *xlogger.Logger,
	handler xhttp.Handler,
	consumer *pkgkafka.Consumer,
	seriesHandler *usecase.KafkaSeriesHandler,
	pub domrepo.SignalPublisher,
) *server.App {
	return server.New(cfg, l, handler, consumer, seriesHandler, pub)
}
