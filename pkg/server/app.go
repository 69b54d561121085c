package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "TrendPull/internal/domain/repository"
	"TrendPull/internal/usecase"
	"TrendPull/pkg/config"
	xhttp "TrendPull/pkg/http"
	pkgkafka "TrendPull/pkg/kafka"
	applogger "TrendPull/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg           *config.Config
	logger        *applogger.Logger
	httpHandler   xhttp.Handler
	httpServer    *xhttp.Server
	consumer      *pkgkafka.Consumer
	seriesHandler *usecase.KafkaSeriesHandler
	publisher     domrepo.SignalPublisher
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	consumer *pkgkafka.Consumer,
	seriesHandler *usecase.KafkaSeriesHandler,
	publisher domrepo.SignalPublisher,
) *App {
	return &App{
		cfg:           cfg,
		logger:        logger,
		httpHandler:   handler,
		consumer:      consumer,
		seriesHandler: seriesHandler,
		publisher:     publisher,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.httpHandler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	// Start the series consumer when Kafka is configured
	if a.consumer != nil && a.seriesHandler != nil {
		a.consumer.RegisterHandler(a.seriesHandler)
		go func() {
			if err := a.consumer.Start(); err != nil {
				a.logger.Error("kafka consumer error", applogger.Error(err))
			}
		}()
		a.logger.Info("kafka consumer started", applogger.String("topic", a.seriesHandler.Topic()))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.logger.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("signal publisher close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
