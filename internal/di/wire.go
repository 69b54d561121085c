//go:build wireinject
// +build wireinject

package di

import (
	"TrendPull/pkg/config"
	"TrendPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Engine and collaborators
		ProvideEngine,
		ProvideCache,
		ProvideHub,
		ProvideSignalPublisher,

		// Use cases
		ProvideChannelUseCase,
		ProvideSeriesHandler,

		// Transport
		ProvideHTTPHandler,
		ProvideKafkaConsumer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
