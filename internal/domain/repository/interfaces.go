package repository

import "context"

// Metrics records engine and transport observations.
type Metrics interface {
	RecordAnalysis(source string, seconds float64)
	RecordSignal(signal string, strength float64)
	RecordError(kind string)
	RecordCacheLookup(hit bool)
}

// SignalPublisher fans emitted signals out to downstream consumers.
type SignalPublisher interface {
	PublishSignal(ctx context.Context, key string, payload interface{}) error
	Close() error
}
