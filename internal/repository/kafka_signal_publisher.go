package repository

import (
	"context"

	domrepo "TrendPull/internal/domain/repository"
	pkgkafka "TrendPull/pkg/kafka"
)

// KafkaSignalPublisher publishes signal events to the signals topic,
// keyed by symbol so per-symbol ordering is preserved.
type KafkaSignalPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaSignalPublisher(producer *pkgkafka.Producer, topic string) *KafkaSignalPublisher {
	return &KafkaSignalPublisher{producer: producer, topic: topic}
}

func (p *KafkaSignalPublisher) PublishSignal(ctx context.Context, key string, payload interface{}) error {
	var k []byte
	if key != "" {
		k = []byte(key)
	}
	return p.producer.Publish(ctx, p.topic, k, payload)
}

func (p *KafkaSignalPublisher) Close() error {
	return p.producer.Close()
}

var _ domrepo.SignalPublisher = (*KafkaSignalPublisher)(nil)
