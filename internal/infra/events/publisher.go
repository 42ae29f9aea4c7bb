// Package events publishes workflow events (submitted, moderated, promoted,
// rejected) to Kafka so that other systems can follow the review pipeline.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"speed/internal/domain/entity"
	"speed/internal/resilience/circuitbreaker"
	"speed/pkg/config"
)

// Publisher sends workflow events to a downstream system.
type Publisher interface {
	Publish(ctx context.Context, event entity.WorkflowEvent) error
	Close() error
}

// Config holds Kafka publisher settings.
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// LoadConfigFromEnv reads KAFKA_BROKERS, KAFKA_TOPIC and KAFKA_WRITE_TIMEOUT.
func LoadConfigFromEnv() Config {
	return Config{
		Brokers:      config.GetEnvStringList("KAFKA_BROKERS", nil),
		Topic:        config.GetEnvString("KAFKA_TOPIC", "speed.workflow"),
		WriteTimeout: config.GetEnvDuration("KAFKA_WRITE_TIMEOUT", 5*time.Second),
	}
}

// New returns a Kafka publisher when brokers are configured and a no-op publisher otherwise.
func New(cfg Config) Publisher {
	if len(cfg.Brokers) == 0 {
		slog.Info("event publishing disabled (KAFKA_BROKERS not set)")
		return NoopPublisher{}
	}
	slog.Info("event publishing enabled",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic))
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return NewKafkaPublisher(w)
}

// messageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes JSON-encoded events keyed by article ID, so all events
// for one article land on the same partition in order. Writes go through a
// circuit breaker; while it is open Publish fails immediately.
type KafkaPublisher struct {
	w  messageWriter
	cb *circuitbreaker.CircuitBreaker
}

// NewKafkaPublisher wraps a Kafka writer.
func NewKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{w: w, cb: circuitbreaker.New(circuitbreaker.EventBrokerConfig())}
}

// Publish encodes and writes one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event entity.WorkflowEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.ArticleID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}
	err = p.cb.Do(func() error {
		return p.w.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Breaker exposes the broker circuit breaker for health reporting.
func (p *KafkaPublisher) Breaker() *circuitbreaker.CircuitBreaker {
	return p.cb
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NoopPublisher discards events.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, entity.WorkflowEvent) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
