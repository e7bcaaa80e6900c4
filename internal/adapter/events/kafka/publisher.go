// Package kafka publishes round-up events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"roundup-saver/config"
	"roundup-saver/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	writer messageWriter
	topic  string
	log    zerolog.Logger
}

// NewPublisher creates a publisher writing to cfg.Topic on cfg.Brokers.
func NewPublisher(cfg config.EventsConfig, log zerolog.Logger) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, cfg.Topic, log)
}

func newPublisher(w messageWriter, topic string, log zerolog.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log}
}

// PublishRoundUpTransferred writes the event keyed by account so one
// account's events stay ordered within a partition.
func (p *Publisher) PublishRoundUpTransferred(ctx context.Context, event domain.RoundUpTransferred) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal round-up event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountUID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roundup.transferred")},
			{Key: "transfer_uid", Value: []byte(event.TransferUID)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	p.log.Debug().Str("topic", p.topic).Str("transfer_uid", event.TransferUID).Msg("round-up event published")
	return nil
}

// Close flushes pending writes.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
