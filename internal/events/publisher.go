// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/parts-store/internal/logger"
	"github.com/sbilibin2017/parts-store/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PurchasePublisher writes committed purchases to a Kafka topic.
type PurchasePublisher struct {
	writer  KafkaWriter
	timeout time.Duration
}

// NewPurchasePublisher creates a new PurchasePublisher. A nil writer turns
// publishing into a logged no-op.
func NewPurchasePublisher(writer KafkaWriter) *PurchasePublisher {
	return &PurchasePublisher{writer: writer, timeout: 5 * time.Second}
}

// NewKafkaWriter builds a writer for topic on brokers, or returns nil when no
// brokers are configured.
func NewKafkaWriter(brokers []string, topic string) KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publish sends event keyed by its id. Failures are logged and dropped; the
// purchase is already committed.
func (p *PurchasePublisher) Publish(ctx context.Context, event models.PurchaseEvent) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal purchase event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	// The request context may be cancelled as soon as the response is written.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish purchase event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Purchase event published", "event_id", event.EventID, "purchase_id", event.PurchaseID)
}

// Close closes the underlying writer.
func (p *PurchasePublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
