package messaging

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds a writer for the given brokers. Topics are set per message,
// and messages with the same key land on the same partition.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           5 * time.Second,
	}
}

// CustomerEventPublisher publishes customer lifecycle events to Kafka.
type CustomerEventPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

// NewCustomerEventPublisher creates a publisher writing to topic.
func NewCustomerEventPublisher(writer messageWriter, topic string) *CustomerEventPublisher {
	return &CustomerEventPublisher{writer: writer, topic: topic, now: time.Now}
}

var _ portssvc.CustomerEventPublisher = (*CustomerEventPublisher)(nil)

// PublishCustomerCreated writes a customer.created envelope keyed by client id.
func (p *CustomerEventPublisher) PublishCustomerCreated(ctx context.Context, event domain.CustomerCreatedEvent) error {
	value, err := encodeEnvelope(domain.CustomerCreatedEventType, event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(event.ClientID, 10)),
		Value: value,
		Time:  p.now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for client %d: %w", domain.CustomerCreatedEventType, event.ClientID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *CustomerEventPublisher) Close() error {
	return p.writer.Close()
}
