package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/segmentio/kafka-go"
)

const defaultRetryBackoff = 500 * time.Millisecond

// messageReader is the subset of *kafka.Reader used here.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaReader builds a consumer group reader for topic.
func NewKafkaReader(brokers []string, groupID, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     1 * time.Second,
	})
}

// CustomerCreatedConsumer feeds customer.created events to the account provisioner.
// Delivery is at least once; the provisioner is idempotent per client.
type CustomerCreatedConsumer struct {
	reader      messageReader
	dlq         messageWriter
	dlqTopic    string
	provisioner portssvc.AccountProvisionerSvc
	logger      *slog.Logger
	backoff     time.Duration
}

// ConsumerOption is a functional option for configuring the consumer
type ConsumerOption func(*CustomerCreatedConsumer)

// WithDeadLetterQueue sends undecodable messages to topic before committing them.
func WithDeadLetterQueue(writer messageWriter, topic string) ConsumerOption {
	return func(c *CustomerCreatedConsumer) {
		c.dlq = writer
		c.dlqTopic = topic
	}
}

// WithRetryBackoff sets the pause after a failed fetch.
func WithRetryBackoff(d time.Duration) ConsumerOption {
	return func(c *CustomerCreatedConsumer) {
		c.backoff = d
	}
}

// NewCustomerCreatedConsumer creates the consumer.
func NewCustomerCreatedConsumer(
	reader messageReader,
	provisioner portssvc.AccountProvisionerSvc,
	logger *slog.Logger,
	options ...ConsumerOption,
) *CustomerCreatedConsumer {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CustomerCreatedConsumer{
		reader:      reader,
		provisioner: provisioner,
		logger:      logger.With(slog.String("component", "customer_created_consumer")),
		backoff:     defaultRetryBackoff,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Run consumes until ctx is cancelled. It returns nil on cancellation.
func (c *CustomerCreatedConsumer) Run(ctx context.Context) error {
	c.logger.Info("Customer created consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("Customer created consumer stopped")
				return nil
			}
			c.logger.Error("Failed to fetch message", slog.String("error", err.Error()))
			if !sleepCtx(ctx, c.backoff) {
				return nil
			}
			continue
		}

		msgLogger := c.logger.With(
			slog.String("topic", msg.Topic),
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
		)
		c.handle(middleware.WithLogger(ctx, msgLogger), msgLogger, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			msgLogger.Error("Failed to commit message", slog.String("error", err.Error()))
		}
	}
}

// handle processes one message. Every path ends in a commit: provisioning never fails
// loudly and undecodable messages go to the DLQ.
func (c *CustomerCreatedConsumer) handle(ctx context.Context, logger *slog.Logger, msg kafka.Message) {
	var env envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		c.deadLetter(ctx, logger, msg, "malformed envelope", err)
		return
	}
	if env.Type != domain.CustomerCreatedEventType {
		c.deadLetter(ctx, logger, msg, "unknown event type "+env.Type, nil)
		return
	}

	var event domain.CustomerCreatedEvent
	if err := json.Unmarshal(env.Payload, &event); err != nil {
		c.deadLetter(ctx, logger, msg, "malformed payload", err)
		return
	}

	outcome := c.provisioner.HandleCustomerCreated(ctx, event)
	logger.Info("Customer created event processed",
		slog.Int64("client_id", event.ClientID),
		slog.String("outcome", string(outcome)))
}

func (c *CustomerCreatedConsumer) deadLetter(ctx context.Context, logger *slog.Logger, msg kafka.Message, reason string, cause error) {
	attrs := []any{slog.String("reason", reason)}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	if c.dlq == nil || c.dlqTopic == "" {
		logger.Warn("Dropping undecodable message", attrs...)
		return
	}

	dead := kafka.Message{
		Topic: c.dlqTopic,
		Key:   msg.Key,
		Value: msg.Value,
		Headers: append(msg.Headers,
			kafka.Header{Key: "dlq-reason", Value: []byte(reason)},
			kafka.Header{Key: "dlq-source-topic", Value: []byte(msg.Topic)},
		),
		Time: time.Now(),
	}
	if err := c.dlq.WriteMessages(ctx, dead); err != nil {
		logger.Error("Failed to write message to DLQ", append(attrs, slog.String("dlq_error", err.Error()))...)
		return
	}
	logger.Warn("Message sent to DLQ", append(attrs, slog.String("dlq_topic", c.dlqTopic))...)
}

// Close closes the underlying reader.
func (c *CustomerCreatedConsumer) Close() error {
	return c.reader.Close()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
