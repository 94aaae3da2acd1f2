// Package telemetry streams dispatched store actions to Kafka for
// analytics. Publishing is best-effort: a broker outage must never
// block or fail a state transition.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// ActionRecord is the payload published for every dispatched action.
type ActionRecord struct {
	SessionID  string    `json:"session_id"`
	ActionType string    `json:"action_type"`
	At         time.Time `json:"at"`
}

// Publisher writes action records to a Kafka topic.
type Publisher interface {
	Publish(ctx context.Context, record ActionRecord) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, record ActionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.SessionID),
		Value: data,
		Time:  record.At,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop discards all records; used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(ctx context.Context, record ActionRecord) error { return nil }
func (Noop) Close() error                                           { return nil }
