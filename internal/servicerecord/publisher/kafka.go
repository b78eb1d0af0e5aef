// Package publisher mirrors service record entries onto a Kafka topic.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"roster/internal/servicerecord/models"
)

// Event is the wire form of a service record entry. Records are keyed by soldier id
// so one soldier's entries stay ordered within a partition.
type Event struct {
	RecordID    string          `json:"record_id"`
	SoldierID   string          `json:"soldier_id"`
	ActionType  string          `json:"action_type"`
	Payload     json.RawMessage `json:"payload"`
	PerformedBy *string         `json:"performed_by"`
	Visibility  string          `json:"visibility"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// ToEvent converts an entry to its wire form.
func ToEvent(entry *models.Entry) Event {
	ev := Event{
		RecordID:   entry.ID.String(),
		SoldierID:  entry.SoldierID.String(),
		ActionType: string(entry.ActionType),
		Payload:    entry.Payload,
		Visibility: string(entry.Visibility),
		OccurredAt: entry.OccurredAt.UTC(),
	}
	if len(ev.Payload) == 0 {
		ev.Payload = json.RawMessage("{}")
	}
	if entry.PerformedBy != nil {
		s := entry.PerformedBy.String()
		ev.PerformedBy = &s
	}
	return ev
}

// KafkaPublisher produces entries synchronously so the caller learns of failures.
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	timeout time.Duration
}

// Option configures a KafkaPublisher.
type Option func(*KafkaPublisher)

// WithTimeout bounds each publish independently of the caller's deadline.
func WithTimeout(d time.Duration) Option {
	return func(p *KafkaPublisher) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewKafka connects a producer to brokers for topic.
func NewKafka(brokers []string, topic string, opts ...Option) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	p := &KafkaPublisher{client: client, topic: topic, timeout: 2 * time.Second}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, entry *models.Entry) error {
	value, err := json.Marshal(ToEvent(entry))
	if err != nil {
		return fmt.Errorf("marshal service record event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(entry.SoldierID.String()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "action_type", Value: []byte(entry.ActionType)},
			{Key: "visibility", Value: []byte(entry.Visibility)},
		},
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce service record event: %w", err)
	}
	return nil
}

// Ping checks broker connectivity.
func (p *KafkaPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes buffered records and closes the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
