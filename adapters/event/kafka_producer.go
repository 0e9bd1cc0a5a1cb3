package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/talentbase/talentbase/internal/config"
)

const TopicProfileEvents = "profile.events"

type ProfileEventType string

const (
	ProfileEventTypeCreated   ProfileEventType = "created"
	ProfileEventTypeUpdated   ProfileEventType = "updated"
	ProfileEventTypeAnnotated ProfileEventType = "annotated"
	ProfileEventTypeDeleted   ProfileEventType = "deleted"
)

// ProfileEventPayload is the wire form of a profile lifecycle event.
// Field/Detail are only set for annotation events (e.g. "stars", "2").
type ProfileEventPayload struct {
	EventType  ProfileEventType `json:"event_type"`
	ProfileID  uuid.UUID        `json:"profile_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Field      string           `json:"field,omitempty"`
	Detail     string           `json:"detail,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Publisher is what use cases depend on; KafkaProducerClient is the
// production implementation.
type Publisher interface {
	PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ProfileEventsWriter: profileWriter}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.ProfileID.String()),
		Value: value,
	}
	if err := c.ProfileEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot write profile event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
