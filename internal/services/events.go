package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaEventPublisher publishes nutrition events to Kafka.
type KafkaEventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewKafkaEventPublisher creates a publisher; a nil writer disables publishing.
func NewKafkaEventPublisher(kafkaWriter KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{kafkaWriter: kafkaWriter}
}

// Publish writes the event keyed by user so one user's events stay ordered.
// Failures are logged and never reach the caller.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event models.NutritionEvent) {
	if p.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

func newEvent(cal Calendar, userID uuid.UUID, operation, date string, value float64) models.NutritionEvent {
	return models.NutritionEvent{
		EventID:   uuid.NewString(),
		Timestamp: cal.Now().Unix(),
		UserID:    userID.String(),
		Operation: operation,
		Date:      date,
		Value:     value,
	}
}

func publish(ctx context.Context, events EventPublisher, event models.NutritionEvent) {
	if events != nil {
		events.Publish(ctx, event)
	}
}
