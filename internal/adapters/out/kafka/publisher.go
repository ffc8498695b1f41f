// Package kafka publishes shipment lifecycle events to a Kafka topic.
// Consumers (tracking pages, SMS notifiers, settlement jobs) react to status
// changes without coupling to the booking pipeline.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// statusChangedEvent is the wire payload for one status transition.
type statusChangedEvent struct {
	EventType   string    `json:"event_type"`
	ShipmentID  string    `json:"shipment_id"`
	CN          string    `json:"cn"`
	FranchiseID string    `json:"franchise_id"`
	Status      string    `json:"status"`
	ManifestID  *string   `json:"manifest_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ShipmentEventPublisher implements ports.ShipmentEventPublisher on top of a
// kafka-go Writer. Messages are keyed by consignment number so every event
// for one parcel lands on the same partition in order.
type ShipmentEventPublisher struct {
	writer *kafka.Writer
}

// NewShipmentEventPublisher creates a publisher writing to the given topic.
func NewShipmentEventPublisher(brokers []string, topic string) *ShipmentEventPublisher {
	return &ShipmentEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

var _ ports.ShipmentEventPublisher = (*ShipmentEventPublisher)(nil)

// PublishStatusChanged emits one event for the shipment's current status.
func (p *ShipmentEventPublisher) PublishStatusChanged(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := statusChangedEvent{
		EventType:   "shipment.status_changed",
		ShipmentID:  aggregate.ID().String(),
		CN:          aggregate.CN().String(),
		FranchiseID: aggregate.Tenant().FranchiseID().String(),
		Status:      aggregate.Status().String(),
		OccurredAt:  time.Now().UTC(),
	}
	if id := aggregate.ManifestID(); id != nil {
		s := id.String()
		event.ManifestID = &s
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.CN().String()),
		Value: payload,
	})
}

// Close shuts down the underlying writer.
func (p *ShipmentEventPublisher) Close() error {
	return p.writer.Close()
}
