package entities

import "time"

type EventType string

const (
	EventSaleCreated               EventType = "sale.created"
	EventStockLow                  EventType = "stock.low"
	EventServiceOrderStatusChanged EventType = "service_order.status_changed"
	EventStockMovementRegistered   EventType = "stock.movement_registered"
)

// DomainEvent is the envelope published to the message broker after a commit.
type DomainEvent struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}
