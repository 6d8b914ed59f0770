package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

// RoutingKey is crm.<event type>, e.g. crm.sale.created.
func RoutingKey(t entities.EventType) string {
	return "crm." + string(t)
}

// Publisher sends domain events as persistent JSON messages.
type Publisher struct {
	exchange string
	channel  func() (amqpChannel, error)
}

var _ interfaces.IEventPublisher = (*Publisher)(nil)

func NewPublisher(client *RabbitMQClient) *Publisher {
	return &Publisher{exchange: client.Exchange(), channel: client.channelIfConnected}
}

func (p *Publisher) Publish(ctx context.Context, event entities.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch, err := p.channel()
	if err != nil {
		return err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("event serialization: %w", err)
	}

	key := RoutingKey(event.Type)
	err = ch.Publish(p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers: amqp.Table{
			"aggregate_id": event.AggregateID,
			"event_type":   string(event.Type),
		},
	})
	if err != nil {
		return fmt.Errorf("event publish: %w", err)
	}
	log.Debug().Str("routing_key", key).Str("event_id", event.ID).Msg("[events][rabbitmq] published")
	return nil
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, event entities.DomainEvent) error {
	log.Info().
		Str("event_type", string(event.Type)).
		Str("aggregate_id", event.AggregateID).
		Interface("payload", event.Payload).
		Msg("[events][log] domain event")
	return nil
}
