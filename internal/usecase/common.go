package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func requireID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", entities.Invalid(field, "is required")
	}
	return id, nil
}

// asReference turns a lookup miss into a dangling reference error.
func asReference(err error) error {
	if errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%v: %w", err, entities.ErrInvalidReference)
	}
	return err
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// withinRange treats a zero bound as open. to is inclusive up to the end of its day.
func withinRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(endOfDay(to)) {
		return false
	}
	return true
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

// eventEmitter publishes domain events after a commit. Failures are logged only.
type eventEmitter struct {
	publisher interfaces.IEventPublisher
}

func (e eventEmitter) emit(ctx context.Context, typ entities.EventType, aggregateID string, payload map[string]any) {
	if e.publisher == nil {
		return
	}
	event := entities.DomainEvent{
		ID:          uuid.NewString(),
		Type:        typ,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_type", string(typ)).Str("aggregate_id", aggregateID).Msg("[events][usecase] publish failed")
	}
}

func (e eventEmitter) emitLowStock(ctx context.Context, p entities.Product) {
	e.emit(ctx, entities.EventStockLow, p.ID, map[string]any{
		"name":         p.Name,
		"quantity":     p.Quantity,
		"min_quantity": p.MinQuantity,
	})
}

type noopMetrics struct{}

func (noopMetrics) SaleCreated(_ decimal.Decimal, _ int)                       {}
func (noopMetrics) StockMoved(_ entities.MovementDirection, _ int)             {}
func (noopMetrics) ServiceOrderStatusChanged(_, _ entities.ServiceOrderStatus) {}

func metricsOrNoop(m interfaces.IMetricsRecorder) interfaces.IMetricsRecorder {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
