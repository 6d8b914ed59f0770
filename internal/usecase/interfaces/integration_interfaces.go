package interfaces

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// IEventPublisher delivers domain events to the message broker.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}

// IStockAlertNotifier warns people about products at or below minimum stock.
type IStockAlertNotifier interface {
	NotifyLowStock(ctx context.Context, products []entities.Product) error
}

// IMetricsRecorder collects business counters.
type IMetricsRecorder interface {
	SaleCreated(total decimal.Decimal, units int)
	StockMoved(direction entities.MovementDirection, quantity int)
	ServiceOrderStatusChanged(from, to entities.ServiceOrderStatus)
}

// IUserDirectory is the static list of people allowed to sign in.
type IUserDirectory interface {
	FindByLogin(login string) (entities.User, bool)
	FindByID(id string) (entities.User, bool)
	CheckPassword(user entities.User, password string) bool
}

// ITokenIssuer signs and verifies access tokens.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresAt time.Time, err error)
	Parse(token string) (userID string, role entities.Role, err error)
}
