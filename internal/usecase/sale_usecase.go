package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type SaleItemInput struct {
	ProductID string
	Quantity  int
}

type SaleInput struct {
	CustomerID string
	Technician string
	Items      []SaleItemInput
}

type SaleFilter struct {
	CustomerID string
	Technician string
	From       time.Time
	To         time.Time
}

type ISaleUseCase interface {
	CreateSale(ctx context.Context, in SaleInput) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]entities.Sale, error)
}

// SaleUseCase couples sales to inventory: a sale, its stock decrements and its
// ledger entries commit together or not at all.
type SaleUseCase struct {
	store   interfaces.IStore
	events  eventEmitter
	metrics interfaces.IMetricsRecorder
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(store interfaces.IStore, publisher interfaces.IEventPublisher, metrics interfaces.IMetricsRecorder) *SaleUseCase {
	return &SaleUseCase{store: store, events: eventEmitter{publisher: publisher}, metrics: metricsOrNoop(metrics)}
}

func (u *SaleUseCase) CreateSale(ctx context.Context, in SaleInput) (entities.Sale, error) {
	customerID, err := requireID("customer_id", in.CustomerID)
	if err != nil {
		return entities.Sale{}, err
	}
	if len(in.Items) == 0 {
		return entities.Sale{}, entities.Invalid("items", "must not be empty")
	}
	requested := map[string]int{}
	var productOrder []string
	for _, it := range in.Items {
		productID, err := requireID("product_id", it.ProductID)
		if err != nil {
			return entities.Sale{}, err
		}
		if it.Quantity <= 0 {
			return entities.Sale{}, entities.Invalid("quantity", "must be greater than zero")
		}
		if _, seen := requested[productID]; !seen {
			productOrder = append(productOrder, productID)
		}
		requested[productID] = addQuantity(requested[productID], it.Quantity)
	}

	var (
		sale    entities.Sale
		touched []entities.Product
	)
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		if _, err := tx.GetCustomer(customerID); err != nil {
			return asReference(err)
		}

		prices := map[string]entities.Product{}
		for _, productID := range productOrder {
			p, err := tx.GetProduct(productID)
			if err != nil {
				return asReference(err)
			}
			if requested[productID] > p.Quantity {
				return &entities.StockError{ProductID: productID, Available: p.Quantity, Requested: requested[productID]}
			}
			prices[productID] = p
		}

		items := make([]entities.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			productID := strings.TrimSpace(it.ProductID)
			items = append(items, entities.SaleItem{ProductID: productID, Quantity: it.Quantity, UnitPrice: prices[productID].Price})
		}

		var err error
		sale, err = tx.CreateSale(entities.Sale{
			CustomerID: customerID,
			Technician: strings.TrimSpace(in.Technician),
			Items:      items,
			Total:      entities.SumItems(items),
		})
		if err != nil {
			return err
		}

		reason := entities.SaleMovementReason(sale.ID)
		for _, it := range sale.Items {
			if _, err := tx.UpdateProduct(it.ProductID, func(p *entities.Product) error {
				return p.Withdraw(it.Quantity)
			}); err != nil {
				return err
			}
			if _, err := tx.AppendStockMovement(entities.StockMovement{
				ProductID: it.ProductID,
				Direction: entities.MovementOut,
				Quantity:  it.Quantity,
				Reason:    reason,
				SaleID:    sale.ID,
			}); err != nil {
				return err
			}
		}

		touched = touched[:0]
		for _, productID := range productOrder {
			p, err := tx.GetProduct(productID)
			if err != nil {
				return err
			}
			touched = append(touched, p)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Int("items", len(in.Items)).Msg("[sale][usecase] create rejected")
		return entities.Sale{}, err
	}

	log.Info().Str("sale_id", sale.ID).Str("customer_id", sale.CustomerID).Str("total", sale.Total.StringFixed(2)).Msg("[sale][usecase] created")
	u.metrics.SaleCreated(sale.Total, sale.UnitsSold())
	for _, it := range sale.Items {
		u.metrics.StockMoved(entities.MovementOut, it.Quantity)
	}
	u.events.emit(ctx, entities.EventSaleCreated, sale.ID, map[string]any{
		"customer_id": sale.CustomerID,
		"technician":  sale.Technician,
		"total":       sale.Total.StringFixed(2),
		"items":       len(sale.Items),
	})
	for _, p := range touched {
		if p.IsLowStock() {
			u.events.emitLowStock(ctx, p)
		}
	}
	return sale, nil
}

// addQuantity sums positive quantities, saturating at math.MaxInt. A saturated
// total is still larger than any stock, so the sale fails as insufficient.
func addQuantity(total, qty int) int {
	if total > math.MaxInt-qty {
		return math.MaxInt
	}
	return total + qty
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id, err := requireID("sale_id", id)
	if err != nil {
		return entities.Sale{}, err
	}
	var s entities.Sale
	err = u.store.View(ctx, func(v interfaces.IStoreView) error {
		s, err = v.GetSale(id)
		return err
	})
	return s, err
}

func (u *SaleUseCase) List(ctx context.Context, filter SaleFilter) ([]entities.Sale, error) {
	technician := normalizeSearch(filter.Technician)
	var out []entities.Sale
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		out = make([]entities.Sale, 0)
		for _, s := range v.ListSales() {
			if filter.CustomerID != "" && s.CustomerID != filter.CustomerID {
				continue
			}
			if technician != "" && strings.ToLower(s.Technician) != technician {
				continue
			}
			if !withinRange(s.CreatedAt, filter.From, filter.To) {
				continue
			}
			out = append(out, s)
		}
		return nil
	})
	return out, err
}
