package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name        string
	Kind        entities.ProductKind
	Category    string
	Quantity    int
	MinQuantity int
	Price       decimal.Decimal
	Description string
}

type ProductPatch struct {
	Name        *string
	Kind        *entities.ProductKind
	Category    *string
	Quantity    *int
	MinQuantity *int
	Price       *decimal.Decimal
	Description *string
}

type ProductFilter struct {
	Search       string
	Kind         entities.ProductKind
	LowStockOnly bool
}

type StockMovementInput struct {
	ProductID string
	Direction entities.MovementDirection
	Quantity  int
	Reason    string
}

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	LowStock(ctx context.Context) ([]entities.Product, error)
	RegisterStockMovement(ctx context.Context, in StockMovementInput) (entities.StockMovement, entities.Product, error)
	ListStockMovements(ctx context.Context, productID string) ([]entities.StockMovement, error)
}

type ProductUseCase struct {
	store   interfaces.IStore
	events  eventEmitter
	metrics interfaces.IMetricsRecorder
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(store interfaces.IStore, publisher interfaces.IEventPublisher, metrics interfaces.IMetricsRecorder) *ProductUseCase {
	return &ProductUseCase{store: store, events: eventEmitter{publisher: publisher}, metrics: metricsOrNoop(metrics)}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	p := entities.Product{
		Name:        strings.TrimSpace(in.Name),
		Kind:        in.Kind,
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
	}
	if p.Kind == "" {
		p.Kind = entities.ProductKindPhysical
	}

	var created entities.Product
	err := u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		var err error
		created, err = tx.CreateProduct(p)
		return err
	})
	if err != nil {
		return entities.Product{}, err
	}
	log.Info().Str("product_id", created.ID).Int("quantity", created.Quantity).Msg("[product][usecase] created")
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id, err := requireID("product_id", id)
	if err != nil {
		return entities.Product{}, err
	}
	var p entities.Product
	err = u.store.View(ctx, func(v interfaces.IStoreView) error {
		p, err = v.GetProduct(id)
		return err
	})
	return p, err
}

func (u *ProductUseCase) List(ctx context.Context, filter ProductFilter) ([]entities.Product, error) {
	search := normalizeSearch(filter.Search)
	var out []entities.Product
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		out = make([]entities.Product, 0)
		for _, p := range v.ListProducts() {
			if filter.Kind != "" && p.Kind != filter.Kind {
				continue
			}
			if filter.LowStockOnly && !p.IsLowStock() {
				continue
			}
			if search != "" && !containsFold(p.Name, search) && !containsFold(p.Category, search) {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	return out, err
}

func (u *ProductUseCase) Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error) {
	id, err := requireID("product_id", id)
	if err != nil {
		return entities.Product{}, err
	}
	var updated entities.Product
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		updated, err = tx.UpdateProduct(id, func(p *entities.Product) error {
			applyString(&p.Name, patch.Name)
			applyString(&p.Category, patch.Category)
			applyString(&p.Description, patch.Description)
			if patch.Kind != nil {
				p.Kind = *patch.Kind
			}
			if patch.Quantity != nil {
				p.Quantity = *patch.Quantity
			}
			if patch.MinQuantity != nil {
				p.MinQuantity = *patch.MinQuantity
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			return nil
		})
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("[product][usecase] update failed")
		return entities.Product{}, err
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID("product_id", id)
	if err != nil {
		return err
	}
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		return tx.DeleteProduct(id)
	})
	if err != nil {
		return err
	}
	log.Info().Str("product_id", id).Msg("[product][usecase] deleted")
	return nil
}

func (u *ProductUseCase) LowStock(ctx context.Context) ([]entities.Product, error) {
	return u.List(ctx, ProductFilter{LowStockOnly: true})
}

// RegisterStockMovement applies a manual entry or withdrawal and records it in
// the ledger in the same transaction.
func (u *ProductUseCase) RegisterStockMovement(ctx context.Context, in StockMovementInput) (entities.StockMovement, entities.Product, error) {
	productID, err := requireID("product_id", in.ProductID)
	if err != nil {
		return entities.StockMovement{}, entities.Product{}, err
	}
	m := entities.StockMovement{
		ProductID: productID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		Reason:    strings.TrimSpace(in.Reason),
	}
	if err := m.Validate(); err != nil {
		return entities.StockMovement{}, entities.Product{}, err
	}
	if m.Reason == "" {
		m.Reason = "Ajuste manual"
	}

	var (
		recorded entities.StockMovement
		product  entities.Product
	)
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		var err error
		product, err = tx.UpdateProduct(productID, func(p *entities.Product) error {
			if m.Direction == entities.MovementIn {
				return p.Restock(m.Quantity)
			}
			return p.Withdraw(m.Quantity)
		})
		if err != nil {
			return err
		}
		recorded, err = tx.AppendStockMovement(m)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Str("direction", string(m.Direction)).Int("quantity", m.Quantity).Msg("[stock][usecase] movement rejected")
		return entities.StockMovement{}, entities.Product{}, err
	}

	log.Info().Str("product_id", productID).Str("direction", string(m.Direction)).Int("quantity", m.Quantity).Int("balance", product.Quantity).Msg("[stock][usecase] movement registered")
	u.metrics.StockMoved(recorded.Direction, recorded.Quantity)
	u.events.emit(ctx, entities.EventStockMovementRegistered, productID, map[string]any{
		"movement_id": recorded.ID,
		"direction":   string(recorded.Direction),
		"quantity":    recorded.Quantity,
		"reason":      recorded.Reason,
		"balance":     product.Quantity,
	})
	if recorded.Direction == entities.MovementOut && product.IsLowStock() {
		u.events.emitLowStock(ctx, product)
	}
	return recorded, product, nil
}

// ListStockMovements returns the ledger, newest first. An empty productID lists all.
func (u *ProductUseCase) ListStockMovements(ctx context.Context, productID string) ([]entities.StockMovement, error) {
	productID = strings.TrimSpace(productID)
	var out []entities.StockMovement
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		all := v.ListStockMovements()
		out = make([]entities.StockMovement, 0, len(all))
		for i := len(all) - 1; i >= 0; i-- {
			if productID != "" && all[i].ProductID != productID {
				continue
			}
			out = append(out, all[i])
		}
		return nil
	})
	return out, err
}
