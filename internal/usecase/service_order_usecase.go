package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type ServiceOrderInput struct {
	CustomerID   string
	Description  string
	Equipment    string
	Technician   string
	Observations string
	Status       entities.ServiceOrderStatus
	UsedParts    []string
}

// ServiceOrderPatch changes the editable fields. Status is checked against
// the lifecycle table; the other fields stay editable after completion.
type ServiceOrderPatch struct {
	Description  *string
	Equipment    *string
	Technician   *string
	Observations *string
	Status       *entities.ServiceOrderStatus
}

type ServiceOrderFilter struct {
	Status     entities.ServiceOrderStatus
	Technician string
	CustomerID string
	Search     string
	From       time.Time
	To         time.Time
}

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter ServiceOrderFilter) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id string, patch ServiceOrderPatch) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	AddUsedPart(ctx context.Context, orderID, productID string) (entities.ServiceOrder, error)
	RemoveUsedPart(ctx context.Context, orderID string, index int) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	store   interfaces.IStore
	events  eventEmitter
	metrics interfaces.IMetricsRecorder
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(store interfaces.IStore, publisher interfaces.IEventPublisher, metrics interfaces.IMetricsRecorder) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{store: store, events: eventEmitter{publisher: publisher}, metrics: metricsOrNoop(metrics)}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error) {
	customerID, err := requireID("customer_id", in.CustomerID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o := entities.ServiceOrder{
		CustomerID:   customerID,
		Description:  strings.TrimSpace(in.Description),
		Equipment:    strings.TrimSpace(in.Equipment),
		Technician:   strings.TrimSpace(in.Technician),
		Observations: strings.TrimSpace(in.Observations),
		Status:       in.Status,
		UsedParts:    append([]string(nil), in.UsedParts...),
	}
	if o.Status == "" {
		o.Status = entities.ServiceOrderStatusAnalyzing
	}

	var created entities.ServiceOrder
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		created, err = tx.CreateServiceOrder(o)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Msg("[service_order][usecase] create failed")
		return entities.ServiceOrder{}, err
	}
	log.Info().Str("service_order_id", created.ID).Str("status", string(created.Status)).Msg("[service_order][usecase] created")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id, err := requireID("service_order_id", id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	var o entities.ServiceOrder
	err = u.store.View(ctx, func(v interfaces.IStoreView) error {
		o, err = v.GetServiceOrder(id)
		return err
	})
	return o, err
}

// List filters orders. Search matches equipment, description, technician and
// the customer's name.
func (u *ServiceOrderUseCase) List(ctx context.Context, filter ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	search := normalizeSearch(filter.Search)
	technician := normalizeSearch(filter.Technician)
	var out []entities.ServiceOrder
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		out = make([]entities.ServiceOrder, 0)
		for _, o := range v.ListServiceOrders() {
			if filter.Status != "" && o.Status != filter.Status {
				continue
			}
			if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
				continue
			}
			if technician != "" && strings.ToLower(o.Technician) != technician {
				continue
			}
			if !withinRange(o.CreatedAt, filter.From, filter.To) {
				continue
			}
			if search != "" && !matchesOrder(v, o, search) {
				continue
			}
			out = append(out, o)
		}
		return nil
	})
	return out, err
}

func matchesOrder(v interfaces.IStoreView, o entities.ServiceOrder, search string) bool {
	if containsFold(o.Equipment, search) || containsFold(o.Description, search) || containsFold(o.Technician, search) {
		return true
	}
	c, err := v.GetCustomer(o.CustomerID)
	return err == nil && containsFold(c.Name, search)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, patch ServiceOrderPatch) (entities.ServiceOrder, error) {
	id, err := requireID("service_order_id", id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	var (
		updated    entities.ServiceOrder
		fromStatus entities.ServiceOrderStatus
	)
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		updated, err = tx.UpdateServiceOrder(id, func(o *entities.ServiceOrder) error {
			fromStatus = o.Status
			if patch.Status != nil {
				if err := o.TransitionTo(*patch.Status); err != nil {
					return err
				}
			}
			applyString(&o.Description, patch.Description)
			applyString(&o.Equipment, patch.Equipment)
			applyString(&o.Technician, patch.Technician)
			applyString(&o.Observations, patch.Observations)
			return nil
		})
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("service_order_id", id).Msg("[service_order][usecase] update failed")
		return entities.ServiceOrder{}, err
	}

	if updated.Status != fromStatus {
		log.Info().Str("service_order_id", id).Str("from", string(fromStatus)).Str("to", string(updated.Status)).Msg("[service_order][usecase] status changed")
		u.metrics.ServiceOrderStatusChanged(fromStatus, updated.Status)
		u.events.emit(ctx, entities.EventServiceOrderStatusChanged, id, map[string]any{
			"from":        string(fromStatus),
			"to":          string(updated.Status),
			"customer_id": updated.CustomerID,
			"technician":  updated.Technician,
		})
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID("service_order_id", id)
	if err != nil {
		return err
	}
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		return tx.DeleteServiceOrder(id)
	})
	if err != nil {
		return err
	}
	log.Info().Str("service_order_id", id).Msg("[service_order][usecase] deleted")
	return nil
}

// AddUsedPart records a part used in the repair. Parts are tracked for cost
// visibility only; stock is never decremented here.
func (u *ServiceOrderUseCase) AddUsedPart(ctx context.Context, orderID, productID string) (entities.ServiceOrder, error) {
	orderID, err := requireID("service_order_id", orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	productID, err = requireID("product_id", productID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	var updated entities.ServiceOrder
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		if _, err := tx.GetProduct(productID); err != nil {
			return asReference(err)
		}
		updated, err = tx.UpdateServiceOrder(orderID, func(o *entities.ServiceOrder) error {
			o.AddPart(productID)
			return nil
		})
		return err
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Info().Str("service_order_id", orderID).Str("product_id", productID).Msg("[service_order][usecase] used part added")
	return updated, nil
}

func (u *ServiceOrderUseCase) RemoveUsedPart(ctx context.Context, orderID string, index int) (entities.ServiceOrder, error) {
	orderID, err := requireID("service_order_id", orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	var updated entities.ServiceOrder
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		updated, err = tx.UpdateServiceOrder(orderID, func(o *entities.ServiceOrder) error {
			_, err := o.RemovePartAt(index)
			return err
		})
		return err
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}
