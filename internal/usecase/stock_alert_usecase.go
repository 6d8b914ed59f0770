package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type IStockAlertUseCase interface {
	CheckLowStock(ctx context.Context) ([]entities.Product, error)
}

// StockAlertUseCase scans the inventory for products at or below their
// minimum and warns about them. It runs from the scheduler.
type StockAlertUseCase struct {
	store    interfaces.IStore
	notifier interfaces.IStockAlertNotifier
	events   eventEmitter
}

var _ IStockAlertUseCase = (*StockAlertUseCase)(nil)

func NewStockAlertUseCase(store interfaces.IStore, notifier interfaces.IStockAlertNotifier, publisher interfaces.IEventPublisher) *StockAlertUseCase {
	return &StockAlertUseCase{store: store, notifier: notifier, events: eventEmitter{publisher: publisher}}
}

func (u *StockAlertUseCase) CheckLowStock(ctx context.Context) ([]entities.Product, error) {
	var low []entities.Product
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		for _, p := range v.ListProducts() {
			if p.IsLowStock() {
				low = append(low, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(low) == 0 {
		log.Debug().Msg("[stock][alert] no product below minimum")
		return nil, nil
	}

	log.Info().Int("products", len(low)).Msg("[stock][alert] low stock detected")
	for _, p := range low {
		u.events.emitLowStock(ctx, p)
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyLowStock(ctx, low); err != nil {
			log.Error().Err(err).Msg("[stock][alert] notification failed")
			return low, err
		}
	}
	return low, nil
}
