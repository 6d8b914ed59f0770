package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_assistencia/internal/domain/entities"
	mock_interfaces "crm_assistencia/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStockAlertUseCase_CheckLowStock(t *testing.T) {
	t.Run("nothing low", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newTestStore()
		seedProduct(t, store, "HD 1TB", 15, 5, "250.00")
		uc := NewStockAlertUseCase(store, mock_interfaces.NewMockIStockAlertNotifier(ctrl), mock_interfaces.NewMockIEventPublisher(ctrl))

		low, err := uc.CheckLowStock(context.Background())
		require.NoError(t, err)
		assert.Empty(t, low)
	})

	t.Run("notifies and publishes per product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newTestStore()
		seedProduct(t, store, "HD 1TB", 15, 5, "250.00")
		ram := seedProduct(t, store, "Memória RAM 8GB", 3, 5, "180.00")
		gpu := seedProduct(t, store, "GTX 1660", 2, 3, "1200.00")
		notifier := mock_interfaces.NewMockIStockAlertNotifier(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewStockAlertUseCase(store, notifier, publisher)

		var aggregates []string
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.DomainEvent) error {
			assert.Equal(t, entities.EventStockLow, e.Type)
			aggregates = append(aggregates, e.AggregateID)
			return nil
		}).Times(2)
		notifier.EXPECT().NotifyLowStock(gomock.Any(), gomock.Len(2)).Return(nil)

		low, err := uc.CheckLowStock(context.Background())
		require.NoError(t, err)
		require.Len(t, low, 2)
		assert.Equal(t, []string{ram.ID, gpu.ID}, aggregates)
	})

	t.Run("notifier failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := newTestStore()
		seedProduct(t, store, "GTX 1660", 2, 3, "1200.00")
		notifier := mock_interfaces.NewMockIStockAlertNotifier(ctrl)
		uc := NewStockAlertUseCase(store, notifier, nil)
		notifier.EXPECT().NotifyLowStock(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		low, err := uc.CheckLowStock(context.Background())
		require.Error(t, err)
		assert.Len(t, low, 1)
	})
}
