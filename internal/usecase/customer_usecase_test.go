package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_assistencia/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerUseCase_Create(t *testing.T) {
	uc := NewCustomerUseCase(newTestStore())

	t.Run("trims and defaults service type", func(t *testing.T) {
		c, err := uc.Create(context.Background(), CustomerInput{Name: "  João Silva ", Email: " joao@email.com "})
		require.NoError(t, err)
		assert.Equal(t, "João Silva", c.Name)
		assert.Equal(t, "joao@email.com", c.Email)
		assert.Equal(t, entities.ServiceTypeMaintenance, c.ServiceType)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, testNow, c.CreatedAt)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := uc.Create(context.Background(), CustomerInput{Name: "   "})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		_, err := uc.Create(context.Background(), CustomerInput{Name: "Maria", ServiceType: "upgrade"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestCustomerUseCase_ListFilters(t *testing.T) {
	uc := NewCustomerUseCase(newTestStore())
	ctx := context.Background()
	_, err := uc.Create(ctx, CustomerInput{Name: "João Silva", TaxID: "123.456.789-00", ServiceType: entities.ServiceTypeMaintenance})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CustomerInput{Name: "Maria Santos", Email: "maria@email.com", ServiceType: entities.ServiceTypeReplacement})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter CustomerFilter
		want   []string
	}{
		{name: "no filter keeps insertion order", filter: CustomerFilter{}, want: []string{"João Silva", "Maria Santos"}},
		{name: "search is case insensitive", filter: CustomerFilter{Search: "MARIA"}, want: []string{"Maria Santos"}},
		{name: "search by tax id", filter: CustomerFilter{Search: "123.456"}, want: []string{"João Silva"}},
		{name: "by service type", filter: CustomerFilter{ServiceType: entities.ServiceTypeReplacement}, want: []string{"Maria Santos"}},
		{name: "no match", filter: CustomerFilter{Search: "pedro"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(ctx, tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCustomerUseCase_UpdateAndDelete(t *testing.T) {
	store := newTestStore()
	uc := NewCustomerUseCase(store)
	ctx := context.Background()
	c := seedCustomer(t, store, "Carlos Oliveira")

	phone := "(11) 77777-7777"
	kind := entities.ServiceTypeReplacement
	updated, err := uc.Update(ctx, c.ID, CustomerPatch{Phone: &phone, ServiceType: &kind})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Oliveira", updated.Name)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, kind, updated.ServiceType)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)

	blank := ""
	_, err = uc.Update(ctx, c.ID, CustomerPatch{Name: &blank})
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = uc.Update(ctx, "missing", CustomerPatch{Phone: &phone})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, c.ID))
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), entities.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, " "), entities.ErrValidation)
}
