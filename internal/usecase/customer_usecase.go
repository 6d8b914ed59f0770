package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"strings"

	"github.com/rs/zerolog/log"
)

type CustomerInput struct {
	Name        string
	TaxID       string
	Phone       string
	Email       string
	Address     string
	ServiceType entities.ServiceType
}

// CustomerPatch holds the fields to change; nil means keep.
type CustomerPatch struct {
	Name        *string
	TaxID       *string
	Phone       *string
	Email       *string
	Address     *string
	ServiceType *entities.ServiceType
}

type CustomerFilter struct {
	Search      string
	ServiceType entities.ServiceType
}

type ICustomerUseCase interface {
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	store interfaces.IStore
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(store interfaces.IStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	c := entities.Customer{
		Name:        strings.TrimSpace(in.Name),
		TaxID:       strings.TrimSpace(in.TaxID),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Address:     strings.TrimSpace(in.Address),
		ServiceType: in.ServiceType,
	}
	if c.ServiceType == "" {
		c.ServiceType = entities.ServiceTypeMaintenance
	}

	var created entities.Customer
	err := u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		var err error
		created, err = tx.CreateCustomer(c)
		return err
	})
	if err != nil {
		return entities.Customer{}, err
	}
	log.Info().Str("customer_id", created.ID).Msg("[customer][usecase] created")
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := requireID("customer_id", id)
	if err != nil {
		return entities.Customer{}, err
	}
	var c entities.Customer
	err = u.store.View(ctx, func(v interfaces.IStoreView) error {
		c, err = v.GetCustomer(id)
		return err
	})
	return c, err
}

func (u *CustomerUseCase) List(ctx context.Context, filter CustomerFilter) ([]entities.Customer, error) {
	search := normalizeSearch(filter.Search)
	var out []entities.Customer
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		out = make([]entities.Customer, 0)
		for _, c := range v.ListCustomers() {
			if filter.ServiceType != "" && c.ServiceType != filter.ServiceType {
				continue
			}
			if search != "" && !containsFold(c.Name, search) && !containsFold(c.TaxID, search) && !containsFold(c.Email, search) && !containsFold(c.Phone, search) {
				continue
			}
			out = append(out, c)
		}
		return nil
	})
	return out, err
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error) {
	id, err := requireID("customer_id", id)
	if err != nil {
		return entities.Customer{}, err
	}
	var updated entities.Customer
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		updated, err = tx.UpdateCustomer(id, func(c *entities.Customer) error {
			applyString(&c.Name, patch.Name)
			applyString(&c.TaxID, patch.TaxID)
			applyString(&c.Phone, patch.Phone)
			applyString(&c.Email, patch.Email)
			applyString(&c.Address, patch.Address)
			if patch.ServiceType != nil {
				c.ServiceType = *patch.ServiceType
			}
			return nil
		})
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("customer_id", id).Msg("[customer][usecase] update failed")
		return entities.Customer{}, err
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID("customer_id", id)
	if err != nil {
		return err
	}
	err = u.store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		return tx.DeleteCustomer(id)
	})
	if err != nil {
		return err
	}
	log.Info().Str("customer_id", id).Msg("[customer][usecase] deleted")
	return nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
