// Package memory is the in-process Entity Store. Every write runs inside
// RunInTransaction against a cloned state that replaces the live state only
// when the transaction function succeeds, so a failed operation is a no-op.
package memory

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/idgen"
	"crm_assistencia/internal/usecase/interfaces"
	"slices"
	"sync"
	"time"
)

type state struct {
	customers      collection[entities.Customer]
	products       collection[entities.Product]
	serviceOrders  collection[entities.ServiceOrder]
	sales          collection[entities.Sale]
	stockMovements []entities.StockMovement
}

func newState() state {
	return state{
		customers:     newCollection[entities.Customer](),
		products:      newCollection[entities.Product](),
		serviceOrders: newCollection[entities.ServiceOrder](),
		sales:         newCollection[entities.Sale](),
	}
}

func (s state) clone() state {
	return state{
		customers:      s.customers.clone(same[entities.Customer]),
		products:       s.products.clone(same[entities.Product]),
		serviceOrders:  s.serviceOrders.clone(entities.ServiceOrder.Clone),
		sales:          s.sales.clone(entities.Sale.Clone),
		stockMovements: slices.Clone(s.stockMovements),
	}
}

type Store struct {
	mu    sync.RWMutex
	state state
	ids   interfaces.IIDGenerator
	now   func() time.Time
}

var _ interfaces.IStore = (*Store)(nil)

type Option func(*Store)

func WithIDGenerator(g interfaces.IIDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		state: newState(),
		ids:   idgen.UUIDGenerator{},
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) RunInTransaction(ctx context.Context, fn func(tx interfaces.ITransaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &transaction{working: s.state.clone(), ids: s.ids, now: s.now()}
	tx.view = view{state: &tx.working}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx.working
	return nil
}

func (s *Store) View(ctx context.Context, fn func(v interfaces.IStoreView) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&view{state: &s.state})
}
