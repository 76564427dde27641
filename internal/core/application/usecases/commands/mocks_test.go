package commands_test

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id string, withOwner bool) (*order.Order, error) {
	args := m.Called(ctx, id, withOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) Cancel(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) Update(ctx context.Context, id string, patch ports.OrderPatch) (*order.Order, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCatalogLookup struct{ mock.Mock }

func (m *MockCatalogLookup) Pizzas(ctx context.Context) ([]catalog.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Pizza), args.Error(1)
}

func (m *MockCatalogLookup) Pizza(ctx context.Context, id string) (*catalog.Pizza, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Pizza), args.Error(1)
}

func (m *MockCatalogLookup) Toppings(ctx context.Context, category catalog.ToppingCategory) ([]catalog.Topping, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Topping), args.Error(1)
}

func (m *MockCatalogLookup) Topping(ctx context.Context, id string) (*catalog.Topping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Topping), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserDirectory) FindByHash(ctx context.Context, hash string) (*ports.User, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.User), args.Error(1)
}

func (m *MockUserDirectory) Create(ctx context.Context, user ports.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// stubRand returns fixed values, making probabilistic decisions deterministic.
type stubRand struct {
	float float64
	intN  int
}

func (r stubRand) Float64() float64 { return r.float }
func (r stubRand) IntN(_ int) int   { return r.intN }
