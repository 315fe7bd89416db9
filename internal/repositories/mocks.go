package repository

import (
	"context"

	"github.com/nurshop/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// Testify mocks for the store-facing repositories, shared by service tests.

type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

func (m *MockCartRepository) Load(ctx context.Context) ([]models.CartLine, error) {
	args := m.Called(ctx)

	if lines, ok := args.Get(0).([]models.CartLine); ok {
		return lines, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, lines []models.CartLine) error {
	args := m.Called(ctx, lines)

	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

func (m *MockOrderRepository) Load(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, orders []models.Order) error {
	args := m.Called(ctx, orders)

	return args.Error(0)
}
