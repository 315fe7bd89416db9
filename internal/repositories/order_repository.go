package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/storage"
)

type OrderRepository interface {
	Load(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, orders []models.Order) error
}

type orderRepository struct {
	store storage.Store
}

func NewOrderRepo(store storage.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Load(ctx context.Context) ([]models.Order, error) {

	var orders []models.Order

	found, err := r.store.Get(ctx, storage.KeyOrders, &orders)
	if err != nil {
		slog.Warn("Discarding unreadable order history", slog.String("error", err.Error()))

		return []models.Order{}, nil
	}

	if !found || orders == nil {
		return []models.Order{}, nil
	}

	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, orders []models.Order) error {

	if err := r.store.Set(ctx, storage.KeyOrders, orders); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}

	return nil
}
