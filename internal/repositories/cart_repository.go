package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/storage"
)

type CartRepository interface {
	Load(ctx context.Context) ([]models.CartLine, error)
	Save(ctx context.Context, lines []models.CartLine) error
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepo(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// Load restores the cart from storage. A missing or malformed document is an
// empty cart, never an error: corrupt state degrades, it does not crash.
func (r *cartRepository) Load(ctx context.Context) ([]models.CartLine, error) {

	var lines []models.CartLine

	found, err := r.store.Get(ctx, storage.KeyCart, &lines)
	if err != nil {
		slog.Warn("Discarding unreadable cart data", slog.String("error", err.Error()))

		return []models.CartLine{}, nil
	}

	if !found || lines == nil {
		return []models.CartLine{}, nil
	}

	return lines, nil
}

func (r *cartRepository) Save(ctx context.Context, lines []models.CartLine) error {

	if err := r.store.Set(ctx, storage.KeyCart, lines); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	return nil
}
