package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/storage"
)

type ContactRepository interface {
	Append(ctx context.Context, msg models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
}

type contactRepository struct {
	store storage.Store
}

func NewContactRepo(store storage.Store) ContactRepository {
	return &contactRepository{store: store}
}

func (r *contactRepository) Append(ctx context.Context, msg models.ContactMessage) error {

	messages, err := r.List(ctx)
	if err != nil {
		return err
	}

	messages = append(messages, msg)

	if err := r.store.Set(ctx, storage.KeyMessages, messages); err != nil {
		return fmt.Errorf("failed to persist contact messages: %w", err)
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {

	var messages []models.ContactMessage

	found, err := r.store.Get(ctx, storage.KeyMessages, &messages)
	if err != nil {
		slog.Warn("Discarding unreadable contact messages", slog.String("error", err.Error()))

		return []models.ContactMessage{}, nil
	}

	if !found || messages == nil {
		return []models.ContactMessage{}, nil
	}

	return messages, nil
}
