package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/storage"
)

type SettingsRepository interface {
	Language(ctx context.Context) models.Language
	SetLanguage(ctx context.Context, lang models.Language) error
	Notifications(ctx context.Context) models.NotificationSettings
	SetNotifications(ctx context.Context, s models.NotificationSettings) error
	Privacy(ctx context.Context) models.PrivacySettings
	SetPrivacy(ctx context.Context, s models.PrivacySettings) error
	Account(ctx context.Context) (models.AccountInfo, bool)
	SetAccount(ctx context.Context, a models.AccountInfo) error
	DeleteUserData(ctx context.Context) error
	DeleteSessionData(ctx context.Context) error
}

type settingsRepository struct {
	store storage.Store
}

func NewSettingsRepo(store storage.Store) SettingsRepository {
	return &settingsRepository{store: store}
}

// get reads a preference, falling back to its default on absence or corruption.
func get[T any](ctx context.Context, store storage.Store, key string, def T) T {

	var value T

	found, err := store.Get(ctx, key, &value)
	if err != nil {
		slog.Warn("Discarding unreadable setting", slog.String("key", key), slog.String("error", err.Error()))

		return def
	}

	if !found {
		return def
	}

	return value
}

func (r *settingsRepository) Language(ctx context.Context) models.Language {
	return get(ctx, r.store, storage.KeyLanguage, models.LanguageBangla)
}

func (r *settingsRepository) SetLanguage(ctx context.Context, lang models.Language) error {
	return r.store.Set(ctx, storage.KeyLanguage, lang)
}

func (r *settingsRepository) Notifications(ctx context.Context) models.NotificationSettings {
	return get(ctx, r.store, storage.KeyNotifications, models.NotificationSettings{
		Email:       true,
		SMS:         true,
		Promotional: false,
	})
}

func (r *settingsRepository) SetNotifications(ctx context.Context, s models.NotificationSettings) error {
	return r.store.Set(ctx, storage.KeyNotifications, s)
}

func (r *settingsRepository) Privacy(ctx context.Context) models.PrivacySettings {
	return get(ctx, r.store, storage.KeyPrivacy, models.PrivacySettings{
		DataCollection:    true,
		ThirdPartySharing: false,
	})
}

func (r *settingsRepository) SetPrivacy(ctx context.Context, s models.PrivacySettings) error {
	return r.store.Set(ctx, storage.KeyPrivacy, s)
}

func (r *settingsRepository) Account(ctx context.Context) (models.AccountInfo, bool) {

	var account models.AccountInfo

	found, err := r.store.Get(ctx, storage.KeyAccount, &account)
	if err != nil || !found {
		return models.AccountInfo{}, false
	}

	return account, true
}

func (r *settingsRepository) SetAccount(ctx context.Context, a models.AccountInfo) error {
	return r.store.Set(ctx, storage.KeyAccount, a)
}

// DeleteUserData wipes everything an account deletion removes: cart, orders,
// account info and both preference groups.
func (r *settingsRepository) DeleteUserData(ctx context.Context) error {

	keys := []string{
		storage.KeyCart,
		storage.KeyOrders,
		storage.KeyAccount,
		storage.KeyNotifications,
		storage.KeyPrivacy,
	}

	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}

	return nil
}

// DeleteSessionData is the logout wipe: user data goes, language and both
// preference groups survive.
func (r *settingsRepository) DeleteSessionData(ctx context.Context) error {

	keys := []string{
		storage.KeyCart,
		storage.KeyOrders,
		storage.KeyAccount,
	}

	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}

	return nil
}
