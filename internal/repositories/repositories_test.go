package repository_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/pricing"
	repository "github.com/nurshop/storefront/internal/repositories"
	"github.com/nurshop/storefront/internal/storage"
	"github.com/nurshop/storefront/internal/storage/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (storage.Store, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := file.NewFileStore(dir)
	require.NoError(t, err)

	return store, dir
}

func TestCartRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("round trip", func(t *testing.T) {
		store, _ := newStore(t)
		repo := repository.NewCartRepo(store)

		lines := []models.CartLine{{
			ID:        1,
			ProductID: 1,
			Name:      "মেনস কটন শার্ট",
			UnitPrice: pricing.FromTaka(1080),
			Size:      "M",
			Quantity:  2,
		}}

		require.NoError(t, repo.Save(ctx, lines))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, lines, loaded)
	})

	t.Run("missing document loads as empty cart", func(t *testing.T) {
		store, _ := newStore(t)
		repo := repository.NewCartRepo(store)

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
		assert.NotNil(t, loaded)
	})

	t.Run("malformed document loads as empty cart", func(t *testing.T) {
		store, dir := newStore(t)
		repo := repository.NewCartRepo(store)

		path := filepath.Join(dir, storage.KeyCart+".json")
		require.NoError(t, os.WriteFile(path, []byte(`{"oops":`), 0o644))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("round trip", func(t *testing.T) {
		store, _ := newStore(t)
		repo := repository.NewOrderRepo(store)

		orders := []models.Order{{
			ID:             "NUR-20250101T000000-001",
			Customer:       models.CustomerInfo{Name: "Rahim Uddin", Phone: "01712345678"},
			Subtotal:       pricing.FromTaka(1080),
			DeliveryCharge: pricing.FromTaka(120),
			Total:          pricing.FromTaka(1200),
			Status:         models.OrderStatusPending,
			CreatedAt:      time.Now().UTC().Truncate(time.Second),
		}}

		require.NoError(t, repo.Save(ctx, orders))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, orders[0].ID, loaded[0].ID)
		assert.Equal(t, orders[0].Total, loaded[0].Total)
	})

	t.Run("missing document loads as empty history", func(t *testing.T) {
		store, _ := newStore(t)
		repo := repository.NewOrderRepo(store)

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestSettingsRepositoryDefaults(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	repo := repository.NewSettingsRepo(store)

	assert.Equal(t, models.LanguageBangla, repo.Language(ctx))

	notifications := repo.Notifications(ctx)
	assert.True(t, notifications.Email)
	assert.True(t, notifications.SMS)
	assert.False(t, notifications.Promotional)

	privacy := repo.Privacy(ctx)
	assert.True(t, privacy.DataCollection)
	assert.False(t, privacy.ThirdPartySharing)

	_, found := repo.Account(ctx)
	assert.False(t, found)
}

func TestSettingsRepositoryPersistence(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	repo := repository.NewSettingsRepo(store)

	require.NoError(t, repo.SetLanguage(ctx, models.LanguageEnglish))
	assert.Equal(t, models.LanguageEnglish, repo.Language(ctx))

	require.NoError(t, repo.SetNotifications(ctx, models.NotificationSettings{Promotional: true}))
	assert.True(t, repo.Notifications(ctx).Promotional)
	assert.False(t, repo.Notifications(ctx).Email)

	require.NoError(t, repo.SetAccount(ctx, models.AccountInfo{Name: "Rahim", Phone: "01712345678"}))
	account, found := repo.Account(ctx)
	require.True(t, found)
	assert.Equal(t, "Rahim", account.Name)
}

func TestDeleteUserDataRemovesEverything(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	repo := repository.NewSettingsRepo(store)
	cartRepo := repository.NewCartRepo(store)

	require.NoError(t, cartRepo.Save(ctx, []models.CartLine{{ID: 1, Quantity: 1}}))
	require.NoError(t, repo.SetLanguage(ctx, models.LanguageEnglish))
	require.NoError(t, repo.SetNotifications(ctx, models.NotificationSettings{Promotional: true}))
	require.NoError(t, repo.SetAccount(ctx, models.AccountInfo{Name: "Rahim"}))

	require.NoError(t, repo.DeleteUserData(ctx))

	lines, err := cartRepo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, found := repo.Account(ctx)
	assert.False(t, found)
	assert.False(t, repo.Notifications(ctx).Promotional)

	// language is not user data
	assert.Equal(t, models.LanguageEnglish, repo.Language(ctx))
}

func TestDeleteSessionDataKeepsPreferences(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	repo := repository.NewSettingsRepo(store)
	cartRepo := repository.NewCartRepo(store)

	require.NoError(t, cartRepo.Save(ctx, []models.CartLine{{ID: 1, Quantity: 1}}))
	require.NoError(t, repo.SetNotifications(ctx, models.NotificationSettings{Promotional: true}))
	require.NoError(t, repo.SetAccount(ctx, models.AccountInfo{Name: "Rahim"}))

	require.NoError(t, repo.DeleteSessionData(ctx))

	lines, err := cartRepo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, found := repo.Account(ctx)
	assert.False(t, found)

	// notification preferences survive a logout
	assert.True(t, repo.Notifications(ctx).Promotional)
}

func TestContactRepositoryAppend(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)
	repo := repository.NewContactRepo(store)

	first := models.ContactMessage{ID: "a", Name: "Rahim", Message: "hello"}
	second := models.ContactMessage{ID: "b", Name: "Karim", Message: "hi"}

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "a", messages[0].ID)
	assert.Equal(t, "b", messages[1].ID)
}
