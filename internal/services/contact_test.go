package service_test

import (
	"testing"

	"github.com/nurshop/storefront/internal/models"
	repository "github.com/nurshop/storefront/internal/repositories"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/storage/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	ctx := t.Context()

	store, err := file.NewFileStore(t.TempDir())
	require.NoError(t, err)

	contactService := service.NewContactService(repository.NewContactRepo(store))

	msg, err := contactService.Submit(ctx, models.ContactRequest{
		Name:    "<b>Rahim</b>",
		Email:   "rahim@example.com",
		Phone:   "01712345678",
		Subject: "Delivery query",
		Message: "Where is my order?",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Rahim", msg.Name)
	assert.False(t, msg.CreatedAt.IsZero())

	messages, err := contactService.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}
