package redisstore_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/nurshop/storefront/internal/storage"
	"github.com/nurshop/storefront/internal/storage/redisstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	Field1 string `json:"field1"`
	Field2 int    `json:"field2"`
}

func setup(t *testing.T) (storage.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return redisstore.NewRedisStore(client), mock
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := "nur_cart"
	testValue := testData{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)

		var result testData

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		found, err := store.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		store, mock := setup(t)

		var result testData

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		found, err := store.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)

		var result testData

		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(testKey).SetErr(expectedErr)

		found, err := store.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := "nur_orders"
	testValue := testData{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		store, mock := setup(t)

		mock.ExpectSet(testKey, jsonData, 0).SetVal("OK")

		err := store.Set(ctx, testKey, testValue)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)

		expectedErr := errors.New("redis write error")
		mock.ExpectSet(testKey, jsonData, 0).SetErr(expectedErr)

		err := store.Set(ctx, testKey, testValue)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := "nur_account"

	t.Run("Success", func(t *testing.T) {
		store, mock := setup(t)

		mock.ExpectDel(testKey).SetVal(1)

		err := store.Delete(ctx, testKey)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)

		expectedErr := errors.New("redis delete error")
		mock.ExpectDel(testKey).SetErr(expectedErr)

		err := store.Delete(ctx, testKey)

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
