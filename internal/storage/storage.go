package storage

import "context"

// Store is the persisted key-value store backing every collection in the
// storefront: one JSON document per key, read and written whole. Writes are
// last-write-wins; two processes sharing one store are not reconciled.
type Store interface {
	// Get unmarshals the value under key into value and reports whether the
	// key existed.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keys mirror the original storefront's local-storage entries.
const (
	KeyCart          = "nur_cart"
	KeyOrders        = "nur_orders"
	KeyLanguage      = "nur_language"
	KeyNotifications = "nur_notifications"
	KeyPrivacy       = "nur_privacy"
	KeyAccount       = "nur_account"
	KeyMessages      = "nur_messages"
)
