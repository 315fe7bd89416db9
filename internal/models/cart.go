package models

import "github.com/nurshop/storefront/internal/pricing"

// CartLine is one product+size entry in the cart. UnitPrice is the
// post-discount price snapshotted when the line was created; later catalog
// changes do not touch existing lines. JSON field names match the persisted
// local-storage shape of the original storefront.
type CartLine struct {
	ID        int64          `json:"id"`
	ProductID int64          `json:"productId"`
	Name      string         `json:"name"`
	UnitPrice pricing.Amount `json:"price"`
	Size      string         `json:"size"`
	Quantity  int            `json:"quantity"`
	Image     string         `json:"image"`
}

func (l *CartLine) LineTotal() pricing.Amount {
	return l.UnitPrice.Mul(l.Quantity)
}

type AddItemRequest struct {
	ProductID int64  `json:"productId" validate:"required"`
	Size      string `json:"size"      validate:"required"`
	Quantity  int    `json:"quantity"  validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartView is the projection handed to the view layer: plain data, no
// rendering concerns.
type CartView struct {
	Lines          []CartLine     `json:"lines"`
	TotalItemCount int            `json:"totalItemCount"`
	Subtotal       pricing.Amount `json:"subtotal"`
	DeliveryCharge pricing.Amount `json:"deliveryCharge"`
	GrandTotal     pricing.Amount `json:"grandTotal"`
}
