package models

import (
	"time"

	"github.com/nurshop/storefront/internal/pricing"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
)

// CustomerInfo is the checkout form, decoupled from any form-field lookup:
// an explicit struct validated by tag, returning field-level errors.
type CustomerInfo struct {
	Name          string `json:"name"          validate:"required"`
	Phone         string `json:"phone"         validate:"required,bd_mobile"`
	Email         string `json:"email,omitempty"  validate:"omitempty,email"`
	Address       string `json:"address"       validate:"required"`
	City          string `json:"city"          validate:"required"`
	Area          string `json:"area"          validate:"required"`
	Zip           string `json:"zip,omitempty"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cod bkash nagad card"`
}

// Order is an immutable snapshot of the cart plus customer info. Invariants:
// Total = Subtotal + DeliveryCharge; Subtotal = sum of line totals.
type Order struct {
	ID             string         `json:"id"`
	Items          []CartLine     `json:"items"`
	Customer       CustomerInfo   `json:"customer"`
	Subtotal       pricing.Amount `json:"subtotal"`
	DeliveryCharge pricing.Amount `json:"deliveryCharge"`
	Total          pricing.Amount `json:"total"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed delivered"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}
