package models

import "github.com/nurshop/storefront/internal/pricing"

// Product is immutable reference data owned by the catalog, not by the cart
// or order stores. Titles come in a Bangla/English pair.
type Product struct {
	ID              int64          `json:"id"`
	TitleBN         string         `json:"title_bn"`
	TitleEN         string         `json:"title_en"`
	Price           pricing.Amount `json:"price"`
	DiscountPercent int            `json:"discount_percent,omitempty"`
	Images          []string       `json:"images"`
	Sizes           []string       `json:"sizes"`
	Category        string         `json:"category"`
}

// DiscountedPrice is the effective unit price shown in the shop and
// snapshotted into the cart.
func (p *Product) DiscountedPrice() pricing.Amount {
	return pricing.DiscountedPrice(p.Price, p.DiscountPercent)
}

const (
	SortDefault   = ""
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// ListFilter mirrors the shop page's filter panel.
type ListFilter struct {
	Categories []string
	MaxPrice   pricing.Amount // zero means no cap
	Sizes      []string
	Query      string
	SortBy     string
}
