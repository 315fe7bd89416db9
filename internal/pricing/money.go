package pricing

import "fmt"

// Amount is a monetary value in poisha (1/100 taka). All arithmetic in the
// stores happens on integers; rounding occurs once, when a discounted unit
// price is snapshotted into the cart.
type Amount int64

const poishaPerTaka = 100

// DeliveryCharge is the flat fee added to every order. Policy value, not computed.
const DeliveryCharge Amount = 120 * poishaPerTaka

func FromTaka(taka int64) Amount {
	return Amount(taka * poishaPerTaka)
}

// DiscountedPrice applies a percentage discount to a base price, rounding
// half-up to the nearest poisha.
func DiscountedPrice(base Amount, discountPercent int) Amount {
	if discountPercent <= 0 {
		return base
	}
	if discountPercent >= 100 {
		return 0
	}
	return Amount((int64(base)*int64(100-discountPercent) + 50) / 100)
}

// Mul returns the amount for quantity units.
func (a Amount) Mul(quantity int) Amount {
	return a * Amount(quantity)
}

// String renders the amount the way the storefront displays prices: whole
// taka, with poisha only when the value is not round.
func (a Amount) String() string {
	taka := int64(a) / poishaPerTaka
	poisha := int64(a) % poishaPerTaka
	if poisha < 0 {
		poisha = -poisha
	}
	if poisha == 0 {
		return fmt.Sprintf("৳ %d", taka)
	}
	return fmt.Sprintf("৳ %d.%02d", taka, poisha)
}
