package entity

import "github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"

// Discount is the discount applied to the working sale: either none,
// a percentage of the subtotal, or a fixed amount.
type Discount struct {
	Type  enum.DiscountType `json:"type"`
	Value float64           `json:"value"`
}

// NoDiscount returns the empty discount state.
func NoDiscount() Discount {
	return Discount{Type: enum.DiscountTypeNone, Value: 0}
}

// AmountFor computes the discount amount for the given subtotal.
func (d Discount) AmountFor(subtotal float64) float64 {
	if d.Type == enum.DiscountTypeNone || d.Value == 0 {
		return 0
	}
	if d.Type == enum.DiscountTypePercentage {
		return subtotal * d.Value / 100
	}
	return d.Value
}
