// Package pricing computes cart totals. Everything here is pure: no state,
// no errors, recomputed from the current snapshot on every call.
package pricing

import "github.com/PYTHTRADER/e-commerce/internal/models"

// Subtotal is the sum of snapshot price times quantity over all lines.
func Subtotal(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Discount returns the amount taken off the subtotal by the coupon. A nil
// coupon discounts nothing. A fixed coupon whose minimum-order threshold is
// no longer met (items removed after apply) also discounts nothing.
func Discount(subtotal int64, coupon *models.Coupon) int64 {
	if coupon == nil {
		return 0
	}
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		return subtotal * coupon.Value / 100
	case models.DiscountFixed:
		if coupon.MinOrderValue > 0 && subtotal < coupon.MinOrderValue {
			return 0
		}
		return coupon.Value
	}
	return 0
}

// FinalTotal clamps subtotal minus discount at zero.
func FinalTotal(subtotal, discount int64) int64 {
	if total := subtotal - discount; total > 0 {
		return total
	}
	return 0
}
