package shop

import (
	"fmt"

	"github.com/PYTHTRADER/e-commerce/internal/pricing"
	"github.com/PYTHTRADER/e-commerce/internal/util"
)

// CouponResult reports a coupon application to the caller. Failures here
// are expected control flow, not errors: the message is shown to the user
// as-is.
type CouponResult struct {
	Applied bool   `json:"applied"`
	Message string `json:"message"`
}

// ApplyCoupon looks the code up case-insensitively and, when eligible, sets
// it as the one applied coupon, silently replacing any prior one.
func (s *Shop) ApplyCoupon(code string) CouponResult {
	coupon := s.catalog.CouponByCode(code)
	if coupon == nil {
		util.CouponsRejectedTotal.WithLabelValues("invalid_code").Inc()
		return CouponResult{Applied: false, Message: "Invalid coupon code"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if coupon.MinOrderValue > 0 && pricing.Subtotal(s.cart) < coupon.MinOrderValue {
		util.CouponsRejectedTotal.WithLabelValues("threshold_not_met").Inc()
		return CouponResult{
			Applied: false,
			Message: fmt.Sprintf("Minimum order value ₹%d required", coupon.MinOrderValue),
		}
	}

	applied := *coupon
	s.appliedCoupon = &applied
	util.CouponsAppliedTotal.Inc()
	return CouponResult{Applied: true, Message: "Coupon applied successfully!"}
}

// RemoveCoupon drops the applied coupon unconditionally.
func (s *Shop) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appliedCoupon = nil
}
