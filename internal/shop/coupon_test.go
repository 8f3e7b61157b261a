package shop

import (
	"testing"

	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCouponInvalidCode(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p1", "500g", 2)

	result := ts.ApplyCoupon("NOPE123")
	assert.False(t, result.Applied)
	assert.Equal(t, "Invalid coupon code", result.Message)
	assert.Nil(t, ts.AppliedCoupon())
}

func TestApplyCouponCaseInsensitive(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p1", "500g", 2)

	result := ts.ApplyCoupon("  welcome20 ")
	require.True(t, result.Applied)
	require.NotNil(t, ts.AppliedCoupon())
	assert.Equal(t, "WELCOME20", ts.AppliedCoupon().Code)
}

func TestApplyCouponThresholdNotMet(t *testing.T) {
	ts := newTestShop(t)
	// One 1kg Natural Peanut Butter: subtotal 449, below SAVE50's minimum.
	ts.addVariant(t, "p1", "1kg", 1)
	require.Equal(t, int64(449), ts.CartTotal())

	result := ts.ApplyCoupon("SAVE50")
	assert.False(t, result.Applied)
	assert.Equal(t, "Minimum order value ₹500 required", result.Message)
	assert.Nil(t, ts.AppliedCoupon())
	assert.Zero(t, ts.DiscountAmount())
}

func TestApplyPercentageCoupon(t *testing.T) {
	ts := newTestShop(t)

	product := &models.Product{ID: "p-test", Name: "Gift Hamper"}
	variant := &models.Variant{Weight: "1kg", Price: 500, SKU: "GH-1000"}
	require.NoError(t, ts.AddItem(product, variant, 2))
	require.Equal(t, int64(1000), ts.CartTotal())

	result := ts.ApplyCoupon("WELCOME20")
	require.True(t, result.Applied)
	assert.Equal(t, int64(200), ts.DiscountAmount())
	assert.Equal(t, int64(800), ts.FinalTotal())
}

func TestApplyFixedCouponAboveThreshold(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p2", "1kg", 1) // 599

	result := ts.ApplyCoupon("SAVE50")
	require.True(t, result.Applied)
	assert.Equal(t, int64(50), ts.DiscountAmount())
	assert.Equal(t, int64(549), ts.FinalTotal())
}

func TestApplyCouponReplacesPrior(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p2", "1kg", 1)

	require.True(t, ts.ApplyCoupon("SAVE50").Applied)
	require.True(t, ts.ApplyCoupon("WELCOME20").Applied)

	require.NotNil(t, ts.AppliedCoupon())
	assert.Equal(t, "WELCOME20", ts.AppliedCoupon().Code)
}

func TestRemoveCoupon(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p2", "1kg", 1)
	require.True(t, ts.ApplyCoupon("WELCOME20").Applied)

	ts.RemoveCoupon()
	assert.Nil(t, ts.AppliedCoupon())
	assert.Zero(t, ts.DiscountAmount())
	assert.Equal(t, ts.CartTotal(), ts.FinalTotal())
}

func TestFixedDiscountSuspendedWhenCartDropsBelowMinimum(t *testing.T) {
	ts := newTestShop(t)
	ts.addVariant(t, "p2", "1kg", 1) // 599
	require.True(t, ts.ApplyCoupon("SAVE50").Applied)

	// Eligibility is re-derived on every read: once the cart shrinks below
	// the minimum, the fixed discount no longer counts.
	ts.RemoveItem("p2", "1kg")
	ts.addVariant(t, "p1", "1kg", 1) // 449

	require.NotNil(t, ts.AppliedCoupon())
	assert.Zero(t, ts.DiscountAmount())
	assert.Equal(t, int64(449), ts.FinalTotal())
}
