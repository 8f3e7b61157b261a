package pricing

import (
	"testing"

	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	assert.Zero(t, Subtotal(nil))

	items := []models.CartItem{
		{ProductID: "p1", VariantWeight: "500g", Price: 262, Quantity: 2},
		{ProductID: "p2", VariantWeight: "1kg", Price: 599, Quantity: 1},
	}
	assert.Equal(t, int64(1123), Subtotal(items))
}

func TestDiscountNoCoupon(t *testing.T) {
	assert.Zero(t, Discount(1000, nil))
}

func TestDiscountPercentage(t *testing.T) {
	coupon := &models.Coupon{Code: "WELCOME20", DiscountType: models.DiscountPercentage, Value: 20}

	assert.Equal(t, int64(200), Discount(1000, coupon))
	// Integer division floors.
	assert.Equal(t, int64(89), Discount(449, coupon))
	assert.Zero(t, Discount(0, coupon))
}

func TestDiscountFixedThreshold(t *testing.T) {
	coupon := &models.Coupon{Code: "SAVE50", DiscountType: models.DiscountFixed, Value: 50, MinOrderValue: 500}

	assert.Equal(t, int64(50), Discount(500, coupon))
	assert.Equal(t, int64(50), Discount(1200, coupon))
	// Below the minimum the fixed discount does not apply.
	assert.Zero(t, Discount(449, coupon))
}

func TestDiscountFixedWithoutThreshold(t *testing.T) {
	coupon := &models.Coupon{Code: "FLAT50", DiscountType: models.DiscountFixed, Value: 50}
	assert.Equal(t, int64(50), Discount(30, coupon))
}

func TestFinalTotalNeverNegative(t *testing.T) {
	assert.Equal(t, int64(800), FinalTotal(1000, 200))
	assert.Zero(t, FinalTotal(30, 50))
	assert.Zero(t, FinalTotal(0, 0))
}
