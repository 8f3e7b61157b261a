package shop

import (
	"fmt"

	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"go.uber.org/zap"
)

// AddItem puts qty units of a product variant into the cart. An existing
// line for the same (product, weight) pair absorbs the quantity; its price
// snapshot stays at whatever the variant cost on first add. A new line
// captures the variant's current price as its permanent snapshot.
func (s *Shop) AddItem(product *models.Product, variant *models.Variant, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", qty)
	}

	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].ProductID == product.ID && s.cart[i].VariantWeight == variant.Weight {
			s.cart[i].Quantity += qty
			opened := s.onCartOpened
			s.mu.Unlock()
			util.CartItemsAddedTotal.Inc()
			if opened != nil {
				opened()
			}
			return nil
		}
	}

	s.cart = append(s.cart, models.CartItem{
		ProductID:     product.ID,
		VariantWeight: variant.Weight,
		Quantity:      qty,
		Name:          product.Name,
		Price:         variant.Price,
		Image:         product.Image,
	})
	opened := s.onCartOpened
	s.mu.Unlock()

	util.CartItemsAddedTotal.Inc()
	s.logger.Debug("Cart line added",
		zap.String("product_id", product.ID),
		zap.String("weight", variant.Weight),
		zap.Int("qty", qty))
	if opened != nil {
		opened()
	}
	return nil
}

// RemoveItem deletes the matching line outright, whatever its quantity.
// No-op when absent.
func (s *Shop) RemoveItem(productID, variantWeight string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].VariantWeight == variantWeight {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adjusts a line's quantity by delta. A result of zero or
// below leaves the line untouched: decrementing never removes an item, only
// RemoveItem does. That asymmetry is long-standing UX behavior, pinned by a
// regression test; do not "fix" it here.
func (s *Shop) UpdateQuantity(productID, variantWeight string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].VariantWeight == variantWeight {
			if newQty := s.cart[i].Quantity + delta; newQty > 0 {
				s.cart[i].Quantity = newQty
			}
			return
		}
	}
}

// Clear empties the cart and drops the applied coupon as one unit. A coupon
// left applied to an empty cart would be invalid state.
func (s *Shop) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *Shop) clearCartLocked() {
	s.cart = nil
	s.appliedCoupon = nil
}
