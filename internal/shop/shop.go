// Package shop is the shopping-session state engine: cart contents, the
// applied coupon, the authenticated user, and the checkout pipeline. One
// Shop models one logical session; all state behind a single mutex.
package shop

import (
	"sync"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/backend"
	"github.com/PYTHTRADER/e-commerce/internal/catalog"
	"github.com/PYTHTRADER/e-commerce/internal/ledger"
	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/pricing"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"go.uber.org/zap"
)

// Shop owns the mutable session state and orchestrates checkout against the
// injected collaborators. Construct it in the composition root and pass it
// by reference; there are no package-level singletons here.
type Shop struct {
	mu sync.Mutex

	cart          []models.CartItem
	appliedCoupon *models.Coupon
	user          *models.User

	state    PipelineState
	inFlight bool

	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	gateway  backend.PaymentGateway
	notifier backend.Notifier
	logger   *zap.Logger

	// connectionDelay models the backend round-trip before payment.
	connectionDelay time.Duration

	// onCartOpened signals the UI layer that the cart drawer should open
	// after an add. Not a state invariant.
	onCartOpened func()
}

// New wires a Shop from its collaborators.
func New(cat *catalog.Catalog, led *ledger.Ledger, gateway backend.PaymentGateway, notifier backend.Notifier, connectionDelay time.Duration) *Shop {
	return &Shop{
		state:           StateIdle,
		catalog:         cat,
		ledger:          led,
		gateway:         gateway,
		notifier:        notifier,
		logger:          util.GetLogger().Named("shop"),
		connectionDelay: connectionDelay,
	}
}

// OnCartOpened registers the cart-opened signal hook.
func (s *Shop) OnCartOpened(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCartOpened = fn
}

// Cart returns a copy of the cart lines.
func (s *Shop) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.cart)
}

// AppliedCoupon returns the currently applied coupon, or nil.
func (s *Shop) AppliedCoupon() *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appliedCoupon == nil {
		return nil
	}
	coupon := *s.appliedCoupon
	return &coupon
}

// CartTotal is the pre-discount subtotal.
func (s *Shop) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Subtotal(s.cart)
}

// DiscountAmount is the amount the applied coupon takes off right now.
func (s *Shop) DiscountAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Discount(pricing.Subtotal(s.cart), s.appliedCoupon)
}

// FinalTotal is max(0, subtotal - discount).
func (s *Shop) FinalTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalTotalLocked()
}

func (s *Shop) finalTotalLocked() int64 {
	subtotal := pricing.Subtotal(s.cart)
	return pricing.FinalTotal(subtotal, pricing.Discount(subtotal, s.appliedCoupon))
}

// User returns a copy of the session user, or nil when logged out.
func (s *Shop) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userCopyLocked()
}

func (s *Shop) userCopyLocked() *models.User {
	if s.user == nil {
		return nil
	}
	user := *s.user
	user.Addresses = make([]models.Address, len(s.user.Addresses))
	copy(user.Addresses, s.user.Addresses)
	return &user
}

// Orders returns the ledger contents, newest first.
func (s *Shop) Orders() []models.Order {
	return s.ledger.Orders()
}
