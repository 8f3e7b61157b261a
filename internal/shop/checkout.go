package shop

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"go.uber.org/zap"
)

// PipelineState tracks where the checkout pipeline currently is. Failed is
// reachable from any state after Idle.
type PipelineState int

const (
	StateIdle PipelineState = iota
	StateValidating
	StateAwaitingPayment
	StatePersisting
	StateNotifying
	StateCompleted
	StateFailed
)

func (st PipelineState) String() string {
	switch st {
	case StateIdle:
		return "Idle"
	case StateValidating:
		return "Validating"
	case StateAwaitingPayment:
		return "AwaitingPayment"
	case StatePersisting:
		return "Persisting"
	case StateNotifying:
		return "Notifying"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// ShippingDetails is the checkout form input.
type ShippingDetails struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// PipelineStatus reports the checkout pipeline's current state.
func (s *Shop) PipelineStatus() PipelineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PlaceOrder runs the checkout pipeline: validate preconditions, simulate
// the backend round-trip, charge payment, persist the order, notify, then
// clear the cart. Persistence is the commit point: any failure before it
// leaves cart and ledger exactly as they were. A notification failure after
// it is logged and the order still succeeds.
func (s *Shop) PlaceOrder(ctx context.Context, shipping ShippingDetails, paymentMethod string) (string, error) {
	ctx, span := util.StartSpan(ctx, "Shop.PlaceOrder")
	defer span.End()

	start := time.Now()
	defer func() {
		util.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	// Validate and snapshot under the lock. The total is resolved at this
	// instant; later cart mutations cannot change what the order charges.
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		util.OrdersFailedTotal.WithLabelValues("in_flight").Inc()
		return "", ErrCheckoutInProgress
	}
	s.state = StateValidating
	if s.user == nil {
		s.state = StateFailed
		s.mu.Unlock()
		util.OrdersFailedTotal.WithLabelValues("unauthenticated").Inc()
		return "", ErrUnauthenticated
	}
	if len(s.cart) == 0 {
		s.state = StateFailed
		s.mu.Unlock()
		util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return "", ErrEmptyCart
	}

	s.inFlight = true
	items := models.CloneItems(s.cart)
	total := s.finalTotalLocked()
	sessionEmail := s.user.Email
	s.mu.Unlock()

	succeeded := false
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		if succeeded {
			s.state = StateCompleted
		} else {
			s.state = StateFailed
		}
		s.mu.Unlock()
	}()

	// Checkout-form email wins over the session's registered email.
	email := shipping.Email
	if email == "" {
		email = sessionEmail
	}

	if err := waitFor(ctx, s.connectionDelay); err != nil {
		util.OrdersFailedTotal.WithLabelValues("connection").Inc()
		return "", fmt.Errorf("connection interrupted: %w", err)
	}

	s.setState(StateAwaitingPayment)
	if err := s.gateway.Charge(ctx, total, paymentMethod); err != nil {
		util.OrdersFailedTotal.WithLabelValues("payment").Inc()
		return "", fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}

	order := models.Order{
		ID:           newOrderID(),
		CustomerName: shipping.FirstName + " " + shipping.LastName,
		Total:        total,
		Status:       models.OrderStatusProcessing,
		Date:         time.Now().Format("2006-01-02"),
		Items:        items,
	}

	s.setState(StatePersisting)
	if err := s.ledger.Prepend(ctx, order); err != nil {
		util.OrdersFailedTotal.WithLabelValues("persistence").Inc()
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Commit point passed. Notification failures are logged, never fatal.
	s.setState(StateNotifying)
	if err := s.notifier.NotifyOrderConfirmation(ctx, email, &order); err != nil {
		s.logger.Error("Order confirmation notification failed",
			zap.String("order_id", order.ID),
			zap.String("email", email),
			zap.Error(err))
	}

	s.mu.Lock()
	s.clearCartLocked()
	s.mu.Unlock()

	succeeded = true
	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
		zap.String("payment_method", paymentMethod))
	return order.ID, nil
}

func (s *Shop) setState(state PipelineState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%06d", 100000+rand.Intn(900000))
}

// waitFor sleeps the simulated backend latency, honoring cancellation
// between pipeline steps.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
