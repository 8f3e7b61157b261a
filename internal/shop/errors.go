package shop

import "errors"

// Checkout failures. Coupon application failures are not errors; they come
// back as a CouponResult with a user-facing message.
var (
	// ErrUnauthenticated is returned when placing an order without a
	// logged-in user. Callers are expected to have redirected to login
	// already; this is the defensive re-check.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrEmptyCart is returned when placing an order with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInProgress is returned when a second PlaceOrder call starts
	// while one is already in flight for the session.
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// ErrPaymentDeclined wraps a gateway decline. The simulated gateway
	// never declines; real integrations report it here and checkout aborts
	// before persistence.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrPersistence wraps a ledger write failure.
	ErrPersistence = errors.New("failed to persist order")
)
