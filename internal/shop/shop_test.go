package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/PYTHTRADER/e-commerce/internal/catalog"
	"github.com/PYTHTRADER/e-commerce/internal/ledger"
	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/stretchr/testify/require"
)

// fakeGateway records charges and optionally declines them.
type fakeGateway struct {
	charges []int64
	methods []string
	decline error
	block   chan struct{}
}

func (g *fakeGateway) Charge(ctx context.Context, amount int64, method string) error {
	if g.block != nil {
		<-g.block
	}
	if g.decline != nil {
		return g.decline
	}
	g.charges = append(g.charges, amount)
	g.methods = append(g.methods, method)
	return nil
}

// fakeNotifier records confirmations and optionally fails.
type fakeNotifier struct {
	emails []string
	orders []models.Order
	fail   error
}

func (n *fakeNotifier) NotifyOrderConfirmation(_ context.Context, email string, order *models.Order) error {
	if n.fail != nil {
		return n.fail
	}
	n.emails = append(n.emails, email)
	n.orders = append(n.orders, *order)
	return nil
}

type testShop struct {
	*Shop
	catalog  *catalog.Catalog
	repo     *ledger.MemoryRepository
	ledger   *ledger.Ledger
	gateway  *fakeGateway
	notifier *fakeNotifier
}

func newTestShop(t *testing.T) *testShop {
	t.Helper()

	cat, err := catalog.Load(context.Background(), catalog.Static())
	require.NoError(t, err)

	repo := ledger.NewMemoryRepository()
	led, err := ledger.Open(context.Background(), repo, nil)
	require.NoError(t, err)

	gateway := &fakeGateway{}
	notifier := &fakeNotifier{}

	return &testShop{
		Shop:     New(cat, led, gateway, notifier, 0),
		catalog:  cat,
		repo:     repo,
		ledger:   led,
		gateway:  gateway,
		notifier: notifier,
	}
}

// addVariant puts qty of the named catalog variant into the cart.
func (ts *testShop) addVariant(t *testing.T, productID, weight string, qty int) {
	t.Helper()
	product, variant, err := ts.catalog.VariantOf(productID, weight)
	require.NoError(t, err)
	require.NoError(t, ts.AddItem(product, variant, qty))
}

var errDeclined = errors.New("card declined by issuer")
