// Package ledger holds the durable, newest-first sequence of placed orders.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/util"
)

// Repository persists the full order list under a fixed namespace.
type Repository interface {
	LoadOrders(ctx context.Context) ([]models.Order, error)
	SaveOrders(ctx context.Context, orders []models.Order) error
}

// Ledger is the in-process view of the order history, written through to the
// repository synchronously on every mutation.
type Ledger struct {
	mu     sync.Mutex
	repo   Repository
	orders []models.Order
}

// Open loads the persisted orders. If the store is empty, the seed orders
// are installed so the admin view is never blank on first boot.
func Open(ctx context.Context, repo Repository, seed []models.Order) (*Ledger, error) {
	orders, err := repo.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order ledger: %w", err)
	}
	l := &Ledger{repo: repo, orders: orders}
	if len(orders) == 0 && len(seed) > 0 {
		l.orders = append([]models.Order(nil), seed...)
		if err := repo.SaveOrders(ctx, l.orders); err != nil {
			return nil, fmt.Errorf("failed to seed order ledger: %w", err)
		}
	}
	return l, nil
}

// Prepend inserts a new order at the front (newest first) and persists the
// whole list before returning. On persistence failure the in-memory list is
// left as it was.
func (l *Ledger) Prepend(ctx context.Context, order models.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	defer func() {
		util.LedgerWriteLatency.Observe(time.Since(start).Seconds())
	}()

	next := make([]models.Order, 0, len(l.orders)+1)
	next = append(next, order)
	next = append(next, l.orders...)

	if err := l.repo.SaveOrders(ctx, next); err != nil {
		return fmt.Errorf("failed to persist order %s: %w", order.ID, err)
	}
	l.orders = next
	return nil
}

// Orders returns a copy of the ledger, newest first. Item slices are cloned
// so callers cannot reach into placed orders.
func (l *Ledger) Orders() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	for i := range out {
		out[i].Items = models.CloneItems(out[i].Items)
	}
	return out
}

// Len reports the number of placed orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

// Newest returns the most recent order, or nil when the ledger is empty.
func (l *Ledger) Newest() *models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.orders) == 0 {
		return nil
	}
	order := l.orders[0]
	order.Items = models.CloneItems(order.Items)
	return &order
}
