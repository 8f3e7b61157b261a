package ledger

import (
	"context"
	"sync"

	"github.com/PYTHTRADER/e-commerce/internal/models"
)

// MemoryRepository keeps the ledger in memory. It backs tests and can stand
// in when no Redis is reachable.
type MemoryRepository struct {
	mu     sync.Mutex
	orders []models.Order

	// FailSaves makes every SaveOrders return this error, for testing the
	// persistence-failure path.
	FailSaves error
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) LoadOrders(context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *MemoryRepository) SaveOrders(_ context.Context, orders []models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.orders = make([]models.Order, len(orders))
	copy(m.orders, orders)
	return nil
}
