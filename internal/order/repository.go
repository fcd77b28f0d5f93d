package order

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sakher/perfumes-backend/internal/cart"
)

// Repository defines persistence for orders. There is no update or delete
// path: orders are immutable once stored.
type Repository interface {
	Create(ord Order) (Order, error)
}

// InMemoryRepository is used for tests and for running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = uuid.NewString()
	ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	// copy the cart so later changes to the caller's slice cannot reach the
	// stored snapshot
	items := make([]cart.Item, len(ord.Cart))
	copy(items, ord.Cart)
	ord.Cart = items

	r.storage = append(r.storage, ord)
	return ord, nil
}

// Len reports how many orders have been stored.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage)
}
