package product

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	// ListActive returns active products ordered by name.
	ListActive() ([]Product, error)
	GetByID(id string) (Product, error)
	// ListByIDs returns the products whose id is present in the provided
	// slice, in the same order as the ids argument. Unknown ids are skipped.
	// An empty slice returns an empty result without touching the store.
	ListByIDs(ids []string) ([]Product, error)
	// Reset replaces all products with the provided list (used for dev / seeding)
	Reset(products []Product) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and for running the API without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.storage = append(r.storage, p)
	}
	return r
}

func (r *InMemoryRepository) ListActive() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.storage))
	for _, p := range r.storage {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) ListByIDs(ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[string]Product, len(r.storage))
	for _, p := range r.storage {
		byID[p.ID] = p
	}
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.storage = append(r.storage, p)
	}
	return nil
}
