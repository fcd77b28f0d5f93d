package cart

import (
	"errors"
	"sync"
)

var (
	ErrSessionNotFound = errors.New("cart session not found")
)

// Store keeps one cart per browsing session. Carts live only as long as the
// process; there is no persistence beyond the session.
type Store interface {
	// Get returns the cart for the session. A new session yields an empty
	// closed cart.
	Get(sessionID string) (Cart, error)
	// Save replaces the stored cart for the session.
	Save(sessionID string, c Cart) error
	// Delete drops the session's cart entirely (session end).
	Delete(sessionID string) error
}

// InMemoryStore is a mutex-guarded map of session id to cart. A single
// session is only ever driven by its own browser, but different sessions may
// hit the store concurrently.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string]Cart)}
}

func (s *InMemoryStore) Get(sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID], nil
}

func (s *InMemoryStore) Save(sessionID string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = c
	return nil
}

func (s *InMemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.carts, sessionID)
	return nil
}
