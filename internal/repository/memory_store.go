package repository

import (
	"sync"

	"go-catalog-ws/internal/model"
)

// MemoryStore is an in-process RecordStore. It copies on the way in and out
// so callers never share the backing slice.
type MemoryStore struct {
	mu       sync.Mutex
	products []model.Product
	writes   int
	failWith error
}

func NewMemoryStore(products ...model.Product) *MemoryStore {
	return &MemoryStore{products: cloneProducts(products)}
}

func (s *MemoryStore) LoadAll() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProducts(s.products)
}

func (s *MemoryStore) ReplaceAll(products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return &PersistenceError{Op: "write", Err: s.failWith}
	}
	s.products = cloneProducts(products)
	s.writes++
	return nil
}

// Writes counts successful ReplaceAll calls.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// FailWrites makes every following ReplaceAll fail with err; nil restores writes.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func cloneProducts(products []model.Product) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}
