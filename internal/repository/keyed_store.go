package repository

import (
	"bytes"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-catalog-ws/internal/model"
)

// KeyValue is a minimal key to blob store.
type KeyValue interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// KeyedStore keeps the collection as one JSON value under a fixed key. The
// first read of an absent or empty key seeds it.
type KeyedStore struct {
	kv   KeyValue
	key  string
	seed func() []model.Product
	// guards check-and-seed against concurrent writes
	mu sync.Mutex
}

func NewKeyedStore(kv KeyValue, key string, seed func() []model.Product) *KeyedStore {
	if seed == nil {
		seed = func() []model.Product { return []model.Product{} }
	}
	return &KeyedStore{kv: kv, key: key, seed: seed}
}

// DemoSeed seeds a keyed store with the demo products stamped at first use.
func DemoSeed() []model.Product {
	return model.DemoProducts(time.Now())
}

func (s *KeyedStore) LoadAll() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.kv.Get(s.key)
	if err != nil {
		zap.S().Errorw("error reading products", "key", s.key, "error", err)
		return []model.Product{}
	}

	if !found || len(bytes.TrimSpace(data)) == 0 {
		products := s.seed()
		if err := s.put(products); err != nil {
			zap.S().Errorw("failed to seed products", "key", s.key, "error", err)
		} else {
			zap.S().Infow("seeded product store", "key", s.key, "count", len(products))
		}
		return cloneProducts(products)
	}

	products, err := decodeProducts(data)
	if err != nil {
		zap.S().Errorw("failed to parse products", "key", s.key, "error", err)
		return []model.Product{}
	}
	return products
}

func (s *KeyedStore) ReplaceAll(products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(products)
}

func (s *KeyedStore) put(products []model.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}
