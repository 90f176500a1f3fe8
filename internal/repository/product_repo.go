package repository

import (
	"errors"
	"sync"

	"go-catalog-ws/internal/model"
)

// ErrProductNotFound is returned when no record matches the requested id.
var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	FindAll() []model.Product
	FindByID(id string) (*model.Product, error)
	Insert(product model.Product) error
	Update(product model.Product) error
	Delete(id string) error
}

// productRepo derives single-record operations from whole-collection
// load/replace. Every write rewrites the full collection.
type productRepo struct {
	store RecordStore
	// serializes load-mutate-store within this process
	mu sync.Mutex
}

func NewProductRepo(store RecordStore) ProductRepository {
	return &productRepo{store: store}
}

func (r *productRepo) FindAll() []model.Product {
	return r.store.LoadAll()
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	for _, p := range r.store.LoadAll() {
		if model.SameID(p.ID, id) {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// Insert prepends product to the collection.
func (r *productRepo) Insert(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.LoadAll()
	next := make([]model.Product, 0, len(products)+1)
	next = append(next, product)
	next = append(next, products...)
	return r.store.ReplaceAll(next)
}

// Update replaces the record with the same id in place, keeping its position.
func (r *productRepo) Update(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.LoadAll()
	for i := range products {
		if model.SameID(products[i].ID, product.ID) {
			product.ID = model.NormalizeID(product.ID)
			products[i] = product
			return r.store.ReplaceAll(products)
		}
	}
	return ErrProductNotFound
}

// Delete removes every record with the given id. Nothing is written when no
// record matched.
func (r *productRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.LoadAll()
	kept := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !model.SameID(p.ID, id) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrProductNotFound
	}
	return r.store.ReplaceAll(kept)
}
