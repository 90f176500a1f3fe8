package repository

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"go-catalog-ws/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RecordStore owns the persisted product collection. Reads never fail: a
// missing or corrupt backing store reads as an empty collection and the
// problem is logged. Writes replace the whole collection.
type RecordStore interface {
	LoadAll() []model.Product
	ReplaceAll(products []model.Product) error
}

// PersistenceError reports a failed write (or an unrecoverable read) of the
// backing medium.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// encodeProducts is the on-disk format: an indented JSON array, never null.
func encodeProducts(products []model.Product) ([]byte, error) {
	if products == nil {
		products = []model.Product{}
	}
	return json.MarshalIndent(products, "", "    ")
}

func decodeProducts(data []byte) ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
