package repository

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"go-catalog-ws/internal/model"
)

// FileStore keeps the collection as one JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) LoadAll() []model.Product {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.S().Warnw("product file not found, starting with empty collection", "path", s.path)
		} else {
			zap.S().Errorw("error reading products", "path", s.path, "error", err)
		}
		return []model.Product{}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Product{}
	}

	products, err := decodeProducts(data)
	if err != nil {
		zap.S().Errorw("error parsing products", "path", s.path, "error", err)
		return []model.Product{}
	}
	return products
}

// ReplaceAll writes to a temp file next to the target and renames it over,
// so readers see either the old or the new collection.
func (s *FileStore) ReplaceAll(products []model.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "write", Err: errors.Wrapf(err, "create %s", dir)}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &PersistenceError{Op: "write", Err: errors.Wrap(err, "create temp file")}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Op: "write", Err: errors.Wrapf(err, "write %s", tmpName)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "write", Err: errors.Wrapf(err, "close %s", tmpName)}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "write", Err: errors.Wrapf(err, "chmod %s", tmpName)}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "write", Err: errors.Wrapf(err, "replace %s", s.path)}
	}
	return nil
}
