package repository

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

const boltBucket = "catalog"

// BoltKV is a KeyValue backed by a single bbolt bucket.
type BoltKV struct {
	db *bolt.DB
}

func OpenBoltKV(path string) (*BoltKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", filepath.Dir(path))
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt store %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &BoltKV{db: db}, nil
}

func (k *BoltKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := k.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid inside the transaction
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (k *BoltKV) Put(key string, value []byte) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), value)
	})
}

func (k *BoltKV) Close() error {
	return k.db.Close()
}
