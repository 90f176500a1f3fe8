package repository

import (
	"fmt"

	"go-catalog-ws/internal/config"
	"go-catalog-ws/pkg/database"
)

const (
	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// OpenStore builds the RecordStore selected by cfg.StoreDriver. The returned
// close func releases the backing handle and is never nil.
func OpenStore(cfg *config.Config) (RecordStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case DriverFile, "":
		return NewFileStore(cfg.DataFile), noop, nil

	case DriverBolt:
		kv, err := OpenBoltKV(cfg.BoltPath)
		if err != nil {
			return nil, noop, err
		}
		return NewKeyedStore(kv, cfg.StoreKey, DemoSeed), kv.Close, nil

	case DriverPostgres:
		db, err := database.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		kv, err := NewGormKV(db)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return NewKeyedStore(kv, cfg.StoreKey, DemoSeed), closeDB, nil

	case DriverMemory:
		return NewMemoryStore(DemoSeed()...), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
