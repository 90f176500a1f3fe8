package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-catalog-ws/internal/model"
)

// GormKV is a KeyValue backed by the store_entries table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&model.StoreEntry{}); err != nil {
		return nil, errors.Wrap(err, "migrate store_entries")
	}
	return &GormKV{db: db}, nil
}

func (k *GormKV) Get(key string) ([]byte, bool, error) {
	var entry model.StoreEntry
	err := k.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (k *GormKV) Put(key string, value []byte) error {
	entry := model.StoreEntry{Key: key, Value: string(value)}
	return k.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
