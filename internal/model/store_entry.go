package model

import (
	"time"

	"gorm.io/gorm"
)

// StoreEntry is one key of the SQL-backed keyed store. Value holds the whole
// serialized product collection.
type StoreEntry struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}

// Hook Before Save keeps UpdatedAt current even for raw upserts
func (e *StoreEntry) BeforeSave(tx *gorm.DB) (err error) {
	e.UpdatedAt = time.Now()
	return
}
