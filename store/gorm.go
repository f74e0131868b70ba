package store

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the single table backing the durable store.
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// DB is a Store persisted through GORM (sqlite file or postgres).
type DB struct {
	db *gorm.DB
}

// NewDB migrates the kv table and returns the adapter.
func NewDB(db *gorm.DB) (*DB, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Get(key string) (string, bool) {
	var entry KVEntry
	err := d.db.First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Storage trouble reads as absence; callers fall back to empty state.
			log.Println("❌ Store read failed:", err)
		}
		return "", false
	}
	return entry.Value, true
}

func (d *DB) Set(key, value string) error {
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&KVEntry{Key: key, Value: value}).Error
}

func (d *DB) Remove(key string) {
	if err := d.db.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		log.Println("❌ Store remove failed:", err)
	}
}
