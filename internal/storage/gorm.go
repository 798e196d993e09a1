package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kumbara/internal/models"
)

// GormStore keeps each key in a row of the storage_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a KeyValueStore backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value stored under key.
func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.StorageEntry
	if err := s.db.Where("slot = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *GormStore) Set(key, value string) error {
	entry := models.StorageEntry{Slot: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *GormStore) Remove(key string) error {
	if err := s.db.Where("slot = ?", key).Delete(&models.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("remove slot %q: %w", key, err)
	}
	return nil
}
