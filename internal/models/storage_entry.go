package models

import "time"

// StorageEntry is one durable key-value slot.
type StorageEntry struct {
	Slot      string    `gorm:"primaryKey;size:128" json:"slot"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the SQL migrations.
func (StorageEntry) TableName() string {
	return "storage_entries"
}
