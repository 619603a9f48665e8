package model

import (
	"time"

	"github.com/google/uuid"
)

// KVEntry is one durable collection, stored as a JSON document under its key.
// swagger:model
type KVEntry struct {
	Key       string    `gorm:"column:kv_key;primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:longtext;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateID returns a prefixed id such as "cat-1b9d6bcd".
func GenerateID(prefix string) string {
	id := uuid.New().String()[:8]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
