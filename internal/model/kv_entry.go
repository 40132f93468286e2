package model

import "time"

// KVEntry is one row of the snapshot mirror table used by the SQL stores.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:longtext;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KVEntry) TableName() string { return "kv_entries" }
