package entities

import (
	"time"
)

// KVEntry is a single row of the key-value store.
type KVEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;type:text" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Known store keys
const (
	KeyCredential   = "gemini_api_key"
	KeyXP           = "user_xp"
	KeyStats        = "audaroky_stats"
	KeyAchievements = "audaroky_achievements"
	KeyLastActivity = "audaroky_last_activity"
	KeyProgress     = "user_progress"

	// CachePrefix namespaces translation cache entries.
	CachePrefix = "audaroky_cache_"
)
