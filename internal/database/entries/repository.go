// Package entries provides database operations for key-value entries.
//
// # Usage
//
//	repo := entries.NewRepository(db)
//	entry, err := repo.GetEntry("user_xp")
package entries

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/audaroky/internal/entities"
)

// Repository handles all key-value entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new entries repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetEntry retrieves an entry by key. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) GetEntry(key string) (*entities.KVEntry, error) {
	var entry entities.KVEntry
	err := r.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetEntry creates or updates an entry.
func (r *Repository) SetEntry(key, value string) error {
	var entry entities.KVEntry
	result := r.db.Where("key = ?", key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = entities.KVEntry{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&entry).Error
	} else if result.Error != nil {
		return result.Error
	}

	entry.Value = value
	return r.db.Save(&entry).Error
}

// DeleteEntry removes an entry by key.
func (r *Repository) DeleteEntry(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.KVEntry{}).Error
}

// ListKeys returns keys starting with prefix, ordered by key.
func (r *Repository) ListKeys(prefix string) ([]string, error) {
	var keys []string
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	err := r.db.Model(&entities.KVEntry{}).
		Where(`key LIKE ? ESCAPE '\'`, escaped+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
