// Package cache stores translation results in the key-value store under a
// shared namespace, each wrapped in an envelope with its capture time.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

// ErrPruneUnsupported is returned by Prune when the store cannot list keys.
var ErrPruneUnsupported = errors.New("cache: store does not support key listing")

// Entry is the stored envelope. Timestamp is epoch milliseconds.
type Entry[T any] struct {
	Value     T     `json:"value"`
	Timestamp int64 `json:"timestamp"`
}

type Cache struct {
	store  kvstore.Store
	logger *zap.Logger
	prefix string
	maxAge time.Duration
	now    func() time.Time
}

type Option func(*Cache)

// WithMaxAge makes entries older than d read as absent. Zero disables expiry.
func WithMaxAge(d time.Duration) Option {
	return func(c *Cache) { c.maxAge = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

func New(store kvstore.Store, logger *zap.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{
		store:  store,
		logger: logger,
		prefix: entities.CachePrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) MaxAge() time.Duration {
	return c.maxAge
}

// Get returns the cached value for key. Storage and decode failures are
// logged and reported as a miss.
func Get[T any](c *Cache, key string) (T, bool) {
	var zero T
	raw, ok, err := c.store.Get(c.prefix + key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var entry Entry[T]
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.logger.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return zero, false
	}
	if c.expired(entry.Timestamp) {
		return zero, false
	}
	return entry.Value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) error {
	data, err := json.Marshal(Entry[any]{Value: value, Timestamp: c.now().UnixMilli()})
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}
	if err := c.store.Set(c.prefix+key, string(data)); err != nil {
		return fmt.Errorf("write cache entry %q: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(key string) error {
	return c.store.Delete(c.prefix + key)
}

// Prune deletes expired entries and returns how many were removed.
// Without a max age nothing expires and Prune is a no-op.
func (c *Cache) Prune() (int, error) {
	if c.maxAge <= 0 {
		return 0, nil
	}
	lister, ok := c.store.(kvstore.Lister)
	if !ok {
		return 0, ErrPruneUnsupported
	}
	keys, err := lister.Keys(c.prefix)
	if err != nil {
		return 0, fmt.Errorf("list cache keys: %w", err)
	}

	removed := 0
	for _, key := range keys {
		raw, ok, err := c.store.Get(key)
		if err != nil || !ok {
			continue
		}
		var entry Entry[json.RawMessage]
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		if !c.expired(entry.Timestamp) {
			continue
		}
		if err := c.store.Delete(key); err != nil {
			return removed, fmt.Errorf("delete %q: %w", strings.TrimPrefix(key, c.prefix), err)
		}
		removed++
	}
	return removed, nil
}

func (c *Cache) expired(timestamp int64) bool {
	if c.maxAge <= 0 {
		return false
	}
	return c.now().Sub(time.UnixMilli(timestamp)) > c.maxAge
}
