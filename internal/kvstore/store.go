// Package kvstore defines the string key-value storage every engine persists through.
//
// # Backends
//
//	MemoryStore  in-process map, used by tests and the "memory" backend
//	SQLStore     sqlx over SQLite or Postgres
//	RedisStore   go-redis v9
//
// The gorm-backed default lives in internal/database and satisfies the same
// interfaces.
package kvstore

import "errors"

// ErrEmptyKey is returned when an operation is called with an empty key.
var ErrEmptyKey = errors.New("kvstore: empty key")

// Store is a string key-value store. Get reports whether the key exists.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Lister is implemented by stores that can enumerate keys by prefix.
type Lister interface {
	Keys(prefix string) ([]string, error)
}
