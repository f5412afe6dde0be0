// Package credentials stores the bearer token sent to the model proxy.
package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

var ErrEmptyCredential = errors.New("credential is empty")

// Store reads the credential from the key-value store on every call so that
// a key saved by one request is seen by the next without a restart.
type Store struct {
	kv     kvstore.Store
	sealer *Sealer
}

// New returns a Store. A nil sealer keeps the credential as plain text.
func New(kv kvstore.Store, sealer *Sealer) *Store {
	return &Store{kv: kv, sealer: sealer}
}

// APIKey returns the stored credential verbatim.
func (s *Store) APIKey() (string, bool, error) {
	value, ok, err := s.kv.Get(entities.KeyCredential)
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	if !ok || value == "" {
		return "", false, nil
	}
	if IsSealed(value) {
		if s.sealer == nil {
			return "", false, errors.New("credential is encrypted but no encryption key is configured")
		}
		value, err = s.sealer.Open(value)
		if err != nil {
			return "", false, fmt.Errorf("open credential: %w", err)
		}
	}
	return value, true, nil
}

func (s *Store) HasAPIKey() bool {
	_, ok, err := s.APIKey()
	return err == nil && ok
}

// SetAPIKey trims surrounding whitespace and saves the key.
func (s *Store) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyCredential
	}
	value := key
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(key)
		if err != nil {
			return err
		}
		value = sealed
	}
	if err := s.kv.Set(entities.KeyCredential, value); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	if err := s.kv.Delete(entities.KeyCredential); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// WithServerKey reports a key as available when the model proxy holds its own
// fallback key, even if none is stored.
type WithServerKey struct {
	Store     *Store
	ServerKey bool
}

func (w WithServerKey) HasAPIKey() bool {
	return w.ServerKey || w.Store.HasAPIKey()
}
