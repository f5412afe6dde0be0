package achievements

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

var (
	ErrUnknownStat    = errors.New("achievements: unknown stat")
	ErrNegativeAmount = errors.New("achievements: stat increments must not be negative")
)

// XPSource provides the authoritative XP total.
type XPSource interface {
	Get() (int, error)
}

// StatsStore persists UserStats as JSON. TotalXP always mirrors the XP source.
type StatsStore struct {
	mu    sync.Mutex
	store kvstore.Store
	xp    XPSource
}

func NewStatsStore(store kvstore.Store, xp XPSource) *StatsStore {
	return &StatsStore{store: store, xp: xp}
}

// Get returns the stored stats, zero-valued when nothing was saved yet.
func (s *StatsStore) Get() (entities.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, err := s.read()
	if err != nil {
		return entities.UserStats{}, err
	}
	return stats, s.syncXP(&stats)
}

// Save overwrites the stored stats. TotalXP is replaced by the ledger total.
func (s *StatsStore) Save(stats entities.UserStats) (entities.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(stats)
}

// Increment adds amount to the named counter.
func (s *StatsStore) Increment(field entities.StatField, amount int) (entities.UserStats, error) {
	if amount < 0 {
		return entities.UserStats{}, ErrNegativeAmount
	}
	var probe entities.UserStats
	if probe.Counter(field) == nil {
		return entities.UserStats{}, fmt.Errorf("%w: %q", ErrUnknownStat, field)
	}
	return s.Update(func(stats *entities.UserStats) {
		*stats.Counter(field) += amount
	})
}

// Update applies fn to the current stats under the store lock and saves the result.
func (s *StatsStore) Update(fn func(*entities.UserStats)) (entities.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, err := s.read()
	if err != nil {
		return entities.UserStats{}, err
	}
	fn(&stats)
	return s.write(stats)
}

func (s *StatsStore) read() (entities.UserStats, error) {
	var stats entities.UserStats
	raw, ok, err := s.store.Get(entities.KeyStats)
	if err != nil {
		return stats, fmt.Errorf("read stats: %w", err)
	}
	if !ok || raw == "" {
		return stats, nil
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return stats, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

func (s *StatsStore) write(stats entities.UserStats) (entities.UserStats, error) {
	if err := s.syncXP(&stats); err != nil {
		return entities.UserStats{}, err
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return entities.UserStats{}, fmt.Errorf("encode stats: %w", err)
	}
	if err := s.store.Set(entities.KeyStats, string(data)); err != nil {
		return entities.UserStats{}, fmt.Errorf("write stats: %w", err)
	}
	return stats, nil
}

func (s *StatsStore) syncXP(stats *entities.UserStats) error {
	if s.xp == nil {
		return nil
	}
	total, err := s.xp.Get()
	if err != nil {
		return fmt.Errorf("sync xp: %w", err)
	}
	stats.TotalXP = total
	return nil
}
