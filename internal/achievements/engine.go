// Package achievements tracks user statistics and unlocks achievements when
// their conditions are met.
package achievements

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

// Ledger grants achievement rewards.
type Ledger interface {
	Get() (int, error)
	Add(amount int) (int, error)
}

// Engine evaluates the catalog and is the only place rewards are granted from.
// An achievement id is persisted before its reward is added, so a reward is
// never granted twice.
type Engine struct {
	mu      sync.Mutex
	store   kvstore.Store
	stats   *StatsStore
	ledger  Ledger
	catalog []entities.Achievement
	logger  *zap.Logger
}

type Option func(*Engine)

func WithCatalog(catalog []entities.Achievement) Option {
	return func(e *Engine) { e.catalog = catalog }
}

// NewEngine returns an Engine. stats may be nil, in which case the XP total
// is not mirrored back into the stats snapshot after rewards.
func NewEngine(store kvstore.Store, stats *StatsStore, ledger Ledger, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		store:   store,
		stats:   stats,
		ledger:  ledger,
		catalog: Catalog(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() []entities.Achievement {
	out := make([]entities.Achievement, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Unlocked returns unlocked ids in the order they were unlocked.
func (e *Engine) Unlocked() ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadUnlocked()
}

// Refresh evaluates the catalog against the stored stats.
func (e *Engine) Refresh() ([]entities.Achievement, error) {
	if e.stats == nil {
		return nil, nil
	}
	stats, err := e.stats.Get()
	if err != nil {
		return nil, err
	}
	return e.Check(stats)
}

// Check unlocks every achievement whose predicate holds for stats and grants
// its reward. Rewards raise TotalXP, so evaluation repeats with the new total
// until nothing else unlocks. Returns the newly unlocked achievements.
func (e *Engine) Check(stats entities.UserStats) ([]entities.Achievement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	unlocked, err := e.loadUnlocked()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		seen[id] = true
	}

	var newly []entities.Achievement
	for {
		var round []entities.Achievement
		for _, a := range e.catalog {
			if seen[a.ID] || a.Predicate == nil || !a.Predicate(stats) {
				continue
			}
			seen[a.ID] = true
			unlocked = append(unlocked, a.ID)
			round = append(round, a)
		}
		if len(round) == 0 {
			break
		}

		if err := e.saveUnlocked(unlocked); err != nil {
			return newly, err
		}
		for _, a := range round {
			e.logger.Info("achievement unlocked", zap.String("id", a.ID), zap.Int("xp_reward", a.XPReward))
			if a.XPReward <= 0 {
				continue
			}
			total, err := e.ledger.Add(a.XPReward)
			if err != nil {
				return append(newly, round...), fmt.Errorf("grant reward for %s: %w", a.ID, err)
			}
			stats.TotalXP = total
		}
		newly = append(newly, round...)
	}

	if len(newly) > 0 && e.stats != nil {
		if _, err := e.stats.Update(func(*entities.UserStats) {}); err != nil {
			return newly, err
		}
	}
	return newly, nil
}

func (e *Engine) loadUnlocked() ([]string, error) {
	raw, ok, err := e.store.Get(entities.KeyAchievements)
	if err != nil {
		return nil, fmt.Errorf("read achievements: %w", err)
	}
	ids := []string{}
	if !ok || raw == "" {
		return ids, nil
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode achievements: %w", err)
	}
	return ids, nil
}

func (e *Engine) saveUnlocked(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode achievements: %w", err)
	}
	if err := e.store.Set(entities.KeyAchievements, string(data)); err != nil {
		return fmt.Errorf("write achievements: %w", err)
	}
	return nil
}
