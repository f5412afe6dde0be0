// Package streak counts consecutive calendar days of activity.
package streak

import (
	"fmt"
	"sync"
	"time"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

// DateLayout is the stored format of the last activity date.
const DateLayout = "2006-01-02"

// StatsStore holds the streak counter.
type StatsStore interface {
	Get() (entities.UserStats, error)
	Update(fn func(*entities.UserStats)) (entities.UserStats, error)
}

type Result struct {
	StreakDays   int    `json:"streakDays"`
	Changed      bool   `json:"changed"`
	LastActivity string `json:"lastActivity"`
}

type Tracker struct {
	mu    sync.Mutex
	store kvstore.Store
	stats StatsStore
	now   func() time.Time
	loc   *time.Location
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLocation sets the time zone whose calendar days are counted.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

func NewTracker(store kvstore.Store, stats StatsStore, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		stats: stats,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update records activity for today. Same day is a no-op, the day after the
// last activity extends the streak, any other gap restarts it at 1.
func (t *Tracker) Update() (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.now().In(t.loc)
	todayStr := today.Format(DateLayout)

	last, ok, err := t.store.Get(entities.KeyLastActivity)
	if err != nil {
		return Result{}, fmt.Errorf("read last activity: %w", err)
	}

	if ok && last == todayStr {
		stats, err := t.stats.Get()
		if err != nil {
			return Result{}, err
		}
		return Result{StreakDays: stats.StreakDays, LastActivity: todayStr}, nil
	}

	yesterday := time.Date(today.Year(), today.Month(), today.Day()-1, 12, 0, 0, 0, t.loc).Format(DateLayout)
	stats, err := t.stats.Update(func(s *entities.UserStats) {
		if ok && last == yesterday {
			s.StreakDays++
		} else {
			s.StreakDays = 1
		}
	})
	if err != nil {
		return Result{}, err
	}

	if err := t.store.Set(entities.KeyLastActivity, todayStr); err != nil {
		return Result{}, fmt.Errorf("write last activity: %w", err)
	}
	return Result{StreakDays: stats.StreakDays, Changed: true, LastActivity: todayStr}, nil
}

// LastActivity returns the stored date of the last recorded activity.
func (t *Tracker) LastActivity() (string, bool, error) {
	return t.store.Get(entities.KeyLastActivity)
}
