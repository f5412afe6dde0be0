// Package xp keeps the experience point total and notifies subscribers of changes.
package xp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

// Rewards per event.
const (
	RewardWord      = 1
	RewardSentence  = 5
	RewardChapter   = 50
	RewardTest      = 100
	RewardMatchGame = 50
)

const subscriberBuffer = 16

var ErrInvalidAmount = errors.New("xp: amount must be positive")

// Event is published after every successful Add.
type Event struct {
	Delta int `json:"delta"`
	Total int `json:"total"`
}

// Ledger is a monotonic counter stored as a decimal string.
type Ledger struct {
	mu     sync.Mutex
	store  kvstore.Store
	logger *zap.Logger

	subsMu sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewLedger(store kvstore.Store, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		store:  store,
		logger: logger,
		subs:   make(map[int]chan Event),
	}
}

// Get returns the current total, 0 when nothing has been recorded.
func (l *Ledger) Get() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Ledger) read() (int, error) {
	raw, ok, err := l.store.Get(entities.KeyXP)
	if err != nil {
		return 0, fmt.Errorf("read xp: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	total, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse xp %q: %w", raw, err)
	}
	return total, nil
}

// Add increases the total by amount and returns the new total.
func (l *Ledger) Add(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	l.mu.Lock()
	current, err := l.read()
	if err != nil {
		l.mu.Unlock()
		return 0, err
	}
	total := current + amount
	if err := l.store.Set(entities.KeyXP, strconv.Itoa(total)); err != nil {
		l.mu.Unlock()
		return 0, fmt.Errorf("write xp: %w", err)
	}
	l.mu.Unlock()

	l.publish(Event{Delta: amount, Total: total})
	return total, nil
}

// Subscribe returns a channel of events and a function that cancels the
// subscription and closes the channel. Events are dropped for subscribers
// whose buffer is full.
func (l *Ledger) Subscribe() (<-chan Event, func()) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()

	id := l.nextID
	l.nextID++
	ch := make(chan Event, subscriberBuffer)
	l.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.subsMu.Lock()
			defer l.subsMu.Unlock()
			delete(l.subs, id)
			close(ch)
		})
	}
}

func (l *Ledger) publish(ev Event) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for id, ch := range l.subs {
		select {
		case ch <- ev:
		default:
			l.logger.Debug("dropping xp event for slow subscriber", zap.Int("subscriber", id))
		}
	}
}
