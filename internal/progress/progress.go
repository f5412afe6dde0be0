// Package progress stores per-book reading progress and the set of unlocked
// levels. Both only ever move forward.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

var (
	ErrInvalidBook    = errors.New("progress: book id is required")
	ErrInvalidChapter = errors.New("progress: chapter index out of range")
	ErrInvalidLevel   = errors.New("progress: level id is required")
)

type Engine struct {
	mu    sync.Mutex
	store kvstore.Store
}

func NewEngine(store kvstore.Store) *Engine {
	return &Engine{store: store}
}

// Get returns the stored progress or the default for a new reader.
func (e *Engine) Get() (entities.UserProgress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.read()
}

// IsUnlocked reports whether level has been unlocked.
func (e *Engine) IsUnlocked(level string) (bool, error) {
	p, err := e.Get()
	if err != nil {
		return false, err
	}
	return p.HasLevel(level), nil
}

// UnlockLevel appends level to the unlocked list. It reports whether the
// level was newly added; unlocking twice is a no-op.
func (e *Engine) UnlockLevel(level string) (bool, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return false, ErrInvalidLevel
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.read()
	if err != nil {
		return false, err
	}
	if p.HasLevel(level) {
		return false, nil
	}
	p.UnlockedLevels = append(p.UnlockedLevels, level)
	return true, e.write(p)
}

// UpdateBookProgress records that chapterIndex (0-based) of bookID was reached.
// The current chapter only increases and a completed book stays completed.
func (e *Engine) UpdateBookProgress(bookID string, chapterIndex, totalChapters int) (entities.BookProgress, error) {
	if strings.TrimSpace(bookID) == "" {
		return entities.BookProgress{}, ErrInvalidBook
	}
	if totalChapters <= 0 || chapterIndex < 0 || chapterIndex >= totalChapters {
		return entities.BookProgress{}, fmt.Errorf("%w: chapter %d of %d", ErrInvalidChapter, chapterIndex, totalChapters)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.read()
	if err != nil {
		return entities.BookProgress{}, err
	}

	book, ok := p.Books[bookID]
	if !ok {
		book = entities.BookProgress{BookID: bookID}
	}
	book.TotalChapters = totalChapters
	if chapterIndex > book.CurrentChapter {
		book.CurrentChapter = chapterIndex
	}
	if chapterIndex >= totalChapters-1 {
		book.IsCompleted = true
	}

	p.Books[bookID] = book
	if err := e.write(p); err != nil {
		return entities.BookProgress{}, err
	}
	return book, nil
}

func (e *Engine) read() (entities.UserProgress, error) {
	raw, ok, err := e.store.Get(entities.KeyProgress)
	if err != nil {
		return entities.UserProgress{}, fmt.Errorf("read progress: %w", err)
	}
	if !ok || raw == "" {
		return entities.DefaultProgress(), nil
	}

	var p entities.UserProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return entities.UserProgress{}, fmt.Errorf("decode progress: %w", err)
	}
	if p.UnlockedLevels == nil {
		p.UnlockedLevels = entities.DefaultProgress().UnlockedLevels
	}
	if p.Books == nil {
		p.Books = map[string]entities.BookProgress{}
	}
	return p, nil
}

func (e *Engine) write(p entities.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := e.store.Set(entities.KeyProgress, string(data)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
