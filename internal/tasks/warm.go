package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/entities"
)

// MaxWarmWords bounds a single warm-up task.
const MaxWarmWords = 200

var (
	ErrNoWords      = errors.New("no words to warm")
	ErrTooManyWords = fmt.Errorf("more than %d words", MaxWarmWords)
)

// WordTranslator fills the translation cache for a word.
type WordTranslator interface {
	TranslateWord(ctx context.Context, word, contextSentence, lang string) entities.TranslationResult
}

// WarmTranslationsTask pre-translates words so later clicks are served from
// the cache.
type WarmTranslationsTask struct {
	Words    []string `json:"words"`
	Language string   `json:"language"`
	Context  string   `json:"context,omitempty"`
}

func (t WarmTranslationsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "warm_translations",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// NewWarmTranslationsTask trims, dedupes and bounds words.
func NewWarmTranslationsTask(words []string, lang, contextSentence string) (WarmTranslationsTask, error) {
	seen := make(map[string]bool, len(words))
	var clean []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		key := strings.ToLower(w)
		if w == "" || seen[key] {
			continue
		}
		seen[key] = true
		clean = append(clean, w)
	}
	if len(clean) == 0 {
		return WarmTranslationsTask{}, ErrNoWords
	}
	if len(clean) > MaxWarmWords {
		return WarmTranslationsTask{}, fmt.Errorf("%w: got %d", ErrTooManyWords, len(clean))
	}
	return WarmTranslationsTask{Words: clean, Language: lang, Context: contextSentence}, nil
}

// EnqueueWarm builds a warm-up task from words and adds it to the queue,
// returning the normalized task and its id.
func (c *Client) EnqueueWarm(words []string, lang, contextSentence string) (WarmTranslationsTask, string, error) {
	task, err := NewWarmTranslationsTask(words, lang, contextSentence)
	if err != nil {
		return task, "", err
	}
	ids, err := c.Add(task).Save()
	if err != nil {
		return task, "", fmt.Errorf("failed to enqueue warm-up: %w", err)
	}
	if len(ids) == 0 {
		return task, "", errors.New("no task id returned")
	}
	c.logger.Info("warm-up enqueued", zap.String("task_id", ids[0]), zap.Int("words", len(task.Words)), zap.String("language", lang))
	return task, ids[0], nil
}

// WarmTranslationsProcessor translates every word of the task. It fails only
// when no word could be translated, so the queue retries the whole batch.
func WarmTranslationsProcessor(tr WordTranslator, logger *zap.Logger) backlite.QueueProcessor[WarmTranslationsTask] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, task WarmTranslationsTask) error {
		var warmed, failed int
		for _, word := range task.Words {
			if err := ctx.Err(); err != nil {
				logger.Info("warm-up cancelled", zap.Int("warmed", warmed), zap.Int("failed", failed))
				return err
			}
			if tr.TranslateWord(ctx, word, task.Context, task.Language).Translation == "" {
				failed++
				continue
			}
			warmed++
		}

		logger.Info("warmed translations",
			zap.String("language", task.Language), zap.Int("warmed", warmed), zap.Int("failed", failed))
		if warmed == 0 && failed > 0 {
			return fmt.Errorf("warm %d words: all failed", failed)
		}
		return nil
	}
}

func NewWarmTranslationsQueue(tr WordTranslator, logger *zap.Logger) backlite.Queue {
	return backlite.NewQueue(WarmTranslationsProcessor(tr, logger))
}
