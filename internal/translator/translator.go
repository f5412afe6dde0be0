// Package translator resolves words and sentences through the cache, the
// offline dictionary and the AI gateway, in that order.
//
// Operations never return errors. A failed translation comes back as an
// empty result and is not cached, so the next request tries again.
package translator

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/cache"
	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/sanitize"
)

const (
	defaultAttempts  = 2
	DefaultQuizCount = 10
)

// AI sends a prompt to the model and returns its raw text.
type AI interface {
	CallAI(ctx context.Context, prompt string) (string, error)
}

// Dictionary is an offline word table for a single language.
type Dictionary interface {
	Language() string
	Lookup(word string) (string, bool)
}

type Translator struct {
	ai       AI
	cache    *cache.Cache
	dict     Dictionary
	logger   *zap.Logger
	attempts int
}

// New returns a Translator. dict may be nil.
func New(ai AI, c *cache.Cache, dict Dictionary, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		ai:       ai,
		cache:    c,
		dict:     dict,
		logger:   logger,
		attempts: defaultAttempts,
	}
}

func WordFingerprint(word, lang string) string {
	return "word_" + strings.ToLower(word) + "_" + lang
}

func SentenceFingerprint(sentence, lang string) string {
	return "sentence_" + sentence + "_" + lang
}

func GrammarFingerprint(sentence, lang string) string {
	return "grammar_" + sentence + "_" + lang
}

// Lookup answers from the cache or the offline dictionary without any network call.
func (t *Translator) Lookup(word, lang string) (entities.TranslationResult, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return entities.TranslationResult{}, false
	}
	fp := WordFingerprint(word, lang)
	if cached, ok := cache.Get[entities.TranslationResult](t.cache, fp); ok && cached.Translation != "" {
		return cached, true
	}
	if t.dict != nil && lang == t.dict.Language() {
		if translation, ok := t.dict.Lookup(word); ok {
			result := entities.TranslationResult{Translation: translation}
			t.store(fp, result)
			return result, true
		}
	}
	return entities.TranslationResult{}, false
}

// TranslateWord translates a single word, optionally using its sentence as context.
func (t *Translator) TranslateWord(ctx context.Context, word, contextSentence, lang string) entities.TranslationResult {
	word = strings.TrimSpace(word)
	if word == "" {
		return entities.TranslationResult{}
	}
	if result, ok := t.Lookup(word, lang); ok {
		return result
	}

	fp := WordFingerprint(word, lang)
	prompt := wordPrompt(word, contextSentence, lang)
	for attempt := 1; attempt <= t.attempts; attempt++ {
		raw, err := t.ai.CallAI(ctx, prompt)
		if err != nil {
			t.logger.Warn("word translation failed", zap.String("word", word), zap.Int("attempt", attempt), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		translation := sanitize.TextField(raw, "translation")
		if !acceptable(word, translation, lang) {
			t.logger.Debug("discarding unusable word translation",
				zap.String("word", word), zap.String("translation", translation), zap.Int("attempt", attempt))
			continue
		}

		result := entities.TranslationResult{Translation: translation}
		t.store(fp, result)
		return result
	}
	return entities.TranslationResult{}
}

// acceptable rejects empty output and, for non-Latin targets, an echo of the
// source word that contains no letters of the target script.
func acceptable(word, translation, lang string) bool {
	if translation == "" {
		return false
	}
	if !strings.EqualFold(translation, word) {
		return true
	}
	nonLatin, found := hasScript(lang, translation)
	return !nonLatin || found
}

func (t *Translator) TranslateSentence(ctx context.Context, sentence, lang string) entities.TranslationResult {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return entities.TranslationResult{}
	}
	if cached, ok := t.CachedSentence(sentence, lang); ok {
		return cached
	}

	fp := SentenceFingerprint(sentence, lang)
	translation := t.ask(ctx, sentencePrompt(sentence, lang), "translation")
	if translation == "" {
		return entities.TranslationResult{}
	}
	result := entities.TranslationResult{Translation: translation}
	t.store(fp, result)
	return result
}

// ExplainGrammar returns a short bilingual explanation of sentence.
func (t *Translator) ExplainGrammar(ctx context.Context, sentence, lang string) entities.GrammarResult {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return entities.GrammarResult{}
	}
	if cached, ok := t.CachedGrammar(sentence, lang); ok {
		return cached
	}

	fp := GrammarFingerprint(sentence, lang)
	grammar := t.ask(ctx, grammarPrompt(sentence, lang), "grammar")
	if grammar == "" {
		return entities.GrammarResult{}
	}
	result := entities.GrammarResult{Grammar: grammar}
	t.store(fp, result)
	return result
}

// CachedSentence returns a previously stored sentence translation.
func (t *Translator) CachedSentence(sentence, lang string) (entities.TranslationResult, bool) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return entities.TranslationResult{}, false
	}
	cached, ok := cache.Get[entities.TranslationResult](t.cache, SentenceFingerprint(sentence, lang))
	return cached, ok && cached.Translation != ""
}

func (t *Translator) CachedGrammar(sentence, lang string) (entities.GrammarResult, bool) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return entities.GrammarResult{}, false
	}
	cached, ok := cache.Get[entities.GrammarResult](t.cache, GrammarFingerprint(sentence, lang))
	return cached, ok && cached.Grammar != ""
}

// ask retries until the model yields a non-empty value for field.
func (t *Translator) ask(ctx context.Context, prompt, field string) string {
	for attempt := 1; attempt <= t.attempts; attempt++ {
		raw, err := t.ai.CallAI(ctx, prompt)
		if err != nil {
			t.logger.Warn("ai call failed", zap.String("field", field), zap.Int("attempt", attempt), zap.Error(err))
			if ctx.Err() != nil {
				return ""
			}
			continue
		}
		if value := sanitize.TextField(raw, field); value != "" {
			return value
		}
	}
	return ""
}

// GenerateTestQuestions asks the model for count questions about text. Invalid
// questions are dropped; total failure yields an empty, non-nil slice.
// A parsable response is returned as is even when every entry was invalid.
func (t *Translator) GenerateTestQuestions(ctx context.Context, text string, count int) []entities.QuizQuestion {
	if count <= 0 {
		count = DefaultQuizCount
	}
	prompt := quizPrompt(text, count)

	for attempt := 1; attempt <= t.attempts; attempt++ {
		raw, err := t.ai.CallAI(ctx, prompt)
		if err != nil {
			t.logger.Warn("quiz generation failed", zap.Int("attempt", attempt), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		questions, err := sanitize.QuizQuestions(raw)
		if err != nil {
			t.logger.Warn("quiz response malformed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		if len(questions) > count {
			questions = questions[:count]
		}
		return questions
	}
	return []entities.QuizQuestion{}
}

func (t *Translator) store(fingerprint string, value any) {
	if err := t.cache.Set(fingerprint, value); err != nil {
		t.logger.Warn("failed to cache translation", zap.String("key", fingerprint), zap.Error(err))
	}
}
