package services

import (
	"context"

	"github.com/mrlokans/audaroky/internal/dictionary"
	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/streak"
)

// Translator resolves words, sentences and quizzes. Failures come back as
// empty results.
type Translator interface {
	Lookup(word, lang string) (entities.TranslationResult, bool)
	TranslateWord(ctx context.Context, word, contextSentence, lang string) entities.TranslationResult
	TranslateSentence(ctx context.Context, sentence, lang string) entities.TranslationResult
	ExplainGrammar(ctx context.Context, sentence, lang string) entities.GrammarResult
	CachedSentence(sentence, lang string) (entities.TranslationResult, bool)
	CachedGrammar(sentence, lang string) (entities.GrammarResult, bool)
	GenerateTestQuestions(ctx context.Context, text string, count int) []entities.QuizQuestion
}

// CredentialChecker reports whether an API key is configured.
type CredentialChecker interface {
	HasAPIKey() bool
}

// XPLedger is the experience point counter.
type XPLedger interface {
	Get() (int, error)
	Add(amount int) (int, error)
}

// StatsRecorder persists the stats snapshot.
type StatsRecorder interface {
	Get() (entities.UserStats, error)
	Increment(field entities.StatField, amount int) (entities.UserStats, error)
	Update(fn func(*entities.UserStats)) (entities.UserStats, error)
}

// AchievementChecker unlocks achievements for a stats snapshot.
type AchievementChecker interface {
	Catalog() []entities.Achievement
	Unlocked() ([]string, error)
	Check(stats entities.UserStats) ([]entities.Achievement, error)
}

// StreakUpdater records a day of activity.
type StreakUpdater interface {
	Update() (streak.Result, error)
}

// ProgressTracker stores book progress and unlocked levels.
type ProgressTracker interface {
	Get() (entities.UserProgress, error)
	UnlockLevel(level string) (bool, error)
	UpdateBookProgress(bookID string, chapterIndex, totalChapters int) (entities.BookProgress, error)
}

// PairSource provides word pairs for the match game.
type PairSource interface {
	Pairs() []dictionary.Pair
}

// TranslationStatus tells the client how to render a word translation.
type TranslationStatus string

const (
	StatusOK                TranslationStatus = "ok"
	StatusFailed            TranslationStatus = "failed"
	StatusCredentialMissing TranslationStatus = "credential_missing"
)

// QuizSource tells where the questions of a quiz came from.
type QuizSource string

const (
	SourceGenerated QuizSource = "generated"
	SourceBook      QuizSource = "book"
	SourceGeneric   QuizSource = "generic"
	SourceLevel     QuizSource = "level"
)

// Reward describes the XP and achievements granted by one action.
type Reward struct {
	XP           int                    `json:"xp"`
	TotalXP      int                    `json:"totalXP"`
	Achievements []entities.Achievement `json:"achievements,omitempty"`
}

// WordResult is a translated word. Stale is set when a newer selection started
// before this one finished; the client should drop it.
type WordResult struct {
	Word        string            `json:"word"`
	Translation string            `json:"translation"`
	Status      TranslationStatus `json:"status"`
	Stale       bool              `json:"stale"`
	Reward      *Reward           `json:"reward,omitempty"`
}

// SentenceResult is a translated sentence with its grammar note. Without a
// credential and with nothing cached, Translation holds the MISSING_API_KEY
// sentinel.
type SentenceResult struct {
	Sentence    string            `json:"sentence"`
	Translation string            `json:"translation"`
	Grammar     string            `json:"grammar"`
	Status      TranslationStatus `json:"status"`
	Reward      *Reward           `json:"reward,omitempty"`
}

type ChapterResult struct {
	Book   entities.BookProgress `json:"book"`
	Reward Reward                `json:"reward"`
}

type QuizSet struct {
	Source    QuizSource              `json:"source"`
	Questions []entities.QuizQuestion `json:"questions"`
}

// QuizSubmission is a finished quiz. Level is the level the quiz belongs to:
// the tested level for a level test, the book's level for a book quiz.
type QuizSubmission struct {
	Kind   string `json:"kind" binding:"required,oneof=level book"`
	Level  string `json:"level" binding:"required"`
	BookID string `json:"bookId"`
	Score  int    `json:"score" binding:"min=0"`
	Total  int    `json:"total" binding:"min=1"`
}

type QuizOutcome struct {
	Passed        bool    `json:"passed"`
	UnlockedLevel string  `json:"unlockedLevel,omitempty"`
	Reward        *Reward `json:"reward,omitempty"`
}

type SessionResult struct {
	StreakDays   int                    `json:"streakDays"`
	Changed      bool                   `json:"changed"`
	Achievements []entities.Achievement `json:"achievements,omitempty"`
}

type Dashboard struct {
	XP           int                    `json:"xp"`
	Stats        entities.UserStats     `json:"stats"`
	Progress     entities.UserProgress  `json:"progress"`
	Unlocked     []string               `json:"unlocked"`
	Achievements []entities.Achievement `json:"achievements"`
}
