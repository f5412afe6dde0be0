package http

import (
	"context"

	"github.com/mrlokans/audaroky/internal/dictionary"
	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/services"
	"github.com/mrlokans/audaroky/internal/xp"
)

// Each controller depends on the narrow interface it needs. They are
// collected here to give an overview of what the API touches.

// ReaderService is the use-case layer behind the reading screens.
type ReaderService interface {
	StartSession() (services.SessionResult, error)
	TranslateWord(ctx context.Context, word, contextSentence, lang string) (services.WordResult, error)
	LoadSentence(ctx context.Context, sentence, lang string) (services.SentenceResult, error)
	FinishChapter(bookID string, chapterIndex, totalChapters int) (services.ChapterResult, error)
	BookQuiz(ctx context.Context, bookID, text string) services.QuizSet
	LevelQuiz(level string) services.QuizSet
	SubmitQuiz(sub services.QuizSubmission) (services.QuizOutcome, error)
	CompleteMatchGame() (services.Reward, error)
	MatchPairs(n int) []dictionary.Pair
	Dashboard() (services.Dashboard, error)
}

// CredentialStore manages the stored model API key.
type CredentialStore interface {
	HasAPIKey() bool
	SetAPIKey(key string) error
	Clear() error
}

// LevelStore reads progress and unlocks levels directly.
type LevelStore interface {
	Get() (entities.UserProgress, error)
	UnlockLevel(level string) (bool, error)
}

// XPFeed exposes the XP total and its change stream.
type XPFeed interface {
	Get() (int, error)
	Subscribe() (<-chan xp.Event, func())
}

// Pinger checks that the backing store is reachable.
type Pinger interface {
	Ping() error
}
