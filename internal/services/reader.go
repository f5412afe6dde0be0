package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/mrlokans/audaroky/internal/dictionary"
	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/progress"
	"github.com/mrlokans/audaroky/internal/quizbank"
	"github.com/mrlokans/audaroky/internal/translator"
	"github.com/mrlokans/audaroky/internal/xp"
)

// MinGeneratedQuestions is the fewest generated questions a book quiz accepts
// before falling back to the authored bank.
const MinGeneratedQuestions = 5

// MaxQuizSourceChars bounds the book text sent for quiz generation.
const MaxQuizSourceChars = 2000

const DefaultMatchPairs = 6

var ErrInvalidQuiz = errors.New("invalid quiz submission")

// ReaderDeps wires a Reader. Logger and Shuffle are optional.
type ReaderDeps struct {
	Translator   Translator
	Credentials  CredentialChecker
	XP           XPLedger
	Stats        StatsRecorder
	Achievements AchievementChecker
	Streak       StreakUpdater
	Progress     ProgressTracker
	Pairs        PairSource
	Logger       *zap.Logger
	Shuffle      func(n int, swap func(i, j int))
}

// Reader implements the reading screens: word and sentence lookups, chapter
// completion, quizzes and the rewards attached to each.
type Reader struct {
	deps   ReaderDeps
	guard  translator.SelectionGuard
	logger *zap.Logger
}

func NewReader(deps ReaderDeps) *Reader {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Shuffle == nil {
		deps.Shuffle = rand.Shuffle
	}
	return &Reader{deps: deps, logger: deps.Logger}
}

// StartSession records today's activity and unlocks streak achievements.
func (r *Reader) StartSession() (SessionResult, error) {
	res, err := r.deps.Streak.Update()
	if err != nil {
		return SessionResult{}, fmt.Errorf("update streak: %w", err)
	}
	out := SessionResult{StreakDays: res.StreakDays, Changed: res.Changed}
	if !res.Changed {
		return out, nil
	}

	stats, err := r.deps.Stats.Get()
	if err != nil {
		return out, err
	}
	out.Achievements, err = r.deps.Achievements.Check(stats)
	return out, err
}

// TranslateWord translates a clicked word. Answers available offline are
// returned even without a credential.
func (r *Reader) TranslateWord(ctx context.Context, word, contextSentence, lang string) (WordResult, error) {
	word = strings.TrimSpace(word)
	if lang == "" {
		lang = translator.DefaultLanguage
	}
	ticket := r.guard.Begin(translator.WordFingerprint(word, lang))
	out := WordResult{Word: word, Status: StatusFailed}

	result, ok := r.deps.Translator.Lookup(word, lang)
	if !ok {
		if !r.deps.Credentials.HasAPIKey() {
			out.Translation = entities.MissingAPIKey
			out.Status = StatusCredentialMissing
			out.Stale = !r.guard.Current(ticket)
			return out, nil
		}
		result = r.deps.Translator.TranslateWord(ctx, word, contextSentence, lang)
	}

	out.Stale = !r.guard.Current(ticket)
	if result.Translation == "" {
		return out, nil
	}
	out.Translation = result.Translation
	out.Status = StatusOK

	reward, err := r.award(xp.RewardWord, entities.StatWordsTranslated)
	if err != nil {
		return out, err
	}
	out.Reward = &reward
	return out, nil
}

// LoadSentence translates a sentence and explains its grammar concurrently.
// Each half degrades to empty on its own. Cached answers are served without a
// credential.
func (r *Reader) LoadSentence(ctx context.Context, sentence, lang string) (SentenceResult, error) {
	sentence = strings.TrimSpace(sentence)
	if lang == "" {
		lang = translator.DefaultLanguage
	}
	out := SentenceResult{Sentence: sentence, Status: StatusFailed}
	if sentence == "" {
		return out, nil
	}

	if !r.deps.Credentials.HasAPIKey() {
		cached, ok := r.deps.Translator.CachedSentence(sentence, lang)
		if !ok {
			out.Translation = entities.MissingAPIKey
			out.Status = StatusCredentialMissing
			return out, nil
		}
		out.Translation = cached.Translation
		if grammar, ok := r.deps.Translator.CachedGrammar(sentence, lang); ok {
			out.Grammar = grammar.Grammar
		}
	} else {
		var wg conc.WaitGroup
		wg.Go(func() {
			out.Translation = r.deps.Translator.TranslateSentence(ctx, sentence, lang).Translation
		})
		wg.Go(func() {
			out.Grammar = r.deps.Translator.ExplainGrammar(ctx, sentence, lang).Grammar
		})
		wg.Wait()
	}

	if out.Translation == "" {
		return out, nil
	}
	out.Status = StatusOK
	reward, err := r.award(xp.RewardSentence, entities.StatSentencesTranslated)
	if err != nil {
		return out, err
	}
	out.Reward = &reward
	return out, nil
}

// FinishChapter advances book progress and grants the chapter reward.
func (r *Reader) FinishChapter(bookID string, chapterIndex, totalChapters int) (ChapterResult, error) {
	book, err := r.deps.Progress.UpdateBookProgress(bookID, chapterIndex, totalChapters)
	if err != nil {
		return ChapterResult{}, err
	}
	reward, err := r.award(xp.RewardChapter, "")
	if err != nil {
		return ChapterResult{Book: book}, err
	}
	return ChapterResult{Book: book, Reward: reward}, nil
}

// BookQuiz generates a quiz from the book text, falling back to the authored
// bank when too few usable questions come back.
func (r *Reader) BookQuiz(ctx context.Context, bookID, text string) QuizSet {
	text = strings.TrimSpace(text)
	if text != "" && r.deps.Credentials.HasAPIKey() {
		if runes := []rune(text); len(runes) > MaxQuizSourceChars {
			text = string(runes[:MaxQuizSourceChars])
		}
		generated := r.deps.Translator.GenerateTestQuestions(ctx, text, translator.DefaultQuizCount)
		if len(generated) >= MinGeneratedQuestions {
			return QuizSet{Source: SourceGenerated, Questions: generated}
		}
		r.logger.Info("using authored quiz", zap.String("book_id", bookID), zap.Int("generated", len(generated)))
	}

	if bank, ok := quizbank.ForBook(bookID); ok {
		return QuizSet{Source: SourceBook, Questions: bank}
	}
	return QuizSet{Source: SourceGeneric, Questions: quizbank.Generic()}
}

// LevelQuiz returns the placement quiz for level.
func (r *Reader) LevelQuiz(level string) QuizSet {
	return QuizSet{Source: SourceLevel, Questions: quizbank.LevelTest(level)}
}

// SubmitQuiz scores a finished quiz. A pass grants the test reward and unlocks
// the level after sub.Level; a passed book quiz also counts the book as read.
func (r *Reader) SubmitQuiz(sub QuizSubmission) (QuizOutcome, error) {
	kind := progress.QuizKind(sub.Kind)
	if !progress.ValidKind(kind) || sub.Total <= 0 || sub.Score < 0 || sub.Score > sub.Total {
		return QuizOutcome{}, fmt.Errorf("%w: %s %d/%d", ErrInvalidQuiz, sub.Kind, sub.Score, sub.Total)
	}
	if !progress.Passed(kind, sub.Score, sub.Total) {
		return QuizOutcome{}, nil
	}

	out := QuizOutcome{Passed: true}
	if next, ok := progress.NextLevel(sub.Level); ok {
		if _, err := r.deps.Progress.UnlockLevel(next); err != nil {
			return out, err
		}
		out.UnlockedLevel = next
	}

	total, err := r.deps.XP.Add(xp.RewardTest)
	if err != nil {
		return out, err
	}
	reward := Reward{XP: xp.RewardTest, TotalXP: total}

	var stats entities.UserStats
	if kind == progress.BookQuiz {
		stats, err = r.deps.Stats.Update(func(s *entities.UserStats) {
			s.TestsPassed++
			s.BooksCompleted++
		})
	} else {
		stats, err = r.deps.Stats.Get()
	}
	if err != nil {
		return out, err
	}

	if reward.Achievements, err = r.check(stats, &reward); err != nil {
		return out, err
	}
	out.Reward = &reward
	return out, nil
}

// CompleteMatchGame grants the match game bonus.
func (r *Reader) CompleteMatchGame() (Reward, error) {
	return r.award(xp.RewardMatchGame, "")
}

// MatchPairs picks n random pairs for a new match game.
func (r *Reader) MatchPairs(n int) []dictionary.Pair {
	if r.deps.Pairs == nil {
		return nil
	}
	pairs := r.deps.Pairs.Pairs()
	if n <= 0 {
		n = DefaultMatchPairs
	}
	r.deps.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	if n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// Dashboard collects everything the profile screen shows.
func (r *Reader) Dashboard() (Dashboard, error) {
	var d Dashboard
	var err error

	if d.XP, err = r.deps.XP.Get(); err != nil {
		return d, err
	}
	if d.Stats, err = r.deps.Stats.Get(); err != nil {
		return d, err
	}
	if d.Progress, err = r.deps.Progress.Get(); err != nil {
		return d, err
	}
	if d.Unlocked, err = r.deps.Achievements.Unlocked(); err != nil {
		return d, err
	}
	if d.Unlocked == nil {
		d.Unlocked = []string{}
	}
	d.Achievements = r.deps.Achievements.Catalog()
	return d, nil
}

// award adds amount XP, bumps field when set and evaluates achievements.
func (r *Reader) award(amount int, field entities.StatField) (Reward, error) {
	total, err := r.deps.XP.Add(amount)
	if err != nil {
		return Reward{}, err
	}
	reward := Reward{XP: amount, TotalXP: total}

	var stats entities.UserStats
	if field != "" {
		stats, err = r.deps.Stats.Increment(field, 1)
	} else {
		stats, err = r.deps.Stats.Update(func(*entities.UserStats) {})
	}
	if err != nil {
		return reward, err
	}

	reward.Achievements, err = r.check(stats, &reward)
	return reward, err
}

func (r *Reader) check(stats entities.UserStats, reward *Reward) ([]entities.Achievement, error) {
	unlocked, err := r.deps.Achievements.Check(stats)
	if err != nil {
		return unlocked, fmt.Errorf("check achievements: %w", err)
	}
	for _, a := range unlocked {
		reward.TotalXP += a.XPReward
	}
	return unlocked, nil
}
