package entities

// StatField names a counter of UserStats that can be incremented.
type StatField string

const (
	StatWordsTranslated     StatField = "wordsTranslated"
	StatSentencesTranslated StatField = "sentencesTranslated"
	StatBooksCompleted      StatField = "booksCompleted"
	StatTestsPassed         StatField = "testsPassed"
	StatMinutesSpent        StatField = "minutesSpent"
)

// UserStats is the snapshot achievement predicates are evaluated against.
type UserStats struct {
	WordsTranslated     int `json:"wordsTranslated"`
	SentencesTranslated int `json:"sentencesTranslated"`
	BooksCompleted      int `json:"booksCompleted"`
	TestsPassed         int `json:"testsPassed"`
	TotalXP             int `json:"totalXP"`
	StreakDays          int `json:"streakDays"`
	MinutesSpent        int `json:"minutesSpent"`
}

// Counter returns a pointer to the counter named by field, or nil for unknown fields.
func (s *UserStats) Counter(field StatField) *int {
	switch field {
	case StatWordsTranslated:
		return &s.WordsTranslated
	case StatSentencesTranslated:
		return &s.SentencesTranslated
	case StatBooksCompleted:
		return &s.BooksCompleted
	case StatTestsPassed:
		return &s.TestsPassed
	case StatMinutesSpent:
		return &s.MinutesSpent
	}
	return nil
}

type Achievement struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	XPReward    int                  `json:"xpReward"`
	Predicate   func(UserStats) bool `json:"-"`
}
