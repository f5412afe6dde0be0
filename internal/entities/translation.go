package entities

// MissingAPIKey is returned in place of a translation when no credential is stored.
const MissingAPIKey = "MISSING_API_KEY"

// QuizOptionCount is the exact number of options every quiz question carries.
const QuizOptionCount = 4

type TranslationResult struct {
	Translation string `json:"translation"`
}

type GrammarResult struct {
	Grammar string `json:"grammar"`
}

// QuizQuestion is a multiple-choice question with exactly four options.
type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// Valid reports whether the question is usable by a quiz screen.
func (q QuizQuestion) Valid() bool {
	if q.Question == "" || len(q.Options) != QuizOptionCount {
		return false
	}
	return q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < QuizOptionCount
}
