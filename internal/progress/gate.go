package progress

// QuizKind selects the pass rule applied to a finished quiz.
type QuizKind string

const (
	LevelTest QuizKind = "level"
	BookQuiz  QuizKind = "book"
)

const (
	// LevelTestPassScore is the number of correct answers a level test needs.
	LevelTestPassScore = 2
	// BookQuizPassPercent is the share of correct answers a book quiz needs.
	BookQuizPassPercent = 80
)

// Levels in unlock order.
var Levels = []string{"A", "B", "C"}

// NextLevel returns the level unlocked by passing a quiz at level.
func NextLevel(level string) (string, bool) {
	for i, l := range Levels {
		if l == level && i+1 < len(Levels) {
			return Levels[i+1], true
		}
	}
	return "", false
}

// ValidKind reports whether kind names a known quiz kind.
func ValidKind(kind QuizKind) bool {
	return kind == LevelTest || kind == BookQuiz
}

// Passed applies the pass rule for kind.
func Passed(kind QuizKind, score, total int) bool {
	if score < 0 || total < 0 || score > total {
		return false
	}
	switch kind {
	case LevelTest:
		return score >= LevelTestPassScore
	case BookQuiz:
		return total > 0 && score*100 >= total*BookQuizPassPercent
	}
	return false
}
