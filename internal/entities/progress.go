package entities

type BookProgress struct {
	BookID         string `json:"bookId"`
	CurrentChapter int    `json:"currentChapter"`
	TotalChapters  int    `json:"totalChapters"`
	IsCompleted    bool   `json:"isCompleted"`
}

type UserProgress struct {
	UnlockedLevels []string                `json:"unlockedLevels"`
	Books          map[string]BookProgress `json:"books"`
}

// DefaultProgress is the state of a reader who has not opened anything yet.
func DefaultProgress() UserProgress {
	return UserProgress{
		UnlockedLevels: []string{"A"},
		Books:          map[string]BookProgress{},
	}
}

// HasLevel reports whether level is among the unlocked levels.
func (p UserProgress) HasLevel(level string) bool {
	for _, l := range p.UnlockedLevels {
		if l == level {
			return true
		}
	}
	return false
}
