package quizbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audaroky/internal/entities"
)

func TestBanksAreValid(t *testing.T) {
	check := func(t *testing.T, bank []entities.QuizQuestion) {
		t.Helper()
		for i, item := range bank {
			assert.True(t, item.Valid(), "question %d: %q", i, item.Question)
		}
	}

	for _, id := range Books() {
		t.Run(id, func(t *testing.T) {
			bank, ok := ForBook(id)
			require.True(t, ok)
			assert.Len(t, bank, 10)
			check(t, bank)
		})
	}

	t.Run("generic", func(t *testing.T) {
		bank := Generic()
		assert.Len(t, bank, 10)
		check(t, bank)
	})

	t.Run("level", func(t *testing.T) {
		bank := LevelTest("A")
		assert.Len(t, bank, 3)
		check(t, bank)
	})
}

func TestForBook_Unknown(t *testing.T) {
	bank, ok := ForBook("book-z")
	assert.False(t, ok)
	assert.Nil(t, bank)
}

func TestBooks(t *testing.T) {
	assert.Equal(t, []string{"book-a", "book-b", "book-c", "book-d", "book-e", "book-f"}, Books())
}

func TestReturnsCopies(t *testing.T) {
	bank, _ := ForBook("book-a")
	bank[0].Question = "changed"
	bank[0].Options[0] = "changed"

	again, _ := ForBook("book-a")
	assert.NotEqual(t, "changed", again[0].Question)
	assert.Equal(t, "Four years old", again[0].Options[0])

	generic := Generic()
	generic[1].Options[1] = "changed"
	assert.Equal(t, "went", Generic()[1].Options[1])
}
