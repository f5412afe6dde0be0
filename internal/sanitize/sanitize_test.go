package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audaroky/internal/entities"
)

func TestStripWrappers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "  дом  ", "дом"},
		{"json fence", "```json\n{\"translation\":\"дом\"}\n```", `{"translation":"дом"}`},
		{"uppercase fence", "```JSON\n[1]\n```", "[1]"},
		{"bare fence", "```\nhello\n```", "hello"},
		{"tags", "<b>дом</b>", "дом"},
		{"out markers", "[OUT]дом[/OUT]", "дом"},
		{"everything", "[OUT]```json\n<p>x</p>```[/OUT]", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripWrappers(tt.input))
		})
	}
}

func TestExtractSpans(t *testing.T) {
	span, ok := ExtractObject(`Sure! {"a":{"b":1}} hope it helps`)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":1}}`, span)

	_, ok = ExtractObject("no braces")
	assert.False(t, ok)

	_, ok = ExtractObject("} backwards {")
	assert.False(t, ok)

	span, ok = ExtractArray(`Here: [1, [2], 3] done`)
	require.True(t, ok)
	assert.Equal(t, `[1, [2], 3]`, span)
}

func TestTextField(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fields   []string
		expected string
	}{
		{"named field", `{"translation": "дом"}`, []string{"translation"}, "дом"},
		{"fenced object", "```json\n{\"translation\": \" дом \"}\n```", []string{"translation"}, "дом"},
		{"result fallback", `{"result": "дом"}`, []string{"translation"}, "дом"},
		{"grammar field", `{"grammar": "Past simple."}`, []string{"grammar"}, "Past simple."},
		{"object without field", `{"other": "x"}`, []string{"translation"}, ""},
		{"non string field", `{"translation": 5}`, []string{"translation"}, ""},
		{"plain text", "  дом ", []string{"translation"}, "дом"},
		{"broken json falls back to text", `[OUT]{translation: дом}[/OUT]`, []string{"translation"}, "{translation: дом}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TextField(tt.raw, tt.fields...))
		})
	}
}

func TestQuizQuestions(t *testing.T) {
	t.Run("valid array in fences", func(t *testing.T) {
		raw := "```json\n[{\"question\":\"Q1\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctAnswerIndex\":2}]\n```"
		qs, err := QuizQuestions(raw)
		require.NoError(t, err)
		assert.Equal(t, []entities.QuizQuestion{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswerIndex: 2},
		}, qs)
	})

	t.Run("invalid entries dropped", func(t *testing.T) {
		raw := `[
			{"question":"ok","options":["a","b","c","d"],"correctAnswerIndex":0},
			{"question":"three options","options":["a","b","c"],"correctAnswerIndex":0},
			{"question":"index out of range","options":["a","b","c","d"],"correctAnswerIndex":4},
			{"question":"negative","options":["a","b","c","d"],"correctAnswerIndex":-1},
			{"question":"fractional","options":["a","b","c","d"],"correctAnswerIndex":1.5},
			{"question":"string index","options":["a","b","c","d"],"correctAnswerIndex":"1"},
			{"question":"","options":["a","b","c","d"],"correctAnswerIndex":0},
			{"options":["a","b","c","d"],"correctAnswerIndex":0},
			{"question":"numeric option","options":["a","b",3,"d"],"correctAnswerIndex":0},
			"not an object"
		]`
		qs, err := QuizQuestions(raw)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "ok", qs[0].Question)
		for _, q := range qs {
			assert.True(t, q.Valid())
		}
	})

	t.Run("all invalid gives empty slice", func(t *testing.T) {
		qs, err := QuizQuestions(`[{"question":"x"}]`)
		require.NoError(t, err)
		assert.NotNil(t, qs)
		assert.Empty(t, qs)
	})

	t.Run("no array", func(t *testing.T) {
		_, err := QuizQuestions("I cannot help with that")
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("broken array", func(t *testing.T) {
		_, err := QuizQuestions(`[{"question": }]`)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
