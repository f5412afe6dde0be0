package translator

import "fmt"

// MaxQuizSourceRunes bounds the passage embedded in a quiz prompt.
const MaxQuizSourceRunes = 1500

func wordPrompt(word, contextSentence, lang string) string {
	name := LanguageName(lang)
	ctx := ""
	if contextSentence != "" {
		ctx = fmt.Sprintf(" Context: %q.", contextSentence)
	}
	return fmt.Sprintf(`Translate the English word %q to %s.%s
Respond with ONLY a JSON object: {"translation": "your_translation_here"}.
Do not explain.`, word, name, ctx)
}

func sentencePrompt(sentence, lang string) string {
	name := LanguageName(lang)
	return fmt.Sprintf(`Translate this English sentence to %s: %q.
Respond with ONLY the %s translation, nothing else.`, name, sentence, name)
}

func grammarPrompt(sentence, lang string) string {
	name := LanguageName(lang)
	return fmt.Sprintf(`Explain the grammar of this sentence briefly in English AND %s (max 3 sentences total): %q.
Give the English explanation first, then its %s translation.
Respond with ONLY the explanation text, no tags.`, name, sentence, name)
}

func quizPrompt(text string, count int) string {
	return fmt.Sprintf(`You are writing a vocabulary and reading comprehension test for English learners.

Source text: %q

Write %d multiple choice questions mixing these kinds:
- Vocabulary: "What does 'word' mean?"
- Comprehension: "What happened in the story?"
- Grammar: "Which sentence is correct?"

IMPORTANT: respond with ONLY a JSON array and no other text, in this format:
[{"question": "...", "options": ["A", "B", "C", "D"], "correctAnswerIndex": 0}]

Every question must have exactly 4 options. correctAnswerIndex is an integer from 0 to 3.`, truncateRunes(text, MaxQuizSourceRunes), count)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
