// Package sanitize turns free-form model output into structured values.
//
// Model responses are parsed in stages:
//
//  1. StripWrappers removes markdown code fences, <tags> and [OUT] markers.
//  2. ExtractObject / ExtractArray isolate the outermost bracketed span.
//  3. The span is decoded as JSON.
//  4. TextField picks the requested field, then "result".
//  5. When no JSON is found the stripped text itself is the answer.
package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mrlokans/audaroky/internal/entities"
)

// ErrMalformed is returned when no JSON array can be recovered from a response.
var ErrMalformed = errors.New("sanitize: malformed response")

var (
	fenceOpenRe = regexp.MustCompile("(?i)```[a-z]*")
	tagRe       = regexp.MustCompile(`<[^>]*>`)
	outMarkerRe = regexp.MustCompile(`\[/?OUT\]`)
)

// StripWrappers removes wrapper noise and trims the result.
func StripWrappers(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	s = tagRe.ReplaceAllString(s, "")
	s = outMarkerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExtractObject returns the span from the first '{' to the last '}'.
func ExtractObject(s string) (string, bool) {
	return extractSpan(s, '{', '}')
}

// ExtractArray returns the span from the first '[' to the last ']'.
func ExtractArray(s string) (string, bool) {
	return extractSpan(s, '[', ']')
}

func extractSpan(s string, open, closing byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// TextField extracts a single string answer. Fields are tried in order,
// then "result". Without a decodable object the stripped text is returned.
func TextField(raw string, fields ...string) string {
	if span, ok := ExtractObject(raw); ok {
		var obj map[string]any
		if err := json.Unmarshal([]byte(span), &obj); err == nil {
			if s := pickField(obj, fields); s != "" {
				return s
			}
			return pickField(obj, []string{"result"})
		}
	}
	return StripWrappers(raw)
}

func pickField(obj map[string]any, fields []string) string {
	for _, field := range fields {
		if s, ok := obj[field].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// QuizQuestions parses a JSON array of questions and keeps only entries with
// a non-empty question, exactly four string options and an integer answer
// index in [0,3]. The returned slice is never nil on success.
func QuizQuestions(raw string) ([]entities.QuizQuestion, error) {
	span, ok := ExtractArray(StripWrappers(raw))
	if !ok {
		return nil, ErrMalformed
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	questions := make([]entities.QuizQuestion, 0, len(items))
	for _, item := range items {
		if q, ok := parseQuestion(item); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func parseQuestion(item json.RawMessage) (entities.QuizQuestion, bool) {
	var obj map[string]any
	if err := json.Unmarshal(item, &obj); err != nil {
		return entities.QuizQuestion{}, false
	}

	question, ok := obj["question"].(string)
	if !ok || strings.TrimSpace(question) == "" {
		return entities.QuizQuestion{}, false
	}

	rawOptions, ok := obj["options"].([]any)
	if !ok || len(rawOptions) != entities.QuizOptionCount {
		return entities.QuizQuestion{}, false
	}
	options := make([]string, 0, len(rawOptions))
	for _, o := range rawOptions {
		s, ok := o.(string)
		if !ok {
			return entities.QuizQuestion{}, false
		}
		options = append(options, s)
	}

	index, ok := obj["correctAnswerIndex"].(float64)
	if !ok || index != math.Trunc(index) || index < 0 || index >= entities.QuizOptionCount {
		return entities.QuizQuestion{}, false
	}

	return entities.QuizQuestion{
		Question:           strings.TrimSpace(question),
		Options:            options,
		CorrectAnswerIndex: int(index),
	}, true
}
