// Package dictionary provides the bundled offline word list consulted before
// any network translation.
package dictionary

import (
	"sort"
	"strings"
)

// Pair is one source word with its translation.
type Pair struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
}

// Offline is a read-only word table for a single target language.
type Offline struct {
	language string
	entries  map[string]string
}

// New builds a table for language. Keys are normalized like lookups.
func New(language string, entries map[string]string) *Offline {
	normalized := make(map[string]string, len(entries))
	for word, translation := range entries {
		normalized[normalize(word)] = translation
	}
	return &Offline{language: language, entries: normalized}
}

// NewRussian returns the bundled English to Russian table.
func NewRussian() *Offline {
	return New("ru", russianWords)
}

func (d *Offline) Language() string {
	return d.language
}

// Lookup is case-insensitive and ignores surrounding whitespace.
func (d *Offline) Lookup(word string) (string, bool) {
	translation, ok := d.entries[normalize(word)]
	return translation, ok
}

func (d *Offline) Len() int {
	return len(d.entries)
}

// Pairs returns all entries sorted by word.
func (d *Offline) Pairs() []Pair {
	pairs := make([]Pair, 0, len(d.entries))
	for word, translation := range d.entries {
		pairs = append(pairs, Pair{Word: word, Translation: translation})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Word < pairs[j].Word })
	return pairs
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
