package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffline_Lookup(t *testing.T) {
	d := NewRussian()

	tests := []struct {
		word     string
		expected string
		found    bool
	}{
		{"house", "дом", true},
		{"House", "дом", true},
		{"  HOUSE ", "дом", true},
		{"thank you", "спасибо", true},
		{"serendipity", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := d.Lookup(tt.word)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOffline_Language(t *testing.T) {
	assert.Equal(t, "ru", NewRussian().Language())
}

func TestNew_NormalizesKeys(t *testing.T) {
	d := New("es", map[string]string{" Cat ": "gato"})
	got, ok := d.Lookup("cat")
	assert.True(t, ok)
	assert.Equal(t, "gato", got)
	assert.Equal(t, 1, d.Len())
}

func TestOffline_Pairs(t *testing.T) {
	d := New("ru", map[string]string{"sun": "солнце", "cat": "кот"})
	assert.Equal(t, []Pair{{"cat", "кот"}, {"sun", "солнце"}}, d.Pairs())
}
