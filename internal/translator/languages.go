package translator

import "unicode"

// DefaultLanguage is the target language when a caller does not name one.
const DefaultLanguage = "ru"

var languageNames = map[string]string{
	"ru": "Russian",
	"kz": "Kazakh",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"tr": "Turkish",
	"pt": "Portuguese",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
}

// Target languages written in a non-Latin script. A translation into one of
// these that contains none of the script's letters is an untranslated echo.
var languageScripts = map[string][]*unicode.RangeTable{
	"ru": {unicode.Cyrillic},
	"kz": {unicode.Cyrillic},
	"zh": {unicode.Han},
	"ja": {unicode.Hiragana, unicode.Katakana, unicode.Han},
	"ko": {unicode.Hangul},
}

// LanguageName returns the English display name for code, or code itself.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Languages returns the supported language codes and names.
func Languages() map[string]string {
	out := make(map[string]string, len(languageNames))
	for k, v := range languageNames {
		out[k] = v
	}
	return out
}

// hasScript reports whether lang uses a non-Latin script and s contains at least one letter of it.
func hasScript(lang, s string) (nonLatin bool, found bool) {
	tables, ok := languageScripts[lang]
	if !ok {
		return false, false
	}
	for _, r := range s {
		if unicode.IsOneOf(tables, r) {
			return true, true
		}
	}
	return true, false
}
