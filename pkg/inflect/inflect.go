package inflect

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits an identifier into lowercase words.
// Separators are '_', '.', '-' and whitespace; camel-case boundaries also start
// a new word ("HTTPServer" → "http", "server").
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)

	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words = append(words, strings.ToLower(b.String()))
			b.Reset()
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		b.WriteRune(r)
	}
	flush()

	return words
}

// Humanize converts an identifier into a label with only the first word
// capitalized. A trailing "id" word is dropped so foreign keys read naturally.
func Humanize(s string) string {
	words := Words(s)
	if len(words) > 1 && words[len(words)-1] == "id" {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}

	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

// Titleize capitalizes every word of the identifier.
func Titleize(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// Underscore converts an identifier into its snake_case form.
func Underscore(s string) string {
	return strings.Join(Words(s), "_")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '.' || r == '-' || unicode.IsSpace(r)
}
