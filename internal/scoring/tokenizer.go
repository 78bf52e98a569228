// internal/scoring/tokenizer.go
package scoring

import (
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`[^a-z0-9_\s]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// Tokenize lowercases the text, strips punctuation and splits on whitespace,
// keeping only tokens longer than two characters. Short noise words ("a",
// "of", "to") fall out for free.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = strings.TrimSpace(multiSpace.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return nil
	}

	parts := strings.Split(cleaned, " ")
	tokens := make([]string, 0, len(parts))
	for _, tok := range parts {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
