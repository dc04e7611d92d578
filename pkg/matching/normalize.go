package matching

import (
	"strings"
	"unicode"
)

// NormalizePhrase lower-cases a symptom phrase, strips punctuation, and
// collapses whitespace so that "Sore-Throat!" and "sore throat" compare
// equal.
func NormalizePhrase(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// Tokenize splits a phrase into normalized whitespace-delimited tokens.
func Tokenize(s string) []string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, s)
	return strings.Fields(mapped)
}

// TokenSet collects the tokens of every phrase into one lookup set,
// representing the combined reported-symptom text.
func TokenSet(phrases ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, phrase := range phrases {
		for _, token := range Tokenize(phrase) {
			set[token] = struct{}{}
		}
	}
	return set
}

// PhraseSatisfied reports whether every token of the catalog phrase appears
// in the reported token set. Whole-token containment, not substring search:
// "ear" must not match "near".
func PhraseSatisfied(phrase string, reported map[string]struct{}) bool {
	tokens := Tokenize(phrase)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if _, ok := reported[token]; !ok {
			return false
		}
	}
	return true
}
