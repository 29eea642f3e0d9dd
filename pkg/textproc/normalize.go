package textproc

import (
	"strings"
	"unicode"
)

// stopwords is the fixed set removed by Tokenize. Words of length <= 2 are
// filtered before this set applies, so the short entries are unreachable but
// kept for completeness.
var stopwords = makeSet([]string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "shall",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "its", "our", "their", "this", "that", "these", "those",
	"what", "where", "when", "why", "how", "which", "who", "whom", "whose",
	"if", "then", "else", "so", "because", "since", "while", "during", "before", "after",
	"above", "below", "up", "down", "out", "off", "over", "under", "again", "further",
	"once", "here", "there", "everywhere", "anywhere", "somewhere", "nowhere",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "than", "too", "very", "just", "now",
})

func makeSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// CleanWords lowercases text, replaces every non-word character (anything
// outside ASCII letters, digits and underscore) with a space and splits on
// whitespace. No length or stopword filtering is applied.
func CleanWords(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))
	return strings.Fields(cleaned)
}

// Tokenize normalizes text into scoring terms: CleanWords minus tokens of
// length <= 2 and minus the stopword set. Empty input yields nil.
func Tokenize(text string) []string {
	words := CleanWords(text)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// RawWords lowercases and splits on whitespace only. This is the loose
// tokenization used for duplicate detection; punctuation stays attached.
func RawWords(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
