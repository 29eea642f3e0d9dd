package classify

import (
	"encoding/json"
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Categorize returns the category label for text. Text that parses as a JSON
// object carrying both "user" and "ai_output" fields is labelled
// structured_conversation; otherwise the keyword tables are tried in priority
// order and the first hit wins.
func Categorize(text string) string {
	var structured struct {
		User     json.RawMessage `json:"user"`
		AIOutput json.RawMessage `json:"ai_output"`
	}
	if err := json.Unmarshal([]byte(text), &structured); err == nil {
		if present(structured.User) && present(structured.AIOutput) {
			return CategoryStructured
		}
	}
	for _, r := range loadRules() {
		if r.pattern.MatchString(text) {
			return r.label
		}
	}
	return CategoryGeneral
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// Summarize derives a short summary: short text passes through, otherwise
// the first and last substantial sentences are joined, falling back to a
// plain prefix when the text has too few sentences or the join runs long.
func Summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= 100 {
		return text
	}

	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, s := range parts {
		if len(strings.TrimSpace(s)) > 10 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) <= 2 {
		return prefix(runes, 150) + "..."
	}

	first := strings.TrimSpace(sentences[0])
	last := strings.TrimSpace(sentences[len(sentences)-1])
	summary := first + "... " + last
	if len([]rune(summary)) > 200 {
		return prefix(runes, 200) + "..."
	}
	return summary
}

func prefix(runes []rune, n int) string {
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n])
}
