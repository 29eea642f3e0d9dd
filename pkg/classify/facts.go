package classify

import (
	"regexp"
	"strings"
)

// factPatterns pick out first-person statements and biographical phrasing.
var factPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:I am|I'm|My name is|I work as|I live in|I'm from|I study|I like|I prefer|I hate|I love|I need|I want|I have) .+`),
	regexp.MustCompile(`(?i)(?:lives in|works as|studies|prefers|needs|has|is a|is an) .+`),
	regexp.MustCompile(`(?i)(?:birthday|anniversary|age|born) .+`),
	regexp.MustCompile(`(?i)(?:favorite|prefers|allergic to|vegetarian|vegan) .+`),
}

// ExtractKeyFacts scans text line by line for personal-fact statements.
// Matches between 16 and 199 characters are kept, deduplicated by exact
// string equality in first-seen order.
func ExtractKeyFacts(text string) []string {
	var facts []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(line)) <= 10 {
			continue
		}
		for _, p := range factPatterns {
			for _, match := range p.FindAllString(line, -1) {
				if len(match) <= 15 || len(match) >= 200 {
					continue
				}
				match = strings.TrimSpace(match)
				if _, ok := seen[match]; ok {
					continue
				}
				seen[match] = struct{}{}
				facts = append(facts, match)
			}
		}
	}
	return facts
}
