package classify

import (
	"regexp"
	"strings"
	"sync"
)

// skipPatterns match short acknowledgements, greetings and farewells that
// carry no information worth keeping.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(hello|hi|hey|thanks|thank you|ok|okay|yes|no|sure|maybe)$`),
	regexp.MustCompile(`(?i)^(how are you|what's up|how's it going)`),
	regexp.MustCompile(`(?i)^(goodbye|bye|see you|talk to you later)`),
	regexp.MustCompile(`(?i)^(i understand|i see|got it|makes sense|that's right|exactly|correct)$`),
	regexp.MustCompile(`(?i)^(please|sorry|excuse me|pardon|apologize)$`),
	regexp.MustCompile(`(?i)^(let me know|feel free|don't hesitate|happy to help)$`),
}

// genericOpeners match boilerplate assistant phrasing.
var genericOpeners = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(I'd be happy to help|I'm here to assist|I can help you with)`),
	regexp.MustCompile(`(?i)^(Is there anything else|Do you have any other questions|Would you like me to)`),
	regexp.MustCompile(`(?i)^(I hope this helps|Let me know if you need|Feel free to ask)`),
}

var (
	indicatorsOnce  sync.Once
	valueIndicators []*regexp.Regexp
)

// loadValueIndicators compiles the broad "valuable content" patterns: two
// embedded keyword tables plus numbered-list and bullet-glyph structure
// markers.
func loadValueIndicators() []*regexp.Regexp {
	indicatorsOnce.Do(func() {
		valueIndicators = []*regexp.Regexp{
			compileWordList("value_indicators_1.txt"),
			regexp.MustCompile(`\d+[.)]\s`),
			regexp.MustCompile(`•|▪|▫|‣|⁃`),
			compileWordList("value_indicators_2.txt"),
		}
	})
	return valueIndicators
}

// IsWorthSaving reports whether text carries enough substance to store:
// long enough, not a greeting or boilerplate opener, and either hitting a
// value indicator or exceeding 200 characters outright.
func IsWorthSaving(text string) bool {
	if len(text) < 30 {
		return false
	}
	trimmed := strings.TrimSpace(text)
	for _, p := range skipPatterns {
		if p.MatchString(trimmed) {
			return false
		}
	}
	for _, p := range genericOpeners {
		if p.MatchString(trimmed) {
			return false
		}
	}
	for _, p := range loadValueIndicators() {
		if p.MatchString(text) {
			return true
		}
	}
	return len(text) > 200
}
