package classify

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

//go:embed rules/*.txt
var rulesFS embed.FS

// Labels outside the keyword tables.
const (
	CategoryStructured = "structured_conversation"
	CategoryGeneral    = "general"
)

// categoryOrder is the matching priority and is part of the contract:
// several tables overlap (e.g. "work" appears in more than one) and the
// first matching label wins.
var categoryOrder = []string{
	"customer_service",
	"coding",
	"business",
	"personal",
	"learning",
	"health",
	"finance",
}

type rule struct {
	label   string
	pattern *regexp.Regexp
}

var (
	rulesOnce sync.Once
	ruleList  []rule
)

// Categories returns the category labels in matching priority order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func loadRules() []rule {
	rulesOnce.Do(func() {
		ruleList = make([]rule, 0, len(categoryOrder))
		for _, label := range categoryOrder {
			ruleList = append(ruleList, rule{
				label:   label,
				pattern: compileWordList(label + ".txt"),
			})
		}
	})
	return ruleList
}

// compileWordList builds a case-insensitive pattern matching any phrase from
// the named embedded table at a word boundary. A missing or empty table is a
// packaging defect, hence the panic.
func compileWordList(name string) *regexp.Regexp {
	data, err := rulesFS.ReadFile("rules/" + name)
	if err != nil {
		panic(fmt.Sprintf("classify: embedded rule table %s: %v", name, err))
	}
	phrases := strings.Split(string(data), "\n")
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	if len(quoted) == 0 {
		panic(fmt.Sprintf("classify: embedded rule table %s is empty", name))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)`)
}
