package memory

import (
	"time"

	"github.com/harun/engram/pkg/classify"
	"github.com/harun/engram/pkg/textproc"
)

// conversationWindow is how long a conversation stays "active" for merging.
const conversationWindow = 2 * time.Hour

// groupStoplist is the short stoplist used only by conversation grouping.
// It is deliberately different from the normalizer's stopword set.
var groupStoplist = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "you": {}, "for": {}, "are": {}, "any": {},
	"can": {}, "had": {}, "her": {}, "was": {}, "one": {}, "our": {}, "out": {},
	"day": {}, "get": {}, "has": {}, "him": {}, "his": {}, "how": {}, "man": {},
	"new": {}, "now": {}, "old": {}, "see": {}, "two": {}, "way": {}, "who": {},
	"boy": {}, "did": {}, "its": {}, "let": {}, "put": {}, "say": {}, "she": {},
	"too": {}, "use": {},
}

// findActiveConversationLocked returns the most recent record sharing the
// candidate's conversation and source within the activity window, provided
// the grouping heuristic holds. Caller holds s.mu.
func (s *Store) findActiveConversationLocked(candidate *Record, now int64) *Record {
	var latest *Record
	for _, rec := range s.records {
		if now-rec.Timestamp >= conversationWindow.Milliseconds() {
			continue
		}
		if rec.ConversationID != candidate.ConversationID || rec.Source != candidate.Source {
			continue
		}
		if latest == nil || rec.Timestamp > latest.Timestamp {
			latest = rec
		}
	}
	if latest == nil {
		return nil
	}
	if shouldGroupInSameConversation(latest.Content, candidate.Content) {
		return latest
	}
	return nil
}

// shouldGroupInSameConversation decides whether two texts belong to the same
// conversation record. Same category always groups; otherwise any shared
// keyword or >15% relative overlap groups, and texts too short to yield
// keywords default to grouping.
func shouldGroupInSameConversation(a, b string) bool {
	if classify.Categorize(a) == classify.Categorize(b) {
		return true
	}

	keywordsA := groupKeywords(a)
	keywordsB := groupKeywords(b)
	if len(keywordsA) == 0 || len(keywordsB) == 0 {
		return true
	}

	shared, relative := textproc.Overlap(keywordsA, keywordsB)
	return shared >= 1 || relative > 0.15
}

// groupKeywords keeps words longer than two characters minus the grouping
// stoplist. Shorter words like "eat" and "buy" stay in on purpose.
func groupKeywords(text string) []string {
	words := textproc.CleanWords(text)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, ok := groupStoplist[w]; ok {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
