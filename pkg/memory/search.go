package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/harun/engram/pkg/rank"
)

// Filters narrows Search before scoring. Empty or "all" values are ignored.
type Filters struct {
	Category  string
	Platform  string
	Type      string
	DateRange string // today, week, month or year
}

// dateRanges maps a bucket name to its lookback span.
var dateRanges = map[string]time.Duration{
	"today": 24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
}

// Search applies the equality and date filters, then ranks the remainder
// against the query. Without query text the filtered records come back
// sorted by timestamp, newest first. Unlike Query, Search does not cap the
// result count.
func (s *Store) Search(ctx context.Context, query string, filters Filters) []ScoredRecord {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	records := s.cloneAllLocked()
	s.mu.Unlock()

	filtered := records[:0]
	now := time.Now().UnixMilli()
	var cutoff int64
	if span, ok := dateRanges[filters.DateRange]; ok {
		cutoff = now - span.Milliseconds()
	}
	for _, rec := range records {
		if !filterMatch(filters.Category, rec.Category) {
			continue
		}
		if !filterMatch(filters.Platform, rec.Platform) {
			continue
		}
		if !filterMatch(filters.Type, rec.Type) {
			continue
		}
		if cutoff > 0 && rec.Timestamp < cutoff {
			continue
		}
		filtered = append(filtered, rec)
	}

	if strings.TrimSpace(query) != "" {
		docs := make([]string, len(filtered))
		for i, rec := range filtered {
			docs[i] = rec.Content + " " + rec.Summary
		}
		hits := rank.Rank(query, docs, rank.ScoreThreshold)
		out := make([]ScoredRecord, len(hits))
		for i, h := range hits {
			out[i] = ScoredRecord{Record: *filtered[h.Index], Score: h.Score}
		}
		return out
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		return filtered[a].Timestamp > filtered[b].Timestamp
	})
	out := make([]ScoredRecord, len(filtered))
	for i, rec := range filtered {
		out[i] = ScoredRecord{Record: *rec}
	}
	return out
}

func filterMatch(want, have string) bool {
	return want == "" || want == "all" || want == have
}
