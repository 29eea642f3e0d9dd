package memory

import (
	"context"
	"sort"

	"github.com/harun/engram/pkg/textproc"
)

// Stats summarizes the collection: size, per-source counts and the age
// bounds. Timestamps are nil when the collection is empty.
type Stats struct {
	Total           int            `json:"total"`
	Sources         map[string]int `json:"sources"`
	OldestTimestamp *int64         `json:"oldestTimestamp"`
	NewestTimestamp *int64         `json:"newestTimestamp"`
}

// Stats returns collection statistics.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	defer s.mu.Unlock()

	stats := Stats{
		Total:   len(s.records),
		Sources: make(map[string]int),
	}
	for _, rec := range s.records {
		stats.Sources[rec.Source]++
		if stats.OldestTimestamp == nil || rec.Timestamp < *stats.OldestTimestamp {
			ts := rec.Timestamp
			stats.OldestTimestamp = &ts
		}
		if stats.NewestTimestamp == nil || rec.Timestamp > *stats.NewestTimestamp {
			ts := rec.Timestamp
			stats.NewestTimestamp = &ts
		}
	}
	return stats
}

// KeywordCount is one entry of the analytics keyword ranking.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Analytics is the richer collection breakdown used by dashboards and the
// CLI stats view.
type Analytics struct {
	TotalMemories    int            `json:"totalMemories"`
	Categories       map[string]int `json:"categories"`
	Platforms        map[string]int `json:"platforms"`
	Types            map[string]int `json:"types"`
	TimeDistribution map[string]int `json:"timeDistribution"`
	AvgMemoryLength  int            `json:"avgMemoryLength"`
	OldestTimestamp  *int64         `json:"oldestTimestamp"`
	NewestTimestamp  *int64         `json:"newestTimestamp"`
	TopKeywords      []KeywordCount `json:"topKeywords"`
}

// Analytics computes the breakdown over the current collection. Time
// distribution only buckets the last 30 days (today, this_week, this_month).
func (s *Store) Analytics(ctx context.Context, now int64) Analytics {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	defer s.mu.Unlock()

	a := Analytics{
		TotalMemories:    len(s.records),
		Categories:       make(map[string]int),
		Platforms:        make(map[string]int),
		Types:            make(map[string]int),
		TimeDistribution: make(map[string]int),
	}
	if len(s.records) == 0 {
		return a
	}

	totalLength := 0
	keywordCounts := make(map[string]int)
	for _, rec := range s.records {
		a.Categories[orDefault(rec.Category, "general")]++
		a.Platforms[orDefault(rec.Platform, "unknown")]++
		a.Types[orDefault(rec.Type, "memory")]++

		days := (now - rec.Timestamp) / (24 * 60 * 60 * 1000)
		switch {
		case days > 30:
			// outside the distribution window
		case days <= 1:
			a.TimeDistribution["today"]++
		case days <= 7:
			a.TimeDistribution["this_week"]++
		default:
			a.TimeDistribution["this_month"]++
		}

		totalLength += len(rec.Content)
		for _, word := range textproc.Tokenize(rec.Content) {
			if len(word) > 3 {
				keywordCounts[word]++
			}
		}

		if a.OldestTimestamp == nil || rec.Timestamp < *a.OldestTimestamp {
			ts := rec.Timestamp
			a.OldestTimestamp = &ts
		}
		if a.NewestTimestamp == nil || rec.Timestamp > *a.NewestTimestamp {
			ts := rec.Timestamp
			a.NewestTimestamp = &ts
		}
	}
	a.AvgMemoryLength = totalLength / len(s.records)

	keywords := make([]KeywordCount, 0, len(keywordCounts))
	for word, count := range keywordCounts {
		keywords = append(keywords, KeywordCount{Word: word, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})
	if len(keywords) > 20 {
		keywords = keywords[:20]
	}
	a.TopKeywords = keywords
	return a
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
