package rank

import (
	"math"
	"sort"

	"github.com/harun/engram/pkg/textproc"
)

const (
	// MinQueryLen is the trimmed query length below which scoring is
	// bypassed and callers should return their collection unranked.
	MinQueryLen = 3

	// ScoreThreshold filters out documents with negligible relevance.
	ScoreThreshold = 0.05
)

// Hit is one ranked document: its index into the input corpus and its score.
type Hit struct {
	Index int
	Score float64
}

// Scores computes the TF-IDF relevance of every document against query.
// Documents are raw text (the store passes content joined with summary);
// both sides are normalized via textproc.Tokenize. The result has one score
// per input document, in input order.
func Scores(query string, docs []string) []float64 {
	scores := make([]float64, len(docs))
	if len(docs) == 0 {
		return scores
	}

	queryTerms := textproc.Tokenize(query)
	terms := make([][]string, len(docs))
	counts := make([]map[string]int, len(docs))
	for i, d := range docs {
		terms[i] = textproc.Tokenize(d)
		counts[i] = termFrequencies(terms[i])
	}

	// Document frequency per query term over this call's corpus.
	df := make(map[string]int, len(queryTerms))
	for _, t := range queryTerms {
		if _, done := df[t]; done {
			continue
		}
		n := 0
		for i := range docs {
			if counts[i][t] > 0 {
				n++
			}
		}
		df[t] = n
	}

	total := float64(len(docs))
	for i := range docs {
		var sum float64
		for _, t := range queryTerms {
			tf := float64(counts[i][t]) / math.Max(float64(len(terms[i])), 1)
			if df[t] == 0 {
				continue // idf defined as 0 for absent terms
			}
			sum += tf * math.Log(total/float64(df[t]))
		}
		scores[i] = sum / math.Max(float64(len(queryTerms)), 1)
	}
	return scores
}

// Rank scores docs against query, drops entries at or below threshold and
// returns the rest sorted by descending score. The sort is stable so ties
// keep corpus order. A negative threshold keeps everything.
func Rank(query string, docs []string, threshold float64) []Hit {
	scores := Scores(query, docs)
	hits := make([]Hit, 0, len(scores))
	for i, s := range scores {
		if s > threshold {
			hits = append(hits, Hit{Index: i, Score: s})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})
	return hits
}

func termFrequencies(terms []string) map[string]int {
	freq := make(map[string]int, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	return freq
}
