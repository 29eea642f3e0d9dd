package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/harun/engram/pkg/textproc"
)

// Deduplicate drops records whose content signature repeats, keeping the
// first occurrence in current order. It persists only when something was
// removed and returns the removed and remaining counts.
func (s *Store) Deduplicate(ctx context.Context) (removed, remaining int) {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)

	initial := len(s.records)
	seen := make(map[string]struct{}, initial)
	kept := s.records[:0]
	for _, rec := range s.records {
		sig := signature(rec)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		kept = append(kept, rec)
	}
	s.records = kept
	removed = initial - len(kept)
	remaining = len(kept)

	var snapshot []byte
	if removed > 0 {
		snapshot = s.snapshotLocked()
	}
	s.mu.Unlock()

	if removed > 0 {
		s.persist(ctx, snapshot)
		s.logger.Info().Int("removed", removed).Int("remaining", remaining).Msg("Deduplicated collection")
	}
	return removed, remaining
}

// signature reduces a record to its first ten normalized tokens, sorted, so
// near-identical content collapses to the same key.
func signature(rec *Record) string {
	tokens := textproc.Tokenize(rec.Content)
	if len(tokens) > 10 {
		tokens = tokens[:10]
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}
