package memory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/harun/engram/pkg/blob"
	"github.com/harun/engram/pkg/classify"
	"github.com/harun/engram/pkg/rank"
	"github.com/harun/engram/pkg/textproc"
)

const (
	// DefaultMaxRecords bounds the collection; the oldest records are
	// evicted first.
	DefaultMaxRecords = 1000

	// DefaultBlobKey is the single opaque key the collection persists
	// under.
	DefaultBlobKey = "engram_data"

	// DefaultQueryLimit caps Query results when the caller passes no
	// limit.
	DefaultQueryLimit = 5
)

// Config configures a Store. Blob and Context are required.
type Config struct {
	Blob       blob.Store
	Context    ContextProvider
	Key        string
	MaxRecords int
	Logger     zerolog.Logger
}

// Store owns the in-memory collection and its write-back to the blob store.
type Store struct {
	mu      sync.Mutex
	blob    blob.Store
	ctxp    ContextProvider
	key     string
	max     int
	logger  zerolog.Logger
	loaded  bool
	records []*Record
}

// ScoredRecord pairs a record copy with its relevance score.
type ScoredRecord struct {
	Record Record
	Score  float64
}

// New creates a Store. The collection is loaded lazily on first use.
func New(cfg Config) (*Store, error) {
	if cfg.Blob == nil {
		return nil, errors.New("memory: blob store is required")
	}
	if cfg.Context == nil {
		return nil, errors.New("memory: context provider is required")
	}
	if cfg.Key == "" {
		cfg.Key = DefaultBlobKey
	}
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = DefaultMaxRecords
	}
	return &Store{
		blob:   cfg.Blob,
		ctxp:   cfg.Context,
		key:    cfg.Key,
		max:    cfg.MaxRecords,
		logger: cfg.Logger.With().Str("component", "memory-store").Logger(),
	}, nil
}

// ensureLoadedLocked lazily loads the persisted collection. Any load or
// decode failure degrades to an empty collection; the caller never sees it.
func (s *Store) ensureLoadedLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := s.blob.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load collection, starting empty")
		return
	}
	if len(data) == 0 {
		return
	}
	var records []*Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Msg("Stored collection unreadable, starting empty")
		return
	}
	// Tolerate hand-edited blobs: drop null entries.
	s.records = s.records[:0]
	for _, r := range records {
		if r != nil {
			s.records = append(s.records, r)
		}
	}
	s.logger.Debug().Int("count", len(s.records)).Msg("Loaded collection")
}

// Reload discards the in-memory collection and re-reads the blob on next
// access. Used when a watcher reports external modification.
func (s *Store) Reload() {
	s.mu.Lock()
	s.loaded = false
	s.records = nil
	s.mu.Unlock()
}

// snapshotLocked serializes the current collection for write-back.
func (s *Store) snapshotLocked() []byte {
	data, err := json.Marshal(s.records)
	if err != nil {
		// Records are plain JSON-safe values; this cannot happen with
		// well-formed Extra metadata.
		s.logger.Error().Err(err).Msg("Failed to serialize collection")
		return nil
	}
	return data
}

// persist performs the single write-back. Failures are logged and swallowed;
// the in-memory collection stays authoritative for the session.
func (s *Store) persist(ctx context.Context, snapshot []byte) {
	if snapshot == nil {
		return
	}
	if err := s.blob.Set(ctx, s.key, snapshot); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist collection")
	}
}

// Save stores content as a new record, or merges it into the active
// conversation, or drops it as a duplicate. It returns the stored record
// (the merged one when merging) or nil when nothing was stored.
func (s *Store) Save(ctx context.Context, content string, metadata map[string]any) *Record {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)

	now := time.Now().UnixMilli()
	location := s.ctxp.Location()
	candidate := &Record{
		ID:             newID(now),
		Content:        content,
		Timestamp:      now,
		Source:         s.ctxp.Source(),
		URL:            location,
		ConversationID: DeriveConversationID(location),
		Category:       classify.Categorize(content),
		Summary:        classify.Summarize(content),
	}
	candidate.applyMetadata(metadata)

	if s.isDuplicateLocked(candidate) {
		s.mu.Unlock()
		s.logger.Debug().Msg("Skipping duplicate memory")
		return nil
	}

	if existing := s.findActiveConversationLocked(candidate, now); existing != nil {
		existing.Content += "\n\n" + candidate.Content
		existing.Timestamp = now
		existing.LastUpdated = now
		existing.Category = classify.Categorize(existing.Content)
		existing.Summary = classify.Summarize(existing.Content)
		result := existing.Clone()
		snapshot := s.snapshotLocked()
		s.mu.Unlock()

		s.persist(ctx, snapshot)
		s.logger.Debug().Str("id", result.ID).Msg("Appended to active conversation")
		return result
	}

	s.records = append([]*Record{candidate}, s.records...)
	if len(s.records) > s.max {
		s.records = s.records[:s.max]
	}
	result := candidate.Clone()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.logger.Debug().Str("id", result.ID).Str("category", result.Category).Msg("Saved new memory")
	return result
}

// isDuplicateLocked applies the duplicate rule: exact content equality or
// raw-word Jaccard similarity above 0.9 against any stored record. The loose
// RawWords tokenization here is intentional; see textproc.
func (s *Store) isDuplicateLocked(candidate *Record) bool {
	candidateWords := textproc.RawWords(candidate.Content)
	for _, rec := range s.records {
		if rec.Content == candidate.Content {
			return true
		}
		if textproc.Jaccard(textproc.RawWords(rec.Content), candidateWords) > 0.9 {
			return true
		}
	}
	return false
}

// Query returns the most relevant records for text, ranked by TF-IDF over
// the live collection. Queries shorter than three characters return the
// newest records unranked.
func (s *Store) Query(ctx context.Context, query string, limit int) []ScoredRecord {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	records := s.cloneAllLocked()
	s.mu.Unlock()

	if len(strings.TrimSpace(query)) < rank.MinQueryLen {
		if len(records) > limit {
			records = records[:limit]
		}
		out := make([]ScoredRecord, len(records))
		for i, rec := range records {
			out[i] = ScoredRecord{Record: *rec}
		}
		return out
	}

	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = rec.Content + " " + rec.Summary
	}
	hits := rank.Rank(query, docs, rank.ScoreThreshold)
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]ScoredRecord, len(hits))
	for i, h := range hits {
		out[i] = ScoredRecord{Record: *records[h.Index], Score: h.Score}
	}
	return out
}

// GetAll returns a defensive copy of the full collection, newest first.
func (s *Store) GetAll(ctx context.Context) []Record {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	records := s.cloneAllLocked()
	s.mu.Unlock()

	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = *rec
	}
	return out
}

// DeleteByID removes the record with the given id and reports whether
// anything was removed.
func (s *Store) DeleteByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)

	kept := s.records[:0]
	removed := false
	for _, rec := range s.records {
		if rec.ID == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	if !removed {
		s.mu.Unlock()
		return false
	}
	s.records = kept
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return true
}

// ClearAll discards the whole collection.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.loaded = true
	s.records = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.logger.Info().Msg("Cleared all memories")
}

// Patch carries the fields Update may change. Nil pointers leave the field
// untouched.
type Patch struct {
	Content  *string
	Category *string
	Summary  *string
	Type     *string
	Platform *string
	Source   *string
	URL      *string
	Extra    map[string]any
}

// Update merges patch into the record with the given id, stamps lastUpdated
// and recomputes category and summary when the content changed. It returns
// the updated record, or nil when the id is unknown.
func (s *Store) Update(ctx context.Context, id string, patch Patch) *Record {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)

	var target *Record
	for _, rec := range s.records {
		if rec.ID == id {
			target = rec
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil
	}

	contentChanged := false
	if patch.Content != nil {
		target.Content = *patch.Content
		contentChanged = true
	}
	if patch.Category != nil {
		target.Category = *patch.Category
	}
	if patch.Summary != nil {
		target.Summary = *patch.Summary
	}
	if patch.Type != nil {
		target.Type = *patch.Type
	}
	if patch.Platform != nil {
		target.Platform = *patch.Platform
	}
	if patch.Source != nil {
		target.Source = *patch.Source
	}
	if patch.URL != nil {
		target.URL = *patch.URL
	}
	for k, v := range patch.Extra {
		if target.Extra == nil {
			target.Extra = make(map[string]any)
		}
		target.Extra[k] = v
	}
	target.LastUpdated = time.Now().UnixMilli()
	if contentChanged {
		target.Category = classify.Categorize(target.Content)
		target.Summary = classify.Summarize(target.Content)
	}

	result := target.Clone()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return result
}

// Len reports the current collection size.
func (s *Store) Len(ctx context.Context) int {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	n := len(s.records)
	s.mu.Unlock()
	return n
}

func (s *Store) cloneAllLocked() []*Record {
	out := make([]*Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}
