// Package memory implements the memory store: an ordered, capacity-bounded
// collection of extracted text records with dedup-on-write, conversation
// merging, TF-IDF retrieval, filtered search, export/import and maintenance.
//
// Invariants:
// - Record ids are unique; content is never empty after trimming.
// - The collection is newest-first; insertion order is recency order and
//   capacity eviction drops the tail.
// - Every mutating operation computes its full in-memory state first, then
//   performs a single blob write-back. Persist failures are logged and
//   swallowed; load failures degrade to an empty collection.
//
// Usage:
//
//	store, _ := memory.New(memory.Config{Blob: fileStore, Context: ctxp})
//	rec := store.Save(ctx, "I work as a teacher", nil)
//	hits := store.Query(ctx, "teacher", 5)
//	_ = rec
//	_ = hits
package memory
