// Package blob abstracts the key-value blob storage the memory engine
// persists its collection into. The engine treats a single opaque key as the
// whole serialized collection; implementations only need Get and Set.
//
// Invariants:
// - Get returns (nil, nil) for an absent key; absence is not an error.
// - Set fully replaces the value under the key.
// - Implementations are safe for use from a single writer; the engine never
//   issues overlapping writes for the same key.
package blob
