// Package textproc provides the text normalization and set-similarity
// primitives the memory engine is built on.
//
// Invariants:
// - All functions are pure; identical input yields identical output.
// - Tokenize drops tokens of length <= 2 and the fixed stopword set.
// - RawWords is intentionally looser than Tokenize (no stopwords, no length
//   filter); duplicate detection depends on that difference.
//
// Usage:
//
//	terms := textproc.Tokenize("How do React hooks work?")
//	sim := textproc.Jaccard(textproc.RawWords(a), textproc.RawWords(b))
package textproc
