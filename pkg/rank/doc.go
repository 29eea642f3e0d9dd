// Package rank scores documents against a query with TF-IDF over the corpus
// given to each call.
//
// Invariants:
// - Corpus statistics (document frequency, corpus size) are recomputed on
//   every call; nothing is cached or persisted between calls.
// - Ranking is stable: equal scores keep the input (recency) order.
// - Queries shorter than MinQueryLen after trimming bypass scoring.
package rank
