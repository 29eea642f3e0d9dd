// Package classify assigns category labels and derives short summaries from
// raw memory text using keyword-rule heuristics. The keyword tables live as
// embedded data files under rules/ so the category mapping stays auditable
// and testable without touching control flow.
//
// Invariants:
// - All functions are pure; no I/O after the embedded rule tables compile.
// - Category matching order is fixed: structured_conversation check first,
//   then customer_service, coding, business, personal, learning, health,
//   finance; first match wins; fallback is "general".
// - Keyword patterns are case-insensitive and anchored on a leading word
//   boundary only, so a table entry matches as a prefix of longer words.
package classify
