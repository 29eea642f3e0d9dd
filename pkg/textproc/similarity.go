package textproc

// Jaccard returns |A∩B| / |A∪B| over the word sets of a and b (duplicates
// collapse). It returns 0 when either set is empty.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := makeSetFrom(a)
	setB := makeSetFrom(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// Overlap returns the shared-word count and the relative overlap
// |A∩B| / min(|A|,|B|) over the word sets of a and b. Used by the
// conversation-grouping heuristic, which is deliberately more lenient than
// Jaccard.
func Overlap(a, b []string) (shared int, relative float64) {
	setA := makeSetFrom(a)
	setB := makeSetFrom(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0, 0
	}
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}
	min := len(setA)
	if len(setB) < min {
		min = len(setB)
	}
	return shared, float64(shared) / float64(min)
}

func makeSetFrom(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
