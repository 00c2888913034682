package match

import "sort"

// DefaultSuggestThreshold is the minimum score a name needs to be suggested.
const DefaultSuggestThreshold = 0.6

// Suggestion is a known name scored against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// Score compares two aliases after folding, with and without the vendor
// prefix, and keeps the better result.
func Score(a, b string) float64 {
	return max(Similarity(FoldAlias(a), FoldAlias(b)), Similarity(StripVendor(a), StripVendor(b)))
}

// Rank scores every candidate against name and returns those at or above the
// threshold, best first. Ties keep candidate order.
func Rank(name string, candidates []string, threshold float64) []Suggestion {
	var result []Suggestion

	for _, c := range candidates {
		score := Score(name, c)
		if score < threshold {
			continue
		}

		result = append(result, Suggestion{Name: c, Score: score})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result
}

// Suggest returns at most limit candidate names that look like name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultSuggestThreshold)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Name)
	}

	return names
}
