package group

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/mhollis/sift/internal/normalize"
)

// RankSimilar orders candidate descriptions by edit distance from target,
// closest first, comparing normalized forms. The sort is stable so equally
// distant candidates keep their input order. Used to surface likely matches
// in "group similar" pickers alongside the substring-based IsSimilar test.
func RankSimilar(target string, candidates []string) []string {
	normalized := normalize.Normalize(target)

	ranked := make([]string, len(candidates))
	copy(ranked, candidates)

	distances := make(map[string]int, len(candidates))
	for _, c := range candidates {
		distances[c] = levenshtein.ComputeDistance(normalized, normalize.Normalize(c))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return distances[ranked[i]] < distances[ranked[j]]
	})

	return ranked
}
