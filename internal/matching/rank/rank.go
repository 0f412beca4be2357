// Package rank produces the single deterministic ordering every downstream
// presentation of a result set reuses.
package rank

import (
	"sort"

	"matrimony-matcher/internal/models"
)

// Sort orders candidates by tier rank ascending (uthamam first), then
// porutham descending, then nakshatra id ascending. Ties beyond that keep
// their original relative order. The input slice is not modified.
func Sort(candidates []models.MatchCandidate) []models.MatchCandidate {
	ranked := make([]models.MatchCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].MatchingSource.TierRank(), ranked[j].MatchingSource.TierRank()
		if ri != rj {
			return ri < rj
		}
		if ranked[i].Porutham != ranked[j].Porutham {
			return ranked[i].Porutham > ranked[j].Porutham
		}
		return ranked[i].NakshatraID < ranked[j].NakshatraID
	})

	return ranked
}
