package models

// MatchingSource indicates which compatibility tier produced a candidate.
type MatchingSource string

const (
	SourceUthamam  MatchingSource = "uthamam"
	SourceMathimam MatchingSource = "mathimam"
)

// TierRank returns the sort rank of a tier: uthamam before mathimam before
// anything unrecognized.
func (s MatchingSource) TierRank() int {
	switch s {
	case SourceUthamam:
		return 1
	case SourceMathimam:
		return 2
	default:
		return 3
	}
}

// MatchCandidate is a profile enriched with its compatibility score and tier.
// Candidates are created fresh per request and never mutated in place; each
// filter stage returns a new slice.
type MatchCandidate struct {
	Profile
	Porutham       int            `json:"porutham"`
	MatchingSource MatchingSource `json:"matchingSource"`
}
