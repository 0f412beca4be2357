// internal/matching/pipeline/qualification.go
package pipeline

import (
	"matrimony-matcher/internal/matching/validation"
	"matrimony-matcher/internal/models"
)

// qualificationRank orders the hierarchical tiers. PHD and Doctor are
// terminal: requesting either in hierarchical mode still matches exactly,
// an intentional irregularity carried over from the production rules.
var qualificationRank = map[models.Qualification]int{
	models.QualificationSchool:  1,
	models.QualificationDiploma: 2,
	models.QualificationUG:      3,
	models.QualificationPG:      4,
	models.QualificationPHD:     5,
	models.QualificationDoctor:  6,
}

func isTerminalQualification(q models.Qualification) bool {
	return q == models.QualificationPHD || q == models.QualificationDoctor
}

// filterByQualification keeps candidates matching the requested tier, either
// exactly or as "requested tier or higher".
func (p *Pipeline) filterByQualification(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if criteria.Qualification == "" {
		return candidates, nil
	}
	if err := validation.Qualification(criteria.Qualification); err != nil {
		return nil, err
	}

	exact := criteria.ExactQualification || isTerminalQualification(criteria.Qualification)
	floor := qualificationRank[criteria.Qualification]

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if exact {
			if c.Qualification == criteria.Qualification {
				kept = append(kept, c)
			}
			continue
		}
		if qualificationRank[c.Qualification] >= floor {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
