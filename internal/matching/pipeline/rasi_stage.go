// internal/matching/pipeline/rasi_stage.go
package pipeline

import (
	"strings"

	"matrimony-matcher/internal/matching/rasi"
	"matrimony-matcher/internal/models"
)

// filterByRasi is the optional, best-effort final stage. It runs only when
// rasi compatibility is enabled and the seeker carries a rasi value.
// Candidates with no rasi value are excluded, and a per-candidate failure
// drops that single candidate without aborting the stage.
func (p *Pipeline) filterByRasi(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if !criteria.EnableRasiCompatibility || strings.TrimSpace(criteria.Rasi) == "" {
		return candidates, nil
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.RasiLagnam) == "" {
			continue
		}
		if p.rasiCompatible(criteria, c) {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// rasiCompatible maps seeker/candidate onto the predicate's male and female
// sides. This is the one place that decides argument order; IsCompatible's
// pure-Suth rule triggers on the male side only.
func (p *Pipeline) rasiCompatible(criteria models.SearchCriteria, candidate models.MatchCandidate) (compatible bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("rasi check failed, excluding candidate", map[string]interface{}{
				"candidateId": candidate.ID,
				"panic":       r,
			})
			compatible = false
		}
	}()

	if criteria.Gender == models.GenderMale {
		return rasi.IsCompatible(criteria.Rasi, candidate.RasiLagnam)
	}
	return rasi.IsCompatible(candidate.RasiLagnam, criteria.Rasi)
}
