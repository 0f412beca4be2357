// Package pipeline narrows a resolved candidate pool through the fixed,
// ordered chain of inclusion/exclusion rules.
//
// Stage order is significant and must not be altered. Two policies coexist:
// validated stages abort the whole pipeline on bad parameters, while the
// best-effort stages (gothram, rasi) absorb internal failures and degrade.
package pipeline

import (
	"strings"
	"time"

	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/matching/validation"
	"matrimony-matcher/internal/models"
)

// Observer receives one callback per executed stage. Implementations live
// outside the core (the otel adapter in internal/common/observability).
type Observer interface {
	RecordStage(stage string, in, out int, duration time.Duration)
}

// Pipeline applies the ten filter stages in order. It holds no per-request
// state; every stage is a pure function from one slice to a new one.
type Pipeline struct {
	logger   logger.Logger
	observer Observer
}

type stage struct {
	name string
	run  func(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error)
}

func New(log logger.Logger, obs Observer) *Pipeline {
	return &Pipeline{
		logger:   log.WithFields(map[string]interface{}{"component": "pipeline"}),
		observer: obs,
	}
}

// Apply runs every stage over the candidates. A validation failure aborts
// immediately with the typed error; best-effort stages never abort.
func (p *Pipeline) Apply(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	stages := []stage{
		{"gothram", p.filterByGothram},
		{"nakshatra-preference", p.filterByNakshatraPreference},
		{"age-derivation", p.deriveAges},
		{"age-range", p.filterByAgeRange},
		{"age-preference", p.filterByAgePreference},
		{"qualification", p.filterByQualification},
		{"region", p.filterByRegion},
		{"income", p.filterByIncome},
		{"remarried", p.filterByRemarried},
		{"rasi", p.filterByRasi},
	}

	current := candidates
	for _, s := range stages {
		in := len(current)
		start := time.Now()

		next, err := s.run(current, criteria)
		if err != nil {
			p.logger.Warn("pipeline aborted", map[string]interface{}{
				"stage": s.name,
				"error": err.Error(),
			})
			return nil, err
		}

		if p.observer != nil {
			p.observer.RecordStage(s.name, in, len(next), time.Since(start))
		}
		current = next
	}

	p.logger.Info("pipeline completed", map[string]interface{}{
		"in":  len(candidates),
		"out": len(current),
	})
	return current, nil
}

// filterByGothram is the mandatory first stage. A seeker without a gothram
// gets no matches at all, while a candidate without one is assumed
// compatible. Same-gothram candidates are excluded. Internal failures leave
// the pool untouched instead of aborting the request.
func (p *Pipeline) filterByGothram(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if normalizeGothram(criteria.Gothram) == "" {
		return []models.MatchCandidate{}, nil
	}

	result := candidates
	func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("gothram stage failed, passing candidates through", map[string]interface{}{
					"panic": r,
				})
				result = candidates
			}
		}()

		seeker := normalizeGothram(criteria.Gothram)
		kept := make([]models.MatchCandidate, 0, len(candidates))
		for _, c := range candidates {
			g := normalizeGothram(c.Gothram)
			if g != "" && g == seeker {
				continue
			}
			kept = append(kept, c)
		}
		result = kept
	}()

	return result, nil
}

func normalizeGothram(g string) string {
	return strings.ToLower(strings.TrimSpace(g))
}

// filterByNakshatraPreference keeps only candidates whose nakshatra id is in
// the allow-list, when one was given.
func (p *Pipeline) filterByNakshatraPreference(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if len(criteria.NakshatraPreferences) == 0 {
		return candidates, nil
	}
	if err := validation.NakshatraPreferences(criteria.NakshatraPreferences); err != nil {
		return nil, err
	}

	allowed := make(map[int]bool, len(criteria.NakshatraPreferences))
	for _, id := range criteria.NakshatraPreferences {
		allowed[id] = true
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if allowed[c.NakshatraID] {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// filterByRegion keeps candidates located in one of the requested regions.
func (p *Pipeline) filterByRegion(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if len(criteria.Regions) == 0 {
		return candidates, nil
	}
	if err := validation.Regions(criteria.Regions); err != nil {
		return nil, err
	}

	requested := make(map[models.Region]bool, len(criteria.Regions))
	for _, r := range criteria.Regions {
		requested[r] = true
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if requested[c.Region] {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// filterByIncome checks known incomes against the optional bounds.
// Candidates with no recorded income are always kept.
func (p *Pipeline) filterByIncome(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if criteria.IncomeMin == nil && criteria.IncomeMax == nil {
		return candidates, nil
	}
	if err := validation.IncomeBounds(criteria.IncomeMin, criteria.IncomeMax); err != nil {
		return nil, err
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.MonthlyIncome == nil {
			kept = append(kept, c)
			continue
		}
		income := *c.MonthlyIncome
		if criteria.IncomeMin != nil && income < *criteria.IncomeMin {
			continue
		}
		if criteria.IncomeMax != nil && income > *criteria.IncomeMax {
			continue
		}
		kept = append(kept, c)
	}
	return kept, nil
}

// filterByRemarried excludes remarried candidates unless the seeker opted in.
func (p *Pipeline) filterByRemarried(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if criteria.IncludeRemarried {
		return candidates, nil
	}

	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.IsRemarried {
			continue
		}
		kept = append(kept, c)
	}
	return kept, nil
}
