// internal/matching/pipeline/age.go
package pipeline

import (
	"strings"
	"time"

	"matrimony-matcher/internal/matching/validation"
	"matrimony-matcher/internal/models"
)

// Bounds of the default matrimonial age window.
const (
	maleCandidateFloor   = 18
	femaleCandidateCeil  = 75
	fallbackWindowRadius = 5
)

// Accepted birth date layouts, tried in order.
var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

// DeriveAge computes the whole-year age at the reference time, decrementing
// by one when the reference month/day precedes the birthday. It returns nil
// for missing or unparseable dates.
func DeriveAge(birthDate string, now time.Time) *int {
	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return nil
	}

	var born time.Time
	parsed := false
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, birthDate); err == nil {
			born = t
			parsed = true
			break
		}
	}
	if !parsed {
		return nil
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return &age
}

// deriveAges fills in the derived age for every candidate. It never filters;
// candidates whose birth date does not parse simply carry a nil age into the
// range stages.
func (p *Pipeline) deriveAges(candidates []models.MatchCandidate, _ models.SearchCriteria) ([]models.MatchCandidate, error) {
	now := time.Now()
	out := make([]models.MatchCandidate, len(candidates))
	for i, c := range candidates {
		c.Age = DeriveAge(c.BirthDate, now)
		out[i] = c
	}
	return out, nil
}

// filterByAgeRange applies the default matrimonial window: a male seeker
// matches candidates aged [18, seekerAge], a female seeker matches
// [seekerAge, 75]. Any other seeker gender falls back to a symmetric
// five-year window. Candidates without a derived age are excluded.
func (p *Pipeline) filterByAgeRange(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if criteria.SeekerAge == 0 {
		return candidates, nil
	}
	if err := validation.SeekerAge(criteria.SeekerAge); err != nil {
		return nil, err
	}
	if err := validation.Gender(criteria.Gender); err != nil {
		return nil, err
	}

	low, high := ageWindow(criteria.Gender, criteria.SeekerAge)
	return keepAgesWithin(candidates, low, high), nil
}

// filterByAgePreference narrows the default window using the seeker's stated
// preference. Running after filterByAgeRange, it can only ever narrow.
func (p *Pipeline) filterByAgePreference(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	if criteria.AgePreference == 0 || criteria.SeekerAge == 0 {
		return candidates, nil
	}
	if err := validation.SeekerAge(criteria.SeekerAge); err != nil {
		return nil, err
	}
	if err := validation.Gender(criteria.Gender); err != nil {
		return nil, err
	}

	var low, high int
	if criteria.Gender == models.GenderMale {
		low, high = criteria.AgePreference, criteria.SeekerAge
	} else {
		low, high = criteria.SeekerAge, criteria.AgePreference
	}
	return keepAgesWithin(candidates, low, high), nil
}

func ageWindow(seekerGender models.Gender, seekerAge int) (low, high int) {
	switch seekerGender {
	case models.GenderMale:
		return maleCandidateFloor, seekerAge
	case models.GenderFemale:
		return seekerAge, femaleCandidateCeil
	default:
		return seekerAge - fallbackWindowRadius, seekerAge + fallbackWindowRadius
	}
}

func keepAgesWithin(candidates []models.MatchCandidate, low, high int) []models.MatchCandidate {
	kept := make([]models.MatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Age == nil {
			continue
		}
		if *c.Age < low || *c.Age > high {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
