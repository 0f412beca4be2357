// Package validation is the gate in front of the filter pipeline: every
// parameter-carrying stage calls its validator first, and a failure aborts
// the whole pipeline with a typed error naming the offending field.
package validation

import (
	"fmt"

	apperrors "matrimony-matcher/internal/common/errors"
	"matrimony-matcher/internal/models"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	minNakshatraID = 1
	maxNakshatraID = 36

	minSeekerAge = 18
	maxSeekerAge = 100
)

// NakshatraID checks a seeker or preference nakshatra id.
func NakshatraID(field string, id int) error {
	if err := ozzo.Validate(id, ozzo.Min(minNakshatraID), ozzo.Max(maxNakshatraID)); err != nil {
		return apperrors.NewValidationError(apperrors.ErrCodeInvalidNakshatra, field,
			fmt.Sprintf("must be an integer between %d and %d", minNakshatraID, maxNakshatraID))
	}
	return nil
}

// NakshatraPreferences checks every id in a preference allow-list.
func NakshatraPreferences(ids []int) error {
	for _, id := range ids {
		if err := NakshatraID("nakshatraPreferences", id); err != nil {
			return err
		}
	}
	return nil
}

// Gender checks the seeker gender.
func Gender(g models.Gender) error {
	err := ozzo.Validate(string(g),
		ozzo.Required,
		ozzo.In(string(models.GenderMale), string(models.GenderFemale)),
	)
	if err != nil {
		return apperrors.NewValidationError(apperrors.ErrCodeInvalidGender, "gender",
			"must be Male or Female")
	}
	return nil
}

// Qualification checks a requested qualification filter value.
func Qualification(q models.Qualification) error {
	allowed := make([]interface{}, 0, len(models.Qualifications))
	for _, v := range models.Qualifications {
		allowed = append(allowed, string(v))
	}
	if err := ozzo.Validate(string(q), ozzo.Required, ozzo.In(allowed...)); err != nil {
		return apperrors.NewValidationError(apperrors.ErrCodeInvalidQualification, "qualification",
			"must be one of School, Diploma, UG, PG, PHD, Doctor")
	}
	return nil
}

// Regions checks that every requested region is a known code.
func Regions(regions []models.Region) error {
	allowed := make([]interface{}, 0, len(models.Regions))
	for _, v := range models.Regions {
		allowed = append(allowed, string(v))
	}
	for _, r := range regions {
		if err := ozzo.Validate(string(r), ozzo.Required, ozzo.In(allowed...)); err != nil {
			return apperrors.NewValidationError(apperrors.ErrCodeInvalidRegion, "regions",
				fmt.Sprintf("unknown region code %q", r))
		}
	}
	return nil
}

// IncomeBounds checks the optional income range. min > max is a validation
// error raised before filtering, never a silent empty result.
func IncomeBounds(min, max *float64) error {
	if min != nil {
		if err := ozzo.Validate(*min, ozzo.Min(0.0)); err != nil {
			return apperrors.NewValidationError(apperrors.ErrCodeInvalidIncome, "incomeMin",
				"must be a non-negative number")
		}
	}
	if max != nil {
		if err := ozzo.Validate(*max, ozzo.Min(0.0)); err != nil {
			return apperrors.NewValidationError(apperrors.ErrCodeInvalidIncome, "incomeMax",
				"must be a non-negative number")
		}
	}
	if min != nil && max != nil && *min > *max {
		return apperrors.NewValidationError(apperrors.ErrCodeInvalidIncome, "incomeMin",
			"lower bound exceeds upper bound")
	}
	return nil
}

// SeekerAge checks the seeker's own age used by the age window stages.
func SeekerAge(age int) error {
	if err := ozzo.Validate(age, ozzo.Min(minSeekerAge), ozzo.Max(maxSeekerAge)); err != nil {
		return apperrors.NewValidationError(apperrors.ErrCodeInvalidSeekerAge, "seekerAge",
			fmt.Sprintf("must be an integer between %d and %d", minSeekerAge, maxSeekerAge))
	}
	return nil
}

// SeekerRasi checks that explicit-criteria searches carry a seeker rasi
// value whenever rasi compatibility is enabled.
func SeekerRasi(criteria models.SearchCriteria) error {
	if !criteria.EnableRasiCompatibility || criteria.ByProfile() {
		return nil
	}
	if err := ozzo.Validate(criteria.Rasi, ozzo.Required); err != nil {
		return apperrors.NewValidationError(apperrors.ErrCodeMissingSeekerRasi, "rasi",
			"required when rasi compatibility is enabled")
	}
	return nil
}
