// Package boundary normalizes transport-shaped search input into the
// canonical SearchCriteria. The core engine only ever accepts strict
// booleans and canonical set types; every loose encoding stops here.
package boundary

import (
	"strings"

	"matrimony-matcher/internal/models"

	"github.com/spf13/cast"
)

// RawCriteria mirrors the wire shape of a search request. Toggle fields
// accept any truthy encoding, and region/nakshatra parameters accept either
// a single value or a list (a backward-compatibility artifact of the
// original form handlers).
type RawCriteria struct {
	ProfileID   string      `json:"profileId,omitempty"`
	NakshatraID interface{} `json:"nakshatraId,omitempty"`
	Gender      string      `json:"gender,omitempty"`

	IncludeMathimam         interface{} `json:"includeMathimam,omitempty"`
	IncludeRemarried        interface{} `json:"includeRemarried,omitempty"`
	EnableRasiCompatibility interface{} `json:"enableRasiCompatibility,omitempty"`
	ExactQualification      interface{} `json:"exactQualification,omitempty"`

	SeekerAge            interface{} `json:"seekerAge,omitempty"`
	AgePreference        interface{} `json:"agePreference,omitempty"`
	Qualification        string      `json:"qualification,omitempty"`
	Regions              interface{} `json:"regions,omitempty"`
	IncomeMin            interface{} `json:"incomeMin,omitempty"`
	IncomeMax            interface{} `json:"incomeMax,omitempty"`
	NakshatraPreferences interface{} `json:"nakshatraPreferences,omitempty"`
	Gothram              string      `json:"gothram,omitempty"`
	Rasi                 string      `json:"rasi,omitempty"`
}

// Normalize converts a raw request into the canonical criteria. Unparseable
// nakshatra preference ids are dropped here, never inside the pipeline.
func Normalize(raw RawCriteria) models.SearchCriteria {
	return models.SearchCriteria{
		ProfileID:   strings.TrimSpace(raw.ProfileID),
		NakshatraID: cast.ToInt(raw.NakshatraID),
		Gender:      models.Gender(strings.TrimSpace(raw.Gender)),

		IncludeMathimam:         Truthy(raw.IncludeMathimam),
		IncludeRemarried:        Truthy(raw.IncludeRemarried),
		EnableRasiCompatibility: Truthy(raw.EnableRasiCompatibility),
		ExactQualification:      Truthy(raw.ExactQualification),

		SeekerAge:            cast.ToInt(raw.SeekerAge),
		AgePreference:        cast.ToInt(raw.AgePreference),
		Qualification:        models.Qualification(strings.TrimSpace(raw.Qualification)),
		Regions:              toRegions(raw.Regions),
		IncomeMin:            toOptionalFloat(raw.IncomeMin),
		IncomeMax:            toOptionalFloat(raw.IncomeMax),
		NakshatraPreferences: toNakshatraIDs(raw.NakshatraPreferences),
		Gothram:              strings.TrimSpace(raw.Gothram),
		Rasi:                 strings.TrimSpace(raw.Rasi),
	}
}

// Truthy folds the historical loose encodings into a strict bool:
// "true"/"yes"/"on"/"1" and their numeric forms all mean true.
func Truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, err := cast.ToBoolE(v); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(cast.ToString(v))) {
	case "yes", "on":
		return true
	}
	return false
}

// toRegions accepts a single region value or a list and yields the
// canonical slice. Blank entries are dropped.
func toRegions(v interface{}) []models.Region {
	var regions []models.Region
	for _, s := range toStringList(v) {
		s = strings.TrimSpace(s)
		if s != "" {
			regions = append(regions, models.Region(s))
		}
	}
	return regions
}

// toNakshatraIDs accepts a single id or a list, parsing each entry as an
// integer and dropping anything unparseable.
func toNakshatraIDs(v interface{}) []int {
	var ids []int
	for _, s := range toStringList(v) {
		if id, err := cast.ToIntE(strings.TrimSpace(s)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func toStringList(v interface{}) []string {
	if v == nil {
		return nil
	}
	if list, err := cast.ToStringSliceE(v); err == nil {
		return list
	}
	if s := cast.ToString(v); s != "" {
		return []string{s}
	}
	return nil
}

func toOptionalFloat(v interface{}) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return &f
	}
	return nil
}
