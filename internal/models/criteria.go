package models

// SearchCriteria is the canonical search input. The engine only ever sees
// this form: loose truthy strings and single-value-or-list parameter shapes
// are normalized by the boundary adapter before a criteria reaches the core.
type SearchCriteria struct {
	// Seeker identity: either a profile reference or an explicit
	// nakshatra+gender pair.
	ProfileID   string `json:"profileId,omitempty"`
	NakshatraID int    `json:"nakshatraId,omitempty"`
	Gender      Gender `json:"gender,omitempty"`

	// Toggles.
	IncludeMathimam         bool `json:"includeMathimam"`
	IncludeRemarried        bool `json:"includeRemarried"`
	EnableRasiCompatibility bool `json:"enableRasiCompatibility"`
	ExactQualification      bool `json:"exactQualification"`

	// Filter values. Zero values mean "filter not requested" except for
	// SeekerAge, which the age stages require.
	SeekerAge            int           `json:"seekerAge,omitempty"`
	AgePreference        int           `json:"agePreference,omitempty"`
	Qualification        Qualification `json:"qualification,omitempty"`
	Regions              []Region      `json:"regions,omitempty"`
	IncomeMin            *float64      `json:"incomeMin,omitempty"`
	IncomeMax            *float64      `json:"incomeMax,omitempty"`
	NakshatraPreferences []int         `json:"nakshatraPreferences,omitempty"`
	Gothram              string        `json:"gothram,omitempty"`
	Rasi                 string        `json:"rasi,omitempty"`
}

// ByProfile reports whether the seeker is identified by profile reference.
func (c SearchCriteria) ByProfile() bool {
	return c.ProfileID != ""
}
