package boundary

import (
	"testing"

	"matrimony-matcher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	truthy := []interface{}{true, "true", "TRUE", "1", 1, "yes", "Yes", "on", " on "}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "value %v", v)
	}

	falsy := []interface{}{nil, false, "false", "0", 0, "", "no", "off", "maybe"}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "value %v", v)
	}
}

func TestNormalize_Toggles(t *testing.T) {
	got := Normalize(RawCriteria{
		IncludeMathimam:         "yes",
		IncludeRemarried:        1,
		EnableRasiCompatibility: "on",
		ExactQualification:      "false",
	})

	assert.True(t, got.IncludeMathimam)
	assert.True(t, got.IncludeRemarried)
	assert.True(t, got.EnableRasiCompatibility)
	assert.False(t, got.ExactQualification)
}

func TestNormalize_SingleValueAndListForms(t *testing.T) {
	// Single values, the legacy form-handler encoding.
	got := Normalize(RawCriteria{
		Regions:              "Chennai",
		NakshatraPreferences: 4,
	})
	assert.Equal(t, []models.Region{models.RegionChennai}, got.Regions)
	assert.Equal(t, []int{4}, got.NakshatraPreferences)

	// List values, as decoded from JSON.
	got = Normalize(RawCriteria{
		Regions:              []interface{}{"Chennai", " Salem ", ""},
		NakshatraPreferences: []interface{}{"4", 7, "x"},
	})
	assert.Equal(t, []models.Region{models.RegionChennai, models.RegionSalem}, got.Regions)
	assert.Equal(t, []int{4, 7}, got.NakshatraPreferences)
}

func TestNormalize_NumericCoercion(t *testing.T) {
	got := Normalize(RawCriteria{
		NakshatraID:   "5",
		SeekerAge:     "30",
		AgePreference: 25.0,
	})

	assert.Equal(t, 5, got.NakshatraID)
	assert.Equal(t, 30, got.SeekerAge)
	assert.Equal(t, 25, got.AgePreference)
}

func TestNormalize_OptionalIncomes(t *testing.T) {
	got := Normalize(RawCriteria{})
	assert.Nil(t, got.IncomeMin)
	assert.Nil(t, got.IncomeMax)

	got = Normalize(RawCriteria{IncomeMin: "", IncomeMax: "  "})
	assert.Nil(t, got.IncomeMin)
	assert.Nil(t, got.IncomeMax)

	got = Normalize(RawCriteria{IncomeMin: "60000", IncomeMax: 80000})
	require.NotNil(t, got.IncomeMin)
	require.NotNil(t, got.IncomeMax)
	assert.Equal(t, 60000.0, *got.IncomeMin)
	assert.Equal(t, 80000.0, *got.IncomeMax)

	got = Normalize(RawCriteria{IncomeMin: "not-a-number"})
	assert.Nil(t, got.IncomeMin)
}

func TestNormalize_TrimsStrings(t *testing.T) {
	got := Normalize(RawCriteria{
		ProfileID:     "  p-1001 ",
		Gender:        " Male ",
		Qualification: " UG ",
		Gothram:       " Bharadwaja ",
		Rasi:          " Suth ",
	})

	assert.Equal(t, "p-1001", got.ProfileID)
	assert.Equal(t, models.GenderMale, got.Gender)
	assert.Equal(t, models.QualificationUG, got.Qualification)
	assert.Equal(t, "Bharadwaja", got.Gothram)
	assert.Equal(t, "Suth", got.Rasi)
	assert.True(t, got.ByProfile())
}
