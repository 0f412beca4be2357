package matching

import (
	"context"
	"testing"
	"time"

	apperrors "matrimony-matcher/internal/common/errors"
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Doubles
// ==========================

type fakeProfileStore struct {
	profiles []models.Profile
}

func (s *fakeProfileStore) GetAll() []models.Profile { return s.profiles }

func (s *fakeProfileStore) GetByID(id string) (*models.Profile, bool) {
	for _, p := range s.profiles {
		if p.ID == id {
			found := p
			return &found, true
		}
	}
	return nil, false
}

func (s *fakeProfileStore) Reload() {}

type recordingObserver struct {
	statuses []string
	stages   []string
}

func (o *recordingObserver) RecordSearch(_ context.Context, status string) {
	o.statuses = append(o.statuses, status)
}

func (o *recordingObserver) RecordStage(stage string, _, _ int, _ time.Duration) {
	o.stages = append(o.stages, stage)
}

// ==========================
// Fixtures
// ==========================

func birthDateForAge(age int) string {
	return time.Now().AddDate(-age, -6, 0).Format("2006-01-02")
}

func fixtureTables() models.TableSet {
	return models.TableSet{
		MaleUthamam: models.CompatibilityTable{
			Name: "male_uthamam",
			Rows: []models.TableRow{
				{
					SourceNakshatraID: 5,
					Matching: []models.TableMatch{
						{TargetNakshatraID: 10, Value: 8},
						{TargetNakshatraID: 12, Value: 6},
					},
				},
			},
		},
		MaleMathimam: models.CompatibilityTable{
			Name: "male_mathimam",
			Rows: []models.TableRow{
				{
					SourceNakshatraID: 5,
					Matching: []models.TableMatch{
						{TargetNakshatraID: 13, Value: 4},
					},
				},
			},
		},
	}
}

func fixtureProfiles() []models.Profile {
	return []models.Profile{
		{
			ID:          "p-m5",
			Gender:      models.GenderMale,
			NakshatraID: 5,
			Gothram:     "Bharadwaja",
			RasiLagnam:  "Suth",
			BirthDate:   birthDateForAge(30),
		},
		{
			ID:          "f-10",
			Gender:      models.GenderFemale,
			NakshatraID: 10,
			Gothram:     "Atri",
			RasiLagnam:  "Suth",
			BirthDate:   birthDateForAge(25),
		},
		{
			ID:          "f-12",
			Gender:      models.GenderFemale,
			NakshatraID: 12,
			Gothram:     "bharadwaja", // same gothram as the seeker
			RasiLagnam:  "Suth",
			BirthDate:   birthDateForAge(24),
		},
		{
			ID:          "f-13",
			Gender:      models.GenderFemale,
			NakshatraID: 13,
			Gothram:     "Kashyapa",
			RasiLagnam:  "Sani",
			BirthDate:   birthDateForAge(26),
		},
	}
}

func newTestEngine(t *testing.T, obs Observer) *Engine {
	return NewEngine(
		fixtureTables(),
		&fakeProfileStore{profiles: fixtureProfiles()},
		logger.NewTestLogger(t),
		obs,
	)
}

func matchIDs(candidates []models.MatchCandidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

// ==========================
// Resolution
// ==========================

func TestResolveByProfile(t *testing.T) {
	e := newTestEngine(t, nil)

	pool, err := e.ResolveByProfile("p-m5", false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f-10", "f-12"}, matchIDs(pool))

	pool, err = e.ResolveByProfile("p-m5", true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f-10", "f-12", "f-13"}, matchIDs(pool))
}

func TestResolveByProfile_UnknownProfile(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.ResolveByProfile("p-404", false)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestResolveByCriteria(t *testing.T) {
	e := newTestEngine(t, nil)

	pool, err := e.ResolveByCriteria(5, models.GenderMale, false, "", false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f-10", "f-12"}, matchIDs(pool))
}

func TestResolveByCriteria_Validation(t *testing.T) {
	e := newTestEngine(t, nil)

	_, err := e.ResolveByCriteria(40, models.GenderMale, false, "", false)
	require.Error(t, err)
	assert.Equal(t, "nakshatraId", apperrors.FieldOf(err))

	_, err = e.ResolveByCriteria(5, "Other", false, "", false)
	require.Error(t, err)
	assert.Equal(t, "gender", apperrors.FieldOf(err))

	// Rasi compatibility without a seeker rasi is rejected up front in
	// explicit mode; profile mode fills it from the stored profile.
	_, err = e.ResolveByCriteria(5, models.GenderMale, false, "", true)
	require.Error(t, err)
	assert.Equal(t, "rasi", apperrors.FieldOf(err))
}

// ==========================
// Search
// ==========================

func TestSearch_ProfileMode(t *testing.T) {
	obs := &recordingObserver{}
	e := newTestEngine(t, obs)

	got, err := e.Search(models.SearchCriteria{
		ProfileID:       "p-m5",
		IncludeMathimam: true,
	})

	require.NoError(t, err)
	// f-12 shares the seeker's gothram. f-10 and f-13 survive, uthamam first.
	assert.Equal(t, []string{"f-10", "f-13"}, matchIDs(got))
	assert.Equal(t, []string{"ok"}, obs.statuses)
	assert.Len(t, obs.stages, 10)
	assert.Equal(t, "gothram", obs.stages[0])
	assert.Equal(t, "rasi", obs.stages[9])
}

func TestSearch_ProfileModeWithRasiCompatibility(t *testing.T) {
	e := newTestEngine(t, nil)

	got, err := e.Search(models.SearchCriteria{
		ProfileID:               "p-m5",
		IncludeMathimam:         true,
		EnableRasiCompatibility: true,
	})

	require.NoError(t, err)
	// The seeker is pure Suth, so the Sani candidate drops out.
	assert.Equal(t, []string{"f-10"}, matchIDs(got))
}

func TestSearch_ExplicitCriteriaWithFilters(t *testing.T) {
	e := newTestEngine(t, nil)

	got, err := e.Search(models.SearchCriteria{
		NakshatraID:     5,
		Gender:          models.GenderMale,
		IncludeMathimam: true,
		Gothram:         "Bharadwaja",
		SeekerAge:       25,
	})

	require.NoError(t, err)
	// The [18, 25] window excludes the 26-year-old mathimam candidate, and
	// the shared gothram excludes f-12.
	assert.Equal(t, []string{"f-10"}, matchIDs(got))
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	obs := &recordingObserver{}
	e := newTestEngine(t, obs)

	got, err := e.Search(models.SearchCriteria{
		NakshatraID: 20, // no table row for this seeker
		Gender:      models.GenderMale,
		Gothram:     "Bharadwaja",
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"empty"}, obs.statuses)
}

func TestSearch_ValidationFailureIsRecorded(t *testing.T) {
	obs := &recordingObserver{}
	e := newTestEngine(t, obs)

	_, err := e.Search(models.SearchCriteria{NakshatraID: 0, Gender: models.GenderMale})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, []string{"validation_error"}, obs.statuses)
}

func TestSearch_NotFoundIsRecorded(t *testing.T) {
	obs := &recordingObserver{}
	e := newTestEngine(t, obs)

	_, err := e.Search(models.SearchCriteria{ProfileID: "p-404"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, []string{"not_found"}, obs.statuses)
}

// ==========================
// Filter + Rank building blocks
// ==========================

func TestApplyFiltersAndRank(t *testing.T) {
	e := newTestEngine(t, nil)

	pool, err := e.ResolveByProfile("p-m5", true)
	require.NoError(t, err)

	filtered, err := e.ApplyFilters(pool, models.SearchCriteria{
		Gender:    models.GenderMale,
		Gothram:   "Veda",
		SeekerAge: 30,
	})
	require.NoError(t, err)

	ranked := e.Rank(filtered)
	assert.Equal(t, []string{"f-10", "f-12", "f-13"}, matchIDs(ranked))
}
