// Package matching wires the resolver, filter pipeline and ranker into the
// two public search entry points.
package matching

import (
	"context"
	"time"

	apperrors "matrimony-matcher/internal/common/errors"
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/matching/pipeline"
	"matrimony-matcher/internal/matching/rank"
	"matrimony-matcher/internal/matching/resolver"
	"matrimony-matcher/internal/matching/validation"
	"matrimony-matcher/internal/models"
	"matrimony-matcher/internal/store"

	"github.com/google/uuid"
)

// Observer receives engine-level telemetry. The otel adapter in
// internal/common/observability satisfies it; passing nil disables it.
type Observer interface {
	pipeline.Observer
	RecordSearch(ctx context.Context, status string)
}

// Engine is the matching orchestrator. All collaborators are injected and
// immutable; every search is a synchronous, request-scoped computation.
type Engine struct {
	profiles store.ProfileStore
	resolver *resolver.Resolver
	pipeline *pipeline.Pipeline
	logger   logger.Logger
	observer Observer
}

func NewEngine(tables models.TableSet, profiles store.ProfileStore, log logger.Logger, obs Observer) *Engine {
	var pipelineObs pipeline.Observer
	if obs != nil {
		pipelineObs = obs
	}
	return &Engine{
		profiles: profiles,
		resolver: resolver.New(tables, log),
		pipeline: pipeline.New(log, pipelineObs),
		logger:   log.WithFields(map[string]interface{}{"component": "engine"}),
		observer: obs,
	}
}

// seeker is the normalized search identity plus the criteria enriched with
// profile-derived values in profile mode.
type seeker struct {
	nakshatraID int
	gender      models.Gender
	criteria    models.SearchCriteria
}

// resolveSeeker normalizes the seeker identity. Profile mode copies the
// profile's nakshatra, gender, gothram, rasi and derived age into the
// criteria; the rasi stage deliberately trusts the profile value over raw
// form input. Explicit mode validates the supplied pair instead.
func (e *Engine) resolveSeeker(criteria models.SearchCriteria) (seeker, error) {
	if criteria.ByProfile() {
		p, ok := e.profiles.GetByID(criteria.ProfileID)
		if !ok {
			return seeker{}, apperrors.NewProfileNotFoundError(criteria.ProfileID)
		}
		criteria.NakshatraID = p.NakshatraID
		criteria.Gender = p.Gender
		if criteria.Gothram == "" {
			criteria.Gothram = p.Gothram
		}
		criteria.Rasi = p.RasiLagnam
		if criteria.SeekerAge == 0 {
			if age := pipeline.DeriveAge(p.BirthDate, time.Now()); age != nil {
				criteria.SeekerAge = *age
			}
		}
		return seeker{nakshatraID: p.NakshatraID, gender: p.Gender, criteria: criteria}, nil
	}

	if err := validation.NakshatraID("nakshatraId", criteria.NakshatraID); err != nil {
		return seeker{}, err
	}
	if err := validation.Gender(criteria.Gender); err != nil {
		return seeker{}, err
	}
	if err := validation.SeekerRasi(criteria); err != nil {
		return seeker{}, err
	}
	return seeker{nakshatraID: criteria.NakshatraID, gender: criteria.Gender, criteria: criteria}, nil
}

// ResolveByProfile resolves the raw candidate pool for a stored seeker
// profile. An unknown profile id is a not-found error.
func (e *Engine) ResolveByProfile(profileID string, includeMathimam bool) ([]models.MatchCandidate, error) {
	return e.ResolveMatches(models.SearchCriteria{
		ProfileID:       profileID,
		IncludeMathimam: includeMathimam,
	})
}

// ResolveByCriteria resolves the raw candidate pool for an explicit
// nakshatra+gender seeker.
func (e *Engine) ResolveByCriteria(nakshatraID int, gender models.Gender, includeMathimam bool, seekerRasi string, enableRasi bool) ([]models.MatchCandidate, error) {
	return e.ResolveMatches(models.SearchCriteria{
		NakshatraID:             nakshatraID,
		Gender:                  gender,
		IncludeMathimam:         includeMathimam,
		Rasi:                    seekerRasi,
		EnableRasiCompatibility: enableRasi,
	})
}

// ResolveMatches returns the unordered, unfiltered candidate pool for the
// criteria's seeker. Filtering and ranking are separate steps.
func (e *Engine) ResolveMatches(criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	s, err := e.resolveSeeker(criteria)
	if err != nil {
		return nil, err
	}
	pool := e.profiles.GetAll()
	return e.resolver.Resolve(s.nakshatraID, s.gender, criteria.IncludeMathimam, pool), nil
}

// ApplyFilters narrows candidates through the filter pipeline. Validation
// errors abort; best-effort stages degrade silently.
func (e *Engine) ApplyFilters(candidates []models.MatchCandidate, criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	return e.pipeline.Apply(candidates, criteria)
}

// Rank orders candidates deterministically. It never fails.
func (e *Engine) Rank(candidates []models.MatchCandidate) []models.MatchCandidate {
	return rank.Sort(candidates)
}

// Search composes resolve, filter and rank into one call. An empty result
// is a legitimate outcome, not an error.
func (e *Engine) Search(criteria models.SearchCriteria) ([]models.MatchCandidate, error) {
	requestID := uuid.NewString()
	log := e.logger.WithFields(map[string]interface{}{"requestId": requestID})

	s, err := e.resolveSeeker(criteria)
	if err != nil {
		e.recordSearch(statusOf(err))
		return nil, err
	}

	pool := e.resolver.Resolve(s.nakshatraID, s.gender, criteria.IncludeMathimam, e.profiles.GetAll())

	filtered, err := e.pipeline.Apply(pool, s.criteria)
	if err != nil {
		e.recordSearch(statusOf(err))
		return nil, err
	}

	ranked := rank.Sort(filtered)

	log.Info("search completed", map[string]interface{}{
		"seekerNakshatra": s.nakshatraID,
		"seekerGender":    s.gender,
		"resolved":        len(pool),
		"matched":         len(ranked),
	})
	if len(ranked) == 0 {
		e.recordSearch("empty")
	} else {
		e.recordSearch("ok")
	}
	return ranked, nil
}

func (e *Engine) recordSearch(status string) {
	if e.observer != nil {
		e.observer.RecordSearch(context.Background(), status)
	}
}

func statusOf(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return "validation_error"
	case apperrors.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
