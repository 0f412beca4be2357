// Package resolver builds the raw candidate pool for a seeker from the
// precomputed porutham tables.
package resolver

import (
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/models"
)

// Scores at or below this floor never qualify as a match.
const qualifyingScoreFloor = 3

type scoredEntry struct {
	value  int
	source models.MatchingSource
}

// Resolver resolves seekers against an injected, immutable table set.
type Resolver struct {
	tables models.TableSet
	logger logger.Logger
}

func New(tables models.TableSet, log logger.Logger) *Resolver {
	return &Resolver{
		tables: tables,
		logger: log.WithFields(map[string]interface{}{"component": "resolver"}),
	}
}

// Resolve returns every opposite-gender profile whose nakshatra scores above
// the floor for the seeker, enriched with porutham and tier. A seeker
// nakshatra with no table row yields an empty pool, not an error.
func (r *Resolver) Resolve(seekerNakshatra int, seekerGender models.Gender, includeMathimam bool, pool []models.Profile) []models.MatchCandidate {
	scores := r.buildScoreMap(seekerNakshatra, seekerGender, includeMathimam)

	candidates := make([]models.MatchCandidate, 0, len(pool))
	opposite := seekerGender.Opposite()
	for _, p := range pool {
		if p.Gender != opposite {
			continue
		}
		entry, ok := scores[p.NakshatraID]
		if !ok {
			continue
		}
		candidates = append(candidates, models.MatchCandidate{
			Profile:        p,
			Porutham:       entry.value,
			MatchingSource: entry.source,
		})
	}

	r.logger.Debug("candidate pool resolved", map[string]interface{}{
		"seekerNakshatra": seekerNakshatra,
		"seekerGender":    seekerGender,
		"includeMathimam": includeMathimam,
		"scoredNakshatras": len(scores),
		"candidates":       len(candidates),
	})
	return candidates
}

// buildScoreMap collects the qualifying scores for a seeker. Uthamam entries
// take precedence: a mathimam score is only added for nakshatras the uthamam
// row did not cover.
func (r *Resolver) buildScoreMap(seekerNakshatra int, seekerGender models.Gender, includeMathimam bool) map[int]scoredEntry {
	scores := make(map[int]scoredEntry)

	if row := r.tables.Uthamam(seekerGender).Row(seekerNakshatra); row != nil {
		for _, m := range row.Matching {
			if m.Value > qualifyingScoreFloor {
				scores[m.TargetNakshatraID] = scoredEntry{value: m.Value, source: models.SourceUthamam}
			}
		}
	}

	if includeMathimam {
		if row := r.tables.Mathimam(seekerGender).Row(seekerNakshatra); row != nil {
			for _, m := range row.Matching {
				if m.Value <= qualifyingScoreFloor {
					continue
				}
				if _, exists := scores[m.TargetNakshatraID]; exists {
					continue
				}
				scores[m.TargetNakshatraID] = scoredEntry{value: m.Value, source: models.SourceMathimam}
			}
		}
	}

	return scores
}
