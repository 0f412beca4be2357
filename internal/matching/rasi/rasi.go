// Package rasi implements the secondary zodiac compatibility predicate.
package rasi

import "strings"

// Risk tokens a rasi/lagnam value can carry. Two profiles sharing any of
// these are considered compatible under the overlap rule.
var riskTokens = map[string]bool{
	"Sani":  true,
	"Sevai": true,
	"Kethu": true,
	"Raghu": true,
}

// TokenSuth marks a profile with no dosham; it only pairs with its like.
const TokenSuth = "Suth"

// IsCompatible decides whether the two sides of a pairing are compatible.
//
// The predicate is directionally asymmetric: the pure-Suth rule triggers on
// the male side only, so callers must pass the male profile's value as
// maleSide and the female profile's value as femaleSide regardless of which
// party initiated the search.
//
// Rules, in order:
//  1. A male side that is exactly {Suth} pairs only with a female side that
//     is exactly {Suth}.
//  2. Otherwise the pair is compatible iff the two sides share at least one
//     risk token.
func IsCompatible(maleSide, femaleSide string) bool {
	maleTokens := Split(maleSide)
	femaleTokens := Split(femaleSide)

	if isPureSuth(maleTokens) {
		return isPureSuth(femaleTokens)
	}

	for token := range maleTokens {
		if riskTokens[token] && femaleTokens[token] {
			return true
		}
	}
	return false
}

// Split parses a slash-delimited rasi/lagnam value into its token set.
// Blank segments are discarded.
func Split(value string) map[string]bool {
	tokens := make(map[string]bool)
	for _, part := range strings.Split(value, "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens[part] = true
		}
	}
	return tokens
}

func isPureSuth(tokens map[string]bool) bool {
	return len(tokens) == 1 && tokens[TokenSuth]
}
