package rasi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		maleSide   string
		femaleSide string
		want       bool
	}{
		{"pure suth pairs with pure suth", "Suth", "Suth", true},
		{"pure suth rejects dosham", "Suth", "Sani", false},
		{"pure suth rejects mixed", "Suth", "Suth/Sani", false},
		{"shared risk token", "Sani/Kethu", "Kethu/Raghu", true},
		{"no shared risk token", "Sani", "Raghu", false},
		{"unknown tokens never match", "Mars", "Venus", false},
		{"risk overlap ignores unknown extras", "Sevai/Moon", "Sevai", true},
		{"female pure suth does not trigger suth rule", "Sani", "Suth", false},
		{"empty male side", "", "Sani", false},
		{"whitespace around tokens", " Sani / Kethu ", "Kethu", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompatible(tt.maleSide, tt.femaleSide))
		})
	}
}

func TestIsCompatibleIsDirectional(t *testing.T) {
	// The pure-Suth rule only fires on the male side, so swapping the
	// arguments changes the outcome.
	assert.False(t, IsCompatible("Suth", "Sani"))
	assert.False(t, IsCompatible("Sani", "Suth"))
	assert.True(t, IsCompatible("Suth", "Suth"))
}

func TestSplit(t *testing.T) {
	assert.Equal(t, map[string]bool{"Sani": true, "Kethu": true}, Split("Sani/Kethu"))
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("//"))
}
