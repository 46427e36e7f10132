package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func candidate(raw string, distance float64) Candidate {
	return Candidate{ID: ParseCandidateID(raw), Raw: raw, Distance: distance}
}

func TestMergeDeduplicatesAcrossModalities(t *testing.T) {
	input := []Candidate{
		candidate("g7_1", 0.10),
		candidate("g7", 0.12),
		candidate("g9_2", 0.15),
	}

	merged := Merge(input, 5)

	assert.Len(t, merged, 2)
	assert.Equal(t, "g7_1", merged[0].Raw)
	assert.Equal(t, "g9_2", merged[1].Raw)
}

func TestMergeAscendingOrderAndCap(t *testing.T) {
	input := []Candidate{
		candidate("g1", 0.8),
		candidate("g2", 0.2),
		candidate("g3", 0.5),
		candidate("g4", 0.1),
		candidate("g5", 0.9),
		candidate("g6", 0.3),
		candidate("g7", 0.7),
		candidate("g8", 0.4),
	}

	merged := Merge(input, 5)

	assert.Len(t, merged, 5)

	for i := 1; i < len(merged); i++ {
		assert.LessOrEqual(t, merged[i-1].Distance, merged[i].Distance)
	}

	// The five smallest distances survive.
	for _, c := range merged {
		assert.LessOrEqual(t, c.Distance, 0.5)
	}
}

func TestMergeDeduplicationInvariant(t *testing.T) {
	input := []Candidate{
		candidate("g1", 0.1), candidate("g1_1", 0.2), candidate("g1_2", 0.3),
		candidate("g2", 0.15), candidate("g2_1", 0.25),
	}

	merged := Merge(input, 5)

	seen := map[string]bool{}
	for _, c := range merged {
		assert.False(t, seen[c.ID.Entity], "entity %s appears twice", c.ID.Entity)
		seen[c.ID.Entity] = true
	}
	assert.Len(t, merged, 2)
}

func TestMergeIsDeterministicAndPure(t *testing.T) {
	input := []Candidate{
		candidate("a_1", 0.2),
		candidate("b", 0.2),
		candidate("c", 0.2),
		candidate("a", 0.2),
	}
	snapshot := make([]Candidate, len(input))
	copy(snapshot, input)

	first := Merge(input, 5)
	second := Merge(input, 5)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, input, "input slice must not be mutated")

	// Ties keep their original concatenation order; a's first occurrence wins.
	assert.Equal(t, []string{"a_1", "b", "c"}, []string{first[0].Raw, first[1].Raw, first[2].Raw})
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, Merge(nil, 5))
}
