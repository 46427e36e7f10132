package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCandidateID(t *testing.T) {
	tests := []struct {
		raw    string
		entity string
		asset  int
	}{
		{"g7", "g7", -1},
		{"g7_1", "g7", 1},
		{"g7_0", "g7", 0},
		{"570", "570", -1},
		{"570_4", "570", 4},
		{"dark_souls", "dark_souls", -1},
		{"dark_souls_2", "dark_souls", 2},
		{"g7_", "g7_", -1},
		{"_1", "_1", -1},
	}

	for _, tc := range tests {
		id := ParseCandidateID(tc.raw)
		assert.Equal(t, tc.entity, id.Entity, "entity of %q", tc.raw)
		assert.Equal(t, tc.asset, id.Asset, "asset of %q", tc.raw)
	}
}

func TestCandidateIDRoundTrip(t *testing.T) {
	for _, raw := range []string{"g7", "g7_1", "570_4"} {
		assert.Equal(t, raw, ParseCandidateID(raw).String())
	}
}
