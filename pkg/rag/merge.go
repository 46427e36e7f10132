package rag

import "sort"

/*
Merge collapses the concatenated per-modality candidate lists into one
global ranking: ascending distance, at most one candidate per underlying
entity, capped at limit. The sort is stable, so ties keep their original
per-modality concatenation order, and because the scan runs closest-first
the retained record for each entity is always its closest asset, whatever
the modality.

Merge is a pure function of its input; it never mutates the input slice.
*/
func Merge(candidates []Candidate, limit int) []Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Distance < sorted[j].Distance
	})

	seen := make(map[string]struct{}, limit)
	merged := make([]Candidate, 0, limit)

	for _, candidate := range sorted {
		if _, dup := seen[candidate.ID.Entity]; dup {
			continue
		}

		seen[candidate.ID.Entity] = struct{}{}
		merged = append(merged, candidate)

		if len(merged) == limit {
			break
		}
	}

	return merged
}
