package rag

import (
	"fmt"
	"strconv"
	"strings"
)

/*
CandidateID is the decoded form of a vector-index identifier. Text records
are keyed by the bare entity ID; image and video records are keyed by
"{entity}_{assetIndex}". The suffix is decoded once here, at the store
boundary, instead of being re-parsed by every consumer.
*/
type CandidateID struct {
	Entity string
	Asset  int // -1 when the ID carries no asset suffix
}

/*
ParseCandidateID decodes a raw vector-index identifier. Only a trailing
"_<digits>" segment counts as an asset suffix, so entity IDs containing
underscores survive intact.
*/
func ParseCandidateID(raw string) CandidateID {
	idx := strings.LastIndex(raw, "_")

	if idx <= 0 || idx == len(raw)-1 {
		return CandidateID{Entity: raw, Asset: -1}
	}

	asset, err := strconv.Atoi(raw[idx+1:])

	if err != nil {
		return CandidateID{Entity: raw, Asset: -1}
	}

	return CandidateID{Entity: raw[:idx], Asset: asset}
}

func (id CandidateID) HasAsset() bool { return id.Asset >= 0 }

func (id CandidateID) String() string {
	if !id.HasAsset() {
		return id.Entity
	}

	return fmt.Sprintf("%s_%d", id.Entity, id.Asset)
}

/*
Candidate is one retrieved vector-index hit, annotated with its decoded
identity and the modality it came from.
*/
type Candidate struct {
	ID       CandidateID
	Raw      string
	Modality string
	Distance float64
}
