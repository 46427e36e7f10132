package rag

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steamseek/steamseek/pkg/provider"
)

/*
Entry is one candidate as presented to the relevance filter: display
metadata resolved from the catalog plus the retrieval distance.
*/
type Entry struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Distance    float64 `json:"distance"`
}

/*
Verdict is the filter's judgement for one candidate, parallel to the input.
*/
type Verdict struct {
	IsRelevant bool   `json:"is_relevant"`
	Reasoning  string `json:"reasoning"`
}

/*
Filter asks the model to judge each candidate against the original query
and returns one verdict per entry, in input order.

The filter must never shrink the candidate set by accident: when the
response cannot be parsed, or parses to a different length than the input
(which would misalign a positional zip), every candidate passes and its own
record stands in for the reasoning. Losing the quality gate degrades the
answer; losing the candidates kills it.
*/
func Filter(
	ctx context.Context, llm provider.Interface, query string, entries []Entry,
) []Verdict {
	if len(entries) == 0 {
		return nil
	}

	gamesJSON, err := json.Marshal(entries)

	if err != nil {
		log.Error("failed to encode filter candidates", "error", err)
		return passAll(entries)
	}

	raw, err := llm.CompleteStructured(
		ctx, filteringPrompt(query, string(gamesJSON)), FilterSchema(),
	)

	if err != nil {
		log.Error("relevance filter call failed, passing all candidates", "query", query, "error", err)
		return passAll(entries)
	}

	verdicts, err := parseVerdicts(raw)

	if err != nil {
		log.Error("relevance filter returned unparseable output, passing all candidates", "query", query, "error", err)
		return passAll(entries)
	}

	if len(verdicts) != len(entries) {
		log.Error(
			"relevance filter returned a misaligned verdict list, passing all candidates",
			"query", query, "want", len(entries), "got", len(verdicts),
		)
		return passAll(entries)
	}

	return verdicts
}

/*
parseVerdicts accepts either a bare JSON array of verdicts or the
{"filtered_games": [...]} envelope some models produce, with or without
markdown code fences.
*/
func parseVerdicts(raw string) ([]Verdict, error) {
	cleaned := stripFences(raw)

	var verdicts []Verdict

	if err := json.Unmarshal([]byte(cleaned), &verdicts); err == nil {
		return verdicts, nil
	}

	var envelope struct {
		FilteredGames []Verdict `json:"filtered_games"`
	}

	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, err
	}

	return envelope.FilteredGames, nil
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	return strings.TrimSpace(cleaned)
}

func passAll(entries []Entry) []Verdict {
	verdicts := make([]Verdict, len(entries))

	for i, entry := range entries {
		verdicts[i] = Verdict{IsRelevant: true, Reasoning: entry.Description}
	}

	return verdicts
}
