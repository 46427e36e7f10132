package rag

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/steamseek/steamseek/pkg/provider"
)

/*
Pick is one surviving candidate handed to the synthesizer: display metadata
plus the filter's reasoning for keeping it.
*/
type Pick struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}

/*
Synthesize produces the final user-facing recommendation message. This is
the one stage with no fallback: without the synthesized answer there is
nothing left to degrade to, so the error propagates to the caller.
*/
func Synthesize(
	ctx context.Context, llm provider.Interface, query string, picks []Pick,
) (string, error) {
	gamesJSON, err := json.Marshal(picks)

	if err != nil {
		return "", err
	}

	answer, err := llm.Complete(ctx, synthesisPrompt(query, string(gamesJSON)))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}
