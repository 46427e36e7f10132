package rag

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steamseek/steamseek/pkg/provider"
)

/*
Expand rewrites the user query into a hypothetical game description (HyDE),
which retrieves far better against description embeddings than the short
query itself. Expansion is best-effort: on any failure the raw query is
returned unchanged so the rest of the pipeline never blocks on this stage.
*/
func Expand(ctx context.Context, llm provider.Interface, query string) string {
	doc, err := llm.Complete(ctx, hydePrompt(query))

	if err != nil || strings.TrimSpace(doc) == "" {
		log.Warn(
			"query expansion failed, falling back to the raw query",
			"query", query, "error", err,
		)
		return query
	}

	return strings.TrimSpace(doc)
}
