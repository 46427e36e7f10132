package provider

import (
	"context"
)

/*
Interface abstracts a text-completion service. Complete returns free text,
CompleteStructured constrains the response to a JSON schema; in both cases
the raw response text is returned and parsing is the caller's job.
*/
type Interface interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteStructured(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

/*
Embedder turns text into a vector in the same space the ingestion process
used to index the collections.
*/
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

func convertToFloat32(f []float64) []float32 {
	out := make([]float32, len(f))

	for i, v := range f {
		out[i] = float32(v)
	}

	return out
}
