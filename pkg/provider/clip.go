package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/steamseek/steamseek/pkg/errors"
)

/*
ClipEmbedder calls the CLIP serving sidecar used at ingestion time. The
collections were indexed with a multi-modal visual-text model, so query
embeddings must come from the same space; a generic text embedder would
score against the image/video collections meaninglessly.
*/
type ClipEmbedder struct {
	Endpoint   string // e.g. http://localhost:8001
	httpClient *http.Client
}

// NewClipEmbedder returns a ClipEmbedder with sane defaults.
func NewClipEmbedder(endpoint string) *ClipEmbedder {
	return &ClipEmbedder{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (e *ClipEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body := map[string]any{"inputs": []string{text}}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/embed", e.Endpoint),
		bytes.NewReader(b),
	)

	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("clip: embed status %s", resp.Status)
	}

	var out struct {
		Embeddings [][]float32 `json:"embeddings"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if len(out.Embeddings) == 0 || len(out.Embeddings[0]) == 0 {
		return nil, errors.ErrEmptyCompletion.WithMessagef("clip returned no embedding")
	}

	return out.Embeddings[0], nil
}
