package chroma

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
Client wraps a Chroma endpoint. Collections are resolved by name at query
time because the ingestion process suffixes collection names with the
embedding model revision.
*/
type Client struct {
	Endpoint   string // e.g. http://localhost:8000
	httpClient *http.Client
}

/*
Collection is the subset of Chroma's collection record the retriever needs.
*/
type Collection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

/*
Result is one nearest-neighbour hit. Distance is opaque beyond
"lower is more similar"; the metric is fixed at ingestion time.
*/
type Result struct {
	ID       string
	Distance float64
}

// New returns a Client with sane defaults.
func New(endpoint string) *Client {
	return &Client{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

/*
ListCollections retrieves every collection exposed by the store.
*/
func (client *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/api/v1/collections", client.Endpoint),
		nil,
	)

	resp, err := client.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chroma: list status %s", resp.Status)
	}

	var out []Collection

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

/*
ResolveCollection finds the first collection whose name contains the given
substring, mirroring how the ingestion side names the text/image/video
collections.
*/
func (client *Client) ResolveCollection(
	ctx context.Context, nameSubstring string,
) (*Collection, error) {
	collections, err := client.ListCollections(ctx)

	if err != nil {
		return nil, err
	}

	for _, collection := range collections {
		if strings.Contains(collection.Name, nameSubstring) {
			return &collection, nil
		}
	}

	return nil, errors.ErrNoCollection
}

/*
Query runs a k-nearest-neighbour search with a single query embedding and
returns the hits in ranked order.
*/
func (client *Client) Query(
	ctx context.Context, collectionID string, embedding []float32, n int,
) ([]Result, error) {
	body := map[string]any{
		"query_embeddings": [][]float32{embedding},
		"n_results":        n,
		"include":          []string{"distances"},
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/api/v1/collections/%s/query", client.Endpoint, collectionID),
		bytes.NewReader(b),
	)

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chroma: query status %s", resp.Status)
	}

	// Chroma answers with parallel arrays, one row per query embedding.
	var out struct {
		IDs       [][]string  `json:"ids"`
		Distances [][]float64 `json:"distances"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	if len(out.IDs) == 0 || len(out.Distances) == 0 {
		return nil, errors.ErrBadResponse
	}

	ids, distances := out.IDs[0], out.Distances[0]

	if len(ids) != len(distances) {
		return nil, errors.ErrBadResponse.WithMessagef(
			"got %d ids but %d distances", len(ids), len(distances),
		)
	}

	results := make([]Result, 0, len(ids))

	for i, id := range ids {
		results = append(results, Result{ID: id, Distance: distances[i]})
	}

	return results, nil
}
