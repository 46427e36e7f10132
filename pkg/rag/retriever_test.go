package rag

import (
	"context"
	"fmt"
	"testing"

	"github.com/steamseek/steamseek/pkg/errors"
	"github.com/steamseek/steamseek/pkg/stores/chroma"
	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeVectorStore struct {
	collections map[string]string          // modality substring -> collection ID
	results     map[string][]chroma.Result // collection ID -> hits
	queryErrs   map[string]error
}

func (f *fakeVectorStore) ResolveCollection(ctx context.Context, nameSubstring string) (*chroma.Collection, error) {
	id, ok := f.collections[nameSubstring]
	if !ok {
		return nil, errors.ErrNoCollection
	}
	return &chroma.Collection{ID: id, Name: "games_" + nameSubstring}, nil
}

func (f *fakeVectorStore) Query(ctx context.Context, collectionID string, embedding []float32, n int) ([]chroma.Result, error) {
	if err := f.queryErrs[collectionID]; err != nil {
		return nil, err
	}
	return f.results[collectionID], nil
}

func TestRetrieveConcatenatesModalities(t *testing.T) {
	store := &fakeVectorStore{
		collections: map[string]string{"text": "ct", "image": "ci", "video": "cv"},
		results: map[string][]chroma.Result{
			"ct": {{ID: "g7", Distance: 0.12}},
			"ci": {{ID: "g7_1", Distance: 0.10}},
			"cv": {{ID: "g9_0", Distance: 0.15}},
		},
	}

	retriever := NewRetriever(
		WithVectorStore(store),
		WithEmbedder(&fakeEmbedder{}),
		WithPerModality(3),
	)

	candidates, err := retriever.Retrieve(context.Background(), "a dark fantasy action game")

	assert.NoError(t, err)
	assert.Len(t, candidates, 3)
	assert.Equal(t, "text", candidates[0].Modality)
	assert.Equal(t, "g7", candidates[0].ID.Entity)
	assert.Equal(t, 1, candidates[1].ID.Asset)
	assert.Equal(t, "video", candidates[2].Modality)
}

func TestRetrieveMissingModalityIsNotFatal(t *testing.T) {
	store := &fakeVectorStore{
		// No image collection at all.
		collections: map[string]string{"text": "ct", "video": "cv"},
		results: map[string][]chroma.Result{
			"ct": {{ID: "g7", Distance: 0.12}},
			"cv": {{ID: "g9_0", Distance: 0.15}},
		},
	}

	retriever := NewRetriever(WithVectorStore(store), WithEmbedder(&fakeEmbedder{}))

	candidates, err := retriever.Retrieve(context.Background(), "doc")

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestRetrieveQueryErrorDegradesModality(t *testing.T) {
	store := &fakeVectorStore{
		collections: map[string]string{"text": "ct", "image": "ci", "video": "cv"},
		results: map[string][]chroma.Result{
			"ct": {{ID: "g7", Distance: 0.12}},
			"cv": {{ID: "g9_0", Distance: 0.15}},
		},
		queryErrs: map[string]error{"ci": fmt.Errorf("connection refused")},
	}

	retriever := NewRetriever(WithVectorStore(store), WithEmbedder(&fakeEmbedder{}))

	candidates, err := retriever.Retrieve(context.Background(), "doc")

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestRetrieveEmbeddingFailureIsFatal(t *testing.T) {
	retriever := NewRetriever(
		WithVectorStore(&fakeVectorStore{}),
		WithEmbedder(&fakeEmbedder{err: fmt.Errorf("clip sidecar down")}),
	)

	_, err := retriever.Retrieve(context.Background(), "doc")

	assert.Error(t, err)
}
