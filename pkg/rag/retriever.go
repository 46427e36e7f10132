package rag

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/steamseek/steamseek/pkg/provider"
	"github.com/steamseek/steamseek/pkg/stores/chroma"
)

// Modalities are fixed: every game has one text embedding record, up to
// five image records and at most one video record.
var Modalities = []string{"text", "image", "video"}

/*
VectorStore is the slice of the Chroma client the retriever uses.
*/
type VectorStore interface {
	ResolveCollection(ctx context.Context, nameSubstring string) (*chroma.Collection, error)
	Query(ctx context.Context, collectionID string, embedding []float32, n int) ([]chroma.Result, error)
}

/*
Retriever probes every modality's collection with the text embedding of the
expansion document. The cross-modal probe is intentional: the index was
built with a shared visual-text embedding space, so a text vector ranks
image and video records meaningfully.
*/
type Retriever struct {
	store       VectorStore
	embedder    provider.Embedder
	PerModality int
}

type RetrieverOption func(*Retriever)

func NewRetriever(options ...RetrieverOption) *Retriever {
	retriever := &Retriever{PerModality: 3}

	for _, option := range options {
		option(retriever)
	}

	return retriever
}

func WithVectorStore(store VectorStore) RetrieverOption {
	return func(r *Retriever) { r.store = store }
}

func WithEmbedder(embedder provider.Embedder) RetrieverOption {
	return func(r *Retriever) { r.embedder = embedder }
}

func WithPerModality(k int) RetrieverOption {
	return func(r *Retriever) { r.PerModality = k }
}

/*
Retrieve embeds the expansion document once and runs a k-nearest-neighbour
query per modality, concatenating the per-modality result lists in fixed
modality order. A missing or failing collection is logged and contributes
zero candidates; only an embedding failure is fatal, since without a query
vector no modality can proceed.
*/
func (r *Retriever) Retrieve(ctx context.Context, doc string) ([]Candidate, error) {
	embedding, err := r.embedder.Embed(ctx, doc)

	if err != nil {
		return nil, err
	}

	var candidates []Candidate

	for _, modality := range Modalities {
		collection, err := r.store.ResolveCollection(ctx, modality)

		if err != nil {
			log.Error("no collection for modality", "modality", modality, "error", err)
			continue
		}

		results, err := r.store.Query(ctx, collection.ID, embedding, r.PerModality)

		if err != nil {
			log.Error(
				"failed to query collection",
				"modality", modality, "collection", collection.Name, "error", err,
			)
			continue
		}

		for _, result := range results {
			candidates = append(candidates, Candidate{
				ID:       ParseCandidateID(result.ID),
				Raw:      result.ID,
				Modality: modality,
				Distance: result.Distance,
			})
		}
	}

	return candidates, nil
}
