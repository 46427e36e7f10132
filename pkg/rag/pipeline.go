package rag

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/steamseek/steamseek/pkg/catalog"
	"github.com/steamseek/steamseek/pkg/errors"
	"github.com/steamseek/steamseek/pkg/provider"
)

/*
Stage names the steps of one pipeline run. A run walks the stages in order;
only EXPANDING can self-recover, every later stage may end the run in
FAILED. There are no retries: this is a batch-invoked pipeline and the
caller decides whether to run it again.
*/
type Stage int

const (
	StageExpanding Stage = iota
	StageRetrieving
	StageMerging
	StageFiltering
	StageSynthesizing
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageExpanding:    "EXPANDING",
	StageRetrieving:   "RETRIEVING",
	StageMerging:      "MERGING",
	StageFiltering:    "FILTERING",
	StageSynthesizing: "SYNTHESIZING",
	StageDone:         "DONE",
	StageFailed:       "FAILED",
}

func (s Stage) String() string { return stageNames[s] }

// NoMatchesAnswer is returned without an LLM call when retrieval comes back
// empty; an empty candidate set is a valid outcome, not an error.
const NoMatchesAnswer = "I couldn't find any games matching your request. Try describing the genre, mechanics or mood you're after in a few more words."

/*
Catalog resolves entity identifiers to display metadata.
*/
type Catalog interface {
	Resolve(id string) catalog.Game
}

/*
Recommendation is one game in the final answer, kept alongside the free-text
message so callers can render structured output too.
*/
type Recommendation struct {
	Entity      string  `json:"entity"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Reasoning   string  `json:"reasoning"`
	Distance    float64 `json:"distance"`
}

/*
Result is the outcome of one pipeline run.
*/
type Result struct {
	RunID           string           `json:"run_id"`
	Query           string           `json:"query"`
	Stage           Stage            `json:"-"`
	Answer          string           `json:"answer"`
	Recommendations []Recommendation `json:"recommendations"`
}

/*
Pipeline wires the five stages together. All external clients are injected
once at construction; a Pipeline holds no per-request state and is safe to
reuse across runs.
*/
type Pipeline struct {
	llm        provider.Interface
	retriever  *Retriever
	catalog    Catalog
	MergeLimit int
}

type PipelineOption func(*Pipeline)

func NewPipeline(options ...PipelineOption) *Pipeline {
	pipeline := &Pipeline{MergeLimit: 5}

	for _, option := range options {
		option(pipeline)
	}

	return pipeline
}

func WithProvider(llm provider.Interface) PipelineOption {
	return func(p *Pipeline) { p.llm = llm }
}

func WithRetriever(retriever *Retriever) PipelineOption {
	return func(p *Pipeline) { p.retriever = retriever }
}

func WithCatalog(c Catalog) PipelineOption {
	return func(p *Pipeline) { p.catalog = c }
}

func WithMergeLimit(limit int) PipelineOption {
	return func(p *Pipeline) { p.MergeLimit = limit }
}

/*
Run executes one query through the full pipeline. The returned Result is
valid whenever err is nil, including the no-matches outcome; a non-nil err
always carries the failing stage via errors.StageError.
*/
func (p *Pipeline) Run(ctx context.Context, query string) (*Result, error) {
	result := &Result{RunID: uuid.NewString(), Query: query}

	// EXPANDING: self-recovering, Expand falls back to the raw query.
	result.Stage = StageExpanding
	doc := Expand(ctx, p.llm, query)
	log.Info("expanded query", "run", result.RunID, "stage", result.Stage, "document", doc)

	result.Stage = StageRetrieving
	candidates, err := p.retriever.Retrieve(ctx, doc)

	if err != nil {
		result.Stage = StageFailed
		return result, errors.NewStageError("RETRIEVING", query, "retrieval failed", err)
	}

	log.Info("retrieved candidates", "run", result.RunID, "count", len(candidates))

	result.Stage = StageMerging
	merged := Merge(candidates, p.MergeLimit)

	if len(merged) == 0 {
		log.Info("no candidates after merging", "run", result.RunID, "query", query)
		result.Stage = StageDone
		result.Answer = NoMatchesAnswer
		return result, nil
	}

	result.Stage = StageFiltering
	entries := make([]Entry, len(merged))

	for i, candidate := range merged {
		game := p.catalog.Resolve(candidate.ID.Entity)
		entries[i] = Entry{
			Name:        game.Name,
			Description: game.FinalDescription,
			Distance:    candidate.Distance,
		}
	}

	verdicts := Filter(ctx, p.llm, query, entries)

	var picks []Pick

	for i, verdict := range verdicts {
		if !verdict.IsRelevant {
			log.Info(
				"dropped candidate",
				"run", result.RunID, "entity", merged[i].ID.Entity, "reasoning", verdict.Reasoning,
			)
			continue
		}

		picks = append(picks, Pick{
			Name:        entries[i].Name,
			Description: entries[i].Description,
			Reasoning:   verdict.Reasoning,
		})
		result.Recommendations = append(result.Recommendations, Recommendation{
			Entity:      merged[i].ID.Entity,
			Name:        entries[i].Name,
			Description: entries[i].Description,
			Reasoning:   verdict.Reasoning,
			Distance:    merged[i].Distance,
		})
	}

	result.Stage = StageSynthesizing
	answer, err := Synthesize(ctx, p.llm, query, picks)

	if err != nil {
		result.Stage = StageFailed
		return result, errors.NewStageError("SYNTHESIZING", query, "synthesis failed", err)
	}

	result.Stage = StageDone
	result.Answer = answer
	return result, nil
}
