package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcallisters/AI-powered-travel-planner/internal/document"
	"github.com/mcallisters/AI-powered-travel-planner/internal/image"
	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/transcribe"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// Result is the full output of one planning request. The document and image
// are optional; everything else is present on success.
type Result struct {
	RequestID  string
	Transcript string
	Params     trip.Parameters
	Search     *search.Results
	Plan       plan.TripPlan
	Image      *image.Result
	Document   *document.Document
}

// Planner orchestrates the trip-planning pipeline: extraction, category
// search, plan synthesis, and document rendering. All collaborators are
// injected at construction; the planner holds no ambient client state.
type Planner struct {
	extractor   *trip.Extractor
	aggregator  *search.Aggregator
	synthesizer *plan.Synthesizer
	renderer    *document.Renderer
	images      image.Lookup // nil disables image lookup
	transcriber transcribe.Transcriber
	format      document.Format
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithImageLookup enables best-effort cover image lookup.
func WithImageLookup(lookup image.Lookup) Option {
	return func(p *Planner) { p.images = lookup }
}

// WithTranscriber enables the audio front door.
func WithTranscriber(t transcribe.Transcriber) Option {
	return func(p *Planner) { p.transcriber = t }
}

// WithDocumentFormat selects the export format (PDF by default).
func WithDocumentFormat(format document.Format) Option {
	return func(p *Planner) { p.format = format }
}

// WithClock overrides the reference "today" used for extraction.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// New creates a Planner.
func New(
	extractor *trip.Extractor,
	aggregator *search.Aggregator,
	synthesizer *plan.Synthesizer,
	renderer *document.Renderer,
	logger *slog.Logger,
	opts ...Option,
) *Planner {
	p := &Planner{
		extractor:   extractor,
		aggregator:  aggregator,
		synthesizer: synthesizer,
		renderer:    renderer,
		format:      document.FormatPDF,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlanFromText runs the full pipeline on a free-form trip description.
func (p *Planner) PlanFromText(ctx context.Context, text string) (*Result, error) {
	result := &Result{RequestID: uuid.New().String()}
	logger := p.logger.With("request_id", result.RequestID)

	started := time.Now()
	logger.Info("planning trip from text", "chars", len(text))

	params, err := p.extractor.Extract(ctx, text, p.now())
	if err != nil {
		logger.Error("extraction failed", "error", err)
		return nil, err
	}
	result.Params = *params

	if err := p.runPipeline(ctx, logger, result); err != nil {
		return nil, err
	}

	logger.Info("planning complete",
		"destination", result.Params.Destination,
		"duration", time.Since(started))
	return result, nil
}

// PlanFromAudio transcribes a recording and runs the text pipeline on the
// transcript. The transcript is returned alongside the plan.
func (p *Planner) PlanFromAudio(ctx context.Context, path string) (*Result, error) {
	if p.transcriber == nil {
		return nil, types.NewError(types.TRANSCRIBE_FAILED,
			"no transcriber configured, audio input is unavailable")
	}

	transcript, err := p.transcriber.Transcribe(ctx, path)
	if err != nil {
		p.logger.Error("transcription failed", "path", path, "error", err)
		return nil, err
	}

	result, err := p.PlanFromText(ctx, transcript)
	if err != nil {
		return nil, err
	}
	result.Transcript = transcript
	return result, nil
}

// PlanFromParameters runs the pipeline on already-assembled parameters, the
// wizard's entry point. The parameters are finalized (defaults, duration
// derivation, invariant checks) before use.
func (p *Planner) PlanFromParameters(ctx context.Context, params trip.Parameters) (*Result, error) {
	finalized, err := params.Finalize()
	if err != nil {
		return nil, err
	}

	result := &Result{
		RequestID: uuid.New().String(),
		Params:    finalized,
	}
	logger := p.logger.With("request_id", result.RequestID)

	started := time.Now()
	logger.Info("planning trip from parameters", "destination", finalized.Destination)

	if err := p.runPipeline(ctx, logger, result); err != nil {
		return nil, err
	}

	logger.Info("planning complete",
		"destination", result.Params.Destination,
		"duration", time.Since(started))
	return result, nil
}

// runPipeline drives search, image lookup, synthesis, and rendering for a
// result whose parameters are already set.
func (p *Planner) runPipeline(ctx context.Context, logger *slog.Logger, result *Result) error {
	searchResults, err := p.aggregator.Aggregate(ctx, result.Params.SearchRequest())
	if err != nil {
		logger.Error("search aggregation failed", "error", err)
		return err
	}
	result.Search = searchResults
	if len(searchResults.Failed) > 0 {
		logger.Warn("some category searches failed", "categories", searchResults.Failed)
	}

	// Image lookup is best-effort; failure degrades to no image.
	if p.images != nil {
		img, err := p.images.Lookup(ctx, result.Params.Destination)
		if err != nil {
			logger.Warn("image lookup failed, continuing without image", "error", err)
		} else {
			result.Image = img
		}
	}

	narrative, err := p.synthesizer.Synthesize(ctx, result.Params, searchResults)
	if err != nil {
		logger.Error("plan synthesis failed", "error", err)
		return err
	}
	result.Plan = narrative

	var cover []byte
	if result.Image != nil {
		cover = result.Image.Data
	}
	doc, err := p.renderer.Render(result.Params, narrative, cover, p.format)
	if err != nil {
		logger.Error("document rendering failed", "error", err)
		return err
	}
	result.Document = doc

	return nil
}
