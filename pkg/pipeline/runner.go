package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deckforge/pkg/cache"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/feature"
	"github.com/matzehuels/deckforge/pkg/observability"
	"github.com/matzehuels/deckforge/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compose → check → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, outline deck.Outline, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ValidateOutline(outline); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	outlineData, err := deck.MarshalOutline(outline)
	if err != nil {
		return nil, fmt.Errorf("serialize outline: %w", err)
	}
	result.OutlineHash = cache.Hash(outlineData)

	// Stage 1+2: Compose and check
	composeStart := time.Now()
	d, deckHit, err := r.ComposeWithCacheInfo(ctx, outline, result.OutlineHash, opts)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	d.ExportFormats = opts.Formats
	result.Deck = d
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.SlideCount = d.SlideCount()
	result.Stats.BlockCount = d.BlockCount()
	result.CacheInfo.DeckHit = deckHit

	r.Logger.Info("composed deck",
		"slides", d.SlideCount(),
		"blocks", d.BlockCount(),
		"consistent", d.Consistency.Passed,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Export
	exportStart := time.Now()
	artifacts, exportHit, err := r.ExportWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)
	result.CacheInfo.ExportHit = exportHit

	r.Logger.Info("exported deck",
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// ComposeWithCacheInfo composes the deck with caching and returns cache hit info.
// Slides are composed by a worker pool and reassembled in slide-number order;
// the deck-level consistency checks run after every slide has completed.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, outline deck.Outline, outlineHash string, opts Options) (*deck.CompletePitchDeck, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.DeckKey(outlineHash, opts.DeckKeyOpts(outline.Company))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "deck")
			if d, err := deck.UnmarshalDeck(data); err == nil {
				return d, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompose
		} else {
			observability.Cache().OnCacheMiss(ctx, "deck")
		}
	}

	d := r.composeDeck(ctx, outline, opts)

	// Cache the result
	if data, err := deck.MarshalDeck(d); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDeck)
		observability.Cache().OnCacheSet(ctx, "deck", len(data))
	}

	return d, false, nil // Cache miss
}

// Compose is a convenience wrapper that hashes the outline, calls
// ComposeWithCacheInfo, and discards the cache hit info.
func (r *Runner) Compose(ctx context.Context, outline deck.Outline, opts Options) (*deck.CompletePitchDeck, error) {
	data, err := deck.MarshalOutline(outline)
	if err != nil {
		return nil, fmt.Errorf("serialize outline: %w", err)
	}
	d, _, err := r.ComposeWithCacheInfo(ctx, outline, cache.Hash(data), opts)
	return d, err
}

// composeDeck runs slide composition across the worker pool, restores
// slide order, and runs the deck-level consistency checks.
func (r *Runner) composeDeck(ctx context.Context, outline deck.Outline, opts Options) *deck.CompletePitchDeck {
	tokens := opts.Tokens()

	slides := make([]deck.SlideLayout, len(outline.Slides))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := opts.Workers
	if workers > len(outline.Slides) {
		workers = len(outline.Slides)
	}
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := outline.Slides[i]
				start := time.Now()
				observability.Pipeline().OnComposeStart(ctx, s.SlideNumber, s.SlideType)
				slides[i] = ComposeSlide(s, tokens, opts.Aspect)
				observability.Pipeline().OnComposeComplete(ctx, s.SlideNumber, s.SlideType,
					len(slides[i].Blocks), time.Since(start), nil)
			}
		}()
	}
	for i := range outline.Slides {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Restore outline order regardless of completion order.
	sort.Slice(slides, func(i, j int) bool {
		return slides[i].SlideNumber < slides[j].SlideNumber
	})

	checkStart := time.Now()
	observability.Pipeline().OnConsistencyStart(ctx, len(slides))
	report := feature.CheckConsistency(slides, tokens)
	observability.Pipeline().OnConsistencyComplete(ctx, len(slides), report.Passed, time.Since(checkStart))

	return &deck.CompletePitchDeck{
		Outline:      outline,
		Slides:       slides,
		Theme:        opts.Theme,
		VisualAssets: countAssets(slides),
		Consistency:  report,
	}
}

// ExportWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, d *deck.CompletePitchDeck, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from deck data
	deckData, err := deck.MarshalDeck(d)
	if err != nil {
		return nil, false, fmt.Errorf("serialize deck for cache key: %w", err)
	}
	deckHash := cache.Hash(deckData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}

	// Export all formats
	start := time.Now()
	observability.Pipeline().OnExportStart(ctx, opts.Formats)
	exported, err := Export(ctx, d, opts.Formats)
	observability.Pipeline().OnExportComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range exported {
		cacheKey := r.Keyer.ArtifactKey(deckHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return exported, false, nil // Cache miss
}

// Export renders the deck into each requested format.
func Export(ctx context.Context, d *deck.CompletePitchDeck, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		var err error
		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(d)
		case FormatMarkdown:
			data = sink.RenderMarkdown(d)
		case FormatHTML:
			data = sink.RenderHTML(d)
		case FormatPDF:
			data = sink.RenderPDF(d)
		case FormatPPTX:
			data = sink.RenderPPTX(d)
		case FormatStoryboard:
			data, err = sink.RenderStoryboard(ctx, d)
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// countAssets tallies image and chart blocks across all slides.
func countAssets(slides []deck.SlideLayout) deck.AssetSummary {
	var sum deck.AssetSummary
	for _, s := range slides {
		for _, b := range s.Blocks {
			switch b.Kind {
			case deck.BlockImage:
				sum.Images++
			case deck.BlockChart:
				sum.Charts++
			}
		}
	}
	return sum
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
