// Package pipeline provides the core deck synthesis pipeline for Deckforge.
//
// This package implements the complete compose → check → export pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compose: Turn each outline slide into a laid-out slide (blocks,
//     archetype, canvas, text fitting, visuals, charts, balancing, render)
//  2. Check: Run deck-level consistency checks across all composed slides
//  3. Export: Generate output in various formats (JSON, Markdown, HTML,
//     PDF, PPTX, storyboard)
//
// Slides are independent through the compose stage and are processed by a
// worker pool; the final slide order is restored by slide number. Checks
// and exports are deck-level barriers that start only after every slide
// has been composed.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Theme:   "modern",
//	    Aspect:  "16:9",
//	    Formats: []string{"html"},
//	}
//	result, err := runner.Execute(ctx, outline, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deckforge/pkg/cache"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/errors"
	"github.com/matzehuels/deckforge/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultAspect is the default slide aspect ratio.
	DefaultAspect = deck.Aspect16x9

	// DefaultWorkers is the number of concurrent slide composition workers.
	// Slide composition is pure CPU work on small data, so a small pool is
	// enough to overlap composition across slides.
	DefaultWorkers = 4
)

// Format constants for output formats.
const (
	FormatJSON       = "json"
	FormatMarkdown   = "markdown"
	FormatHTML       = "html"
	FormatPDF        = "pdf"
	FormatPPTX       = "pptx"
	FormatStoryboard = "storyboard"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:       true,
	FormatMarkdown:   true,
	FormatHTML:       true,
	FormatPDF:        true,
	FormatPPTX:       true,
	FormatStoryboard: true,
}

// ValidAspects is the set of supported aspect ratios.
var ValidAspects = map[string]bool{
	deck.Aspect16x9:       true,
	deck.Aspect4x3:        true,
	deck.AspectWidescreen: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the deck pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	Theme   string   `json:"theme,omitempty"`
	Aspect  string   `json:"aspect,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Workers int      `json:"workers,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	// tokens is resolved from Theme during validation.
	tokens theme.Tokens
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Deck is the complete composed deck.
	Deck *deck.CompletePitchDeck

	// OutlineHash is the content hash of the input outline.
	OutlineHash string

	// Artifacts contains exported outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount      int
	BlockCount      int
	ComposeTime     time.Duration
	ConsistencyTime time.Duration
	ExportTime      time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DeckHit   bool // Whether the composed deck came from cache
	ExportHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateTheme checks that a theme name is registered.
func ValidateTheme(name string) error {
	if !theme.Valid(name) {
		return errors.New(errors.ErrCodeInvalidTheme,
			"invalid theme: %q (available: modern, corporate, startup)", name)
	}
	return nil
}

// ValidateAspect checks that an aspect ratio tag is supported.
func ValidateAspect(aspect string) error {
	if !ValidAspects[aspect] {
		return errors.New(errors.ErrCodeInvalidAspect,
			"invalid aspect: %q (must be one of: 16:9, 4:3, widescreen)", aspect)
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, markdown, html, pdf, pptx, storyboard)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOutline checks the structural validity of a pipeline input.
// Degenerate slides (no title, no content) are allowed through; the
// compose stages handle them. Only structurally unusable outlines fail.
func ValidateOutline(o deck.Outline) error {
	var v errors.ValidationError
	if len(o.Slides) == 0 {
		v.Add("outline has no slides")
	}
	seen := make(map[int]bool, len(o.Slides))
	for i, s := range o.Slides {
		if s.SlideNumber <= 0 {
			v.Add("slide %d has non-positive slide_number %d", i+1, s.SlideNumber)
			continue
		}
		if seen[s.SlideNumber] {
			v.Add("duplicate slide_number %d", s.SlideNumber)
		}
		seen[s.SlideNumber] = true
	}
	return v.AsError()
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Theme == "" {
		o.Theme = theme.DefaultName
	}
	if err := ValidateTheme(o.Theme); err != nil {
		return err
	}
	o.tokens, _ = theme.Lookup(o.Theme)

	if o.Aspect == "" {
		o.Aspect = DefaultAspect
	}
	if err := ValidateAspect(o.Aspect); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Tokens returns the design tokens resolved from the theme name.
// ValidateAndSetDefaults must have been called.
func (o *Options) Tokens() theme.Tokens {
	if !o.validated {
		return theme.Default()
	}
	return o.tokens
}

// DeckKeyOpts returns cache key options for the composed deck.
func (o *Options) DeckKeyOpts(company string) cache.DeckKeyOpts {
	return cache.DeckKeyOpts{
		Theme:   o.Theme,
		Aspect:  o.Aspect,
		Company: company,
	}
}

// ArtifactKeyOpts returns cache key options for an exported artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}
