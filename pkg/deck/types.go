package deck

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Aspect ratio tags accepted by the canvas builder.
const (
	Aspect16x9       = "16:9"
	Aspect4x3        = "4:3"
	AspectWidescreen = "widescreen"
)

// Region names used by archetype grid templates.
const (
	RegionTitle  = "title"
	RegionBody   = "body"
	RegionVisual = "visual"
	RegionFooter = "footer"
)

// =============================================================================
// Outline - Pipeline Input
// =============================================================================

// Outline is the ordered slide plan produced by the upstream outline
// collaborator. It is the sole input to deck generation.
type Outline struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Company  string         `json:"company,omitempty"`
	Industry string         `json:"industry,omitempty"`
	Slides   []OutlineSlide `json:"slides"`
}

// OutlineSlide is one planned slide: flat content with no layout decisions.
type OutlineSlide struct {
	SlideNumber int          `json:"slide_number"`
	SlideType   string       `json:"slide_type"` // intent tag, e.g. "market", "comparison"
	Title       string       `json:"title"`
	Content     []string     `json:"content,omitempty"`
	KeyPoints   []string     `json:"key_points,omitempty"`
	Statistics  []Stat       `json:"statistics,omitempty"`
	ChartType   string       `json:"chart_type,omitempty"`
	Images      []ImageAsset `json:"images,omitempty"`
}

// Stat is one labeled numeric data point for chart synthesis.
type Stat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ImageAsset is an image descriptor from the asset search collaborator.
// The pipeline never fetches or decodes pixels; it only consumes metadata.
type ImageAsset struct {
	URL     string `json:"url"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	License string `json:"license,omitempty"`
	Alt     string `json:"alt,omitempty"`
}

// =============================================================================
// Archetype - Slide Grid Template
// =============================================================================

// Region describes one content region of an archetype: the grid-area it
// occupies and the aspect ratio of the space it offers to visuals.
type Region struct {
	Area   string  `json:"area"`
	Aspect float64 `json:"aspect,omitempty"`
}

// Archetype is a named, reusable slide grid template mapping content regions
// to layout areas. Archetypes are catalog entries: selected, never mutated.
type Archetype struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Regions      map[string]Region `json:"regions"`
	GridTemplate string            `json:"grid_template"` // "rows / columns", CSS grid-template syntax
	SuitableFor  []string          `json:"suitable_for"`
}

// Suits reports whether the archetype declares itself suitable for the
// given intent tag.
func (a Archetype) Suits(intent string) bool {
	for _, tag := range a.SuitableFor {
		if tag == intent {
			return true
		}
	}
	return false
}

// =============================================================================
// Canvas & Grid
// =============================================================================

// Canvas is the concrete pixel space a slide is laid out on.
type Canvas struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio string  `json:"aspect_ratio"`
}

// Grid is the archetype's grid template split into its CSS components.
// Rows and Columns are preserved verbatim for the renderer.
type Grid struct {
	Rows    string   `json:"rows"`
	Columns string   `json:"columns"`
	Areas   []string `json:"areas,omitempty"`
}

// =============================================================================
// SlideLayout - Per-Slide Pipeline Output
// =============================================================================

// Measurements holds deterministic layout estimates computed by the renderer.
type Measurements struct {
	EstimatedTextHeight float64 `json:"estimated_text_height"`
	BlockCount          int     `json:"block_count"`
}

// RenderData is the rendered artifact for one slide: a markup fragment, the
// stylesheet derived from the theme tokens, and layout measurements.
type RenderData struct {
	Markup       string       `json:"markup"`
	StyleSheet   string       `json:"style_sheet"`
	Measurements Measurements `json:"measurements"`
}

// SlideLayout is the fully laid-out slide produced by the renderer stage.
// It is immutable after creation.
type SlideLayout struct {
	SlideNumber int            `json:"slide_number"`
	Archetype   Archetype      `json:"archetype"`
	Blocks      []ContentBlock `json:"blocks"`
	Canvas      Canvas         `json:"canvas"`
	Grid        Grid           `json:"grid"`
	RenderData  RenderData     `json:"render_data"`
}

// =============================================================================
// Consistency Report
// =============================================================================

// ConsistencyCheck is one deck-wide validation result. Failing checks are
// reported, never fatal.
type ConsistencyCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// ConsistencyReport aggregates all cross-slide checks for one deck.
type ConsistencyReport struct {
	Checks []ConsistencyCheck `json:"checks"`
	Passed bool               `json:"passed"`
}

// =============================================================================
// CompletePitchDeck - Aggregate Root
// =============================================================================

// AssetSummary counts the visual assets placed across the deck.
type AssetSummary struct {
	Images int `json:"images"`
	Charts int `json:"charts"`
}

// CompletePitchDeck is the aggregate produced by one generation request.
// It has no further mutation after the export stage.
type CompletePitchDeck struct {
	Outline       Outline           `json:"outline"`
	Slides        []SlideLayout     `json:"slides"`
	Theme         string            `json:"theme"`
	VisualAssets  AssetSummary      `json:"visual_assets"`
	ExportFormats []string          `json:"export_formats,omitempty"`
	Consistency   ConsistencyReport `json:"consistency"`
}

// SlideCount returns the number of laid-out slides.
func (d *CompletePitchDeck) SlideCount() int { return len(d.Slides) }

// BlockCount returns the total number of content blocks across all slides.
func (d *CompletePitchDeck) BlockCount() int {
	n := 0
	for _, s := range d.Slides {
		n += len(s.Blocks)
	}
	return n
}
