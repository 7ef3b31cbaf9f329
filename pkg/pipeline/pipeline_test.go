package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/deckforge/pkg/cache"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/errors"
)

func marketOutline() deck.Outline {
	return deck.Outline{
		Title:   "Acme",
		Company: "Acme",
		Slides: []deck.OutlineSlide{
			{
				SlideNumber: 1,
				SlideType:   "overview",
				Title:       "Acme at a Glance",
				Content:     []string{"Founded 2021", "Logistics automation"},
			},
			{
				SlideNumber: 2,
				SlideType:   "market",
				Title:       "Market Split",
				Content:     []string{"Two regions dominate"},
				ChartType:   "pie",
				Statistics: []deck.Stat{
					{Label: "North America", Value: 40},
					{Label: "Europe", Value: 60},
				},
			},
		},
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.Theme != "modern" {
		t.Errorf("Theme = %q, want modern", opts.Theme)
	}
	if opts.Aspect != deck.Aspect16x9 {
		t.Errorf("Aspect = %q, want %q", opts.Aspect, deck.Aspect16x9)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats = %v, want [json]", opts.Formats)
	}
	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", opts.Workers, DefaultWorkers)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad theme", Options{Theme: "neon"}, errors.ErrCodeInvalidTheme},
		{"bad aspect", Options{Aspect: "21:9"}, errors.ErrCodeInvalidAspect},
		{"bad format", Options{Formats: []string{"docx"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateOutline(t *testing.T) {
	if err := ValidateOutline(marketOutline()); err != nil {
		t.Errorf("valid outline rejected: %v", err)
	}

	if err := ValidateOutline(deck.Outline{}); err == nil {
		t.Error("empty outline should fail validation")
	}

	dup := marketOutline()
	dup.Slides[1].SlideNumber = 1
	err := ValidateOutline(dup)
	if err == nil {
		t.Fatal("duplicate slide numbers should fail validation")
	}
	if !errors.Is(err, errors.ErrCodeInvalidOutline) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidOutline)
	}
}

func TestComposeSlideMarket(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	slide := ComposeSlide(marketOutline().Slides[1], opts.Tokens(), opts.Aspect)

	if slide.SlideNumber != 2 {
		t.Errorf("SlideNumber = %d, want 2", slide.SlideNumber)
	}
	if slide.Archetype.ID != "stat-grid" {
		t.Errorf("archetype = %q, want stat-grid for market intent", slide.Archetype.ID)
	}
	if slide.Canvas.Width != 1920 || slide.Canvas.Height != 1080 {
		t.Errorf("canvas = %gx%g, want 1920x1080", slide.Canvas.Width, slide.Canvas.Height)
	}

	// Title + one bullet + chart
	if len(slide.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(slide.Blocks))
	}

	// The pie chart SVG embeds slice percentages of the total.
	markup := slide.RenderData.Markup
	if !strings.Contains(markup, "40.0%") || !strings.Contains(markup, "60.0%") {
		t.Errorf("markup should contain pie labels 40.0%% and 60.0%%:\n%s", markup)
	}
	if slide.RenderData.Measurements.BlockCount != 3 {
		t.Errorf("Measurements.BlockCount = %d, want 3", slide.RenderData.Measurements.BlockCount)
	}
}

func TestExecuteEndToEnd(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Formats: []string{FormatJSON, FormatMarkdown, FormatHTML},
	}

	result, err := runner.Execute(context.Background(), marketOutline(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Deck == nil {
		t.Fatal("Execute() returned nil deck")
	}
	if result.Deck.SlideCount() != 2 {
		t.Errorf("SlideCount = %d, want 2", result.Deck.SlideCount())
	}
	if result.OutlineHash == "" {
		t.Error("OutlineHash is empty")
	}
	if result.Deck.VisualAssets.Charts != 1 {
		t.Errorf("VisualAssets.Charts = %d, want 1", result.Deck.VisualAssets.Charts)
	}

	// Slides come back in slide-number order.
	for i, s := range result.Deck.Slides {
		if s.SlideNumber != i+1 {
			t.Errorf("slide %d has SlideNumber %d", i, s.SlideNumber)
		}
	}

	for _, format := range opts.Formats {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("no artifact for format %q", format)
		}
	}
	if !strings.Contains(string(result.Artifacts[FormatMarkdown]), "## Market Split") {
		t.Error("markdown artifact should contain slide title")
	}
	if !strings.Contains(string(result.Artifacts[FormatHTML]), "<section") {
		t.Error("html artifact should contain slide sections")
	}
}

func TestExecuteDeckCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	outline := marketOutline()

	first, err := runner.Execute(context.Background(), outline, Options{})
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.DeckHit {
		t.Error("first run should not hit the deck cache")
	}

	second, err := runner.Execute(context.Background(), outline, Options{})
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.DeckHit {
		t.Error("second run should hit the deck cache")
	}
	if !second.CacheInfo.ExportHit {
		t.Error("second run should hit the artifact cache")
	}

	// Refresh bypasses the deck cache.
	third, err := runner.Execute(context.Background(), outline, Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if third.CacheInfo.DeckHit {
		t.Error("refresh run should bypass the deck cache")
	}
}

func TestExecuteRejectsEmptyOutline(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	if _, err := runner.Execute(context.Background(), deck.Outline{}, Options{}); err == nil {
		t.Error("Execute() should reject an empty outline")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	d := &deck.CompletePitchDeck{}
	if _, err := Export(context.Background(), d, []string{"docx"}); err == nil {
		t.Error("Export() should reject unknown formats")
	}
}
