package collab

import (
	"context"
	"fmt"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// visualSlideTypes are the slide types that get an illustrative image
// attached during synthesis when an ImageSearcher is available.
var visualSlideTypes = map[string]bool{
	"solution": true,
	"team":     true,
}

// Synthesizer bundles the collaborators into full outline synthesis:
// insights drive the slide plan, the image searcher attaches visuals, and
// the prose writer closes the deck with a summary slide.
//
// Insights is required; Prose and Images are optional and their failures
// degrade to a plainer outline instead of aborting.
type Synthesizer struct {
	Insights InsightProvider
	Prose    ProseWriter
	Images   ImageSearcher
}

// NewStaticSynthesizer returns a synthesizer wired to the offline static
// collaborators, suitable for local generation and tests.
func NewStaticSynthesizer() Synthesizer {
	return Synthesizer{
		Insights: StaticInsightProvider{},
		Prose:    StaticProseWriter{},
		Images:   StaticImageSearcher{},
	}
}

// Outline synthesizes a complete pipeline input for a company and industry.
func (s Synthesizer) Outline(ctx context.Context, company, industry string) (deck.Outline, error) {
	insights, err := s.Insights.Insights(ctx, company, industry)
	if err != nil {
		return deck.Outline{}, fmt.Errorf("research %s: %w", company, err)
	}
	outline := BuildOutline(company, industry, insights)

	if s.Images != nil {
		for i := range outline.Slides {
			slide := &outline.Slides[i]
			if !visualSlideTypes[slide.SlideType] {
				continue
			}
			assets, err := s.Images.Search(ctx, industry+" "+slide.SlideType)
			if err != nil {
				continue // slide stays text-only
			}
			slide.Images = assets
		}
	}

	if s.Prose != nil && len(outline.Slides) > 0 {
		summary, err := s.Prose.Write(ctx, fmt.Sprintf("%s is transforming %s", company, industry))
		if err == nil && summary != "" {
			outline.Slides = append(outline.Slides, deck.OutlineSlide{
				SlideNumber: len(outline.Slides) + 1,
				SlideType:   "closing",
				Title:       "Thank You",
				Content:     []string{summary},
			})
		}
	}
	return outline, nil
}
