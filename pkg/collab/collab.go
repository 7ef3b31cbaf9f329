package collab

import (
	"context"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// InsightProvider supplies ranked textual insights per topic category
// (market size, competition, financials, ...) for a company/industry
// context. The mapping is opaque to the pipeline: category name to
// list-of-strings, best insight first.
type InsightProvider interface {
	Insights(ctx context.Context, company, industry string) (map[string][]string, error)
}

// ProseWriter generates free text from a prompt. Used only for prose
// around the deck (summaries, speaker notes), never for layout decisions.
type ProseWriter interface {
	Write(ctx context.Context, prompt string) (string, error)
}

// ImageSearcher returns candidate image descriptors for keywords.
// Implementations return metadata only; the pipeline never fetches or
// decodes pixels.
type ImageSearcher interface {
	Search(ctx context.Context, keywords string) ([]deck.ImageAsset, error)
}
