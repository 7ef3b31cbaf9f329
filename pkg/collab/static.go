package collab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/observability"
)

// Insight categories produced by the static provider, in outline order.
const (
	CategoryOverview    = "overview"
	CategoryProblem     = "problem"
	CategorySolution    = "solution"
	CategoryMarket      = "market"
	CategoryCompetition = "competition"
	CategoryFinancials  = "financials"
	CategoryTeam        = "team"
	CategoryRoadmap     = "roadmap"
)

// StaticInsightProvider is an offline InsightProvider with canned insights
// templated on the company and industry. It stands in for the hosted
// research collaborator during local generation and in tests.
type StaticInsightProvider struct{}

// Insights returns a canned category map templated on company and industry.
func (StaticInsightProvider) Insights(ctx context.Context, company, industry string) (map[string][]string, error) {
	start := time.Now()
	observability.Collab().OnCall(ctx, "static-insights", "insights")
	defer func() {
		observability.Collab().OnResult(ctx, "static-insights", "insights", time.Since(start))
	}()

	return map[string][]string{
		CategoryOverview: {
			fmt.Sprintf("%s operates in the %s industry", company, industry),
			fmt.Sprintf("%s is positioned for rapid growth", company),
		},
		CategoryProblem: {
			fmt.Sprintf("The %s industry suffers from fragmented tooling", industry),
			"Existing solutions are slow, manual, and error-prone",
			"Customers lack visibility into outcomes",
		},
		CategorySolution: {
			fmt.Sprintf("%s automates the core %s workflow end to end", company, industry),
			"A single platform replaces three point solutions",
			"Setup takes minutes, not months",
		},
		CategoryMarket: {
			fmt.Sprintf("The global %s market is expanding at double-digit rates", industry),
			"Early adopters report strong willingness to pay",
		},
		CategoryCompetition: {
			"Incumbents compete on price, not capability",
			fmt.Sprintf("%s wins on speed and integration depth", company),
		},
		CategoryFinancials: {
			"Revenue has grown consistently quarter over quarter",
			"Gross margins improve with scale",
		},
		CategoryTeam: {
			fmt.Sprintf("The founding team has deep %s domain experience", industry),
			"Key hires cover engineering, sales, and operations",
		},
		CategoryRoadmap: {
			"Expand into adjacent segments within twelve months",
			"Strategic partnerships unlock enterprise distribution",
		},
	}, nil
}

// StaticProseWriter is an offline ProseWriter that template-fills prose
// from the prompt instead of calling a generation service.
type StaticProseWriter struct{}

// Write returns deterministic filler prose derived from the prompt.
func (StaticProseWriter) Write(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	observability.Collab().OnCall(ctx, "static-prose", "write")
	defer func() {
		observability.Collab().OnResult(ctx, "static-prose", "write", time.Since(start))
	}()

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", nil
	}
	return fmt.Sprintf("In summary: %s.", strings.TrimRight(prompt, ".")), nil
}

// StaticImageSearcher is an offline ImageSearcher returning placeholder
// image descriptors keyed to the search terms.
type StaticImageSearcher struct{}

// Search returns a single placeholder descriptor for the keywords.
func (StaticImageSearcher) Search(ctx context.Context, keywords string) ([]deck.ImageAsset, error) {
	start := time.Now()
	observability.Collab().OnCall(ctx, "static-images", "search")
	defer func() {
		observability.Collab().OnResult(ctx, "static-images", "search", time.Since(start))
	}()

	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(keywords)), " ", "-")
	if slug == "" {
		return nil, nil
	}
	return []deck.ImageAsset{
		{
			URL:     fmt.Sprintf("https://images.example.com/%s.jpg", slug),
			Width:   1600,
			Height:  900,
			License: "CC0",
			Alt:     keywords,
		},
	}, nil
}
