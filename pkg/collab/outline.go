package collab

import (
	"fmt"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// slidePlan maps one insight category to a planned slide.
type slidePlan struct {
	category  string
	slideType string
	title     string
	chartType string
	stats     []deck.Stat
}

// standardPlan is the canonical pitch-deck slide sequence. Categories
// missing from the insight map are skipped, so a sparse provider still
// yields a valid outline.
var standardPlan = []slidePlan{
	{category: CategoryOverview, slideType: "overview", title: "Overview"},
	{category: CategoryProblem, slideType: "problem", title: "The Problem"},
	{category: CategorySolution, slideType: "solution", title: "Our Solution"},
	{
		category: CategoryMarket, slideType: "market", title: "Market Opportunity",
		chartType: "pie",
		stats: []deck.Stat{
			{Label: "North America", Value: 40},
			{Label: "Europe", Value: 35},
			{Label: "Rest of World", Value: 25},
		},
	},
	{category: CategoryCompetition, slideType: "comparison", title: "Competitive Landscape"},
	{
		category: CategoryFinancials, slideType: "financials", title: "Financials",
		chartType: "bar",
		stats: []deck.Stat{
			{Label: "Year 1", Value: 1.2},
			{Label: "Year 2", Value: 3.5},
			{Label: "Year 3", Value: 8.0},
		},
	},
	{category: CategoryTeam, slideType: "team", title: "Team"},
	{category: CategoryRoadmap, slideType: "roadmap", title: "Roadmap"},
}

// BuildOutline synthesizes a slide outline from an InsightProvider's
// category map. Slides follow the standard pitch sequence; categories with
// no insights are omitted. The result is a complete pipeline input.
func BuildOutline(company, industry string, insights map[string][]string) deck.Outline {
	outline := deck.Outline{
		Title:    company,
		Subtitle: fmt.Sprintf("Reimagining %s", industry),
		Company:  company,
		Industry: industry,
	}

	n := 0
	for _, plan := range standardPlan {
		content, ok := insights[plan.category]
		if !ok || len(content) == 0 {
			continue
		}
		n++
		slide := deck.OutlineSlide{
			SlideNumber: n,
			SlideType:   plan.slideType,
			Title:       plan.title,
			Content:     content,
			ChartType:   plan.chartType,
			Statistics:  plan.stats,
		}
		outline.Slides = append(outline.Slides, slide)
	}
	return outline
}
