// Package archetype holds the process-wide layout archetype catalog and the
// deterministic archetype selector.
//
// An archetype is a named slide grid template mapping content regions
// (title/body/visual/footer) to CSS grid areas. The catalog is an immutable
// in-memory table initialized at startup; archetypes are selected, never
// mutated.
package archetype

import "github.com/matzehuels/deckforge/pkg/deck"

// Well-known archetype IDs. DefaultID is the documented system fallback.
const (
	DefaultID       = "title-bullets-visual"
	ComparisonID    = "two-column-comparison"
	BigVisualID     = "big-visual"
	StatGridID      = "stat-grid"
	QuoteSpotlight  = "quote-spotlight"
	SectionHeaderID = "section-header"
)

// catalog is evaluated in declaration order: the selector picks the first
// exact suitability match, so ordering is part of the selection contract.
var catalog = []deck.Archetype{
	{
		ID:   StatGridID,
		Name: "Stat Grid",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionBody:   {Area: "body"},
			deck.RegionVisual: {Area: "visual", Aspect: 4.0 / 3.0},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title title' auto 'body visual' 1fr 'footer footer' auto / 1fr 1fr",
		SuitableFor:  []string{"market", "financials", "traction", "metrics"},
	},
	{
		ID:   ComparisonID,
		Name: "Two-Column Comparison",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionBody:   {Area: "body"},
			deck.RegionVisual: {Area: "visual", Aspect: 1.0},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title title' auto 'body visual' 1fr 'footer footer' auto / 1fr 1fr",
		SuitableFor:  []string{"comparison", "competition"},
	},
	{
		ID:   BigVisualID,
		Name: "Big Visual",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionVisual: {Area: "visual", Aspect: 16.0 / 9.0},
			deck.RegionBody:   {Area: "body"},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title' auto 'visual' 2fr 'body' 1fr 'footer' auto / 1fr",
		SuitableFor:  []string{"product", "demo", "vision"},
	},
	{
		ID:   QuoteSpotlight,
		Name: "Quote Spotlight",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionBody:   {Area: "body"},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title' auto 'body' 1fr 'footer' auto / 1fr",
		SuitableFor:  []string{"testimonial", "quote"},
	},
	{
		ID:   SectionHeaderID,
		Name: "Section Header",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title' 1fr 'footer' auto / 1fr",
		SuitableFor:  []string{"section", "divider", "closing"},
	},
	{
		ID:   DefaultID,
		Name: "Title + Bullets + Visual",
		Regions: map[string]deck.Region{
			deck.RegionTitle:  {Area: "title"},
			deck.RegionBody:   {Area: "body"},
			deck.RegionVisual: {Area: "visual", Aspect: 3.0 / 2.0},
			deck.RegionFooter: {Area: "footer"},
		},
		GridTemplate: "'title title' auto 'body visual' 1fr 'footer footer' auto / 3fr 2fr",
		SuitableFor:  []string{"overview", "intro", "team", "roadmap", "generic"},
	},
}

// All returns the full catalog in selection order.
func All() []deck.Archetype {
	out := make([]deck.Archetype, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a catalog entry by ID.
func ByID(id string) (deck.Archetype, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return deck.Archetype{}, false
}

// Default returns the system default archetype.
func Default() deck.Archetype {
	a, _ := ByID(DefaultID)
	return a
}
