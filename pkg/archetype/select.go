package archetype

import "github.com/matzehuels/deckforge/pkg/deck"

// Select picks the archetype for a slide from its blocks and intent tag.
//
// Selection is a deterministic, total function evaluated in priority order:
//
//  1. Exact match: the first catalog archetype whose SuitableFor contains
//     the intent tag.
//  2. Heuristic fallback, only when no catalog entry matches:
//     chart block plus at least one bullet block → two-column comparison;
//     image block with at most two bullet blocks → big visual;
//     anything else → the system default.
//
// Two calls with identical (blocks, intent) always return the same entry.
func Select(blocks []deck.ContentBlock, intent string) deck.Archetype {
	for _, a := range catalog {
		if a.Suits(intent) {
			return a
		}
	}

	var bullets, charts, images int
	for _, b := range blocks {
		switch b.Kind {
		case deck.BlockBullets:
			bullets++
		case deck.BlockChart:
			charts++
		case deck.BlockImage:
			images++
		}
	}

	switch {
	case charts > 0 && bullets >= 1:
		a, _ := ByID(ComparisonID)
		return a
	case images > 0 && bullets <= 2:
		a, _ := ByID(BigVisualID)
		return a
	}
	return Default()
}
