package compose

import (
	"github.com/google/uuid"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// MustShowBullets is the number of leading bullet blocks marked must-show.
// Bullets past this threshold are nice-to-have and may be dropped under
// layout pressure by downstream renderers.
const MustShowBullets = 3

// ExtractBlocks converts one outline slide into its ordered content blocks.
//
// Emission rules:
//   - one title block when the title is non-empty (must-show, heavy)
//   - one bullets block per content entry, in original order; the first
//     MustShowBullets are must-show, the rest nice-to-have
//   - at most one image block, from the first image descriptor (must-show, heavy)
//   - at most one chart block when statistics are present, holding the raw
//     statistics payload (must-show, heavy)
//
// There are no error conditions: an empty slide yields an empty, valid list.
func ExtractBlocks(slide deck.OutlineSlide) []deck.ContentBlock {
	var blocks []deck.ContentBlock

	if slide.Title != "" {
		blocks = append(blocks, deck.ContentBlock{
			ID:              uuid.NewString(),
			Kind:            deck.BlockTitle,
			Payload:         deck.TextPayload{Text: slide.Title},
			Priority:        deck.PriorityMustShow,
			EstimatedLength: len(slide.Title),
			Weight:          deck.WeightHeavy,
			Intent:          slide.SlideType,
		})
	}

	for i, entry := range slide.Content {
		priority := deck.PriorityMustShow
		if i >= MustShowBullets {
			priority = deck.PriorityNiceToHave
		}
		blocks = append(blocks, deck.ContentBlock{
			ID:              uuid.NewString(),
			Kind:            deck.BlockBullets,
			Payload:         deck.ListPayload{Items: []string{entry}},
			Priority:        priority,
			EstimatedLength: len(entry),
			Weight:          deck.WeightMedium,
			Intent:          slide.SlideType,
		})
	}

	if len(slide.Images) > 0 {
		blocks = append(blocks, deck.ContentBlock{
			ID:       uuid.NewString(),
			Kind:     deck.BlockImage,
			Payload:  deck.ImagePayload{Asset: slide.Images[0]},
			Priority: deck.PriorityMustShow,
			Weight:   deck.WeightHeavy,
			Intent:   slide.SlideType,
		})
	}

	if len(slide.Statistics) > 0 {
		stats := make([]deck.Stat, len(slide.Statistics))
		copy(stats, slide.Statistics)
		blocks = append(blocks, deck.ContentBlock{
			ID:              uuid.NewString(),
			Kind:            deck.BlockChart,
			Payload:         deck.StatsPayload{Stats: stats, ChartType: slide.ChartType},
			Priority:        deck.PriorityMustShow,
			EstimatedLength: len(slide.Statistics),
			Weight:          deck.WeightHeavy,
			Intent:          slide.SlideType,
		})
	}

	return blocks
}
