package compose

import (
	"strings"

	"github.com/matzehuels/deckforge/pkg/deck"
)

const (
	// TextBlockSpacing is the fixed vertical rhythm (px) between consecutive
	// text blocks on a slide.
	TextBlockSpacing = 24.0

	// TextHeavyThreshold is the summed character count beyond which a slide
	// with no visual block is flagged as needing one.
	TextHeavyThreshold = 800

	// NeedsVisualSuffix is appended to the leading block's intent tag when
	// the text-heavy policy triggers. A signal for downstream tooling, not a
	// mutation of content.
	NeedsVisualSuffix = "-needs-visual"
)

// Balance applies the two balancing policies and returns a new block slice:
//
//   - vertical rhythm: the first text block gets marginTop 0, every
//     subsequent text block gets TextBlockSpacing
//   - text-heavy detection: when title and bullet blocks together exceed
//     TextHeavyThreshold characters and the slide has no image or chart
//     block, the leading block's intent tag is suffixed with
//     NeedsVisualSuffix
func Balance(blocks []deck.ContentBlock) []deck.ContentBlock {
	out := deck.CloneBlocks(blocks)

	first := true
	for i, b := range out {
		if !b.IsText() {
			continue
		}
		if first {
			out[i].Styling.MarginTop = 0
			first = false
		} else {
			out[i].Styling.MarginTop = TextBlockSpacing
		}
	}

	if len(out) > 0 && isTextHeavy(out) {
		if !strings.HasSuffix(out[0].Intent, NeedsVisualSuffix) {
			out[0].Intent += NeedsVisualSuffix
		}
	}
	return out
}

func isTextHeavy(blocks []deck.ContentBlock) bool {
	total := 0
	for _, b := range blocks {
		switch b.Kind {
		case deck.BlockTitle, deck.BlockBullets:
			total += b.EstimatedLength
		case deck.BlockImage, deck.BlockChart:
			return false
		}
	}
	return total > TextHeavyThreshold
}
