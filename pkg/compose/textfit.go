package compose

import (
	"math"

	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

const (
	// GlyphWidthRatio approximates average glyph width as a fraction of the
	// font size. A crude proxy, but a fixed one: tests depend on it and it is
	// never replaced by a real font-metrics engine.
	GlyphWidthRatio = 0.6

	// UsableWidthRatio is the fraction of canvas width available to text;
	// the remaining 20% is reserved for margins.
	UsableWidthRatio = 0.8
)

// FitText assigns a font size to every title and bullets block using the
// shrink-to-fit rule, returning a new block slice.
//
// Per block: estimated width = length × GlyphWidthRatio × minSize. If that
// fits within UsableWidthRatio of the canvas width the block gets maxSize;
// otherwise the size scales down proportionally, floored at minSize. The
// computation is stateless per block: no convergence loop, no dependency on
// sibling blocks. Zero-length text gets maxSize (no division by zero).
func FitText(blocks []deck.ContentBlock, canvas deck.Canvas, tokens theme.Tokens) []deck.ContentBlock {
	out := deck.CloneBlocks(blocks)
	availableWidth := canvas.Width * UsableWidthRatio

	for i, b := range out {
		var minSize, maxSize float64
		switch b.Kind {
		case deck.BlockTitle:
			minSize, maxSize = tokens.Sizes.TitleMin, tokens.Sizes.TitleMax
		case deck.BlockBullets:
			minSize, maxSize = tokens.Sizes.BodyMin, tokens.Sizes.BodyMax
		default:
			continue
		}
		out[i].Styling.FontSize = fitSize(b.EstimatedLength, availableWidth, minSize, maxSize)
	}
	return out
}

func fitSize(textLength int, availableWidth, minSize, maxSize float64) float64 {
	if textLength <= 0 {
		return maxSize
	}
	estimatedWidth := float64(textLength) * GlyphWidthRatio * minSize
	if estimatedWidth <= availableWidth {
		return maxSize
	}
	scaled := math.Floor(maxSize * availableWidth / estimatedWidth)
	return math.Max(minSize, scaled)
}
