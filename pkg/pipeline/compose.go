package pipeline

import (
	"github.com/matzehuels/deckforge/pkg/archetype"
	"github.com/matzehuels/deckforge/pkg/chart"
	"github.com/matzehuels/deckforge/pkg/compose"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/render"
	"github.com/matzehuels/deckforge/pkg/theme"
)

// ComposeSlide runs the full per-slide composition chain and returns the
// laid-out slide. The chain is a sequence of pure transformations:
//
//	extract blocks → select archetype → build canvas → fit text →
//	place visuals → synthesize charts → balance → render
//
// There are no error conditions: every stage degrades on malformed input,
// so a degenerate outline slide still yields a valid (possibly empty)
// layout.
func ComposeSlide(slide deck.OutlineSlide, tokens theme.Tokens, aspect string) deck.SlideLayout {
	blocks := compose.ExtractBlocks(slide)
	arch := archetype.Select(blocks, slide.SlideType)
	canvas, grid := compose.BuildCanvas(arch, aspect)

	blocks = compose.FitText(blocks, canvas, tokens)
	blocks = compose.PlaceVisuals(blocks, arch)
	for i, b := range blocks {
		if b.Kind == deck.BlockChart {
			blocks[i] = chart.Apply(b, tokens)
		}
	}
	blocks = compose.Balance(blocks)

	return deck.SlideLayout{
		SlideNumber: slide.SlideNumber,
		Archetype:   arch,
		Blocks:      blocks,
		Canvas:      canvas,
		Grid:        grid,
		RenderData:  render.Slide(blocks, arch, tokens, canvas),
	}
}
