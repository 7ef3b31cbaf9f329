package compose

import (
	"sort"
	"strings"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// Canvas resolutions per aspect ratio tag. These exact pixel values are a
// contract: the text fitting math downstream depends on them.
var CanvasSizes = map[string]deck.Canvas{
	deck.Aspect16x9:       {Width: 1920, Height: 1080, AspectRatio: deck.Aspect16x9},
	deck.Aspect4x3:        {Width: 1024, Height: 768, AspectRatio: deck.Aspect4x3},
	deck.AspectWidescreen: {Width: 2560, Height: 1080, AspectRatio: deck.AspectWidescreen},
}

// DefaultAspect is used when an unknown aspect tag is requested.
const DefaultAspect = deck.Aspect16x9

// BuildCanvas resolves the archetype and aspect ratio tag into concrete
// canvas dimensions and a grid specification. The archetype's grid template
// is split on the "/" grid-template separator into rows and columns, both
// preserved verbatim for the renderer. An unrecognized aspect tag falls back
// to 16:9 rather than failing.
func BuildCanvas(arch deck.Archetype, aspect string) (deck.Canvas, deck.Grid) {
	canvas, ok := CanvasSizes[aspect]
	if !ok {
		canvas = CanvasSizes[DefaultAspect]
	}

	rows, columns := splitGridTemplate(arch.GridTemplate)

	areas := make([]string, 0, len(arch.Regions))
	for _, region := range arch.Regions {
		areas = append(areas, region.Area)
	}
	sort.Strings(areas)

	return canvas, deck.Grid{Rows: rows, Columns: columns, Areas: areas}
}

// splitGridTemplate splits a CSS grid-template string into its rows and
// columns halves at the last "/" separator. Templates without a separator
// are treated as rows-only.
func splitGridTemplate(template string) (rows, columns string) {
	idx := strings.LastIndex(template, "/")
	if idx < 0 {
		return strings.TrimSpace(template), ""
	}
	return strings.TrimSpace(template[:idx]), strings.TrimSpace(template[idx+1:])
}
