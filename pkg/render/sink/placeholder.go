package sink

import (
	"fmt"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// RenderPDF returns a placeholder artifact describing the deck. Binary PDF
// generation is a documented limitation of this pipeline: callers needing a
// real PDF convert the HTML export with an external tool.
func RenderPDF(d *deck.CompletePitchDeck) []byte {
	return placeholder("PDF", d)
}

// RenderPPTX returns a placeholder artifact describing the deck. Binary
// PPTX generation is a documented limitation, same as PDF.
func RenderPPTX(d *deck.CompletePitchDeck) []byte {
	return placeholder("PPTX", d)
}

func placeholder(format string, d *deck.CompletePitchDeck) []byte {
	return fmt.Appendf(nil,
		"%s export placeholder\ndeck: %s\ntheme: %s\nslides: %d\n\nBinary %s generation is not performed by this pipeline; use the HTML export with an external converter.\n",
		format, d.Outline.Title, d.Theme, len(d.Slides), format)
}
