package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// RenderMarkdown exports the deck as a Markdown document: title and
// subtitle, then each slide's title and bullet content in slide order, with
// a horizontal rule between slides.
func RenderMarkdown(d *deck.CompletePitchDeck) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n", d.Outline.Title)
	if d.Outline.Subtitle != "" {
		fmt.Fprintf(&buf, "\n*%s*\n", d.Outline.Subtitle)
	}

	for _, slide := range d.Slides {
		buf.WriteString("\n---\n\n")
		writeSlideMarkdown(&buf, slide)
	}
	return buf.Bytes()
}

func writeSlideMarkdown(buf *bytes.Buffer, slide deck.SlideLayout) {
	for _, b := range slide.Blocks {
		switch b.Kind {
		case deck.BlockTitle:
			fmt.Fprintf(buf, "## %s\n", b.Text())
		case deck.BlockSubtitle:
			fmt.Fprintf(buf, "### %s\n", b.Text())
		case deck.BlockBullets:
			if p, ok := b.Payload.(deck.ListPayload); ok {
				for _, item := range p.Items {
					fmt.Fprintf(buf, "- %s\n", item)
				}
			}
		case deck.BlockQuote:
			fmt.Fprintf(buf, "> %s\n", b.Text())
		case deck.BlockChart:
			if p, ok := b.Payload.(deck.StatsPayload); ok {
				fmt.Fprintf(buf, "\n| Label | Value |\n|---|---|\n")
				for _, s := range p.Stats {
					fmt.Fprintf(buf, "| %s | %g |\n", s.Label, s.Value)
				}
			}
		case deck.BlockImage:
			if p, ok := b.Payload.(deck.ImagePayload); ok {
				fmt.Fprintf(buf, "\n![%s](%s)\n", p.Asset.Alt, p.Asset.URL)
			}
		}
	}
}
