package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/deckforge/pkg/deck"
)

// ToDOT converts the deck's slide flow to Graphviz DOT format: one box per
// slide in presentation order, labeled with slide number, intent tag, and
// title, chained left to right. Slides flagged as needing a visual are drawn
// dashed so the gap is visible at a glance.
func ToDOT(d *deck.CompletePitchDeck) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deck {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.25,0.15\"];\n")
	buf.WriteString("\n")

	for _, slide := range d.Slides {
		id := fmt.Sprintf("slide%d", slide.SlideNumber)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(slideAttrs(slide), ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(d.Slides); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n",
			fmt.Sprintf("slide%d", d.Slides[i-1].SlideNumber),
			fmt.Sprintf("slide%d", d.Slides[i].SlideNumber))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func slideAttrs(slide deck.SlideLayout) []string {
	title, intent := "", ""
	for _, b := range slide.Blocks {
		if intent == "" {
			intent = b.Intent
		}
		if b.Kind == deck.BlockTitle {
			title = b.Text()
			break
		}
	}
	label := fmt.Sprintf("%d. %s\n%s", slide.SlideNumber, title, intent)

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if strings.Contains(intent, "-needs-visual") {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderStoryboard renders the deck flow diagram to SVG using Graphviz.
func RenderStoryboard(ctx context.Context, d *deck.CompletePitchDeck) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(d)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
