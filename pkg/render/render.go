// Package render turns balanced content blocks into slide markup.
//
// Slide is a pure function of (blocks, archetype, theme, canvas): one CSS
// grid container sized to the canvas with one child element per block,
// positioned by the grid-area of the block's archetype region. All styling
// is pulled from theme tokens through named CSS variables; the only
// per-block inline values are the fitted font size and balancer margin.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/deckforge/pkg/chart"
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

// TitleHeightFactor scales a title's max font size into its estimated
// rendered height.
const TitleHeightFactor = 1.2

// Slide renders one slide's blocks into markup, a stylesheet, and layout
// measurements. The result is deterministic and reproducible from the
// inputs alone.
func Slide(blocks []deck.ContentBlock, arch deck.Archetype, tokens theme.Tokens, canvas deck.Canvas) deck.RenderData {
	grid := gridTemplate(arch)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<div class="slide slide-%s" style="display:grid;grid-template:%s;width:%.0fpx;height:%.0fpx">`+"\n",
		arch.ID, grid, canvas.Width, canvas.Height)

	for _, b := range blocks {
		renderBlock(&buf, b, arch)
	}
	buf.WriteString("</div>\n")

	return deck.RenderData{
		Markup:       buf.String(),
		StyleSheet:   StyleSheet(tokens),
		Measurements: measure(blocks, tokens),
	}
}

func gridTemplate(arch deck.Archetype) string {
	if arch.GridTemplate != "" {
		return arch.GridTemplate
	}
	return "1fr / 1fr"
}

func renderBlock(buf *bytes.Buffer, b deck.ContentBlock, arch deck.Archetype) {
	area := areaFor(b.Kind, arch)

	style := fmt.Sprintf("grid-area:%s", area)
	if b.Styling.FontSize > 0 {
		style += fmt.Sprintf(";font-size:%.0fpx", b.Styling.FontSize)
	}
	if b.Styling.MarginTop > 0 {
		style += fmt.Sprintf(";margin-top:%.0fpx", b.Styling.MarginTop)
	}

	fmt.Fprintf(buf, `  <div class="block block-%s" data-block-id="%s" style="%s">`, b.Kind, b.ID, style)

	switch p := b.Payload.(type) {
	case deck.TextPayload:
		buf.WriteString(html.EscapeString(p.Text))
	case deck.ListPayload:
		buf.WriteString("<ul>")
		for _, item := range p.Items {
			fmt.Fprintf(buf, "<li>%s</li>", html.EscapeString(item))
		}
		buf.WriteString("</ul>")
	case deck.ImagePayload:
		renderImage(buf, p)
	case deck.StatsPayload:
		buf.WriteString("\n")
		buf.Write(chart.RenderSVG(chart.Spec{
			Type:       p.ChartType,
			Data:       p.Stats,
			Colors:     p.Colors,
			Background: "var(--color-background)",
		}))
		buf.WriteString("  ")
	}

	buf.WriteString("</div>\n")
}

// renderImage emits a figure carrying the placement contract as data
// attributes. No pixels are fetched; a downstream display layer applies the
// crop described here.
func renderImage(buf *bytes.Buffer, p deck.ImagePayload) {
	fit, focal, aspect := "cover", "center", 0.0
	if p.Placement != nil {
		fit = p.Placement.FittingMode
		focal = p.Placement.FocalPoint
		aspect = p.Placement.TargetAspectRatio
	}
	fmt.Fprintf(buf, `<figure data-src="%s" data-fit="%s" data-focal="%s" data-aspect="%.3f">%s</figure>`,
		html.EscapeString(p.Asset.URL), fit, focal, aspect, html.EscapeString(p.Asset.Alt))
}

// areaFor maps a block kind to the archetype region area it renders into.
// Kinds without a dedicated region fall back to the body area, then title.
func areaFor(kind deck.BlockKind, arch deck.Archetype) string {
	var name string
	switch kind {
	case deck.BlockTitle, deck.BlockSubtitle:
		name = deck.RegionTitle
	case deck.BlockImage, deck.BlockChart:
		name = deck.RegionVisual
	case deck.BlockFooter, deck.BlockLogo:
		name = deck.RegionFooter
	default:
		name = deck.RegionBody
	}

	if region, ok := arch.Regions[name]; ok {
		return region.Area
	}
	if region, ok := arch.Regions[deck.RegionBody]; ok {
		return region.Area
	}
	return arch.Regions[deck.RegionTitle].Area
}

// measure computes the deterministic text height estimate: every title
// block contributes titleMax×1.2, every bullets block contributes
// bodyMax×lineHeight×lines.
func measure(blocks []deck.ContentBlock, tokens theme.Tokens) deck.Measurements {
	var height float64
	for _, b := range blocks {
		switch b.Kind {
		case deck.BlockTitle:
			height += tokens.Sizes.TitleMax * TitleHeightFactor
		case deck.BlockBullets:
			height += tokens.Sizes.BodyMax * tokens.Sizes.LineHeight * float64(b.Lines())
		}
	}
	return deck.Measurements{
		EstimatedTextHeight: height,
		BlockCount:          len(blocks),
	}
}
