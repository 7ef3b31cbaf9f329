// Package chart synthesizes vector chart primitives from raw slide
// statistics and the deck theme palette.
//
// Synthesize normalizes a chart block's raw data into a Spec: data points,
// theme colors, and number formatting. RenderSVG turns a Spec into one of
// six chart forms (pie, doughnut, bar, line, timeline, funnel) as SVG
// markup. An unrecognized chart type degrades to the bar renderer; it is an
// explicit default, not an error.
package chart

import (
	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

// Chart type names.
const (
	TypePie      = "pie"
	TypeDoughnut = "doughnut"
	TypeBar      = "bar"
	TypeLine     = "line"
	TypeTimeline = "timeline"
	TypeFunnel   = "funnel"
)

// Geometry constants. These values are a visual contract: tests assert exact
// slice, bar, and row geometry from known data sets.
const (
	// Width and Height of the chart canvas in SVG user units.
	Width  = 400.0
	Height = 300.0

	// PieOuterRadius is the outer radius of pie and doughnut charts, drawn
	// at the canvas midpoint.
	PieOuterRadius = 120.0

	// DoughnutHoleRadius is exactly half the outer radius.
	DoughnutHoleRadius = PieOuterRadius / 2

	// BarWidth and BarGap fix bar chart rectangle geometry.
	BarWidth = 60.0
	BarGap   = 20.0

	// TimelineRowHeight is the fixed height of one timeline row.
	TimelineRowHeight = 48.0
)

// ValidTypes is the set of recognized chart type names.
var ValidTypes = map[string]bool{
	TypePie:      true,
	TypeDoughnut: true,
	TypeBar:      true,
	TypeLine:     true,
	TypeTimeline: true,
	TypeFunnel:   true,
}

// Spec is a fully synthesized chart: normalized data, theme colors, and
// formatting, ready for rendering.
type Spec struct {
	Type       string               `json:"type"`
	Data       []deck.Stat          `json:"data"`
	Colors     []string             `json:"colors"`
	Background string               `json:"background,omitempty"` // doughnut hole fill
	Formatting deck.ChartFormatting `json:"formatting"`
}

// Synthesize builds a chart Spec from raw statistics and theme tokens.
// Colors are always [primary, secondary, accent]; values cycle through them.
// An empty or unknown chartType is normalized to bar.
func Synthesize(stats []deck.Stat, chartType string, tokens theme.Tokens) Spec {
	if !ValidTypes[chartType] {
		chartType = TypeBar
	}
	data := make([]deck.Stat, len(stats))
	copy(data, stats)
	return Spec{
		Type: chartType,
		Data: data,
		Colors: []string{
			tokens.Colors.Primary,
			tokens.Colors.Secondary,
			tokens.Colors.Accent,
		},
		Background: tokens.Colors.Background,
		Formatting: deck.ChartFormatting{
			NumberFormat: "compact",
			Currency:     "USD",
			Percentage:   true,
		},
	}
}

// Apply fills a chart block's stats payload with the synthesized colors and
// formatting, returning the updated block. Non-chart blocks pass through.
func Apply(block deck.ContentBlock, tokens theme.Tokens) deck.ContentBlock {
	payload, ok := block.Payload.(deck.StatsPayload)
	if !ok || block.Kind != deck.BlockChart {
		return block
	}
	spec := Synthesize(payload.Stats, payload.ChartType, tokens)
	payload.ChartType = spec.Type
	payload.Colors = spec.Colors
	formatting := spec.Formatting
	payload.Formatting = &formatting
	out := block.Clone()
	out.Payload = payload
	return out
}

// color returns the palette color for data point i, cycling through the
// three theme colors.
func (s Spec) color(i int) string {
	if len(s.Colors) == 0 {
		return "#888888"
	}
	return s.Colors[i%len(s.Colors)]
}

// total sums all data point values.
func (s Spec) total() float64 {
	var t float64
	for _, d := range s.Data {
		t += d.Value
	}
	return t
}

// maxValue returns the largest data point value.
func (s Spec) maxValue() float64 {
	var m float64
	for _, d := range s.Data {
		if d.Value > m {
			m = d.Value
		}
	}
	return m
}

// minValue returns the smallest data point value.
func (s Spec) minValue() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	m := s.Data[0].Value
	for _, d := range s.Data[1:] {
		if d.Value < m {
			m = d.Value
		}
	}
	return m
}
