package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
)

// RenderSVG renders a synthesized chart as a standalone SVG fragment.
// Dispatch falls through to the bar renderer for any type the switch does
// not recognize, mirroring the Synthesize normalization.
func RenderSVG(s Spec) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f" class="chart chart-%s">`+"\n",
		Width, Height, Width, Height, s.Type)

	switch s.Type {
	case TypePie:
		renderPie(&buf, s, false)
	case TypeDoughnut:
		renderPie(&buf, s, true)
	case TypeLine:
		renderLine(&buf, s)
	case TypeTimeline:
		renderTimeline(&buf, s)
	case TypeFunnel:
		renderFunnel(&buf, s)
	default:
		renderBar(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// =============================================================================
// Pie / Doughnut
// =============================================================================

func renderPie(buf *bytes.Buffer, s Spec, doughnut bool) {
	total := s.total()
	if total <= 0 || len(s.Data) == 0 {
		return
	}

	cx, cy := Width/2, Height/2
	angle := -math.Pi / 2 // start at 12 o'clock

	for i, d := range s.Data {
		fraction := d.Value / total
		sweep := fraction * 2 * math.Pi

		if fraction >= 0.9995 {
			// Single-value data set: a full circle, not a degenerate arc.
			fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				cx, cy, PieOuterRadius, s.color(i))
		} else {
			x1 := cx + PieOuterRadius*math.Cos(angle)
			y1 := cy + PieOuterRadius*math.Sin(angle)
			x2 := cx + PieOuterRadius*math.Cos(angle+sweep)
			y2 := cy + PieOuterRadius*math.Sin(angle+sweep)
			largeArc := 0
			if sweep > math.Pi {
				largeArc = 1
			}
			fmt.Fprintf(buf, `  <path d="M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z" fill="%s"/>`+"\n",
				cx, cy, x1, y1, PieOuterRadius, PieOuterRadius, largeArc, x2, y2, s.color(i))
		}

		mid := angle + sweep/2
		lx := cx + PieOuterRadius*0.65*math.Cos(mid)
		ly := cy + PieOuterRadius*0.65*math.Sin(mid)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" class="chart-label">%.1f%%</text>`+"\n",
			lx, ly, fraction*100)

		angle += sweep
	}

	if doughnut {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" class="chart-hole"/>`+"\n",
			cx, cy, DoughnutHoleRadius, s.Background)
	}
}

// =============================================================================
// Bar
// =============================================================================

const (
	barBaseline   = Height - 40
	barPlotHeight = Height - 80
)

func renderBar(buf *bytes.Buffer, s Spec) {
	maxVal := s.maxValue()
	if maxVal <= 0 || len(s.Data) == 0 {
		return
	}

	for i, d := range s.Data {
		h := d.Value / maxVal * barPlotHeight
		x := BarGap + float64(i)*(BarWidth+BarGap)
		y := barBaseline - h
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			x, y, BarWidth, h, s.color(i))
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" class="chart-label">%s</text>`+"\n",
			x+BarWidth/2, barBaseline+16, escape(d.Label))
	}
}

// =============================================================================
// Line
// =============================================================================

func renderLine(buf *bytes.Buffer, s Spec) {
	n := len(s.Data)
	if n == 0 {
		return
	}

	const pad = 40.0
	minVal, maxVal := s.minValue(), s.maxValue()
	span := maxVal - minVal

	var points bytes.Buffer
	for i, d := range s.Data {
		x := Width / 2
		if n > 1 {
			x = pad + float64(i)*(Width-2*pad)/float64(n-1)
		}
		y := Height / 2
		if span > 0 {
			y = barBaseline - (d.Value-minVal)/span*barPlotHeight
		}
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%.1f,%.1f", x, y)
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>`+"\n", x, y, s.color(0))
	}
	fmt.Fprintf(buf, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="3"/>`+"\n",
		points.String(), s.color(0))
}

// =============================================================================
// Timeline
// =============================================================================

func renderTimeline(buf *bytes.Buffer, s Spec) {
	if len(s.Data) == 0 {
		return
	}

	const railX = 40.0
	top := TimelineRowHeight / 2
	bottom := top + float64(len(s.Data)-1)*TimelineRowHeight

	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
		railX, top, railX, bottom, s.color(1))

	for i, d := range s.Data {
		y := top + float64(i)*TimelineRowHeight
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="6" fill="%s"/>`+"\n", railX, y, s.color(0))
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" class="chart-label">%s</text>`+"\n",
			railX+20, y+4, escape(d.Label))
	}
}

// =============================================================================
// Funnel
// =============================================================================

func renderFunnel(buf *bytes.Buffer, s Spec) {
	if len(s.Data) == 0 {
		return
	}
	first := s.Data[0].Value
	if first <= 0 {
		return
	}

	stepHeight := barPlotHeight / float64(len(s.Data))
	const maxStepWidth = Width - 2*BarGap

	for i, d := range s.Data {
		w := d.Value / first * maxStepWidth
		x := (Width - w) / 2
		y := 20 + float64(i)*stepHeight
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			x, y, w, stepHeight-4, s.color(i))
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" class="chart-label chart-label-inverse">%s</text>`+"\n",
			Width/2, y+stepHeight/2, escape(d.Label))
	}
}

// escape XML-escapes text content for SVG labels.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
