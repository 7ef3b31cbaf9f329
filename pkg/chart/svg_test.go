package chart

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

func renderString(t *testing.T, s Spec) string {
	t.Helper()
	out := string(RenderSVG(s))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("missing svg root: %s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("unclosed svg: %s", out)
	}
	return out
}

func TestRenderPieLabels(t *testing.T) {
	spec := Synthesize([]deck.Stat{
		{Label: "NA", Value: 40},
		{Label: "EU", Value: 60},
	}, TypePie, theme.Default())

	out := renderString(t, spec)

	if !strings.Contains(out, ">40.0%<") {
		t.Errorf("missing 40.0%% label:\n%s", out)
	}
	if !strings.Contains(out, ">60.0%<") {
		t.Errorf("missing 60.0%% label:\n%s", out)
	}
	if got := strings.Count(out, "<path "); got != 2 {
		t.Errorf("path count = %d, want 2", got)
	}
	// 60% is more than half the circle, so its arc takes the large-arc flag.
	if !strings.Contains(out, " 0 1 1 ") {
		t.Errorf("majority slice missing large-arc flag:\n%s", out)
	}
}

func TestRenderPieSingleValue(t *testing.T) {
	spec := Synthesize([]deck.Stat{{Label: "All", Value: 100}}, TypePie, theme.Default())

	out := renderString(t, spec)

	if strings.Contains(out, "<path ") {
		t.Errorf("single value should render a circle, not an arc:\n%s", out)
	}
	if !strings.Contains(out, fmt.Sprintf(`r="%.1f"`, PieOuterRadius)) {
		t.Errorf("missing full circle at outer radius:\n%s", out)
	}
	if !strings.Contains(out, ">100.0%<") {
		t.Errorf("missing 100.0%% label:\n%s", out)
	}
}

func TestRenderDoughnutHole(t *testing.T) {
	tokens := theme.Default()
	spec := Synthesize([]deck.Stat{
		{Label: "NA", Value: 40},
		{Label: "EU", Value: 60},
	}, TypeDoughnut, tokens)

	out := renderString(t, spec)

	hole := fmt.Sprintf(`r="%.1f" fill="%s" class="chart-hole"`, DoughnutHoleRadius, tokens.Colors.Background)
	if !strings.Contains(out, hole) {
		t.Errorf("missing doughnut hole %q:\n%s", hole, out)
	}
}

func TestRenderBarGeometry(t *testing.T) {
	spec := Synthesize([]deck.Stat{
		{Label: "Y1", Value: 1.2},
		{Label: "Y2", Value: 3.5},
		{Label: "Y3", Value: 8.0},
	}, TypeBar, theme.Default())

	out := renderString(t, spec)

	// Bars sit at x = gap + i*(width+gap); the tallest spans the full plot.
	for i := 0; i < 3; i++ {
		x := BarGap + float64(i)*(BarWidth+BarGap)
		want := fmt.Sprintf(`<rect x="%.1f"`, x)
		if !strings.Contains(out, want) {
			t.Errorf("missing bar at x=%.1f:\n%s", x, out)
		}
	}
	if !strings.Contains(out, fmt.Sprintf(`height="%.1f"`, Height-80)) {
		t.Errorf("tallest bar should fill the plot height:\n%s", out)
	}
	for _, label := range []string{">Y1<", ">Y2<", ">Y3<"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing label %s:\n%s", label, out)
		}
	}
}

func TestRenderLine(t *testing.T) {
	spec := Synthesize([]deck.Stat{
		{Label: "Q1", Value: 10},
		{Label: "Q2", Value: 30},
		{Label: "Q3", Value: 20},
	}, TypeLine, theme.Default())

	out := renderString(t, spec)

	if !strings.Contains(out, "<polyline points=") {
		t.Errorf("missing polyline:\n%s", out)
	}
	if got := strings.Count(out, "<circle "); got != 3 {
		t.Errorf("marker count = %d, want 3", got)
	}
}

func TestRenderTimeline(t *testing.T) {
	spec := Synthesize([]deck.Stat{
		{Label: "Seed", Value: 1},
		{Label: "Series A", Value: 2},
	}, TypeTimeline, theme.Default())

	out := renderString(t, spec)

	if !strings.Contains(out, "<line ") {
		t.Errorf("missing rail:\n%s", out)
	}
	rowGap := fmt.Sprintf(`cy="%.1f"`, TimelineRowHeight/2+TimelineRowHeight)
	if !strings.Contains(out, rowGap) {
		t.Errorf("second milestone not one row down:\n%s", out)
	}
	if !strings.Contains(out, ">Seed<") || !strings.Contains(out, ">Series A<") {
		t.Errorf("missing milestone labels:\n%s", out)
	}
}

func TestRenderFunnel(t *testing.T) {
	spec := Synthesize([]deck.Stat{
		{Label: "Visitors", Value: 1000},
		{Label: "Signups", Value: 250},
	}, TypeFunnel, theme.Default())

	out := renderString(t, spec)

	// The top step spans the full width; the second shrinks proportionally.
	topWidth := Width - 2*BarGap
	if !strings.Contains(out, fmt.Sprintf(`width="%.1f"`, topWidth)) {
		t.Errorf("top step not full width:\n%s", out)
	}
	if !strings.Contains(out, fmt.Sprintf(`width="%.1f"`, topWidth*0.25)) {
		t.Errorf("second step not scaled to 25%%:\n%s", out)
	}
}

func TestRenderEmptyData(t *testing.T) {
	for _, typ := range []string{TypePie, TypeDoughnut, TypeBar, TypeLine, TypeTimeline, TypeFunnel} {
		out := renderString(t, Synthesize(nil, typ, theme.Default()))
		if strings.Contains(out, "<path") || strings.Contains(out, "<rect") || strings.Contains(out, "<circle") {
			t.Errorf("%s rendered shapes for empty data:\n%s", typ, out)
		}
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	spec := Synthesize([]deck.Stat{{Label: "R&D <core>", Value: 5}}, TypeBar, theme.Default())

	out := renderString(t, spec)

	if !strings.Contains(out, "R&amp;D &lt;core&gt;") {
		t.Errorf("label not escaped:\n%s", out)
	}
}
