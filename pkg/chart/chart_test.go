package chart

import (
	"reflect"
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
	"github.com/matzehuels/deckforge/pkg/theme"
)

func TestSynthesizeNormalizesType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{TypePie, TypePie},
		{TypeDoughnut, TypeDoughnut},
		{TypeBar, TypeBar},
		{TypeLine, TypeLine},
		{TypeTimeline, TypeTimeline},
		{TypeFunnel, TypeFunnel},
		{"", TypeBar},
		{"scatter3d", TypeBar},
	}

	for _, tt := range tests {
		t.Run("type "+tt.in, func(t *testing.T) {
			got := Synthesize(nil, tt.in, theme.Default())
			if got.Type != tt.want {
				t.Errorf("Synthesize(%q).Type = %q, want %q", tt.in, got.Type, tt.want)
			}
		})
	}
}

func TestSynthesizeAppliesTheme(t *testing.T) {
	tokens := theme.Default()
	stats := []deck.Stat{{Label: "Y1", Value: 1.2}, {Label: "Y2", Value: 3.5}}

	spec := Synthesize(stats, TypeBar, tokens)

	wantColors := []string{tokens.Colors.Primary, tokens.Colors.Secondary, tokens.Colors.Accent}
	if !reflect.DeepEqual(spec.Colors, wantColors) {
		t.Errorf("Colors = %v, want %v", spec.Colors, wantColors)
	}
	if spec.Background != tokens.Colors.Background {
		t.Errorf("Background = %q, want %q", spec.Background, tokens.Colors.Background)
	}
	if !reflect.DeepEqual(spec.Data, stats) {
		t.Errorf("Data = %v, want %v", spec.Data, stats)
	}
	if spec.Formatting.NumberFormat != "compact" || !spec.Formatting.Percentage {
		t.Errorf("Formatting = %+v", spec.Formatting)
	}

	// Spec data is a copy, not an alias of the caller's slice.
	spec.Data[0].Value = 99
	if stats[0].Value != 1.2 {
		t.Error("Synthesize aliased the input stats")
	}
}

func TestApply(t *testing.T) {
	tokens := theme.Default()
	block := deck.ContentBlock{
		ID:   "b1",
		Kind: deck.BlockChart,
		Payload: deck.StatsPayload{
			Stats:     []deck.Stat{{Label: "NA", Value: 40}},
			ChartType: "sparkle",
		},
	}

	got := Apply(block, tokens)
	payload, ok := got.Payload.(deck.StatsPayload)
	if !ok {
		t.Fatalf("Payload type = %T", got.Payload)
	}
	if payload.ChartType != TypeBar {
		t.Errorf("ChartType = %q, want %q", payload.ChartType, TypeBar)
	}
	if len(payload.Colors) != 3 || payload.Colors[0] != tokens.Colors.Primary {
		t.Errorf("Colors = %v", payload.Colors)
	}
	if payload.Formatting == nil || payload.Formatting.Currency != "USD" {
		t.Errorf("Formatting = %+v", payload.Formatting)
	}

	// Copy-on-write: the input block is untouched.
	if orig := block.Payload.(deck.StatsPayload); orig.Colors != nil || orig.ChartType != "sparkle" {
		t.Errorf("input block mutated: %+v", orig)
	}
}

func TestApplyPassesThroughNonChart(t *testing.T) {
	tokens := theme.Default()
	tests := []deck.ContentBlock{
		{Kind: deck.BlockTitle, Payload: deck.TextPayload{Text: "t"}},
		{Kind: deck.BlockImage, Payload: deck.ImagePayload{Asset: deck.ImageAsset{URL: "u"}}},
		{Kind: deck.BlockTable, Payload: deck.StatsPayload{Stats: []deck.Stat{{Label: "x", Value: 1}}}},
	}
	for _, block := range tests {
		got := Apply(block, tokens)
		if !reflect.DeepEqual(got, block) {
			t.Errorf("Apply(%s) changed a non-chart block", block.Kind)
		}
	}
}

func TestSpecColorCycles(t *testing.T) {
	s := Spec{Colors: []string{"a", "b", "c"}}
	for i, want := range []string{"a", "b", "c", "a", "b"} {
		if got := s.color(i); got != want {
			t.Errorf("color(%d) = %q, want %q", i, got, want)
		}
	}
	if got := (Spec{}).color(0); got != "#888888" {
		t.Errorf("color() with empty palette = %q", got)
	}
}
