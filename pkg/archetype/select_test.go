package archetype

import (
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
)

func bulletBlock() deck.ContentBlock {
	return deck.ContentBlock{Kind: deck.BlockBullets, Payload: deck.ListPayload{Items: []string{"point"}}}
}

func chartBlock() deck.ContentBlock {
	return deck.ContentBlock{Kind: deck.BlockChart, Payload: deck.StatsPayload{Stats: []deck.Stat{{Label: "NA", Value: 40}}}}
}

func imageBlock() deck.ContentBlock {
	return deck.ContentBlock{Kind: deck.BlockImage, Payload: deck.ImagePayload{Asset: deck.ImageAsset{URL: "u"}}}
}

func TestSelectByIntent(t *testing.T) {
	tests := []struct {
		intent string
		want   string
	}{
		{"market", StatGridID},
		{"financials", StatGridID},
		{"competition", ComparisonID},
		{"comparison", ComparisonID},
		{"product", BigVisualID},
		{"testimonial", QuoteSpotlight},
		{"section", SectionHeaderID},
		{"closing", SectionHeaderID},
		{"overview", DefaultID},
		{"team", DefaultID},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			got := Select(nil, tt.intent)
			if got.ID != tt.want {
				t.Errorf("Select(nil, %q) = %s, want %s", tt.intent, got.ID, tt.want)
			}
		})
	}
}

func TestSelectHeuristicFallback(t *testing.T) {
	tests := []struct {
		name   string
		blocks []deck.ContentBlock
		want   string
	}{
		{
			name:   "chart plus bullets",
			blocks: []deck.ContentBlock{chartBlock(), bulletBlock()},
			want:   ComparisonID,
		},
		{
			name:   "chart without bullets",
			blocks: []deck.ContentBlock{chartBlock()},
			want:   DefaultID,
		},
		{
			name:   "image with two bullet groups",
			blocks: []deck.ContentBlock{imageBlock(), bulletBlock(), bulletBlock()},
			want:   BigVisualID,
		},
		{
			name:   "image drowned in bullets",
			blocks: []deck.ContentBlock{imageBlock(), bulletBlock(), bulletBlock(), bulletBlock()},
			want:   DefaultID,
		},
		{
			name:   "no visuals",
			blocks: []deck.ContentBlock{bulletBlock()},
			want:   DefaultID,
		},
		{
			name:   "empty slide",
			blocks: nil,
			want:   DefaultID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.blocks, "unrecognized-intent")
			if got.ID != tt.want {
				t.Errorf("Select() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	blocks := []deck.ContentBlock{chartBlock(), bulletBlock()}
	first := Select(blocks, "growth")
	for i := 0; i < 10; i++ {
		if got := Select(blocks, "growth"); got.ID != first.ID {
			t.Fatalf("Select() unstable: %s then %s", first.ID, got.ID)
		}
	}
}

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned an empty catalog")
	}

	seen := map[string]bool{}
	for _, a := range all {
		if a.ID == "" || a.Name == "" || a.GridTemplate == "" {
			t.Errorf("incomplete catalog entry: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate archetype ID %s", a.ID)
		}
		seen[a.ID] = true
		if _, ok := a.Regions[deck.RegionTitle]; !ok {
			t.Errorf("archetype %s has no title region", a.ID)
		}
	}

	if _, ok := ByID(DefaultID); !ok {
		t.Errorf("ByID(%q) not found", DefaultID)
	}
	if _, ok := ByID("nope"); ok {
		t.Error(`ByID("nope") found a nonexistent archetype`)
	}
	if got := Default(); got.ID != DefaultID {
		t.Errorf("Default().ID = %s, want %s", got.ID, DefaultID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].ID = "mutated"
	if All()[0].ID == "mutated" {
		t.Error("All() exposes the internal catalog")
	}
}
