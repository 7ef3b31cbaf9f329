package compose

import (
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
)

func TestExtractBlocksFullSlide(t *testing.T) {
	slide := deck.OutlineSlide{
		SlideNumber: 3,
		SlideType:   "market",
		Title:       "Market Opportunity",
		Content:     []string{"one", "two", "three", "four", "five"},
		ChartType:   "pie",
		Statistics:  []deck.Stat{{Label: "NA", Value: 40}, {Label: "EU", Value: 60}},
		Images:      []deck.ImageAsset{{URL: "https://img/a.jpg"}, {URL: "https://img/b.jpg"}},
	}

	blocks := ExtractBlocks(slide)

	// title + 5 bullets + 1 image + 1 chart
	if len(blocks) != 8 {
		t.Fatalf("got %d blocks, want 8", len(blocks))
	}

	if blocks[0].Kind != deck.BlockTitle {
		t.Errorf("first block kind = %q, want title", blocks[0].Kind)
	}
	if blocks[0].Priority != deck.PriorityMustShow || blocks[0].Weight != deck.WeightHeavy {
		t.Error("title block must be must-show and heavy")
	}
	if blocks[0].EstimatedLength != len(slide.Title) {
		t.Errorf("title EstimatedLength = %d, want %d", blocks[0].EstimatedLength, len(slide.Title))
	}

	// First MustShowBullets bullets are must-show, the rest nice-to-have.
	for i := 1; i <= 5; i++ {
		b := blocks[i]
		if b.Kind != deck.BlockBullets {
			t.Fatalf("block %d kind = %q, want bullets", i, b.Kind)
		}
		want := deck.PriorityMustShow
		if i-1 >= MustShowBullets {
			want = deck.PriorityNiceToHave
		}
		if b.Priority != want {
			t.Errorf("bullet %d priority = %q, want %q", i-1, b.Priority, want)
		}
	}

	// Only the first image descriptor is used.
	img := blocks[6]
	if img.Kind != deck.BlockImage {
		t.Fatalf("block 6 kind = %q, want image", img.Kind)
	}
	if p := img.Payload.(deck.ImagePayload); p.Asset.URL != "https://img/a.jpg" {
		t.Errorf("image URL = %q, want first descriptor", p.Asset.URL)
	}

	chart := blocks[7]
	if chart.Kind != deck.BlockChart {
		t.Fatalf("block 7 kind = %q, want chart", chart.Kind)
	}
	if p := chart.Payload.(deck.StatsPayload); p.ChartType != "pie" || len(p.Stats) != 2 {
		t.Errorf("chart payload = %+v", p)
	}

	// Every block carries the slide intent and a unique id.
	seen := make(map[string]bool)
	for i, b := range blocks {
		if b.Intent != "market" {
			t.Errorf("block %d intent = %q, want market", i, b.Intent)
		}
		if b.ID == "" || seen[b.ID] {
			t.Errorf("block %d id %q not unique", i, b.ID)
		}
		seen[b.ID] = true
	}
}

func TestExtractBlocksEmptySlide(t *testing.T) {
	blocks := ExtractBlocks(deck.OutlineSlide{SlideNumber: 1, SlideType: "intro"})
	if len(blocks) != 0 {
		t.Errorf("empty slide yielded %d blocks, want 0", len(blocks))
	}
}

func TestExtractBlocksOneBlockPerContentEntry(t *testing.T) {
	slide := deck.OutlineSlide{
		SlideNumber: 1,
		SlideType:   "problem",
		Content:     []string{"first point", "second point"},
	}
	blocks := ExtractBlocks(slide)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for i, want := range []string{"first point", "second point"} {
		p := blocks[i].Payload.(deck.ListPayload)
		if len(p.Items) != 1 || p.Items[0] != want {
			t.Errorf("block %d items = %v, want [%q]", i, p.Items, want)
		}
		if blocks[i].EstimatedLength != len(want) {
			t.Errorf("block %d EstimatedLength = %d, want %d", i, blocks[i].EstimatedLength, len(want))
		}
	}
}
