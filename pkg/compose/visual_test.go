package compose

import (
	"testing"

	"github.com/matzehuels/deckforge/pkg/deck"
)

func imageBlock(url string) deck.ContentBlock {
	return deck.ContentBlock{
		ID:      "img-1",
		Kind:    deck.BlockImage,
		Payload: deck.ImagePayload{Asset: deck.ImageAsset{URL: url}},
	}
}

func TestPlaceVisualsUsesRegionAspect(t *testing.T) {
	arch := deck.Archetype{
		ID: "with-visual",
		Regions: map[string]deck.Region{
			deck.RegionVisual: {Area: "visual", Aspect: 4.0 / 3.0},
		},
	}

	out := PlaceVisuals([]deck.ContentBlock{imageBlock("https://img/a.jpg")}, arch)

	p := out[0].Payload.(deck.ImagePayload)
	if p.Placement == nil {
		t.Fatal("image block has no placement")
	}
	if p.Placement.FittingMode != FittingCover {
		t.Errorf("FittingMode = %q, want %q", p.Placement.FittingMode, FittingCover)
	}
	if p.Placement.FocalPoint != FocalPointCenter {
		t.Errorf("FocalPoint = %q, want %q", p.Placement.FocalPoint, FocalPointCenter)
	}
	if p.Placement.TargetAspectRatio != 4.0/3.0 {
		t.Errorf("TargetAspectRatio = %g, want %g", p.Placement.TargetAspectRatio, 4.0/3.0)
	}
}

func TestPlaceVisualsFallbackAspect(t *testing.T) {
	arch := deck.Archetype{ID: "no-visual", Regions: map[string]deck.Region{}}

	out := PlaceVisuals([]deck.ContentBlock{imageBlock("https://img/a.jpg")}, arch)

	p := out[0].Payload.(deck.ImagePayload)
	if p.Placement.TargetAspectRatio != FallbackVisualAR {
		t.Errorf("TargetAspectRatio = %g, want fallback %g", p.Placement.TargetAspectRatio, FallbackVisualAR)
	}
}

func TestPlaceVisualsLeavesOtherBlocksAlone(t *testing.T) {
	blocks := []deck.ContentBlock{
		{Kind: deck.BlockTitle, Payload: deck.TextPayload{Text: "t"}},
		{Kind: deck.BlockChart, Payload: deck.StatsPayload{Stats: []deck.Stat{{Label: "a", Value: 1}}}},
	}

	out := PlaceVisuals(blocks, deck.Archetype{})

	if _, ok := out[0].Payload.(deck.TextPayload); !ok {
		t.Error("title payload type changed")
	}
	if _, ok := out[1].Payload.(deck.StatsPayload); !ok {
		t.Error("chart payload type changed")
	}
}

func TestPlaceVisualsCopyOnWrite(t *testing.T) {
	in := []deck.ContentBlock{imageBlock("https://img/a.jpg")}
	_ = PlaceVisuals(in, deck.Archetype{})

	if in[0].Payload.(deck.ImagePayload).Placement != nil {
		t.Error("PlaceVisuals mutated its input")
	}
}
