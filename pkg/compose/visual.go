package compose

import "github.com/matzehuels/deckforge/pkg/deck"

// Visual placement contract values. Downstream renderers interpret these;
// the pipeline itself never touches pixels.
const (
	FittingCover      = "cover"
	FocalPointCenter  = "center"
	FallbackVisualAR  = 16.0 / 9.0
)

// PlaceVisuals attaches a placement contract to every image block, returning
// a new block slice. The target aspect ratio comes from the archetype's
// visual region; archetypes without a visual region fall back to 16:9.
// Chart and other block kinds pass through unchanged.
func PlaceVisuals(blocks []deck.ContentBlock, arch deck.Archetype) []deck.ContentBlock {
	out := deck.CloneBlocks(blocks)

	aspect := FallbackVisualAR
	if region, ok := arch.Regions[deck.RegionVisual]; ok && region.Aspect > 0 {
		aspect = region.Aspect
	}

	for i, b := range out {
		if b.Kind != deck.BlockImage {
			continue
		}
		payload, ok := b.Payload.(deck.ImagePayload)
		if !ok {
			continue
		}
		payload.Placement = &deck.Placement{
			FittingMode:       FittingCover,
			TargetAspectRatio: aspect,
			FocalPoint:        FocalPointCenter,
		}
		out[i].Payload = payload
	}
	return out
}
