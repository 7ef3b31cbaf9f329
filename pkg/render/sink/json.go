package sink

import "github.com/matzehuels/deckforge/pkg/deck"

// RenderJSON exports the deck as a pretty-printed JSON document. This is the
// primary data interchange format: re-parsing the output with
// [deck.UnmarshalDeck] reproduces the slides array losslessly.
func RenderJSON(d *deck.CompletePitchDeck) ([]byte, error) {
	return deck.MarshalDeck(d)
}
