// Package cache provides content-addressed caching for deck generation.
//
// Two stages of the pipeline cache their results: the composed deck (keyed
// on the outline hash plus generation options) and the exported artifacts
// (keyed on the deck hash plus format). Keys are SHA-256 hashes, so
// identical inputs always hit the same entry regardless of backend.
//
// Backends: file (CLI default, XDG cache dir), Redis and MongoDB (hosted
// platform), and null (caching disabled).
package cache

import (
	"context"
	"time"
)

// TTLs per entry class. Composed decks are cheap to rebuild and invalidated
// by theme/catalog changes, so they expire faster than artifacts.
const (
	TTLDeck     = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores and retrieves opaque byte values by key.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DeckKeyOpts are the generation options that affect a composed deck.
type DeckKeyOpts struct {
	Theme   string `json:"theme"`
	Aspect  string `json:"aspect"`
	Company string `json:"company,omitempty"`
}

// ArtifactKeyOpts are the options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DeckKey generates a key for a composed deck.
	DeckKey(outlineHash string, opts DeckKeyOpts) string

	// ArtifactKey generates a key for an exported artifact.
	ArtifactKey(deckHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DeckKey generates a key for a composed deck.
func (k *DefaultKeyer) DeckKey(outlineHash string, opts DeckKeyOpts) string {
	return hashKey("deck", outlineHash, opts)
}

// ArtifactKey generates a key for an exported artifact.
func (k *DefaultKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", deckHash, opts)
}
