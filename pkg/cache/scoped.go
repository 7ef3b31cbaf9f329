package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation. The
// hosted platform uses this to give each workspace its own cache namespace
// while sharing one backend.
//
//	workspaceKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DeckKey generates a prefixed key for a composed deck.
func (k *ScopedKeyer) DeckKey(outlineHash string, opts DeckKeyOpts) string {
	return k.prefix + k.inner.DeckKey(outlineHash, opts)
}

// ArtifactKey generates a prefixed key for an exported artifact.
func (k *ScopedKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(deckHash, opts)
}
