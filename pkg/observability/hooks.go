// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about deck synthesis, cache operations, and collaborator
// calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnComposeStart(ctx, slideNumber, intent)
//	// ... compose the slide ...
//	observability.Pipeline().OnComposeComplete(ctx, slideNumber, intent, blockCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the deck synthesis pipeline.
type PipelineHooks interface {
	// Compose events (per slide: blocks, archetype, fitting, charts)
	OnComposeStart(ctx context.Context, slideNumber int, intent string)
	OnComposeComplete(ctx context.Context, slideNumber int, intent string, blockCount int, duration time.Duration, err error)

	// Consistency events (deck-level checks after all slides are composed)
	OnConsistencyStart(ctx context.Context, slideCount int)
	OnConsistencyComplete(ctx context.Context, slideCount int, passed bool, duration time.Duration)

	// Export events
	OnExportStart(ctx context.Context, formats []string)
	OnExportComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Collaborator Hooks
// =============================================================================

// CollabHooks receives events from collaborator provider calls
// (research insights, prose generation, image search).
type CollabHooks interface {
	// OnCall records an outgoing collaborator call.
	OnCall(ctx context.Context, provider, operation string)

	// OnResult records a collaborator result.
	OnResult(ctx context.Context, provider, operation string, duration time.Duration)

	// OnError records a collaborator failure.
	OnError(ctx context.Context, provider, operation string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnComposeStart(context.Context, int, string) {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, int, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnConsistencyStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnConsistencyComplete(context.Context, int, bool, time.Duration)  {}
func (NoopPipelineHooks) OnExportStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnExportComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopCollabHooks is a no-op implementation of CollabHooks.
type NoopCollabHooks struct{}

func (NoopCollabHooks) OnCall(context.Context, string, string)                  {}
func (NoopCollabHooks) OnResult(context.Context, string, string, time.Duration) {}
func (NoopCollabHooks) OnError(context.Context, string, string, error)          {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	collabHooks   CollabHooks   = NoopCollabHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetCollabHooks registers custom collaborator hooks.
// This should be called once at application startup before any collaborator calls.
func SetCollabHooks(h CollabHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		collabHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Collab returns the registered collaborator hooks.
func Collab() CollabHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return collabHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	collabHooks = NoopCollabHooks{}
}
