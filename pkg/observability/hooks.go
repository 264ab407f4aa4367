// Package observability provides hooks for metrics and logging around
// scene resolution.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core library free of observability-framework
// dependencies while letting deployments plug in any backend
// (OpenTelemetry, Prometheus, plain logging). Hooks are registered by
// main, never by libraries, which avoids import cycles.
//
// Resolver hooks carry no context: a resolution pass is synchronous with
// no suspension or cancellation points.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolver Hooks
// =============================================================================

// ResolverHooks receives events from scene resolution passes.
type ResolverHooks interface {
	// OnResolveStart records the beginning of a pass.
	OnResolveStart(document string, entities int)

	// OnResolveComplete records the end of a pass.
	OnResolveComplete(document string, resolved, synthesized int, duration time.Duration, err error)

	// OnStackExpanded records a stack expansion.
	OnStackExpanded(stack string, levels int)

	// OnDoorSampled records a sampled door open fraction.
	OnDoorSampled(fixture string, state float64)

	// OnSampleRetry records a rejected placement candidate.
	OnSampleRetry(fixture, object string, attempt int)
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
// No-op Implementations
// =============================================================================

// NoopResolverHooks is a no-op implementation of ResolverHooks.
type NoopResolverHooks struct{}

func (NoopResolverHooks) OnResolveStart(string, int)                               {}
func (NoopResolverHooks) OnResolveComplete(string, int, int, time.Duration, error) {}
func (NoopResolverHooks) OnStackExpanded(string, int)                              {}
func (NoopResolverHooks) OnDoorSampled(string, float64)                            {}
func (NoopResolverHooks) OnSampleRetry(string, string, int)                        {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolverHooks ResolverHooks = NoopResolverHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetResolverHooks registers custom resolver hooks.
// This should be called once at application startup before any passes run.
func SetResolverHooks(h ResolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolverHooks = h
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

// Resolver returns the registered resolver hooks.
func Resolver() ResolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolverHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolverHooks = NoopResolverHooks{}
	cacheHooks = NoopCacheHooks{}
}
