package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when one cache backend serves several projects or environments
// and their resolved scenes must not collide.
//
// Example usage:
//
//	// Per-project keys on a shared Redis
//	projKeyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "proj:kitchen-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for dependency-graph caching.
func (k *ScopedKeyer) GraphKey(docHash string) string {
	return k.prefix + k.inner.GraphKey(docHash)
}

// SceneKey generates a prefixed key for resolved-scene caching.
func (k *ScopedKeyer) SceneKey(docHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(docHash, opts)
}
