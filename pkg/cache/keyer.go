package cache

// Keyer builds cache keys for the pipeline stages.
//
// Keys must reflect every input that changes the stage output: the scene
// key covers the document hash plus all resolution options, the graph key
// only the document hash (the dependency graph is seed-independent).
type Keyer interface {
	// GraphKey generates a key for dependency-graph caching.
	GraphKey(docHash string) string

	// SceneKey generates a key for resolved-scene caching.
	SceneKey(docHash string, opts SceneKeyOpts) string
}

// SceneKeyOpts are the resolution parameters that affect scene output.
type SceneKeyOpts struct {
	Seed        uint64 `json:"seed"`
	RetryBudget int    `json:"retry_budget"`
	CatalogHash string `json:"catalog_hash,omitempty"`
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for dependency-graph caching.
func (k *DefaultKeyer) GraphKey(docHash string) string {
	return "graph:" + docHash
}

// SceneKey generates a key for resolved-scene caching.
// The options are hashed into the key so any parameter change is a miss.
func (k *DefaultKeyer) SceneKey(docHash string, opts SceneKeyOpts) string {
	return hashKey("scene", docHash, opts)
}
