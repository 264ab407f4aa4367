package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mengfei0517/robocasa/pkg/cache"
	"github.com/mengfei0517/robocasa/pkg/catalog"
	"github.com/mengfei0517/robocasa/pkg/depgraph"
	"github.com/mengfei0517/robocasa/pkg/document"
	"github.com/mengfei0517/robocasa/pkg/graphio"
	"github.com/mengfei0517/robocasa/pkg/observability"
	"github.com/mengfei0517/robocasa/pkg/resolver"
	"github.com/mengfei0517/robocasa/pkg/sampler"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → graph → resolve pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	doc, docHash, err := r.LoadDocument(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.DocHash = docHash
	result.Stats.LoadTime = time.Since(loadStart)

	opts.Logger.Info("loaded document",
		"name", doc.Name,
		"entities", len(doc.Entities),
		"duration", result.Stats.LoadTime)

	// Stage 2: Graph
	g, err := r.BuildGraph(ctx, doc, docHash)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	result.Graph = g
	result.Stats.EntityCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 3: Resolve
	resolveStart := time.Now()
	sc, sceneHit, err := r.ResolveWithCacheInfo(ctx, doc, docHash, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Scene = sc
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.SynthesizedCount = len(sc.Entities) - len(doc.Entities)
	result.CacheInfo.SceneHit = sceneHit

	opts.Logger.Info("resolved scene",
		"pass", sc.PassID,
		"entities", len(sc.Entities),
		"cached", sceneHit,
		"duration", result.Stats.ResolveTime)

	return result, nil
}

// LoadDocument loads the document from opts and returns its content hash.
// The hash covers the canonical JSON form, so documents that decode to the
// same entities share cache entries regardless of YAML formatting.
func (r *Runner) LoadDocument(opts Options) (*scene.Document, string, error) {
	var doc *scene.Document
	if opts.DocumentPath != "" {
		var err error
		doc, err = document.Load(opts.DocumentPath)
		if err != nil {
			return nil, "", err
		}
	} else {
		doc = opts.Document
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, "", fmt.Errorf("hash document: %w", err)
	}
	return doc, cache.Hash(data), nil
}

// BuildGraph builds the entity dependency graph and caches its JSON form
// for API consumers. The graph is seed-independent, so it is keyed by the
// document hash alone.
func (r *Runner) BuildGraph(ctx context.Context, doc *scene.Document, docHash string) (*depgraph.Graph, error) {
	g, err := depgraph.Build(doc)
	if err != nil {
		return nil, err
	}
	if _, err := g.TopoSort(); err != nil {
		return nil, err
	}

	if data, err := graphio.MarshalGraph(g); err == nil {
		key := r.Keyer.GraphKey(docHash)
		if err := r.Cache.Set(ctx, key, data, cache.TTLGraph); err == nil {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}
	return g, nil
}

// ResolveWithCacheInfo resolves the scene with caching and returns cache
// hit info. Refresh bypasses the cache read but still writes the result.
func (r *Runner) ResolveWithCacheInfo(ctx context.Context, doc *scene.Document, docHash string, opts Options) (*scene.Scene, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cat, catalogHash, err := r.loadCatalog(opts)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.SceneKey(docHash, opts.SceneKeyOpts(catalogHash))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			sc, err := graphio.ReadScene(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return sc, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	// Resolve
	res := resolver.New(cat, &resolver.Options{
		Logger:      opts.Logger,
		RetryBudget: opts.RetryBudget,
	})
	sc, err := res.Resolve(doc, sampler.New(opts.Seed))
	if err != nil {
		return nil, false, err
	}
	sc.PassID = uuid.NewString()
	sc.Seed = opts.Seed

	// Cache the result
	if data, err := graphio.MarshalScene(sc); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLScene); err == nil {
			observability.Cache().OnCacheSet(ctx, "scene", len(data))
		}
	}

	return sc, false, nil // Cache miss
}

// Resolve is a convenience wrapper that loads, builds, and resolves,
// discarding cache hit info.
func (r *Runner) Resolve(ctx context.Context, opts Options) (*scene.Scene, error) {
	result, err := r.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	return result.Scene, nil
}

// loadCatalog loads the catalog override file if configured. The returned
// hash feeds the scene cache key; the built-in catalog hashes to "".
func (r *Runner) loadCatalog(opts Options) (catalog.Catalog, string, error) {
	if opts.CatalogPath == "" {
		return catalog.Builtin(), "", nil
	}
	data, err := os.ReadFile(opts.CatalogPath)
	if err != nil {
		return nil, "", fmt.Errorf("read catalog %s: %w", opts.CatalogPath, err)
	}
	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, "", err
	}
	return cat, cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
