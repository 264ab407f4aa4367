// Package pipeline provides the core scene-generation pipeline.
//
// This package implements the complete load → graph → resolve pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and decode the scene-layout document
//  2. Graph: Build and order the entity dependency graph
//  3. Resolve: Compute concrete transforms, expand stacks, sample placements
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    DocumentPath: "kitchen.yaml",
//	    Seed:         42,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Scene.PassID)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mengfei0517/robocasa/pkg/cache"
	"github.com/mengfei0517/robocasa/pkg/depgraph"
	"github.com/mengfei0517/robocasa/pkg/resolver"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultRetryBudget is the default placement rejection-sampling bound.
	DefaultRetryBudget = resolver.DefaultRetryBudget
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the scene-generation pipeline.
// This struct supports JSON serialization for API requests. Exactly one of
// Document and DocumentPath must be set.
type Options struct {
	// Document is an already-loaded scene document (API requests).
	Document *scene.Document `json:"document,omitempty"`

	// DocumentPath is a YAML layout file to load (CLI usage).
	DocumentPath string `json:"document_path,omitempty"`

	// Seed drives all sampling in the pass. Zero selects DefaultSeed.
	Seed uint64 `json:"seed,omitempty"`

	// RetryBudget bounds placement rejection sampling. Zero selects
	// DefaultRetryBudget.
	RetryBudget int `json:"retry_budget,omitempty"`

	// CatalogPath is an optional TOML fixture-catalog override file.
	CatalogPath string `json:"catalog_path,omitempty"`

	// Refresh bypasses the cache and recomputes the scene.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the fully resolved scene.
	Scene *scene.Scene

	// Graph is the entity dependency graph.
	Graph *depgraph.Graph

	// DocHash is the content hash of the loaded document.
	DocHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntityCount      int
	SynthesizedCount int
	EdgeCount        int
	LoadTime         time.Duration
	ResolveTime      time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	SceneHit bool // Whether the resolved scene came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Document == nil && o.DocumentPath == "" {
		return fmt.Errorf("document or document_path is required")
	}
	if o.Document != nil && o.DocumentPath != "" {
		return fmt.Errorf("document and document_path are mutually exclusive")
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.RetryBudget == 0 {
		o.RetryBudget = DefaultRetryBudget
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SceneKeyOpts returns cache key options for resolved-scene caching.
func (o *Options) SceneKeyOpts(catalogHash string) cache.SceneKeyOpts {
	return cache.SceneKeyOpts{
		Seed:        o.Seed,
		RetryBudget: o.RetryBudget,
		CatalogHash: catalogHash,
	}
}
