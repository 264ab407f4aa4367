// Package pkg provides the core libraries for Scenegen scene resolution.
//
// # Overview
//
// Scenegen turns declarative scene documents into fully placed 3D layouts.
// Entities describe themselves relative to each other (sizes that copy a
// neighbor's axis, positions aligned to another entity's face, objects
// sampled onto a counter top) and the resolver works out concrete positions,
// sizes, and rotations for all of them. The pkg directory is organized into
// these areas:
//
//  1. [scene] - Domain types (documents, entities, dimensions, resolved scenes)
//  2. [depgraph] - Reference extraction and dependency ordering
//  3. [resolver] - Size, transform, stack, and placement resolution
//  4. [catalog] - Fixture kind registry (default sizes, interiors, doors)
//  5. [pipeline] - Orchestration (load → graph → resolve) used by CLI and API
//  6. [cache] / [store] - Caching and scene persistence backends
//
// # Architecture
//
// The typical data flow through Scenegen:
//
//	YAML scene document
//	         ↓
//	    [document] package (parse + validate)
//	         ↓
//	    [depgraph] package (reference graph + topological order)
//	         ↓
//	    [resolver] package (sizes, transforms, stacks, placement)
//	         ↓
//	    Resolved scene (JSON) / graph export (DOT, SVG)
//
// # Quick Start
//
// Resolve a document and write the scene to stdout:
//
//	import (
//	    "os"
//	    "github.com/mengfei0517/robocasa/pkg/catalog"
//	    "github.com/mengfei0517/robocasa/pkg/document"
//	    "github.com/mengfei0517/robocasa/pkg/graphio"
//	    "github.com/mengfei0517/robocasa/pkg/resolver"
//	    "github.com/mengfei0517/robocasa/pkg/sampler"
//	)
//
//	// 1. Load the document
//	doc, _ := document.Load("kitchen.yaml")
//
//	// 2. Resolve it with a seeded sampler
//	r := resolver.New(catalog.Builtin(), nil)
//	sc, _ := r.Resolve(doc, sampler.New(42))
//
//	// 3. Write the resolved scene
//	graphio.WriteScene(os.Stdout, sc)
//
// # Main Packages
//
// [scene] - Domain types. Documents and entities as authored, the Dim tagged
// union (literal, null, reference), and the resolved output types. Also the
// typed resolution errors (cycles, unresolved references, infeasible
// placements).
//
// [depgraph] - Builds the dependency graph from entity references and orders
// it with a stable topological sort. Cycles are reported with the full cycle
// path.
//
// [resolver] - The resolution engine. Resolves sizes (including housing
// cabinets sized around their interior object), transforms (face alignment
// and side attachment), expands stacks into per-level entities, and samples
// object placements inside fixture regions under a retry budget.
//
// [catalog] - The fixture kind registry. Builtin kinds cover common kitchen
// fixtures; a TOML catalog file can add kinds or override defaults.
//
// [sampler] - Seeded randomness. All stochastic choices (door states,
// placement positions) draw from a single Source so identical inputs produce
// byte-identical scenes.
//
// [pipeline] - Complete resolution pipeline used by CLI and API. Ensures
// consistent behavior across all entry points and handles graph and scene
// caching.
//
// [cache] - Caching backends with a shared key scheme: FileCache for the CLI,
// RedisCache for the API, NullCache to disable caching.
//
// [store] - Scene persistence by pass ID: MemoryStore for testing and
// MongoStore for durable archival.
//
// [graphio] - Serialization of graphs and scenes (JSON), plus DOT and SVG
// graph export.
//
// [errors] - Boundary error codes and input validation shared by the CLI and
// HTTP server.
//
// [observability] - Hook interfaces for instrumenting resolution and cache
// activity.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/resolver/...     # Specific package
//
// [scene]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/scene
// [depgraph]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/depgraph
// [resolver]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/resolver
// [catalog]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/catalog
// [sampler]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/sampler
// [document]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/document
// [pipeline]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/cache
// [store]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/store
// [graphio]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/graphio
// [errors]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mengfei0517/robocasa/pkg/observability
package pkg
