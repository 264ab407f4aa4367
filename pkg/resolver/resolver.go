// Package resolver turns a declarative scene document into a fully
// resolved scene graph.
//
// Resolution is a single-pass, synchronous computation over the document's
// dependency graph: entities are processed in stable topological order, so
// every symbolic size and alignment reference reads from an
// already-resolved entity. Stack entities synthesize their levels inline,
// making level names referencable by later entities. Randomized object
// placement runs last, once every fixture transform is final.
//
// The pass either completes or fails fast with one of the scene error
// types; no partial scene is ever returned.
package resolver

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mengfei0517/robocasa/pkg/catalog"
	"github.com/mengfei0517/robocasa/pkg/depgraph"
	"github.com/mengfei0517/robocasa/pkg/observability"
	"github.com/mengfei0517/robocasa/pkg/sampler"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// DefaultRetryBudget bounds rejection sampling per placement. The source
// format does not pin this down; 100 attempts comfortably covers realistic
// surface occupancy while failing crowded configurations quickly.
const DefaultRetryBudget = 100

// Options configures a Resolver.
type Options struct {
	// Logger receives debug-level resolution traces. Defaults to a
	// discard logger.
	Logger *log.Logger

	// RetryBudget bounds placement rejection sampling. Defaults to
	// DefaultRetryBudget.
	RetryBudget int
}

// Resolver resolves scene documents against a fixture catalog. A Resolver
// is stateless across passes and safe to reuse; per-pass state lives on
// the stack of Resolve.
type Resolver struct {
	cat     catalog.Catalog
	logger  *log.Logger
	retries int
}

// New creates a Resolver for the given catalog. A nil catalog falls back
// to the built-in set; opts may be nil.
func New(cat catalog.Catalog, opts *Options) *Resolver {
	if cat == nil {
		cat = catalog.Builtin()
	}
	r := &Resolver{
		cat:     cat,
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		retries: DefaultRetryBudget,
	}
	if opts != nil {
		if opts.Logger != nil {
			r.logger = opts.Logger
		}
		if opts.RetryBudget > 0 {
			r.retries = opts.RetryBudget
		}
	}
	return r
}

// pass holds the in-progress scene graph for one resolution. The resolver
// exclusively owns it for the duration of the pass; no concurrent
// mutation is permitted.
type pass struct {
	doc      *scene.Document
	src      sampler.Source
	resolved map[string]*scene.Resolved
	arena    []*scene.Resolved // output order: declared + synthesized

	// interiorOf maps an interior entity to its container, so the
	// transform step knows to defer to the container's placement.
	interiorOf map[string]string

	// footprints tracks placed object footprints per fixture for the
	// overlap rejection test.
	footprints map[string][]rect2
}

func (p *pass) lookup(name string) *scene.Resolved { return p.resolved[name] }

func (p *pass) add(rec *scene.Resolved) {
	p.resolved[rec.Name] = rec
	p.arena = append(p.arena, rec)
}

// Resolve runs one full resolution pass: build the dependency graph,
// order it, resolve dimensions and transforms rank by rank, expand
// stacks, and finally sample object placements. src supplies all
// randomness; a fixed document and source yield a byte-identical scene.
func (r *Resolver) Resolve(doc *scene.Document, src sampler.Source) (*scene.Scene, error) {
	start := time.Now()
	observability.Resolver().OnResolveStart(doc.Name, len(doc.Entities))

	out, err := r.resolve(doc, src)
	synthesized := 0
	if out != nil {
		synthesized = len(out.Entities) - len(doc.Entities)
	}
	observability.Resolver().OnResolveComplete(doc.Name, len(doc.Entities), synthesized, time.Since(start), err)
	return out, err
}

func (r *Resolver) resolve(doc *scene.Document, src sampler.Source) (*scene.Scene, error) {
	g, err := depgraph.Build(doc)
	if err != nil {
		return nil, err
	}
	order, err := g.TopoSort()
	if err != nil {
		return nil, err
	}
	r.logger.Debug("dependency graph ordered", "entities", g.NodeCount(), "edges", g.EdgeCount())

	p := &pass{
		doc:        doc,
		src:        src,
		resolved:   make(map[string]*scene.Resolved, len(order)),
		interiorOf: make(map[string]string),
		footprints: make(map[string][]rect2),
	}
	for _, e := range doc.Entities {
		if e.InteriorObj != "" {
			p.interiorOf[e.InteriorObj] = e.Name
		}
	}

	var placements []*scene.Entity
	for _, name := range order {
		e, ok := doc.Entity(name)
		if !ok {
			// Topological order only contains declared names.
			return nil, fmt.Errorf("entity %q: not declared", name)
		}

		size, err := r.resolveSize(p, e)
		if err != nil {
			return nil, err
		}
		rec := &scene.Resolved{
			Name:       e.Name,
			Kind:       e.Kind,
			Size:       size,
			Yaw:        e.Yaw,
			Provenance: scene.ProvenanceDeclared,
		}
		p.add(rec)

		if e.Placement != nil {
			// Transforms for placed objects are sampled after all
			// fixtures are final.
			placements = append(placements, e)
		} else if err := r.resolveTransform(p, e, rec); err != nil {
			return nil, err
		}

		if e.InteriorObj != "" {
			r.placeInterior(p, e, rec)
		}
		if e.IsStack() {
			if err := r.expandStack(p, e, rec); err != nil {
				return nil, err
			}
		}
		if e.DoorState != nil {
			r.sampleDoorState(p, e, rec)
		}
		r.logger.Debug("resolved entity", "name", rec.Name, "pos", rec.Pos, "size", rec.Size)
	}

	for _, e := range placements {
		if err := r.samplePlacement(p, e); err != nil {
			return nil, err
		}
	}

	out := &scene.Scene{
		Document: doc.Name,
		Entities: make([]scene.Resolved, len(p.arena)),
	}
	for i, rec := range p.arena {
		out.Entities[i] = *rec
	}
	return out, nil
}

// sampleDoorState draws the open fraction for openable kinds. Requests on
// kinds without hinge geometry are ignored.
func (r *Resolver) sampleDoorState(p *pass, e *scene.Entity, rec *scene.Resolved) {
	spec, ok := r.cat.Spec(e.Kind)
	if !ok || !spec.Openable {
		r.logger.Debug("door state ignored for non-openable kind", "name", e.Name, "kind", e.Kind)
		return
	}
	state := sampler.Uniform(p.src, e.DoorState[0], e.DoorState[1])
	rec.DoorState = &state
	observability.Resolver().OnDoorSampled(e.Name, state)
}
