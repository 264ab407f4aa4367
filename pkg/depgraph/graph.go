// Package depgraph builds and orders the symbolic dependency graph of a
// scene document.
//
// Every symbolic reference an entity makes (alignment target, size
// reference, interior object, composite footprint, placement fixture)
// becomes an edge from the entity to the entity it depends on. Stack
// levels are synthesized during resolution, so references to a level name
// resolve to a dependency on the owning stack.
//
// The graph is ordered with a stable topological sort (ties broken by
// declaration order) so each entity is resolved only after everything it
// depends on, and so a fixed document always resolves in the same order.
package depgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidName is returned by [Graph.AddNode] when the entity name
	// is empty. All entities must have non-empty names.
	ErrInvalidName = errors.New("entity name must not be empty")

	// ErrDuplicateName is returned by [Graph.AddNode] when an entity with
	// the same name already exists. Names are unique across the document.
	ErrDuplicateName = errors.New("duplicate entity name")

	// ErrUnknownNode is returned by [Graph.AddDep] when either endpoint
	// does not exist in the graph.
	ErrUnknownNode = errors.New("unknown entity")
)

// Node is one entity in the dependency graph.
type Node struct {
	Name  string
	Index int // declaration order, the topological tie-break
}

// Graph is a directed dependency graph over scene entities. Edges point
// from an entity to the entities it depends on.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	nodes      map[string]*Node
	order      []string            // declaration order
	deps       map[string][]string // entity -> entities it depends on
	dependents map[string][]string // entity -> entities depending on it
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		nodes:      make(map[string]*Node),
		deps:       make(map[string][]string),
		dependents: make(map[string][]string),
	}
}

// AddNode registers an entity. The declaration index is assigned from
// insertion order. Returns ErrInvalidName or ErrDuplicateName.
func (g *Graph) AddNode(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, exists := g.nodes[name]; exists {
		return ErrDuplicateName
	}
	g.nodes[name] = &Node{Name: name, Index: len(g.order)}
	g.order = append(g.order, name)
	return nil
}

// AddDep records that from depends on to. Duplicate edges are ignored.
// Self-dependencies are recorded like any other edge; they surface as
// length-one cycles in [Graph.TopoSort]. Returns ErrUnknownNode if either
// endpoint is missing.
func (g *Graph) AddDep(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownNode
	}
	if slices.Contains(g.deps[from], to) {
		return nil
	}
	g.deps[from] = append(g.deps[from], to)
	g.dependents[to] = append(g.dependents[to], from)
	return nil
}

// Node returns the node with the given name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Names returns all entity names in declaration order.
func (g *Graph) Names() []string { return slices.Clone(g.order) }

// Deps returns the entities name depends on. The returned slice is a
// read-only view.
func (g *Graph) Deps(name string) []string { return g.deps[name] }

// Dependents returns the entities that depend on name. The returned slice
// is a read-only view.
func (g *Graph) Dependents(name string) []string { return g.dependents[name] }

// NodeCount returns the number of entities in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of dependency edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, d := range g.deps {
		n += len(d)
	}
	return n
}
