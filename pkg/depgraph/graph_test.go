package depgraph

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()

	if err := g.AddNode(""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("empty name: err = %v, want ErrInvalidName", err)
	}
	if err := g.AddNode("counter"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode("counter"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate name: err = %v, want ErrDuplicateName", err)
	}

	n, ok := g.Node("counter")
	if !ok || n.Index != 0 {
		t.Errorf("Node = %+v, ok = %v", n, ok)
	}
}

func TestAddDep(t *testing.T) {
	g := New()
	for _, name := range []string{"wall", "counter"} {
		if err := g.AddNode(name); err != nil {
			t.Fatalf("AddNode(%s): %v", name, err)
		}
	}

	if err := g.AddDep("counter", "ghost"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown target: err = %v, want ErrUnknownNode", err)
	}
	if err := g.AddDep("ghost", "wall"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown source: err = %v, want ErrUnknownNode", err)
	}

	// Duplicate edges are dropped silently.
	if err := g.AddDep("counter", "wall"); err != nil {
		t.Fatalf("AddDep: %v", err)
	}
	if err := g.AddDep("counter", "wall"); err != nil {
		t.Fatalf("duplicate AddDep: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if deps := g.Deps("counter"); !slices.Equal(deps, []string{"wall"}) {
		t.Errorf("Deps = %v", deps)
	}
	if dependents := g.Dependents("wall"); !slices.Equal(dependents, []string{"counter"}) {
		t.Errorf("Dependents = %v", dependents)
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	g := New()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := g.AddNode(name); err != nil {
			t.Fatalf("AddNode(%s): %v", name, err)
		}
	}
	if got := g.Names(); !slices.Equal(got, names) {
		t.Errorf("Names = %v, want %v", got, names)
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
}
