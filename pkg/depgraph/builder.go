package depgraph

import (
	"fmt"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// Build scans every declared entity, extracts its symbolic references, and
// produces the dependency graph. References to stack level names become
// dependencies on the owning stack.
//
// Build is a pure transform: it never mutates the document. A reference to
// an undeclared name fails with *scene.UnresolvedReferenceError; a
// duplicate entity name fails with ErrDuplicateName.
func Build(doc *scene.Document) (*Graph, error) {
	g := New()

	// providedBy maps every referencable name to the declared entity that
	// resolves it: entities provide their own names, stacks additionally
	// provide their synthesized level names.
	providedBy := make(map[string]string, len(doc.Entities))

	for _, e := range doc.Entities {
		if err := g.AddNode(e.Name); err != nil {
			return nil, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		providedBy[e.Name] = e.Name
		for i := range e.Levels {
			providedBy[e.LevelName(i)] = e.Name
		}
	}

	for _, e := range doc.Entities {
		for _, ref := range References(e) {
			owner, ok := providedBy[ref]
			if !ok {
				return nil, &scene.UnresolvedReferenceError{From: e.Name, To: ref}
			}
			if err := g.AddDep(e.Name, owner); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// References extracts every entity name e refers to symbolically:
// alignment target, size references, interior object, composite footprint
// fixtures, and placement fixture/region references.
func References(e *scene.Entity) []string {
	var refs []string
	if e.Align != nil && e.Align.AlignTo != "" {
		refs = append(refs, e.Align.AlignTo)
	}
	for _, d := range e.Size {
		if d.Kind == scene.DimRef {
			refs = append(refs, d.Ref)
		}
	}
	if e.InteriorObj != "" {
		refs = append(refs, e.InteriorObj)
	}
	refs = append(refs, e.StackFixtures...)
	if p := e.Placement; p != nil {
		if p.Fixture != "" {
			refs = append(refs, p.Fixture)
		}
		if p.SampleRegion != nil && p.SampleRegion.Ref != "" {
			refs = append(refs, p.SampleRegion.Ref)
		}
	}
	return refs
}
