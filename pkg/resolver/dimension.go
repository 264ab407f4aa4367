package resolver

import (
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// resolveSize computes the entity's concrete 3-component extent. Each
// component resolves independently:
//
//   - literal: used as-is
//   - reference: the named entity's resolved extent on the same axis
//     (already final by topological order)
//   - null: inferred from the alignment target, the composite footprint
//     union, the interior object plus padding, or the kind's catalog
//     default, in that order
//
// A null axis with no inferable source is an AmbiguousDimensionError.
func (r *Resolver) resolveSize(p *pass, e *scene.Entity) (scene.Vec3, error) {
	var size scene.Vec3
	for a := scene.AxisX; a <= scene.AxisZ; a++ {
		d := e.Size[a]
		switch d.Kind {
		case scene.DimLiteral:
			size[a] = d.Value

		case scene.DimRef:
			size[a] = p.lookup(d.Ref).Size[a]

		case scene.DimNull:
			v, ok := r.inferAxis(p, e, a)
			if !ok {
				return scene.Vec3{}, &scene.AmbiguousDimensionError{Entity: e.Name, Axis: a}
			}
			size[a] = v
		}
	}
	return size, nil
}

func (r *Resolver) inferAxis(p *pass, e *scene.Entity, a scene.Axis) (float64, bool) {
	if e.Align != nil {
		return p.lookup(e.Align.AlignTo).Size[a], true
	}
	if e.IsComposite() {
		return compositeUnion(p, e).Extent()[a], true
	}
	if e.InteriorObj != "" {
		inner := p.lookup(e.InteriorObj)
		return e.Padding[a][0] + inner.Size[a] + e.Padding[a][1], true
	}
	if spec, ok := r.cat.Spec(e.Kind); ok && spec.DefaultSize[a] > 0 {
		return spec.DefaultSize[a], true
	}
	return 0, false
}

// compositeUnion returns the axis-aligned union of the composite's
// referenced fixture boxes.
func compositeUnion(p *pass, e *scene.Entity) scene.BBox {
	box := p.lookup(e.StackFixtures[0]).Box()
	for _, name := range e.StackFixtures[1:] {
		box = box.Union(p.lookup(name).Box())
	}
	return box
}
