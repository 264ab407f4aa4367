package resolver

import (
	"fmt"
	"strings"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// resolveTransform computes the entity's absolute position: from an
// explicit pose, from an alignment spec, or from a composite footprint.
// Interior entities are positioned by their container when it resolves;
// their own pose fields, if any, are ignored.
func (r *Resolver) resolveTransform(p *pass, e *scene.Entity, rec *scene.Resolved) error {
	if container, ok := p.interiorOf[e.Name]; ok {
		r.logger.Debug("interior transform deferred to container", "name", e.Name, "container", container)
		return nil
	}

	switch {
	case e.Pos != nil:
		rec.Pos = *e.Pos

	case e.Align != nil:
		pos, err := alignPosition(rec.Size, e.Align, p.lookup(e.Align.AlignTo))
		if err != nil {
			return fmt.Errorf("entity %q: %w", e.Name, err)
		}
		rec.Pos = pos

	case e.IsComposite():
		rec.Pos = compositePosition(p, e, rec.Size)
	}
	return nil
}

// alignPosition places an entity in face contact with the reference box.
//
// The entity's box is first inflated by the asymmetric padding ([low,
// high] per axis); the inflated box is the one aligned, and the real
// center is recovered with the (low-high)/2 shift. On the contact axis
// the inflated box touches the reference's requested face from outside;
// axes named by the compound alignment are flush with the matching
// reference face; remaining axes are centered. Offset is added last.
func alignPosition(size scene.Vec3, spec *scene.AlignSpec, ref *scene.Resolved) (scene.Vec3, error) {
	if !spec.Side.Valid() {
		return scene.Vec3{}, fmt.Errorf("invalid side %q", spec.Side)
	}

	var padded scene.Vec3
	for a := 0; a < 3; a++ {
		padded[a] = size[a] + spec.Padding[a][0] + spec.Padding[a][1]
	}

	refBox := ref.Box()

	// Centered on every axis by default.
	pos := ref.Pos

	// Face contact along the requested side.
	contact := spec.Side.Axis()
	pos[contact] = refBox.Face(spec.Side) + spec.Side.Sign()*padded[contact]/2

	// Compound alignment: flush the named faces on the remaining axes.
	for _, token := range strings.Split(spec.Alignment, "_") {
		if token == "" || token == "center" {
			continue
		}
		s := scene.Side(token)
		if !s.Valid() {
			return scene.Vec3{}, fmt.Errorf("unknown alignment token %q", token)
		}
		if s.Axis() == contact {
			continue
		}
		pos[s.Axis()] = refBox.Face(s) - s.Sign()*padded[s.Axis()]/2
	}

	// Recover the real center from the padded one, then apply the final
	// additive correction.
	for a := 0; a < 3; a++ {
		pos[a] += (spec.Padding[a][0] - spec.Padding[a][1]) / 2
	}
	return pos.Add(spec.Offset), nil
}

// compositePosition centers the entity over the union of its referenced
// fixtures, its base lifted by StackHeight above the union base.
func compositePosition(p *pass, e *scene.Entity, size scene.Vec3) scene.Vec3 {
	union := compositeUnion(p, e)
	pos := union.Center()
	pos[scene.AxisZ] = union.Min[scene.AxisZ] + e.StackHeight + size[scene.AxisZ]/2
	return pos
}

// placeInterior anchors the container's interior object: absolute
// transform derived from the container center and the asymmetric padding,
// with the container-relative offset recorded alongside.
func (r *Resolver) placeInterior(p *pass, container *scene.Entity, rec *scene.Resolved) {
	inner := p.lookup(container.InteriorObj)
	var rel scene.Vec3
	for a := 0; a < 3; a++ {
		rel[a] = (container.Padding[a][0] - container.Padding[a][1]) / 2
	}
	inner.Pos = rec.Pos.Add(rel)
	inner.RelPos = &rel
	inner.Parent = container.Name
}
