package resolver

import (
	"fmt"

	"github.com/mengfei0517/robocasa/pkg/observability"
	"github.com/mengfei0517/robocasa/pkg/sampler"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// rect2 is a 2D interval box on a fixture surface (x, y axes).
type rect2 struct {
	min [2]float64
	max [2]float64
}

func (r rect2) overlaps(o rect2) bool {
	for a := 0; a < 2; a++ {
		if r.max[a] <= o.min[a] || r.min[a] >= o.max[a] {
			return false
		}
	}
	return true
}

func (r rect2) intersect(o rect2) rect2 {
	for a := 0; a < 2; a++ {
		r.min[a] = max(r.min[a], o.min[a])
		r.max[a] = min(r.max[a], o.max[a])
	}
	return r
}

// samplePlacement resolves one placement block: compute the feasible
// sampling interval on the parent surface, draw (or pin) each axis, draw
// the yaw, and reject candidates overlapping objects already placed on
// the same fixture. Retries are bounded and local; exhausting them fails
// the pass with PlacementInfeasibleError.
func (r *Resolver) samplePlacement(p *pass, e *scene.Entity) error {
	spec := e.Placement
	rec := p.lookup(e.Name)
	parent := p.lookup(spec.Fixture)

	region, z, err := r.surfaceRegion(p, parent, spec)
	if err != nil {
		return err
	}

	footprint := spec.Size
	if footprint[0] == 0 && footprint[1] == 0 {
		footprint = [2]float64{rec.Size[scene.AxisX], rec.Size[scene.AxisY]}
	}

	// Feasible interval for the object's center per axis: the region
	// shrunk by the margin and half the footprint on each side.
	var lo, hi [2]float64
	for a := 0; a < 2; a++ {
		lo[a] = region.min[a] + spec.Margin + footprint[a]/2
		hi[a] = region.max[a] - spec.Margin - footprint[a]/2
		if lo[a] > hi[a] {
			return &scene.PlacementInfeasibleError{Fixture: spec.Fixture, Object: e.Name}
		}
	}

	for attempt := 1; attempt <= r.retries; attempt++ {
		var c [2]float64
		for a := 0; a < 2; a++ {
			if frac := spec.Pos[a]; frac != nil {
				c[a] = lo[a] + *frac*(hi[a]-lo[a])
			} else {
				c[a] = sampler.Uniform(p.src, lo[a], hi[a])
			}
		}
		yaw := sampler.Uniform(p.src, spec.Rotation[0], spec.Rotation[1])

		candidate := rect2{
			min: [2]float64{c[0] - footprint[0]/2, c[1] - footprint[1]/2},
			max: [2]float64{c[0] + footprint[0]/2, c[1] + footprint[1]/2},
		}
		if collides(p.footprints[spec.Fixture], candidate) {
			observability.Resolver().OnSampleRetry(spec.Fixture, e.Name, attempt)
			continue
		}

		rec.Pos = scene.Vec3{c[0], c[1], z + rec.Size[scene.AxisZ]/2}
		rec.Yaw = yaw
		rec.Parent = spec.Fixture
		p.footprints[spec.Fixture] = append(p.footprints[spec.Fixture], candidate)
		r.logger.Debug("placed object", "name", e.Name, "fixture", spec.Fixture, "attempts", attempt)
		return nil
	}

	return &scene.PlacementInfeasibleError{Fixture: spec.Fixture, Object: e.Name, Attempts: r.retries}
}

func collides(placed []rect2, candidate rect2) bool {
	for _, f := range placed {
		if f.overlaps(candidate) {
			return true
		}
	}
	return false
}

// surfaceRegion resolves the 2D sampling region on the parent fixture and
// the height objects rest at. The default region is the fixture's top
// surface; "interior" selects the cavity floor of kinds with an interior,
// shrunk by the wall thickness. A sample-region ref narrows the region to
// the sub-area overlapping the referenced fixture's footprint.
func (r *Resolver) surfaceRegion(p *pass, parent *scene.Resolved, spec *scene.PlacementSpec) (rect2, float64, error) {
	kindSpec, known := r.cat.Spec(parent.Kind)
	box := parent.Box()

	region := rect2{
		min: [2]float64{box.Min[scene.AxisX], box.Min[scene.AxisY]},
		max: [2]float64{box.Max[scene.AxisX], box.Max[scene.AxisY]},
	}
	z := box.Max[scene.AxisZ]

	if spec.SampleRegion != nil && spec.SampleRegion.Region == "interior" {
		if !known || !kindSpec.HasInterior {
			return rect2{}, 0, fmt.Errorf("fixture %q (%s) has no interior cavity", parent.Name, parent.Kind)
		}
		th := kindSpec.WallThickness
		for a := 0; a < 2; a++ {
			region.min[a] += th
			region.max[a] -= th
		}
		z = box.Min[scene.AxisZ] + th
	} else if known && !kindSpec.TopSurface {
		return rect2{}, 0, fmt.Errorf("fixture %q (%s) has no top surface for placement", parent.Name, parent.Kind)
	}

	if spec.SampleRegion != nil && spec.SampleRegion.Ref != "" {
		ref := p.lookup(spec.SampleRegion.Ref).Box()
		region = region.intersect(rect2{
			min: [2]float64{ref.Min[scene.AxisX], ref.Min[scene.AxisY]},
			max: [2]float64{ref.Max[scene.AxisX], ref.Max[scene.AxisY]},
		})
	}

	return region, z, nil
}
