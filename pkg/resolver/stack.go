package resolver

import (
	"fmt"
	"math"

	"github.com/mengfei0517/robocasa/pkg/observability"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

// percentEpsilon is the tolerance on the stack percentage sum.
const percentEpsilon = 1e-6

// expandStack synthesizes one sub-entity per stack level, bottom-up. Each
// level inherits the stack's footprint; its height is its percentage of
// the stack's resolved total height, and each level sits on top of the
// previous one. Levels are registered as first-class entities so later
// alignments and size references against level names resolve normally,
// but they are tagged as synthesized, not author-declared.
func (r *Resolver) expandStack(p *pass, e *scene.Entity, rec *scene.Resolved) error {
	if len(e.Levels) != len(e.Percentages) {
		return fmt.Errorf("stack %q: %d levels but %d percentages", e.Name, len(e.Levels), len(e.Percentages))
	}

	sum := 0.0
	for _, pct := range e.Percentages {
		sum += pct
	}
	if math.Abs(sum-1.0) > percentEpsilon {
		return &scene.InvalidStackError{Entity: e.Name, Percentages: e.Percentages, Sum: sum}
	}

	base := rec.Pos[scene.AxisZ] - rec.Size[scene.AxisZ]/2
	cursor := base
	for i, kind := range e.Levels {
		h := e.Percentages[i] * rec.Size[scene.AxisZ]
		center := cursor + h/2
		rel := scene.Vec3{0, 0, center - rec.Pos[scene.AxisZ]}
		level := &scene.Resolved{
			Name:       e.LevelName(i),
			Kind:       kind,
			Pos:        scene.Vec3{rec.Pos[scene.AxisX], rec.Pos[scene.AxisY], center},
			Size:       scene.Vec3{rec.Size[scene.AxisX], rec.Size[scene.AxisY], h},
			Yaw:        rec.Yaw,
			Provenance: scene.ProvenanceSynthesized,
			Parent:     e.Name,
			RelPos:     &rel,
		}
		p.add(level)
		cursor += h
	}
	observability.Resolver().OnStackExpanded(e.Name, len(e.Levels))
	return nil
}
