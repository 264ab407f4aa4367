package resolver

import (
	"errors"
	"testing"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

func stackDoc(percentages []float64) *scene.Document {
	pos := scene.Vec3{0, 0, 1.0}
	return &scene.Document{
		Name: "k",
		Entities: []*scene.Entity{
			{
				Name:        "stack",
				Kind:        scene.KindStack,
				Size:        scene.Size3(0.6, 0.6, 2.0),
				Pos:         &pos,
				Levels:      []scene.Kind{scene.KindDrawer, scene.KindSingleCabinet},
				Percentages: percentages,
			},
		},
	}
}

func TestExpandStack(t *testing.T) {
	sc := resolve(t, stackDoc([]float64{0.3, 0.7}), 1)

	if len(sc.Entities) != 3 {
		t.Fatalf("scene has %d entities, want stack + 2 levels", len(sc.Entities))
	}

	drawer := mustEntity(t, sc, "stack_level_0")
	if drawer.Kind != scene.KindDrawer {
		t.Errorf("level 0 Kind = %s, want drawer", drawer.Kind)
	}
	if drawer.Provenance != scene.ProvenanceSynthesized {
		t.Errorf("level 0 Provenance = %s", drawer.Provenance)
	}
	if drawer.Parent != "stack" {
		t.Errorf("level 0 Parent = %q", drawer.Parent)
	}
	// Bottom level: 30% of 2.0m, centered 0.3m above the stack base.
	if !approx(drawer.Size[scene.AxisZ], 0.6) || !approxVec(drawer.Pos, scene.Vec3{0, 0, 0.3}) {
		t.Errorf("level 0 size z = %v, pos = %v", drawer.Size[scene.AxisZ], drawer.Pos)
	}

	cab := mustEntity(t, sc, "stack_level_1")
	if !approx(cab.Size[scene.AxisZ], 1.4) || !approxVec(cab.Pos, scene.Vec3{0, 0, 1.3}) {
		t.Errorf("level 1 size z = %v, pos = %v", cab.Size[scene.AxisZ], cab.Pos)
	}
	if cab.RelPos == nil || !approxVec(*cab.RelPos, scene.Vec3{0, 0, 0.3}) {
		t.Errorf("level 1 RelPos = %v", cab.RelPos)
	}

	// Level heights partition the stack exactly.
	total := drawer.Size[scene.AxisZ] + cab.Size[scene.AxisZ]
	if !approx(total, 2.0) {
		t.Errorf("level heights sum to %v, want 2.0", total)
	}
	// Levels share the stack's footprint.
	if drawer.Size[scene.AxisX] != 0.6 || drawer.Size[scene.AxisY] != 0.6 {
		t.Errorf("level 0 footprint = %v", drawer.Size)
	}
}

func TestExpandStackInvalidPercentages(t *testing.T) {
	_, err := New(nil, nil).Resolve(stackDoc([]float64{0.5, 0.4}), nil)
	var stackErr *scene.InvalidStackError
	if !errors.As(err, &stackErr) {
		t.Fatalf("err = %v, want InvalidStackError", err)
	}
	if stackErr.Entity != "stack" || !approx(stackErr.Sum, 0.9) {
		t.Errorf("error = %+v", stackErr)
	}
}

func TestExpandStackLevelCountMismatch(t *testing.T) {
	if _, err := New(nil, nil).Resolve(stackDoc([]float64{1.0}), nil); err == nil {
		t.Error("mismatched level and percentage counts should fail")
	}
}
