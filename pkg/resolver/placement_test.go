package resolver

import (
	"errors"
	"testing"

	"github.com/mengfei0517/robocasa/pkg/sampler"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

func frac(v float64) *float64 { return &v }

func placementDoc(obj *scene.Entity) *scene.Document {
	return &scene.Document{
		Name:     "k",
		Entities: []*scene.Entity{fixedCounter(), obj},
	}
}

func TestPlacementPinned(t *testing.T) {
	doc := placementDoc(&scene.Entity{
		Name: "mug",
		Kind: scene.KindObject,
		Size: scene.Size3(0.2, 0.2, 0.1),
		Placement: &scene.PlacementSpec{
			Fixture: "counter",
			Pos:     [2]*float64{frac(0), frac(1)},
		},
	})

	mug := mustEntity(t, resolve(t, doc, 1), "mug")
	// Fraction 0 pins the low bound, 1 the high bound of the feasible
	// interval; with zero margin the far edge is flush with the region.
	if !approxVec(mug.Pos, scene.Vec3{-0.4, 0.2, 0.95}) {
		t.Errorf("Pos = %v, want [-0.4 0.2 0.95]", mug.Pos)
	}
	if !approx(mug.Box().Face(scene.SideBack), 0.3) {
		t.Errorf("back face = %v, want flush with counter edge 0.3", mug.Box().Face(scene.SideBack))
	}
	if mug.Parent != "counter" {
		t.Errorf("Parent = %q, want counter", mug.Parent)
	}
}

func TestPlacementSeedSweep(t *testing.T) {
	doc := func() *scene.Document {
		return placementDoc(&scene.Entity{
			Name: "mug",
			Kind: scene.KindObject,
			Size: scene.Size3(0.2, 0.2, 0.1),
			Placement: &scene.PlacementSpec{
				Fixture: "counter",
				Margin:  0.05,
			},
		})
	}

	seen := make(map[float64]bool)
	for seed := uint64(1); seed <= 20; seed++ {
		mug := mustEntity(t, resolve(t, doc(), seed), "mug")
		x, y := mug.Pos[scene.AxisX], mug.Pos[scene.AxisY]
		if x < -0.35 || x > 0.35 || y < -0.15 || y > 0.15 {
			t.Fatalf("seed %d: center (%v, %v) outside feasible interval", seed, x, y)
		}
		seen[x] = true
	}
	if len(seen) < 2 {
		t.Error("seed sweep should spread samples across the interval")
	}
}

func TestPlacementEmptyRegion(t *testing.T) {
	doc := placementDoc(&scene.Entity{
		Name: "crate",
		Kind: scene.KindObject,
		Size: scene.Size3(2, 2, 0.5),
		Placement: &scene.PlacementSpec{
			Fixture: "counter",
		},
	})

	_, err := New(nil, nil).Resolve(doc, sampler.New(1))
	var placeErr *scene.PlacementInfeasibleError
	if !errors.As(err, &placeErr) {
		t.Fatalf("err = %v, want PlacementInfeasibleError", err)
	}
	// The footprint never fit, so no attempts were made.
	if placeErr.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", placeErr.Attempts)
	}
	if placeErr.Fixture != "counter" || placeErr.Object != "crate" {
		t.Errorf("error = %+v", placeErr)
	}
}

func TestPlacementRetryExhaustion(t *testing.T) {
	// Two objects pinned to the same spot: the second always collides
	// with the first and burns the whole retry budget.
	doc := &scene.Document{
		Name: "k",
		Entities: []*scene.Entity{
			fixedCounter(),
			{
				Name: "mug_a",
				Kind: scene.KindObject,
				Size: scene.Size3(0.2, 0.2, 0.1),
				Placement: &scene.PlacementSpec{
					Fixture: "counter",
					Pos:     [2]*float64{frac(0.5), frac(0.5)},
				},
			},
			{
				Name: "mug_b",
				Kind: scene.KindObject,
				Size: scene.Size3(0.2, 0.2, 0.1),
				Placement: &scene.PlacementSpec{
					Fixture: "counter",
					Pos:     [2]*float64{frac(0.5), frac(0.5)},
				},
			},
		},
	}

	r := New(nil, &Options{RetryBudget: 5})
	_, err := r.Resolve(doc, sampler.New(1))
	var placeErr *scene.PlacementInfeasibleError
	if !errors.As(err, &placeErr) {
		t.Fatalf("err = %v, want PlacementInfeasibleError", err)
	}
	if placeErr.Attempts != 5 {
		t.Errorf("Attempts = %d, want the full budget of 5", placeErr.Attempts)
	}
}

func TestPlacementInteriorRegion(t *testing.T) {
	pos := scene.Vec3{0, 0, 0.35}
	doc := &scene.Document{
		Name: "k",
		Entities: []*scene.Entity{
			{Name: "cab", Kind: scene.KindSingleCabinet, Size: scene.Size3(0.45, 0.35, 0.7), Pos: &pos},
			{
				Name: "bowl",
				Kind: scene.KindObject,
				Size: scene.Size3(0.1, 0.1, 0.1),
				Placement: &scene.PlacementSpec{
					Fixture:      "cab",
					SampleRegion: &scene.SampleRegion{Region: "interior"},
					Pos:          [2]*float64{frac(0.5), frac(0.5)},
				},
			},
		},
	}

	bowl := mustEntity(t, resolve(t, doc, 1), "bowl")
	// Interior placement rests on the cavity floor (base + wall).
	if !approxVec(bowl.Pos, scene.Vec3{0, 0, 0.08}) {
		t.Errorf("Pos = %v, want [0 0 0.08]", bowl.Pos)
	}
}

func TestPlacementInteriorUnsupported(t *testing.T) {
	doc := placementDoc(&scene.Entity{
		Name: "bowl",
		Kind: scene.KindObject,
		Size: scene.Size3(0.1, 0.1, 0.1),
		Placement: &scene.PlacementSpec{
			Fixture:      "counter",
			SampleRegion: &scene.SampleRegion{Region: "interior"},
		},
	})

	if _, err := New(nil, nil).Resolve(doc, sampler.New(1)); err == nil {
		t.Error("interior placement on a counter should fail")
	}
}

func TestPlacementRegionRef(t *testing.T) {
	posL := scene.Vec3{-0.5, 0, 0.35}
	posTop := scene.Vec3{0, 0, 0.75}
	doc := &scene.Document{
		Name: "k",
		Entities: []*scene.Entity{
			{Name: "cab_left", Kind: scene.KindSingleCabinet, Size: scene.Size3(1, 0.6, 0.7), Pos: &posL},
			{Name: "top", Kind: scene.KindCounter, Size: scene.Size3(2, 0.6, 0.1), Pos: &posTop},
			{
				Name: "mug",
				Kind: scene.KindObject,
				Size: scene.Size3(0.2, 0.2, 0.1),
				Placement: &scene.PlacementSpec{
					Fixture:      "top",
					SampleRegion: &scene.SampleRegion{Ref: "cab_left"},
				},
			},
		},
	}

	// The region narrows to the counter span above cab_left: x in [-1, 0].
	for seed := uint64(1); seed <= 10; seed++ {
		mug := mustEntity(t, resolve(t, doc, seed), "mug")
		x := mug.Pos[scene.AxisX]
		if x < -0.9 || x > -0.1 {
			t.Fatalf("seed %d: x = %v outside narrowed region", seed, x)
		}
	}
}
