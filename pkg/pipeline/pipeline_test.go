package pipeline

import (
	"context"
	"testing"

	"github.com/mengfei0517/robocasa/pkg/cache"
	"github.com/mengfei0517/robocasa/pkg/scene"
)

func testDocument() *scene.Document {
	pos := scene.Vec3{0, 1, 1.3}
	return &scene.Document{
		Name: "test_kitchen",
		Entities: []*scene.Entity{
			{
				Name: "wall_back",
				Kind: scene.KindWall,
				Size: scene.Size3(4, 0.05, 2.6),
				Pos:  &pos,
			},
			{
				Name: "counter",
				Kind: scene.KindCounter,
				Size: scene.Size{scene.Lit(2), scene.Lit(0.65), scene.Null()},
				Align: &scene.AlignSpec{
					AlignTo:   "wall_back",
					Side:      scene.SideFront,
					Alignment: "bottom",
				},
			},
			{
				Name: "mug",
				Kind: scene.KindObject,
				Size: scene.Size3(0.09, 0.09, 0.11),
				Placement: &scene.PlacementSpec{
					Fixture: "counter",
					Size:    [2]float64{0.12, 0.12},
				},
			},
		},
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	// Missing document
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("empty options should fail validation")
	}

	// Mutually exclusive inputs
	opts = Options{Document: testDocument(), DocumentPath: "x.yaml"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("document and document_path together should fail")
	}

	// Defaults applied
	opts = Options{Document: testDocument()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if opts.RetryBudget != DefaultRetryBudget {
		t.Errorf("RetryBudget = %d, want %d", opts.RetryBudget, DefaultRetryBudget)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	result, err := runner.Execute(ctx, Options{Document: testDocument(), Seed: 7})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Scene == nil || result.Graph == nil {
		t.Fatal("result missing scene or graph")
	}
	if result.Scene.PassID == "" {
		t.Error("scene should carry a pass ID")
	}
	if result.Scene.Seed != 7 {
		t.Errorf("Seed = %d, want 7", result.Scene.Seed)
	}
	if result.DocHash == "" {
		t.Error("result should carry the document hash")
	}
	if result.CacheInfo.SceneHit {
		t.Error("null cache should never hit")
	}
	if result.Stats.EntityCount != 3 {
		t.Errorf("EntityCount = %d, want 3", result.Stats.EntityCount)
	}
	if _, ok := result.Scene.Entity("mug"); !ok {
		t.Error("placed object missing from scene")
	}
}

func TestExecuteCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	opts := Options{Document: testDocument(), Seed: 7}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.SceneHit {
		t.Error("first run should miss")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.SceneHit {
		t.Error("second run should hit the cache")
	}
	if second.Scene.PassID != first.Scene.PassID {
		t.Error("cache hit should return the archived pass")
	}

	// Different seed misses
	third, err := runner.Execute(ctx, Options{Document: testDocument(), Seed: 8})
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.SceneHit {
		t.Error("different seed should miss")
	}

	// Refresh bypasses the cache read
	fourth, err := runner.Execute(ctx, Options{Document: testDocument(), Seed: 7, Refresh: true})
	if err != nil {
		t.Fatalf("fourth Execute: %v", err)
	}
	if fourth.CacheInfo.SceneHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	a, err := runner.Execute(ctx, Options{Document: testDocument(), Seed: 99})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := runner.Execute(ctx, Options{Document: testDocument(), Seed: 99})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(a.Scene.Entities) != len(b.Scene.Entities) {
		t.Fatal("entity counts differ across identical runs")
	}
	for i := range a.Scene.Entities {
		ea, eb := a.Scene.Entities[i], b.Scene.Entities[i]
		if ea.Pos != eb.Pos || ea.Size != eb.Size || ea.Yaw != eb.Yaw {
			t.Errorf("entity %s differs across identical runs: %+v vs %+v", ea.Name, ea, eb)
		}
	}
}
