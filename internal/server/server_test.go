package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mengfei0517/robocasa/pkg/cache"
	"github.com/mengfei0517/robocasa/pkg/pipeline"
	"github.com/mengfei0517/robocasa/pkg/scene"
	"github.com/mengfei0517/robocasa/pkg/store"
)

func testServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	return New(runner, store.NewMemoryStore(), logger)
}

func testDocument() *scene.Document {
	pos := scene.Vec3{0, 1, 1.3}
	return &scene.Document{
		Name: "api_kitchen",
		Entities: []*scene.Entity{
			{Name: "wall", Kind: scene.KindWall, Size: scene.Size3(4, 0.05, 2.6), Pos: &pos},
			{
				Name: "counter",
				Kind: scene.KindCounter,
				Size: scene.Size{scene.Lit(2), scene.Lit(0.65), scene.Null()},
				Align: &scene.AlignSpec{
					AlignTo:   "wall",
					Side:      scene.SideFront,
					Alignment: "bottom",
				},
			},
		},
	}
}

func postResolve(t *testing.T, ts *httptest.Server, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/v1/scenes/resolve", "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestResolveAndGet(t *testing.T) {
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	resp := postResolve(t, ts, resolveRequest{Document: testDocument(), Seed: 7})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resolve status = %d, want 200", resp.StatusCode)
	}

	var rr resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		t.Fatal(err)
	}
	if rr.Scene == nil || rr.Scene.PassID == "" {
		t.Fatal("response missing scene or pass id")
	}
	if rr.Scene.Seed != 7 {
		t.Errorf("seed = %d, want 7", rr.Scene.Seed)
	}
	if _, ok := rr.Scene.Entity("counter"); !ok {
		t.Error("resolved scene missing counter")
	}

	// Archived scene is retrievable by pass ID.
	got, err := http.Get(ts.URL + "/v1/scenes/" + rr.Scene.PassID)
	if err != nil {
		t.Fatal(err)
	}
	defer got.Body.Close()
	if got.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", got.StatusCode)
	}
	var sc scene.Scene
	if err := json.NewDecoder(got.Body).Decode(&sc); err != nil {
		t.Fatal(err)
	}
	if sc.PassID != rr.Scene.PassID {
		t.Errorf("pass id = %q, want %q", sc.PassID, rr.Scene.PassID)
	}
}

func TestGetUnknownScene(t *testing.T) {
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/scenes/550e8400-e29b-41d4-a716-446655440000")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		t.Fatal(err)
	}
	if er.Code != "SCENE_NOT_FOUND" {
		t.Errorf("code = %q, want SCENE_NOT_FOUND", er.Code)
	}
}

func TestResolveValidation(t *testing.T) {
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	// Missing document
	resp := postResolve(t, ts, resolveRequest{Seed: 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing document status = %d, want 400", resp.StatusCode)
	}

	// Malformed body
	raw, err := http.Post(ts.URL+"/v1/scenes/resolve", "application/json", bytes.NewReader([]byte("{")))
	if err != nil {
		t.Fatal(err)
	}
	raw.Body.Close()
	if raw.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", raw.StatusCode)
	}
}

func TestResolveDomainError(t *testing.T) {
	ts := httptest.NewServer(testServer().Router())
	defer ts.Close()

	// Two entities referencing each other's size: a cycle.
	doc := &scene.Document{
		Name: "cyclic",
		Entities: []*scene.Entity{
			{Name: "a", Kind: scene.KindCounter, Size: scene.Size{scene.RefDim("b"), scene.Lit(1), scene.Lit(1)}, Pos: &scene.Vec3{}},
			{Name: "b", Kind: scene.KindCounter, Size: scene.Size{scene.RefDim("a"), scene.Lit(1), scene.Lit(1)}, Pos: &scene.Vec3{}},
		},
	}
	resp := postResolve(t, ts, resolveRequest{Document: doc})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		t.Fatal(err)
	}
	if er.Code != "CYCLIC_DEPENDENCY" {
		t.Errorf("code = %q, want CYCLIC_DEPENDENCY", er.Code)
	}
}
