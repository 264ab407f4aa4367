// Package catalog supplies per-kind fixture defaults and capabilities.
//
// The resolver consults the catalog for default extents (used when a null
// size axis has no other inferable source) and semantic capabilities:
// whether a kind has an interior cavity, a hinged door, or a usable top
// surface. The built-in set covers the standard kitchen vocabulary;
// deployments can override or extend it with a TOML file.
package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// KindSpec describes one fixture kind.
type KindSpec struct {
	// DefaultSize is the built-in extent per axis, used for null size
	// components with no alignment or interior source. A zero component
	// means the axis has no default and stays ambiguous.
	DefaultSize scene.Vec3 `toml:"default_size"`

	// WallThickness is the cavity wall thickness for kinds with an
	// interior, bounding the interior sampling region.
	WallThickness float64 `toml:"wall_thickness"`

	// HasInterior marks kinds with an interior cavity objects can be
	// placed into.
	HasInterior bool `toml:"has_interior"`

	// Openable marks kinds with hinge or slide geometry whose open state
	// can be sampled.
	Openable bool `toml:"openable"`

	// TopSurface marks kinds whose top face accepts object placement.
	TopSurface bool `toml:"top_surface"`
}

// Catalog resolves fixture kinds to their specs. Implementations must be
// safe for concurrent readers.
type Catalog interface {
	// Spec returns the spec for a kind, and whether the kind is known.
	Spec(kind scene.Kind) (KindSpec, bool)
}

type mapCatalog map[scene.Kind]KindSpec

func (m mapCatalog) Spec(kind scene.Kind) (KindSpec, bool) {
	s, ok := m[kind]
	return s, ok
}

// Builtin returns the built-in catalog. Extents follow common kitchen
// fixture dimensions (counter height 0.9m, 0.6m depth, 0.03m cabinet wall
// thickness).
func Builtin() Catalog {
	return mapCatalog(builtinSpecs)
}

// fileFormat is the TOML override file shape: a table of kind specs.
//
//	[kinds.counter]
//	default_size = [1.0, 0.6, 0.9]
//	top_surface = true
type fileFormat struct {
	Kinds map[string]KindSpec `toml:"kinds"`
}

// Load reads a TOML catalog file and layers it over the built-in set.
// Kinds present in the file replace the built-in spec wholesale.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML catalog data layered over the built-in set.
func Parse(data []byte) (Catalog, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	merged := make(mapCatalog, len(builtinSpecs)+len(f.Kinds))
	for k, s := range builtinSpecs {
		merged[k] = s
	}
	for k, s := range f.Kinds {
		merged[scene.Kind(k)] = s
	}
	return merged, nil
}
