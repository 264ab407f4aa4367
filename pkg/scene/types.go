package scene

import "fmt"

// Axis indexes one component of a 3D extent or position.
type Axis int

// Axis constants. These double as indices into Vec3 and Size.
const (
	AxisX Axis = iota // lateral (left/right)
	AxisY             // depth (front/back)
	AxisZ             // vertical (bottom/top)
)

// String returns the lowercase axis name ("x", "y", "z").
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Vec3 is a 3-component vector indexed by Axis.
type Vec3 [3]float64

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Scale returns v scaled by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Side identifies a face of an axis-aligned bounding box.
type Side string

// Side values. Left/right select the x axis, front/back the y axis,
// bottom/top the z axis.
const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideFront  Side = "front"
	SideBack   Side = "back"
	SideBottom Side = "bottom"
	SideTop    Side = "top"
)

// Axis returns the axis the side's face normal lies on.
func (s Side) Axis() Axis {
	switch s {
	case SideLeft, SideRight:
		return AxisX
	case SideFront, SideBack:
		return AxisY
	default:
		return AxisZ
	}
}

// Sign returns +1 for the positive face (right, back, top) and -1 for the
// negative face (left, front, bottom).
func (s Side) Sign() float64 {
	switch s {
	case SideRight, SideBack, SideTop:
		return 1
	default:
		return -1
	}
}

// Valid reports whether s is one of the six box faces.
func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideFront, SideBack, SideBottom, SideTop:
		return true
	}
	return false
}

// BBox is an axis-aligned bounding box in the room frame.
type BBox struct {
	Min Vec3 `json:"min" bson:"min"`
	Max Vec3 `json:"max" bson:"max"`
}

// BoxOf builds the bounding box of an entity centered at pos with the
// given extents.
func BoxOf(pos, size Vec3) BBox {
	var b BBox
	for a := 0; a < 3; a++ {
		b.Min[a] = pos[a] - size[a]/2
		b.Max[a] = pos[a] + size[a]/2
	}
	return b
}

// Center returns the box center.
func (b BBox) Center() Vec3 {
	return Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Extent returns the box extent per axis.
func (b BBox) Extent() Vec3 {
	return Vec3{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Face returns the coordinate of the requested face along its axis.
func (b BBox) Face(s Side) float64 {
	if s.Sign() > 0 {
		return b.Max[s.Axis()]
	}
	return b.Min[s.Axis()]
}

// Union returns the smallest box containing both b and o.
func (b BBox) Union(o BBox) BBox {
	for a := 0; a < 3; a++ {
		b.Min[a] = min(b.Min[a], o.Min[a])
		b.Max[a] = max(b.Max[a], o.Max[a])
	}
	return b
}

// Kind tags an entity with its fixture vocabulary entry. The catalog
// (package catalog) supplies per-kind default extents and capabilities.
type Kind string

// Common kinds. The vocabulary is open: documents may use any kind the
// catalog knows about.
const (
	KindWall          Kind = "wall"
	KindFloor         Kind = "floor"
	KindWallAccessory Kind = "wall_accessory"
	KindCounter       Kind = "counter"
	KindStove         Kind = "stove"
	KindSink          Kind = "sink"
	KindSingleCabinet Kind = "single_cabinet"
	KindHingeCabinet  Kind = "hinge_cabinet"
	KindOpenCabinet   Kind = "open_cabinet"
	KindDrawer        Kind = "drawer"
	KindPanelCabinet  Kind = "panel_cabinet"
	KindHousing       Kind = "housing_cabinet"
	KindStack         Kind = "stack"
	KindAppliance     Kind = "appliance"
	KindObject        Kind = "object"
)

// AlignSpec anchors an entity to a face of another entity.
//
// The entity's face opposite Side is placed in contact with the reference
// box's Side face. Alignment is a compound rule (e.g. "top_back") naming
// faces on the two remaining axes to align flush; axes it leaves unnamed
// are centered on the reference. Padding inflates the entity's box by
// [low, high] per axis before alignment (asymmetric clearance), and Offset
// is a final additive correction.
type AlignSpec struct {
	AlignTo   string        `yaml:"to" json:"align_to"`
	Side      Side          `yaml:"side" json:"side"`
	Alignment string        `yaml:"alignment" json:"alignment,omitempty"`
	Offset    Vec3          `yaml:"offset" json:"offset,omitempty"`
	Padding   [3][2]float64 `yaml:"padding" json:"padding,omitempty"`
}

// SampleRegion narrows where a placement may sample on its parent fixture.
type SampleRegion struct {
	// Ref restricts the region to the sub-area overlapping the named
	// fixture's footprint (e.g. the counter span above one cabinet).
	Ref string `yaml:"ref" json:"ref,omitempty"`

	// Region selects the surface: "top" (default) or "interior" for kinds
	// with an interior cavity.
	Region string `yaml:"region" json:"region,omitempty"`
}

// PlacementSpec describes randomized placement of a decorative object on a
// parent fixture surface.
//
// Pos components are fractions of the feasible interval on that axis
// (0 = low bound, 1 = high bound); nil means sample uniformly. Rotation is
// a [min, max] yaw interval in radians. Margin is clearance kept from the
// region edge on every side.
type PlacementSpec struct {
	Fixture      string        `yaml:"fixture" json:"fixture"`
	SampleRegion *SampleRegion `yaml:"sample_region" json:"sample_region,omitempty"`
	Size         [2]float64    `yaml:"size" json:"size,omitempty"`
	Pos          [2]*float64   `yaml:"pos" json:"pos,omitempty"`
	Rotation     [2]float64    `yaml:"rotation" json:"rotation,omitempty"`
	Margin       float64       `yaml:"margin" json:"margin,omitempty"`
}

// Entity is one declared object in the scene document.
//
// Exactly one positioning mechanism applies: an explicit Pos, an Align
// spec, a StackFixtures composite footprint, or a Placement block (for
// decorative objects). Stack entities additionally carry Levels and
// Percentages describing their vertical decomposition.
type Entity struct {
	Name string `yaml:"name" json:"name"`
	Kind Kind   `yaml:"kind" json:"kind"`

	// Size components are literals, nulls (inferred from context), or
	// references to another entity's extent on the same axis.
	Size Size `yaml:"size" json:"size"`

	Pos   *Vec3      `yaml:"pos" json:"pos,omitempty"`
	Yaw   float64    `yaml:"yaw" json:"yaw,omitempty"`
	Align *AlignSpec `yaml:"align" json:"align,omitempty"`

	// InteriorObj names an entity nested within this one's footprint.
	// Padding is the wall clearance [low, high] per axis between the
	// interior object and this entity's faces.
	InteriorObj string        `yaml:"interior_obj" json:"interior_obj,omitempty"`
	Padding     [3][2]float64 `yaml:"padding" json:"padding,omitempty"`

	// Stack decomposition: one synthesized level per (kind, percentage)
	// pair, bottom-up. Percentages must sum to 1.
	Levels      []Kind    `yaml:"levels" json:"levels,omitempty"`
	Percentages []float64 `yaml:"percentages" json:"percentages,omitempty"`

	// StackFixtures makes this entity's footprint the union of the named
	// fixtures' boxes, its base lifted by StackHeight.
	StackFixtures []string `yaml:"stack_fixtures" json:"stack_fixtures,omitempty"`
	StackHeight   float64  `yaml:"stack_height" json:"stack_height,omitempty"`

	Placement *PlacementSpec `yaml:"placement" json:"placement,omitempty"`

	// DoorState requests a sampled open fraction in [min, max] for
	// openable kinds.
	DoorState *[2]float64 `yaml:"door_state" json:"door_state,omitempty"`
}

// IsStack reports whether the entity decomposes into stacked levels.
func (e *Entity) IsStack() bool { return len(e.Levels) > 0 }

// IsComposite reports whether the entity's footprint spans other fixtures.
func (e *Entity) IsComposite() bool { return len(e.StackFixtures) > 0 }

// LevelName returns the synthesized name of stack level i (bottom = 0).
// Documents may reference level names in align_to and size refs; the
// dependency graph maps them back to the owning stack.
func (e *Entity) LevelName(i int) string {
	return fmt.Sprintf("%s_level_%d", e.Name, i)
}

// Document is the deserialized scene-layout input. Entities preserves
// declaration order (room surfaces, then fixtures, then objects); this
// order is the tie-break for topological resolution.
type Document struct {
	Name     string    `yaml:"name" json:"name"`
	Entities []*Entity `yaml:"entities" json:"entities"`
}

// Entity returns the declared entity with the given name.
func (d *Document) Entity(name string) (*Entity, bool) {
	for _, e := range d.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
