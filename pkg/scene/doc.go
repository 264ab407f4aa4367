// Package scene defines the data model for declarative scene-layout
// documents and their resolved output.
//
// A scene document declares entities (room surfaces, built-in fixtures,
// decorative objects) whose geometry may be symbolic: sizes referencing
// other entities, positions expressed as alignments against already-placed
// fixtures, composite stacks split by height percentages, and randomized
// placements sampled on parent surfaces. The resolver (package resolver)
// turns a Document into a Scene of concrete absolute transforms.
//
// # Coordinate convention
//
// The room frame is right-handed: x runs laterally (left is -x, right +x),
// y runs in depth (front is -y, back +y), z is vertical (bottom -z, top
// +z). Positions are bounding-box centers; an entity occupies
// pos ± size/2 on each axis. Rotations are yaw angles in radians about +z.
//
// # Lifecycle
//
// Documents are immutable inputs. Resolution constructs a Scene once per
// pass; synthesized entities (stack levels) are appended, never spliced
// into the declared list. A failed pass discards the whole Scene.
package scene
