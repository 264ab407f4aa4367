package scene

// Provenance distinguishes author-declared entities from those synthesized
// during resolution (stack levels).
type Provenance string

const (
	// ProvenanceDeclared marks an entity present in the input document.
	ProvenanceDeclared Provenance = "declared"
	// ProvenanceSynthesized marks an entity generated by stack expansion.
	ProvenanceSynthesized Provenance = "synthesized"
)

// Resolved is one fully resolved entity: concrete absolute position,
// orientation, and size in the room frame.
type Resolved struct {
	Name       string     `json:"name" bson:"name"`
	Kind       Kind       `json:"kind" bson:"kind"`
	Pos        Vec3       `json:"pos" bson:"pos"`
	Size       Vec3       `json:"size" bson:"size"`
	Yaw        float64    `json:"yaw,omitempty" bson:"yaw,omitempty"`
	Provenance Provenance `json:"provenance" bson:"provenance"`

	// Parent names the container (interior objects), the owning stack
	// (synthesized levels), or the fixture an object was placed on.
	Parent string `json:"parent,omitempty" bson:"parent,omitempty"`

	// RelPos is the container-relative position for interior objects and
	// stack levels, recorded alongside the absolute transform.
	RelPos *Vec3 `json:"rel_pos,omitempty" bson:"rel_pos,omitempty"`

	// DoorState is the sampled open fraction for openable kinds, if the
	// document requested one.
	DoorState *float64 `json:"door_state,omitempty" bson:"door_state,omitempty"`
}

// Box returns the entity's axis-aligned bounding box.
func (r *Resolved) Box() BBox { return BoxOf(r.Pos, r.Size) }

// Scene is the immutable output of one resolution pass: an ordered
// sequence of resolved entities (declared entities in resolution order,
// synthesized levels immediately after their stack).
type Scene struct {
	PassID   string     `json:"pass_id" bson:"pass_id"`
	Document string     `json:"document,omitempty" bson:"document,omitempty"`
	Seed     uint64     `json:"seed" bson:"seed"`
	Entities []Resolved `json:"entities" bson:"entities"`
}

// Entity returns the resolved entity with the given name.
func (s *Scene) Entity(name string) (*Resolved, bool) {
	for i := range s.Entities {
		if s.Entities[i].Name == name {
			return &s.Entities[i], true
		}
	}
	return nil, false
}

// Synthesized returns the entities generated during resolution.
func (s *Scene) Synthesized() []Resolved {
	var out []Resolved
	for _, e := range s.Entities {
		if e.Provenance == ProvenanceSynthesized {
			out = append(out, e)
		}
	}
	return out
}
