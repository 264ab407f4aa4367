package scene

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DimKind tags one variant of the Dim union.
type DimKind int

const (
	// DimLiteral is a concrete extent in meters.
	DimLiteral DimKind = iota
	// DimNull asks the resolver to infer the extent from context
	// (alignment target, interior object, or catalog default).
	DimNull
	// DimRef copies the named entity's resolved extent on the same axis.
	DimRef
)

// Dim is one size component: a literal number, a null placeholder, or a
// symbolic reference to another entity's extent on the matching axis.
// Represented as a tagged union rather than interface values so documents
// round-trip without reflection.
type Dim struct {
	Kind  DimKind
	Value float64
	Ref   string
}

// Lit returns a literal dimension.
func Lit(v float64) Dim { return Dim{Kind: DimLiteral, Value: v} }

// Null returns a null (infer-from-context) dimension.
func Null() Dim { return Dim{Kind: DimNull} }

// RefDim returns a dimension referencing another entity's extent.
func RefDim(name string) Dim { return Dim{Kind: DimRef, Ref: name} }

// Size is the per-axis extent triple of an entity, indexed by Axis.
type Size [3]Dim

// Size3 builds a size triple from three literals.
func Size3(x, y, z float64) Size {
	return Size{Lit(x), Lit(y), Lit(z)}
}

// UnmarshalYAML decodes the three components by walking the sequence
// items itself. The yaml library skips custom unmarshalers for null
// sequence items, which would drop null placeholders and shift the
// remaining components onto the wrong axes.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("size: want a sequence of 3 components, got %s", node.Tag)
	}
	if len(node.Content) != len(s) {
		return fmt.Errorf("size: want 3 components, got %d", len(node.Content))
	}
	for i, item := range node.Content {
		if err := s[i].UnmarshalYAML(item); err != nil {
			return err
		}
	}
	return nil
}

// String renders the dimension the way documents spell it.
func (d Dim) String() string {
	switch d.Kind {
	case DimNull:
		return "null"
	case DimRef:
		return d.Ref
	default:
		return fmt.Sprintf("%g", d.Value)
	}
}

// UnmarshalYAML decodes a number, null, or entity-name string.
func (d *Dim) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		*d = Null()
		return nil
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*d = Lit(v)
		return nil
	case "!!str":
		*d = RefDim(node.Value)
		return nil
	}
	return fmt.Errorf("size component: unsupported YAML node %s", node.Tag)
}

// MarshalYAML encodes the union back to its document form.
func (d Dim) MarshalYAML() (any, error) {
	switch d.Kind {
	case DimNull:
		return nil, nil
	case DimRef:
		return d.Ref, nil
	default:
		return d.Value, nil
	}
}

// UnmarshalJSON decodes a number, null, or entity-name string.
func (d *Dim) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Null()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*d = Lit(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = RefDim(s)
		return nil
	}
	return fmt.Errorf("size component: cannot decode %s", data)
}

// MarshalJSON encodes the union back to its document form.
func (d Dim) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DimNull:
		return []byte("null"), nil
	case DimRef:
		return json.Marshal(d.Ref)
	default:
		return json.Marshal(d.Value)
	}
}
