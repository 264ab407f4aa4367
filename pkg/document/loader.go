// Package document loads scene-layout documents from YAML.
//
// A layout file declares entities in three groups: room surfaces (walls,
// floor), fixtures (counters, cabinets, appliances), and decorative
// objects. The groups are concatenated in that order into a single
// declaration list; order within each group is preserved, since the
// resolver uses declaration order as its topological tie-break.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// fileFormat is the on-disk layout of a scene document.
type fileFormat struct {
	Name     string          `yaml:"name"`
	Room     []*scene.Entity `yaml:"room"`
	Fixtures []*scene.Entity `yaml:"fixtures"`
	Objects  []*scene.Entity `yaml:"objects"`
}

// Load reads and parses the scene document at path.
func Load(path string) (*scene.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes YAML data into a scene document.
func Parse(data []byte) (*scene.Document, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("document has no name")
	}

	doc := &scene.Document{Name: f.Name}
	doc.Entities = append(doc.Entities, f.Room...)
	doc.Entities = append(doc.Entities, f.Fixtures...)
	doc.Entities = append(doc.Entities, f.Objects...)
	if len(doc.Entities) == 0 {
		return nil, fmt.Errorf("document %q declares no entities", f.Name)
	}

	seen := make(map[string]bool, len(doc.Entities))
	for i, e := range doc.Entities {
		if e == nil {
			return nil, fmt.Errorf("document %q: entry %d is empty", f.Name, i)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("document %q: entry %d has no name", f.Name, i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("document %q: duplicate entity %q", f.Name, e.Name)
		}
		seen[e.Name] = true
	}
	return doc, nil
}
