package editors

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"cms-mapper/internal/match"
)

//go:embed editors.yaml
var defaultEditors []byte

const maxSuggestions = 3

// File is the YAML layout of an editors file.
type File struct {
	Version string    `yaml:"version"`
	Editors []*Editor `yaml:"editors"`
}

// Collection is the registry of editors by alias.
type Collection struct {
	editors map[string]*Editor
	label   *Editor
}

// Default returns the embedded editor set.
func Default() *Collection {
	c, err := Parse(defaultEditors)
	if err != nil {
		panic(fmt.Sprintf("embedded editors: %v", err))
	}

	return c
}

// LoadFile loads and parses a YAML editors file from the given path.
func LoadFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read editors file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Collection.
func Parse(data []byte) (*Collection, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse editors YAML: %w", err)
	}

	applyDefaults(&f)

	return NewCollection(f.Editors...)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for _, e := range f.Editors {
		if e.Name == "" {
			e.Name = e.Alias
		}

		if e.ValueType == "" {
			e.ValueType = ValueTypeString
		}

		if e.View == "" {
			e.View = "readonlyvalue"
		}
	}
}

// NewCollection builds a collection. Aliases must be unique. When no label
// editor is given a built-in one is added.
func NewCollection(list ...*Editor) (*Collection, error) {
	c := &Collection{editors: make(map[string]*Editor, len(list)+1)}

	for _, e := range list {
		if e.Alias == "" {
			return nil, fmt.Errorf("editor %q has no alias", e.Name)
		}

		if _, exists := c.editors[e.Alias]; exists {
			return nil, fmt.Errorf("editor %q defined more than once", e.Alias)
		}

		c.editors[e.Alias] = e
	}

	label, ok := c.editors[LabelAlias]
	if !ok {
		label = &Editor{Alias: LabelAlias, Name: "Label", View: "readonlyvalue", ValueType: ValueTypeString}
		c.editors[LabelAlias] = label
	}

	c.label = label

	return c, nil
}

// Get returns the editor registered for alias.
func (c *Collection) Get(alias string) (*Editor, bool) {
	e, ok := c.editors[alias]
	return e, ok
}

// Has returns true if an editor is registered for alias.
func (c *Collection) Has(alias string) bool {
	_, ok := c.editors[alias]
	return ok
}

// Label returns the read-only fallback editor.
func (c *Collection) Label() *Editor {
	return c.label
}

// GetOrLabel returns the editor for alias or, when it is not registered, the
// label editor together with the closest registered aliases.
func (c *Collection) GetOrLabel(alias string) (*Editor, []string, bool) {
	if e, ok := c.editors[alias]; ok {
		return e, nil, true
	}

	return c.label, c.Suggest(alias), false
}

// Suggest returns registered aliases close to alias.
func (c *Collection) Suggest(alias string) []string {
	return match.Suggest(alias, c.Aliases(), maxSuggestions)
}

// Aliases returns all registered aliases, sorted.
func (c *Collection) Aliases() []string {
	names := make([]string, 0, len(c.editors))
	for alias := range c.editors {
		names = append(names, alias)
	}

	sort.Strings(names)

	return names
}

// All returns all editors sorted by alias, leaving out deprecated ones.
func (c *Collection) All() []*Editor {
	result := make([]*Editor, 0, len(c.editors))

	for _, alias := range c.Aliases() {
		if e := c.editors[alias]; !e.Deprecated {
			result = append(result, e)
		}
	}

	return result
}
