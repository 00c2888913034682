package editors

import (
	"maps"
	"strings"

	"cms-mapper/internal/entity"
)

// LabelAlias is the alias of the read-only editor used as fallback.
const LabelAlias = "Umbraco.Label"

// Value types declared by editors.
const (
	ValueTypeString   = "STRING"
	ValueTypeText     = "TEXT"
	ValueTypeInteger  = "INT"
	ValueTypeDecimal  = "DECIMAL"
	ValueTypeDate     = "DATE"
	ValueTypeDateTime = "DATETIME"
	ValueTypeJSON     = "JSON"
)

// ConfigField is one configuration field of an editor.
type ConfigField struct {
	Key         string         `yaml:"key"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	View        string         `yaml:"view"`
	HideLabel   bool           `yaml:"hide_label,omitempty"`
	Config      map[string]any `yaml:"config,omitempty"`
}

// Editor is a property editor descriptor.
type Editor struct {
	Alias         string         `yaml:"alias"`
	Name          string         `yaml:"name"`
	Icon          string         `yaml:"icon,omitempty"`
	Group         string         `yaml:"group,omitempty"`
	View          string         `yaml:"view"`
	ValueType     string         `yaml:"value_type"`
	HideLabel     bool           `yaml:"hide_label,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty"`
	ConfigFields  []ConfigField  `yaml:"config_fields,omitempty"`
	DefaultConfig map[string]any `yaml:"default_config,omitempty"`
}

// StorageType returns the database column type values of this editor use.
func (e *Editor) StorageType() entity.ValueStorageType {
	switch strings.ToUpper(e.ValueType) {
	case ValueTypeText, ValueTypeJSON:
		return entity.StorageNtext
	case ValueTypeInteger:
		return entity.StorageInteger
	case ValueTypeDecimal:
		return entity.StorageDecimal
	case ValueTypeDate, ValueTypeDateTime:
		return entity.StorageDate
	default:
		return entity.StorageNvarchar
	}
}

// ValueEditorConfig merges a persisted data type configuration over the
// editor defaults. The result is what the value editor view receives.
func (e *Editor) ValueEditorConfig(persisted map[string]any) map[string]any {
	if len(e.DefaultConfig) == 0 && len(persisted) == 0 {
		return nil
	}

	result := make(map[string]any, len(e.DefaultConfig)+len(persisted))
	maps.Copy(result, e.DefaultConfig)
	maps.Copy(result, persisted)

	return result
}

// ConfigField returns the configuration field with the given key.
func (e *Editor) ConfigField(key string) (ConfigField, bool) {
	for _, f := range e.ConfigFields {
		if f.Key == key {
			return f, true
		}
	}

	return ConfigField{}, false
}

// IsLabel reports whether this is the fallback label editor.
func (e *Editor) IsLabel() bool {
	return e.Alias == LabelAlias
}
