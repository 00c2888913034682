package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidComposition is returned when a composition cannot be added to a content type.
var ErrInvalidComposition = errors.New("invalid composition")

// GroupType distinguishes plain groups from tabs.
type GroupType int

const (
	GroupTypeGroup GroupType = iota
	GroupTypeTab
)

// String returns the group type name used in editor payloads.
func (g GroupType) String() string {
	if g == GroupTypeTab {
		return "Tab"
	}

	return "Group"
}

// PropertyType describes one editable field of a content type.
type PropertyType struct {
	ID          int
	Key         uuid.UUID
	Alias       string
	Name        string
	Description string

	DataTypeID          int
	DataTypeKey         uuid.UUID
	PropertyEditorAlias string

	Mandatory               bool
	MandatoryMessage        string
	ValidationRegExp        string
	ValidationRegExpMessage string

	SortOrder       int
	LabelOnTop      bool
	Variations      Variation
	PropertyGroupID int
}

// VariesByCulture reports whether values of this property type are per culture.
func (p *PropertyType) VariesByCulture() bool {
	return p.Variations.VariesByCulture()
}

// PropertyGroup is a named group (or tab) of property types.
type PropertyGroup struct {
	ID            int
	Key           uuid.UUID
	Alias         string
	Name          string
	Type          GroupType
	SortOrder     int
	PropertyTypes []*PropertyType
}

// ContentTypeSort is an allowed child content type with its position.
type ContentTypeSort struct {
	ID        int
	Alias     string
	SortOrder int
}

// MemberPropertyAccess holds the member-type specific flags of a property type.
type MemberPropertyAccess struct {
	CanEdit   bool
	CanView   bool
	Sensitive bool
}

// ContentType is a document, media or member type. Compositions holds the
// directly composed content types; each of them may compose others.
type ContentType struct {
	ID          int
	Key         uuid.UUID
	Kind        ContentKind
	Alias       string
	Name        string
	Description string
	Icon        string
	Thumbnail   string
	ParentID    int
	Path        string
	Level       int
	SortOrder   int

	IsContainer   bool
	IsElement     bool
	AllowedAsRoot bool
	Trashed       bool
	Variations    Variation

	CreateDate time.Time
	UpdateDate time.Time

	PropertyGroups       []*PropertyGroup
	NoGroupPropertyTypes []*PropertyType
	Compositions         []*ContentType

	AllowedContentTypes []ContentTypeSort
	AllowedTemplates    []*Template
	DefaultTemplate     *Template

	// MemberAccess is keyed by property type alias; member types only.
	MemberAccess map[string]MemberPropertyAccess
}

// HasIdentity reports whether the content type has been persisted.
func (t *ContentType) HasIdentity() bool {
	return t.ID > 0
}

// VariesByCulture reports whether content of this type varies by culture.
func (t *ContentType) VariesByCulture() bool {
	return t.Variations.VariesByCulture()
}

// VariesBySegment reports whether content of this type varies by segment.
func (t *ContentType) VariesBySegment() bool {
	return t.Variations.VariesBySegment()
}

// PropertyTypes returns the locally defined property types, grouped ones first.
func (t *ContentType) PropertyTypes() []*PropertyType {
	var result []*PropertyType
	for _, g := range t.PropertyGroups {
		result = append(result, g.PropertyTypes...)
	}

	return append(result, t.NoGroupPropertyTypes...)
}

// FindPropertyType returns the local property type with the given alias (case insensitive).
func (t *ContentType) FindPropertyType(alias string) *PropertyType {
	for _, p := range t.PropertyTypes() {
		if strings.EqualFold(p.Alias, alias) {
			return p
		}
	}

	return nil
}

// CompositionAliases returns the aliases of the directly composed content types.
func (t *ContentType) CompositionAliases() []string {
	aliases := make([]string, 0, len(t.Compositions))
	for _, c := range t.Compositions {
		aliases = append(aliases, c.Alias)
	}

	return aliases
}

// Ancestors returns every content type composed by t, directly or indirectly,
// in depth-first discovery order. Each type appears once; t itself is never included.
func (t *ContentType) Ancestors() []*ContentType {
	seen := map[*ContentType]bool{t: true}

	var result []*ContentType

	var walk func(ct *ContentType)
	walk = func(ct *ContentType) {
		for _, c := range ct.Compositions {
			if seen[c] {
				continue
			}

			seen[c] = true
			result = append(result, c)
			walk(c)
		}
	}

	walk(t)

	return result
}

// CompositionIDs returns the ids of all directly or indirectly composed content types.
func (t *ContentType) CompositionIDs() []int {
	ancestors := t.Ancestors()

	ids := make([]int, 0, len(ancestors))
	for _, a := range ancestors {
		ids = append(ids, a.ID)
	}

	return ids
}

// Composes reports whether t composes the content type with the given id, directly or indirectly.
func (t *ContentType) Composes(id int) bool {
	for _, a := range t.Ancestors() {
		if a.ID == id {
			return true
		}
	}

	return false
}

// CompositionPropertyGroups returns local groups followed by the groups of all ancestors.
func (t *ContentType) CompositionPropertyGroups() []*PropertyGroup {
	result := append([]*PropertyGroup{}, t.PropertyGroups...)
	for _, a := range t.Ancestors() {
		result = append(result, a.PropertyGroups...)
	}

	return result
}

// CompositionPropertyTypes returns local property types followed by those of all ancestors.
func (t *ContentType) CompositionPropertyTypes() []*PropertyType {
	result := t.PropertyTypes()
	for _, a := range t.Ancestors() {
		result = append(result, a.PropertyTypes()...)
	}

	return result
}

// AddComposition adds c as a direct composition of t. It refuses self
// composition, duplicates, a kind mismatch and anything that would close a cycle.
func (t *ContentType) AddComposition(c *ContentType) error {
	if c == nil {
		return fmt.Errorf("%w: nil content type", ErrInvalidComposition)
	}

	if c == t || (c.ID > 0 && c.ID == t.ID) {
		return fmt.Errorf("%w: %q cannot compose itself", ErrInvalidComposition, t.Alias)
	}

	if c.Kind != t.Kind {
		return fmt.Errorf("%w: %q is a %s type, %q is a %s type",
			ErrInvalidComposition, c.Alias, c.Kind, t.Alias, t.Kind)
	}

	for _, existing := range t.Compositions {
		if strings.EqualFold(existing.Alias, c.Alias) {
			return fmt.Errorf("%w: %q already composes %q", ErrInvalidComposition, t.Alias, c.Alias)
		}
	}

	for _, a := range append([]*ContentType{c}, c.Ancestors()...) {
		if a == t || (t.ID > 0 && a.ID == t.ID) {
			return fmt.Errorf("%w: %q already composes %q", ErrInvalidComposition, c.Alias, t.Alias)
		}
	}

	t.Compositions = append(t.Compositions, c)

	return nil
}

// RemoveComposition removes the direct composition with the given alias.
func (t *ContentType) RemoveComposition(alias string) bool {
	for i, c := range t.Compositions {
		if strings.EqualFold(c.Alias, alias) {
			t.Compositions = append(t.Compositions[:i], t.Compositions[i+1:]...)
			return true
		}
	}

	return false
}
