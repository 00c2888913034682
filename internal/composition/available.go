package composition

import (
	"slices"
	"sort"
	"strings"

	"cms-mapper/internal/entity"
)

// Filter narrows the composition candidates.
type Filter struct {
	// ContentTypeAliases excludes these types, and makes their property
	// aliases conflict like PropertyAliases.
	ContentTypeAliases []string
	// PropertyAliases are aliases of properties being added to the target;
	// candidates defining one of them are not allowed.
	PropertyAliases []string
	// IsElement restricts candidates to element types.
	IsElement bool
}

// Candidate is one content type the editor lists as a composition.
type Candidate struct {
	ContentType *entity.ContentType
	Allowed     bool
	// Selected is set when the target already composes the type directly.
	Selected bool
}

// Available reports whether the candidate can be added as a new composition.
func (c Candidate) Available() bool {
	return c.Allowed && !c.Selected
}

// Availability is the result of AvailableCompositions.
type Availability struct {
	Results []Candidate
	// Ancestors are the types above the target in the content type tree.
	Ancestors []*entity.ContentType
}

// Aliases returns the aliases of the candidates that can be added.
func (a *Availability) Aliases() []string {
	var result []string

	for _, c := range a.Results {
		if c.Available() {
			result = append(result, c.ContentType.Alias)
		}
	}

	return result
}

// AvailableCompositions lists the content types of the target's kind the
// editor may offer as compositions, sorted by name. A target that is itself
// used as a composition gets no candidates at all. Types composing the target
// are never listed. Candidates are the types without compositions of their own
// plus the ones the target already composes.
func AvailableCompositions(target *entity.ContentType, all []*entity.ContentType, filter Filter) *Availability {
	result := &Availability{}

	if target.HasIdentity() && len(Descendants(target, all)) > 0 {
		return result
	}

	result.Ancestors = treeAncestors(target, all)
	composed := target.Ancestors()

	conflicts := append([]string{}, filter.PropertyAliases...)
	for _, c := range all {
		if containsFold(filter.ContentTypeAliases, c.Alias) {
			for _, pt := range c.CompositionPropertyTypes() {
				conflicts = append(conflicts, pt.Alias)
			}
		}
	}

	for _, c := range all {
		if c.Kind != target.Kind || sameType(c, target) || composes(c, target) {
			continue
		}

		if containsFold(filter.ContentTypeAliases, c.Alias) {
			continue
		}

		if filter.IsElement && !c.IsElement {
			continue
		}

		alreadyComposed := slices.ContainsFunc(composed, func(a *entity.ContentType) bool { return sameType(a, c) })
		if len(c.Compositions) > 0 && !alreadyComposed {
			continue
		}

		selected := slices.ContainsFunc(target.Compositions, func(a *entity.ContentType) bool { return sameType(a, c) })
		ancestor := slices.ContainsFunc(result.Ancestors, func(a *entity.ContentType) bool { return sameType(a, c) })

		allowed := !ancestor && !definesAny(c, conflicts)
		if selected && !ancestor {
			allowed = true
		}

		result.Results = append(result.Results, Candidate{ContentType: c, Allowed: allowed, Selected: selected})
	}

	sort.SliceStable(result.Results, func(i, j int) bool {
		a, b := result.Results[i].ContentType, result.Results[j].ContentType
		if !strings.EqualFold(a.Name, b.Name) {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}

		return a.Alias < b.Alias
	})

	return result
}

// Descendants returns the types of all that compose target, directly or indirectly.
func Descendants(target *entity.ContentType, all []*entity.ContentType) []*entity.ContentType {
	var result []*entity.ContentType

	for _, c := range all {
		if !sameType(c, target) && composes(c, target) {
			result = append(result, c)
		}
	}

	return result
}

// treeAncestors returns the types whose ids appear on the target's path.
func treeAncestors(target *entity.ContentType, all []*entity.ContentType) []*entity.ContentType {
	var result []*entity.ContentType

	for _, id := range entity.PathIDs(target.Path) {
		if id == entity.RootID || id == target.ID || id == 0 {
			continue
		}

		for _, c := range all {
			if c.ID == id {
				result = append(result, c)
				break
			}
		}
	}

	return result
}

func composes(c, target *entity.ContentType) bool {
	return slices.ContainsFunc(c.Ancestors(), func(a *entity.ContentType) bool { return sameType(a, target) })
}

func definesAny(c *entity.ContentType, aliases []string) bool {
	if len(aliases) == 0 {
		return false
	}

	for _, pt := range c.CompositionPropertyTypes() {
		if containsFold(aliases, pt.Alias) {
			return true
		}
	}

	return false
}

func sameType(a, b *entity.ContentType) bool {
	return a == b || (a.ID > 0 && a.ID == b.ID)
}

func containsFold(list []string, s string) bool {
	return slices.ContainsFunc(list, func(v string) bool { return strings.EqualFold(v, s) })
}
