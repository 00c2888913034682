package composition

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"

	"cms-mapper/internal/entity"
)

// Generic properties group identity.
const (
	GenericPropertiesID    = -666
	GenericPropertiesName  = "Generic properties"
	GenericPropertiesAlias = "genericProperties"
)

// Property is a property type visible on a content type.
type Property struct {
	Type      *entity.PropertyType
	Owner     *entity.ContentType
	Inherited bool
}

// Group is a property group visible on a content type, possibly merged from
// several members of the composition graph.
type Group struct {
	ID        int
	Key       uuid.UUID
	Alias     string
	Name      string
	Type      entity.GroupType
	SortOrder int

	// Local is set when the content type itself defines the group.
	Local bool
	// Inherited is set when at least one composition contributes to the group.
	Inherited bool
	// ContentTypeID is the id of the type owning the group identity: the
	// content type itself when Local, else the first contributing composition.
	ContentTypeID int
	// DefinedBy lists the contributing compositions in discovery order.
	DefinedBy []*entity.ContentType

	IsGeneric  bool
	Properties []*Property
}

// Resolution is the resolved view of a content type.
type Resolution struct {
	ContentType *entity.ContentType
	// Groups holds merged groups by sort order, followed by the generic
	// properties group when there are any generic properties.
	Groups  []*Group
	Generic []*Property
}

// Properties returns every visible property, grouped ones first.
func (r *Resolution) Properties() []*Property {
	var result []*Property

	for _, g := range r.Groups {
		if g.IsGeneric {
			continue
		}

		result = append(result, g.Properties...)
	}

	return append(result, r.Generic...)
}

// Property returns the visible property with the given alias (case insensitive).
func (r *Resolution) Property(alias string) *Property {
	for _, p := range r.Properties() {
		if strings.EqualFold(p.Type.Alias, alias) {
			return p
		}
	}

	return nil
}

// Resolve walks the composition graph of ct.
func Resolve(ct *entity.ContentType) (*Resolution, error) {
	return ResolveGroups(ct, ct.CompositionPropertyGroups(), ct.CompositionPropertyTypes())
}

// ResolveGroups builds the resolution of ct from flat lists of groups and
// property types, as loaded by a repository. Every group and property type
// must belong to ct or one of its compositions; anything else fails with
// ErrUntraceable.
func ResolveGroups(ct *entity.ContentType, groups []*entity.PropertyGroup, props []*entity.PropertyType) (*Resolution, error) {
	if cycle := FindCycle(ct); cycle != nil {
		return nil, cycleError(cycle)
	}

	members := append([]*entity.ContentType{ct}, ct.Ancestors()...)

	raw := make(map[*entity.PropertyGroup]*Group, len(groups))

	var ordered []*Group

	addGroup := func(pg *entity.PropertyGroup, owner *entity.ContentType) *Group {
		if g, ok := raw[pg]; ok {
			return g
		}

		g := newGroup(pg, owner, owner != ct)
		raw[pg] = g
		ordered = append(ordered, g)

		return g
	}

	for _, pg := range groups {
		owner := groupOwner(members, pg)
		if owner == nil {
			return nil, fmt.Errorf("%w: property group %q of %q", ErrUntraceable, pg.Name, ct.Alias)
		}

		addGroup(pg, owner)
	}

	var generic []*Property

	for _, pt := range props {
		owner, pg := propertyOwner(members, pt)
		if owner == nil {
			return nil, fmt.Errorf("%w: property type %q of %q", ErrUntraceable, pt.Alias, ct.Alias)
		}

		p := &Property{Type: pt, Owner: owner, Inherited: owner != ct}

		if pg == nil {
			generic = append(generic, p)
			continue
		}

		g := addGroup(pg, owner)
		g.Properties = append(g.Properties, p)
	}

	res := &Resolution{
		ContentType: ct,
		Groups:      MergeGroups(ordered),
		Generic:     sortProperties(generic),
	}

	if len(res.Generic) > 0 {
		res.Groups = append(res.Groups, genericGroup(ct, res.Generic, len(res.Groups)))
	}

	return res, nil
}

// genericGroup tags the generic properties group like a merged group: local
// when ct defines one of the properties, inherited with DefinedBy listing the
// owners of the others.
func genericGroup(ct *entity.ContentType, props []*Property, sortOrder int) *Group {
	g := &Group{
		ID:         GenericPropertiesID,
		Alias:      GenericPropertiesAlias,
		Name:       GenericPropertiesName,
		SortOrder:  sortOrder,
		IsGeneric:  true,
		Properties: props,
	}

	for _, p := range props {
		if !p.Inherited {
			g.Local = true
			continue
		}

		g.Inherited = true

		if !slices.Contains(g.DefinedBy, p.Owner) {
			g.DefinedBy = append(g.DefinedBy, p.Owner)
		}
	}

	if g.Local || len(g.DefinedBy) == 0 {
		g.ContentTypeID = ct.ID
	} else {
		g.ContentTypeID = g.DefinedBy[0].ID
	}

	return g
}

// MergeGroups merges groups sharing a name (case insensitive). Groups are
// ordered by sort order, ties keep input order; each merged group holds the
// union of the properties ordered by sort order.
func MergeGroups(groups []*Group) []*Group {
	sorted := slices.Clone(groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	var result []*Group

	byName := map[string]*Group{}

	for _, g := range sorted {
		key := strings.ToLower(g.Name)

		merged, ok := byName[key]
		if !ok {
			merged = &Group{
				ID:            g.ID,
				Key:           g.Key,
				Alias:         g.Alias,
				Name:          g.Name,
				Type:          g.Type,
				SortOrder:     g.SortOrder,
				Local:         g.Local,
				Inherited:     g.Inherited,
				ContentTypeID: g.ContentTypeID,
				DefinedBy:     slices.Clone(g.DefinedBy),
				IsGeneric:     g.IsGeneric,
				Properties:    slices.Clone(g.Properties),
			}
			byName[key] = merged
			result = append(result, merged)

			continue
		}

		mergeInto(merged, g)
	}

	for _, g := range result {
		g.Properties = sortProperties(g.Properties)
	}

	// a local group may have moved the merged sort order
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})

	return result
}

func mergeInto(dst, src *Group) {
	if src.Local && !dst.Local {
		// the local group owns the identity
		dst.ID = src.ID
		dst.Key = src.Key
		dst.Alias = src.Alias
		dst.Type = src.Type
		dst.SortOrder = src.SortOrder
		dst.ContentTypeID = src.ContentTypeID
		dst.Local = true
	}

	dst.Inherited = dst.Inherited || src.Inherited

	for _, d := range src.DefinedBy {
		if !slices.Contains(dst.DefinedBy, d) {
			dst.DefinedBy = append(dst.DefinedBy, d)
		}
	}

	for _, p := range src.Properties {
		if !containsProperty(dst.Properties, p) {
			dst.Properties = append(dst.Properties, p)
		}
	}
}

func newGroup(pg *entity.PropertyGroup, owner *entity.ContentType, inherited bool) *Group {
	g := &Group{
		ID:            pg.ID,
		Key:           pg.Key,
		Alias:         pg.Alias,
		Name:          pg.Name,
		Type:          pg.Type,
		SortOrder:     pg.SortOrder,
		Local:         !inherited,
		Inherited:     inherited,
		ContentTypeID: owner.ID,
	}

	if inherited {
		g.DefinedBy = []*entity.ContentType{owner}
	}

	return g
}

func groupOwner(members []*entity.ContentType, pg *entity.PropertyGroup) *entity.ContentType {
	for _, m := range members {
		for _, g := range m.PropertyGroups {
			if g == pg || (pg.ID > 0 && g.ID == pg.ID) {
				return m
			}
		}
	}

	return nil
}

// propertyOwner finds the member defining pt and the member group holding it.
func propertyOwner(members []*entity.ContentType, pt *entity.PropertyType) (*entity.ContentType, *entity.PropertyGroup) {
	same := func(p *entity.PropertyType) bool {
		return p == pt || (pt.ID > 0 && p.ID == pt.ID)
	}

	for _, m := range members {
		for _, g := range m.PropertyGroups {
			for _, p := range g.PropertyTypes {
				if same(p) {
					return m, g
				}
			}
		}

		for _, p := range m.NoGroupPropertyTypes {
			if same(p) {
				return m, nil
			}
		}
	}

	return nil, nil
}

func sortProperties(props []*Property) []*Property {
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Type.SortOrder < props[j].Type.SortOrder
	})

	return props
}

func containsProperty(list []*Property, p *Property) bool {
	for _, q := range list {
		if q.Type == p.Type {
			return true
		}
	}

	return false
}
