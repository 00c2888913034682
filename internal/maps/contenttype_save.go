package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

var contentTypeSavePair = pairName[*editing.ContentTypeSave, entity.ContentType]()

func (m *mapper) registerContentTypeSave(b *mapping.Builder) {
	mapping.Define(b, m.mapContentTypeSave)
}

// mapContentTypeSave merges a posted content type into dst. The payload holds
// every group once per name, inherited ones included, and every property;
// only local properties are merged. Groups and properties with a known id are
// updated in place, the others are created with a fresh id and key. A local
// group left without properties is dropped unless another group nests in it.
func (m *mapper) mapContentTypeSave(src *editing.ContentTypeSave, dst *entity.ContentType, ctx *mapping.Context) error {
	if src.ID > 0 {
		dst.ID = src.ID
	} else if !dst.HasIdentity() {
		dst.ID = m.nextID()
	}

	switch {
	case src.Key != uuid.Nil:
		dst.Key = src.Key
	case dst.Key == uuid.Nil:
		dst.Key = uuid.New()
	}

	dst.Alias = src.Alias
	dst.Name = src.Name
	dst.Description = src.Description
	dst.Icon = src.Icon
	dst.Thumbnail = src.Thumbnail
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.IsContainer = src.IsContainer
	dst.IsElement = src.IsElement
	dst.AllowedAsRoot = src.AllowAsRoot

	if !sameAllowed(dst.AllowedContentTypes, src.AllowedContentTypes) {
		dst.AllowedContentTypes = make([]entity.ContentTypeSort, 0, len(src.AllowedContentTypes))
		for i, id := range src.AllowedContentTypes {
			dst.AllowedContentTypes = append(dst.AllowedContentTypes, entity.ContentTypeSort{ID: id, SortOrder: i})
		}
	}

	if dst.Kind != entity.KindMember {
		dst.Variations = dst.Variations.
			With(entity.VaryCulture, src.AllowCultureVariant).
			With(entity.VarySegment, src.AllowSegmentVariant)
	}

	if err := m.saveGroups(src, dst, ctx); err != nil {
		return err
	}

	if err := m.saveCompositions(src, dst, ctx); err != nil {
		return err
	}

	switch dst.Kind {
	case entity.KindDocument:
		m.saveTemplates(src, dst, ctx)
	case entity.KindMember:
		saveMemberAccess(src, dst)
	}

	return nil
}

func sameAllowed(current []entity.ContentTypeSort, proposed []int) bool {
	if len(current) != len(proposed) {
		return false
	}

	for i := range current {
		if current[i].ID != proposed[i] {
			return false
		}
	}

	return true
}

func (m *mapper) saveGroups(src *editing.ContentTypeSave, dst *entity.ContentType, ctx *mapping.Context) error {
	origGroups := dst.PropertyGroups
	origProps := dst.PropertyTypes()

	var parentAliases []string

	for _, g := range src.Groups {
		if g.IsGenericProperties {
			continue
		}

		if p := parentAlias(g.Alias); p != "" {
			parentAliases = append(parentAliases, p)
		}
	}

	var groups []*entity.PropertyGroup

	for _, sg := range src.Groups {
		if sg.IsGenericProperties {
			continue
		}

		props := m.saveProperties(sg.Properties, origProps, ctx)
		if len(props) == 0 && !containsFold(parentAliases, sg.Alias) {
			continue
		}

		group := m.saveGroup(sg, origGroups, ctx)
		for _, p := range props {
			p.PropertyGroupID = group.ID
		}

		group.PropertyTypes = props
		groups = append(groups, group)
	}

	if err := uniqueGroupAliases(groups); err != nil {
		return err
	}

	dst.PropertyGroups = groups
	dst.NoGroupPropertyTypes = nil

	for _, sg := range src.Groups {
		if !sg.IsGenericProperties {
			continue
		}

		props := m.saveProperties(sg.Properties, origProps, ctx)
		for _, p := range props {
			p.PropertyGroupID = 0
		}

		dst.NoGroupPropertyTypes = props

		break
	}

	return uniquePropertyAliases(dst.PropertyTypes())
}

// parentAlias returns the alias of the group a nested group ("tab/group")
// belongs to.
func parentAlias(alias string) string {
	i := strings.LastIndex(alias, "/")
	if i < 0 {
		return ""
	}

	return alias[:i]
}

func (m *mapper) saveGroup(src *editing.PropertyGroupBasic, orig []*entity.PropertyGroup, ctx *mapping.Context) *entity.PropertyGroup {
	var dst *entity.PropertyGroup

	if src.ID > 0 {
		for _, g := range orig {
			if g.ID == src.ID {
				dst = g
				break
			}
		}

		if dst == nil {
			ctx.Warn(diagnostic.CodeStalePropertyID,
				fmt.Sprintf("property group id %d not found, creating it again", src.ID), contentTypeSavePair, src.Alias)
		}
	}

	if dst == nil {
		dst = &entity.PropertyGroup{ID: m.nextID(), Key: src.Key}
		if dst.Key == uuid.Nil {
			dst.Key = uuid.New()
		}
	}

	dst.Alias = src.Alias
	dst.Name = src.Name
	dst.SortOrder = src.SortOrder
	dst.Type = entity.GroupTypeGroup

	if strings.EqualFold(src.Type, entity.GroupTypeTab.String()) {
		dst.Type = entity.GroupTypeTab
	}

	return dst
}

// saveProperties merges the local properties of a posted group.
func (m *mapper) saveProperties(src []*editing.PropertyTypeBasic, orig []*entity.PropertyType, ctx *mapping.Context) []*entity.PropertyType {
	var result []*entity.PropertyType

	for _, sp := range src {
		if sp.Inherited {
			continue
		}

		result = append(result, m.saveProperty(sp, orig, ctx))
	}

	return result
}

func (m *mapper) saveProperty(src *editing.PropertyTypeBasic, orig []*entity.PropertyType, ctx *mapping.Context) *entity.PropertyType {
	var dst *entity.PropertyType

	if src.ID > 0 {
		for _, p := range orig {
			if p.ID == src.ID {
				dst = p
				break
			}
		}

		if dst == nil {
			ctx.Warn(diagnostic.CodeStalePropertyID,
				fmt.Sprintf("property type id %d not found, creating it again", src.ID), contentTypeSavePair, src.Alias)
		}
	}

	if dst == nil {
		dst = &entity.PropertyType{ID: m.nextID(), Key: src.Key}
		if dst.Key == uuid.Nil {
			dst.Key = uuid.New()
		}
	}

	dst.Alias = src.Alias
	dst.Name = src.Label
	dst.Description = src.Description
	dst.DataTypeID = src.DataTypeID
	dst.DataTypeKey = src.DataTypeKey
	dst.Mandatory = src.Validation.Mandatory
	dst.MandatoryMessage = src.Validation.MandatoryMessage
	dst.ValidationRegExp = src.Validation.Pattern
	dst.ValidationRegExpMessage = src.Validation.PatternMessage
	dst.SortOrder = src.SortOrder
	dst.LabelOnTop = src.LabelOnTop
	dst.Variations = dst.Variations.
		With(entity.VaryCulture, src.AllowCultureVariant).
		With(entity.VarySegment, src.AllowSegmentVariant)

	if m.svc.DataTypes != nil {
		dt, err := m.svc.DataTypes.GetDataType(src.DataTypeID)
		if err != nil {
			ctx.Warn(diagnostic.CodeDataTypeMissing, fmt.Sprintf("data type %d: %v", src.DataTypeID, err), contentTypeSavePair, src.Alias)
		} else {
			dst.DataTypeKey = dt.Key
			dst.PropertyEditorAlias = dt.EditorAlias
		}
	}

	return dst
}

func uniquePropertyAliases(props []*entity.PropertyType) error {
	seen := make(map[string]bool, len(props))

	for _, p := range props {
		key := strings.ToUpper(p.Alias)
		if seen[key] {
			return fmt.Errorf("%w: cannot map properties, %q is used more than once", ErrDuplicateAlias, p.Alias)
		}

		seen[key] = true
	}

	return nil
}

func uniqueGroupAliases(groups []*entity.PropertyGroup) error {
	seen := make(map[string]bool, len(groups))

	for _, g := range groups {
		if seen[g.Alias] {
			return fmt.Errorf("%w: cannot map groups, %q is used more than once", ErrDuplicateAlias, g.Alias)
		}

		seen[g.Alias] = true
	}

	return nil
}

// saveCompositions removes the compositions the payload no longer lists and
// adds the new ones by alias.
func (m *mapper) saveCompositions(src *editing.ContentTypeSave, dst *entity.ContentType, ctx *mapping.Context) error {
	current := dst.CompositionAliases()

	for _, alias := range current {
		if !containsFold(src.CompositeContentTypes, alias) {
			dst.RemoveComposition(alias)
		}
	}

	for _, alias := range src.CompositeContentTypes {
		if containsFold(current, alias) {
			continue
		}

		if m.svc.ContentTypes == nil {
			return fmt.Errorf("%w: %q", ErrUnknownComposition, alias)
		}

		c, err := m.svc.ContentTypes.GetContentTypeByAlias(dst.Kind, alias)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrUnknownComposition, alias, err)
		}

		if err := dst.AddComposition(c); err != nil {
			if !errors.Is(err, entity.ErrInvalidComposition) {
				return err
			}

			ctx.Warn(diagnostic.CodeCompositionSkipped, err.Error(), contentTypeSavePair, alias)
		}
	}

	return nil
}

func (m *mapper) saveTemplates(src *editing.ContentTypeSave, dst *entity.ContentType, ctx *mapping.Context) {
	if m.svc.Files == nil {
		return
	}

	lookup := func(alias string) *entity.Template {
		t, err := m.svc.Files.GetTemplateByAlias(alias)
		if err != nil {
			ctx.Warn(diagnostic.CodeTemplateMissing, fmt.Sprintf("template %q: %v", alias, err), contentTypeSavePair, "allowedTemplates")
			return nil
		}

		return t
	}

	dst.AllowedTemplates = nil

	for _, alias := range src.AllowedTemplates {
		if alias == "" {
			continue
		}

		if t := lookup(alias); t != nil {
			dst.AllowedTemplates = append(dst.AllowedTemplates, t)
		}
	}

	dst.DefaultTemplate = nil
	if src.DefaultTemplate != "" {
		dst.DefaultTemplate = lookup(src.DefaultTemplate)
	}
}

// saveMemberAccess copies the member flags of every posted property still
// present on the type.
func saveMemberAccess(src *editing.ContentTypeSave, dst *entity.ContentType) {
	for _, g := range src.Groups {
		for _, p := range g.Properties {
			if dst.FindPropertyType(p.Alias) == nil {
				continue
			}

			if dst.MemberAccess == nil {
				dst.MemberAccess = map[string]entity.MemberPropertyAccess{}
			}

			dst.MemberAccess[p.Alias] = entity.MemberPropertyAccess{
				CanEdit:   p.MemberCanEditProperty,
				CanView:   p.MemberCanViewProperty,
				Sensitive: p.IsSensitiveData,
			}
		}
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
