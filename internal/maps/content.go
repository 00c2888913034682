package maps

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"cms-mapper/internal/composition"
	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
	"cms-mapper/internal/match"
	"cms-mapper/internal/services"
)

const maxSuggestions = 3

var (
	contentDisplayPair = pairName[*entity.Content, editing.ContentItemDisplay]()
	contentSavePair    = pairName[*editing.ContentItemSave, entity.Content]()
)

func (m *mapper) registerContent(b *mapping.Builder) {
	mapping.Define(b, m.mapContentBasic)
	mapping.Define(b, m.mapContentDisplay)
	mapping.Define(b, m.mapVariant)
	mapping.Define(b, m.mapContentSave)
	mapping.Define(b, m.mapContentPropertyCollection)
}

func (m *mapper) mapContentDisplay(src *entity.Content, dst *editing.ContentItemDisplay, ctx *mapping.Context) error {
	if err := m.mapContentHeader(src, &dst.ContentItemHeader, ctx); err != nil {
		return err
	}

	variants, err := mapVariants(m, src, ctx, func(v *editing.ContentVariantDisplay) *editing.ContentVariantDisplay { return v })
	if err != nil {
		return err
	}

	dst.Variants = variants

	return nil
}

// mapContentHeader fills the item level fields shared by the display models.
func (m *mapper) mapContentHeader(src *entity.Content, dst *editing.ContentItemHeader, ctx *mapping.Context) error {
	ct := src.ContentType
	parent := m.parent(src, ctx)

	actions, err := m.allowedActions(src, parent, ctx)
	if err != nil {
		return err
	}

	templates, err := m.allowedTemplates(src, ctx)
	if err != nil {
		return err
	}

	isChild, err := m.isChildOfListView(src, parent, ctx)
	if err != nil {
		return err
	}

	docType, err := mapping.Map[editing.ContentTypeBasic](ctx, ct)
	if err != nil {
		return err
	}

	dto, err := m.contentDto(src, ctx)
	if err != nil {
		return err
	}

	udiType := entity.KindDocument.ContentUdiEntityType()
	if src.Blueprint {
		udiType = "document-blueprint"
	}

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(udiType, src.Key)
	dst.Icon = ct.Icon
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.SortOrder = src.SortOrder
	dst.Trashed = src.Trashed
	dst.UpdateDate = src.UpdateDate
	dst.Owner = m.profile(src.CreatorID)
	dst.Updater = m.profile(src.WriterID)
	dst.ContentTypeID = ct.ID
	dst.ContentTypeKey = ct.Key
	dst.ContentTypeAlias = ct.Alias
	dst.ContentTypeName = m.translate(ct.Name, ctx.Culture())
	dst.DocumentType = docType
	dst.IsBlueprint = src.Blueprint
	dst.IsChildOfListView = isChild
	dst.IsContainer = ct.IsContainer
	dst.IsElement = ct.IsElement
	dst.AllowedActions = actions
	dst.AllowedTemplates = templates
	dst.TemplateAlias = m.defaultTemplate(src, ctx)
	dst.TreeNodeURL = m.treeNodeURL("ContentTree", src.ID)
	dst.ContentDto = dto

	if src.TemplateID != nil {
		dst.TemplateID = *src.TemplateID
	}

	return nil
}

// parent returns the parent from the context or, failing that, from the
// content service. Root level and unknown parents are nil.
func (m *mapper) parent(src *entity.Content, ctx *mapping.Context) *entity.Content {
	if p, ok := mapping.ItemAs[*entity.Content](ctx, ItemParent); ok {
		return p
	}

	if src.ParentID <= 0 || m.svc.Content == nil {
		return nil
	}

	p, err := m.svc.Content.GetContent(src.ParentID)
	if err != nil {
		return nil
	}

	return p
}

// allowedActions returns the permission letters of the current user on the
// item, or on its parent when the item is not saved yet.
func (m *mapper) allowedActions(src *entity.Content, parent *entity.Content, ctx *mapping.Context) ([]string, error) {
	user, ok := mapping.ItemAs[*entity.User](ctx, ItemCurrentUser)
	if !ok || user == nil {
		return []string{}, nil
	}

	path := src.Path

	if !src.HasIdentity() {
		path = fmt.Sprint(entity.RootID)
		if parent != nil {
			path = parent.Path
		}
	}

	if perms, ok := mapping.ItemAs[map[string][]string](ctx, ItemPermissions); ok {
		if p, ok := perms[path]; ok {
			return p, nil
		}
	}

	if m.svc.Users == nil {
		return []string{}, nil
	}

	perms, err := m.svc.Users.GetPermissionsForPath(user, path)
	if err != nil {
		return nil, fmt.Errorf("permissions of user %d for %s: %w", user.ID, path, err)
	}

	return perms, nil
}

func (m *mapper) allowedTemplates(src *entity.Content, ctx *mapping.Context) (map[string]string, error) {
	ct := src.ContentType
	if ct.IsElement {
		return map[string]string{}, nil
	}

	if m.svc.ContentTypes != nil && ct.HasIdentity() {
		stored, err := m.svc.ContentTypes.GetContentType(ct.ID)

		switch {
		case err == nil:
			ct = stored
		case !notFound(err):
			return nil, err
		}
	}

	result := make(map[string]string, len(ct.AllowedTemplates))

	for _, t := range ct.AllowedTemplates {
		if strings.TrimSpace(t.Alias) == "" || strings.TrimSpace(t.Name) == "" {
			continue
		}

		result[t.Alias] = m.translate(t.Name, ctx.Culture())
	}

	return result, nil
}

// defaultTemplate returns the alias of the template set on the item, else
// the default template of its type.
func (m *mapper) defaultTemplate(src *entity.Content, ctx *mapping.Context) string {
	if src.TemplateID == nil {
		if t := src.ContentType.DefaultTemplate; t != nil && strings.TrimSpace(t.Alias) != "" {
			return t.Alias
		}

		return ""
	}

	if m.svc.Files == nil {
		return ""
	}

	t, err := m.svc.Files.GetTemplate(*src.TemplateID)
	if err != nil {
		ctx.Warn(diagnostic.CodeTemplateMissing, fmt.Sprintf("template %d: %v", *src.TemplateID, err), contentDisplayPair, "template")
		return ""
	}

	return t.Alias
}

// isChildOfListView reports whether the item is rendered inside a list view:
// its parent or an ancestor below the user's start nodes is a container. A
// user's own start node is rendered in the tree and never counts.
func (m *mapper) isChildOfListView(src *entity.Content, parent *entity.Content, ctx *mapping.Context) (bool, error) {
	var startNodes []int

	if user, ok := mapping.ItemAs[*entity.User](ctx, ItemCurrentUser); ok && user != nil {
		startNodes = user.CalculateContentStartNodeIDs()
	}

	if parent == nil {
		return m.listViewChild(src.ID, nil, startNodes)
	}

	return m.listViewChild(src.ID, &parent.ContentBase, startNodes)
}

func (m *mapper) listViewChild(id int, parent *entity.ContentBase, startNodes []int) (bool, error) {
	if len(startNodes) > 0 && !slices.Contains(startNodes, entity.RootID) && slices.Contains(startNodes, id) {
		return false, nil
	}

	if parent == nil {
		return false, nil
	}

	if parent.ContentType != nil && parent.ContentType.IsContainer {
		return true, nil
	}

	parts := entity.PathIDs(parent.Path)

	for _, n := range startNodes {
		if i := slices.Index(parts, n); i != -1 {
			parts = parts[i:]
		}
	}

	if m.svc.ContentTypes == nil {
		return false, nil
	}

	return m.svc.ContentTypes.HasContainerInPath(parts)
}

// contentDto maps the persistence projection of a display model. Culture
// varying content without a context culture uses the default language.
func (m *mapper) contentDto(src *entity.Content, ctx *mapping.Context) (*editing.ContentPropertyCollectionDto, error) {
	dctx := ctx
	if src.ContentType.VariesByCulture() && !ctx.HasCulture() {
		if _, def := m.languages(); def != "" {
			dctx = ctx.ForCulture(def)
		}
	}

	dto := &editing.ContentPropertyCollectionDto{}

	for _, p := range properties(&src.ContentBase, dctx) {
		d := &editing.ContentPropertyDto{}
		if err := m.mapPropertyDto(p, d, false, dctx); err != nil {
			return nil, err
		}

		dto.Properties = append(dto.Properties, d)
	}

	return dto, nil
}

func (m *mapper) mapContentPropertyCollection(src *entity.Content, dst *editing.ContentPropertyCollectionDto, ctx *mapping.Context) error {
	props, err := mapping.MapSlice[*entity.Property, editing.ContentPropertyDto](ctx, properties(&src.ContentBase, ctx))
	if err != nil {
		return err
	}

	dst.Properties = props

	return nil
}

func (m *mapper) mapContentBasic(src *entity.Content, dst *editing.ContentItemBasic, ctx *mapping.Context) error {
	ct := src.ContentType

	name, err := EffectiveName(&src.ContentBase, ctx)
	if err != nil {
		return err
	}

	updated, err := EffectiveUpdateDate(&src.ContentBase, ctx)
	if err != nil {
		return err
	}

	state, err := contentSavedState(src, ctx)
	if err != nil {
		return err
	}

	props, err := mapping.MapSlice[*entity.Property, editing.ContentPropertyBasic](ctx, properties(&src.ContentBase, ctx))
	if err != nil {
		return err
	}

	udiType := entity.KindDocument.ContentUdiEntityType()
	if src.Blueprint {
		udiType = "document-blueprint"
	}

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(udiType, src.Key)
	dst.Name = name
	dst.Icon = ct.Icon
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.SortOrder = src.SortOrder
	dst.Trashed = src.Trashed
	dst.Edited = src.Edited
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = updated
	dst.Owner = m.profile(src.CreatorID)
	dst.Updater = m.profile(src.WriterID)
	dst.ContentTypeID = ct.ID
	dst.ContentTypeAlias = ct.Alias
	dst.State = &state
	dst.VariesByCulture = ct.VariesByCulture()
	dst.Properties = props

	return nil
}

// mapContentSave merges a posted document into dst: names and property values
// of every saved variant. Properties are matched by id, then by alias; new
// ones receive a fresh id.
func (m *mapper) mapContentSave(src *editing.ContentItemSave, dst *entity.Content, ctx *mapping.Context) error {
	if dst.ContentType == nil {
		if m.svc.ContentTypes == nil {
			return fmt.Errorf("content type %q: %w", src.ContentTypeAlias, services.ErrNotFound)
		}

		ct, err := m.svc.ContentTypes.GetContentTypeByAlias(entity.KindDocument, src.ContentTypeAlias)
		if err != nil {
			return fmt.Errorf("content type %q: %w", src.ContentTypeAlias, err)
		}

		dst.ContentType = ct
	}

	if src.ID > 0 {
		dst.ID = src.ID
	}

	if !dst.HasIdentity() {
		dst.ParentID = src.ParentID
		if dst.Key == uuid.Nil {
			dst.Key = uuid.New()
		}
	}

	if src.TemplateAlias != "" && m.svc.Files != nil {
		t, err := m.svc.Files.GetTemplateByAlias(src.TemplateAlias)
		if err != nil {
			ctx.Warn(diagnostic.CodeTemplateMissing, fmt.Sprintf("template %q: %v", src.TemplateAlias, err), contentSavePair, "templateAlias")
		} else {
			dst.TemplateID = &t.ID
		}
	}

	res, err := composition.Resolve(dst.ContentType)
	if err != nil {
		return err
	}

	now := m.svc.Now()

	for _, v := range src.Variants {
		if !v.Save && !v.Publish {
			continue
		}

		if v.Segment != "" {
			return fmt.Errorf("%w: segment %q", mapping.ErrSegmentVariationUnsupported, v.Segment)
		}

		vctx := ctx.ForVariant(v.Culture, "")

		if dst.ContentType.VariesByCulture() {
			culture, err := vctx.RequireCulture("name of " + dst.ContentType.Alias)
			if err != nil {
				return err
			}

			dst.SetCultureName(v.Name, culture, now)
		} else {
			dst.Name = v.Name
		}

		for _, p := range v.Properties {
			if err := m.saveContentProperty(p, dst, res, vctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *mapper) saveContentProperty(src *editing.ContentPropertyBasic, dst *entity.Content, res *composition.Resolution, ctx *mapping.Context) error {
	var prop *entity.Property

	if src.ID > 0 {
		prop = propertyByID(dst.Properties, src.ID)
		if prop == nil {
			ctx.Warn(diagnostic.CodeStalePropertyID,
				fmt.Sprintf("property id %d not found, matching by alias", src.ID), contentSavePair, src.Alias)
		}
	}

	if prop == nil {
		prop = dst.Property(src.Alias)
	}

	if prop == nil {
		visible := res.Property(src.Alias)
		if visible == nil {
			aliases := make([]string, 0)
			for _, p := range res.Properties() {
				aliases = append(aliases, p.Type.Alias)
			}

			ctx.Warn(diagnostic.CodePropertyNotOnType,
				fmt.Sprintf("property %q is not defined on %q", src.Alias, dst.ContentType.Alias),
				contentSavePair, src.Alias, match.Suggest(src.Alias, aliases, maxSuggestions)...)

			return nil
		}

		prop = &entity.Property{ID: m.nextID(), PropertyType: visible.Type}
		dst.Properties = append(dst.Properties, prop)
	}

	culture := ""

	if prop.PropertyType.VariesByCulture() {
		c, err := ctx.RequireCulture(fmt.Sprintf("property %q", src.Alias))
		if err != nil {
			return err
		}

		culture = c
	}

	prop.SetValue(src.Value, culture, "")

	return nil
}

func propertyByID(props []*entity.Property, id int) *entity.Property {
	for _, p := range props {
		if p.ID == id {
			return p
		}
	}

	return nil
}

func (m *mapper) nextID() int {
	return m.svc.Identity.NextID()
}
