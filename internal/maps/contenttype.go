package maps

import (
	"slices"
	"sort"

	"cms-mapper/internal/composition"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// ListViewPrefix prefixes the names of list view data types.
const ListViewPrefix = "List View - "

// systemMediaTypes are the media type aliases installed with the system.
var systemMediaTypes = []string{
	"Folder", "Image", "File",
	"umbracoMediaVideo", "umbracoMediaAudio", "umbracoMediaArticle", "umbracoMediaVectorGraphics",
}

var contentTypeDisplayPair = pairName[*entity.ContentType, editing.DocumentTypeDisplay]()

func (m *mapper) registerContentTypes(b *mapping.Builder) {
	mapping.Define(b, m.mapContentTypeBasic)
	mapping.Define(b, m.mapDocumentTypeDisplay)
	mapping.Define(b, m.mapMediaTypeDisplay)
	mapping.Define(b, m.mapMemberTypeDisplay)
	mapping.Define(b, mapAvailableComposition)
	mapping.Define(b, func(src *entity.Template, dst *editing.EntityBasic, _ *mapping.Context) error {
		*dst = *templateEntity(src)
		return nil
	})
}

func (m *mapper) mapContentTypeBasic(src *entity.ContentType, dst *editing.ContentTypeBasic, _ *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(src.Kind.UdiEntityType(), src.Key)
	dst.Alias = src.Alias
	dst.Name = src.Name
	dst.Description = src.Description
	dst.Icon = src.Icon
	dst.Thumbnail = src.Thumbnail
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.Trashed = src.Trashed
	dst.IsContainer = src.IsContainer
	dst.IsElement = src.IsElement
	dst.Variations = src.Variations.String()
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = src.UpdateDate
	dst.IconFilePath = m.iconFilePath(dst)
	dst.ThumbnailFilePath = m.thumbnailFilePath(dst)

	return nil
}

func (m *mapper) mapCompositionDisplay(src *entity.ContentType, dst *editing.ContentTypeCompositionDisplay, ctx *mapping.Context) error {
	if err := m.mapContentTypeBasic(src, &dst.ContentTypeBasic, ctx); err != nil {
		return err
	}

	groups, err := m.groupDisplays(src, ctx)
	if err != nil {
		return err
	}

	locked, err := m.lockedCompositions(src)
	if err != nil {
		return err
	}

	allowed := slices.Clone(src.AllowedContentTypes)
	sort.SliceStable(allowed, func(i, j int) bool { return allowed[i].SortOrder < allowed[j].SortOrder })

	dst.AllowedContentTypes = make([]int, 0, len(allowed))
	for _, a := range allowed {
		dst.AllowedContentTypes = append(dst.AllowedContentTypes, a.ID)
	}

	dst.AllowAsRoot = src.AllowedAsRoot
	dst.AllowCultureVariant = src.VariesByCulture()
	dst.AllowSegmentVariant = src.VariesBySegment()
	dst.CompositeContentTypes = src.CompositionAliases()
	dst.LockedCompositeContentTypes = locked
	dst.Groups = groups

	return nil
}

// groupDisplays renders the resolved groups of a content type, inherited ones
// merged in, generic properties last.
func (m *mapper) groupDisplays(src *entity.ContentType, ctx *mapping.Context) ([]*editing.PropertyGroupDisplay, error) {
	res, err := composition.Resolve(src)
	if err != nil {
		return nil, err
	}

	result := make([]*editing.PropertyGroupDisplay, 0, len(res.Groups))

	for _, g := range res.Groups {
		gd := &editing.PropertyGroupDisplay{
			ID:                        g.ID,
			Key:                       g.Key,
			Alias:                     g.Alias,
			Name:                      g.Name,
			Type:                      g.Type.String(),
			SortOrder:                 g.SortOrder,
			Inherited:                 g.Inherited,
			ContentTypeID:             g.ContentTypeID,
			ParentTabContentTypes:     make([]int, 0, len(g.DefinedBy)),
			ParentTabContentTypeNames: make([]string, 0, len(g.DefinedBy)),
			IsGenericProperties:       g.IsGeneric,
			Properties:                make([]*editing.PropertyTypeDisplay, 0, len(g.Properties)),
		}

		for _, d := range g.DefinedBy {
			gd.ParentTabContentTypes = append(gd.ParentTabContentTypes, d.ID)
			gd.ParentTabContentTypeNames = append(gd.ParentTabContentTypeNames, d.Name)
		}

		for _, p := range g.Properties {
			gd.Properties = append(gd.Properties, m.propertyTypeDisplay(src, g, p, ctx))
		}

		result = append(result, gd)
	}

	return result, nil
}

func (m *mapper) propertyTypeDisplay(ct *entity.ContentType, g *composition.Group, p *composition.Property, ctx *mapping.Context) *editing.PropertyTypeDisplay {
	pt := p.Type
	editor := m.editorFor(ctx, pt, contentTypeDisplayPair)

	d := &editing.PropertyTypeDisplay{
		ID:                  pt.ID,
		Key:                 pt.Key,
		Alias:               pt.Alias,
		Label:               pt.Name,
		Description:         pt.Description,
		DataTypeID:          pt.DataTypeID,
		DataTypeKey:         pt.DataTypeKey,
		Editor:              editor.Alias,
		View:                editor.View,
		Validation:          validation(pt),
		SortOrder:           pt.SortOrder,
		GroupID:             g.ID,
		Inherited:           p.Inherited,
		ContentTypeID:       p.Owner.ID,
		ContentTypeName:     p.Owner.Name,
		AllowCultureVariant: pt.VariesByCulture(),
		AllowSegmentVariant: pt.Variations.VariesBySegment(),
		LabelOnTop:          pt.LabelOnTop,
	}

	var persisted map[string]any

	if dt := m.dataType(ctx, pt, contentTypeDisplayPair); dt != nil {
		d.DataTypeName = dt.Name
		d.DataTypeKey = dt.Key

		if !editor.IsLabel() {
			persisted = dt.Configuration
		}
	}

	d.Config = editor.ValueEditorConfig(persisted)

	if ct.Kind == entity.KindMember {
		access := p.Owner.MemberAccess[pt.Alias]
		d.MemberCanEditProperty = access.CanEdit
		d.MemberCanViewProperty = access.CanView
		d.IsSensitiveData = access.Sensitive
	}

	return d
}

// lockedCompositions returns the aliases of the content types above src in
// the content type tree, sorted. Those cannot be removed as compositions.
func (m *mapper) lockedCompositions(src *entity.ContentType) ([]string, error) {
	locked := []string{}

	if src.ParentID <= 0 || m.svc.ContentTypes == nil {
		return locked, nil
	}

	parent, err := m.svc.ContentTypes.GetContentType(src.ParentID)
	if notFound(err) {
		return locked, nil
	}

	if err != nil {
		return nil, err
	}

	all, err := m.svc.ContentTypes.GetAllContentTypes(src.Kind)
	if err != nil {
		return nil, err
	}

	for _, id := range entity.PathIDs(parent.Path) {
		for _, ct := range all {
			if ct.ID == id && ct.Alias != "" {
				locked = append(locked, ct.Alias)
				break
			}
		}
	}

	sort.Strings(locked)

	return locked, nil
}

// listViewEditorName returns the list view data type of a type: the one named
// after key when it exists, else the fallback.
func (m *mapper) listViewEditorName(key, fallback string) string {
	if key == "" || m.svc.DataTypes == nil {
		return ListViewPrefix + fallback
	}

	if _, err := m.svc.DataTypes.GetDataTypeByName(ListViewPrefix + key); err == nil {
		return ListViewPrefix + key
	}

	return ListViewPrefix + fallback
}

func (m *mapper) mapDocumentTypeDisplay(src *entity.ContentType, dst *editing.DocumentTypeDisplay, ctx *mapping.Context) error {
	if err := m.mapCompositionDisplay(src, &dst.ContentTypeCompositionDisplay, ctx); err != nil {
		return err
	}

	templates, err := mapping.MapSlice[*entity.Template, editing.EntityBasic](ctx, src.AllowedTemplates)
	if err != nil {
		return err
	}

	if templates == nil {
		templates = []*editing.EntityBasic{}
	}

	dst.AllowedTemplates = templates
	dst.DefaultTemplate = templateEntity(src.DefaultTemplate)
	dst.ListViewEditorName = m.listViewEditorName(src.Alias, "Content")

	return nil
}

func (m *mapper) mapMediaTypeDisplay(src *entity.ContentType, dst *editing.MediaTypeDisplay, ctx *mapping.Context) error {
	if err := m.mapCompositionDisplay(src, &dst.ContentTypeCompositionDisplay, ctx); err != nil {
		return err
	}

	dst.ListViewEditorName = m.listViewEditorName(src.Name, "Media")
	dst.IsSystemMediaType = slices.Contains(systemMediaTypes, src.Alias)

	return nil
}

func (m *mapper) mapMemberTypeDisplay(src *entity.ContentType, dst *editing.MemberTypeDisplay, ctx *mapping.Context) error {
	return m.mapCompositionDisplay(src, &dst.ContentTypeCompositionDisplay, ctx)
}

func mapAvailableComposition(src composition.Candidate, dst *editing.AvailableComposition, _ *mapping.Context) error {
	ct := src.ContentType

	dst.Allowed = src.Allowed
	dst.Composition = &editing.EntityBasic{
		ID:       ct.ID,
		Key:      ct.Key,
		Udi:      entity.Udi(ct.Kind.UdiEntityType(), ct.Key),
		Name:     ct.Name,
		Alias:    ct.Alias,
		Icon:     ct.Icon,
		ParentID: ct.ParentID,
		Path:     ct.Path,
		Trashed:  ct.Trashed,
		AdditionalData: map[string]any{
			"selected": src.Selected,
		},
	}

	return nil
}
