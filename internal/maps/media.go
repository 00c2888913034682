package maps

import (
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// MediaFileAlias is the property holding the file of a media item.
const MediaFileAlias = "umbracoFile"

func (m *mapper) registerMedia(b *mapping.Builder) {
	mapping.Define(b, m.mapMediaDisplay)
	mapping.Define(b, m.mapMediaBasic)
}

func (m *mapper) mapMediaDisplay(src *entity.Media, dst *editing.MediaItemDisplay, ctx *mapping.Context) error {
	ct := src.ContentType

	basic, err := mapping.Map[editing.ContentTypeBasic](ctx, ct)
	if err != nil {
		return err
	}

	var startNodes []int
	if user, ok := mapping.ItemAs[*entity.User](ctx, ItemCurrentUser); ok && user != nil {
		startNodes = user.CalculateMediaStartNodeIDs()
	}

	var parent *entity.ContentBase
	if src.ParentID > 0 && m.svc.Content != nil {
		if p, err := m.svc.Content.GetMedia(src.ParentID); err == nil {
			parent = &p.ContentBase
		}
	}

	isChild, err := m.listViewChild(src.ID, parent, startNodes)
	if err != nil {
		return err
	}

	tabs, err := m.tabs(&src.ContentBase, ctx, nil)
	if err != nil {
		return err
	}

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(entity.KindMedia.ContentUdiEntityType(), src.Key)
	dst.Name = src.Name
	dst.Icon = ct.Icon
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.SortOrder = src.SortOrder
	dst.Trashed = src.Trashed
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = src.UpdateDate
	dst.Owner = m.profile(src.CreatorID)
	dst.ContentTypeID = ct.ID
	dst.ContentTypeAlias = ct.Alias
	dst.ContentTypeName = m.translate(ct.Name, ctx.Culture())
	dst.ContentType = basic
	dst.IsChildOfListView = isChild
	dst.IsContainer = ct.IsContainer
	dst.MediaLink = mediaLink(src)
	dst.Tabs = tabs

	return nil
}

// mediaLink returns the file url of a media item. Image cropper values keep
// it under "src".
func mediaLink(src *entity.Media) string {
	p := src.Property(MediaFileAlias)
	if p == nil {
		return ""
	}

	switch v := p.GetValue("", "", false).(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["src"].(string); ok {
			return s
		}
	}

	return ""
}

func (m *mapper) mapMediaBasic(src *entity.Media, dst *editing.ContentItemBasic, ctx *mapping.Context) error {
	name, err := EffectiveName(&src.ContentBase, ctx)
	if err != nil {
		return err
	}

	updated, err := EffectiveUpdateDate(&src.ContentBase, ctx)
	if err != nil {
		return err
	}

	props, err := mapping.MapSlice[*entity.Property, editing.ContentPropertyBasic](ctx, properties(&src.ContentBase, ctx))
	if err != nil {
		return err
	}

	ct := src.ContentType

	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi(entity.KindMedia.ContentUdiEntityType(), src.Key)
	dst.Name = name
	dst.Icon = ct.Icon
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.SortOrder = src.SortOrder
	dst.Trashed = src.Trashed
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = updated
	dst.Owner = m.profile(src.CreatorID)
	dst.Updater = m.profile(src.WriterID)
	dst.ContentTypeID = ct.ID
	dst.ContentTypeAlias = ct.Alias
	dst.VariesByCulture = ct.VariesByCulture()
	dst.Properties = props

	return nil
}
