package maps

import (
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

func (m *mapper) registerRelations(b *mapping.Builder) {
	mapping.Define(b, m.mapRelationDisplay)
	mapping.Define(b, m.mapRelationTypeDisplay)
}

func (m *mapper) mapRelationTypeDisplay(src *entity.RelationType, dst *editing.RelationTypeDisplay, ctx *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi("relation-type", src.Key)
	dst.Alias = src.Alias
	dst.Name = src.Name
	dst.IsBidirectional = src.IsBidirectional
	dst.IsDependency = src.IsDependency
	dst.ParentObjectType = src.ParentObjectType.String()
	dst.ChildObjectType = src.ChildObjectType.String()
	dst.ParentObjectTypeName = m.objectTypeName(src.ParentObjectType, ctx)
	dst.ChildObjectTypeName = m.objectTypeName(src.ChildObjectType, ctx)

	return nil
}

func (m *mapper) objectTypeName(kind entity.ContentKind, ctx *mapping.Context) string {
	return m.localize("relationType", kind.ContentUdiEntityType(), ctx.Culture())
}

// mapRelationDisplay resolves the names of both ends through the service
// matching the relation type's object types. An end that cannot be resolved
// keeps an empty name.
func (m *mapper) mapRelationDisplay(src *entity.Relation, dst *editing.RelationDisplay, _ *mapping.Context) error {
	dst.ParentID = src.ParentID
	dst.ChildID = src.ChildID
	dst.CreateDate = src.CreateDate
	dst.Comment = src.Comment

	parentKind, childKind := entity.KindDocument, entity.KindDocument
	if src.Type != nil {
		parentKind, childKind = src.Type.ParentObjectType, src.Type.ChildObjectType
	}

	dst.ParentName = m.itemName(parentKind, src.ParentID)
	dst.ChildName = m.itemName(childKind, src.ChildID)

	return nil
}

func (m *mapper) itemName(kind entity.ContentKind, id int) string {
	if m.svc.Content == nil {
		return ""
	}

	switch kind {
	case entity.KindMedia:
		if media, err := m.svc.Content.GetMedia(id); err == nil {
			return media.Name
		}
	case entity.KindDocument:
		if content, err := m.svc.Content.GetContent(id); err == nil {
			return content.Name
		}
	}

	return ""
}
