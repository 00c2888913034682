package maps

import (
	"fmt"

	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/editors"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

var (
	propertyBasicPair   = pairName[*entity.Property, editing.ContentPropertyBasic]()
	propertyDisplayPair = pairName[*entity.Property, editing.ContentPropertyDisplay]()
	propertyDtoPair     = pairName[*entity.Property, editing.ContentPropertyDto]()
)

func (m *mapper) registerProperties(b *mapping.Builder) {
	mapping.Define(b, func(src *entity.Property, dst *editing.ContentPropertyBasic, ctx *mapping.Context) error {
		editor := m.editorFor(ctx, src.PropertyType, propertyBasicPair)
		return mapPropertyBasic(src, dst, editor, ctx)
	})

	mapping.Define(b, m.mapPropertyDisplay)

	mapping.Define(b, func(src *entity.Property, dst *editing.ContentPropertyDto, ctx *mapping.Context) error {
		return m.mapPropertyDto(src, dst, true, ctx)
	})
}

// editorFor returns the editor of a property type. An editor that is no
// longer registered is replaced by the label editor.
func (m *mapper) editorFor(ctx *mapping.Context, pt *entity.PropertyType, pair string) *editors.Editor {
	e, suggestions, ok := m.svc.Editors.GetOrLabel(pt.PropertyEditorAlias)
	if !ok {
		ctx.Warn(diagnostic.CodeEditorMissing,
			fmt.Sprintf("property editor %q is not registered, rendering with %s", pt.PropertyEditorAlias, editors.LabelAlias),
			pair, pt.Alias, suggestions...)
	}

	return e
}

func (m *mapper) dataType(ctx *mapping.Context, pt *entity.PropertyType, pair string) *entity.DataType {
	if m.svc.DataTypes == nil {
		return nil
	}

	dt, err := m.svc.DataTypes.GetDataType(pt.DataTypeID)
	if err != nil {
		ctx.Warn(diagnostic.CodeDataTypeMissing, fmt.Sprintf("data type %d: %v", pt.DataTypeID, err), pair, pt.Alias)
		return nil
	}

	return dt
}

// propertyValue reads the value slot selected by the context. Culture
// varying properties need a culture; a missing slot reads as nil.
func propertyValue(prop *entity.Property, ctx *mapping.Context) (value any, culture, segment string, err error) {
	pt := prop.PropertyType

	if pt.VariesByCulture() {
		culture, err = ctx.RequireCulture(fmt.Sprintf("property %q", pt.Alias))
		if err != nil {
			return nil, "", "", err
		}
	}

	if pt.Variations.VariesBySegment() {
		segment = ctx.Segment()
	}

	return prop.GetValue(culture, segment, false), culture, segment, nil
}

func validation(pt *entity.PropertyType) editing.PropertyValidation {
	return editing.PropertyValidation{
		Mandatory:        pt.Mandatory,
		MandatoryMessage: pt.MandatoryMessage,
		Pattern:          pt.ValidationRegExp,
		PatternMessage:   pt.ValidationRegExpMessage,
	}
}

func mapPropertyBasic(src *entity.Property, dst *editing.ContentPropertyBasic, editor *editors.Editor, ctx *mapping.Context) error {
	value, culture, segment, err := propertyValue(src, ctx)
	if err != nil {
		return err
	}

	dst.ID = src.ID
	dst.Alias = src.Alias()
	dst.Value = value
	dst.Editor = editor.Alias
	dst.Culture = culture
	dst.Segment = segment

	return nil
}

func (m *mapper) mapPropertyDisplay(src *entity.Property, dst *editing.ContentPropertyDisplay, ctx *mapping.Context) error {
	pt := src.PropertyType
	editor := m.editorFor(ctx, pt, propertyDisplayPair)

	if err := mapPropertyBasic(src, &dst.ContentPropertyBasic, editor, ctx); err != nil {
		return err
	}

	var persisted map[string]any
	if dt := m.dataType(ctx, pt, propertyDisplayPair); dt != nil && !editor.IsLabel() {
		persisted = dt.Configuration
	}

	dst.Label = m.translate(pt.Name, ctx.Culture())
	dst.Description = m.translate(pt.Description, ctx.Culture())
	dst.View = editor.View
	dst.Config = editor.ValueEditorConfig(persisted)
	dst.HideLabel = editor.HideLabel
	dst.LabelOnTop = pt.LabelOnTop
	dst.Validation = validation(pt)

	return nil
}

// mapPropertyDto builds the persistence facing projection. When strict, an
// unregistered editor is an error instead of a label fallback.
func (m *mapper) mapPropertyDto(src *entity.Property, dst *editing.ContentPropertyDto, strict bool, ctx *mapping.Context) error {
	pt := src.PropertyType

	editor, ok := m.svc.Editors.Get(pt.PropertyEditorAlias)
	if !ok {
		if strict {
			err := fmt.Errorf("%w: %q for property %q", ErrNoPropertyEditor, pt.PropertyEditorAlias, pt.Alias)
			if suggestions := m.svc.Editors.Suggest(pt.PropertyEditorAlias); len(suggestions) > 0 {
				err = fmt.Errorf("%w (did you mean %v?)", err, suggestions)
			}

			return err
		}

		editor = m.editorFor(ctx, pt, propertyDtoPair)
	}

	value, culture, segment, err := propertyValue(src, ctx)
	if err != nil {
		return err
	}

	dst.ID = src.ID
	dst.Alias = pt.Alias
	dst.Value = value
	dst.Label = pt.Name
	dst.Description = pt.Description
	dst.DataTypeID = pt.DataTypeID
	dst.PropertyEditorAlias = editor.Alias
	dst.ValueType = editor.ValueType
	dst.Culture = culture
	dst.Segment = segment
	dst.Validation = validation(pt)

	return nil
}

// properties returns the properties of an item that pass the include list
// and carry a property type.
func properties(item *entity.ContentBase, ctx *mapping.Context) []*entity.Property {
	var result []*entity.Property

	for _, p := range item.Properties {
		if p.PropertyType == nil || !ctx.Includes(p.Alias()) {
			continue
		}

		result = append(result, p)
	}

	return result
}
