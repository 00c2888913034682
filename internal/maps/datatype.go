package maps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/editors"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

var (
	dataTypeDisplayPair = pairName[*entity.DataType, editing.DataTypeDisplay]()
	dataTypeSavePair    = pairName[*editing.DataTypeSave, entity.DataType]()
)

func (m *mapper) registerDataTypes(b *mapping.Builder) {
	mapping.Define(b, m.mapDataTypeBasic)
	mapping.Define(b, m.mapDataTypeDisplay)
	mapping.Define(b, m.mapDataTypeSave)
	mapping.Define(b, func(src *editors.Editor, dst *editing.PropertyEditorBasic, _ *mapping.Context) error {
		*dst = *editorBasic(src)
		return nil
	})
}

func editorBasic(e *editors.Editor) *editing.PropertyEditorBasic {
	return &editing.PropertyEditorBasic{Alias: e.Alias, Name: e.Name, Icon: e.Icon, Group: e.Group}
}

func (m *mapper) mapDataTypeBasic(src *entity.DataType, dst *editing.DataTypeBasic, _ *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi("data-type", src.Key)
	dst.Name = src.Name
	dst.Alias = src.EditorAlias
	dst.ParentID = src.ParentID
	dst.Path = src.Path
	dst.Trashed = src.Trashed
	dst.IsSystemDataType = src.ID < 0

	if e, ok := m.svc.Editors.Get(src.EditorAlias); ok {
		dst.Icon = e.Icon
		dst.Group = e.Group
	}

	return nil
}

// mapDataTypeDisplay renders the configuration fields of the data type's
// editor with their persisted values.
func (m *mapper) mapDataTypeDisplay(src *entity.DataType, dst *editing.DataTypeDisplay, ctx *mapping.Context) error {
	if err := m.mapDataTypeBasic(src, &dst.DataTypeBasic, ctx); err != nil {
		return err
	}

	editor, suggestions, ok := m.svc.Editors.GetOrLabel(src.EditorAlias)
	if !ok {
		ctx.Warn(diagnostic.CodeEditorMissing,
			fmt.Sprintf("property editor %q is not registered, showing %s", src.EditorAlias, editors.LabelAlias),
			dataTypeDisplayPair, src.Name, suggestions...)
	}

	dst.SelectedEditor = editor.Alias

	all := m.svc.Editors.All()
	dst.AvailableEditors = make([]*editing.PropertyEditorBasic, 0, len(all))

	for _, e := range all {
		dst.AvailableEditors = append(dst.AvailableEditors, editorBasic(e))
	}

	dst.PreValues = make([]*editing.DataTypeConfigurationFieldDisplay, 0, len(editor.ConfigFields))

	for _, f := range editor.ConfigFields {
		value, found := src.Configuration[f.Key]
		if !found {
			ctx.Warn(diagnostic.CodeConfigValueMissing,
				fmt.Sprintf("no value for configuration field %q", f.Key), dataTypeDisplayPair, f.Key)
		}

		dst.PreValues = append(dst.PreValues, &editing.DataTypeConfigurationFieldDisplay{
			Key:         f.Key,
			Name:        m.translate(f.Name, ctx.Culture()),
			Description: m.translate(f.Description, ctx.Culture()),
			View:        f.View,
			HideLabel:   f.HideLabel,
			Config:      f.Config,
			Value:       value,
		})
	}

	dst.HasPrevalues = len(dst.PreValues) > 0

	return nil
}

// mapDataTypeSave applies a posted data type. Configuration keys the editor
// does not declare are dropped.
func (m *mapper) mapDataTypeSave(src *editing.DataTypeSave, dst *entity.DataType, ctx *mapping.Context) error {
	editor, ok := m.svc.Editors.Get(src.EditorAlias)
	if !ok {
		suggestions := m.svc.Editors.Suggest(src.EditorAlias)

		err := fmt.Errorf("%w: %q", ErrNoPropertyEditor, src.EditorAlias)
		if len(suggestions) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
		}

		return err
	}

	if src.ID > 0 {
		dst.ID = src.ID
	} else if dst.ID == 0 {
		dst.ID = m.nextID()
	}

	if dst.Key == uuid.Nil {
		dst.Key = uuid.New()
	}

	dst.Name = src.Name
	dst.ParentID = src.ParentID
	dst.EditorAlias = editor.Alias
	dst.DatabaseType = editor.StorageType()

	config := make(map[string]any, len(src.ConfigurationFields))

	for _, f := range src.ConfigurationFields {
		if _, known := editor.ConfigField(f.Key); !known {
			ctx.Logger().Debug("dropping unknown configuration field",
				zap.String("pair", dataTypeSavePair), zap.String("key", f.Key))
			continue
		}

		config[f.Key] = f.Value
	}

	dst.Configuration = config

	return nil
}
