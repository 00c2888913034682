package maps

import (
	"fmt"
	"slices"
	"strings"

	"cms-mapper/internal/diagnostic"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/editors"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

const macroIcon = "icon-settings-alt"

var macroDisplayPair = pairName[*entity.Macro, editing.MacroDisplay]()

func (m *mapper) registerMacros(b *mapping.Builder) {
	mapping.Define(b, m.mapMacroDisplay)
}

func (m *mapper) mapMacroDisplay(src *entity.Macro, dst *editing.MacroDisplay, ctx *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi("macro", src.Key)
	dst.Alias = src.Alias
	dst.Name = src.Name
	dst.Icon = macroIcon
	dst.View = src.Source
	dst.CachePeriod = src.CacheDuration
	dst.CacheByPage = src.CacheByPage
	dst.CacheByUser = src.CacheByMember
	dst.UseInEditor = src.UseInEditor
	dst.RenderInEditor = !src.DontRender

	props := slices.Clone(src.Properties)
	slices.SortStableFunc(props, func(a, b entity.MacroProperty) int { return a.SortOrder - b.SortOrder })

	dst.Parameters = make([]*editing.MacroParameterDisplay, 0, len(props))

	for _, p := range props {
		e, suggestions, ok := m.svc.Editors.GetOrLabel(p.EditorAlias)
		if !ok {
			ctx.Warn(diagnostic.CodeEditorMissing,
				fmt.Sprintf("parameter editor %q is not registered, rendering with %s", p.EditorAlias, editors.LabelAlias),
				macroDisplayPair, p.Alias, suggestions...)
		}

		dst.Parameters = append(dst.Parameters, &editing.MacroParameterDisplay{
			Key:       p.Alias,
			Label:     m.translate(p.Name, ctx.Culture()),
			Editor:    p.EditorAlias,
			View:      strings.TrimSpace(e.View),
			SortOrder: p.SortOrder,
		})
	}

	return nil
}
