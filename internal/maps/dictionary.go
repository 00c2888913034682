package maps

import (
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

func (m *mapper) registerDictionary(b *mapping.Builder) {
	mapping.Define(b, m.mapDictionaryDisplay)
	mapping.Define(b, m.mapDictionaryOverview)
}

// mapDictionaryDisplay lists one translation per configured language, empty
// where the item has none.
func (m *mapper) mapDictionaryDisplay(src *entity.DictionaryItem, dst *editing.DictionaryDisplay, _ *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Udi = entity.Udi("dictionary-item", src.Key)
	dst.Name = src.ItemKey
	dst.ParentID = src.ParentID

	langs, _ := m.languages()
	dst.Translations = make([]*editing.DictionaryTranslationDisplay, 0, len(langs))

	for _, l := range langs {
		value, _ := src.Translation(l.ID)

		dst.Translations = append(dst.Translations, &editing.DictionaryTranslationDisplay{
			LanguageID:  l.ID,
			IsoCode:     l.IsoCode,
			DisplayName: l.CultureName,
			Translation: value,
		})
	}

	return nil
}

// mapDictionaryOverview flags the languages the item is translated into. The
// tree level comes from ItemDictionaryLevel.
func (m *mapper) mapDictionaryOverview(src *entity.DictionaryItem, dst *editing.DictionaryOverviewDisplay, ctx *mapping.Context) error {
	dst.ID = src.ID
	dst.Key = src.Key
	dst.Name = src.ItemKey

	if level, ok := mapping.ItemAs[int](ctx, ItemDictionaryLevel); ok {
		dst.Level = level
	}

	langs, _ := m.languages()
	dst.Translations = make([]*editing.DictionaryOverviewTranslationDisplay, 0, len(langs))

	for _, l := range langs {
		value, ok := src.Translation(l.ID)

		dst.Translations = append(dst.Translations, &editing.DictionaryOverviewTranslationDisplay{
			DisplayName:    l.CultureName,
			HasTranslation: ok && value != "",
		})
	}

	return nil
}
