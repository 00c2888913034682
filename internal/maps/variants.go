package maps

import (
	"fmt"
	"slices"
	"strings"

	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// ActionBrowse is the permission letter of browsing a node.
const ActionBrowse = "F"

func (m *mapper) mapVariant(src *entity.Content, dst *editing.ContentVariantDisplay, ctx *mapping.Context) error {
	state, err := contentSavedState(src, ctx)
	if err != nil {
		return err
	}

	updated, err := EffectiveUpdateDate(&src.ContentBase, ctx)
	if err != nil {
		return err
	}

	tabs, err := m.tabs(&src.ContentBase, ctx, nil)
	if err != nil {
		return err
	}

	dst.Name = src.Name
	if src.ContentType.VariesByCulture() {
		dst.Name, _ = src.CultureName(ctx.Culture())
	}

	dst.Segment = ctx.Segment()
	dst.State = state
	dst.CreateDate = src.CreateDate
	dst.UpdateDate = updated
	dst.PublishDate = src.PublishDate
	dst.Tabs = tabs
	dst.AllowedActions = []string{ActionBrowse}

	return nil
}

// mapVariants maps one V per language for culture varying content, or a
// single invariant V. Segment variation is not supported.
func mapVariants[V any](m *mapper, c *entity.Content, ctx *mapping.Context, base func(*V) *editing.ContentVariantDisplay) ([]*V, error) {
	ct := c.ContentType

	if ct.VariesBySegment() {
		return nil, fmt.Errorf("%w: content type %q", mapping.ErrSegmentVariationUnsupported, ct.Alias)
	}

	if !ct.VariesByCulture() {
		v, err := mapping.Map[V](ctx.ForVariant("", ""), c)
		if err != nil {
			return nil, err
		}

		base(v).DisplayName = c.Name

		return []*V{v}, nil
	}

	languages, def := m.languages()
	result := make([]*V, 0, len(languages))

	for _, l := range languages {
		v, err := mapping.Map[V](ctx.ForVariant(l.IsoCode, ""), c)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", l.IsoCode, err)
		}

		d := base(v)
		d.Language = languageDisplay(l)
		d.DisplayName = l.CultureName

		if d.DisplayName == "" {
			d.DisplayName = l.IsoCode
		}

		result = append(result, v)
	}

	sortVariants(result, base, def)

	return result, nil
}

// SortVariants puts the default language variant first and orders the
// others by display name.
func SortVariants(variants []*editing.ContentVariantDisplay, defaultIsoCode string) {
	sortVariants(variants, func(v *editing.ContentVariantDisplay) *editing.ContentVariantDisplay { return v }, defaultIsoCode)
}

func sortVariants[V any](variants []*V, base func(*V) *editing.ContentVariantDisplay, defaultIsoCode string) {
	isDefault := func(d *editing.ContentVariantDisplay) bool {
		if d.Language == nil {
			return false
		}

		return d.Language.IsDefault || (defaultIsoCode != "" && strings.EqualFold(d.Language.IsoCode, defaultIsoCode))
	}

	slices.SortStableFunc(variants, func(a, b *V) int {
		da, db := base(a), base(b)

		switch ia, ib := isDefault(da), isDefault(db); {
		case ia && !ib:
			return -1
		case ib && !ia:
			return 1
		}

		if c := strings.Compare(strings.ToLower(da.DisplayName), strings.ToLower(db.DisplayName)); c != 0 {
			return c
		}

		return strings.Compare(da.DisplayName, db.DisplayName)
	})
}
