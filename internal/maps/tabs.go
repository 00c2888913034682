package maps

import (
	"cms-mapper/internal/common"
	"cms-mapper/internal/composition"
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// decorator adjusts a rendered property, for instance to hide sensitive data.
type decorator func(p *composition.Property, d *editing.ContentPropertyDisplay)

// tabs assembles the tabs of an item: one tab per distinct group name of its
// content type, inherited groups merged in, properties by sort order, and a
// generic properties tab last. Tabs without a visible property are left out
// and the first tab is active.
func (m *mapper) tabs(item *entity.ContentBase, ctx *mapping.Context, decorate decorator) ([]*editing.Tab, error) {
	res, err := composition.Resolve(item.ContentType)
	if err != nil {
		return nil, err
	}

	var result []*editing.Tab

	for _, g := range res.Groups {
		var props []*editing.ContentPropertyDisplay

		for _, p := range g.Properties {
			if !ctx.Includes(p.Type.Alias) {
				continue
			}

			prop := item.Property(p.Type.Alias)
			if prop == nil {
				prop = &entity.Property{PropertyType: p.Type}
			}

			d, err := mapping.Map[editing.ContentPropertyDisplay](ctx, prop)
			if err != nil {
				return nil, err
			}

			if decorate != nil {
				decorate(p, d)
			}

			props = append(props, d)
		}

		if len(props) == 0 {
			continue
		}

		result = append(result, &editing.Tab{
			ID:         g.ID,
			Key:        g.Key,
			Alias:      g.Alias,
			Label:      m.translate(g.Name, ctx.Culture()),
			Type:       g.Type.String(),
			Properties: props,
		})
	}

	if first, ok := common.First(result); ok {
		first.IsActive = true
	}

	return result, nil
}
