package maps

import (
	"time"

	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// EffectiveUpdateDate returns the update date of the context culture. An
// invariant item has a single date; a culture without a date of its own
// falls back to the item's date.
func EffectiveUpdateDate(item *entity.ContentBase, ctx *mapping.Context) (time.Time, error) {
	if item.ContentType == nil || !item.ContentType.VariesByCulture() {
		return item.UpdateDate, nil
	}

	culture, err := ctx.RequireCulture("update date of " + item.ContentType.Alias)
	if err != nil {
		return time.Time{}, err
	}

	if date, ok := item.CultureUpdateDate(culture); ok {
		return date, nil
	}

	return item.UpdateDate, nil
}

// EffectiveName returns the name of the context culture. A culture without a
// name of its own shows the item name in parentheses.
func EffectiveName(item *entity.ContentBase, ctx *mapping.Context) (string, error) {
	if item.ContentType == nil || !item.ContentType.VariesByCulture() {
		return item.Name, nil
	}

	culture, err := ctx.RequireCulture("name of " + item.ContentType.Alias)
	if err != nil {
		return "", err
	}

	if item.IsCultureAvailable(culture) {
		name, _ := item.CultureName(culture)
		return name, nil
	}

	return "(" + item.Name + ")", nil
}
