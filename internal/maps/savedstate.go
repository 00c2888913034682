package maps

import (
	"cms-mapper/internal/editing"
	"cms-mapper/internal/entity"
	"cms-mapper/internal/mapping"
)

// DeriveSavedState computes the state of a variant. published is set when the
// document and the variant both have a published version; edited when the
// variant has changes that are not published.
func DeriveSavedState(published, edited, hasIdentity bool) editing.SavedState {
	if !published {
		if edited && hasIdentity {
			return editing.SavedStateDraft
		}

		return editing.SavedStateNotCreated
	}

	if edited {
		return editing.SavedStatePublishedPendingChanges
	}

	return editing.SavedStatePublished
}

// contentSavedState derives the state of the context culture's variant, or
// of the invariant document.
func contentSavedState(c *entity.Content, ctx *mapping.Context) (editing.SavedState, error) {
	if !c.ContentType.VariesByCulture() {
		return DeriveSavedState(c.Published, c.Edited, c.HasIdentity()), nil
	}

	culture, err := ctx.RequireCulture("saved state of " + c.ContentType.Alias)
	if err != nil {
		return editing.SavedStateNotCreated, err
	}

	published := c.Published && c.IsCulturePublished(culture)
	created := c.HasIdentity() && c.IsCultureAvailable(culture)

	return DeriveSavedState(published, c.IsCultureEdited(culture), created), nil
}
