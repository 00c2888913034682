// Package maps holds the map definitions of the back office: content, media
// and members to their editor models, content types to and from their editor
// models, and the smaller data type, user, relation, macro and dictionary
// projections.
//
// Register adds every definition to a mapping.Builder:
//
//	b := mapping.NewBuilder()
//	maps.Register(b, svc)
//	reg, err := b.Build()
//
//	ctx := reg.NewContext(mapping.WithCulture("en-US"),
//		mapping.WithItem(maps.ItemCurrentUser, user))
//	display, err := mapping.Map[editing.ContentItemDisplay](ctx, content)
//
// Culture dependent values (names, update dates, saved states, values of
// culture varying properties) need a culture in the context and fail with
// mapping.ErrMissingCulture without one. Variants are mapped with a child
// context per language.
package maps
