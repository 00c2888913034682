// Package mapping provides the registry of transform functions between
// persistence entities and editor models, and the context threaded through
// every mapping call.
//
// # Registry
//
// A Registry is a table from (source type, target type) pairs to transform
// functions. It is assembled once at startup with a Builder and is read-only
// afterwards:
//
//	b := mapping.NewBuilder()
//	mapping.Define(b, func(src *entity.Content, dst *editing.ContentItemBasic, ctx *mapping.Context) error {
//	    dst.ID = src.ID
//	    return nil
//	})
//	reg, err := b.Build()
//
// Defining the same pair twice is a Build error. Looking up a pair that was
// never defined fails with ErrNoMapping and lists the closest registered pairs.
//
// # Context
//
// Every call receives a Context carrying the current culture and segment, an
// optional list of property aliases to include, named items supplied by the
// caller (current user, parent node, schedule), a diagnostics collector and a
// logger. Child contexts created with ForCulture and ForVariant switch the
// culture while sharing everything else, so variants of one item are mapped
// consistently.
//
// Transforms that read culture specific data call RequireCulture and fail with
// ErrMissingCulture when no culture is set.
package mapping
