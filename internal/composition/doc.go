// Package composition resolves the property groups and property types a
// content type exposes once its compositions are taken into account.
//
// A content type composes zero or more other content types of the same kind,
// each of which may compose others. Resolve walks that graph and returns every
// visible group tagged as local or inherited, with same-named groups merged
// into one and their properties ordered by sort order. Properties outside any
// group end up in a synthetic generic properties group.
//
// AvailableCompositions answers which content types the editor may offer as
// new compositions of a type, and ValidateGraph orders a set of content types
// so that compositions come before the types composing them, failing with
// ErrCycle when that is impossible.
package composition
