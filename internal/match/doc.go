// Package match backs the "did you mean" hints attached to lookups that fail
// by name: an unregistered source/target pair, a property editor alias that
// is no longer registered, a property alias the content type does not define.
//
// Aliases are folded (FoldAlias, StripVendor) and compared by Levenshtein
// similarity; Suggest returns the closest known names.
package match
