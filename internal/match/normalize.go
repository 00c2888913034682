package match

import (
	"strings"
	"unicode"
)

// vendorPrefix is dropped by StripVendor.
const vendorPrefix = "umbraco"

// FoldAlias reduces an alias to its lower-cased letters and digits.
// "Umbraco.MediaPicker3", "umbraco_media-picker3" and "UMBRACO MEDIAPICKER3"
// all fold to "umbracomediapicker3".
func FoldAlias(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// StripVendor folds s and removes the vendor prefix, so that
// "Umbraco.TextBox" and "textbox" compare equal. A bare prefix is kept.
func StripVendor(s string) string {
	folded := FoldAlias(s)

	if rest, ok := strings.CutPrefix(folded, vendorPrefix); ok && rest != "" {
		return rest
	}

	return folded
}
