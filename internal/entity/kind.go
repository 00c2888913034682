package entity

//go:generate go tool stringer -type=ContentKind -trimprefix=Kind -output=kind_string.go

// ContentKind is the object kind a content type (and its content) belongs to.
type ContentKind int

const (
	KindDocument ContentKind = iota
	KindMedia
	KindMember
)

// UdiEntityType returns the udi entity type of content types of this kind.
func (k ContentKind) UdiEntityType() string {
	switch k {
	case KindMedia:
		return "media-type"
	case KindMember:
		return "member-type"
	default:
		return "document-type"
	}
}

// ContentUdiEntityType returns the udi entity type of content items of this kind.
func (k ContentKind) ContentUdiEntityType() string {
	switch k {
	case KindMedia:
		return "media"
	case KindMember:
		return "member"
	default:
		return "document"
	}
}

// Variation flags how a content type or property type varies.
type Variation uint8

const (
	VaryNothing Variation = 0
	VaryCulture Variation = 1 << 0
	VarySegment Variation = 1 << 1

	VaryCultureAndSegment = VaryCulture | VarySegment
)

// VariesByCulture reports whether the culture flag is set.
func (v Variation) VariesByCulture() bool {
	return v&VaryCulture != 0
}

// VariesBySegment reports whether the segment flag is set.
func (v Variation) VariesBySegment() bool {
	return v&VarySegment != 0
}

// With returns v with flag set or cleared.
func (v Variation) With(flag Variation, on bool) Variation {
	if on {
		return v | flag
	}

	return v &^ flag
}

// String returns the variation name used in editor payloads.
func (v Variation) String() string {
	switch v {
	case VaryNothing:
		return "Nothing"
	case VaryCulture:
		return "Culture"
	case VarySegment:
		return "Segment"
	case VaryCultureAndSegment:
		return "CultureAndSegment"
	default:
		return "Unknown"
	}
}
