package mapping

import "errors"

var (
	// ErrNoMapping is returned when no transform is registered for a type pair.
	ErrNoMapping = errors.New("no mapping registered")
	// ErrMissingCulture is returned when culture specific data is mapped without a culture.
	ErrMissingCulture = errors.New("missing culture in mapping options")
	// ErrSegmentVariationUnsupported is returned for segment variation of content variants.
	ErrSegmentVariationUnsupported = errors.New("segment variation is not supported")
	// ErrNilTarget is returned by MapInto when the destination is nil.
	ErrNilTarget = errors.New("nil mapping target")
)
