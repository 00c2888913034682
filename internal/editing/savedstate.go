package editing

import "fmt"

//go:generate go tool stringer -type=SavedState -trimprefix=SavedState -output=savedstate_string.go

// SavedState is the derived draft/published status of a content variant.
type SavedState int

const (
	SavedStateNotCreated SavedState = iota
	SavedStateDraft
	SavedStatePublished
	SavedStatePublishedPendingChanges
)

// MarshalText encodes the state by name.
func (s SavedState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *SavedState) UnmarshalText(text []byte) error {
	for c := SavedStateNotCreated; c <= SavedStatePublishedPendingChanges; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}

	return fmt.Errorf("unknown saved state %q", text)
}
