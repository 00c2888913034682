package composition

import "errors"

var (
	// ErrUntraceable is returned when a group or property type belongs to no member of the composition graph.
	ErrUntraceable = errors.New("not traceable to any composition")
	// ErrCycle is returned when content types compose each other.
	ErrCycle = errors.New("composition cycle detected")
)
