package mapping

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"cms-mapper/internal/match"
)

const maxPairSuggestions = 3

// Pair identifies a transform by its source and target types.
type Pair struct {
	Source reflect.Type
	Target reflect.Type
}

// PairOf returns the pair of the static types S and T.
func PairOf[S, T any]() Pair {
	return Pair{Source: reflect.TypeFor[S](), Target: reflect.TypeFor[T]()}
}

// String returns "source -> target".
func (p Pair) String() string {
	return typeName(p.Source) + " -> " + typeName(p.Target)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

type transform struct {
	pair Pair
	fn   func(src, dst any, ctx *Context) error
}

// Builder collects transform definitions before the registry is frozen.
type Builder struct {
	transforms []*transform
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Define registers fn as the transform from S to T.
func Define[S, T any](b *Builder, fn func(src S, dst *T, ctx *Context) error) {
	pair := PairOf[S, T]()

	b.transforms = append(b.transforms, &transform{
		pair: pair,
		fn: func(src, dst any, ctx *Context) error {
			return fn(src.(S), dst.(*T), ctx)
		},
	})
}

// Build freezes the definitions into a Registry. A pair defined more than
// once is an error.
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{transforms: make(map[Pair]*transform, len(b.transforms))}

	var errs []error

	for _, t := range b.transforms {
		if _, exists := reg.transforms[t.pair]; exists {
			errs = append(errs, fmt.Errorf("mapping %s defined more than once", t.pair))
			continue
		}

		reg.transforms[t.pair] = t
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return reg, nil
}

// Registry holds the transforms by type pair. It is read-only once built and
// safe for concurrent use.
type Registry struct {
	transforms map[Pair]*transform
}

// Has returns true if a transform exists for the pair.
func (r *Registry) Has(pair Pair) bool {
	_, exists := r.transforms[pair]
	return exists
}

// Registered reports whether the registry can map S to T.
func Registered[S, T any](r *Registry) bool {
	return r.Has(PairOf[S, T]())
}

// Len returns the number of registered transforms.
func (r *Registry) Len() int {
	return len(r.transforms)
}

// Pairs returns the names of all registered pairs, sorted.
func (r *Registry) Pairs() []string {
	names := make([]string, 0, len(r.transforms))
	for pair := range r.transforms {
		names = append(names, pair.String())
	}

	sort.Strings(names)

	return names
}

func (r *Registry) lookup(pair Pair) (*transform, error) {
	t, ok := r.transforms[pair]
	if ok {
		return t, nil
	}

	err := fmt.Errorf("%w: %s", ErrNoMapping, pair)
	if suggestions := match.Suggest(pair.String(), r.Pairs(), maxPairSuggestions); len(suggestions) > 0 {
		err = fmt.Errorf("%w (did you mean %v?)", err, suggestions)
	}

	return nil, err
}
