package mapping

import (
	"fmt"
	"reflect"
)

// Map creates a new T from src with the transform registered for the pair
// (dynamic type of src, T). A nil src maps to nil.
func Map[T any](ctx *Context, src any) (*T, error) {
	if isNil(src) {
		return nil, nil
	}

	dst := new(T)
	if err := MapInto(ctx, src, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// MapInto maps src onto an existing destination. A nil src leaves dst unchanged.
func MapInto[T any](ctx *Context, src any, dst *T) error {
	if dst == nil {
		return ErrNilTarget
	}

	if isNil(src) {
		return nil
	}

	pair := Pair{Source: reflect.TypeOf(src), Target: reflect.TypeFor[T]()}

	t, err := ctx.registry.lookup(pair)
	if err != nil {
		return err
	}

	return t.fn(src, dst, ctx)
}

// MapSlice maps every element of src, preserving order. Nil elements map to nil.
func MapSlice[S, T any](ctx *Context, src []S) ([]*T, error) {
	if src == nil {
		return nil, nil
	}

	result := make([]*T, 0, len(src))

	for i, s := range src {
		dst, err := Map[T](ctx, s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		result = append(result, dst)
	}

	return result, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
