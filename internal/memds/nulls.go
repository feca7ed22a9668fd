package memds

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// A NullPredicate reports whether a value is absent ("no data yet") for the purpose of merging.
type NullPredicate[T any] func(v T) bool

// IsNil is the default null predicate: nil interfaces, pointers, maps, slices, channels and functions
// are null. Values of non-nillable types are never null.
func IsNil[T any](v T) bool {
	val := reflect.ValueOf(any(v))
	if !val.IsValid() {
		return true
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	}
	return false
}

// NullValues returns a predicate that treats the listed sentinels as null.
func NullValues[T comparable](sentinels ...T) NullPredicate[T] {
	sentinels = slices.Clone(sentinels)

	return func(v T) bool {
		return slices.Contains(sentinels, v)
	}
}

func NullIfZero[T comparable]() NullPredicate[T] {
	return func(v T) bool {
		var zero T
		return v == zero
	}
}

// AnyNull returns the union of predicates.
func AnyNull[T any](predicates ...NullPredicate[T]) NullPredicate[T] {
	return func(v T) bool {
		for _, isNull := range predicates {
			if isNull(v) {
				return true
			}
		}
		return false
	}
}
