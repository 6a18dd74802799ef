package tx

import (
	goclone "github.com/huandu/go-clone"
)

// Cloner is implemented by value types that provide their own deep copy.
//
// Clone must return a copy whose mutations cannot be observed through the
// receiver: pointer, slice, and map fields have to be duplicated, not shared.
// Aliasing between the copy and the original breaks commit and rollback
// correctness. Simple value types without reference fields can return the
// receiver directly:
//
//	func (s Settings) Clone() Settings { return s }
type Cloner[T any] interface {
	Clone() T
}

// CloneFunc duplicates a value. The same independence requirement as Cloner
// applies: the result must not share mutable storage with the input.
type CloneFunc[T any] func(T) T

// resolveClone picks the duplication strategy for T: a Cloner implementation
// when present, otherwise a reflection deep copy.
func resolveClone[T any]() CloneFunc[T] {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return func(value T) T {
			return any(value).(Cloner[T]).Clone()
		}
	}

	return deepClone[T]
}

// deepClone duplicates a value via reflection, including unexported fields.
func deepClone[T any](value T) T {
	// A nil interface value has nothing to duplicate, and the type
	// assertion below would fail on the untyped nil coming back.
	if any(value) == nil {
		return value
	}

	return goclone.Clone(value).(T)
}
