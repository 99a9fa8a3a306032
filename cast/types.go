package cast

import "golang.org/x/exp/constraints"

// Signed is an alias for [constraints.Signed].
type Signed = constraints.Signed

// Unsigned is an alias for [constraints.Unsigned]. It includes uintptr.
type Unsigned = constraints.Unsigned

// Integer is an alias for [constraints.Integer].
type Integer = constraints.Integer

// Float is an alias for [constraints.Float].
type Float = constraints.Float

// Number is a constraint that matches every type [To] can convert from or
// to: all signed and unsigned integers (including platform-sized int, uint
// and uintptr) and both floating-point widths.
type Number interface {
	Integer | Float
}

// Caster converts a value of type F into a value of type T.
//
// A Caster is a conversion edge. Edges are built from [Numeric], [Bool] and
// [FromBoolean], and lifted over composite types with [Wrapped], [Slice] and
// the ArrayN functions.
type Caster[F, T any] func(F) T

// Cast applies c to v.
func (c Caster[F, T]) Cast(v F) T {
	return c(v)
}

// Wrapping is a transparent single-field container, used for values whose
// arithmetic is expected to wrap on overflow. It converts to another
// Wrapping whenever its inner type does.
type Wrapping[T any] struct {
	V T
}

// Wrap returns v as a Wrapping.
func Wrap[T any](v T) Wrapping[T] {
	return Wrapping[T]{V: v}
}

// Get returns the wrapped value.
func (w Wrapping[T]) Get() T {
	return w.V
}
