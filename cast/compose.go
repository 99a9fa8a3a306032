package cast

// Wrapped lifts c to convert a [Wrapping] of F into a [Wrapping] of T by
// converting the inner value and wrapping the result again. Nested wrappers
// convert with Wrapped(Wrapped(c)).
func Wrapped[F, T any](c Caster[F, T]) Caster[Wrapping[F], Wrapping[T]] {
	return func(w Wrapping[F]) Wrapping[T] {
		return Wrapping[T]{V: c(w.V)}
	}
}

// WrappingTo converts the value held by w with [To] and wraps the result.
func WrappingTo[T, F Number](w Wrapping[F]) Wrapping[T] {
	return Wrapped(Numeric[T, F]())(w)
}

// Slice lifts c to convert a slice element-wise. The result has the same
// length and order as the input; a nil input yields a nil result.
//
// Use the ArrayN functions when the length is known at compile time.
func Slice[F, T any](c Caster[F, T]) Caster[[]F, []T] {
	return func(in []F) []T {
		if in == nil {
			return nil
		}

		out := make([]T, 0, len(in))
		for _, v := range in {
			out = append(out, c(v))
		}

		return out
	}
}

// ToSlice converts each element of in with [To].
func ToSlice[T, F Number](in []F) []T {
	return Slice(Numeric[T, F]())(in)
}
