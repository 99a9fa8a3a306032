package cast

// ToBool reports whether v is nonzero. Negative zero is false and NaN is
// true.
func ToBool[F Number](v F) bool {
	return v != 0
}

// FromBool returns 1 for true and 0 for false, in T's own representation.
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}

	return 0
}

// NumberToBool returns [ToBool] for F as a [Caster].
func NumberToBool[F Number]() Caster[F, bool] {
	return ToBool[F]
}

// BoolToNumber returns [FromBool] for T as a [Caster].
func BoolToNumber[T Number]() Caster[bool, T] {
	return FromBool[T]
}
