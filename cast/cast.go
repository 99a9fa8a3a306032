package cast

import (
	"math"
	"unsafe"
)

// To converts v to type T with the semantics of a native numeric cast.
//
// Integer to integer conversions sign- or zero-extend when widening and keep
// the low-order bits when narrowing. Integer to float and float to float
// conversions round to the nearest representable value. Float to integer
// conversions truncate toward zero; NaN becomes 0 and values outside the
// range of T saturate to the nearest bound (see [Limits]).
//
// Every ordered pair of [Number] types is supported; any other pair fails to
// compile.
func To[T, F Number](v F) T {
	if isFloat[F]() && !isFloat[T]() {
		return saturate[T](float64(v))
	}

	return T(v)
}

// Numeric returns [To] for the pair (F, T) as a [Caster].
func Numeric[T, F Number]() Caster[F, T] {
	return To[T, F]
}

// Limits returns the smallest and largest values representable by the
// integer type T.
func Limits[T Integer]() (lo, hi T) {
	return intLimits[T]()
}

// intLimits is [Limits] for callers that only know T is a [Number]. It must
// not be called with a float type.
func intLimits[T Number]() (lo, hi T) {
	var zero T
	shift := 64 - 8*unsafe.Sizeof(zero)

	if zero-1 < zero {
		return T(int64(math.MinInt64) >> shift), T(int64(math.MaxInt64) >> shift)
	}

	return zero, T(uint64(math.MaxUint64) >> shift)
}

// saturate truncates f toward zero into the integer type T, clamping to the
// bounds of T and mapping NaN to zero.
func saturate[T Number](f float64) T {
	lo, hi := intLimits[T]()

	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}

	return T(f)
}

// isFloat reports whether T is a floating-point type, by checking whether
// it can hold a fractional value.
func isFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}
