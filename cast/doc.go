// Package cast converts values between Go's numeric types with the semantics
// of a native conversion, through one generic entry point per kind of value.
//
// [To] converts between any two [Number] types. Integers wrap when narrowed;
// floats truncate toward zero when converted to integers, saturating at the
// target's bounds and mapping NaN to zero. [ToBool] and [FromBool] convert
// between numbers and bool. [Wrapping] values and fixed-size arrays convert
// element by element through [Wrapped] and the ArrayN functions, which lift
// any [Caster], including one built from another lift.
//
// Every conversion is chosen by the type parameters at compile time; a pair
// of types with no conversion does not compile. Nothing here fails, allocates
// state or needs synchronization.
package cast

//go:generate go run ../cmd/castgen --out zz_generated_array.go --test-out zz_generated_array_test.go
