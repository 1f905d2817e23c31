// Package scalar holds the per-lane arithmetic that vector methods apply to
// each component: sign handling, Euclidean division and range limits for every
// integer width, written once over type parameters.
package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point scalar.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is any signed integer or floating point scalar.
type Signed interface {
	constraints.Signed | constraints.Float
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}

// MaxOf returns the largest value representable by the integer type T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if !IsSigned[T]() {
		return ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	one := T(1)
	return one<<(bits-1) - 1
}

// MinOf returns the smallest value representable by the integer type T.
func MinOf[T constraints.Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return ^MaxOf[T]()
}

// Abs returns the absolute value of x. The minimum value of a signed type
// wraps to itself.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns 1, -1 or 0 following the sign of x.
func Signum[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// FloatSignum returns 1 if x has a positive sign bit and -1 otherwise,
// so -0 maps to -1. NaN maps to NaN.
func FloatSignum[T constraints.Float](x T) T {
	if x != x {
		return x
	}
	return T(math.Copysign(1, float64(x)))
}

// Signbit reports whether x is negative or a negative zero.
func Signbit[T Signed](x T) bool {
	return math.Signbit(float64(x))
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[T constraints.Float](x T) bool {
	return x-x == 0
}

// DivEuclid returns the quotient q of Euclidean division such that
// a = b*q + r with 0 <= r < |b|. It panics if b is zero.
func DivEuclid[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// RemEuclid returns the least nonnegative remainder of a divided by b.
// It panics if b is zero.
func RemEuclid[T constraints.Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b < 0 {
			return r - b
		}
		return r + b
	}
	return r
}

// FloatDivEuclid is DivEuclid for floating point scalars.
func FloatDivEuclid[T constraints.Float](a, b T) T {
	q := T(math.Trunc(float64(a / b)))
	if T(math.Mod(float64(a), float64(b))) < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// FloatRemEuclid is RemEuclid for floating point scalars.
func FloatRemEuclid[T constraints.Float](a, b T) T {
	r := T(math.Mod(float64(a), float64(b)))
	if r < 0 {
		return r + T(math.Abs(float64(b)))
	}
	return r
}

// TryConvert converts x to To and reports whether the value was preserved,
// that is whether x lies within the range of To.
func TryConvert[To, From constraints.Integer](x From) (To, bool) {
	y := To(x)
	return y, From(y) == x && (x < 0) == (y < 0)
}
