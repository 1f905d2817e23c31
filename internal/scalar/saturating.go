package scalar

import "golang.org/x/exp/constraints"

// Saturating operations clamp the result to the range of T instead of
// wrapping around. For example, with uint8: 250 + 10 = 255 (not 4).

// SaturatingAdd returns a+b clamped to the range of T.
func SaturatingAdd[T constraints.Integer](a, b T) T {
	s := a + b
	if !IsSigned[T]() {
		if s < a {
			return MaxOf[T]()
		}
		return s
	}
	switch {
	case b > 0 && s < a:
		return MaxOf[T]()
	case b < 0 && s > a:
		return MinOf[T]()
	}
	return s
}

// SaturatingSub returns a-b clamped to the range of T.
func SaturatingSub[T constraints.Integer](a, b T) T {
	if !IsSigned[T]() {
		if b > a {
			return 0
		}
		return a - b
	}
	s := a - b
	switch {
	case b < 0 && s < a:
		return MaxOf[T]()
	case b > 0 && s > a:
		return MinOf[T]()
	}
	return s
}

// SaturatingMul returns a*b clamped to the range of T.
func SaturatingMul[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	overflow := p/b != a
	if IsSigned[T]() {
		lo := MinOf[T]()
		var negOne T
		negOne--
		overflow = overflow || (a == lo && b == negOne) || (b == lo && a == negOne)
	}
	if !overflow {
		return p
	}
	if (a < 0) != (b < 0) {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// SaturatingDiv returns a/b. The only overflowing case, the minimum signed
// value divided by -1, yields the maximum value. It panics if b is zero.
func SaturatingDiv[T constraints.Integer](a, b T) T {
	if IsSigned[T]() {
		var negOne T
		negOne--
		if a == MinOf[T]() && b == negOne {
			return MaxOf[T]()
		}
	}
	return a / b
}
