package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lane-wise r3.Vec routines gonum does not export. DVec3 methods
// delegate to these and to the r3 package.

// Elem returns a vector with all components set to s.
func Elem(s float64) r3.Vec {
	return r3.Vec{
		X: s,
		Y: s,
		Z: s,
	}
}

// EqualWithin reports whether every component of a and b differ by at most tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Clamp x between a and b lane by lane, assume a <= b.
func Clamp(x, a, b r3.Vec) r3.Vec {
	return MinElem(b, MaxElem(x, a))
}

// Max returns the largest component of a.
func Max(a r3.Vec) float64 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// Min returns the smallest component of a.
func Min(a r3.Vec) float64 {
	return math.Min(a.X, math.Min(a.Y, a.Z))
}

func AbsElem(a r3.Vec) r3.Vec {
	return Map(a, math.Abs)
}

func MulElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
		Z: a.Z * b.Z,
	}
}

func DivElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: a.X / b.X,
		Y: a.Y / b.Y,
		Z: a.Z / b.Z,
	}
}

// Map applies f to every component of a.
func Map(a r3.Vec, f func(float64) float64) r3.Vec {
	return r3.Vec{
		X: f(a.X),
		Y: f(a.Y),
		Z: f(a.Z),
	}
}

// Map2 applies f to every pair of components of a and b.
func Map2(a, b r3.Vec, f func(x, y float64) float64) r3.Vec {
	return r3.Vec{
		X: f(a.X, b.X),
		Y: f(a.Y, b.Y),
		Z: f(a.Z, b.Z),
	}
}
