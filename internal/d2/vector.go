package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with both components set to s.
func Elem(s float64) r2.Vec {
	return r2.Vec{
		X: s,
		Y: s,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Clamp x between a and b lane by lane, assume a <= b.
func Clamp(x, a, b r2.Vec) r2.Vec {
	return MinElem(b, MaxElem(x, a))
}

func Max(a r2.Vec) float64 {
	return math.Max(a.X, a.Y)
}

func Min(a r2.Vec) float64 {
	return math.Min(a.X, a.Y)
}

func AbsElem(a r2.Vec) r2.Vec {
	return Map(a, math.Abs)
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

func DivElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X / b.X,
		Y: a.Y / b.Y,
	}
}

// Map applies f to both components of a.
func Map(a r2.Vec, f func(float64) float64) r2.Vec {
	return r2.Vec{X: f(a.X), Y: f(a.Y)}
}

// Map2 applies f to both pairs of components of a and b.
func Map2(a, b r2.Vec, f func(x, y float64) float64) r2.Vec {
	return r2.Vec{X: f(a.X, b.X), Y: f(a.Y, b.Y)}
}
