package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestLaneOps(t *testing.T) {
	a := r2.Vec{X: 1, Y: -4}
	b := r2.Vec{X: 2, Y: -8}
	for _, test := range []struct {
		name      string
		got, want r2.Vec
	}{
		{"Elem", Elem(3), r2.Vec{X: 3, Y: 3}},
		{"MinElem", MinElem(a, b), r2.Vec{X: 1, Y: -8}},
		{"MaxElem", MaxElem(a, b), r2.Vec{X: 2, Y: -4}},
		{"AbsElem", AbsElem(a), r2.Vec{X: 1, Y: 4}},
		{"MulElem", MulElem(a, b), r2.Vec{X: 2, Y: 32}},
		{"DivElem", DivElem(a, b), r2.Vec{X: 0.5, Y: 0.5}},
		{"Clamp", Clamp(a, Elem(-2), Elem(2)), r2.Vec{X: 1, Y: -2}},
		{"Map", Map(r2.Vec{X: 1.5, Y: -0.5}, math.Floor), r2.Vec{X: 1, Y: -1}},
		{"Map2", Map2(a, b, math.Copysign), r2.Vec{X: 1, Y: -4}},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if Max(a) != 1 || Min(a) != -4 {
		t.Errorf("got max %v min %v", Max(a), Min(a))
	}
}

func TestEqualWithin(t *testing.T) {
	a := r2.Vec{X: 1, Y: 2}
	if !EqualWithin(a, r2.Add(a, Elem(1e-9)), 1e-8) {
		t.Error("expected vectors to be equal within tolerance")
	}
	if EqualWithin(a, r2.Vec{X: 1, Y: 2.1}, 1e-8) {
		t.Error("expected vectors to differ")
	}
}
