package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLaneOps(t *testing.T) {
	a := r3.Vec{X: 1, Y: -4, Z: 2.5}
	b := r3.Vec{X: 2, Y: -8, Z: -1}
	for _, test := range []struct {
		name      string
		got, want r3.Vec
	}{
		{"Elem", Elem(3), r3.Vec{X: 3, Y: 3, Z: 3}},
		{"MinElem", MinElem(a, b), r3.Vec{X: 1, Y: -8, Z: -1}},
		{"MaxElem", MaxElem(a, b), r3.Vec{X: 2, Y: -4, Z: 2.5}},
		{"AbsElem", AbsElem(a), r3.Vec{X: 1, Y: 4, Z: 2.5}},
		{"MulElem", MulElem(a, b), r3.Vec{X: 2, Y: 32, Z: -2.5}},
		{"DivElem", DivElem(a, b), r3.Vec{X: 0.5, Y: 0.5, Z: -2.5}},
		{"Clamp", Clamp(a, Elem(-2), Elem(2)), r3.Vec{X: 1, Y: -2, Z: 2}},
		{"Map", Map(a, math.Floor), r3.Vec{X: 1, Y: -4, Z: 2}},
		{"Map2", Map2(a, b, math.Copysign), r3.Vec{X: 1, Y: -4, Z: -2.5}},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if Max(a) != 2.5 || Min(a) != -4 {
		t.Errorf("got max %v min %v", Max(a), Min(a))
	}
}

func TestEqualWithin(t *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 3}
	if !EqualWithin(a, r3.Add(a, Elem(1e-9)), 1e-8) {
		t.Error("expected vectors to be equal within tolerance")
	}
	if EqualWithin(a, r3.Vec{X: 1, Y: 2, Z: 3.1}, 1e-8) {
		t.Error("expected vectors to differ")
	}
}
