package gvec

import (
	"testing"

	"github.com/soypat/gvec/vec"
)

func TestSum(t *testing.T) {
	same(t, "Sum", Sum(vec.NewIVec3(1, 2, 3), vec.NewIVec3(-4, 5, 0)), vec.NewIVec3(-3, 7, 3))
	same(t, "Sum empty", Sum[vec.Vec2](), vec.Vec2{})
	// Lanes wrap like the scalar type.
	same(t, "Sum wrap", Sum(vec.NewU8Vec2(200, 1), vec.NewU8Vec2(100, 1)), vec.NewU8Vec2(44, 2))
}

func TestProduct(t *testing.T) {
	same(t, "Product", Product(vec.NewDVec2(2, -1), vec.NewDVec2(3, 4)), vec.NewDVec2(6, -4))
	same(t, "Product empty", Product[vec.I16Vec4](), vec.NewI16Vec4(1, 1, 1, 1))
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(vec.NewVec3(1, 5, -2), vec.NewVec3(0, 7, 3), vec.NewVec3(4, 6, 0))
	same(t, "Bounds lo", lo, vec.NewVec3(0, 5, -2))
	same(t, "Bounds hi", hi, vec.NewVec3(4, 7, 3))
	lo, hi = Bounds(vec.NewVec3(1, 2, 3))
	same(t, "Bounds single", lo, hi)
	mustPanic(t, "Bounds empty", func() { Bounds[vec.Vec3]() })
}

func TestMean(t *testing.T) {
	same(t, "Mean", Mean(vec.NewDVec3(0, 0, 3), vec.NewDVec3(2, 4, 0), vec.NewDVec3(1, -1, 0)), vec.NewDVec3(1, 1, 1))
	mustPanic(t, "Mean empty", func() { Mean[vec.Vec4]() })
}

func TestGather(t *testing.T) {
	vs := []vec.I64Vec3{
		vec.NewI64Vec3(1, 2, 3),
		vec.NewI64Vec3(10, 20, 30),
		vec.NewI64Vec3(100, 200, 300),
	}
	same(t, "Gather", Gather(vs, []int{2, 0, 1}), vec.NewI64Vec3(100, 2, 30))
	same(t, "Gather extra indices", Gather(vs, []int{2, 0, 1, 7}), vec.NewI64Vec3(100, 2, 30))

	a, b := vec.NewVec2(1, 2), vec.NewVec2(3, 4)
	mask := vec.NewBVec2(false, true)
	idx := []int{1, 1}
	for i := range idx {
		if mask.Test(i) {
			idx[i] = 0
		}
	}
	same(t, "Gather as Select", Gather([]vec.Vec2{a, b}, idx), a.Select(mask, a, b))
	mustPanic(t, "Gather short", func() { Gather(vs, []int{0, 1}) })
	mustPanic(t, "Gather index", func() { Gather(vs, []int{0, 1, 3}) })
}

func centroid[V FloatVec[V, S, B], S Float, B any](a, b, c V) V {
	return a.Add(b).Add(c).DivScalar(3)
}

func TestGenericAlgorithm(t *testing.T) {
	same(t, "centroid 2D", centroid(vec.NewVec2(0, 0), vec.NewVec2(3, 0), vec.NewVec2(0, 3)), vec.NewVec2(1, 1))
	same(t, "centroid 3D", centroid(vec.NewDVec3(0, 0, 0), vec.NewDVec3(3, 0, 6), vec.NewDVec3(0, 3, 0)), vec.NewDVec3(1, 1, 2))
}
