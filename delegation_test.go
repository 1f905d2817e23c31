package gvec

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/gvec/vec"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-5

// mk builds a vector from the first Dim() values of xs.
func mk[V GVec[V, S, B], S Scalar, B any](xs ...S) V {
	var v V
	return v.FromSlice(xs)
}

func same[T any](t *testing.T, name string, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func near[S Scalar](t *testing.T, name string, got, want S) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(float64(got), float64(want), tol, tol) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

// lanes checks every lane of got against f applied to the lanes of a and b.
func lanes[V GVec[V, S, B], S Scalar, B any](t *testing.T, name string, got, a, b V, f func(x, y S) S) {
	t.Helper()
	for i := 0; i < a.Dim(); i++ {
		want := f(a.Elem(i), b.Elem(i))
		if !scalar.EqualWithinAbsOrRel(float64(got.Elem(i)), float64(want), tol, tol) {
			t.Errorf("%s lane %d: got %v, want %v", name, i, got.Elem(i), want)
		}
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

// checkGVec calls every GVec method through the interface and checks it
// against the direct call on a and the expected per-lane result.
func checkGVec[V GVec[V, S, B], S Scalar, B GBVec[B]](t *testing.T, a, b V) {
	t.Helper()
	var g GVec[V, S, B] = a
	n := g.Dim()

	same(t, "Add", g.Add(b), a.Add(b))
	same(t, "Sub", g.Sub(b), a.Sub(b))
	same(t, "Mul", g.Mul(b), a.Mul(b))
	same(t, "Div", g.Div(b), a.Div(b))
	same(t, "Rem", g.Rem(b), a.Rem(b))
	same(t, "Min", g.Min(b), a.Min(b))
	same(t, "Max", g.Max(b), a.Max(b))
	same(t, "Dot", g.Dot(b), a.Dot(b))
	same(t, "String", g.String(), a.String())

	lanes(t, "Add", g.Add(b), a, b, func(x, y S) S { return x + y })
	lanes(t, "Sub", g.Sub(b), a, b, func(x, y S) S { return x - y })
	lanes(t, "Mul", g.Mul(b), a, b, func(x, y S) S { return x * y })
	lanes(t, "Div", g.Div(b), a, b, func(x, y S) S { return x / y })
	lanes(t, "Min", g.Min(b), a, b, func(x, y S) S { return min(x, y) })
	lanes(t, "Max", g.Max(b), a, b, func(x, y S) S { return max(x, y) })
	lanes(t, "AddScalar", g.AddScalar(2), a, a, func(x, _ S) S { return x + 2 })
	lanes(t, "SubScalar", g.SubScalar(1), a, a, func(x, _ S) S { return x - 1 })
	lanes(t, "MulScalar", g.MulScalar(3), a, a, func(x, _ S) S { return x * 3 })
	lanes(t, "DivScalar", g.DivScalar(2), a, a, func(x, _ S) S { return x / 2 })
	lanes(t, "Clamp", g.Clamp(g.Splat(2), g.Splat(4)), a, a, func(x, _ S) S { return min(max(x, 2), 4) })

	var dot, sum, prod S = 0, 0, 1
	lo, hi := a.Elem(0), a.Elem(0)
	for i := 0; i < n; i++ {
		dot += a.Elem(i) * b.Elem(i)
		sum += a.Elem(i)
		prod *= a.Elem(i)
		lo, hi = min(lo, a.Elem(i)), max(hi, a.Elem(i))
	}
	near(t, "Dot", g.Dot(b), dot)
	near(t, "ElementSum", g.ElementSum(), sum)
	near(t, "ElementProduct", g.ElementProduct(), prod)
	near(t, "MinElement", g.MinElement(), lo)
	near(t, "MaxElement", g.MaxElement(), hi)
	near(t, "LengthSquared", g.LengthSquared(), a.Dot(a))
	same(t, "DotIntoVec", g.DotIntoVec(b), g.Splat(g.Dot(b)))

	same(t, "Zero", g.Zero().ElementSum(), 0)
	same(t, "One", g.One().ElementSum(), S(n))
	if g.MinValue().MaxElement() > g.MaxValue().MinElement() {
		t.Error("MinValue is above MaxValue")
	}

	buf := make([]S, n+1)
	g.WriteToSlice(buf)
	same(t, "FromSlice", g.FromSlice(buf), a)
	same(t, "WithElem", g.WithElem(n-1, 9).Elem(n-1), 9)
	mustPanic(t, "Elem", func() { g.Elem(n) })
	mustPanic(t, "WithElem", func() { g.WithElem(-1, 0) })

	lt := g.CmpLt(b)
	for i := 0; i < n; i++ {
		if lt.Test(i) != (a.Elem(i) < b.Elem(i)) {
			t.Errorf("CmpLt lane %d", i)
		}
		want := b.Elem(i)
		if lt.Test(i) {
			want = a.Elem(i)
		}
		if g.Select(lt, a, b).Elem(i) != want {
			t.Errorf("Select lane %d", i)
		}
	}
	same(t, "CmpEq", g.CmpEq(a).All(), true)
	same(t, "CmpNe", g.CmpNe(a).Any(), false)
	same(t, "CmpGe", g.CmpGe(b), g.CmpLt(b).Not())
	same(t, "CmpLe", g.CmpLe(b), g.CmpGt(b).Not())
	if s := g.String(); !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") || strings.Count(s, ",") != n-1 {
		t.Errorf("String got %q", s)
	}
}

func checkGVec2[V GVec2[V, S, V3], S Scalar, V3 any](t *testing.T, a V) {
	t.Helper()
	var g GVec2[V, S, V3] = a
	same(t, "Axes", g.Axes(), [2]V{g.UnitX(), g.UnitY()})
	same(t, "New", g.New(a.Elem(0), a.Elem(1)), a)
	same(t, "FromArray", g.FromArray(g.Array()), a)
	same(t, "Extend", g.Extend(7), a.Extend(7))
}

func checkGVec3[V GVec3[V, S, V2, V4], S Scalar, V2, V4 any](t *testing.T, a V) {
	t.Helper()
	var g GVec3[V, S, V2, V4] = a
	x, y, z := g.UnitX(), g.UnitY(), g.UnitZ()
	same(t, "Axes", g.Axes(), [3]V{x, y, z})
	same(t, "Cross", x.Cross(y), z)
	same(t, "Cross", y.Cross(z), x)
	same(t, "Cross self", g.Cross(a), g.Zero())
	same(t, "New", g.New(a.Elem(0), a.Elem(1), a.Elem(2)), a)
	same(t, "FromArray", g.FromArray(g.Array()), a)
	same(t, "Truncate", g.Truncate(), a.Truncate())
	same(t, "Extend", g.Extend(7), a.Extend(7))
}

func checkGVec4[V GVec4[V, S, V3], S Scalar, V3 any](t *testing.T, a V) {
	t.Helper()
	var g GVec4[V, S, V3] = a
	same(t, "Axes", g.Axes(), [4]V{g.UnitX(), g.UnitY(), g.UnitZ(), g.UnitW()})
	same(t, "New", g.New(a.Elem(0), a.Elem(1), a.Elem(2), a.Elem(3)), a)
	same(t, "FromArray", g.FromArray(g.Array()), a)
	same(t, "Truncate", g.Truncate(), a.Truncate())
}

func checkSigned[V SignedVec[V, S, B], S SignedScalar, B GBVec[B]](t *testing.T, a, b V) {
	t.Helper()
	var g SignedVec[V, S, B] = a
	n := g.Dim()
	same(t, "Neg", g.Neg(), a.Neg())
	same(t, "Abs", g.Abs(), a.Abs())
	lanes(t, "Neg", g.Neg(), a, a, func(x, _ S) S { return -x })
	lanes(t, "Abs", g.Abs(), a, a, func(x, _ S) S { return max(x, -x) })
	same(t, "NegOne", g.NegOne(), g.One().Neg())
	same(t, "Signum", g.Signum().Mul(g.Abs()), a)
	near(t, "DistanceSquared", g.DistanceSquared(b), a.Sub(b).LengthSquared())

	var mask uint32
	for i := 0; i < n; i++ {
		if a.Elem(i) < 0 {
			mask |= 1 << i
		}
	}
	same(t, "IsNegativeBitmask", g.IsNegativeBitmask(), mask)

	q, r := g.DivEuclid(b), g.RemEuclid(b)
	for i := 0; i < n; i++ {
		if r.Elem(i) < 0 {
			t.Errorf("RemEuclid lane %d is negative: %v", i, r.Elem(i))
		}
		near(t, "DivEuclid", b.Elem(i)*q.Elem(i)+r.Elem(i), a.Elem(i))
	}
}

func checkSigned2[V SignedVec2[V, S, V3], S SignedScalar, V3 any](t *testing.T, a, b V) {
	t.Helper()
	var g SignedVec2[V, S, V3] = a
	same(t, "NegUnitX", g.NegUnitX(), g.UnitX().Neg())
	same(t, "NegUnitY", g.NegUnitY(), g.UnitY().Neg())
	same(t, "Perp", g.Perp().Dot(a), 0)
	near(t, "PerpDot", g.PerpDot(b), g.Perp().Dot(b))
	same(t, "Rotate identity", g.UnitX().Rotate(a), a)
	same(t, "Rotate quarter", g.UnitY().Rotate(a), a.Perp())
}

func checkSigned3[V SignedVec3[V, S, V2, V4], S SignedScalar, V2, V4 any](t *testing.T, a V) {
	t.Helper()
	var g SignedVec3[V, S, V2, V4] = a
	same(t, "NegUnitZ", g.NegUnitZ(), g.UnitZ().Neg())
	same(t, "anticommutative", g.NegUnitZ(), g.UnitY().Cross(g.UnitX()))
}

func checkSigned4[V SignedVec4[V, S, V3], S SignedScalar, V3 any](t *testing.T, a V) {
	t.Helper()
	var g SignedVec4[V, S, V3] = a
	same(t, "NegUnitW", g.NegUnitW(), g.UnitW().Neg())
}

func checkFloat[V FloatVec[V, S, B], S Float, B GBVec[B]](t *testing.T, a, b V) {
	t.Helper()
	var g FloatVec[V, S, B] = a
	n := g.Dim()
	same(t, "Length", g.Length(), a.Length())
	same(t, "Normalize", g.Normalize(), a.Normalize())
	near(t, "Length", g.Length(), S(math.Sqrt(float64(a.Dot(a)))))
	near(t, "LengthRecip", g.LengthRecip()*g.Length(), 1)
	near(t, "Distance", g.Distance(b), b.Sub(a).Length())
	if !g.Normalize().IsNormalized() || g.IsNormalized() {
		t.Error("IsNormalized")
	}
	if u, ok := g.TryNormalize(); !ok || !u.AbsDiffEq(a.Normalize(), tol) {
		t.Errorf("TryNormalize got %v, %v", u, ok)
	}
	u, ok := g.Zero().TryNormalize()
	if ok {
		t.Error("TryNormalize of zero reported success")
	}
	same(t, "TryNormalize of zero", u, g.Zero())
	same(t, "NormalizeOrZero", g.Inf().NormalizeOrZero(), g.Zero())

	p, r := g.ProjectOnto(b), g.RejectFrom(b)
	if !p.Add(r).AbsDiffEq(a, tol) {
		t.Errorf("projection %v and rejection %v do not add up to %v", p, r, a)
	}
	near(t, "RejectFrom", r.Dot(b), 0)
	bn := b.Normalize()
	if !g.ProjectOntoNormalized(bn).AbsDiffEq(p, tol) || !g.RejectFromNormalized(bn).AbsDiffEq(r, tol) {
		t.Error("normalized projection differs from projection")
	}

	if !g.Floor().Add(g.Fract()).AbsDiffEq(a, tol) {
		t.Error("Floor + Fract != v")
	}
	lanes(t, "Round", g.Round(), a, a, func(x, _ S) S { return S(math.Round(float64(x))) })
	lanes(t, "Ceil", g.Ceil(), a, a, func(x, _ S) S { return S(math.Ceil(float64(x))) })
	lanes(t, "Trunc", g.Trunc(), a, a, func(x, _ S) S { return S(math.Trunc(float64(x))) })
	lanes(t, "Exp", g.Exp(), a, a, func(x, _ S) S { return S(math.Exp(float64(x))) })
	lanes(t, "Powf", g.Powf(2), a, a, func(x, _ S) S { return x * x })
	lanes(t, "Recip", g.Recip(), a, a, func(x, _ S) S { return 1 / x })
	lanes(t, "Rem", g.Rem(b), a, b, func(x, y S) S { return S(math.Mod(float64(x), float64(y))) })
	lanes(t, "Copysign", g.Copysign(b), a, b, func(x, y S) S { return S(math.Copysign(float64(x), float64(y))) })
	lanes(t, "MulAdd", g.MulAdd(b, a), a, b, func(x, y S) S { return x*y + x })
	same(t, "Lerp 0", g.Lerp(b, 0), a)
	if !g.Lerp(b, 1).AbsDiffEq(b, tol) || !g.Lerp(b, 0.5).AbsDiffEq(g.Midpoint(b), tol) {
		t.Error("Lerp")
	}

	if !g.IsFinite() || g.IsNaN() || g.NaN().IsFinite() || !g.NaN().IsNaN() || g.Inf().IsFinite() {
		t.Error("finiteness checks")
	}
	same(t, "IsNaNMask", g.WithElem(0, g.NaN().Elem(0)).IsNaNMask().Bitmask(), 1)
	same(t, "NegInf", g.NegInf(), g.Inf().Neg())

	l := g.Length()
	near(t, "ClampLength max", g.ClampLength(0, l/2).Length(), l/2)
	near(t, "ClampLength min", g.ClampLength(2*l, 3*l).Length(), 2*l)
	same(t, "ClampLength inside", g.ClampLength(0, 2*l), a)
	near(t, "ClampLengthMax", g.ClampLengthMax(l/4).Length(), l/4)
	near(t, "ClampLengthMin", g.ClampLengthMin(4*l).Length(), 4*l)
	if g.AbsDiffEq(g.AddScalar(1), 0.5) || !g.AbsDiffEq(g.AddScalar(0.25), 0.5) {
		t.Error("AbsDiffEq")
	}
	if n != a.Dim() {
		t.Error("Dim")
	}
}

func checkFloat2[V FloatVec2[V, S, V3], S Float, V3 any](t *testing.T, a V) {
	t.Helper()
	var g FloatVec2[V, S, V3] = a
	if !g.FromAngle(math.Pi / 2).AbsDiffEq(g.UnitY(), tol) {
		t.Error("FromAngle")
	}
	near(t, "ToAngle", g.FromAngle(1).ToAngle(), 1)
	near(t, "AngleBetween", g.UnitX().AngleBetween(g.UnitY()), math.Pi/2)
	near(t, "AngleBetween signed", g.UnitY().AngleBetween(g.UnitX()), -math.Pi/2)
}

func checkFloat3[V FloatVec3[V, S, V2, V4], S Float, V2, V4 any](t *testing.T, a V) {
	t.Helper()
	var g FloatVec3[V, S, V2, V4] = a
	near(t, "AngleBetween", g.UnitX().AngleBetween(g.UnitY()), math.Pi/2)
	near(t, "AngleBetween self", g.AngleBetween(a), 0)
	near(t, "AnyOrthogonalVector", g.AnyOrthogonalVector().Dot(a), 0)
	n := a.Normalize()
	o := n.AnyOrthonormalVector()
	near(t, "AnyOrthonormalVector", o.Dot(n), 0)
	near(t, "AnyOrthonormalVector length", o.Length(), 1)
	u, w := n.AnyOrthonormalPair()
	for _, d := range []S{u.Dot(n), w.Dot(n), u.Dot(w), u.Length() - 1, w.Length() - 1} {
		near(t, "AnyOrthonormalPair", d, 0)
	}
}

func checkInt[V IntVec[V, S, B], S Integer, B GBVec[B]](t *testing.T, a, b V) {
	t.Helper()
	var g IntVec[V, S, B] = a
	maxv, minv, one := g.MaxValue(), g.MinValue(), g.One()
	same(t, "WrappingAdd", g.WrappingAdd(b), a.Add(b))
	same(t, "WrappingAdd overflow", maxv.WrappingAdd(one), minv)
	same(t, "WrappingSub underflow", minv.WrappingSub(one), maxv)
	same(t, "WrappingMul", g.WrappingMul(b), a.Mul(b))
	same(t, "WrappingDiv", g.WrappingDiv(b), a.Div(b))
	same(t, "SaturatingAdd", maxv.SaturatingAdd(one), maxv)
	same(t, "SaturatingSub", minv.SaturatingSub(one), minv)
	same(t, "SaturatingMul", maxv.SaturatingMul(g.Splat(2)), maxv)
	same(t, "SaturatingDiv", g.SaturatingDiv(b), a.Div(b))
	same(t, "SaturatingAdd in range", g.SaturatingAdd(b), a.Add(b))
	same(t, "And Not", g.And(g.Not()), g.Zero())
	same(t, "Or Not", g.Or(g.Not()), g.Zero().Not())
	same(t, "Xor", g.Xor(a), g.Zero())
	same(t, "Shl", g.Shl(1), a.Mul(g.Splat(2)))
	same(t, "Shr", g.Shl(2).Shr(2).And(g.Splat(15)), a.And(g.Splat(15)))
}

func TestGVec(t *testing.T) {
	checkGVec(t, mk[vec.I8Vec2](3, -2, 5, -7), mk[vec.I8Vec2](2, 4, -3, 6))
	checkGVec(t, mk[vec.I8Vec3](3, -2, 5, -7), mk[vec.I8Vec3](2, 4, -3, 6))
	checkGVec(t, mk[vec.I8Vec4](3, -2, 5, -7), mk[vec.I8Vec4](2, 4, -3, 6))
	checkGVec(t, mk[vec.U8Vec2](3, 2, 5, 7), mk[vec.U8Vec2](2, 4, 3, 6))
	checkGVec(t, mk[vec.U8Vec3](3, 2, 5, 7), mk[vec.U8Vec3](2, 4, 3, 6))
	checkGVec(t, mk[vec.U8Vec4](3, 2, 5, 7), mk[vec.U8Vec4](2, 4, 3, 6))
	checkGVec(t, mk[vec.I16Vec2](3, -2, 5, -7), mk[vec.I16Vec2](2, 4, -3, 6))
	checkGVec(t, mk[vec.I16Vec3](3, -2, 5, -7), mk[vec.I16Vec3](2, 4, -3, 6))
	checkGVec(t, mk[vec.I16Vec4](3, -2, 5, -7), mk[vec.I16Vec4](2, 4, -3, 6))
	checkGVec(t, mk[vec.U16Vec2](3, 2, 5, 7), mk[vec.U16Vec2](2, 4, 3, 6))
	checkGVec(t, mk[vec.U16Vec3](3, 2, 5, 7), mk[vec.U16Vec3](2, 4, 3, 6))
	checkGVec(t, mk[vec.U16Vec4](3, 2, 5, 7), mk[vec.U16Vec4](2, 4, 3, 6))
	checkGVec(t, mk[vec.IVec2](3, -2, 5, -7), mk[vec.IVec2](2, 4, -3, 6))
	checkGVec(t, mk[vec.IVec3](3, -2, 5, -7), mk[vec.IVec3](2, 4, -3, 6))
	checkGVec(t, mk[vec.IVec4](3, -2, 5, -7), mk[vec.IVec4](2, 4, -3, 6))
	checkGVec(t, mk[vec.UVec2](3, 2, 5, 7), mk[vec.UVec2](2, 4, 3, 6))
	checkGVec(t, mk[vec.UVec3](3, 2, 5, 7), mk[vec.UVec3](2, 4, 3, 6))
	checkGVec(t, mk[vec.UVec4](3, 2, 5, 7), mk[vec.UVec4](2, 4, 3, 6))
	checkGVec(t, mk[vec.I64Vec2](3, -2, 5, -7), mk[vec.I64Vec2](2, 4, -3, 6))
	checkGVec(t, mk[vec.I64Vec3](3, -2, 5, -7), mk[vec.I64Vec3](2, 4, -3, 6))
	checkGVec(t, mk[vec.I64Vec4](3, -2, 5, -7), mk[vec.I64Vec4](2, 4, -3, 6))
	checkGVec(t, mk[vec.U64Vec2](3, 2, 5, 7), mk[vec.U64Vec2](2, 4, 3, 6))
	checkGVec(t, mk[vec.U64Vec3](3, 2, 5, 7), mk[vec.U64Vec3](2, 4, 3, 6))
	checkGVec(t, mk[vec.U64Vec4](3, 2, 5, 7), mk[vec.U64Vec4](2, 4, 3, 6))
	checkGVec(t, mk[vec.Vec2](3.5, -2, 5, -7), mk[vec.Vec2](2, 4, -3.25, 6))
	checkGVec(t, mk[vec.Vec3](3.5, -2, 5, -7), mk[vec.Vec3](2, 4, -3.25, 6))
	checkGVec(t, mk[vec.Vec4](3.5, -2, 5, -7), mk[vec.Vec4](2, 4, -3.25, 6))
	checkGVec(t, mk[vec.DVec2](3.5, -2, 5, -7), mk[vec.DVec2](2, 4, -3.25, 6))
	checkGVec(t, mk[vec.DVec3](3.5, -2, 5, -7), mk[vec.DVec3](2, 4, -3.25, 6))
	checkGVec(t, mk[vec.DVec4](3.5, -2, 5, -7), mk[vec.DVec4](2, 4, -3.25, 6))
}

func TestGVecDims(t *testing.T) {
	checkGVec2(t, mk[vec.I8Vec2](3, -2))
	checkGVec2(t, mk[vec.U8Vec2](3, 2))
	checkGVec2(t, mk[vec.I16Vec2](3, -2))
	checkGVec2(t, mk[vec.U16Vec2](3, 2))
	checkGVec2(t, mk[vec.IVec2](3, -2))
	checkGVec2(t, mk[vec.UVec2](3, 2))
	checkGVec2(t, mk[vec.I64Vec2](3, -2))
	checkGVec2(t, mk[vec.U64Vec2](3, 2))
	checkGVec2(t, mk[vec.Vec2](3.5, -2))
	checkGVec2(t, mk[vec.DVec2](3.5, -2))

	checkGVec3(t, mk[vec.I8Vec3](3, -2, 5))
	checkGVec3(t, mk[vec.U8Vec3](3, 2, 5))
	checkGVec3(t, mk[vec.I16Vec3](3, -2, 5))
	checkGVec3(t, mk[vec.U16Vec3](3, 2, 5))
	checkGVec3(t, mk[vec.IVec3](3, -2, 5))
	checkGVec3(t, mk[vec.UVec3](3, 2, 5))
	checkGVec3(t, mk[vec.I64Vec3](3, -2, 5))
	checkGVec3(t, mk[vec.U64Vec3](3, 2, 5))
	checkGVec3(t, mk[vec.Vec3](3.5, -2, 5))
	checkGVec3(t, mk[vec.DVec3](3.5, -2, 5))

	checkGVec4(t, mk[vec.I8Vec4](3, -2, 5, -7))
	checkGVec4(t, mk[vec.U8Vec4](3, 2, 5, 7))
	checkGVec4(t, mk[vec.I16Vec4](3, -2, 5, -7))
	checkGVec4(t, mk[vec.U16Vec4](3, 2, 5, 7))
	checkGVec4(t, mk[vec.IVec4](3, -2, 5, -7))
	checkGVec4(t, mk[vec.UVec4](3, 2, 5, 7))
	checkGVec4(t, mk[vec.I64Vec4](3, -2, 5, -7))
	checkGVec4(t, mk[vec.U64Vec4](3, 2, 5, 7))
	checkGVec4(t, mk[vec.Vec4](3.5, -2, 5, -7))
	checkGVec4(t, mk[vec.DVec4](3.5, -2, 5, -7))
}

func TestSignedVec(t *testing.T) {
	checkSigned(t, mk[vec.I8Vec2](7, -7, 5, -1), mk[vec.I8Vec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.I8Vec3](7, -7, 5, -1), mk[vec.I8Vec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.I8Vec4](7, -7, 5, -1), mk[vec.I8Vec4](2, 4, -3, -6))
	checkSigned(t, mk[vec.I16Vec2](7, -7, 5, -1), mk[vec.I16Vec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.I16Vec3](7, -7, 5, -1), mk[vec.I16Vec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.I16Vec4](7, -7, 5, -1), mk[vec.I16Vec4](2, 4, -3, -6))
	checkSigned(t, mk[vec.IVec2](7, -7, 5, -1), mk[vec.IVec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.IVec3](7, -7, 5, -1), mk[vec.IVec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.IVec4](7, -7, 5, -1), mk[vec.IVec4](2, 4, -3, -6))
	checkSigned(t, mk[vec.I64Vec2](7, -7, 5, -1), mk[vec.I64Vec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.I64Vec3](7, -7, 5, -1), mk[vec.I64Vec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.I64Vec4](7, -7, 5, -1), mk[vec.I64Vec4](2, 4, -3, -6))
	checkSigned(t, mk[vec.Vec2](7.5, -7, 5, -1), mk[vec.Vec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.Vec3](7.5, -7, 5, -1), mk[vec.Vec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.Vec4](7.5, -7, 5, -1), mk[vec.Vec4](2, 4, -3, -6))
	checkSigned(t, mk[vec.DVec2](7.5, -7, 5, -1), mk[vec.DVec2](2, 4, -3, -6))
	checkSigned(t, mk[vec.DVec3](7.5, -7, 5, -1), mk[vec.DVec3](2, 4, -3, -6))
	checkSigned(t, mk[vec.DVec4](7.5, -7, 5, -1), mk[vec.DVec4](2, 4, -3, -6))

	checkSigned2(t, mk[vec.I8Vec2](3, -2), mk[vec.I8Vec2](1, 4))
	checkSigned2(t, mk[vec.I16Vec2](3, -2), mk[vec.I16Vec2](1, 4))
	checkSigned2(t, mk[vec.IVec2](3, -2), mk[vec.IVec2](1, 4))
	checkSigned2(t, mk[vec.I64Vec2](3, -2), mk[vec.I64Vec2](1, 4))
	checkSigned2(t, mk[vec.Vec2](3, -2), mk[vec.Vec2](1, 4))
	checkSigned2(t, mk[vec.DVec2](3, -2), mk[vec.DVec2](1, 4))

	checkSigned3(t, mk[vec.I8Vec3](1, 2, 3))
	checkSigned3(t, mk[vec.I16Vec3](1, 2, 3))
	checkSigned3(t, mk[vec.IVec3](1, 2, 3))
	checkSigned3(t, mk[vec.I64Vec3](1, 2, 3))
	checkSigned3(t, mk[vec.Vec3](1, 2, 3))
	checkSigned3(t, mk[vec.DVec3](1, 2, 3))

	checkSigned4(t, mk[vec.I8Vec4](1, 2, 3, 4))
	checkSigned4(t, mk[vec.I16Vec4](1, 2, 3, 4))
	checkSigned4(t, mk[vec.IVec4](1, 2, 3, 4))
	checkSigned4(t, mk[vec.I64Vec4](1, 2, 3, 4))
	checkSigned4(t, mk[vec.Vec4](1, 2, 3, 4))
	checkSigned4(t, mk[vec.DVec4](1, 2, 3, 4))
}

func TestFloatVec(t *testing.T) {
	checkFloat(t, mk[vec.Vec2](1.25, -2.5, 0.5, 3), mk[vec.Vec2](0.5, 2, -1.5, 1))
	checkFloat(t, mk[vec.Vec3](1.25, -2.5, 0.5, 3), mk[vec.Vec3](0.5, 2, -1.5, 1))
	checkFloat(t, mk[vec.Vec4](1.25, -2.5, 0.5, 3), mk[vec.Vec4](0.5, 2, -1.5, 1))
	checkFloat(t, mk[vec.DVec2](1.25, -2.5, 0.5, 3), mk[vec.DVec2](0.5, 2, -1.5, 1))
	checkFloat(t, mk[vec.DVec3](1.25, -2.5, 0.5, 3), mk[vec.DVec3](0.5, 2, -1.5, 1))
	checkFloat(t, mk[vec.DVec4](1.25, -2.5, 0.5, 3), mk[vec.DVec4](0.5, 2, -1.5, 1))

	checkFloat2(t, mk[vec.Vec2](1, 2))
	checkFloat2(t, mk[vec.DVec2](1, 2))
	checkFloat3(t, mk[vec.Vec3](1, -2, 0.5))
	checkFloat3(t, mk[vec.Vec3](0, 0.25, -3))
	checkFloat3(t, mk[vec.DVec3](1, -2, 0.5))
	checkFloat3(t, mk[vec.DVec3](0, 0.25, -3))
}

func TestIntVec(t *testing.T) {
	checkInt(t, mk[vec.I8Vec2](3, -2, 5, -7), mk[vec.I8Vec2](2, 4, -3, 6))
	checkInt(t, mk[vec.I8Vec3](3, -2, 5, -7), mk[vec.I8Vec3](2, 4, -3, 6))
	checkInt(t, mk[vec.I8Vec4](3, -2, 5, -7), mk[vec.I8Vec4](2, 4, -3, 6))
	checkInt(t, mk[vec.U8Vec2](3, 2, 5, 7), mk[vec.U8Vec2](2, 4, 3, 6))
	checkInt(t, mk[vec.U8Vec3](3, 2, 5, 7), mk[vec.U8Vec3](2, 4, 3, 6))
	checkInt(t, mk[vec.U8Vec4](3, 2, 5, 7), mk[vec.U8Vec4](2, 4, 3, 6))
	checkInt(t, mk[vec.I16Vec2](3, -2, 5, -7), mk[vec.I16Vec2](2, 4, -3, 6))
	checkInt(t, mk[vec.I16Vec3](3, -2, 5, -7), mk[vec.I16Vec3](2, 4, -3, 6))
	checkInt(t, mk[vec.I16Vec4](3, -2, 5, -7), mk[vec.I16Vec4](2, 4, -3, 6))
	checkInt(t, mk[vec.U16Vec2](3, 2, 5, 7), mk[vec.U16Vec2](2, 4, 3, 6))
	checkInt(t, mk[vec.U16Vec3](3, 2, 5, 7), mk[vec.U16Vec3](2, 4, 3, 6))
	checkInt(t, mk[vec.U16Vec4](3, 2, 5, 7), mk[vec.U16Vec4](2, 4, 3, 6))
	checkInt(t, mk[vec.IVec2](3, -2, 5, -7), mk[vec.IVec2](2, 4, -3, 6))
	checkInt(t, mk[vec.IVec3](3, -2, 5, -7), mk[vec.IVec3](2, 4, -3, 6))
	checkInt(t, mk[vec.IVec4](3, -2, 5, -7), mk[vec.IVec4](2, 4, -3, 6))
	checkInt(t, mk[vec.UVec2](3, 2, 5, 7), mk[vec.UVec2](2, 4, 3, 6))
	checkInt(t, mk[vec.UVec3](3, 2, 5, 7), mk[vec.UVec3](2, 4, 3, 6))
	checkInt(t, mk[vec.UVec4](3, 2, 5, 7), mk[vec.UVec4](2, 4, 3, 6))
	checkInt(t, mk[vec.I64Vec2](3, -2, 5, -7), mk[vec.I64Vec2](2, 4, -3, 6))
	checkInt(t, mk[vec.I64Vec3](3, -2, 5, -7), mk[vec.I64Vec3](2, 4, -3, 6))
	checkInt(t, mk[vec.I64Vec4](3, -2, 5, -7), mk[vec.I64Vec4](2, 4, -3, 6))
	checkInt(t, mk[vec.U64Vec2](3, 2, 5, 7), mk[vec.U64Vec2](2, 4, 3, 6))
	checkInt(t, mk[vec.U64Vec3](3, 2, 5, 7), mk[vec.U64Vec3](2, 4, 3, 6))
	checkInt(t, mk[vec.U64Vec4](3, 2, 5, 7), mk[vec.U64Vec4](2, 4, 3, 6))
}

// Typed interfaces only fix the scalar, so a function over F32Vec accepts
// every float32 vector width.
func lengthF32[V F32Vec[V, B], B any](v V) float32 { return v.Length() }

func sumI16[V I16Vec[V, B], B any](v V) int16 { return v.ElementSum() }

func TestTypedVec(t *testing.T) {
	near(t, "F32Vec", lengthF32(vec.NewVec2(3, 4)), 5)
	near(t, "F32Vec", lengthF32(vec.NewVec4(2, 0, 0, 0)), 2)
	same(t, "I16Vec", sumI16(vec.NewI16Vec3(1, 2, -4)), -1)
	var u U64Vec[vec.U64Vec2, vec.BVec2] = vec.NewU64Vec2(1, 2)
	same(t, "U64Vec", u.SaturatingSub(vec.NewU64Vec2(2, 1)), vec.NewU64Vec2(0, 1))
}

func checkBVec[B GBVec[B]](t *testing.T, b B) {
	t.Helper()
	var g GBVec[B] = b
	n := g.Dim()
	all := uint32(1)<<n - 1
	same(t, "True", g.True().Bitmask(), all)
	same(t, "False", g.False().Bitmask(), 0)
	same(t, "Splat", g.Splat(true), g.True())
	same(t, "Not", g.Not().Bitmask(), all&^g.Bitmask())
	same(t, "Xor", g.Xor(g.True()), g.Not())
	same(t, "And", g.And(g.False()), g.False())
	same(t, "Or", g.Or(g.True()), g.True())
	same(t, "Any", g.Any(), g.Bitmask() != 0)
	same(t, "All", g.All(), g.Bitmask() == all)
	s := g.False().Set(n-1, true)
	same(t, "Set", s.Bitmask(), uint32(1)<<(n-1))
	same(t, "Test", s.Test(n-1), true)
	mustPanic(t, "Test", func() { g.Test(n) })
	mustPanic(t, "Set", func() { g.Set(-1, true) })
}

func TestGBVec(t *testing.T) {
	checkBVec(t, vec.NewBVec2(true, false))
	checkBVec(t, vec.NewBVec3(false, true, true))
	checkBVec(t, vec.NewBVec4(true, false, true, false))

	var b3 GBVec3[vec.BVec3] = vec.BVec3{}
	same(t, "FromArray", b3.FromArray([3]bool{true, false, true}), b3.New(true, false, true))
	same(t, "Array", b3.New(false, true, false).Array(), [3]bool{false, true, false})
	var b2 GBVec2[vec.BVec2] = vec.BVec2{}
	same(t, "String", b2.New(true, false).String(), "[true, false]")
	var b4 GBVec4[vec.BVec4] = vec.BVec4{}
	same(t, "Bitmask", b4.New(false, false, false, true).Bitmask(), 8)
}
