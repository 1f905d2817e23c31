package vec

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSaturating(t *testing.T) {
	a := NewI8Vec3(120, -120, 100)
	b := NewI8Vec3(10, 10, -128)
	for _, test := range []struct {
		name      string
		got, want I8Vec3
	}{
		{"SaturatingAdd", a.SaturatingAdd(b), NewI8Vec3(127, -110, -28)},
		{"SaturatingSub", a.SaturatingSub(b), NewI8Vec3(110, -128, 127)},
		{"SaturatingMul", a.SaturatingMul(b), NewI8Vec3(127, -128, -128)},
		{"SaturatingDiv", NewI8Vec3(-128, 7, -7).SaturatingDiv(NewI8Vec3(-1, 2, 2)), NewI8Vec3(127, 3, -3)},
		{"WrappingAdd", a.WrappingAdd(b), NewI8Vec3(-126, -110, -28)},
		{"WrappingSub", a.WrappingSub(b), NewI8Vec3(110, 126, -28)},
		{"WrappingMul", NewI8Vec3(64, 3, -1).WrappingMul(NewI8Vec3(2, 3, 1)), NewI8Vec3(-128, 9, -1)},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	u := NewU16Vec2(65000, 3)
	if got := u.SaturatingAdd(NewU16Vec2(1000, 4)); got != NewU16Vec2(65535, 7) {
		t.Errorf("unsigned SaturatingAdd: got %v", got)
	}
	if got := u.SaturatingSub(NewU16Vec2(1, 4)); got != NewU16Vec2(64999, 0) {
		t.Errorf("unsigned SaturatingSub: got %v", got)
	}
	if got := u.WrappingSub(NewU16Vec2(0, 4)); got != NewU16Vec2(65000, 65535) {
		t.Errorf("unsigned WrappingSub: got %v", got)
	}
}

func TestEuclid(t *testing.T) {
	a := NewIVec4(7, -7, 7, -7)
	b := NewIVec4(3, 3, -3, -3)
	if got, want := a.DivEuclid(b), NewIVec4(2, -3, -2, 3); got != want {
		t.Errorf("DivEuclid: got %v. want %v", got, want)
	}
	if got, want := a.RemEuclid(b), NewIVec4(1, 2, 1, 2); got != want {
		t.Errorf("RemEuclid: got %v. want %v", got, want)
	}
	if got, want := a.Rem(b), NewIVec4(1, -1, 1, -1); got != want {
		t.Errorf("Rem truncates: got %v. want %v", got, want)
	}
	fa, fb := a.AsDVec4(), b.AsDVec4()
	if got, want := fa.RemEuclid(fb), NewDVec4(1, 2, 1, 2); got != want {
		t.Errorf("float RemEuclid: got %v. want %v", got, want)
	}
	if got, want := fa.DivEuclid(fb), NewDVec4(2, -3, -2, 3); got != want {
		t.Errorf("float DivEuclid: got %v. want %v", got, want)
	}
}

func TestSigns(t *testing.T) {
	negz := math.Copysign(0, -1)
	v := NewDVec4(negz, 0, -3, math.NaN())
	if got := v.IsNegativeBitmask(); got != 0b0101 {
		t.Errorf("IsNegativeBitmask: got %04b", got)
	}
	s := v.Signum()
	if s.X != -1 || s.Y != 1 || s.Z != -1 || !math.IsNaN(s.W) {
		t.Errorf("Signum: got %v", s)
	}
	if got := NewI16Vec3(-5, 0, 9).Signum(); got != NewI16Vec3(-1, 0, 1) {
		t.Errorf("integer Signum: got %v", got)
	}
	if got := NewI64Vec2(-4, 2).IsNegativeBitmask(); got != 0b01 {
		t.Errorf("integer IsNegativeBitmask: got %02b", got)
	}
	if got := NewVec3(-1, 2, -0.5).Copysign(NewVec3(1, -1, -1)); got != NewVec3(1, -2, -0.5) {
		t.Errorf("Copysign: got %v", got)
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	v := NewDVec3(nan, 1, 2)
	w := NewDVec3(0, nan, 3)
	if m := v.Min(w); !math.IsNaN(m.X) || !math.IsNaN(m.Y) || m.Z != 2 {
		t.Errorf("Min: got %v", m)
	}
	if m := v.Max(w); !math.IsNaN(m.X) || !math.IsNaN(m.Y) || m.Z != 3 {
		t.Errorf("Max: got %v", m)
	}
	if !v.IsNaN() || v.IsFinite() || v.IsNaNMask() != NewBVec3(true, false, false) {
		t.Errorf("NaN checks on %v", v)
	}
}

func TestNormalize(t *testing.T) {
	v := NewDVec3(3, 0, 4)
	if got := v.Normalize(); !got.AbsDiffEq(NewDVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Normalize: got %v", got)
	}
	if z := (DVec3{}).Normalize(); !z.IsNaN() {
		t.Errorf("Normalize of zero should be NaN, got %v", z)
	}
	for _, bad := range []Vec2{{}, NewVec2(math32.Inf(1), 0), NewVec2(float32(math.NaN()), 1)} {
		if got, ok := bad.TryNormalize(); ok || got != (Vec2{}) {
			t.Errorf("TryNormalize(%v): got %v, %v", bad, got, ok)
		}
		if got := bad.NormalizeOrZero(); got != (Vec2{}) {
			t.Errorf("NormalizeOrZero(%v): got %v", bad, got)
		}
	}
	if got := NewVec4(0, 0, 2, 0).NormalizeOrZero(); got != NewVec4(0, 0, 1, 0) {
		t.Errorf("NormalizeOrZero: got %v", got)
	}
	if !NewVec3(0, 1, 0).IsNormalized() || NewVec3(0, 1.01, 0).IsNormalized() {
		t.Error("IsNormalized")
	}
}

func TestCross(t *testing.T) {
	a, b := NewVec3(1, 2, 3), NewVec3(4, 5, 6)
	if got := a.Cross(b); got != NewVec3(-3, 6, -3) {
		t.Errorf("float32 Cross: got %v", got)
	}
	if got := a.AsDVec3().Cross(b.AsDVec3()); got != NewDVec3(-3, 6, -3) {
		t.Errorf("float64 Cross: got %v", got)
	}
	if got := a.AsIVec3().Cross(b.AsIVec3()); got != NewIVec3(-3, 6, -3) {
		t.Errorf("int32 Cross: got %v", got)
	}
}

func TestAngles(t *testing.T) {
	const tol = 1e-6
	v := NewDVec2(1, 1)
	if got := v.ToAngle(); !scalar.EqualWithinAbs(got, math.Pi/4, tol) {
		t.Errorf("ToAngle: got %v", got)
	}
	if got := v.FromAngle(math.Pi); !got.AbsDiffEq(NewDVec2(-1, 0), tol) {
		t.Errorf("FromAngle: got %v", got)
	}
	if got := NewDVec2(0, -1).AngleBetween(NewDVec2(1, 0)); !scalar.EqualWithinAbs(got, math.Pi/2, tol) {
		t.Errorf("AngleBetween: got %v", got)
	}
	if got := NewDVec3(1, 0, 0).AngleBetween(NewDVec3(-2, 0, 0)); !scalar.EqualWithinAbs(got, math.Pi, tol) {
		t.Errorf("3D AngleBetween: got %v", got)
	}
	if got := NewDVec2(2, 0).Rotate(NewDVec2(1, 1)); got != NewDVec2(2, 2) {
		t.Errorf("Rotate scales by receiver length: got %v", got)
	}
	for _, pair := range [][2]DVec2{{{}, NewDVec2(1, 2)}, {NewDVec2(-3, 1), {}}, {NewDVec2(-3, -1), {}}, {{}, {}}} {
		if got := pair[0].AngleBetween(pair[1]); got != 0 {
			t.Errorf("AngleBetween(%v, %v) with a zero vector: got %v. want 0", pair[0], pair[1], got)
		}
	}
	if got := (Vec2{}).AngleBetween(NewVec2(0, 1)); got != 0 {
		t.Errorf("float32 AngleBetween with a zero vector: got %v. want 0", got)
	}
}

func TestLengthExtremes(t *testing.T) {
	const h = math.Sqrt2 / 2
	for _, test := range []struct {
		name      string
		got, want DVec4
	}{
		{"DVec2", NewDVec2(1e200, 1e200).NormalizeOrZero().Extend(0).Extend(0), NewDVec4(h, h, 0, 0)},
		{"DVec3", NewDVec3(1e200, 0, 1e200).NormalizeOrZero().Extend(0), NewDVec4(h, 0, h, 0)},
		{"DVec4", NewDVec4(1e200, 1e200, 0, 0).NormalizeOrZero(), NewDVec4(h, h, 0, 0)},
		{"DVec4 tiny", NewDVec4(0, 3e-200, 0, 4e-200).NormalizeOrZero(), NewDVec4(0, 0.6, 0, 0.8)},
		{"Vec2", NewVec2(1e30, 1e30).NormalizeOrZero().Extend(0).Extend(0).AsDVec4(), NewDVec4(h, h, 0, 0)},
		{"Vec3", NewVec3(0, 1e30, 1e30).NormalizeOrZero().Extend(0).AsDVec4(), NewDVec4(0, h, h, 0)},
		{"Vec4", NewVec4(1e30, 0, 0, 1e30).NormalizeOrZero().AsDVec4(), NewDVec4(h, 0, 0, h)},
	} {
		if !test.got.AbsDiffEq(test.want, 1e-6) {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if got := NewDVec4(1e200, 1e200, 0, 0).Length(); !scalar.EqualWithinRel(got, math.Sqrt2*1e200, 1e-12) {
		t.Errorf("DVec4 Length: got %v", got)
	}
	if got := NewVec4(3e30, 0, 4e30, 0).Length(); !scalar.EqualWithinRel(float64(got), 5e30, 1e-6) {
		t.Errorf("Vec4 Length: got %v", got)
	}
	if _, ok := NewDVec4(1e200, 1e200, 0, 0).TryNormalize(); !ok {
		t.Error("DVec4 TryNormalize failed on a large finite vector")
	}
}

func TestAnyOrthonormalPair(t *testing.T) {
	const tol = 1e-5
	for _, n := range []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 0, -1),
		NewVec3(1, 2, 3).Normalize(),
		NewVec3(-0.3, 0.1, -0.9).Normalize(),
	} {
		a, b := n.AnyOrthonormalPair()
		for _, d := range []float32{a.Dot(n), b.Dot(n), a.Dot(b), a.Length() - 1, b.Length() - 1} {
			if math32.Abs(d) > tol {
				t.Errorf("pair %v %v not orthonormal to %v", a, b, n)
				break
			}
		}
		if o := n.AnyOrthonormalVector(); math32.Abs(o.Dot(n)) > tol || !o.IsNormalized() {
			t.Errorf("AnyOrthonormalVector(%v) = %v", n, o)
		}
	}
}

func TestConversions(t *testing.T) {
	if got := NewI8Vec2(-1, 5).AsU8Vec2(); got != NewU8Vec2(255, 5) {
		t.Errorf("AsU8Vec2: got %v", got)
	}
	if got := NewVec3(1.9, -1.9, 300).AsI16Vec3(); got != NewI16Vec3(1, -1, 300) {
		t.Errorf("AsI16Vec3 truncates: got %v", got)
	}
	if got := NewU64Vec4(1, 2, 3, 1<<40).AsUVec4(); got != NewUVec4(1, 2, 3, 0) {
		t.Errorf("AsUVec4 wraps: got %v", got)
	}
	if got := NewIVec2(3, -4).AsDVec2().Length(); got != 5 {
		t.Errorf("AsDVec2: got length %v", got)
	}
}

func TestCheckedConversions(t *testing.T) {
	if got, ok := NewI8Vec3(1, 5, 127).TryAsU8Vec3(); !ok || got != NewU8Vec3(1, 5, 127) {
		t.Errorf("TryAsU8Vec3: got %v, %v", got, ok)
	}
	if got, ok := NewI8Vec3(1, -1, 7).TryAsU8Vec3(); ok || got != (U8Vec3{}) {
		t.Errorf("TryAsU8Vec3 negative: got %v, %v", got, ok)
	}
	if got, ok := NewU16Vec2(255, 0).TryAsU8Vec2(); !ok || got != NewU8Vec2(255, 0) {
		t.Errorf("TryAsU8Vec2: got %v, %v", got, ok)
	}
	if _, ok := NewU16Vec2(1, 256).TryAsU8Vec2(); ok {
		t.Error("TryAsU8Vec2 accepted 256")
	}
	if _, ok := NewU8Vec2(128, 0).TryAsI8Vec2(); ok {
		t.Error("TryAsI8Vec2 accepted 128")
	}
	if got, ok := NewI64Vec4(math.MinInt32, math.MaxInt32, 0, -1).TryAsIVec4(); !ok || got != NewIVec4(math.MinInt32, math.MaxInt32, 0, -1) {
		t.Errorf("TryAsIVec4 bounds: got %v, %v", got, ok)
	}
	if _, ok := NewI64Vec4(0, 0, 0, math.MaxInt32+1).TryAsIVec4(); ok {
		t.Error("TryAsIVec4 accepted MaxInt32+1")
	}
	if _, ok := NewU64Vec2(1<<63, 0).TryAsI64Vec2(); ok {
		t.Error("TryAsI64Vec2 accepted 1<<63")
	}
	if got, ok := NewIVec2(1<<30, 0).TryAsU64Vec2(); !ok || got != NewU64Vec2(1<<30, 0) {
		t.Errorf("TryAsU64Vec2: got %v, %v", got, ok)
	}
	if _, ok := NewIVec2(0, -1).TryAsU64Vec2(); ok {
		t.Error("TryAsU64Vec2 accepted -1")
	}
	if got, ok := NewUVec3(0, 65535, 9).TryAsI16Vec3(); ok || got != (I16Vec3{}) {
		t.Errorf("TryAsI16Vec3 overflow: got %v, %v", got, ok)
	}
}

func TestFloat32Arithmetic(t *testing.T) {
	for _, test := range []struct {
		name      string
		got, want Vec4
	}{
		{"Vec2 Div", NewVec2(1, -6).Div(NewVec2(4, 3)).Extend(0).Extend(0), NewVec4(0.25, -2, 0, 0)},
		{"Vec2 AddScalar", NewVec2(1, -6).AddScalar(0.5).Extend(0).Extend(0), NewVec4(1.5, -5.5, 0, 0)},
		{"Vec2 Rem", NewVec2(7, -7).Rem(NewVec2(3, 3)).Extend(0).Extend(0), NewVec4(1, -1, 0, 0)},
		{"Vec3 Div", NewVec3(1, -6, 9).Div(NewVec3(4, 3, -3)).Extend(0), NewVec4(0.25, -2, -3, 0)},
		{"Vec3 AddScalar", NewVec3(1, -6, 9).AddScalar(-1).Extend(0), NewVec4(0, -7, 8, 0)},
		{"Vec3 MulElem", NewVec3(1, -6, 9).Mul(NewVec3(2, 2, 0.5)).Extend(0), NewVec4(2, -12, 4.5, 0)},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if got := NewVec3(1, 0, 0).Div(Vec3{}); !math32.IsInf(got.X, 1) || !got.IsNaNMask().Test(1) {
		t.Errorf("Vec3 Div by zero: got %v", got)
	}
}

func TestGonumLaneMaps(t *testing.T) {
	for _, test := range []struct {
		name      string
		got, want DVec3
	}{
		{"DVec3 Rem", NewDVec3(7, -7, 5.5).Rem(NewDVec3(3, 3, 2)), NewDVec3(1, -1, 1.5)},
		{"DVec3 RemScalar", NewDVec3(7, -7, 5.5).RemScalar(2), NewDVec3(1, -1, 1.5)},
		{"DVec3 Copysign", NewDVec3(1, -2, 3).Copysign(NewDVec3(-1, -1, 1)), NewDVec3(-1, -2, 3)},
		{"DVec3 Powf", NewDVec3(2, 3, 4).Powf(2), NewDVec3(4, 9, 16)},
		{"DVec2 Rem", NewDVec2(7, -7).Rem(NewDVec2(3, 3)).Extend(0), NewDVec3(1, -1, 0)},
		{"DVec2 Copysign", NewDVec2(1, 2).Copysign(NewDVec2(-1, 0)).Extend(0), NewDVec3(-1, 2, 0)},
		{"DVec2 Powf", NewDVec2(2, 9).Powf(0.5).Extend(0), NewDVec3(math.Sqrt2, 3, 0)},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
}

func TestBitOps(t *testing.T) {
	v := NewU8Vec4(0b1100, 0xff, 1, 0x80)
	w := NewU8Vec4(0b1010, 0x0f, 1, 0x80)
	for _, test := range []struct {
		name      string
		got, want U8Vec4
	}{
		{"And", v.And(w), NewU8Vec4(0b1000, 0x0f, 1, 0x80)},
		{"Or", v.Or(w), NewU8Vec4(0b1110, 0xff, 1, 0x80)},
		{"Xor", v.Xor(w), NewU8Vec4(0b0110, 0xf0, 0, 0)},
		{"Not", v.Not(), NewU8Vec4(0xf3, 0, 0xfe, 0x7f)},
		{"Shl", v.Shl(1), NewU8Vec4(0b11000, 0xfe, 2, 0)},
		{"Shr", v.Shr(4), NewU8Vec4(0, 0x0f, 0, 0x08)},
		{"Shl past width", v.Shl(8), U8Vec4{}},
	} {
		if test.got != test.want {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if got := NewI16Vec2(-16, 16).Shr(2); got != NewI16Vec2(-4, 4) {
		t.Errorf("arithmetic Shr: got %v", got)
	}
}

func TestLaneAccess(t *testing.T) {
	v := NewUVec3(1, 2, 3)
	if v.Dim() != 3 || v.Elem(2) != 3 || v.WithElem(1, 9) != NewUVec3(1, 9, 3) {
		t.Errorf("lane access on %v", v)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out of range lane")
		}
	}()
	v.Elem(3)
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		got, want string
	}{
		{NewVec2(1.5, -2).String(), "[1.5, -2]"},
		{NewI64Vec3(1, 2, -3).String(), "[1, 2, -3]"},
		{NewDVec4(0, 0.25, 1, 1e9).String(), "[0, 0.25, 1, 1e+09]"},
		{NewBVec3(true, false, true).String(), "[true, false, true]"},
	} {
		if test.got != test.want {
			t.Errorf("got %q. want %q", test.got, test.want)
		}
	}
}

func TestBVec(t *testing.T) {
	b := NewBVec4(true, false, true, false)
	if b.Bitmask() != 0b0101 || !b.Any() || b.All() {
		t.Errorf("mask queries on %v", b)
	}
	if got := b.Set(1, true).Set(0, false); got != NewBVec4(false, true, true, false) {
		t.Errorf("Set: got %v", got)
	}
	if got := b.Xor(b.Not()); got != b.True() {
		t.Errorf("Xor: got %v", got)
	}
	if got := b.And(NewBVec4(true, true, false, false)); got.Bitmask() != 1 {
		t.Errorf("And: got %v", got)
	}
	if (BVec2{}).Any() || !(BVec2{}).Splat(true).All() {
		t.Error("BVec2 Splat")
	}
	if got := NewVec3(1, 5, 3).CmpGt(NewVec3(2, 2, 3)); got != NewBVec3(false, true, false) {
		t.Errorf("CmpGt: got %v", got)
	}
}
