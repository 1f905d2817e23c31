package scalar

import (
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

func TestLimits(t *testing.T) {
	if got := MaxOf[int8](); got != math.MaxInt8 {
		t.Errorf("MaxOf[int8] got %d, want %d", got, math.MaxInt8)
	}
	if got := MinOf[int8](); got != math.MinInt8 {
		t.Errorf("MinOf[int8] got %d, want %d", got, math.MinInt8)
	}
	if got := MaxOf[uint16](); got != math.MaxUint16 {
		t.Errorf("MaxOf[uint16] got %d, want %d", got, math.MaxUint16)
	}
	if got := MinOf[uint64](); got != 0 {
		t.Errorf("MinOf[uint64] got %d, want 0", got)
	}
	if got := MaxOf[int64](); got != math.MaxInt64 {
		t.Errorf("MaxOf[int64] got %d, want %d", got, int64(math.MaxInt64))
	}
	if got := MinOf[int32](); got != math.MinInt32 {
		t.Errorf("MinOf[int32] got %d, want %d", got, math.MinInt32)
	}
	if !IsSigned[float32]() || IsSigned[uint8]() {
		t.Error("IsSigned misclassified float32 or uint8")
	}
}

func TestSaturating(t *testing.T) {
	for _, tc := range []struct {
		name      string
		got, want int64
	}{
		{"add u8 overflow", int64(SaturatingAdd[uint8](250, 10)), 255},
		{"add u8", int64(SaturatingAdd[uint8](25, 10)), 35},
		{"sub u8 underflow", int64(SaturatingSub[uint8](10, 20)), 0},
		{"add i8 overflow", int64(SaturatingAdd[int8](100, 100)), 127},
		{"add i8 underflow", int64(SaturatingAdd[int8](-100, -100)), -128},
		{"sub i8 overflow", int64(SaturatingSub[int8](100, -100)), 127},
		{"sub i8 underflow", int64(SaturatingSub[int8](-100, 100)), -128},
		{"sub i8", int64(SaturatingSub[int8](-100, -100)), 0},
		{"mul i16 overflow", int64(SaturatingMul[int16](300, 300)), math.MaxInt16},
		{"mul i16 mixed sign", int64(SaturatingMul[int16](-300, 300)), math.MinInt16},
		{"mul i16", int64(SaturatingMul[int16](-30, 30)), -900},
		{"mul i32 min by -1", int64(SaturatingMul[int32](math.MinInt32, -1)), math.MaxInt32},
		{"mul i32 -1 by min", int64(SaturatingMul[int32](-1, math.MinInt32)), math.MaxInt32},
		{"mul u32 overflow", int64(SaturatingMul[uint32](1<<20, 1<<20)), math.MaxUint32},
		{"div i32 min by -1", int64(SaturatingDiv[int32](math.MinInt32, -1)), math.MaxInt32},
		{"div i32", int64(SaturatingDiv[int32](-7, 2)), -3},
		{"add i64 overflow", SaturatingAdd[int64](math.MaxInt64, 1), math.MaxInt64},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestEuclid(t *testing.T) {
	for _, tc := range []struct {
		a, b, q, r int32
	}{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{7, -4, -1, 3},
		{-7, -4, 2, 1},
		{8, 4, 2, 0},
	} {
		q, r := DivEuclid(tc.a, tc.b), RemEuclid(tc.a, tc.b)
		if q != tc.q || r != tc.r {
			t.Errorf("euclid(%d, %d) got (%d, %d), want (%d, %d)", tc.a, tc.b, q, r, tc.q, tc.r)
		}
		if tc.b*q+r != tc.a {
			t.Errorf("euclid(%d, %d) does not reconstruct dividend", tc.a, tc.b)
		}
		fq, fr := FloatDivEuclid(float64(tc.a), float64(tc.b)), FloatRemEuclid(float64(tc.a), float64(tc.b))
		if fq != float64(tc.q) || fr != float64(tc.r) {
			t.Errorf("float euclid(%d, %d) got (%g, %g), want (%d, %d)", tc.a, tc.b, fq, fr, tc.q, tc.r)
		}
	}
}

func TestSigns(t *testing.T) {
	if Signum[int8](0) != 0 || Signum[int8](-5) != -1 || Signum[int8](5) != 1 {
		t.Error("integer signum")
	}
	negZero := math.Copysign(0, -1)
	if FloatSignum(negZero) != -1 || FloatSignum(0.0) != 1 || FloatSignum(float32(-3)) != -1 {
		t.Error("float signum must follow the sign bit")
	}
	if !math.IsNaN(FloatSignum(math.NaN())) {
		t.Error("signum of NaN must be NaN")
	}
	if !Signbit(negZero) || Signbit(0.0) || !Signbit[int16](-1) || Signbit[int16](0) {
		t.Error("signbit")
	}
	if Abs[int32](-4) != 4 || Abs[int32](math.MinInt32) != math.MinInt32 {
		t.Error("abs")
	}
	if !IsFinite(1.5) || IsFinite(math.Inf(-1)) || IsFinite(float32(math.NaN())) {
		t.Error("finite")
	}
}

func TestTryConvert(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  int64
		ok   bool
		want int64
		wok  bool
	}{
		{"i8 to u8 negative", convVal[uint8](int8(-1)), convOK[uint8](int8(-1)), 255, false},
		{"i8 to u8", convVal[uint8](int8(100)), convOK[uint8](int8(100)), 100, true},
		{"u8 to i8 overflow", convVal[int8](uint8(200)), convOK[int8](uint8(200)), -56, false},
		{"u8 to i8", convVal[int8](uint8(127)), convOK[int8](uint8(127)), 127, true},
		{"i32 to i16 overflow", convVal[int16](int32(40000)), convOK[int16](int32(40000)), -25536, false},
		{"i32 to i16 min", convVal[int16](int32(math.MinInt16)), convOK[int16](int32(math.MinInt16)), math.MinInt16, true},
		{"u64 to i64 overflow", convVal[int64](uint64(1 << 63)), convOK[int64](uint64(1 << 63)), math.MinInt64, false},
		{"i64 to u64 negative", convVal[uint64](int64(-5)), convOK[uint64](int64(-5)), -5, false},
		{"i16 to i64", convVal[int64](int16(-300)), convOK[int64](int16(-300)), -300, true},
	} {
		if tc.got != tc.want || tc.ok != tc.wok {
			t.Errorf("%s: got %d %v, want %d %v", tc.name, tc.got, tc.ok, tc.want, tc.wok)
		}
	}
}

func convVal[To, From constraints.Integer](x From) int64 {
	y, _ := TryConvert[To](x)
	return int64(y)
}

func convOK[To, From constraints.Integer](x From) bool {
	_, ok := TryConvert[To](x)
	return ok
}
