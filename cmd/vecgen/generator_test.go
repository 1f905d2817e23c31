package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

func TestPlan(t *testing.T) {
	got := lo.Map(plan(), func(f outputFile, _ int) string { return filepath.ToSlash(f.Path) })
	want := []string{
		"vec/i8vec_gen.go", "vec/u8vec_gen.go", "vec/i16vec_gen.go", "vec/u16vec_gen.go",
		"vec/i32vec_gen.go", "vec/u32vec_gen.go", "vec/i64vec_gen.go", "vec/u64vec_gen.go",
		"vec/f32vec_gen.go", "vec/f64vec_gen.go", "vec/bvec_gen.go",
		"vec_gen.go", "signed_gen.go", "float_gen.go", "int_gen.go", "sint_gen.go", "uint_gen.go",
		"typed_gen.go", "bvec_gen.go",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("planned files mismatch (-want +got):\n%s", diff)
	}
}

// declared renders f and returns the names of its top level types.
func declared(t *testing.T, f outputFile) []string {
	t.Helper()
	src, err := render(f)
	if err != nil {
		t.Fatal(err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), f.Path, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("%s does not parse: %v", f.Path, err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by vecgen. DO NOT EDIT.") {
		t.Errorf("%s lacks the generated code header", f.Path)
	}
	var names []string
	ast.Inspect(file, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok {
			names = append(names, ts.Name.Name)
		}
		return true
	})
	return names
}

func TestRenderedTypes(t *testing.T) {
	want := map[string][]string{
		"vec/f32vec_gen.go": {"Vec2", "Vec3", "Vec4"},
		"vec/f64vec_gen.go": {"DVec2", "DVec3", "DVec4"},
		"vec/i32vec_gen.go": {"IVec2", "IVec3", "IVec4"},
		"vec/u8vec_gen.go":  {"U8Vec2", "U8Vec3", "U8Vec4"},
		"vec/bvec_gen.go":   {"BVec2", "BVec3", "BVec4"},
		"vec_gen.go":        {"GVec", "GVec2", "GVec3", "GVec4"},
		"sint_gen.go":       {"SIntVec", "SIntVec2", "SIntVec3", "SIntVec4"},
		"bvec_gen.go":       {"GBVec", "GBVec2", "GBVec3", "GBVec4"},
		"typed_gen.go": {
			"I8Vec", "U8Vec", "I16Vec", "U16Vec", "I32Vec",
			"U32Vec", "I64Vec", "U64Vec", "F32Vec", "F64Vec",
		},
	}
	for _, f := range plan() {
		names := declared(t, f)
		if w, ok := want[filepath.ToSlash(f.Path)]; ok {
			if diff := cmp.Diff(w, names); diff != "" {
				t.Errorf("%s types mismatch (-want +got):\n%s", f.Path, diff)
			}
		}
	}
}

func TestBackendDelegation(t *testing.T) {
	for _, test := range []struct {
		vec, uses, avoids string
	}{
		{"DVec3", "r3.Cross(", "ms3."},
		{"DVec3", "d3.Map2(r3.Vec(v), d3.Elem(n), math.Pow)", "ms3."},
		{"DVec2", "r2.Unit(", "ms3."},
		{"DVec2", "d2.Map2(r2.Vec(v), r2.Vec(w), math.Copysign)", "r3."},
		{"Vec3", "ms3.Cross(", "r3."},
		{"Vec3", "Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z}", "ms3.DivElem"},
		{"Vec2", "math32.Hypot(v.X, v.Y)", "ms3."},
		{"Vec4", "math32.Hypot(v.X, math32.Hypot(v.Y, math32.Hypot(v.Z, v.W)))", "Sqrt(v.Dot(v))"},
		{"DVec4", "math.Hypot(v.X, math.Hypot(v.Y, math.Hypot(v.Z, v.W)))", "Sqrt(v.Dot(v))"},
	} {
		var f outputFile
		for _, p := range plan() {
			if data, ok := p.Data.(vecFile); ok && lo.ContainsBy(data.Types, func(v vecType) bool { return v.Name == test.vec }) {
				f = p
				f.Data = vecFile{Imports: data.Imports, Types: lo.Filter(data.Types, func(v vecType, _ int) bool { return v.Name == test.vec })}
			}
		}
		src, err := render(f)
		if err != nil {
			t.Fatal(err)
		}
		body := string(src)
		if !strings.Contains(body, test.uses) {
			t.Errorf("%s does not call %s", test.vec, test.uses)
		}
		if strings.Contains(body, test.avoids) {
			t.Errorf("%s unexpectedly refers to %s", test.vec, test.avoids)
		}
	}
}

// glgl at the pinned version only exports these from ms3 and has no ms2.
var glglExports = []string{
	"Vec", "Add", "Sub", "Scale", "Dot", "Cross", "Norm", "Norm2",
	"Unit", "Cos", "MinElem", "MaxElem", "AbsElem", "MulElem",
}

func TestGlglSymbols(t *testing.T) {
	f, ok := lo.Find(plan(), func(f outputFile) bool { return f.Path == filepath.Join("vec", "f32vec_gen.go") })
	if !ok {
		t.Fatal("no float32 file planned")
	}
	src, err := render(f)
	if err != nil {
		t.Fatal(err)
	}
	body := string(src)
	if strings.Contains(body, "ms2") {
		t.Error("float32 vectors refer to glgl ms2")
	}
	for _, m := range regexp.MustCompile(`\bms3\.(\w+)`).FindAllStringSubmatch(body, -1) {
		if !lo.Contains(glglExports, m[1]) {
			t.Errorf("ms3.%s is not exported by glgl", m[1])
		}
	}
}

func TestComponents(t *testing.T) {
	c := components{Comps: []string{"X", "Y", "Z"}, Math: "math32"}
	for _, test := range []struct {
		got, want string
	}{
		{c.Lanes("v.$ + w.$"), "v.X + w.X, v.Y + w.Y, v.Z + w.Z"},
		{c.Join("v.$*w.$", " + "), "v.X*w.X + v.Y*w.Y + v.Z*w.Z"},
		{c.Lanes("@"), "x, y, z"},
		{c.Lanes("dst[#]"), "dst[0], dst[1], dst[2]"},
		{c.Lanes("~.Abs(v.$)"), "math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)"},
	} {
		if test.got != test.want {
			t.Errorf("got %q. want %q", test.got, test.want)
		}
	}
}

func TestImportBlock(t *testing.T) {
	for _, test := range []struct {
		std, ext []string
		want     string
	}{
		{nil, []string{"a/b"}, `import "a/b"`},
		{[]string{"math", "fmt"}, nil, "import (\n\t\"fmt\"\n\t\"math\"\n)"},
		{[]string{"fmt"}, []string{"z/y", "a/b"}, "import (\n\t\"fmt\"\n\n\t\"a/b\"\n\t\"z/y\"\n)"},
	} {
		if got := importBlock(test.std, test.ext); got != test.want {
			t.Errorf("importBlock(%q, %q):\n%s\nwant:\n%s", test.std, test.ext, got, test.want)
		}
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	g := Generator{Root: dir}
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	g.Check = true
	if err := g.Run(); err != nil {
		t.Fatalf("freshly generated tree reported stale: %v", err)
	}
	path := filepath.Join(dir, "vec", "bvec_gen.go")
	if err := os.WriteFile(path, []byte("package vec\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := g.Run()
	if err == nil || !strings.Contains(err.Error(), "bvec_gen.go") {
		t.Errorf("expected stale file error naming bvec_gen.go, got %v", err)
	}
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	g := Generator{Root: filepath.Join("..", ".."), Check: true}
	if err := g.Run(); err != nil {
		t.Error(err)
	}
}
