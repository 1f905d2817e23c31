package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const modulePath = "github.com/soypat/gvec"

// scalarKind describes one lane type of the generated vectors.
type scalarKind struct {
	Prefix string // Type name prefix, "I16" in I16Vec3.
	Type   string
	Typed  string // Typed interface fixing the scalar to Type.
	File   string // Output file in package vec.
	Signed bool
	Float  bool
	Min    string
	Max    string
}

var scalarKinds = []scalarKind{
	{Prefix: "I8", Type: "int8", Typed: "I8Vec", File: "i8vec_gen.go", Signed: true, Min: "math.MinInt8", Max: "math.MaxInt8"},
	{Prefix: "U8", Type: "uint8", Typed: "U8Vec", File: "u8vec_gen.go", Min: "0", Max: "math.MaxUint8"},
	{Prefix: "I16", Type: "int16", Typed: "I16Vec", File: "i16vec_gen.go", Signed: true, Min: "math.MinInt16", Max: "math.MaxInt16"},
	{Prefix: "U16", Type: "uint16", Typed: "U16Vec", File: "u16vec_gen.go", Min: "0", Max: "math.MaxUint16"},
	{Prefix: "I", Type: "int32", Typed: "I32Vec", File: "i32vec_gen.go", Signed: true, Min: "math.MinInt32", Max: "math.MaxInt32"},
	{Prefix: "U", Type: "uint32", Typed: "U32Vec", File: "u32vec_gen.go", Min: "0", Max: "math.MaxUint32"},
	{Prefix: "I64", Type: "int64", Typed: "I64Vec", File: "i64vec_gen.go", Signed: true, Min: "math.MinInt64", Max: "math.MaxInt64"},
	{Prefix: "U64", Type: "uint64", Typed: "U64Vec", File: "u64vec_gen.go", Min: "0", Max: "math.MaxUint64"},
	{Prefix: "", Type: "float32", Typed: "F32Vec", File: "f32vec_gen.go", Signed: true, Float: true, Min: "-math.MaxFloat32", Max: "math.MaxFloat32"},
	{Prefix: "D", Type: "float64", Typed: "F64Vec", File: "f64vec_gen.go", Signed: true, Float: true, Min: "-math.MaxFloat64", Max: "math.MaxFloat64"},
}

func (k scalarKind) vecName(dim int) string { return k.Prefix + "Vec" + strconv.Itoa(dim) }

// typedTier is the widest tier a typed interface of k specializes.
func (k scalarKind) typedTier() string {
	switch {
	case k.Float:
		return "FloatVec"
	case k.Signed:
		return "SIntVec"
	}
	return "UIntVec"
}

var dims = []int{2, 3, 4}

var allComps = []string{"X", "Y", "Z", "W"}

// backends maps the vector types declared on an existing vector type to
// the package of that type. Their methods delegate to it. glgl only ships
// a 3D package so Vec2 and Vec4 stay plain structs.
var backends = map[string]string{
	"DVec2": "r2",
	"DVec3": "r3",
	"Vec3":  "ms3",
}

// tier is one level of the interface hierarchy.
type tier struct {
	Name       string
	File       string // Output file in the root package.
	Constraint string
	Parents    []string
	Doc        string
	accepts    func(scalarKind) bool
}

var tiers = []tier{
	{
		Name: "GVec", File: "vec_gen.go", Constraint: "Scalar",
		Doc:     "GVec is implemented by every vector type. V is the vector type itself,\n// S its scalar and B the boolean mask returned by comparisons.",
		accepts: func(scalarKind) bool { return true },
	},
	{
		Name: "SignedVec", File: "signed_gen.go", Constraint: "SignedScalar", Parents: []string{"GVec"},
		Doc:     "SignedVec is implemented by vectors of signed integers and floats.",
		accepts: func(k scalarKind) bool { return k.Signed },
	},
	{
		Name: "FloatVec", File: "float_gen.go", Constraint: "Float", Parents: []string{"SignedVec"},
		Doc:     "FloatVec is implemented by floating point vectors.",
		accepts: func(k scalarKind) bool { return k.Float },
	},
	{
		Name: "IntVec", File: "int_gen.go", Constraint: "Integer", Parents: []string{"GVec"},
		Doc:     "IntVec is implemented by integer vectors. Plain arithmetic wraps on\n// overflow like Go integer arithmetic.",
		accepts: func(k scalarKind) bool { return !k.Float },
	},
	{
		Name: "SIntVec", File: "sint_gen.go", Constraint: "SignedInteger", Parents: []string{"IntVec", "SignedVec"},
		Doc:     "SIntVec is implemented by signed integer vectors.",
		accepts: func(k scalarKind) bool { return k.Signed && !k.Float },
	},
	{
		Name: "UIntVec", File: "uint_gen.go", Constraint: "UnsignedInteger", Parents: []string{"IntVec"},
		Doc:     "UIntVec is implemented by unsigned integer vectors.",
		accepts: func(k scalarKind) bool { return !k.Signed },
	},
}

// components holds the lane names of a vector and expands per-lane formats.
// In a format $ is replaced by the lane name, @ by its lower case form,
// # by the lane index and ~ by the math package of the scalar.
type components struct {
	Comps []string
	Math  string
}

func (c components) expand(format string, i int) string {
	r := strings.NewReplacer(
		"$", c.Comps[i],
		"@", strings.ToLower(c.Comps[i]),
		"#", strconv.Itoa(i),
		"~", c.Math,
	)
	return r.Replace(format)
}

// Join expands format once per lane and joins the results with sep.
func (c components) Join(format, sep string) string {
	return strings.Join(lo.Map(c.Comps, func(_ string, i int) string {
		return c.expand(format, i)
	}), sep)
}

// Lanes is Join with a comma separator, ready for argument and element lists.
func (c components) Lanes(format string) string { return c.Join(format, ", ") }

type axis struct {
	Comp   string
	Lit    string
	NegLit string
}

type comparison struct {
	Name  string
	Op    string
	Lanes string
}

type conversion struct {
	Target string
	Lanes  string
}

// checkedConversion is an integer conversion that reports lanes out of
// range of the target scalar.
type checkedConversion struct {
	Target string
	Scalar string
	Lines  string // One scalar.TryConvert assignment per lane.
	Fail   string
	Values string
}

type rounder struct {
	Method string
	Func   string
	Doc    string
	Lane   string
}

// vecType is the template data of one concrete vector type.
type vecType struct {
	components
	Name        string
	Scalar      string
	Dim         int
	BVec        string
	Backend     string
	ElemHelper  string // Package with MinElem, MaxElem, AbsElem and MulElem.
	Helper      string // Lane helper package of gonum backed types.
	Gonum       bool
	Glgl        bool
	Signed      bool
	Float       bool
	F32         bool
	MinConst    string
	MaxConst    string
	Extend      string
	ExtendDim   int
	Truncate    string
	TruncateDim int
	TruncLanes  string
	Axes        []axis
	Cmps        []comparison
	Hypot       string // Overflow safe length of the plain struct floats.
	Conversions []conversion
	Checked     []checkedConversion
	Rounders    []rounder
}

var comparisons = []struct{ name, op string }{
	{"Eq", "=="}, {"Ne", "!="}, {"Ge", ">="}, {"Gt", ">"}, {"Le", "<="}, {"Lt", "<"},
}

var rounders = []rounder{
	{Method: "Round", Func: "Round", Doc: "Round returns each component of v rounded to the nearest integer, with halves rounded away from zero."},
	{Method: "Floor", Func: "Floor", Doc: "Floor returns the greatest integer value less than or equal to each component of v."},
	{Method: "Ceil", Func: "Ceil", Doc: "Ceil returns the least integer value greater than or equal to each component of v."},
	{Method: "Trunc", Func: "Trunc", Doc: "Trunc returns the integer part of each component of v."},
	{Method: "Exp", Func: "Exp", Doc: "Exp returns e raised to the power of each component of v."},
}

func newVecType(k scalarKind, dim int) vecType {
	t := vecType{
		components: components{Comps: allComps[:dim]},
		Name:       k.vecName(dim),
		Scalar:     k.Type,
		Dim:        dim,
		BVec:       "BVec" + strconv.Itoa(dim),
		Signed:     k.Signed,
		Float:      k.Float,
		F32:        k.Type == "float32",
		MinConst:   k.Min,
		MaxConst:   k.Max,
	}
	if k.Float {
		t.Math = "math"
		if t.F32 {
			t.Math = "math32"
		}
	}
	t.Backend = backends[t.Name]
	switch t.Backend {
	case "r2", "r3":
		t.Gonum = true
		t.Helper = "d" + t.Backend[1:]
		t.ElemHelper = t.Helper
	case "ms3":
		t.Glgl = true
		t.ElemHelper = t.Backend
	}
	if dim < 4 {
		t.Extend = k.vecName(dim + 1)
		t.ExtendDim = dim + 1
	}
	if dim > 2 {
		t.Truncate = k.vecName(dim - 1)
		t.TruncateDim = dim - 1
		t.TruncLanes = components{Comps: allComps[:dim-1]}.Lanes("v.$")
	}
	for i, c := range t.Comps {
		lit := lo.Map(t.Comps, func(_ string, j int) string { return lo.Ternary(i == j, "1", "0") })
		neg := lo.Map(t.Comps, func(_ string, j int) string { return lo.Ternary(i == j, "-1", "0") })
		t.Axes = append(t.Axes, axis{Comp: c, Lit: strings.Join(lit, ", "), NegLit: strings.Join(neg, ", ")})
	}
	for _, c := range comparisons {
		t.Cmps = append(t.Cmps, comparison{Name: c.name, Op: c.op, Lanes: t.Lanes("v.$ " + c.op + " w.$")})
	}
	for _, other := range scalarKinds {
		if other.Type == k.Type {
			continue
		}
		t.Conversions = append(t.Conversions, conversion{
			Target: other.vecName(dim),
			Lanes:  t.Lanes(other.Type + "(v.$)"),
		})
		if !k.Float && !other.Float {
			t.Checked = append(t.Checked, checkedConversion{
				Target: other.vecName(dim),
				Scalar: other.Type,
				Lines:  t.Join("@, ok$ := scalar.TryConvert["+other.Type+"](v.$)", "\n\t"),
				Fail:   t.Join("!ok$", " || "),
				Values: t.Lanes("@"),
			})
		}
	}
	if k.Float {
		t.Hypot = hypot(t.Math, t.Comps)
		t.Rounders = lo.Map(rounders, func(r rounder, _ int) rounder {
			r.Lane = "~." + r.Func + "(v.$)"
			return r
		})
	}
	return t
}

// ifaceDecl is the template data of one generated interface.
type ifaceDecl struct {
	Name   string
	Tier   string
	Dim    int // Zero for the dimension agnostic interface.
	Comps  []string
	Params string
	Args   string
	Up     string
	Down   string
	Doc    string
	Embeds []string
	Impls  []string
}

// neighbours returns the type parameters naming the vectors one dimension
// below and above dim.
func neighbours(dim int) []string {
	switch dim {
	case 2:
		return []string{"V3"}
	case 3:
		return []string{"V2", "V4"}
	}
	return []string{"V3"}
}

func newIfaceDecl(t tier, dim int) ifaceDecl {
	d := ifaceDecl{Tier: t.Name, Dim: dim, Name: t.Name}
	accepted := lo.Filter(scalarKinds, func(k scalarKind, _ int) bool { return t.accepts(k) })
	if dim == 0 {
		d.Params = fmt.Sprintf("V any, S %s, B any", t.Constraint)
		d.Doc = "// " + t.Doc
		if len(t.Parents) == 0 {
			d.Embeds = []string{"fmt.Stringer"}
		}
		for _, p := range t.Parents {
			d.Embeds = append(d.Embeds, p+"[V, S, B]")
		}
		for _, k := range accepted {
			for _, n := range dims {
				d.Impls = append(d.Impls, fmt.Sprintf("%s[vec.%s, %s, vec.BVec%d] = vec.%s{}", t.Name, k.vecName(n), k.Type, n, k.vecName(n)))
			}
		}
		return d
	}
	nb := neighbours(dim)
	d.Name += strconv.Itoa(dim)
	d.Comps = allComps[:dim]
	d.Params = fmt.Sprintf("V any, S %s, %s any", t.Constraint, strings.Join(nb, ", "))
	d.Args = components{Comps: d.Comps}.Lanes("@") + " S"
	if dim < 4 {
		d.Up = "V" + strconv.Itoa(dim+1)
	}
	if dim > 2 {
		d.Down = "V" + strconv.Itoa(dim-1)
	}
	switch dim {
	case 2:
		d.Doc = fmt.Sprintf("// %s is %s for 2-component vectors. V3 is the type returned by Extend.", d.Name, t.Name)
	case 3:
		d.Doc = fmt.Sprintf("// %s is %s for 3-component vectors. V2 and V4 are the types\n// returned by Truncate and Extend.", d.Name, t.Name)
	case 4:
		d.Doc = fmt.Sprintf("// %s is %s for 4-component vectors. V3 is the type returned by Truncate.", d.Name, t.Name)
	}
	dimArgs := "V, S, " + strings.Join(nb, ", ")
	d.Embeds = []string{fmt.Sprintf("%s[V, S, vec.BVec%d]", t.Name, dim)}
	for _, p := range t.Parents {
		d.Embeds = append(d.Embeds, fmt.Sprintf("%s%d[%s]", p, dim, dimArgs))
	}
	for _, k := range accepted {
		args := lo.Map(nb, func(p string, _ int) string {
			n, _ := strconv.Atoi(p[1:])
			return "vec." + k.vecName(n)
		})
		d.Impls = append(d.Impls, fmt.Sprintf("%s[vec.%s, %s, %s] = vec.%s{}", d.Name, k.vecName(dim), k.Type, strings.Join(args, ", "), k.vecName(dim)))
	}
	return d
}

// typedDecl is the template data of a typed interface such as F32Vec.
type typedDecl struct {
	Name   string
	Tier   string
	Scalar string
	Impls  []string
}

func newTypedDecl(k scalarKind) typedDecl {
	return typedDecl{
		Name:   k.Typed,
		Tier:   k.typedTier(),
		Scalar: k.Type,
		Impls: lo.Map(dims, func(n int, _ int) string {
			return fmt.Sprintf("%s[vec.%s, vec.BVec%d] = vec.%s{}", k.Typed, k.vecName(n), n, k.vecName(n))
		}),
	}
}

// bvecType is the template data of a boolean mask type.
type bvecType struct {
	components
	Name string
	Dim  int
	Args string
}

func newBVecType(dim int) bvecType {
	c := components{Comps: allComps[:dim]}
	return bvecType{
		components: c,
		Name:       "BVec" + strconv.Itoa(dim),
		Dim:        dim,
		Args:       c.Lanes("@") + " bool",
	}
}

// hypot nests math.Hypot over the lanes so that the length does not
// overflow or underflow when the squared components would.
func hypot(pkg string, comps []string) string {
	last := len(comps) - 1
	expr := "v." + comps[last]
	for i := last - 1; i >= 0; i-- {
		expr = pkg + ".Hypot(v." + comps[i] + ", " + expr + ")"
	}
	return expr
}
