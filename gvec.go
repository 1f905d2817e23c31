// Package gvec defines generic interfaces over the fixed size vector types
// of package vec so that code can be written once for every vector width and
// scalar type.
//
// The interfaces form a hierarchy by capability:
//
//	GVec        every vector: construction, lane access, arithmetic, comparisons
//	SignedVec   GVec plus negation, sign and Euclidean division
//	FloatVec    SignedVec plus length, normalization, rounding and interpolation
//	IntVec      GVec plus wrapping, saturating and bitwise arithmetic
//	SIntVec     IntVec and SignedVec
//	UIntVec     IntVec for unsigned lanes
//	GBVec       boolean masks returned by comparisons
//
// Each tier has a 2, 3 and 4 dimensional form adding the methods that only
// make sense for that width, such as Cross on 3-component vectors. The typed
// interfaces I8Vec through F64Vec fix the scalar type of the widest tier that
// applies to it.
//
// Associated types are expressed with type parameters: V is the vector type
// implementing the interface, S its scalar, B its boolean mask and V2, V3, V4
// the vector types of the neighbouring widths. A function generic over
// float vectors looks like:
//
//	func Centroid[V gvec.FloatVec[V, S, B], S gvec.Float, B any](a, b, c V) V {
//		return a.Add(b).Add(c).DivScalar(3)
//	}
//
// GVec2, GVec3 and GVec4 and the width specific forms of every tier fix B
// to vec.BVec2, vec.BVec3 and vec.BVec4. A vector type declared outside
// package vec satisfies them only if its comparisons return those masks.
//
// The interfaces and package vec are generated by cmd/vecgen.
package gvec

import "golang.org/x/exp/constraints"

//go:generate go run ./cmd/vecgen -root .

// Scalar is the lane type of any vector.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// SignedScalar is the lane type of vectors that can be negated.
type SignedScalar interface {
	constraints.Signed | constraints.Float
}

type Float interface {
	constraints.Float
}

type Integer interface {
	constraints.Integer
}

type SignedInteger interface {
	constraints.Signed
}

type UnsignedInteger interface {
	constraints.Unsigned
}
