package gvec

// Sum returns the component-wise sum of vs, or the zero vector if vs is empty.
func Sum[V GVec[V, S, B], S Scalar, B any](vs ...V) V {
	var sum V
	sum = sum.Zero()
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum
}

// Product returns the component-wise product of vs, or the vector of ones
// if vs is empty.
func Product[V GVec[V, S, B], S Scalar, B any](vs ...V) V {
	var prod V
	prod = prod.One()
	for _, v := range vs {
		prod = prod.Mul(v)
	}
	return prod
}

// Bounds returns the component-wise minimum and maximum of vs.
// It panics if vs is empty.
func Bounds[V GVec[V, S, B], S Scalar, B any](vs ...V) (lo, hi V) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}

// Mean returns the arithmetic mean of vs. It panics if vs is empty.
func Mean[V FloatVec[V, S, B], S Float, B any](vs ...V) V {
	if len(vs) == 0 {
		panic("gvec: mean of no vectors")
	}
	return Sum(vs...).DivScalar(S(len(vs)))
}

// Gather returns the vector whose lane i is lane i of vs[idx[i]]. idx must
// hold at least one index per lane and indices past the last lane are
// ignored. It panics if idx is short or an index is out of range.
//
// With two vectors and idx built from a mask it is the same as V.Select.
func Gather[V GVec[V, S, B], S Scalar, B any](vs []V, idx []int) V {
	var r V
	if len(idx) < r.Dim() {
		panic("gvec: gather needs one index per lane")
	}
	for i, j := range idx[:r.Dim()] {
		r = r.WithElem(i, vs[j].Elem(i))
	}
	return r
}
