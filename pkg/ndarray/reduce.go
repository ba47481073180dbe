package ndarray

import (
	"github.com/oren12321/oc-array/pkg/cursor"
	"github.com/oren12321/oc-array/pkg/layout"
)

// Reduce folds op over every element of a in default order, per
// spec.md §4.6's whole-array reduction form: the first element (in
// default-cursor order) seeds the accumulator, and op folds the
// remaining n-1 elements left-to-right. An empty a yields T's zero
// value, since there is no element to seed the accumulator with.
func Reduce[T any](a Array[T], op func(acc, v T) T) T {
	var acc T
	n := a.Count()
	if n == 0 {
		return acc
	}
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	acc = data[c.Deref()]
	for i := 1; i < n; i++ {
		c.Advance(1)
		acc = op(acc, data[c.Deref()])
	}
	return acc
}

// ReduceInit folds op over every element of a in default order,
// starting from a caller-supplied seed rather than the first element —
// useful when the identity of op isn't a's own first element (e.g.
// counting, or folding into a differently-typed accumulator).
func ReduceInit[T, A any](a Array[T], init A, op func(acc A, v T) A) A {
	acc := init
	n := a.Count()
	if n == 0 {
		return acc
	}
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	for i := 0; i < n; i++ {
		acc = op(acc, data[c.Deref()])
		if i != n-1 {
			c.Advance(1)
		}
	}
	return acc
}

// ReduceAxis folds op along axis, producing an array whose shape is a's
// shape with axis removed (or {1} if a is 1-D), per spec.md §4.6. An
// axis outside [0, rank) defaults to the last axis, per spec.md's
// explicit rule for an out-of-range axis argument.
func ReduceAxis[T any](a Array[T], axis int, init T, op func(acc, v T) T) Array[T] {
	rank := a.l.Rank()
	if axis < 0 || axis >= rank {
		axis = rank - 1
	}
	outL := layout.DeleteAxis(&a.l, axis)
	out := make([]T, outL.Count())
	for i := range out {
		out[i] = init
	}
	if a.Count() == 0 {
		return FromData(out, outL.Dims()...)
	}
	data := a.buf.Data()
	dims := a.l.Dims()
	axisLen := dims[axis]

	// Walk a with axis as the innermost (fastest-varying) axis, so the
	// axisLen values that fold into one output position come one after
	// another, and output positions are visited in row-major order —
	// grounded on the teacher's per-axis Elements walk
	// (generics.ElementsIndices), generalised to a caller-chosen fold.
	outBase := cursor.NewDefault(&outL)
	outPositions := make([]int, outL.Count())
	for i := 0; i < outL.Count(); i++ {
		outPositions[i] = outBase.Deref()
		if i != outL.Count()-1 {
			outBase.Advance(1)
		}
	}

	order := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != axis {
			order = append(order, i)
		}
	}
	order = append(order, axis)

	ac := cursor.NewOrdered(&a.l, order)
	outerCount := outL.Count()
	for o := 0; o < outerCount; o++ {
		for j := 0; j < axisLen; j++ {
			out[outPositions[o]] = op(out[outPositions[o]], data[ac.Deref()])
			if !(o == outerCount-1 && j == axisLen-1) {
				ac.Advance(1)
			}
		}
	}
	return FromData(out, outL.Dims()...)
}
