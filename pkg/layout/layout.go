// Package layout implements the descriptor that maps N-dimensional
// logical indices to a flat buffer position, and the transformations
// (slice, permute, axis-delete, axis-grow) that derive one layout from
// another.
//
// Grounded on eager_tensor.Tensor's {shape, strides, offset} triple
// (x/math/tensor/eager_tensor/tensor.go) and types.Shape.Strides /
// IsContiguous (x/math/tensor/types/shape.go): the teacher infers
// contiguity from a nil strides field, this module instead stores an
// explicit IsView flag since spec.md requires it to be queryable
// independent of whether the strides happen to be canonical.
package layout

import (
	"github.com/oren12321/oc-array/internal/dims"
	"github.com/oren12321/oc-array/pkg/interval"
)

// Layout is the {dims, strides, offset, count, is_view} descriptor.
type Layout struct {
	dims    dims.Vec
	strides dims.Vec
	offset  int
	count   int
	isView  bool
}

// FromShape builds a fresh, non-view, row-major layout over shape. A
// shape with any non-positive dimension produces an empty layout
// (count == 0); this is not an error, per spec.md §4.2.
func FromShape(shape ...int) Layout {
	l := Layout{offset: 0, isView: false}
	l.dims.Set(shape)
	if !validDims(shape) {
		l.count = 0
		l.strides.Set(zeros(len(shape)))
		return l
	}
	l.count = product(shape)
	l.strides.Set(rowMajorStrides(shape))
	return l
}

// Rank returns the number of dimensions.
func (l Layout) Rank() int { return l.dims.Len() }

// Dims returns the layout's dimension sizes.
func (l *Layout) Dims() []int { return l.dims.Slice() }

// Strides returns the layout's strides.
func (l *Layout) Strides() []int { return l.strides.Slice() }

// Dim returns the i-th dimension size.
func (l Layout) Dim(i int) int { return l.dims.At(i) }

// Stride returns the i-th stride.
func (l Layout) Stride(i int) int { return l.strides.At(i) }

// Offset returns the base offset into the shared buffer.
func (l Layout) Offset() int { return l.offset }

// Count returns the total number of elements the layout addresses.
func (l Layout) Count() int { return l.count }

// IsView reports whether this layout was derived by slicing a parent.
func (l Layout) IsView() bool { return l.isView }

// IsEmpty reports whether the layout has no storage obligation.
func (l Layout) IsEmpty() bool { return l.count == 0 }

// IsContiguous reports whether the layout's strides describe a dense
// row-major layout for its shape, i.e. whether it could be walked by a
// Fast cursor.
func (l *Layout) IsContiguous() bool {
	if l.Rank() == 0 {
		return true
	}
	canon := rowMajorStrides(l.Dims())
	actual := l.Strides()
	for i := range canon {
		if actual[i] != canon[i] {
			return false
		}
	}
	return true
}

// FlatOf returns the flat buffer position for a full subscript tuple.
// Negative subscripts and subscripts >= the corresponding dimension wrap
// via Euclidean modulo, per spec.md §3.
func (l *Layout) FlatOf(subs ...int) int {
	d := l.Dims()
	s := l.Strides()
	pos := l.offset
	// Fewer subscripts than rank: missing leading axes are taken as 0.
	skip := len(d) - len(subs)
	for i, sub := range subs {
		axis := i + skip
		if axis < 0 {
			continue
		}
		wrapped := interval.Modulo(sub, d[axis])
		pos += s[axis] * wrapped
	}
	return pos
}

// Slice derives a layout by slicing parent p with intervals ivs (missing
// trailing intervals mean "take all" of that axis). Returns an empty
// layout if p is empty or any canonicalised interval is degenerate.
func Slice(p *Layout, ivs []interval.Interval) Layout {
	rank := p.Rank()
	out := Layout{isView: true}
	outDims := make([]int, rank)
	outStrides := make([]int, rank)
	offset := p.offset

	if p.IsEmpty() {
		out.dims.Set(p.Dims())
		out.strides.Set(p.Strides())
		out.offset = p.offset
		out.count = 0
		return out
	}

	pDims := p.Dims()
	pStrides := p.Strides()
	degenerate := false
	for i := 0; i < rank; i++ {
		if i >= len(ivs) {
			outDims[i] = pDims[i]
			outStrides[i] = pStrides[i]
			continue
		}
		canon := ivs[i].Canonicalize(pDims[i])
		if canon.Degenerate() {
			degenerate = true
		}
		outDims[i] = canon.Len()
		outStrides[i] = pStrides[i] * canon.Step
		offset += pStrides[i] * canon.Start
	}

	out.dims.Set(outDims)
	out.strides.Set(outStrides)
	out.offset = offset
	if degenerate {
		out.count = 0
	} else {
		out.count = product(outDims)
	}
	return out
}

// Permute derives a layout by permuting parent p's axes according to
// order (order[i] names which parent axis becomes result axis i). Per
// spec.md §9, the result is always materialised with fresh row-major
// strides over the permuted shape rather than carrying permuted strides
// — a permuted layout is therefore its own storage obligation (callers
// must copy elements into it, they cannot alias the parent buffer).
// A malformed order (wrong length, not a permutation) yields an empty
// layout.
func Permute(p *Layout, order []int) Layout {
	rank := p.Rank()
	out := Layout{isView: false}
	if len(order) != rank || !isPermutation(order, rank) {
		out.dims.Set(zeros(rank))
		out.strides.Set(zeros(rank))
		out.count = 0
		return out
	}
	pDims := p.Dims()
	newDims := make([]int, rank)
	for i, axis := range order {
		newDims[i] = pDims[axis]
	}
	out.dims.Set(newDims)
	out.strides.Set(rowMajorStrides(newDims))
	out.count = product(newDims)
	return out
}

// DeleteAxis derives the output shape of an along-axis reduction: axis a
// is removed from parent p; if p is 1-D the result has shape {1} per
// spec.md §4.2.
func DeleteAxis(p *Layout, axis int) Layout {
	rank := p.Rank()
	out := Layout{isView: false}
	if rank <= 1 {
		out.dims.Set([]int{1})
		out.strides.Set([]int{1})
		out.count = 1
		return out
	}
	pDims := p.Dims()
	newDims := make([]int, 0, rank-1)
	for i, d := range pDims {
		if i == axis {
			continue
		}
		newDims = append(newDims, d)
	}
	out.dims.Set(newDims)
	out.strides.Set(rowMajorStrides(newDims))
	out.count = product(newDims)
	return out
}

// Grow derives the output shape of an axis-growth transform (used by
// append/insert/remove): dims[axis] += delta (delta may be negative).
// Yields an empty layout if the result would have a non-positive dim.
func Grow(p *Layout, axis int, delta int) Layout {
	pDims := p.Dims()
	newDims := make([]int, len(pDims))
	copy(newDims, pDims)
	newDims[axis] += delta

	out := Layout{isView: false}
	if newDims[axis] <= 0 {
		out.dims.Set(newDims)
		out.strides.Set(zeros(len(newDims)))
		out.count = 0
		return out
	}
	out.dims.Set(newDims)
	out.strides.Set(rowMajorStrides(newDims))
	out.count = product(newDims)
	return out
}

func validDims(shape []int) bool {
	if len(shape) == 0 {
		return true
	}
	for _, d := range shape {
		if d < 1 {
			return false
		}
	}
	return true
}

func product(shape []int) int {
	if len(shape) == 0 {
		return 1
	}
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func rowMajorStrides(shape []int) []int {
	n := len(shape)
	if n == 0 {
		return nil
	}
	strides := make([]int, n)
	stride := 1
	for i := n - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

func zeros(n int) []int {
	if n == 0 {
		return nil
	}
	return make([]int, n)
}

func isPermutation(order []int, rank int) bool {
	seen := make([]bool, rank)
	for _, axis := range order {
		if axis < 0 || axis >= rank || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}
