// Package ndarray implements Array[T], the polymorphic dense N-dimensional
// array handle of spec.md §3-4: a {layout, shared buffer} pair, together
// with the shape transformations and traversal-driven operators built on
// top of pkg/layout and pkg/cursor.
//
// Grounded on eager_tensor.Tensor (x/math/tensor/eager_tensor/tensor.go):
// At/Set's multi-dim indexing, Slice's offset+stride view arithmetic,
// Reshape's view-when-possible rule, and Clone/Copy's
// deep-copy-vs-in-place-copy split are generalised from the teacher's
// fixed DataType enum to a real Go type parameter per spec.md §9. At/Set
// have no linear-index special case: fewer subscripts than rank address
// the trailing axes. Reshape copies whenever its input is a view and
// shares the buffer otherwise, whether or not the rank changes.
package ndarray

import (
	"github.com/oren12321/oc-array/internal/arrayerr"
	"github.com/oren12321/oc-array/internal/buffer"
	"github.com/oren12321/oc-array/internal/numeric"
	"github.com/oren12321/oc-array/pkg/cursor"
	"github.com/oren12321/oc-array/pkg/interval"
	"github.com/oren12321/oc-array/pkg/layout"
)

// Array is the array handle: a layout descriptor over a shared, possibly
// aliased buffer. The zero value is the empty array.
type Array[T any] struct {
	l   layout.Layout
	buf *buffer.Shared[T]
}

// New allocates a fresh, non-view array of the given shape, every
// element set to fill.
func New[T any](fill T, shape ...int) Array[T] {
	l := layout.FromShape(shape...)
	buf := buffer.New[T](l.Count())
	data := buf.Data()
	for i := range data {
		data[i] = fill
	}
	return Array[T]{l: l, buf: buf}
}

// FromData builds a fresh, non-view array of the given shape directly
// over data (no copy — data becomes the array's owned backing storage,
// matching eager_tensor.FromFloat32's "slice is used directly" contract).
// Panics with a ShapeMismatch if len(data) does not match the shape's
// element count.
func FromData[T any](data []T, shape ...int) Array[T] {
	l := layout.FromShape(shape...)
	if len(data) != l.Count() {
		arrayerr.Panic(arrayerr.ShapeMismatch, "ndarray.FromData",
			"data length %d does not match shape size %d", len(data), l.Count())
	}
	return Array[T]{l: l, buf: buffer.Wrap(data)}
}

// FromForeign builds a fresh, non-view array of T by elementwise
// converting a []From source, per spec.md §3's "shape + foreign-type
// source with elementwise conversion" construction form.
func FromForeign[From, T numeric.Numeric](data []From, shape ...int) Array[T] {
	l := layout.FromShape(shape...)
	if len(data) != l.Count() {
		arrayerr.Panic(arrayerr.ShapeMismatch, "ndarray.FromForeign",
			"data length %d does not match shape size %d", len(data), l.Count())
	}
	buf := buffer.New[T](l.Count())
	dst := buf.Data()
	for i, v := range data {
		dst[i] = numeric.Convert[From, T](v)
	}
	return Array[T]{l: l, buf: buf}
}

// Shape returns the array's dimension sizes.
func (a Array[T]) Shape() []int {
	l := a.l
	return append([]int(nil), l.Dims()...)
}

// Rank returns the number of dimensions.
func (a Array[T]) Rank() int { return a.l.Rank() }

// Count returns the total number of elements.
func (a Array[T]) Count() int { return a.l.Count() }

// Empty reports whether the array has no storage obligation.
func (a Array[T]) Empty() bool { return a.l.IsEmpty() }

// IsView reports whether this handle shares storage with a parent array.
func (a Array[T]) IsView() bool { return a.l.IsView() }

func (a *Array[T]) layoutPtr() *layout.Layout { return &a.l }

// sameShape reports whether a and b have identical dimension sizes.
func (a Array[T]) sameShape(b Array[T]) bool {
	sa, sb := a.l.Dims(), b.l.Dims()
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// At returns the element at the given subscript tuple. Negative
// subscripts and out-of-range ones wrap via Euclidean modulo; fewer
// subscripts than rank are treated as trailing axes (missing leading
// subscripts are 0), per spec.md §3.
func (a Array[T]) At(subs ...int) T {
	l := a.l
	return a.buf.Data()[l.FlatOf(subs...)]
}

// Set writes value at the given subscript tuple.
func (a Array[T]) Set(value T, subs ...int) {
	l := a.l
	a.buf.Data()[l.FlatOf(subs...)] = value
}

// Ptr returns a pointer to the element at the given subscript tuple, for
// callers that want to mutate in place without a separate Set call.
func (a Array[T]) Ptr(subs ...int) *T {
	l := a.l
	return &a.buf.Data()[l.FlatOf(subs...)]
}

// Slice returns a view over a sharing the same buffer, sliced by ivs (one
// interval per leading axis; missing trailing intervals take the whole
// axis). An empty ivs returns the original array, per spec.md §4.4.
func (a Array[T]) Slice(ivs ...interval.Interval) Array[T] {
	if len(ivs) == 0 {
		return Array[T]{l: a.l, buf: a.buf.Retain()}
	}
	newL := layout.Slice(&a.l, ivs)
	return Array[T]{l: newL, buf: a.buf.Retain()}
}

// Gather returns a newly allocated, non-view array whose shape equals
// idx's shape and whose values are read from a's raw backing buffer at
// the flat positions named by idx, per spec.md §4.4's index-array slice
// form. idx's own layout (offset/strides) is irrelevant to the positions
// it yields — it is walked like any other array, its *values* are the
// positions into a's buffer.
func (a Array[T]) Gather(idx Array[int]) Array[T] {
	n := idx.Count()
	out := make([]T, n)
	data := a.buf.Data()
	c := cursor.NewDefault(&idx.l)
	for i := 0; i < n; i++ {
		pos := idx.buf.Data()[c.Deref()]
		out[i] = data[pos]
		if i != n-1 {
			c.Advance(1)
		}
	}
	return FromData(out, idx.Shape()...)
}

// Clone returns a deep copy of a: a freshly allocated, non-view array
// sharing no buffer with a.
func (a Array[T]) Clone() Array[T] {
	n := a.Count()
	out := make([]T, n)
	if n > 0 {
		srcData := a.buf.Data()
		c := cursor.NewDefault(&a.l)
		for i := 0; i < n; i++ {
			out[i] = srcData[c.Deref()]
			if i != n-1 {
				c.Advance(1)
			}
		}
	}
	return FromData(out, a.l.Dims()...)
}

// Assign implements the view-preservation rule of spec.md §3: if a is a
// view and its shape equals src's shape, performs an elementwise copy
// into a's buffer (the only way writes through a view happen via
// assignment); otherwise rebinds a to share src's buffer.
func (a *Array[T]) Assign(src Array[T]) {
	if a.l.IsView() && a.sameShape(src) {
		copyInto(a, src)
		return
	}
	a.buf.Release()
	a.l = src.l
	a.buf = src.buf.Retain()
}

// AssignScalar broadcasts value to every element of a, writing through a
// view exactly as Assign does.
func (a *Array[T]) AssignScalar(value T) {
	n := a.Count()
	data := a.buf.Data()
	if n == 0 {
		return
	}
	c := cursor.NewDefault(&a.l)
	for i := 0; i < n; i++ {
		data[c.Deref()] = value
		if i != n-1 {
			c.Advance(1)
		}
	}
}

// copyInto performs an elementwise copy from src into dst's existing
// buffer; dst and src must have equal shape.
func copyInto[T any](dst *Array[T], src Array[T]) {
	n := dst.Count()
	if n == 0 {
		return
	}
	dstData := dst.buf.Data()
	srcData := src.buf.Data()
	dc := cursor.NewDefault(&dst.l)
	sc := cursor.NewDefault(&src.l)
	for i := 0; i < n; i++ {
		dstData[dc.Deref()] = srcData[sc.Deref()]
		if i != n-1 {
			dc.Advance(1)
			sc.Advance(1)
		}
	}
}
