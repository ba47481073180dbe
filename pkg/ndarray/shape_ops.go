package ndarray

import (
	"github.com/oren12321/oc-array/internal/arrayerr"
	"github.com/oren12321/oc-array/pkg/cursor"
	"github.com/oren12321/oc-array/pkg/layout"
)

// Reshape returns a with shape newShape. Requires a.Count() ==
// product(newShape), else panics with a ShapeMismatch. If newShape
// equals a's current shape, returns a unchanged. If a is a view, the
// result is a freshly allocated, non-view array filled by walking a and
// the new layout in lock-step default order — the only way to reshape a
// view correctly, per spec.md §4.5. Otherwise returns a new handle
// sharing a's buffer under a fresh, non-view layout.
func Reshape[T any](a Array[T], newShape ...int) Array[T] {
	newL := layout.FromShape(newShape...)
	if a.Count() != newL.Count() {
		arrayerr.Panic(arrayerr.ShapeMismatch, "ndarray.Reshape",
			"cannot reshape %d elements into shape %v", a.Count(), newShape)
	}
	if a.sameShape(Array[T]{l: newL}) {
		return Array[T]{l: a.l, buf: a.buf.Retain()}
	}
	if !a.l.IsView() {
		return Array[T]{l: newL, buf: a.buf.Retain()}
	}
	n := a.Count()
	out := make([]T, n)
	if n > 0 {
		src := a.buf.Data()
		sc := cursor.NewDefault(&a.l)
		for i := 0; i < n; i++ {
			out[i] = src[sc.Deref()]
			if i != n-1 {
				sc.Advance(1)
			}
		}
	}
	return FromData(out, newShape...)
}

// Resize returns a freshly allocated, non-view array of shape newShape,
// filled by walking a and the new layout in lock-step default order and
// copying until either is exhausted; remaining destination elements keep
// their zero value. Never aliases a's buffer, per spec.md §4.5.
func Resize[T any](a Array[T], newShape ...int) Array[T] {
	newL := layout.FromShape(newShape...)
	out := make([]T, newL.Count())
	n := a.Count()
	if n > newL.Count() {
		n = newL.Count()
	}
	if n > 0 {
		src := a.buf.Data()
		sc := cursor.NewDefault(&a.l)
		dc := cursor.NewDefault(&newL)
		for i := 0; i < n; i++ {
			out[dc.Deref()] = src[sc.Deref()]
			if i != n-1 {
				sc.Advance(1)
				dc.Advance(1)
			}
		}
	}
	return FromData(out, newShape...)
}

// Transpose returns a freshly allocated array whose shape is a's shape
// permuted by order (order[i] names which of a's axes becomes result
// axis i). Per spec.md §9, the result always materialises fresh
// contiguous storage — transpose is a copy, not a stride-only view. A
// malformed order (wrong length or not a permutation) yields an empty
// array.
func Transpose[T any](a Array[T], order ...int) Array[T] {
	newL := layout.Permute(&a.l, order)
	out := make([]T, newL.Count())
	n := newL.Count()
	if n > 0 {
		src := a.buf.Data()
		sc := cursor.NewOrdered(&a.l, order)
		dc := cursor.NewDefault(&newL)
		for i := 0; i < n; i++ {
			out[dc.Deref()] = src[sc.Deref()]
			if i != n-1 {
				sc.Advance(1)
				dc.Advance(1)
			}
		}
	}
	return FromData(out, newL.Dims()...)
}

// Append concatenates a and b along axis: requires a.Shape and b.Shape
// agree everywhere except axis. Allocates a result of shape with
// dims[axis] = a.dims[axis] + b.dims[axis]; elements with a
// result-subscript at axis < a.dims[axis] are drawn from a, the rest
// from b.
func Append[T any](a, b Array[T], axis int) Array[T] {
	if !axisCompatible(a.l.Dims(), b.l.Dims(), axis) {
		arrayerr.Panic(arrayerr.ShapeMismatch, "ndarray.Append",
			"shapes %v and %v disagree off axis %d", a.l.Dims(), b.l.Dims(), axis)
	}
	newL := layout.Grow(&a.l, axis, b.l.Dim(axis))
	out := make([]T, newL.Count())
	aData, bData := a.buf.Data(), b.buf.Data()
	splitAt := a.l.Dim(axis)
	fillBand(out, &newL, func(subs []int) T {
		if subs[axis] < splitAt {
			return aData[a.l.FlatOf(subs...)]
		}
		shifted := append([]int(nil), subs...)
		shifted[axis] -= splitAt
		return bData[b.l.FlatOf(shifted...)]
	})
	return FromData(out, newL.Dims()...)
}

// AppendFlat concatenates a and b as if both were flattened to 1-D,
// per spec.md §4.5's axis-less append form. Result shape is {a.Count()
// + b.Count()}.
func AppendFlat[T any](a, b Array[T]) Array[T] {
	n := a.Count() + b.Count()
	out := make([]T, n)
	i := 0
	i = copyDefault(out, i, &a.l, a.buf.Data())
	copyDefault(out, i, &b.l, b.buf.Data())
	return FromData(out, n)
}

// Insert places b's elements at [position, position+b.dims[axis]) along
// axis of a, with a's elements occupying the rest of that axis, per
// spec.md §4.5.
func Insert[T any](a, b Array[T], position, axis int) Array[T] {
	if !axisCompatible(a.l.Dims(), b.l.Dims(), axis) {
		arrayerr.Panic(arrayerr.ShapeMismatch, "ndarray.Insert",
			"shapes %v and %v disagree off axis %d", a.l.Dims(), b.l.Dims(), axis)
	}
	if position < 0 || position > a.l.Dim(axis) {
		arrayerr.Panic(arrayerr.OutOfRange, "ndarray.Insert",
			"position %d out of range for axis %d (size %d)", position, axis, a.l.Dim(axis))
	}
	bLen := b.l.Dim(axis)
	newL := layout.Grow(&a.l, axis, bLen)
	out := make([]T, newL.Count())
	aData, bData := a.buf.Data(), b.buf.Data()
	fillBand(out, &newL, func(subs []int) T {
		v := subs[axis]
		switch {
		case v < position:
			return aData[a.l.FlatOf(subs...)]
		case v < position+bLen:
			shifted := append([]int(nil), subs...)
			shifted[axis] = v - position
			return bData[b.l.FlatOf(shifted...)]
		default:
			shifted := append([]int(nil), subs...)
			shifted[axis] = v - bLen
			return aData[a.l.FlatOf(shifted...)]
		}
	})
	return FromData(out, newL.Dims()...)
}

// InsertFlat is the 1-D analogue of Insert: b's elements occupy
// [flatPosition, flatPosition+b.Count()) of the flattened result.
func InsertFlat[T any](a, b Array[T], flatPosition int) Array[T] {
	if flatPosition < 0 || flatPosition > a.Count() {
		arrayerr.Panic(arrayerr.OutOfRange, "ndarray.InsertFlat",
			"position %d out of range for length %d", flatPosition, a.Count())
	}
	n := a.Count() + b.Count()
	out := make([]T, n)
	i := 0
	i = copyDefaultN(out, i, &a.l, a.buf.Data(), flatPosition)
	i = copyDefault(out, i, &b.l, b.buf.Data())
	copyDefaultFrom(out, i, &a.l, a.buf.Data(), flatPosition)
	return FromData(out, n)
}

// Remove deletes count elements starting at position along axis, count
// clamped so position+count <= a.dims[axis] (the safer choice per
// spec.md §9's open question). Output shape has dims[axis] reduced by
// the clamped count.
func Remove[T any](a Array[T], position, count, axis int) Array[T] {
	dim := a.l.Dim(axis)
	if position < 0 || position > dim {
		arrayerr.Panic(arrayerr.OutOfRange, "ndarray.Remove",
			"position %d out of range for axis %d (size %d)", position, axis, dim)
	}
	if count < 0 {
		count = 0
	}
	if position+count > dim {
		count = dim - position
	}
	newL := layout.Grow(&a.l, axis, -count)
	out := make([]T, newL.Count())
	aData := a.buf.Data()
	fillBand(out, &newL, func(subs []int) T {
		v := subs[axis]
		shifted := append([]int(nil), subs...)
		if v >= position {
			shifted[axis] = v + count
		}
		return aData[a.l.FlatOf(shifted...)]
	})
	return FromData(out, newL.Dims()...)
}

// RemoveFlat removes count elements starting at flat position from a's
// flattened form, count clamped at both ends per spec.md §9.
func RemoveFlat[T any](a Array[T], position, count int) Array[T] {
	n := a.Count()
	if position < 0 || position > n {
		arrayerr.Panic(arrayerr.OutOfRange, "ndarray.RemoveFlat",
			"position %d out of range for length %d", position, n)
	}
	if count < 0 {
		count = 0
	}
	if position+count > n {
		count = n - position
	}
	out := make([]T, n-count)
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	oi := 0
	for i := 0; i < n; i++ {
		if i < position || i >= position+count {
			out[oi] = data[c.Deref()]
			oi++
		}
		if i != n-1 {
			c.Advance(1)
		}
	}
	return FromData(out, n-count)
}

// Copy performs an elementwise copy from src into dst with length
// min(src.Count(), dst.Count()), using each array's default cursor. No
// reshape is performed.
func Copy[T any](dst, src Array[T]) {
	n := dst.Count()
	if src.Count() < n {
		n = src.Count()
	}
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

// SetFrom copies src into dst like Copy, but first rebinds dst to have
// src's shape and a fresh buffer when dst is not a view (per spec.md
// §4.5/§9: this makes dst's identity a rebind, not a copy, when dst is
// not already a view — callers wanting copy semantics regardless of
// view-ness must use Copy).
func SetFrom[T any](dst *Array[T], src Array[T]) {
	if !dst.l.IsView() {
		*dst = src.Clone()
		return
	}
	Copy(*dst, src)
}

// Squeeze drops all size-1 axes (supplemented convenience over Reshape,
// per SPEC_FULL.md §5).
func Squeeze[T any](a Array[T]) Array[T] {
	dims := a.l.Dims()
	newDims := make([]int, 0, len(dims))
	for _, d := range dims {
		if d != 1 {
			newDims = append(newDims, d)
		}
	}
	if len(newDims) == 0 {
		newDims = []int{1}
	}
	return Reshape(a, newDims...)
}

// Unsqueeze inserts a size-1 axis at position axis (supplemented
// convenience over Reshape).
func Unsqueeze[T any](a Array[T], axis int) Array[T] {
	dims := a.l.Dims()
	newDims := make([]int, 0, len(dims)+1)
	newDims = append(newDims, dims[:axis]...)
	newDims = append(newDims, 1)
	newDims = append(newDims, dims[axis:]...)
	return Reshape(a, newDims...)
}

// fillBand fills out (sized newL.Count()) by walking newL's default
// cursor and asking pick for the source value at each subscript tuple.
func fillBand[T any](out []T, newL *layout.Layout, pick func(subs []int) T) {
	n := newL.Count()
	if n == 0 {
		return
	}
	dc := cursor.NewDefault(newL)
	for i := 0; i < n; i++ {
		out[dc.Deref()] = pick(dc.Subs())
		if i != n-1 {
			dc.Advance(1)
		}
	}
}

// copyDefault appends l's elements (in default order) into out starting
// at index start, returning the next free index.
func copyDefault[T any](out []T, start int, l *layout.Layout, data []T) int {
	n := l.Count()
	if n == 0 {
		return start
	}
	c := cursor.NewDefault(l)
	for i := 0; i < n; i++ {
		out[start+i] = data[c.Deref()]
		if i != n-1 {
			c.Advance(1)
		}
	}
	return start + n
}

// copyDefaultN copies the first n elements of l (in default order) into
// out starting at start.
func copyDefaultN[T any](out []T, start int, l *layout.Layout, data []T, n int) int {
	if n == 0 {
		return start
	}
	c := cursor.NewDefault(l)
	for i := 0; i < n; i++ {
		out[start+i] = data[c.Deref()]
		if i != n-1 {
			c.Advance(1)
		}
	}
	return start + n
}

// copyDefaultFrom copies l's elements (default order) starting at its
// own logical index from, into out starting at start.
func copyDefaultFrom[T any](out []T, start int, l *layout.Layout, data []T, from int) int {
	n := l.Count()
	if from >= n {
		return start
	}
	c := cursor.NewDefault(l)
	if from > 0 {
		c.Advance(from)
	}
	count := n - from
	for i := 0; i < count; i++ {
		out[start+i] = data[c.Deref()]
		if i != count-1 {
			c.Advance(1)
		}
	}
	return start + count
}

// axisCompatible reports whether dims a and b agree everywhere except
// axis.
func axisCompatible(a, b []int, axis int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if i == axis {
			continue
		}
		if a[i] != b[i] {
			return false
		}
	}
	return axis >= 0 && axis < len(a)
}
