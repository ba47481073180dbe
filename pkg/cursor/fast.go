package cursor

import "github.com/oren12321/oc-array/pkg/layout"

// Fast is a specialised cursor for contiguous, non-view layouts: it
// bypasses subscript bookkeeping and increments the flat position
// directly. A NewFast cursor produces the identical flat-position
// sequence a row-major General cursor would; a NewFastMajor cursor
// yields only the first flat position of each major-axis slab. It
// exists purely as an optional optimisation path per spec.md §4.3.2 —
// nothing in pkg/ndarray uses it.
type Fast struct {
	pos      int
	start    int
	stride   int
	min, max int // exclusive bounds on the logical step count
	step     int // current logical step count relative to start
}

// NewFast builds a Fast cursor over l, which must be contiguous and
// non-view (callers check via Layout.IsContiguous/IsView before using
// it; Fast does not re-validate). It walks the flat index directly, one
// element at a time.
func NewFast(l *layout.Layout) *Fast {
	return &Fast{
		pos:    l.Offset(),
		start:  l.Offset(),
		stride: 1,
		min:    -1,
		max:    l.Count(),
	}
}

// NewFastMajor builds a Fast cursor that advances by the given major-axis
// stride per step, for iterating a contiguous layout one major-axis slab
// at a time.
func NewFastMajor(l *layout.Layout, majorAxis int) *Fast {
	return &Fast{
		pos:    l.Offset(),
		start:  l.Offset(),
		stride: l.Stride(majorAxis),
		min:    -1,
		max:    l.Dim(majorAxis),
	}
}

// Deref returns the current flat position.
func (f *Fast) Deref() int { return f.pos }

// InRange reports whether the cursor's logical step count is within
// (min, max).
func (f *Fast) InRange() bool {
	return f.step > f.min && f.step < f.max
}

// Reset returns the cursor to its initial position.
func (f *Fast) Reset() {
	f.pos = f.start
	f.step = 0
}

// Advance steps the cursor by k (possibly negative) units of stride.
func (f *Fast) Advance(k int) {
	f.step += k
	f.pos += k * f.stride
}
