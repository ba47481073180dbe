// Package cursor implements the two traversal cursors of spec.md §4.3:
// General, which walks any layout in a caller-chosen axis order with
// independent per-axis bounds, and Fast, a direct flat-index walker for
// contiguous non-view layouts.
//
// Grounded on the teacher's primitive/generics/helpers.AdvanceOffsets
// family (helpers/helpers.go), which already does the carry-propagating
// multi-index walk this package generalises to an arbitrary axis order
// and arbitrary bounds, and on eager_tensor.Tensor.Elements
// (generics.ElementsIndices) for the axis-fixing iteration style.
package cursor

import "github.com/oren12321/oc-array/pkg/layout"

// General walks a layout in a chosen axis order with independent
// per-axis bounds. Deref maps the current subscripts to a flat position
// through Layout.FlatOf; every array operation that walks a layout opens
// one of these.
type General struct {
	l       *layout.Layout
	order   []int // order[0] is outermost (major), order[last] is innermost
	subs    []int
	start   []int
	minExcl []int
	maxExcl []int
}

// NewDefault builds a General cursor walking l in row-major order
// (axis 0 outermost, axis rank-1 innermost) starting at the all-zero
// subscript, with full per-axis bounds.
func NewDefault(l *layout.Layout) *General {
	rank := l.Rank()
	order := make([]int, rank)
	for i := range order {
		order[i] = i
	}
	return NewOrdered(l, order)
}

// NewOrdered builds a General cursor walking l in the given axis order;
// order[len(order)-1] is the innermost (fastest-varying) axis, per
// spec.md §4.3.1.
func NewOrdered(l *layout.Layout, order []int) *General {
	rank := l.Rank()
	c := &General{
		l:       l,
		order:   append([]int(nil), order...),
		subs:    make([]int, rank),
		start:   make([]int, rank),
		minExcl: make([]int, rank),
		maxExcl: make([]int, rank),
	}
	dims := l.Dims()
	for i := 0; i < rank; i++ {
		c.minExcl[i] = -1
		c.maxExcl[i] = dims[i]
	}
	return c
}

// NewMajorAxis builds a General cursor whose major (outermost) axis is
// major; all other axes are walked row-major beneath it, per spec.md
// §4.3.1's "single major axis" construction form.
func NewMajorAxis(l *layout.Layout, major int) *General {
	rank := l.Rank()
	order := make([]int, 0, rank)
	order = append(order, major)
	for i := 0; i < rank; i++ {
		if i != major {
			order = append(order, i)
		}
	}
	// order built outermost-first above, but the contract stores
	// order[last] == innermost, so reverse everything except keep major
	// outermost: the remaining axes should appear row-major among
	// themselves with the last one innermost, which falling through in
	// ascending order (skipping major) already achieves when read as
	// order[0]=major, order[1..]=ascending others; we only need major at
	// index 0 (outermost) per the contract below, so store as-is and let
	// advance treat order[0] as outermost.
	return NewOrdered(l, order)
}

// WithStart sets the initial subscript tuple (and resets subs to it).
func (c *General) WithStart(start ...int) *General {
	copy(c.start, start)
	copy(c.subs, start)
	return c
}

// WithBounds sets independent per-axis exclusive bounds for axis i:
// the cursor is in-range while minExclusive < subs[i] < maxExclusive.
// Only meaningful for the major (order[0]) axis per spec.md §4.3.1, but
// stored per-axis to allow a caller-chosen major axis.
func (c *General) WithBounds(axis, minExclusive, maxExclusive int) *General {
	c.minExcl[axis] = minExclusive
	c.maxExcl[axis] = maxExclusive
	return c
}

// Subs returns the current subscript tuple. The returned slice aliases
// cursor state and must not be retained.
func (c *General) Subs() []int { return c.subs }

// Deref returns the flat buffer position for the current subscript.
func (c *General) Deref() int {
	return c.l.FlatOf(c.subs...)
}

// majorAxis is the outermost axis in the cursor's order, order[0].
func (c *General) majorAxis() int {
	if len(c.order) == 0 {
		return 0
	}
	return c.order[0]
}

// InRange reports whether the cursor's major subscript is strictly
// within its (minExclusive, maxExclusive) band.
func (c *General) InRange() bool {
	axis := c.majorAxis()
	v := c.subs[axis]
	return v > c.minExcl[axis] && v < c.maxExcl[axis]
}

// Reset returns the cursor to its initial start subscript.
func (c *General) Reset() {
	copy(c.subs, c.start)
}

// Advance steps the cursor by k unit steps (k may be negative), carrying
// right-to-left through the axis order: order[len-1] is innermost
// (fastest-varying), order[0] is outermost. advance(-k) reverses the
// carry direction, per spec.md §4.3.1.
func (c *General) Advance(k int) {
	if k >= 0 {
		for ; k > 0; k-- {
			c.step(1)
		}
		return
	}
	for ; k < 0; k++ {
		c.step(-1)
	}
}

func (c *General) step(delta int) {
	dims := c.l.Dims()
	for i := len(c.order) - 1; i >= 0; i-- {
		axis := c.order[i]
		c.subs[axis] += delta
		if delta > 0 {
			if c.subs[axis] < dims[axis] {
				return
			}
			if i == 0 {
				// Outermost axis carried past its bound: leave it past
				// range rather than wrapping, so InRange reflects it.
				return
			}
			c.subs[axis] = 0
		} else {
			if c.subs[axis] >= 0 {
				return
			}
			if i == 0 {
				return
			}
			c.subs[axis] = dims[axis] - 1
		}
	}
}
