package ndarray

import "github.com/oren12321/oc-array/pkg/cursor"

// Filter returns a freshly allocated 1-D array holding a's elements, in
// default traversal order, for which pred returns true, per spec.md
// §4.6's predicate filter form.
func Filter[T any](a Array[T], pred func(T) bool) Array[T] {
	n := a.Count()
	out := make([]T, 0, n)
	if n > 0 {
		data := a.buf.Data()
		c := cursor.NewDefault(&a.l)
		for i := 0; i < n; i++ {
			v := data[c.Deref()]
			if pred(v) {
				out = append(out, v)
			}
			if i != n-1 {
				c.Advance(1)
			}
		}
	}
	return FromData(out, len(out))
}

// FilterMask returns a's elements, in default traversal order, at
// positions where mask holds true; mask must have the same shape as a.
func FilterMask[T any](a Array[T], mask Array[bool]) Array[T] {
	checkSameShape(a, Array[T]{l: mask.l}, "ndarray.FilterMask")
	n := a.Count()
	out := make([]T, 0, n)
	if n > 0 {
		data := a.buf.Data()
		md := mask.buf.Data()
		ac := cursor.NewDefault(&a.l)
		mc := cursor.NewDefault(&mask.l)
		for i := 0; i < n; i++ {
			if md[mc.Deref()] {
				out = append(out, data[ac.Deref()])
			}
			if i != n-1 {
				ac.Advance(1)
				mc.Advance(1)
			}
		}
	}
	return FromData(out, len(out))
}

// Find returns, in default traversal order, the flat positions (in a's
// own raw buffer, consumable by Array.Gather) of elements for which
// pred returns true, per spec.md §4.6.
func Find[T any](a Array[T], pred func(T) bool) Array[int] {
	n := a.Count()
	out := make([]int, 0, n)
	if n > 0 {
		data := a.buf.Data()
		c := cursor.NewDefault(&a.l)
		for i := 0; i < n; i++ {
			pos := c.Deref()
			if pred(data[pos]) {
				out = append(out, pos)
			}
			if i != n-1 {
				c.Advance(1)
			}
		}
	}
	return FromData(out, len(out))
}

// FindMask returns the flat positions of a where mask holds true.
func FindMask[T any](a Array[T], mask Array[bool]) Array[int] {
	checkSameShape(a, Array[T]{l: mask.l}, "ndarray.FindMask")
	n := a.Count()
	out := make([]int, 0, n)
	if n > 0 {
		md := mask.buf.Data()
		ac := cursor.NewDefault(&a.l)
		mc := cursor.NewDefault(&mask.l)
		for i := 0; i < n; i++ {
			pos := ac.Deref()
			if md[mc.Deref()] {
				out = append(out, pos)
			}
			if i != n-1 {
				ac.Advance(1)
				mc.Advance(1)
			}
		}
	}
	return FromData(out, len(out))
}

// All reports whether pred holds for every element of a. An empty a
// vacuously satisfies All, per spec.md §4.6.
func All[T any](a Array[T], pred func(T) bool) bool {
	n := a.Count()
	if n == 0 {
		return true
	}
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	for i := 0; i < n; i++ {
		if !pred(data[c.Deref()]) {
			return false
		}
		if i != n-1 {
			c.Advance(1)
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of a.
func Any[T any](a Array[T], pred func(T) bool) bool {
	n := a.Count()
	if n == 0 {
		return false
	}
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	for i := 0; i < n; i++ {
		if pred(data[c.Deref()]) {
			return true
		}
		if i != n-1 {
			c.Advance(1)
		}
	}
	return false
}

// AllMatch reports whether pred(a[i], b[i]) holds for every position; a
// and b must have equal shape.
func AllMatch[T any](a, b Array[T], pred func(T, T) bool) bool {
	checkSameShape(a, b, "ndarray.AllMatch")
	n := a.Count()
	if n == 0 {
		return true
	}
	ad, bd := a.buf.Data(), b.buf.Data()
	ac := cursor.NewDefault(&a.l)
	bc := cursor.NewDefault(&b.l)
	for i := 0; i < n; i++ {
		if !pred(ad[ac.Deref()], bd[bc.Deref()]) {
			return false
		}
		if i != n-1 {
			ac.Advance(1)
			bc.Advance(1)
		}
	}
	return true
}

// AnyMatch reports whether pred(a[i], b[i]) holds for at least one
// position; a and b must have equal shape.
func AnyMatch[T any](a, b Array[T], pred func(T, T) bool) bool {
	checkSameShape(a, b, "ndarray.AnyMatch")
	n := a.Count()
	if n == 0 {
		return false
	}
	ad, bd := a.buf.Data(), b.buf.Data()
	ac := cursor.NewDefault(&a.l)
	bc := cursor.NewDefault(&b.l)
	for i := 0; i < n; i++ {
		if pred(ad[ac.Deref()], bd[bc.Deref()]) {
			return true
		}
		if i != n-1 {
			ac.Advance(1)
			bc.Advance(1)
		}
	}
	return false
}

// AllEqual reports whether a and b have equal shape and every
// corresponding element is ==.
func AllEqual[T comparable](a, b Array[T]) bool {
	if !a.sameShape(b) {
		return false
	}
	return AllMatch(a, b, func(x, y T) bool { return x == y })
}
