package ndarray

import "github.com/oren12321/oc-array/pkg/cursor"

// Transform builds a new, non-view array of a's shape by applying op
// elementwise to a's values, per spec.md §4.6's unary traversal form.
func Transform[T any](a Array[T], op func(T) T) Array[T] {
	n := a.Count()
	out := make([]T, n)
	if n > 0 {
		src := a.buf.Data()
		c := cursor.NewDefault(&a.l)
		for i := 0; i < n; i++ {
			out[i] = op(src[c.Deref()])
			if i != n-1 {
				c.Advance(1)
			}
		}
	}
	return FromData(out, a.l.Dims()...)
}

// TransformBinary builds a new, non-view array of a's shape by applying
// op elementwise to corresponding values of a and b. a and b must have
// equal shape, per spec.md §4.6.
func TransformBinary[T any](a, b Array[T], op func(T, T) T) Array[T] {
	checkSameShape(a, b, "ndarray.TransformBinary")
	n := a.Count()
	out := make([]T, n)
	if n > 0 {
		ad, bd := a.buf.Data(), b.buf.Data()
		ac := cursor.NewDefault(&a.l)
		bc := cursor.NewDefault(&b.l)
		for i := 0; i < n; i++ {
			out[i] = op(ad[ac.Deref()], bd[bc.Deref()])
			if i != n-1 {
				ac.Advance(1)
				bc.Advance(1)
			}
		}
	}
	return FromData(out, a.l.Dims()...)
}

// TransformScalar builds a new, non-view array of a's shape by applying
// op(element, scalar) elementwise, per spec.md §4.6's broadcast form.
func TransformScalar[T any](a Array[T], scalar T, op func(T, T) T) Array[T] {
	return Transform(a, func(v T) T { return op(v, scalar) })
}

// TransformScalarLeft is TransformScalar with the scalar on the left:
// op(scalar, element).
func TransformScalarLeft[T any](scalar T, a Array[T], op func(T, T) T) Array[T] {
	return Transform(a, func(v T) T { return op(scalar, v) })
}

// InPlace applies op to every element of a, writing through a's own
// buffer (through a view, if a is one), per spec.md §4.6's mutate-in-
// place compound-assignment semantics.
func InPlace[T any](a Array[T], op func(T) T) {
	n := a.Count()
	if n == 0 {
		return
	}
	data := a.buf.Data()
	c := cursor.NewDefault(&a.l)
	for i := 0; i < n; i++ {
		pos := c.Deref()
		data[pos] = op(data[pos])
		if i != n-1 {
			c.Advance(1)
		}
	}
}

// InPlaceBinary applies op(a[i], b[i]) into a's own buffer, element by
// element; a and b must have equal shape.
func InPlaceBinary[T any](a, b Array[T], op func(T, T) T) {
	checkSameShape(a, b, "ndarray.InPlaceBinary")
	n := a.Count()
	if n == 0 {
		return
	}
	ad, bd := a.buf.Data(), b.buf.Data()
	ac := cursor.NewDefault(&a.l)
	bc := cursor.NewDefault(&b.l)
	for i := 0; i < n; i++ {
		pos := ac.Deref()
		ad[pos] = op(ad[pos], bd[bc.Deref()])
		if i != n-1 {
			ac.Advance(1)
			bc.Advance(1)
		}
	}
}

func checkSameShape[T any](a, b Array[T], op string) {
	if !a.sameShape(b) {
		panicShapeMismatch(op, a.l.Dims(), b.l.Dims())
	}
}
