package ndarray_test

import (
	"testing"

	"github.com/oren12321/oc-array/pkg/interval"
	"github.com/oren12321/oc-array/pkg/ndarray"
	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 2, 2)
	b := ndarray.FromData([]int{10, 20, 30, 40}, 2, 2)

	sum := ndarray.Add(a, b)
	assert.Equal(t, []int{11, 22, 33, 44}, []int{sum.At(0, 0), sum.At(0, 1), sum.At(1, 0), sum.At(1, 1)})

	diff := ndarray.Sub(b, a)
	assert.Equal(t, []int{9, 18, 27, 36}, []int{diff.At(0, 0), diff.At(0, 1), diff.At(1, 0), diff.At(1, 1)})

	prod := ndarray.Mul(a, b)
	assert.Equal(t, 10, prod.At(0, 0))

	quot := ndarray.Div(b, a)
	assert.Equal(t, 10, quot.At(0, 0))
}

func TestScalarArithmetic(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 4)
	assert.Equal(t, 6, ndarray.AddScalar(a, 5).At(0))
	assert.Equal(t, -4, ndarray.SubScalar(a, 5).At(0))
	assert.Equal(t, 10, ndarray.MulScalar(a, 10).At(0))
	assert.Equal(t, 2, ndarray.DivScalar(a, 2).At(3))
}

func TestCompoundAssignThroughView(t *testing.T) {
	parent := ndarray.FromData(seqInts(16), 4, 4)
	view := parent.Slice(interval.Range(0, 1), interval.Range(0, 1))
	delta := ndarray.FromData([]int{100, 100, 100, 100}, 2, 2)
	ndarray.AddAssign(view, delta)
	assert.Equal(t, 101, parent.At(0, 0))
	assert.Equal(t, 106, parent.At(1, 1))
}

func TestIncrementPreSemantics(t *testing.T) {
	a := ndarray.FromData(seqInts(3), 3)
	ndarray.Increment(a)
	assert.Equal(t, []int{2, 3, 4}, []int{a.At(0), a.At(1), a.At(2)})
}

func TestPostIncrementReturnsPriorValues(t *testing.T) {
	a := ndarray.FromData(seqInts(3), 3)
	before := ndarray.PostIncrement(a)
	assert.Equal(t, []int{1, 2, 3}, []int{before.At(0), before.At(1), before.At(2)})
	assert.Equal(t, []int{2, 3, 4}, []int{a.At(0), a.At(1), a.At(2)})
}

func TestBitwise(t *testing.T) {
	a := ndarray.FromData([]int{0b1100, 0b1010}, 2)
	b := ndarray.FromData([]int{0b1010, 0b0110}, 2)

	and := ndarray.And(a, b)
	assert.Equal(t, []int{0b1000, 0b0010}, []int{and.At(0), and.At(1)})

	or := ndarray.Or(a, b)
	assert.Equal(t, []int{0b1110, 0b1110}, []int{or.At(0), or.At(1)})

	xor := ndarray.Xor(a, b)
	assert.Equal(t, []int{0b0110, 0b1100}, []int{xor.At(0), xor.At(1)})

	not := ndarray.Not(ndarray.FromData([]int{0}, 1))
	assert.Equal(t, -1, not.At(0))

	shl := ndarray.Shl(ndarray.FromData([]int{1, 2}, 2), 2)
	assert.Equal(t, []int{4, 8}, []int{shl.At(0), shl.At(1)})

	shr := ndarray.Shr(ndarray.FromData([]int{8, 4}, 2), 1)
	assert.Equal(t, []int{4, 2}, []int{shr.At(0), shr.At(1)})
}

func TestBitwiseAssignThroughView(t *testing.T) {
	parent := ndarray.FromData([]int{0b1100, 0b1100, 0b1100, 0b1100}, 2, 2)
	view := parent.Slice(interval.Range(0, 0), interval.Range(0, 1))
	mask := ndarray.FromData([]int{0b1010, 0b1010}, 1, 2)
	ndarray.AndAssign(view, mask)
	assert.Equal(t, 0b1000, parent.At(0, 0))
	assert.Equal(t, 0b1000, parent.At(0, 1))
}

func TestComparisons(t *testing.T) {
	a := ndarray.FromData([]int{1, 2, 3}, 3)
	b := ndarray.FromData([]int{1, 5, 2}, 3)
	eq := ndarray.Equal(a, b)
	assert.Equal(t, []bool{true, false, false}, []bool{eq.At(0), eq.At(1), eq.At(2)})

	lt := ndarray.Less(a, b)
	assert.Equal(t, []bool{false, true, false}, []bool{lt.At(0), lt.At(1), lt.At(2)})

	gt := ndarray.Greater(a, b)
	assert.Equal(t, []bool{false, false, true}, []bool{gt.At(0), gt.At(1), gt.At(2)})
}

func TestTransformUnary(t *testing.T) {
	a := ndarray.FromData(seqInts(3), 3)
	out := ndarray.Transform(a, func(v int) int { return v * v })
	assert.Equal(t, []int{1, 4, 9}, []int{out.At(0), out.At(1), out.At(2)})
}
