package ndarray_test

import (
	"testing"

	"github.com/oren12321/oc-array/pkg/interval"
	"github.com/oren12321/oc-array/pkg/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestNewFillsEveryElement(t *testing.T) {
	a := ndarray.New(7, 2, 3)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 6, a.Count())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 7, a.At(i, j))
		}
	}
}

func TestFromDataShapeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		ndarray.FromData([]int{1, 2, 3}, 2, 2)
	})
}

func TestFromForeignConverts(t *testing.T) {
	src := []float64{1.2, 2.9, 3.0}
	a := ndarray.FromForeign[float64, int](src, 3)
	assert.Equal(t, 1, a.At(0))
	assert.Equal(t, 2, a.At(1))
	assert.Equal(t, 3, a.At(2))
}

func TestAtNegativeAndWrappingSubscripts(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3)
	assert.Equal(t, a.At(1, 2), a.At(-1, -1))
}

// Scenario: slice a view and write through it, observing the change in
// the parent array.
func TestSliceWriteThrough(t *testing.T) {
	a := ndarray.FromData(seqInts(16), 4, 4)
	view := a.Slice(interval.Range(1, 2), interval.Range(1, 2))
	require.True(t, view.IsView())
	assert.Equal(t, []int{2, 2}, view.Shape())

	view.Set(100, 0, 0)
	assert.Equal(t, 100, a.At(1, 1))
}

func TestSliceNoIntervalsReturnsSameData(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 4)
	b := a.Slice()
	b.Set(999, 0)
	assert.Equal(t, 999, a.At(0))
}

func TestCloneIsIndependent(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 2, 2)
	c := a.Clone()
	c.Set(-1, 0, 0)
	assert.NotEqual(t, a.At(0, 0), c.At(0, 0))
	assert.False(t, c.IsView())
}

func TestAssignRebindsNonView(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 2, 2)
	b := ndarray.FromData(seqInts(9), 3, 3)
	a.Assign(b)
	assert.Equal(t, []int{3, 3}, a.Shape())
	assert.Equal(t, b.At(0, 0), a.At(0, 0))
}

func TestAssignCopiesThroughView(t *testing.T) {
	parent := ndarray.FromData(seqInts(16), 4, 4)
	view := parent.Slice(interval.Range(0, 1), interval.Range(0, 1))
	replacement := ndarray.FromData([]int{100, 200, 300, 400}, 2, 2)
	view.Assign(replacement)
	assert.Equal(t, 100, parent.At(0, 0))
	assert.Equal(t, 400, parent.At(1, 1))
}

func TestAssignScalarBroadcastsThroughView(t *testing.T) {
	parent := ndarray.New(0, 3, 3)
	view := parent.Slice(interval.Range(1, 2), interval.Range(1, 2))
	view.AssignScalar(5)
	assert.Equal(t, 5, parent.At(1, 1))
	assert.Equal(t, 5, parent.At(2, 2))
	assert.Equal(t, 0, parent.At(0, 0))
}

// Scenario: gather elements at positions found by a predicate search.
func TestFindAndGather(t *testing.T) {
	a := ndarray.FromData([]int{5, 1, 8, 1, 9, 1}, 6)
	positions := ndarray.Find(a, func(v int) bool { return v == 1 })
	assert.Equal(t, 3, positions.Count())
	gathered := a.Gather(positions)
	assert.Equal(t, 3, gathered.Count())
	for i := 0; i < gathered.Count(); i++ {
		assert.Equal(t, 1, gathered.At(i))
	}
}

func TestFilterPredicate(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3)
	out := ndarray.Filter(a, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, []int{out.At(0), out.At(1), out.At(2)})
}

func TestFilterMask(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 4)
	mask := ndarray.FromData([]bool{true, false, true, false}, 4)
	out := ndarray.FilterMask(a, mask)
	assert.Equal(t, 2, out.Count())
	assert.Equal(t, 1, out.At(0))
	assert.Equal(t, 3, out.At(1))
}

func TestAllAny(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 4)
	assert.True(t, ndarray.All(a, func(v int) bool { return v > 0 }))
	assert.False(t, ndarray.All(a, func(v int) bool { return v > 1 }))
	assert.True(t, ndarray.Any(a, func(v int) bool { return v == 4 }))
	assert.False(t, ndarray.Any(a, func(v int) bool { return v == 99 }))
}

func TestAllEqual(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 2, 2)
	b := ndarray.FromData(seqInts(4), 2, 2)
	assert.True(t, ndarray.AllEqual(a, b))
	c := ndarray.FromData(seqInts(6), 2, 3)
	assert.False(t, ndarray.AllEqual(a, c))
}

func TestCloseAllClose(t *testing.T) {
	a := ndarray.FromData([]float64{1.0, 2.0}, 2)
	b := ndarray.FromData([]float64{1.0000001, 2.0000001}, 2)
	assert.True(t, ndarray.AllClose(a, b))
	c := ndarray.FromData([]float64{1.1, 2.0}, 2)
	assert.False(t, ndarray.AllClose(a, c))
}
