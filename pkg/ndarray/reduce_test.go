package ndarray_test

import (
	"testing"

	"github.com/oren12321/oc-array/pkg/ndarray"
	"github.com/stretchr/testify/assert"
)

func TestReduceWholeArray(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3)
	sum := ndarray.Reduce(a, func(acc, v int) int { return acc + v })
	assert.Equal(t, 21, sum)
}

func TestReduceSeedsFromFirstElement(t *testing.T) {
	a := ndarray.FromData([]int{10, 3, 2}, 3)
	diff := ndarray.Reduce(a, func(acc, v int) int { return acc - v })
	assert.Equal(t, 5, diff)
}

func TestReduceEmptyReturnsZeroValue(t *testing.T) {
	var a ndarray.Array[int]
	sum := ndarray.Reduce(a, func(acc, v int) int { return acc + v })
	assert.Equal(t, 0, sum)
}

// Scenario: reduce along each axis of a 2-D array.
func TestReduceAxisRows(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3) // [[1,2,3],[4,5,6]]
	colSums := ndarray.ReduceAxis(a, 0, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, []int{3}, colSums.Shape())
	assert.Equal(t, []int{5, 7, 9}, []int{colSums.At(0), colSums.At(1), colSums.At(2)})
}

func TestReduceAxisCols(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3) // [[1,2,3],[4,5,6]]
	rowSums := ndarray.ReduceAxis(a, 1, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, []int{2}, rowSums.Shape())
	assert.Equal(t, []int{6, 15}, []int{rowSums.At(0), rowSums.At(1)})
}

func TestReduceAxisOutOfRangeDefaultsToLast(t *testing.T) {
	a := ndarray.FromData(seqInts(6), 2, 3)
	got := ndarray.ReduceAxis(a, 99, 0, func(acc, v int) int { return acc + v })
	want := ndarray.ReduceAxis(a, 1, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.At(0), got.At(0))
	assert.Equal(t, want.At(1), got.At(1))
}

func Test1DReduceAxisCollapsesToSizeOne(t *testing.T) {
	a := ndarray.FromData(seqInts(4), 4)
	out := ndarray.ReduceAxis(a, 0, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, []int{1}, out.Shape())
	assert.Equal(t, 10, out.At(0))
}
