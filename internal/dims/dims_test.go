package dims_test

import (
	"testing"

	"github.com/oren12321/oc-array/internal/dims"
	"github.com/stretchr/testify/assert"
)

func TestInlineStorage(t *testing.T) {
	v := dims.New(1, 2, 3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestHeapSpill(t *testing.T) {
	v := dims.New(1, 2, 3, 4, 5)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
}

func TestSetAtAndClone(t *testing.T) {
	v := dims.New(1, 2, 3)
	v.SetAt(1, 9)
	assert.Equal(t, 9, v.At(1))
	c := v.Clone()
	v.SetAt(0, 100)
	assert.Equal(t, 1, c.At(0))
}

func TestEqual(t *testing.T) {
	assert.True(t, dims.New(1, 2).Equal(dims.New(1, 2)))
	assert.False(t, dims.New(1, 2).Equal(dims.New(1, 3)))
	assert.False(t, dims.New(1, 2).Equal(dims.New(1, 2, 3)))
}

func TestStack(t *testing.T) {
	buf := make([]int, 0, 4)
	out := dims.Stack(buf, 2)
	assert.Equal(t, 2, len(out))
	small := make([]int, 0, 1)
	out2 := dims.Stack(small, 2)
	assert.Equal(t, 2, len(out2))
}
