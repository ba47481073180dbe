package buffer_test

import (
	"testing"

	"github.com/oren12321/oc-array/internal/arrayerr"
	"github.com/oren12321/oc-array/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndRetainRelease(t *testing.T) {
	b := buffer.New[int](4)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 1, b.RefCount())

	b.Retain()
	assert.Equal(t, 2, b.RefCount())
	b.Release()
	assert.Equal(t, 1, b.RefCount())
}

func TestWrapTakesOwnership(t *testing.T) {
	data := []int{1, 2, 3}
	b := buffer.Wrap(data)
	data[0] = 9
	assert.Equal(t, 9, b.Data()[0])
}

func TestNewNegativeLengthPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*arrayerr.Error)
		require.True(t, ok)
		assert.Equal(t, arrayerr.AllocationFailure, err.Kind)
	}()
	buffer.New[int](-1)
}

func TestNilReceiverSafety(t *testing.T) {
	var b *buffer.Shared[int]
	assert.Nil(t, b.Retain())
	assert.Equal(t, 0, b.RefCount())
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Data())
	b.Release()
}
