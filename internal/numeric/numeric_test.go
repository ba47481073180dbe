package numeric_test

import (
	"testing"

	"github.com/oren12321/oc-array/internal/numeric"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, int32(3), numeric.Convert[float64, int32](3.9))
	assert.Equal(t, float64(3), numeric.Convert[int, float64](3))
	assert.Equal(t, uint8(255), numeric.Convert[int, uint8](255))
}

func TestClose(t *testing.T) {
	assert.True(t, numeric.Close(1.0, 1.0, 0, 0))
	assert.False(t, numeric.Close(1.0, 1.01, 1e-8, 1e-5))
	assert.True(t, numeric.Close(1.0, 1.0000001, numeric.DefaultATol, numeric.DefaultRTol))
}
