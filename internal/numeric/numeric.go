// Package numeric provides the scalar helpers spec.md §4.7 calls for
// (Close, a type-switch-based elementwise Convert) shared by array
// construction-from-foreign-type and the Close/AllClose operators.
//
// Convert is grounded directly on the teacher's generic ConvertValue
// (pkg/core/math/primitive/copy.go): a type switch on the destination's
// zero value, rather than a direct type-parameter-to-type-parameter
// conversion, which Go generics does not permit between two unbound
// numeric type parameters.
package numeric

import "math"

// Numeric is the set of element types Array construction-from-foreign-type
// and Close/AllClose operate over.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Convert converts v of type From to type To via a type switch on the
// destination's zero value, mirroring primitive.ConvertValue.
func Convert[From, To Numeric](v From) To {
	var zero To
	switch any(zero).(type) {
	case int:
		return any(int(v)).(To)
	case int8:
		return any(int8(v)).(To)
	case int16:
		return any(int16(v)).(To)
	case int32:
		return any(int32(v)).(To)
	case int64:
		return any(int64(v)).(To)
	case uint:
		return any(uint(v)).(To)
	case uint8:
		return any(uint8(v)).(To)
	case uint16:
		return any(uint16(v)).(To)
	case uint32:
		return any(uint32(v)).(To)
	case uint64:
		return any(uint64(v)).(To)
	case float32:
		return any(float32(v)).(To)
	case float64:
		return any(float64(v)).(To)
	default:
		var z To
		return z
	}
}

// DefaultATol and DefaultRTol are the default tolerances Close uses when
// the caller does not supply explicit ones, chosen to cover zero-vs-small-
// magnitude comparisons the same way numpy's allclose defaults do.
const (
	DefaultATol = 1e-8
	DefaultRTol = 1e-5
)

// Close reports whether |a-b| <= atol + rtol*|b|. When both tolerances
// are zero this reduces to exact equality, per spec.md §4.6.
func Close(a, b, atol, rtol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	bound := atol + rtol*math.Abs(b)
	return diff <= bound
}
