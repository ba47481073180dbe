package ndarray

import (
	"github.com/oren12321/oc-array/internal/numeric"
	"github.com/oren12321/oc-array/pkg/cursor"
)

// arithmetic is the element type constraint the Add/Sub/Mul/Div family
// and the comparison operators operate over, mirroring tensor_math.go's
// numeric constraint generalised from the teacher's fixed DataType set.
type arithmetic interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// bitwiseInt is the element type constraint the And/Or/Xor/Not/Shl/Shr
// family operates over, mirroring the integer-only operand requirement
// the teacher's expression evaluator enforces for its "&", "^", "|",
// "<<", ">>" operators (x/math/protocol/peg/expression.go).
type bitwiseInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Add returns a freshly allocated array of a+b, elementwise.
func Add[T arithmetic](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x + y })
}

// Sub returns a freshly allocated array of a-b, elementwise.
func Sub[T arithmetic](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x - y })
}

// Mul returns a freshly allocated array of a*b, elementwise.
func Mul[T arithmetic](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x * y })
}

// Div returns a freshly allocated array of a/b, elementwise.
func Div[T arithmetic](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x / y })
}

// AddScalar returns a+scalar, elementwise.
func AddScalar[T arithmetic](a Array[T], scalar T) Array[T] {
	return TransformScalar(a, scalar, func(x, y T) T { return x + y })
}

// SubScalar returns a-scalar, elementwise.
func SubScalar[T arithmetic](a Array[T], scalar T) Array[T] {
	return TransformScalar(a, scalar, func(x, y T) T { return x - y })
}

// MulScalar returns a*scalar, elementwise.
func MulScalar[T arithmetic](a Array[T], scalar T) Array[T] {
	return TransformScalar(a, scalar, func(x, y T) T { return x * y })
}

// DivScalar returns a/scalar, elementwise.
func DivScalar[T arithmetic](a Array[T], scalar T) Array[T] {
	return TransformScalar(a, scalar, func(x, y T) T { return x / y })
}

// AddAssign mutates a in place, a[i] += b[i]; writes through a view.
func AddAssign[T arithmetic](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x + y })
}

// SubAssign mutates a in place, a[i] -= b[i]; writes through a view.
func SubAssign[T arithmetic](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x - y })
}

// MulAssign mutates a in place, a[i] *= b[i]; writes through a view.
func MulAssign[T arithmetic](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x * y })
}

// DivAssign mutates a in place, a[i] /= b[i]; writes through a view.
func DivAssign[T arithmetic](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x / y })
}

// Increment adds 1 to every element of a in place (pre-increment
// semantics: the mutation is visible through a's own storage,
// including through a view), per spec.md §4.6.
func Increment[T arithmetic](a Array[T]) {
	InPlace(a, func(v T) T { return v + 1 })
}

// PostIncrement returns a's values before incrementing, as a new, non-
// view array, then increments a in place — the clone-then-mutate
// semantics spec.md §4.6 asks for post-increment.
func PostIncrement[T arithmetic](a Array[T]) Array[T] {
	before := a.Clone()
	Increment(a)
	return before
}

// Decrement subtracts 1 from every element of a in place.
func Decrement[T arithmetic](a Array[T]) {
	InPlace(a, func(v T) T { return v - 1 })
}

// PostDecrement returns a's values before decrementing, then decrements
// a in place.
func PostDecrement[T arithmetic](a Array[T]) Array[T] {
	before := a.Clone()
	Decrement(a)
	return before
}

// And returns a&b, elementwise.
func And[T bitwiseInt](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x & y })
}

// Or returns a|b, elementwise.
func Or[T bitwiseInt](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x | y })
}

// Xor returns a^b, elementwise.
func Xor[T bitwiseInt](a, b Array[T]) Array[T] {
	return TransformBinary(a, b, func(x, y T) T { return x ^ y })
}

// Not returns ^a (one's complement), elementwise.
func Not[T bitwiseInt](a Array[T]) Array[T] {
	return Transform(a, func(x T) T { return ^x })
}

// Shl returns a<<bits, elementwise.
func Shl[T bitwiseInt](a Array[T], bits uint) Array[T] {
	return Transform(a, func(x T) T { return x << bits })
}

// Shr returns a>>bits, elementwise.
func Shr[T bitwiseInt](a Array[T], bits uint) Array[T] {
	return Transform(a, func(x T) T { return x >> bits })
}

// AndAssign mutates a in place, a[i] &= b[i]; writes through a view.
func AndAssign[T bitwiseInt](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x & y })
}

// OrAssign mutates a in place, a[i] |= b[i]; writes through a view.
func OrAssign[T bitwiseInt](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x | y })
}

// XorAssign mutates a in place, a[i] ^= b[i]; writes through a view.
func XorAssign[T bitwiseInt](a, b Array[T]) {
	InPlaceBinary(a, b, func(x, y T) T { return x ^ y })
}

// Compare builds a freshly allocated bool array by applying pred
// elementwise to corresponding values of a and b, the comparison-
// operator analogue of TransformBinary. a and b must have equal shape.
func Compare[T any](a, b Array[T], pred func(T, T) bool) Array[bool] {
	checkSameShape(a, b, "ndarray.Compare")
	n := a.Count()
	out := make([]bool, n)
	if n > 0 {
		ad, bd := a.buf.Data(), b.buf.Data()
		ac := cursor.NewDefault(&a.l)
		bc := cursor.NewDefault(&b.l)
		for i := 0; i < n; i++ {
			out[i] = pred(ad[ac.Deref()], bd[bc.Deref()])
			if i != n-1 {
				ac.Advance(1)
				bc.Advance(1)
			}
		}
	}
	return FromData(out, a.l.Dims()...)
}

// Equal returns a == b elementwise as a freshly allocated bool array.
func Equal[T comparable](a, b Array[T]) Array[bool] {
	return Compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a != b elementwise as a freshly allocated bool array.
func NotEqual[T comparable](a, b Array[T]) Array[bool] {
	return Compare(a, b, func(x, y T) bool { return x != y })
}

// Less returns a < b elementwise as a freshly allocated bool array.
func Less[T arithmetic](a, b Array[T]) Array[bool] {
	return Compare(a, b, func(x, y T) bool { return x < y })
}

// Greater returns a > b elementwise as a freshly allocated bool array.
func Greater[T arithmetic](a, b Array[T]) Array[bool] {
	return Compare(a, b, func(x, y T) bool { return x > y })
}

// Close reports whether a and b are equal within the given tolerances
// at every position, per spec.md §4.6 (numeric element types only).
func Close[T numeric.Numeric](a, b Array[T], atol, rtol float64) bool {
	checkSameShape(a, b, "ndarray.Close")
	return AllMatch(a, b, func(x, y T) bool {
		return numeric.Close(float64(x), float64(y), atol, rtol)
	})
}

// AllClose is Close with the default tolerances spec.md §4.7 names.
func AllClose[T numeric.Numeric](a, b Array[T]) bool {
	return Close(a, b, numeric.DefaultATol, numeric.DefaultRTol)
}
