package ndarray

import "github.com/oren12321/oc-array/internal/arrayerr"

// panicShapeMismatch is the single place traversal operators raise a
// ShapeMismatch, keeping the message format consistent across them.
func panicShapeMismatch(op string, a, b []int) {
	arrayerr.Panic(arrayerr.ShapeMismatch, op, "shapes %v and %v do not match", a, b)
}
