// Package dims provides a small int vector for shape/stride metadata.
// Layouts of rank <= inlineCap (most real-world arrays) never touch the
// heap; rank beyond that spills to a slice. This adapts the teacher's
// (primitive/generics/helpers) stack-array-with-heap-fallback idiom —
// `var static [MAX_DIMS]int; dst = static[:rank]` — from a transient
// function-local buffer into a persistent struct field, since a Go
// struct cannot embed a length-parametric array the way a templated
// stack buffer can.
package dims

// inlineCap is the largest rank Vec stores without allocating. spec.md calls
// out rank <= 3 explicitly as the common case.
const inlineCap = 3

// Vec holds a sequence of ints, either in an inline array or on the heap.
type Vec struct {
	inline [inlineCap]int
	heap   []int
	n      int
}

// New builds a Vec holding a copy of vals.
func New(vals ...int) Vec {
	var v Vec
	v.Set(vals)
	return v
}

// Set replaces the vector's contents with a copy of vals.
func (v *Vec) Set(vals []int) {
	v.n = len(vals)
	if len(vals) <= inlineCap {
		copy(v.inline[:], vals)
		v.heap = nil
		return
	}
	v.heap = append(make([]int, 0, len(vals)), vals...)
}

// Len returns the number of elements.
func (v Vec) Len() int { return v.n }

// At returns the i-th element.
func (v Vec) At(i int) int {
	if v.heap != nil {
		return v.heap[i]
	}
	return v.inline[i]
}

// SetAt assigns the i-th element.
func (v *Vec) SetAt(i, val int) {
	if v.heap != nil {
		v.heap[i] = val
		return
	}
	v.inline[i] = val
}

// Slice returns the vector's contents as a plain []int. The returned
// slice aliases the Vec's storage and must not be retained past the next
// mutation of v.
func (v *Vec) Slice() []int {
	if v.heap != nil {
		return v.heap
	}
	return v.inline[:v.n]
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	var out Vec
	out.Set(v.Slice())
	return out
}

// Equal reports whether v and other hold the same sequence of ints.
func (v Vec) Equal(other Vec) bool {
	if v.n != other.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// Stack returns a []int of length n backed by buf when buf has enough
// capacity, else a freshly allocated slice. This mirrors the teacher's
// ComputeStrides(dst, shape) convention for call sites that want to avoid
// allocation on a hot path by passing a caller-owned stack array.
func Stack(buf []int, n int) []int {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]int, n)
}
