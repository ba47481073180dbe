// Package buffer implements the reference-counted shared allocation that
// backs every array handle. It adapts the teacher's owning-allocation
// plus explicit-release convention (types.MakeTensorData /
// types.ReleaseTensorData in pkg/core/math/tensor/types/dtype.go)
// to spec.md's "reference-counted sharing primitive" requirement.
// Unlike the teacher's helpers.Pool[T], this does not pool buffers for
// reuse across unrelated allocations — an Array[T]'s buffer lives exactly
// as long as the last view referencing it, which a tiered reuse pool
// would fight rather than serve (see DESIGN.md).
package buffer

import "github.com/oren12321/oc-array/internal/arrayerr"

// Shared is an owning, reference-counted allocation of n elements of T.
// The core runs single-threaded per spec.md §5, so the refcount is a
// plain int, not an atomic — concurrent use of one Shared from multiple
// goroutines is undefined, exactly as spec.md §5 documents for the core
// as a whole.
type Shared[T any] struct {
	data []T
	refs *int
}

// New allocates a Shared buffer of n zero-valued elements. It panics with
// an arrayerr AllocationFailure if n is negative, the one allocation
// precondition this module can detect ahead of calling make (Go's
// allocator has no recoverable out-of-memory signal to wrap).
func New[T any](n int) *Shared[T] {
	if n < 0 {
		arrayerr.Panic(arrayerr.AllocationFailure, "buffer.New", "negative length %d", n)
	}
	refs := 1
	return &Shared[T]{data: make([]T, n), refs: &refs}
}

// Wrap takes ownership of an existing slice without copying it.
func Wrap[T any](data []T) *Shared[T] {
	refs := 1
	return &Shared[T]{data: data, refs: &refs}
}

// Retain increments the reference count and returns the same buffer,
// for a new handle that will alias this storage.
func (b *Shared[T]) Retain() *Shared[T] {
	if b == nil {
		return nil
	}
	*b.refs++
	return b
}

// Release decrements the reference count. The backing slice becomes
// eligible for garbage collection once the last reference drops; Go has
// no explicit free, so Release's only observable effect is making further
// use of this particular *Shared a programmer error.
func (b *Shared[T]) Release() {
	if b == nil {
		return
	}
	*b.refs--
}

// RefCount reports the current number of live references.
func (b *Shared[T]) RefCount() int {
	if b == nil {
		return 0
	}
	return *b.refs
}

// Data returns the underlying slice. Callers index it with a layout's
// offset + strides; Shared itself knows nothing about shape.
func (b *Shared[T]) Data() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of elements in the backing allocation.
func (b *Shared[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}
