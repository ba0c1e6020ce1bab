package ecs

// denseVector is a resizable buffer of small values whose logical size is
// decoupled from its backing capacity, so Clear-and-reuse in a hot loop never
// triggers an allocation. It backs the sparse arrays inside SparseSet and the
// entity-to-pool-id index inside componentPool, mirroring the source's
// IntVector<T>.
type denseVector[T any] struct {
	data []T
	size int
}

// Push appends x, reusing backing capacity left over from a previous Clear
// before growing.
func (v *denseVector[T]) Push(x T) {
	if v.size < len(v.data) {
		v.data[v.size] = x
	} else {
		v.data = append(v.data, x)
	}
	v.size++
}

// Pop discards the last element. Backing capacity is never released.
func (v *denseVector[T]) Pop() {
	if v.size > 0 {
		v.size--
	}
}

// Clear resets the logical size to zero but keeps the backing array, so a
// vector reused across many short-lived sets never reallocates.
func (v *denseVector[T]) Clear() { v.size = 0 }

// ClearAll drops both the logical size and the backing array.
func (v *denseVector[T]) ClearAll() {
	v.size = 0
	v.data = v.data[:0]
}

// Shrink trims backing capacity down to the logical size.
func (v *denseVector[T]) Shrink() { v.data = v.data[:v.size] }

func (v *denseVector[T]) Len() int { return v.size }

func (v *denseVector[T]) At(i int) T { return v.data[i] }

func (v *denseVector[T]) Set(i int, x T) { v.data[i] = x }

// ForceGet grows the logical size to cover index i and returns a pointer to
// slot i. Slots appended to the backing array are zero-filled; slots that
// were already in the backing array (left there by Clear, Pop or a shrinking
// Resize) are exposed again with their previous contents. This is the sparse
// set's primary growth operation.
func (v *denseVector[T]) ForceGet(i int) *T {
	if i+1 > v.size {
		v.size = i + 1
	}
	if v.size > len(v.data) {
		grown := make([]T, v.size)
		copy(grown, v.data)
		v.data = grown
	}
	return &v.data[i]
}

// Resize sets the logical size to n, filling any newly exposed slots with
// val. Existing slots below the old size are left untouched.
func (v *denseVector[T]) Resize(n int, val T) {
	if n > len(v.data) {
		grown := make([]T, n)
		copy(grown, v.data)
		v.data = grown
	}
	for i := v.size; i < n; i++ {
		v.data[i] = val
	}
	v.size = n
}

func (v *denseVector[T]) Back() T { return v.data[v.size-1] }

// Data returns the live prefix of the backing array.
func (v *denseVector[T]) Data() []T { return v.data[:v.size] }
