// Package dynarr implements a growable array that keeps front slack (the
// deadzone) so that removing from the front, and inserting or removing
// near either end, rarely moves the whole live range.
package dynarr

import (
	"iter"
)

// Array is a growable array of T. Not goroutine-safe.
//
// The zero value is not usable; construct with New.
type Array[T any] struct {
	store[T]
}

// New creates an empty Array with capacity DefaultCapacity unless
// WithCapacity says otherwise.
func New[T any](opts ...Option) *Array[T] {
	return &Array[T]{store: newStore[T](1, sizeOf[T](), newConfig(opts))}
}

// Peek returns element i.
func (a *Array[T]) Peek(i int) T {
	a.checkIndex("read", i)
	return a.buf[a.offset(i)]
}

// BulkPeek returns a copy of elements [i, i+n).
func (a *Array[T]) BulkPeek(i, n int) []T {
	r := a.view("bulk-read", i, n)
	out := make([]T, len(r))
	copy(out, r)
	return out
}

// Replace overwrites element i with v.
func (a *Array[T]) Replace(i int, v T) {
	a.checkIndex("replace", i)
	a.buf[a.offset(i)] = v
}

// BulkReplace overwrites elements [i, i+len(vs)) with vs.
func (a *Array[T]) BulkReplace(i int, vs []T) {
	copy(a.view("bulk-replace", i, len(vs)), vs)
}

// Set overwrites n consecutive elements starting at i with v.
func (a *Array[T]) Set(i int, v T, n int) {
	r := a.view("set", i, n)
	for k := range r {
		r[k] = v
	}
}

// Flip swaps elements i and j.
func (a *Array[T]) Flip(i, j int) {
	a.flip("flip", i, j, 1)
}

// BulkFlip swaps elements [i, i+n) with [j, j+n). The ranges must not
// overlap.
func (a *Array[T]) BulkFlip(i, j, n int) {
	a.flip("bulk-flip", i, j, n)
}

// Append adds v at the back.
func (a *Array[T]) Append(v T) {
	a.openBack(1)
	a.buf[a.offset(a.count-1)] = v
}

// BulkAppend adds vs at the back, in order.
func (a *Array[T]) BulkAppend(vs []T) {
	a.openBack(len(vs))
	copy(a.run(a.count-len(vs), len(vs)), vs)
}

// Prepend adds v at the front. It is O(1) while there is deadzone to
// consume.
func (a *Array[T]) Prepend(v T) {
	a.openAt("prepend", 0, 1)
	a.buf[a.offset(0)] = v
}

// BulkPrepend adds vs at the front, so that vs[0] becomes element 0.
func (a *Array[T]) BulkPrepend(vs []T) {
	a.openAt("bulk-prepend", 0, len(vs))
	copy(a.run(0, len(vs)), vs)
}

// InsertAt inserts v so that it becomes element i. i may equal Len.
func (a *Array[T]) InsertAt(i int, v T) {
	a.openAt("insert", i, 1)
	a.buf[a.offset(i)] = v
}

// BulkInsertAt inserts vs so that vs[0] becomes element i.
func (a *Array[T]) BulkInsertAt(i int, vs []T) {
	a.openAt("bulk-insert", i, len(vs))
	copy(a.run(i, len(vs)), vs)
}

// Precate removes and returns the front element, moving the rest down.
func (a *Array[T]) Precate() T {
	var out [1]T
	a.precate(out[:])
	return out[0]
}

// QuickPrecate removes and returns the front element in O(1) by growing
// the deadzone. The slot stays allocated until Trim.
func (a *Array[T]) QuickPrecate() T {
	var out [1]T
	a.quickPrecate(out[:])
	return out[0]
}

// Truncate removes and returns the back element.
func (a *Array[T]) Truncate() T {
	var out [1]T
	a.truncate(out[:])
	return out[0]
}

// RemoveAt removes and returns element i.
func (a *Array[T]) RemoveAt(i int) T {
	var out [1]T
	a.checkIndex("remove", i)
	a.removeAt("remove", i, 1, out[:])
	return out[0]
}

// BulkRemoveAt removes and returns elements [i, i+n).
func (a *Array[T]) BulkRemoveAt(i, n int) []T {
	a.checkRange("bulk-remove", i, n)
	out := make([]T, n)
	a.removeAt("bulk-remove", i, n, out)
	return out
}

// QuickRemoveAt removes and returns element i, trading capacity for fewer
// moves when i is in the front half.
func (a *Array[T]) QuickRemoveAt(i int) T {
	var out [1]T
	a.quickRemoveAt(i, out[:])
	return out[0]
}

// ResizeTo sets the capacity to exactly n elements. If n is below Len the
// cut-off tail is returned in order.
func (a *Array[T]) ResizeTo(n int) []T {
	return a.resizeTo(n)
}

// Trim releases all slack so that Cap == Len and Deadzone == 0.
func (a *Array[T]) Trim() {
	a.trim()
}

// Copy returns an independent array holding the live elements with no
// slack.
func (a *Array[T]) Copy() *Array[T] {
	return &Array[T]{store: a.clone()}
}

// Release drops the buffer. The array is empty afterwards and may be
// reused.
func (a *Array[T]) Release() {
	a.release()
}

// Slice returns a copy of the live elements.
func (a *Array[T]) Slice() []T {
	return a.BulkPeek(0, a.count)
}

// All iterates over the live elements in order. The array must not be
// modified during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.buf[a.offset(i)]) {
				return
			}
		}
	}
}
