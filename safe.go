package dynarr

import (
	"github.com/pkg/errors"
)

// Try runs fn and converts a *ContractViolation or *AllocationFailure
// raised under PolicyPanic into a returned error carrying a stack trace.
// Any other panic is propagated.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r == nil {
			return
		} else if v, ok := r.(*ContractViolation); ok {
			err = errors.WithStack(v)
		} else if f, ok := r.(*AllocationFailure); ok {
			err = errors.WithStack(f)
		} else {
			panic(r)
		}
	}()
	fn()
	return nil
}

func try1[V any](fn func() V) (v V, err error) {
	err = Try(func() { v = fn() })
	return v, err
}

// SafeArray is an Array whose operations report contract violations and
// allocation failures as errors instead of panicking. Like Array it is
// not goroutine-safe.
type SafeArray[T any] struct {
	a *Array[T]
}

// NewSafe creates an empty SafeArray. Bounds checks are always on and the
// policy is always PolicyPanic, whatever opts say.
func NewSafe[T any](opts ...Option) *SafeArray[T] {
	opts = append(opts, WithBoundsChecks(true), WithPolicy(PolicyPanic))
	return &SafeArray[T]{a: New[T](opts...)}
}

// Unwrap returns the underlying Array.
func (s *SafeArray[T]) Unwrap() *Array[T] {
	return s.a
}

// Len returns the number of live elements.
func (s *SafeArray[T]) Len() int {
	return s.a.Len()
}

// Metrics returns a snapshot of the underlying array's bookkeeping.
func (s *SafeArray[T]) Metrics() Metrics {
	return s.a.Metrics()
}

// Peek returns element i.
func (s *SafeArray[T]) Peek(i int) (T, error) {
	return try1(func() T { return s.a.Peek(i) })
}

// BulkPeek returns a copy of elements [i, i+n).
func (s *SafeArray[T]) BulkPeek(i, n int) ([]T, error) {
	return try1(func() []T { return s.a.BulkPeek(i, n) })
}

// Replace overwrites element i with v.
func (s *SafeArray[T]) Replace(i int, v T) error {
	return Try(func() { s.a.Replace(i, v) })
}

// BulkReplace overwrites elements [i, i+len(vs)) with vs.
func (s *SafeArray[T]) BulkReplace(i int, vs []T) error {
	return Try(func() { s.a.BulkReplace(i, vs) })
}

// Set overwrites n consecutive elements starting at i with v.
func (s *SafeArray[T]) Set(i int, v T, n int) error {
	return Try(func() { s.a.Set(i, v, n) })
}

// Flip swaps elements i and j.
func (s *SafeArray[T]) Flip(i, j int) error {
	return Try(func() { s.a.Flip(i, j) })
}

// BulkFlip swaps elements [i, i+n) with [j, j+n).
func (s *SafeArray[T]) BulkFlip(i, j, n int) error {
	return Try(func() { s.a.BulkFlip(i, j, n) })
}

// Append adds v at the back.
func (s *SafeArray[T]) Append(v T) error {
	return Try(func() { s.a.Append(v) })
}

// BulkAppend adds vs at the back.
func (s *SafeArray[T]) BulkAppend(vs []T) error {
	return Try(func() { s.a.BulkAppend(vs) })
}

// Prepend adds v at the front.
func (s *SafeArray[T]) Prepend(v T) error {
	return Try(func() { s.a.Prepend(v) })
}

// BulkPrepend adds vs at the front.
func (s *SafeArray[T]) BulkPrepend(vs []T) error {
	return Try(func() { s.a.BulkPrepend(vs) })
}

// InsertAt inserts v so that it becomes element i.
func (s *SafeArray[T]) InsertAt(i int, v T) error {
	return Try(func() { s.a.InsertAt(i, v) })
}

// BulkInsertAt inserts vs so that vs[0] becomes element i.
func (s *SafeArray[T]) BulkInsertAt(i int, vs []T) error {
	return Try(func() { s.a.BulkInsertAt(i, vs) })
}

// Precate removes and returns the front element.
func (s *SafeArray[T]) Precate() (T, error) {
	return try1(s.a.Precate)
}

// QuickPrecate removes and returns the front element by growing the
// deadzone.
func (s *SafeArray[T]) QuickPrecate() (T, error) {
	return try1(s.a.QuickPrecate)
}

// Truncate removes and returns the back element.
func (s *SafeArray[T]) Truncate() (T, error) {
	return try1(s.a.Truncate)
}

// RemoveAt removes and returns element i.
func (s *SafeArray[T]) RemoveAt(i int) (T, error) {
	return try1(func() T { return s.a.RemoveAt(i) })
}

// BulkRemoveAt removes and returns elements [i, i+n).
func (s *SafeArray[T]) BulkRemoveAt(i, n int) ([]T, error) {
	return try1(func() []T { return s.a.BulkRemoveAt(i, n) })
}

// QuickRemoveAt removes and returns element i.
func (s *SafeArray[T]) QuickRemoveAt(i int) (T, error) {
	return try1(func() T { return s.a.QuickRemoveAt(i) })
}

// ResizeTo sets the capacity to exactly n elements.
func (s *SafeArray[T]) ResizeTo(n int) ([]T, error) {
	return try1(func() []T { return s.a.ResizeTo(n) })
}

// Trim releases all slack.
func (s *SafeArray[T]) Trim() error {
	return Try(s.a.Trim)
}

// Copy returns an independent SafeArray with no slack.
func (s *SafeArray[T]) Copy() (*SafeArray[T], error) {
	c, err := try1(s.a.Copy)
	if err != nil {
		return nil, err
	}
	return &SafeArray[T]{a: c}, nil
}

// Release drops the buffer.
func (s *SafeArray[T]) Release() {
	s.a.Release()
}
