package dynarr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContractViolations(t *testing.T) {
	tests := []struct {
		name string
		op   func(a *Array[int])
		want string
	}{
		{"read past end", func(a *Array[int]) { a.Peek(5) },
			"attempt to read element 5 from dynamic array of element count 5"},
		{"read negative", func(a *Array[int]) { a.Peek(-1) },
			"attempt to read element -1 from dynamic array of element count 5"},
		{"bulk read past end", func(a *Array[int]) { a.BulkPeek(3, 3) },
			"attempt to bulk-read 3 element(s) at index 3 from dynamic array of element count 5"},
		{"replace", func(a *Array[int]) { a.Replace(7, 0) },
			"attempt to replace element 7 from dynamic array of element count 5"},
		{"bulk replace", func(a *Array[int]) { a.BulkReplace(4, []int{1, 2}) },
			"attempt to bulk-replace 2 element(s) at index 4 from dynamic array of element count 5"},
		{"set negative count", func(a *Array[int]) { a.Set(0, 1, -1) },
			"attempt to set -1 element(s) at index 0 from dynamic array of element count 5"},
		{"flip", func(a *Array[int]) { a.Flip(0, 5) },
			"attempt to flip 1 element(s) at index 5 from dynamic array of element count 5"},
		{"overlapping bulk flip", func(a *Array[int]) { a.BulkFlip(0, 1, 2) },
			"attempt to bulk-flip overlapping ranges 0 and 1 of 2 element(s)"},
		{"insert past end", func(a *Array[int]) { a.InsertAt(6, 0) },
			"attempt to insert 1 element(s) at position 6 of dynamic array of element count 5"},
		{"bulk insert negative", func(a *Array[int]) { a.BulkInsertAt(-1, []int{1}) },
			"attempt to bulk-insert 1 element(s) at position -1 of dynamic array of element count 5"},
		{"remove", func(a *Array[int]) { a.RemoveAt(5) },
			"attempt to remove element 5 from dynamic array of element count 5"},
		{"bulk remove", func(a *Array[int]) { a.BulkRemoveAt(4, 2) },
			"attempt to bulk-remove 2 element(s) at index 4 from dynamic array of element count 5"},
		{"quick remove", func(a *Array[int]) { a.QuickRemoveAt(5) },
			"attempt to quick-remove element 5 from dynamic array of element count 5"},
		{"resize to zero", func(a *Array[int]) { a.ResizeTo(0) },
			"attempt to explicitly resize dynamic array to size 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fromSlice(1, 2, 3, 4, 5)
			capBefore := a.Cap()

			err := Try(func() { tt.op(a) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContractViolation))
			assert.EqualError(t, err, tt.want)

			// A rejected call leaves the array untouched.
			assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Slice())
			assert.Equal(t, capBefore, a.Cap())
		})
	}
}

func TestRemovalFromEmpty(t *testing.T) {
	tests := []struct {
		name string
		op   func(a *Array[int])
		want string
	}{
		{"precate", func(a *Array[int]) { a.Precate() },
			"attempt to precate 1 element(s) from dynamic array of element count 0"},
		{"quick precate", func(a *Array[int]) { a.QuickPrecate() },
			"attempt to quick-precate 1 element(s) from dynamic array of element count 0"},
		{"truncate", func(a *Array[int]) { a.Truncate() },
			"attempt to truncate 1 element(s) from dynamic array of element count 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int]()
			err := Try(func() { tt.op(a) })
			assert.EqualError(t, err, tt.want)
			assert.Equal(t, 0, a.Deadzone())
		})
	}
}

func TestPanicPolicy(t *testing.T) {
	a := New[int]()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*ContractViolation)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, "read", v.Op)
		assert.Equal(t, 0, v.Count)
	}()
	a.Peek(0)
}

func TestAbortPolicy(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	// WriteThenPanic stands in for os.Exit so the test survives.
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))

	a := New[int](WithPolicy(PolicyAbort), WithLogger(logger))
	a.Append(1)

	assert.Panics(t, func() { a.Peek(3) })

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.FatalLevel, entry.Level)
	assert.Equal(t, "attempt to read element 3 from dynamic array of element count 1", entry.Message)

	fields, ok := entry.ContextMap()["violation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "read", fields["op"])
	assert.Equal(t, 3, fields["index"])
	assert.Equal(t, 1, fields["count"])
}

func TestUnchecked(t *testing.T) {
	a := New[int](Unchecked())
	a.Append(1)
	a.Append(2)
	require.Equal(t, 4, a.Cap())

	// Slack slots read as zero values.
	assert.Equal(t, 0, a.Peek(2))

	// Past the allocation the runtime's own bounds check fires.
	assert.Panics(t, func() { a.Peek(10) })
	assert.Panics(t, func() {
		if err := Try(func() { a.Peek(10) }); err != nil {
			t.Errorf("runtime panic turned into %v", err)
		}
	})
}

func TestTryPropagatesForeignPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = Try(func() { panic("boom") })
	})
	assert.NoError(t, Try(func() {}))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "panic", PolicyPanic.String())
	assert.Equal(t, "abort", PolicyAbort.String())
	assert.Equal(t, "unknown", Policy(9).String())
}

func TestViolationLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	v := &ContractViolation{Op: "bulk-flip", Index: 0, Other: 1, N: 2, Count: 5, kind: kindOverlap}
	require.NoError(t, v.MarshalLogObject(enc))
	assert.Equal(t, map[string]interface{}{
		"op": "bulk-flip", "index": 0, "other": 1, "n": 2, "count": 5,
	}, enc.Fields)

	enc = zapcore.NewMapObjectEncoder()
	f := &AllocationFailure{OldCap: 1, NewCap: 2, ElementSize: 8, Err: errors.New("no memory")}
	require.NoError(t, f.MarshalLogObject(enc))
	assert.Equal(t, "no memory", enc.Fields["cause"])
	assert.True(t, errors.Is(f, ErrAllocationFailure))
}
