package dynarr

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrContractViolation is matched by every *ContractViolation.
	ErrContractViolation = errors.New("dynarr: contract violation")
	// ErrAllocationFailure is matched by every *AllocationFailure.
	ErrAllocationFailure = errors.New("dynarr: allocation failure")
)

type violationKind uint8

const (
	kindIndex violationKind = iota
	kindRange
	kindLen
	kindPosition
	kindSize
	kindWidth
	kindOverlap
)

// ContractViolation reports a caller bug: an index outside the live range,
// a bulk range running past the end, a removal from an array that is too
// small, or a non-positive explicit size. It is raised, never returned,
// unless the caller opts into the recoverable layer (see Try and SafeArray).
type ContractViolation struct {
	Op    string // operation name, e.g. "read" or "bulk-remove"
	Index int    // offending logical index
	Other int    // second index of a flip
	N     int    // element count involved, or the requested size/width
	Count int    // live element count (or element size for width errors)

	kind violationKind
}

func (v *ContractViolation) Error() string {
	switch v.kind {
	case kindIndex:
		return fmt.Sprintf("attempt to %s element %d from dynamic array of element count %d", v.Op, v.Index, v.Count)
	case kindRange:
		return fmt.Sprintf("attempt to %s %d element(s) at index %d from dynamic array of element count %d", v.Op, v.N, v.Index, v.Count)
	case kindLen:
		return fmt.Sprintf("attempt to %s %d element(s) from dynamic array of element count %d", v.Op, v.N, v.Count)
	case kindPosition:
		return fmt.Sprintf("attempt to %s %d element(s) at position %d of dynamic array of element count %d", v.Op, v.N, v.Index, v.Count)
	case kindSize:
		return fmt.Sprintf("attempt to %s dynamic array to size %d", v.Op, v.N)
	case kindWidth:
		return fmt.Sprintf("attempt to %s %d byte(s) into dynamic array of element size %d", v.Op, v.N, v.Count)
	case kindOverlap:
		return fmt.Sprintf("attempt to %s overlapping ranges %d and %d of %d element(s)", v.Op, v.Index, v.Other, v.N)
	}
	return fmt.Sprintf("attempt to %s dynamic array", v.Op)
}

// Unwrap makes errors.Is(err, ErrContractViolation) hold.
func (v *ContractViolation) Unwrap() error { return ErrContractViolation }

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (v *ContractViolation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("op", v.Op)
	enc.AddInt("index", v.Index)
	if v.kind == kindOverlap {
		enc.AddInt("other", v.Other)
	}
	enc.AddInt("n", v.N)
	enc.AddInt("count", v.Count)
	return nil
}

// AllocationFailure reports that the backing buffer could not be
// reallocated from OldCap to NewCap elements.
type AllocationFailure struct {
	OldCap      int
	NewCap      int
	ElementSize int
	Err         error
}

func (f *AllocationFailure) Error() string {
	return fmt.Sprintf("failed to reallocate memory for dynamic array of old size %d and new size %d: %v", f.OldCap, f.NewCap, f.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (f *AllocationFailure) Unwrap() []error { return []error{ErrAllocationFailure, f.Err} }

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (f *AllocationFailure) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("old_cap", f.OldCap)
	enc.AddInt("new_cap", f.NewCap)
	enc.AddInt("element_size", f.ElementSize)
	if f.Err != nil {
		enc.AddString("cause", f.Err.Error())
	}
	return nil
}
