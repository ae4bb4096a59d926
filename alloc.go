package dynarr

import (
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// sizeOf returns the byte width of one T.
func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// allocSlots returns a zeroed buffer holding capacity elements of size
// slots each. Sizes whose byte count overflows, and requests the runtime
// rejects, come back as an *AllocationFailure. An out-of-memory condition
// inside the Go runtime is fatal and cannot be reported here.
func allocSlots[T any](oldCap, capacity, size int) (buf []T, err error) {
	width := sizeOf[T]()
	fail := func(cause error) *AllocationFailure {
		return &AllocationFailure{OldCap: oldCap, NewCap: capacity, ElementSize: size * width, Err: cause}
	}

	if capacity < 0 || size <= 0 {
		return nil, fail(errors.Errorf("invalid allocation of %d element(s) of %d slot(s)", capacity, size))
	}
	hi, slots := bits.Mul64(uint64(capacity), uint64(size))
	if hi != 0 || slots > math.MaxInt {
		return nil, fail(errors.Errorf("slot count %d x %d overflows", capacity, size))
	}
	if width > 0 {
		hi, nbytes := bits.Mul64(slots, uint64(width))
		if hi != 0 || nbytes > math.MaxInt {
			return nil, fail(errors.Errorf("byte size of %d slot(s) of %d byte(s) overflows", slots, width))
		}
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fail(errors.Wrap(rerr, "makeslice"))
		}
	}()
	return make([]T, int(slots)), nil
}
