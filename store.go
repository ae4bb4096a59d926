package dynarr

// store is the buffer engine behind Array and Blob.
//
// The buffer holds capacity elements of size slots each. The first
// deadzone elements are front slack left behind by quick removals; the
// live range follows them, and everything past it is back slack:
//
//	[ deadzone | live (count) | back slack ]
//
// Logical element i starts at buf[offset(i)]. Slack slots are kept zeroed.
type store[T any] struct {
	buf      []T
	capacity int
	count    int
	deadzone int
	size     int // slots of T per element
	width    int // bytes per element
	cfg      *config
}

func newStore[T any](size, width int, cfg *config) store[T] {
	s := store[T]{size: size, width: width, cfg: cfg}
	s.realloc(cfg.capacity)
	return s
}

// offset translates a logical index into a slot offset in buf.
func (s *store[T]) offset(i int) int {
	return (i + s.deadzone) * s.size
}

// run returns the slots backing logical elements [i, i+n) without
// validation.
func (s *store[T]) run(i, n int) []T {
	return s.buf[s.offset(i):s.offset(i+n)]
}

// backSlack returns the number of free elements past the live range.
func (s *store[T]) backSlack() int {
	return s.capacity - s.count - s.deadzone
}

func (s *store[T]) checkIndex(op string, i int) {
	if s.cfg.checks && (i < 0 || i >= s.count) {
		s.cfg.fail(&ContractViolation{Op: op, Index: i, N: 1, Count: s.count, kind: kindIndex})
	}
}

func (s *store[T]) checkRange(op string, i, n int) {
	if s.cfg.checks && (i < 0 || n < 0 || i+n > s.count) {
		s.cfg.fail(&ContractViolation{Op: op, Index: i, N: n, Count: s.count, kind: kindRange})
	}
}

func (s *store[T]) checkLen(op string, n int) {
	if s.cfg.checks && (n < 0 || n > s.count) {
		s.cfg.fail(&ContractViolation{Op: op, N: n, Count: s.count, kind: kindLen})
	}
}

func (s *store[T]) checkPosition(op string, i, n int) {
	if s.cfg.checks && (i < 0 || i > s.count || n < 0) {
		s.cfg.fail(&ContractViolation{Op: op, Index: i, N: n, Count: s.count, kind: kindPosition})
	}
}

// view validates [i, i+n) and returns its slots.
func (s *store[T]) view(op string, i, n int) []T {
	s.checkRange(op, i, n)
	return s.run(i, n)
}

// realloc moves the buffer into a fresh allocation of capacity elements,
// keeping the physical layout. capacity must cover deadzone + count.
func (s *store[T]) realloc(capacity int) {
	buf, err := allocSlots[T](s.capacity, capacity, s.size)
	if err != nil {
		s.cfg.fail(err)
	}
	if s.buf != nil {
		copy(buf, s.buf[:s.offset(s.count)])
	}
	s.buf = buf
	s.capacity = capacity
}

// grow ensures pending more elements fit past the live range, growing
// capacity by half plus one until they do.
func (s *store[T]) grow(pending int) {
	if pending <= 0 {
		return
	}
	need := s.count + s.deadzone + pending
	if need < s.capacity {
		return
	}
	c := s.capacity
	for need >= c {
		c += c/2 + 1
	}
	s.realloc(c)
}

// shrink gives back half of slack, the back slack measured before a
// removal.
func (s *store[T]) shrink(slack int) {
	if slack/2 == 0 {
		return
	}
	s.realloc(s.capacity - slack/2)
}

// normalize reallocates to exactly capacity elements with the live range
// at offset zero.
func (s *store[T]) normalize(capacity int) {
	buf, err := allocSlots[T](s.capacity, capacity, s.size)
	if err != nil {
		s.cfg.fail(err)
	}
	copy(buf, s.run(0, s.count))
	s.buf = buf
	s.capacity = capacity
	s.deadzone = 0
}

// shift moves the logical run [i, i+n) by delta elements. copy has memmove
// semantics, so overlapping source and destination work in both
// directions.
func (s *store[T]) shift(i, n, delta int) {
	if n <= 0 || delta == 0 {
		return
	}
	copy(s.run(i+delta, n), s.run(i, n))
}

// zero clears the slots of logical elements [i, i+n).
func (s *store[T]) zero(i, n int) {
	if n <= 0 {
		return
	}
	clear(s.run(i, n))
}

// openBack appends n uninitialized elements.
func (s *store[T]) openBack(n int) {
	s.grow(n)
	s.count += n
}

// openAt opens n uninitialized elements at logical [i, i+n). In the front
// half, existing deadzone absorbs as much as it can by moving the prefix
// [0, i) backward; the rest is opened by moving the suffix forward.
func (s *store[T]) openAt(op string, i, n int) {
	s.checkPosition(op, i, n)
	if n == 0 {
		return
	}
	k := 0
	if i <= s.count/2 {
		k = min(n, s.deadzone)
	}
	if k > 0 {
		s.shift(0, i, -k)
		s.deadzone -= k
		s.count += k
	}
	if m := n - k; m > 0 {
		s.grow(m)
		s.shift(i+k, s.count-i-k, m)
		s.count += m
	}
	// Moved-from slots inside the gap still hold old values.
	s.zero(i, n)
}

// closeBack removes [i, i+n) by moving the suffix backward.
func (s *store[T]) closeBack(i, n int) {
	s.shift(i+n, s.count-i-n, -n)
	s.zero(s.count-n, n)
	s.count -= n
}

// closeFront removes [i, i+n) by moving the prefix forward; the vacated
// front becomes deadzone.
func (s *store[T]) closeFront(i, n int) {
	s.shift(0, i, n)
	s.zero(0, n)
	s.deadzone += n
	s.count -= n
}

func (s *store[T]) set(op string, i int, v []T, n int) {
	r := s.view(op, i, n)
	for k := 0; k < len(r); k += s.size {
		copy(r[k:k+s.size], v)
	}
}

// flip swaps [i, i+n) with [j, j+n) through a scratch area taken from the
// back slack, else the deadzone, else a forced grow. The swap proceeds in
// chunks as large as the scratch area allows.
func (s *store[T]) flip(op string, i, j, n int) {
	s.checkRange(op, i, n)
	s.checkRange(op, j, n)
	if i == j || n == 0 {
		return
	}
	if s.cfg.checks && max(i, j)-min(i, j) < n {
		s.cfg.fail(&ContractViolation{Op: op, Index: i, Other: j, N: n, Count: s.count, kind: kindOverlap})
	}

	if s.backSlack() == 0 && s.deadzone == 0 {
		s.grow(n)
	}
	var scratch []T
	if back := s.backSlack(); back > 0 {
		scratch = s.buf[s.offset(s.count) : s.offset(s.count+min(back, n))]
	} else {
		scratch = s.buf[:min(s.deadzone, n)*s.size]
	}

	chunk := len(scratch) / s.size
	for done := 0; done < n; done += chunk {
		c := min(chunk, n-done)
		tmp := scratch[:c*s.size]
		a, b := s.run(i+done, c), s.run(j+done, c)
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
	clear(scratch)
}

// precate removes the front element by moving everything else down one.
func (s *store[T]) precate(out []T) {
	s.checkLen("precate", 1)
	slack := s.backSlack()
	copy(out, s.run(0, 1))
	s.closeBack(0, 1)
	s.shrink(slack)
}

// quickPrecate removes the front element by growing the deadzone.
func (s *store[T]) quickPrecate(out []T) {
	s.checkLen("quick-precate", 1)
	copy(out, s.run(0, 1))
	s.closeFront(0, 1)
}

func (s *store[T]) truncate(out []T) {
	s.checkLen("truncate", 1)
	slack := s.backSlack()
	copy(out, s.run(s.count-1, 1))
	s.closeBack(s.count-1, 1)
	s.shrink(slack)
}

// removeAt removes [i, i+n), moving whichever side of the gap is shorter.
func (s *store[T]) removeAt(op string, i, n int, out []T) {
	s.checkRange(op, i, n)
	slack := s.backSlack()
	copy(out, s.run(i, n))
	if i < s.count-i-n {
		s.closeFront(i, n)
	} else {
		s.closeBack(i, n)
	}
	s.shrink(slack)
}

// quickRemoveAt removes element i. In the front half it moves the prefix
// into the deadzone and skips the shrink.
func (s *store[T]) quickRemoveAt(i int, out []T) {
	s.checkIndex("quick-remove", i)
	if i > s.count/2 {
		s.removeAt("quick-remove", i, 1, out)
		return
	}
	copy(out, s.run(i, 1))
	s.closeFront(i, 1)
}

// resizeTo sets capacity to exactly capacity elements. Elements past the
// new capacity are cut off and returned.
func (s *store[T]) resizeTo(capacity int) []T {
	if s.cfg.checks && capacity <= 0 {
		s.cfg.fail(&ContractViolation{Op: "explicitly resize", N: capacity, Count: s.count, kind: kindSize})
	}
	var tail []T
	if capacity < s.count {
		n := s.count - capacity
		tail = make([]T, n*s.size)
		copy(tail, s.run(capacity, n))
		s.zero(capacity, n)
		s.count = capacity
	}
	s.normalize(capacity)
	return tail
}

// trim drops all slack.
func (s *store[T]) trim() {
	if s.deadzone == 0 && s.capacity == s.count {
		return
	}
	s.normalize(s.count)
}

// clone returns an independent store holding only the live range.
func (s *store[T]) clone() store[T] {
	buf, err := allocSlots[T](s.capacity, s.count, s.size)
	if err != nil {
		s.cfg.fail(err)
	}
	copy(buf, s.run(0, s.count))
	return store[T]{
		buf:      buf,
		capacity: s.count,
		count:    s.count,
		size:     s.size,
		width:    s.width,
		cfg:      s.cfg,
	}
}

// release drops the buffer. The store stays usable.
func (s *store[T]) release() {
	s.buf = nil
	s.capacity = 0
	s.count = 0
	s.deadzone = 0
}
