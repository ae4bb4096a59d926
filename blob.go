package dynarr

// Blob is a type-erased growable array whose elements are fixed-width
// byte strings. Values passed in must be exactly ElementSize bytes long
// (bulk values a whole multiple of it); values returned are copies.
type Blob struct {
	store[byte]
}

// NewBlob creates an empty Blob of elements elementSize bytes wide.
func NewBlob(elementSize int, opts ...Option) *Blob {
	cfg := newConfig(opts)
	if elementSize <= 0 {
		cfg.fail(&ContractViolation{Op: "create", N: elementSize, kind: kindSize})
	}
	return &Blob{store: newStore[byte](elementSize, elementSize, cfg)}
}

func (b *Blob) checkWidth(op string, v []byte) {
	if b.cfg.checks && len(v) != b.size {
		b.cfg.fail(&ContractViolation{Op: op, N: len(v), Count: b.size, kind: kindWidth})
	}
}

// elems validates that vs holds whole elements and returns how many.
func (b *Blob) elems(op string, vs []byte) int {
	if b.cfg.checks && len(vs)%b.size != 0 {
		b.cfg.fail(&ContractViolation{Op: op, N: len(vs), Count: b.size, kind: kindWidth})
	}
	return len(vs) / b.size
}

func (b *Blob) copyOut(r []byte) []byte {
	out := make([]byte, len(r))
	copy(out, r)
	return out
}

// Peek returns a copy of element i.
func (b *Blob) Peek(i int) []byte {
	b.checkIndex("read", i)
	return b.copyOut(b.run(i, 1))
}

// BulkPeek returns a copy of elements [i, i+n), concatenated.
func (b *Blob) BulkPeek(i, n int) []byte {
	return b.copyOut(b.view("bulk-read", i, n))
}

// Replace overwrites element i with v.
func (b *Blob) Replace(i int, v []byte) {
	b.checkWidth("replace", v)
	b.checkIndex("replace", i)
	copy(b.run(i, 1), v)
}

// BulkReplace overwrites consecutive elements starting at i with vs.
func (b *Blob) BulkReplace(i int, vs []byte) {
	n := b.elems("bulk-replace", vs)
	copy(b.view("bulk-replace", i, n), vs)
}

// Set overwrites n consecutive elements starting at i with v.
func (b *Blob) Set(i int, v []byte, n int) {
	b.checkWidth("set", v)
	b.set("set", i, v, n)
}

// Flip swaps elements i and j.
func (b *Blob) Flip(i, j int) {
	b.flip("flip", i, j, 1)
}

// BulkFlip swaps elements [i, i+n) with [j, j+n). The ranges must not
// overlap.
func (b *Blob) BulkFlip(i, j, n int) {
	b.flip("bulk-flip", i, j, n)
}

// Append adds v at the back.
func (b *Blob) Append(v []byte) {
	b.checkWidth("append", v)
	b.openBack(1)
	copy(b.run(b.count-1, 1), v)
}

// BulkAppend adds the elements packed in vs at the back.
func (b *Blob) BulkAppend(vs []byte) {
	n := b.elems("bulk-append", vs)
	b.openBack(n)
	copy(b.run(b.count-n, n), vs)
}

// Prepend adds v at the front.
func (b *Blob) Prepend(v []byte) {
	b.checkWidth("prepend", v)
	b.openAt("prepend", 0, 1)
	copy(b.run(0, 1), v)
}

// BulkPrepend adds the elements packed in vs at the front, in order.
func (b *Blob) BulkPrepend(vs []byte) {
	n := b.elems("bulk-prepend", vs)
	b.openAt("bulk-prepend", 0, n)
	copy(b.run(0, n), vs)
}

// InsertAt inserts v so that it becomes element i.
func (b *Blob) InsertAt(i int, v []byte) {
	b.checkWidth("insert", v)
	b.openAt("insert", i, 1)
	copy(b.run(i, 1), v)
}

// BulkInsertAt inserts the elements packed in vs starting at position i.
func (b *Blob) BulkInsertAt(i int, vs []byte) {
	n := b.elems("bulk-insert", vs)
	b.openAt("bulk-insert", i, n)
	copy(b.run(i, n), vs)
}

// Precate removes and returns the front element.
func (b *Blob) Precate() []byte {
	out := make([]byte, b.size)
	b.precate(out)
	return out
}

// QuickPrecate removes and returns the front element by growing the
// deadzone.
func (b *Blob) QuickPrecate() []byte {
	out := make([]byte, b.size)
	b.quickPrecate(out)
	return out
}

// Truncate removes and returns the back element.
func (b *Blob) Truncate() []byte {
	out := make([]byte, b.size)
	b.truncate(out)
	return out
}

// RemoveAt removes and returns element i.
func (b *Blob) RemoveAt(i int) []byte {
	b.checkIndex("remove", i)
	out := make([]byte, b.size)
	b.removeAt("remove", i, 1, out)
	return out
}

// BulkRemoveAt removes elements [i, i+n) and returns them concatenated.
func (b *Blob) BulkRemoveAt(i, n int) []byte {
	b.checkRange("bulk-remove", i, n)
	out := make([]byte, n*b.size)
	b.removeAt("bulk-remove", i, n, out)
	return out
}

// QuickRemoveAt removes and returns element i.
func (b *Blob) QuickRemoveAt(i int) []byte {
	out := make([]byte, b.size)
	b.quickRemoveAt(i, out)
	return out
}

// ResizeTo sets the capacity to exactly n elements and returns any
// elements cut off, concatenated.
func (b *Blob) ResizeTo(n int) []byte {
	return b.resizeTo(n)
}

// Trim releases all slack.
func (b *Blob) Trim() {
	b.trim()
}

// Copy returns an independent Blob holding the live elements with no
// slack.
func (b *Blob) Copy() *Blob {
	return &Blob{store: b.clone()}
}

// Release drops the buffer; the Blob stays reusable.
func (b *Blob) Release() {
	b.release()
}

// Bytes returns a copy of the live elements, concatenated.
func (b *Blob) Bytes() []byte {
	return b.copyOut(b.run(0, b.count))
}
