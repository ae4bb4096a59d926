package dynarr

// Len returns the number of live elements.
func (s *store[T]) Len() int {
	return s.count
}

// Cap returns the number of element slots allocated, including slack at
// both ends.
func (s *store[T]) Cap() int {
	return s.capacity
}

// Deadzone returns the number of removed-but-allocated slots at the front.
func (s *store[T]) Deadzone() int {
	return s.deadzone
}

// BackSlack returns the number of free slots past the last element.
func (s *store[T]) BackSlack() int {
	return s.backSlack()
}

// ElementSize returns the byte width of one element.
func (s *store[T]) ElementSize() int {
	return s.width
}

// SizeInBytes returns the size of the backing buffer in bytes.
func (s *store[T]) SizeInBytes() int {
	return s.capacity * s.width
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (s *store[T]) Utilization() float64 {
	if s.capacity == 0 {
		return 0
	}
	return float64(s.count) / float64(s.capacity)
}

// Metrics returns a snapshot of the array's bookkeeping.
func (s *store[T]) Metrics() Metrics {
	return Metrics{
		Len:         s.count,
		Capacity:    s.capacity,
		Deadzone:    s.deadzone,
		BackSlack:   s.backSlack(),
		ElementSize: s.width,
		SizeInBytes: s.SizeInBytes(),
		Utilization: s.Utilization(),
	}
}

// Metrics contains statistical information about an array.
type Metrics struct {
	Len         int     // Live elements
	Capacity    int     // Allocated element slots
	Deadzone    int     // Front slack in elements
	BackSlack   int     // Back slack in elements
	ElementSize int     // Bytes per element
	SizeInBytes int     // Capacity in bytes
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}
