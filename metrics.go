package lazyheap

// BytesPending returns the number of arena bytes occupied by elements
// still awaiting destruction.
func (h *Heap) BytesPending() int {
	if h.head == len(h.elems) {
		return 0
	}
	last := h.elems[len(h.elems)-1]
	return last.offset + last.size - h.elems[h.head].offset
}

// Pending returns the number of elements awaiting destruction.
func (h *Heap) Pending() int {
	return len(h.elems) - h.head
}

// Capacity returns the arena capacity in bytes. Returns 0 after Release.
func (h *Heap) Capacity() int {
	return len(h.buf)
}

// Enqueued returns the total number of elements accepted into the arena.
func (h *Heap) Enqueued() uint64 {
	return h.enqueued
}

// Destroyed returns the total number of destructor invocations, including
// overflow fallbacks.
func (h *Heap) Destroyed() uint64 {
	return h.destroyed
}

// Overflows returns the number of elements destroyed immediately at
// enqueue time because they did not fit in the remaining arena capacity.
func (h *Heap) Overflows() uint64 {
	return h.overflows
}

// Utilization returns the ratio of pending bytes to capacity (0.0 to 1.0).
// Returns 0.0 if the heap has been released.
func (h *Heap) Utilization() float64 {
	capacity := h.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(h.BytesPending()) / float64(capacity)
}

// Metrics returns a snapshot of heap statistics.
func (h *Heap) Metrics() HeapMetrics {
	return HeapMetrics{
		BytesPending: h.BytesPending(),
		Capacity:     h.Capacity(),
		Pending:      h.Pending(),
		Enqueued:     h.Enqueued(),
		Destroyed:    h.Destroyed(),
		Overflows:    h.Overflows(),
		Utilization:  h.Utilization(),
	}
}

// HeapMetrics contains statistical information about a heap.
type HeapMetrics struct {
	BytesPending int     // Arena bytes awaiting destruction
	Capacity     int     // Arena capacity in bytes
	Pending      int     // Elements awaiting destruction
	Enqueued     uint64  // Elements ever accepted into the arena
	Destroyed    uint64  // Destructor invocations, including overflow fallbacks
	Overflows    uint64  // Elements destroyed immediately for lack of space
	Utilization  float64 // Ratio of pending bytes to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeHeap

// BytesPending thread-safely returns the number of pending arena bytes.
func (s *SafeHeap) BytesPending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.BytesPending()
}

// Pending thread-safely returns the number of pending elements.
func (s *SafeHeap) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Pending()
}

// Capacity thread-safely returns the arena capacity in bytes.
func (s *SafeHeap) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Capacity()
}

// Enqueued thread-safely returns the total number of accepted elements.
func (s *SafeHeap) Enqueued() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Enqueued()
}

// Destroyed thread-safely returns the total number of destructor invocations.
func (s *SafeHeap) Destroyed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Destroyed()
}

// Overflows thread-safely returns the number of overflow fallbacks.
func (s *SafeHeap) Overflows() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Overflows()
}

// Utilization thread-safely returns the ratio of pending bytes to capacity.
func (s *SafeHeap) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Utilization()
}

// Metrics thread-safely returns a snapshot of heap statistics.
func (s *SafeHeap) Metrics() HeapMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Metrics()
}
