package lazyheap

import (
	"sync"
	"unsafe"
)

// SafeHeap is a mutex-protected wrapper around Heap for concurrent access.
// All operations are thread-safe but come with the overhead of mutex
// locking. Deleters run while the lock is held, so a deleter must not
// touch the same SafeHeap or it will deadlock.
type SafeHeap struct {
	mu sync.Mutex
	h  *Heap
}

// NewSafeHeap creates a new thread-safe heap with the specified arena
// capacity. If capacity <= 0, DefaultCapacity is used.
func NewSafeHeap(capacity int) *SafeHeap {
	return &SafeHeap{h: New(capacity)}
}

// Enqueue thread-safely submits one pending destruction.
func (s *SafeHeap) Enqueue(size int, deleter Deleter, src unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Enqueue(size, deleter, src)
}

// Dequeue thread-safely runs the oldest pending destructor, if any.
func (s *SafeHeap) Dequeue() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Dequeue()
}

// Clear thread-safely drains the heap. The lock is held for the whole
// drain, so the FIFO batch runs without interleaved enqueues.
func (s *SafeHeap) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Clear()
}

// Release thread-safely drains the heap and makes it unusable.
func (s *SafeHeap) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Release()
}
