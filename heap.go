// Package lazyheap defers the destruction of short-lived values.
// Typical usage: wrap temporary values in Lazy, let their scopes end,
// then Clear() the heap at a batch boundary to run every pending
// destructor at once, in the order the values were released.
package lazyheap

import (
	"runtime"
	"unsafe"
)

// DefaultCapacity is the default arena capacity for new heaps (512 bytes).
const DefaultCapacity = 512

// Deleter invokes the destructor for a value whose bytes start at p.
// Deleters must not panic.
type Deleter func(p unsafe.Pointer)

// element describes one pending destruction.
type element struct {
	size    int
	deleter Deleter
	offset  int // byte offset into buf, assigned at enqueue time
}

// Heap is a deferred-destruction heap: a fixed-capacity byte arena plus a
// FIFO queue of pending destructor records. Not goroutine-safe.
// Use SafeHeap for concurrent access.
type Heap struct {
	buf   []byte
	elems []element
	head  int // index of the oldest pending element in elems

	enqueued  uint64
	destroyed uint64
	overflows uint64
}

// New creates a new Heap with the specified arena capacity in bytes.
// If capacity <= 0, DefaultCapacity is used. The capacity is fixed for the
// lifetime of the heap; elements that do not fit are destroyed immediately
// at enqueue time instead of growing the arena.
func New(capacity int) *Heap {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	h := &Heap{buf: make([]byte, capacity)}
	// Last-resort drain: a heap that becomes unreachable while elements
	// are still pending must run every destructor exactly once.
	runtime.SetFinalizer(h, (*Heap).Clear)
	return h
}

// Enqueue submits one pending destruction. size bytes are copied from src
// into the arena and the deleter is queued to run against that copy on a
// later Dequeue or Clear. Elements pack back to back: each new element
// starts where the previous one ended, restarting at offset 0 after a full
// drain. If the element does not fit in the remaining capacity the deleter
// runs synchronously on src instead and the queue is left untouched, so
// Enqueue never fails observably. A nil deleter is ignored.
func (h *Heap) Enqueue(size int, deleter Deleter, src unsafe.Pointer) {
	h.panicIfReleased()
	if deleter == nil {
		return
	}
	if size < 0 {
		size = 0
	}

	offset := 0
	if n := len(h.elems); n > 0 {
		last := h.elems[n-1]
		offset = last.offset + last.size
	}

	if offset+size > len(h.buf) {
		// Does not fit: destroy immediately rather than grow or block.
		deleter(src)
		h.overflows++
		h.destroyed++
		return
	}

	if size > 0 {
		copy(h.buf[offset:offset+size], unsafe.Slice((*byte)(src), size))
	}
	h.elems = append(h.elems, element{size: size, deleter: deleter, offset: offset})
	h.enqueued++
}

// Dequeue runs the oldest pending destructor against its arena bytes.
// It reports whether an element was processed; false means the queue
// was empty.
func (h *Heap) Dequeue() bool {
	h.panicIfReleased()
	if h.head == len(h.elems) {
		return false
	}

	e := h.elems[h.head]
	p := unsafe.Pointer(&h.buf[0])
	if e.size > 0 {
		p = unsafe.Pointer(&h.buf[e.offset])
	}
	// Invoke before removing: the element stays at the queue head while
	// its destructor runs, so a deleter that re-enters Enqueue packs
	// behind these still-live bytes instead of overwriting them.
	e.deleter(p)
	h.destroyed++

	h.elems[h.head] = element{} // drop the deleter reference
	h.head++
	if h.head == len(h.elems) {
		// Fully drained: the next element packs from offset 0 again.
		h.elems = h.elems[:0]
		h.head = 0
	}
	return true
}

// Clear drains the heap, running every pending destructor in FIFO order.
// Safe to call when already empty.
func (h *Heap) Clear() {
	for h.Dequeue() {
	}
}

// Release drains the heap, then drops the arena and makes the heap
// unusable. Any subsequent operation will panic. Calling Release on an
// already-released heap is a no-op.
func (h *Heap) Release() {
	if h.buf == nil {
		return
	}
	h.Clear()
	runtime.SetFinalizer(h, nil)
	h.buf = nil
	h.elems = nil
	h.head = 0
}

// panicIfReleased panics if the heap has been released.
func (h *Heap) panicIfReleased() {
	if h.buf == nil {
		panic("lazyheap: use after Release()")
	}
}
