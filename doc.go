// Package lazyheap implements deferred destruction for short-lived values.
//
// # Overview
//
// Destroying many small objects one by one, exactly where their scopes end,
// scatters cleanup cost across the hot path. lazyheap batches those
// destructions instead: a generic Lazy wrapper hands its payload's bytes
// and a type-bound destructor to a fixed-capacity byte arena (the deferred
// heap), and the destructors run later, in FIFO order, at a point the
// application chooses. This is useful for:
//
//   - Amortizing destructor side effects at frame or batch boundaries
//   - Keeping destruction order identical to release order when destructors
//     have observable effects
//   - Bounding the memory spent on not-yet-destroyed values
//
// # Basic Usage
//
//	h := lazyheap.New(0) // Use default capacity (512 bytes)
//	defer h.Release()    // Teardown drains whatever is still pending
//
//	w := lazyheap.Make(h, openResource())
//	w.Value().Use()
//	w.Release() // Destruction is enqueued, not executed
//
//	// ... end of the batch:
//	h.Clear() // Runs every pending Destroy, oldest first
//
// A payload type opts into deferred destruction by implementing Destroyer:
//
//	func (r *resource) Destroy() { r.close() }
//
// Types that do not implement Destroyer are trivially destructible;
// releasing their wrapper does nothing and nothing is enqueued.
//
// # Capacity and Overflow
//
// The arena never grows. Elements pack back to back from offset 0 and the
// offset restarts only after a full drain. When an element does not fit in
// the remaining capacity its destructor runs synchronously at enqueue time
// instead, silently: the element loses the batching benefit but the memory
// bound holds and Enqueue never fails. The Overflows counter records how
// often this happened.
//
// # Thread Safety
//
// Heap is single-owner: one heap per goroutine or logical context, no
// internal locking. For a heap shared between goroutines use SafeHeap:
//
//	s := lazyheap.NewSafeHeap(4096)
//	defer s.Release()
//
// Default() returns a process-wide SafeHeap whose pending destructors are
// drained at process exit.
//
// # Important Notes
//
//   - Every released element is destroyed exactly once: on Dequeue, on
//     Clear, on heap teardown, or immediately on overflow
//   - The arena is a plain byte buffer the garbage collector does not
//     scan. A payload holding Go pointers must stay reachable elsewhere
//     until the heap drains
//   - Move relocates the payload's representation bitwise; types holding
//     interior self-references do not tolerate this
//   - Deleters run inside Dequeue/Clear/Enqueue and must not panic or
//     re-enter the same SafeHeap
//
// # Metrics and Monitoring
//
// The heap exposes counters for monitoring batching behavior:
//
//	m := h.Metrics()
//	fmt.Printf("Pending: %d (%d bytes)\n", m.Pending, m.BytesPending)
//	fmt.Printf("Overflow fallbacks: %d\n", m.Overflows)
package lazyheap
