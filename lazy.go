package lazyheap

import "unsafe"

// Destroyer is implemented by payload types whose destruction has an
// observable effect (resource release, counters, logging). Types that do
// not implement it are trivially destructible: releasing their wrapper is
// a no-op and nothing reaches the heap.
type Destroyer interface {
	Destroy()
}

// Enqueuer is the part of a heap a Lazy wrapper reports to.
// Both *Heap and *SafeHeap satisfy it.
type Enqueuer interface {
	Enqueue(size int, deleter Deleter, src unsafe.Pointer)
}

// Lazy holds one value of type T in place and defers its destruction:
// Release hands the value's bytes and a type-bound deleter to the heap
// instead of calling Destroy synchronously.
type Lazy[T any] struct {
	val   T
	heap  Enqueuer
	inert bool // released or moved from
}

// Make moves val into a new wrapper that reports to h.
// A nil h selects the process-wide Default() heap.
func Make[T any](h Enqueuer, val T) *Lazy[T] {
	if h == nil {
		h = Default()
	}
	return &Lazy[T]{val: val, heap: h}
}

// Value returns a mutable reference to the wrapped value.
// It panics if the wrapper has been released or moved from.
func (l *Lazy[T]) Value() *T {
	l.panicIfInert()
	return &l.val
}

// Get returns a copy of the wrapped value.
// It panics if the wrapper has been released or moved from.
func (l *Lazy[T]) Get() T {
	l.panicIfInert()
	return l.val
}

// Move transfers the wrapped value to a new wrapper by plain assignment,
// relocating its representation bitwise. The receiver becomes inert:
// accessing it panics and releasing it does nothing, so the value is
// destroyed at most once. T must tolerate bitwise relocation; its own
// move or copy logic, if any, does not run.
func (l *Lazy[T]) Move() *Lazy[T] {
	l.panicIfInert()
	l.inert = true
	return &Lazy[T]{val: l.val, heap: l.heap}
}

// Release ends the wrapper's ownership of the value. For payload types
// implementing Destroyer it submits the value to the heap and returns
// immediately; Destroy runs later, on Dequeue or Clear (or synchronously
// if the arena is full — invisible to the caller either way). For all
// other payload types Release is a no-op. Idempotent.
func (l *Lazy[T]) Release() {
	if l.inert {
		return
	}
	l.inert = true
	if !needsDestroy[T]() {
		return
	}
	l.heap.Enqueue(int(unsafe.Sizeof(l.val)), destroy[T], unsafe.Pointer(&l.val))
}

// destroy is the type-erased deleter for T, bound at compile time and
// invoked at drain time against the arena's copy of the value.
func destroy[T any](p unsafe.Pointer) {
	any((*T)(p)).(Destroyer).Destroy()
}

// needsDestroy reports whether destroying a T has observable effects.
func needsDestroy[T any]() bool {
	_, ok := any((*T)(nil)).(Destroyer)
	return ok
}

func (l *Lazy[T]) panicIfInert() {
	if l.inert {
		panic("lazyheap: use after Release() or Move()")
	}
}
