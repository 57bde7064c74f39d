package lazyheap

import (
	"sync"

	"github.com/tebeka/atexit"
)

var (
	defaultOnce sync.Once
	defaultHeap *SafeHeap
)

// Default returns the process-wide heap, creating it with DefaultCapacity
// on first call. The returned heap is shared between goroutines and
// therefore mutex-protected; prefer passing an explicit Heap or SafeHeap
// where ownership is clear. Destructors still pending on the default heap
// at process exit are drained by a registered exit handler.
func Default() *SafeHeap {
	defaultOnce.Do(func() {
		defaultHeap = NewSafeHeap(DefaultCapacity)
		atexit.Register(defaultHeap.Clear)
	})
	return defaultHeap
}
