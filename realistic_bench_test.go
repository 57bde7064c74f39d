package lazyheap

import "testing"

// benchSink keeps destructor bodies from being optimized away.
var benchSink int64

type benchPayload struct {
	a, b uint64
}

func (p *benchPayload) Destroy() {
	benchSink += int64(p.a)
}

// BenchmarkDeferredVsImmediate compares batched deferred destruction
// against destroying each value where its scope ends
func BenchmarkDeferredVsImmediate(b *testing.B) {

	// Batch of 100 releases, one flush per batch
	b.Run("Deferred/Batch100", func(b *testing.B) {
		h := New(100 * 16) // room for the whole batch
		defer h.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				Make(h, benchPayload{a: uint64(j)}).Release()
			}
			h.Clear()
		}
	})

	b.Run("Immediate", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				p := benchPayload{a: uint64(j)}
				p.Destroy()
			}
		}
	})
}

// BenchmarkEnqueueDequeue measures the raw per-element cost of the heap
func BenchmarkEnqueueDequeue(b *testing.B) {
	h := New(4096)
	defer h.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Make(h, benchPayload{a: 1}).Release()
		h.Dequeue()
	}
}

// BenchmarkTrivialRelease measures the no-op path for payloads without
// observable destruction
func BenchmarkTrivialRelease(b *testing.B) {
	h := New(512)
	defer h.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Make(h, [2]uint64{1, 2}).Release()
	}
}
