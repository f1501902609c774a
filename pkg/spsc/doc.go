// ABOUTME: Package documentation for the lock-free SPSC queue
// ABOUTME: Describes the single-producer/single-consumer contract
// Package spsc provides a bounded, lock-free single-producer/single-consumer
// queue suitable for realtime audio callbacks.
//
// The queue is a fixed-capacity ring with two monotonically increasing atomic
// cursors. Both TryPush and TryPop complete in bounded time, never block, and
// never allocate, which makes the push side safe to call from threads with
// realtime deadlines (audio driver callbacks).
//
// The contract is strict: exactly one goroutine may call TryPush and exactly
// one goroutine may call TryPop. Violating that is undefined behavior.
//
// Example:
//
//	q := spsc.New[float32](8192)
//
//	// producer (audio callback):
//	if !q.TryPush(sample) {
//	    // queue full: the sample is dropped, buffered samples are untouched
//	}
//
//	// consumer (worker):
//	for {
//	    s, ok := q.TryPop()
//	    if !ok {
//	        break // empty, not an error
//	    }
//	    process(s)
//	}
package spsc
