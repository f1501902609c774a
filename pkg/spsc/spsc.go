// ABOUTME: Bounded lock-free single-producer/single-consumer queue
// ABOUTME: Ring of values with two atomic cursors, no mutexes or CAS loops
package spsc

import "sync/atomic"

// Queue is a bounded lock-free single-producer/single-consumer FIFO.
//
// It uses two monotonically increasing atomic counters (writePos, readPos)
// and a power-of-2 sized buffer with bitwise masking. The producer stores
// writePos after writing a slot; the consumer loads writePos before reading
// one, so the consumer always observes fully written values.
//
// Thread assignment:
//   - TryPush: producer goroutine only
//   - TryPop: consumer goroutine only
type Queue[T any] struct {
	// Cursors live on separate cache lines to prevent false sharing
	// between producer and consumer.
	writePos atomic.Uint64
	_pad1    [56]byte
	readPos  atomic.Uint64
	_pad2    [56]byte

	buf  []T
	mask uint64
}

// New creates a queue with capacity rounded up to the next power of two.
// minCapacity values of 1 or less yield a capacity of 1.
func New[T any](minCapacity int) *Queue[T] {
	size := 1
	for size < minCapacity {
		size <<= 1
	}
	return &Queue[T]{
		buf:  make([]T, size),
		mask: uint64(size - 1),
	}
}

// TryPush appends v to the queue. It returns false when the queue is full,
// in which case v is discarded and the buffered values are untouched.
// Non-blocking, allocation-free. Only call from the producer goroutine.
func (q *Queue[T]) TryPush(v T) bool {
	w := q.writePos.Load()
	r := q.readPos.Load()

	if w-r == uint64(len(q.buf)) {
		return false
	}

	q.buf[w&q.mask] = v
	q.writePos.Store(w + 1)
	return true
}

// TryPop removes and returns the oldest value. The second return is false
// when the queue is empty. Non-blocking, allocation-free. Only call from
// the consumer goroutine.
func (q *Queue[T]) TryPop() (T, bool) {
	r := q.readPos.Load()
	w := q.writePos.Load()

	if w == r {
		var zero T
		return zero, false
	}

	v := q.buf[r&q.mask]
	q.readPos.Store(r + 1)
	return v, true
}

// Len returns the number of buffered values. It is a snapshot and may be
// stale by the time it returns.
func (q *Queue[T]) Len() int {
	return int(q.writePos.Load() - q.readPos.Load())
}

// Cap returns the fixed capacity of the queue.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}
