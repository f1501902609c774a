// ABOUTME: Fixed-size display ring buffer for waveform samples
// ABOUTME: Holds the most recent samples observed by the pump
package pump

// DisplayBufferLen is the number of samples shown in the waveform:
// five tenths of a second at 44.1 kHz.
const DisplayBufferLen = 5 * 4410

// DisplayBuffer is a ring of samples with a monotonically increasing write
// position. It always holds the most recent min(Position, Len) samples;
// older samples are overwritten modulo the length. It is exclusively owned
// by the pump goroutine and needs no locking.
type DisplayBuffer struct {
	samples []float32
	pos     uint64
}

// NewDisplayBuffer creates a ring of n samples. The length never changes
// after construction.
func NewDisplayBuffer(n int) *DisplayBuffer {
	return &DisplayBuffer{
		samples: make([]float32, n),
	}
}

// Write stores s at the current position modulo the ring length and
// advances the position.
func (b *DisplayBuffer) Write(s float32) {
	b.samples[b.pos%uint64(len(b.samples))] = s
	b.pos++
}

// Snapshot returns a fresh linear copy of the backing storage. The copy is
// not rotated to start at the oldest sample; rendering tolerates the seam
// at Position() mod Len().
func (b *DisplayBuffer) Snapshot() []float32 {
	out := make([]float32, len(b.samples))
	copy(out, b.samples)
	return out
}

// CopySnapshot copies the backing storage into dst, which must be at least
// Len() samples long.
func (b *DisplayBuffer) CopySnapshot(dst []float32) {
	copy(dst, b.samples)
}

// Position returns the total number of samples written.
func (b *DisplayBuffer) Position() uint64 {
	return b.pos
}

// Len returns the fixed ring length.
func (b *DisplayBuffer) Len() int {
	return len(b.samples)
}
