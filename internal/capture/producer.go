// ABOUTME: Realtime capture producer feeding the SPSC sample queue
// ABOUTME: Runs inside audio driver callbacks; never allocates, locks, or blocks
package capture

import (
	"sync/atomic"

	"github.com/wavetap/wavetap-go/internal/audio"
	"github.com/wavetap/wavetap-go/pkg/spsc"
)

// Producer pushes captured samples into the queue from the audio driver's
// callback thread. When the queue is full the sample is dropped silently;
// the realtime deadline forbids any alternative. Drops are counted with an
// atomic so the pump can report them from a non-realtime thread.
type Producer struct {
	queue   *spsc.Queue[float32]
	dropped atomic.Uint64
}

// NewProducer creates a producer feeding q.
func NewProducer(q *spsc.Queue[float32]) *Producer {
	return &Producer{queue: q}
}

// OnSamples enqueues one frame of float32 samples. Safe on the realtime
// path: no allocation, no locking, bounded time per sample.
func (p *Producer) OnSamples(frame []float32) {
	for _, s := range frame {
		if !p.queue.TryPush(s) {
			p.dropped.Add(1)
		}
	}
}

// OnBytes enqueues one frame of raw little-endian float32 PCM, as delivered
// by the malgo data callback. Decoding happens in place with no intermediate
// buffer.
func (p *Producer) OnBytes(data []byte) {
	for len(data) >= audio.BytesPerSampleF32 {
		if !p.queue.TryPush(audio.SampleFromBytes(data)) {
			p.dropped.Add(1)
		}
		data = data[audio.BytesPerSampleF32:]
	}
}

// Dropped returns the total number of samples discarded because the queue
// was full.
func (p *Producer) Dropped() uint64 {
	return p.dropped.Load()
}
