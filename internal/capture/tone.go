// ABOUTME: Synthetic test tone capture source
// ABOUTME: Generates a 440Hz sine wave on a worker goroutine instead of a device
package capture

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/wavetap/wavetap-go/internal/audio"
)

const (
	toneFrequency   = 440.0 // A4 note
	toneAmplitude   = 0.5   // 50% volume
	toneChunkMillis = 10
)

// Tone is a capture source that synthesizes a sine wave. It lets the demo
// run on machines with no input device and gives tests a deterministic
// signal. Frames reach the producer on the generator goroutine, which plays
// the role of the driver's callback thread.
type Tone struct {
	format      audio.Format
	producer    *Producer
	sampleIndex uint64

	stopChan chan struct{}
	stopOnce sync.Once
	started  bool
	mu       sync.Mutex
}

// NewTone creates a test tone source delivering to p.
func NewTone(format audio.Format, p *Producer) *Tone {
	return &Tone{
		format:   format,
		producer: p,
		stopChan: make(chan struct{}),
	}
}

// Start launches the generator goroutine.
func (s *Tone) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.started = true

	log.Printf("capture: test tone source started (%.0fHz sine)", toneFrequency)
	go s.run()
	return nil
}

func (s *Tone) run() {
	chunk := make([]float32, s.format.SampleRate*toneChunkMillis/1000)

	ticker := time.NewTicker(toneChunkMillis * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.fill(chunk)
			s.producer.OnSamples(chunk)
		case <-s.stopChan:
			return
		}
	}
}

// fill writes the next chunk of the sine wave, continuing the phase from
// the previous chunk.
func (s *Tone) fill(chunk []float32) {
	for i := range chunk {
		t := float64(s.sampleIndex+uint64(i)) / float64(s.format.SampleRate)
		chunk[i] = float32(toneAmplitude * math.Sin(2*math.Pi*toneFrequency*t))
	}
	s.sampleIndex += uint64(len(chunk))
}

// Stop halts the generator goroutine.
func (s *Tone) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	return nil
}

// Close is a no-op beyond Stop; there is no device to release.
func (s *Tone) Close() error {
	return s.Stop()
}
