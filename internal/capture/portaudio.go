//go:build portaudio

// ABOUTME: PortAudio microphone capture implementation
// ABOUTME: Callback-based input using the PortAudio C library
package capture

import (
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"

	"github.com/wavetap/wavetap-go/internal/audio"
)

// PortAudio captures from the default input device via PortAudio.
type PortAudio struct {
	format   audio.Format
	producer *Producer
	stream   *portaudio.Stream
}

// NewPortAudio creates a PortAudio capture source delivering to p.
func NewPortAudio(format audio.Format, p *Producer) Source {
	return &PortAudio{
		format:   format,
		producer: p,
	}
}

// Start initializes PortAudio and opens the default input stream.
func (pa *PortAudio) Start() error {
	if pa.stream != nil {
		return pa.stream.Start()
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	// The callback runs on PortAudio's realtime thread; the producer only
	// pushes into the lock-free queue.
	stream, err := portaudio.OpenDefaultStream(
		pa.format.Channels, 0, float64(pa.format.SampleRate), 0,
		func(in []float32) {
			pa.producer.OnSamples(in)
		})
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open capture stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start capture stream: %w", err)
	}

	pa.stream = stream

	log.Printf("capture: default input device opened (portaudio, %dHz, %d channel)",
		pa.format.SampleRate, pa.format.Channels)

	return nil
}

// Stop pauses the stream.
func (pa *PortAudio) Stop() error {
	if pa.stream == nil {
		return nil
	}
	return pa.stream.Stop()
}

// Close releases the stream and terminates PortAudio.
func (pa *PortAudio) Close() error {
	if pa.stream != nil {
		if err := pa.stream.Close(); err != nil {
			return err
		}
		pa.stream = nil
	}
	return portaudio.Terminate()
}
