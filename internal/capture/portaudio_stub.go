//go:build !portaudio

// ABOUTME: PortAudio stub when library not available
// ABOUTME: Provides compile-time placeholder when PortAudio not installed
package capture

import (
	"fmt"

	"github.com/wavetap/wavetap-go/internal/audio"
)

// PortAudio capture implementation (stub)
type PortAudio struct{}

// NewPortAudio creates a PortAudio capture source
func NewPortAudio(format audio.Format, p *Producer) Source {
	return &PortAudio{}
}

// Start opens the input stream
func (pa *PortAudio) Start() error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}

// Stop pauses the stream
func (pa *PortAudio) Stop() error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}

// Close releases resources
func (pa *PortAudio) Close() error {
	return fmt.Errorf("PortAudio support not enabled (build with -tags portaudio)")
}
