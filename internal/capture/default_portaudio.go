//go:build portaudio

// ABOUTME: Default capture backend selection for portaudio builds
// ABOUTME: Selected with -tags portaudio at build time
package capture

import "github.com/wavetap/wavetap-go/internal/audio"

// NewDefault returns the capture backend for this build.
func NewDefault(format audio.Format, p *Producer) Source {
	return NewPortAudio(format, p)
}
