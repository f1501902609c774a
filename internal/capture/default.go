//go:build !portaudio

// ABOUTME: Default capture backend selection
// ABOUTME: Standard builds capture through malgo/miniaudio
package capture

import "github.com/wavetap/wavetap-go/internal/audio"

// NewDefault returns the capture backend for this build.
func NewDefault(format audio.Format, p *Producer) Source {
	return NewMalgo(format, p)
}
