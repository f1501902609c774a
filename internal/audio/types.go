// ABOUTME: Audio type definitions
// ABOUTME: Defines the capture format and float32 sample conversions
package audio

import (
	"encoding/binary"
	"math"
)

const (
	// Capture format constants. The display buffer is sized assuming the
	// device's native rate; 44.1 kHz mono is the default everywhere.
	DefaultSampleRate = 44100
	DefaultChannels   = 1

	// BytesPerSampleF32 is the width of one 32-bit float PCM sample.
	BytesPerSampleF32 = 4
)

// Format describes a capture stream format
type Format struct {
	SampleRate int
	Channels   int
}

// DefaultFormat returns the default capture format (44.1 kHz mono)
func DefaultFormat() Format {
	return Format{
		SampleRate: DefaultSampleRate,
		Channels:   DefaultChannels,
	}
}

// SampleFromBytes decodes one little-endian float32 PCM sample.
// b must hold at least BytesPerSampleF32 bytes. Allocation-free, so it is
// safe inside audio driver callbacks.
func SampleFromBytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// SampleToBytes encodes one float32 PCM sample into b (little-endian).
// b must hold at least BytesPerSampleF32 bytes.
func SampleToBytes(b []byte, s float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(s))
}

// Clamp bounds a sample to the nominal [-1, 1] amplitude range.
func Clamp(s float32) float32 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
