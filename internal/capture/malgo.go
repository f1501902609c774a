// ABOUTME: Malgo-based microphone capture implementation
// ABOUTME: Uses the miniaudio library via malgo for cross-platform input
package capture

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/wavetap/wavetap-go/internal/audio"
)

// Malgo captures from the default system input device using malgo/miniaudio.
// The miniaudio data callback runs on a realtime-priority thread owned by
// the driver; it hands raw f32 PCM straight to the producer.
type Malgo struct {
	format   audio.Format
	producer *Producer

	malgoCtx *malgo.AllocatedContext
	device   *malgo.Device
	mu       sync.Mutex
}

// NewMalgo creates a malgo capture source delivering to p.
func NewMalgo(format audio.Format, p *Producer) Source {
	return &Malgo{
		format:   format,
		producer: p,
	}
}

// Start opens the default input device and begins capture.
func (m *Malgo) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		return m.device.Start()
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize malgo context: %w", err)
	}
	m.malgoCtx = ctx

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatF32
	deviceConfig.Capture.Channels = uint32(m.format.Channels)
	deviceConfig.SampleRate = uint32(m.format.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	// The callback must not allocate or block: the producer decodes the
	// f32 bytes in place and drops on queue overflow.
	onRecvFrames := func(pOutputSamples, pInputSamples []byte, frameCount uint32) {
		m.producer.OnBytes(pInputSamples)
	}

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: onRecvFrames,
	})
	if err != nil {
		m.closeContextLocked()
		return fmt.Errorf("failed to open capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		m.closeContextLocked()
		return fmt.Errorf("failed to start capture device: %w", err)
	}

	m.device = device

	log.Printf("capture: default input device opened (malgo, %dHz, %d channel)",
		m.format.SampleRate, m.format.Channels)

	return nil
}

// Stop pauses capture without releasing the device.
func (m *Malgo) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device == nil {
		return nil
	}
	return m.device.Stop()
}

// Close tears the device and context down. The driver joins its own
// callback thread inside Uninit; no caller-side synchronization is needed.
func (m *Malgo) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.device != nil {
		m.device.Uninit()
		m.device = nil
	}
	m.closeContextLocked()
	return nil
}

func (m *Malgo) closeContextLocked() {
	if m.malgoCtx == nil {
		return
	}
	if err := m.malgoCtx.Uninit(); err != nil {
		log.Printf("capture: malgo context uninit: %v", err)
	}
	m.malgoCtx.Free()
	m.malgoCtx = nil
}
