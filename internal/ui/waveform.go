// ABOUTME: Waveform view widget for the Fyne canvas
// ABOUTME: Holds the latest snapshot as view state and rasterizes it on paint
package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// WaveformView displays the latest snapshot as a polyline waveform. State
// is replaced by commands dispatched on the UI event loop; every accepted
// command refreshes unconditionally. Comparing 22k floats per tick would
// cost more than the repaint it might save, so the state is treated as
// always dirty.
type WaveformView struct {
	widget.BaseWidget

	raster *canvas.Raster

	mu      sync.Mutex
	samples []float32
}

// NewWaveformView creates an empty waveform view.
func NewWaveformView() *WaveformView {
	v := &WaveformView{}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget.
func (v *WaveformView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize claims no minimum so the view expands to whatever the layout
// offers.
func (v *WaveformView) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// HandleCommand replaces the view state when the command's selector matches
// the waveform selector. No drawing happens here; the refresh schedules a
// paint. Call only from the UI event loop.
func (v *WaveformView) HandleCommand(cmd Command) {
	if cmd.Selector != SelectorDrawAudio {
		return
	}
	v.SetSamples(cmd.Samples)
}

// SetSamples replaces the snapshot and requests a repaint. The view takes
// ownership of s; callers must not mutate it afterwards.
func (v *WaveformView) SetSamples(s []float32) {
	v.mu.Lock()
	v.samples = s
	v.mu.Unlock()

	v.raster.Refresh()
}

// Samples returns the current snapshot.
func (v *WaveformView) Samples() []float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.samples
}

// draw is the raster generator: it renders the current snapshot into a
// pixel buffer of the allocated size.
func (v *WaveformView) draw(w, h int) image.Image {
	v.mu.Lock()
	s := v.samples
	v.mu.Unlock()

	return renderWaveform(s, w, h)
}
