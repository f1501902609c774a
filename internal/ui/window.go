// ABOUTME: Window construction and the Fyne-backed event sink
// ABOUTME: Hosts the waveform view and bridges pump submissions onto the UI loop
package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const windowTitle = "External Event Demo"

// FyneSink posts commands onto the Fyne event loop. Once the window's close
// hook fires, every further Submit fails with ErrSinkClosed, which is how
// the pump learns the UI is gone.
type FyneSink struct {
	view *WaveformView

	closed    chan struct{}
	closeOnce sync.Once
}

// Submit dispatches cmd to the waveform view on the UI thread. fyne.Do
// serializes the queued functions, so snapshots arrive in submission order.
func (s *FyneSink) Submit(cmd Command) error {
	select {
	case <-s.closed:
		return ErrSinkClosed
	default:
	}

	fyne.Do(func() {
		s.view.HandleCommand(cmd)
	})
	return nil
}

// Close marks the sink rejected. Safe to call more than once.
func (s *FyneSink) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}

// BuildWindow creates the single top-level window hosting a padded,
// expand-to-fit waveform view, and the sink feeding it. The sink closes
// itself when the window does.
func BuildWindow(a fyne.App) (fyne.Window, *WaveformView, *FyneSink) {
	view := NewWaveformView()
	sink := &FyneSink{
		view:   view,
		closed: make(chan struct{}),
	}

	w := a.NewWindow(windowTitle)
	w.SetContent(container.NewPadded(view))
	w.Resize(fyne.NewSize(640, 320))
	w.SetOnClosed(sink.Close)

	return w, view, sink
}
