// ABOUTME: UI command channel types and routing selector
// ABOUTME: Defines the cross-thread handoff from the pump to the event loop
package ui

import "errors"

// SelectorDrawAudio routes waveform snapshots to the waveform view. The
// selector must be unique within the app's command namespace.
const SelectorDrawAudio = "wavetap.draw_audio"

// ErrSinkClosed is returned by Submit once the UI has shut down.
var ErrSinkClosed = errors.New("ui: event sink closed")

// Command is a typed message posted to the UI event loop. The snapshot it
// carries is owned by the view after submission and must not be mutated.
type Command struct {
	Selector string
	Samples  []float32
}

// Sink is the thread-safe ingress for posting commands onto the UI loop.
// Submissions are serialized and delivered in order. Submit is
// fire-and-forget: an error only means the UI is gone.
type Sink interface {
	Submit(Command) error
}
