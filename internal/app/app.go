// ABOUTME: Main application orchestration
// ABOUTME: Wires queue, capture, pump, and window; runs the UI event loop
package app

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/wavetap/wavetap-go/internal/audio"
	"github.com/wavetap/wavetap-go/internal/capture"
	"github.com/wavetap/wavetap-go/internal/pump"
	"github.com/wavetap/wavetap-go/internal/ui"
	"github.com/wavetap/wavetap-go/pkg/spsc"
)

// QueueCapacity absorbs well over one pacing interval of samples at
// 44.1 kHz (4410 samples per 100ms).
const QueueCapacity = 8192

// Config holds application configuration
type Config struct {
	// UseTone substitutes the synthetic sine source for the microphone.
	UseTone bool
}

// App ties together capture, the pump, and the waveform window.
type App struct {
	config   Config
	queue    *spsc.Queue[float32]
	producer *capture.Producer
	source   capture.Source
	pump     *pump.Pump

	fyneApp fyne.App
	window  fyne.Window
	view    *ui.WaveformView
	sink    *ui.FyneSink
}

// New creates the application and all of its components.
func New(config Config) *App {
	return newWithApp(config, fyneapp.New())
}

// newWithApp lets tests inject a headless Fyne app.
func newWithApp(config Config, a fyne.App) *App {
	queue := spsc.New[float32](QueueCapacity)
	producer := capture.NewProducer(queue)
	format := audio.DefaultFormat()

	var source capture.Source
	if config.UseTone {
		source = capture.NewTone(format, producer)
	} else {
		source = capture.NewDefault(format, producer)
	}

	p := pump.New(queue, pump.DefaultInterval)
	p.Drops = producer.Dropped

	window, view, sink := ui.BuildWindow(a)

	return &App{
		config:   config,
		queue:    queue,
		producer: producer,
		source:   source,
		pump:     p,
		fyneApp:  a,
		window:   window,
		view:     view,
		sink:     sink,
	}
}

// Run starts capture, spawns the pump, and hands the calling goroutine to
// the UI event loop. It returns after the window closes: the sink is closed
// by then, the pump observes the failed submission and exits, and the
// capture stream is torn down here rather than joined by the UI thread.
func (a *App) Run() error {
	if err := a.source.Start(); err != nil {
		return fmt.Errorf("starting capture: %w", err)
	}

	go a.pump.Run(a.sink)

	a.window.ShowAndRun()

	if err := a.source.Stop(); err != nil {
		log.Printf("app: stopping capture: %v", err)
	}
	if err := a.source.Close(); err != nil {
		log.Printf("app: closing capture: %v", err)
	}

	log.Printf("app: window closed, shutting down")
	return nil
}
