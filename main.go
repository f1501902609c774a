// ABOUTME: Entry point for the wavetap waveform viewer
// ABOUTME: Parses CLI flags, sets up logging, and starts the application
package main

import (
	"flag"
	"log"
	"os"

	"github.com/wavetap/wavetap-go/internal/app"
	"github.com/wavetap/wavetap-go/internal/version"
)

var (
	logFile = flag.String("log-file", "", "Log file path (default: stderr)")
	tone    = flag.Bool("tone", false, "Visualize a generated test tone instead of the microphone")
)

func main() {
	flag.Parse()

	// The GUI owns the terminal on most platforms, so a log file is the
	// useful surface when one is asked for.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	a := app.New(app.Config{
		UseTone: *tone,
	})

	// Only launch-time failures reach here; steady-state drops and
	// shutdowns are absorbed inside the pipeline.
	if err := a.Run(); err != nil {
		log.Fatalf("launch failed: %v", err)
	}
}
