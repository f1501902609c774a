// ABOUTME: Audio capture source interface definition
// ABOUTME: Common interface for microphone capture backends
package capture

// Source represents an audio input stream delivering samples to a Producer.
// Implementations own the driver thread that invokes the producer; callers
// never see individual frames.
type Source interface {
	// Start opens the input device and begins delivering frames
	Start() error

	// Stop pauses frame delivery, keeping the device open
	Stop() error

	// Close releases the device and backend resources
	Close() error
}
