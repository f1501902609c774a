// ABOUTME: Version constants for the wavetap binary
// ABOUTME: Reported in the startup log line
package version

const (
	Version      = "0.1.0"
	Product      = "wavetap"
	Manufacturer = "WaveTap"
)
