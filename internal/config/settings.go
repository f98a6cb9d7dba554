// Package config holds the application's tunable parameters and the static
// catalog of cleanup targets. Nothing here touches the filesystem beyond
// resolving the user's home directory.
package config

import "time"

// Settings are the presentation-layer tunables. The defaults mirror the
// original desktop shell: a 10-unit scroll tolerance and a simulated scan
// that finishes in five seconds at 2% per 100ms tick.
type Settings struct {
	// ScrollTolerance is the slack passed to the terms scroll gate, in the
	// coordinate units of whatever surface renders the terms. The terminal
	// shell measures in text lines and overrides this with LineTolerance.
	ScrollTolerance float64

	// LineTolerance is the scroll gate slack in viewport lines.
	LineTolerance float64

	// ScanStep is the progress added per simulated scan tick (0–1 scale).
	ScanStep float64

	// ScanInterval is the delay between simulated scan ticks.
	ScanInterval time.Duration

	// StatusRefresh is the cadence of system metric collection.
	StatusRefresh time.Duration
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		ScrollTolerance: 10,
		LineTolerance:   1,
		ScanStep:        0.02,
		ScanInterval:    100 * time.Millisecond,
		StatusRefresh:   time.Second,
	}
}
