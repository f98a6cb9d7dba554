// Package scan holds the simulated scan engine. There is no real file-system
// traversal behind it; the "scan" is a timer that walks progress from 0 to 1
// so the shell has something to animate until a real engine exists.
package scan

import "time"

// Default cadence: 2% per 100ms, i.e. a five-second scan.
const (
	DefaultStep     = 0.02
	DefaultInterval = 100 * time.Millisecond
)

// Sim is the simulated scan. It only moves when Step is called, so the
// caller's tick loop fully controls pacing.
type Sim struct {
	progress float64
	step     float64
	interval time.Duration
	running  bool
}

// NewSim returns a stopped simulation advancing by step per tick. Non-positive
// step or interval fall back to the defaults.
func NewSim(step float64, interval time.Duration) *Sim {
	if step <= 0 {
		step = DefaultStep
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sim{step: step, interval: interval}
}

// Start begins (or restarts) the simulation from zero.
func (s *Sim) Start() {
	s.progress = 0
	s.running = true
}

// Step advances progress by one tick, clamping at 1. Once complete the
// simulation stops; further calls are no-ops.
func (s *Sim) Step() {
	if !s.running {
		return
	}
	s.progress += s.step
	if s.progress >= 1 {
		s.progress = 1
		s.running = false
	}
}

// Reset returns the simulation to its initial stopped state.
func (s *Sim) Reset() {
	s.progress = 0
	s.running = false
}

// Progress returns the current progress in [0, 1].
func (s *Sim) Progress() float64 { return s.progress }

// Running reports whether a scan is in flight.
func (s *Sim) Running() bool { return s.running }

// Done reports whether a scan ran to completion.
func (s *Sim) Done() bool { return !s.running && s.progress >= 1 }

// Interval returns the delay the caller should wait between Step calls.
func (s *Sim) Interval() time.Duration { return s.interval }
