// Package onboarding implements the first-run flow that gates access to the
// main application: a welcome screen, a terms-of-service pane that must be
// scrolled to the end, and the hand-off to the dashboard. The flow is a
// forward-only state machine; nothing is persisted, so every run starts over
// at the welcome screen.
package onboarding

// Stage identifies the onboarding step currently shown.
type Stage int

const (
	StageWelcome Stage = iota
	StageTerms
	StageMain
)

var stageNames = []string{"welcome", "terms", "main"}

func (s Stage) String() string {
	if s < StageWelcome || s > StageMain {
		return "unknown"
	}
	return stageNames[s]
}

// Transition describes a completed stage change, delivered to subscribers.
// Forward is a hint for the presentation layer's transition animation; every
// transition this flow can produce moves forward.
type Transition struct {
	From    Stage
	To      Stage
	Forward bool
}
