package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(NewGate(DefaultTolerance), nil)
}

func TestControllerStartsAtWelcome(t *testing.T) {
	c := newTestController()
	assert.Equal(t, StageWelcome, c.Stage())
	assert.False(t, c.HasReachedBottom())
}

func TestAdvanceFromWelcome(t *testing.T) {
	c := newTestController()

	c.AdvanceFromWelcome()
	assert.Equal(t, StageTerms, c.Stage())

	// Duplicate triggers from a stale UI are no-ops.
	c.AdvanceFromWelcome()
	assert.Equal(t, StageTerms, c.Stage())
}

func TestReportScrollPositionLatches(t *testing.T) {
	c := newTestController()
	c.AdvanceFromWelcome()

	c.ReportScrollPosition(500, 400)
	assert.False(t, c.HasReachedBottom())

	c.ReportScrollPosition(405, 400)
	assert.True(t, c.HasReachedBottom())

	// Scrolling back up must not revoke eligibility.
	c.ReportScrollPosition(500, 400)
	assert.True(t, c.HasReachedBottom())
}

func TestReportScrollPositionOutsideTermsIsNoOp(t *testing.T) {
	c := newTestController()

	// Still at Welcome: geometry reports are ignored.
	c.ReportScrollPosition(0, 400)
	assert.False(t, c.HasReachedBottom())

	c.AdvanceFromWelcome()
	c.ReportScrollPosition(0, 400)
	require.NoError(t, c.AdvanceFromTerms())
	assert.Equal(t, StageMain, c.Stage())

	// At Main the latch is frozen along with the rest of the machine.
	c.ReportScrollPosition(9999, 0)
	assert.True(t, c.HasReachedBottom())
}

func TestAdvanceFromTermsRejectedBeforeGate(t *testing.T) {
	c := newTestController()
	c.AdvanceFromWelcome()

	err := c.AdvanceFromTerms()
	assert.ErrorIs(t, err, ErrTermsNotRead)
	assert.Equal(t, StageTerms, c.Stage())
}

func TestAdvanceFromTermsAfterGate(t *testing.T) {
	c := newTestController()
	c.AdvanceFromWelcome()
	c.ReportScrollPosition(405, 400)

	require.NoError(t, c.AdvanceFromTerms())
	assert.Equal(t, StageMain, c.Stage())

	// Main is terminal; repeated calls change nothing and report success.
	require.NoError(t, c.AdvanceFromTerms())
	assert.Equal(t, StageMain, c.Stage())
}

func TestAdvanceFromWelcomeAtMainIsNoOp(t *testing.T) {
	c := newTestController()
	c.AdvanceFromWelcome()
	c.ReportScrollPosition(0, 400)
	require.NoError(t, c.AdvanceFromTerms())

	c.AdvanceFromWelcome()
	assert.Equal(t, StageMain, c.Stage())
}

func TestSubscribersSeeEveryTransition(t *testing.T) {
	c := newTestController()

	var got []Transition
	c.Subscribe(func(tr Transition) { got = append(got, tr) })

	c.AdvanceFromWelcome()
	c.AdvanceFromWelcome() // no-op, must not notify
	c.ReportScrollPosition(405, 400)
	require.NoError(t, c.AdvanceFromTerms())

	require.Len(t, got, 2)
	assert.Equal(t, Transition{From: StageWelcome, To: StageTerms, Forward: true}, got[0])
	assert.Equal(t, Transition{From: StageTerms, To: StageMain, Forward: true}, got[1])
}

func TestSubscriberMayCallBackIntoController(t *testing.T) {
	c := newTestController()

	var stages []Stage
	c.Subscribe(func(tr Transition) {
		// Reading state from inside a notification must not deadlock.
		stages = append(stages, c.Stage())
	})

	c.AdvanceFromWelcome()
	require.Len(t, stages, 1)
	assert.Equal(t, StageTerms, stages[0])
}

// Full walk-through of the flow: welcome, a scroll that falls short, a scroll
// that reaches the end, then the gated advance.
func TestEndToEndFlow(t *testing.T) {
	c := newTestController()
	assert.Equal(t, StageWelcome, c.Stage())

	c.AdvanceFromWelcome()
	assert.Equal(t, StageTerms, c.Stage())
	assert.False(t, c.HasReachedBottom())

	c.ReportScrollPosition(500, 400) // 500 > 400+10
	assert.False(t, c.HasReachedBottom())

	c.ReportScrollPosition(405, 400) // 405 <= 410
	assert.True(t, c.HasReachedBottom())

	require.NoError(t, c.AdvanceFromTerms())
	assert.Equal(t, StageMain, c.Stage())
}

// Content shorter than the viewport: the first layout report satisfies the
// gate, so the flow must not deadlock on terms that need no scrolling.
func TestShortContentSatisfiesImmediately(t *testing.T) {
	c := newTestController()
	c.AdvanceFromWelcome()

	c.ReportScrollPosition(300, 400)
	assert.True(t, c.HasReachedBottom())
	require.NoError(t, c.AdvanceFromTerms())
	assert.Equal(t, StageMain, c.Stage())
}
