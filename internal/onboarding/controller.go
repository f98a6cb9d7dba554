package onboarding

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrTermsNotRead is returned by AdvanceFromTerms before the terms pane has
// been scrolled to the end. A correctly wired UI disables the triggering
// control until the gate is satisfied, so hitting this is a wiring bug, not
// a user-facing error.
var ErrTermsNotRead = errors.New("onboarding: terms not scrolled to the end")

// Controller is the onboarding state machine: Welcome → Terms → Main.
// Transitions only move forward, and the Terms → Main transition requires
// the scroll gate to have been satisfied at least once.
//
// All methods are safe for concurrent use; the mutex stands in for the
// single UI-event thread that normally drives the flow.
type Controller struct {
	mu            sync.Mutex
	stage         Stage
	reachedBottom bool
	gate          Gate
	subs          []func(Transition)
	log           *zap.Logger
}

// NewController returns a Controller at StageWelcome using the given gate.
// A nil logger disables logging.
func NewController(gate Gate, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{stage: StageWelcome, gate: gate, log: log}
}

// Subscribe registers fn to be called synchronously on every successful
// transition, before control returns to the caller that triggered it.
func (c *Controller) Subscribe(fn func(Transition)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Stage returns the currently active onboarding stage.
func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// HasReachedBottom reports whether the terms pane has ever been scrolled to
// the end during this run. Once true it stays true.
func (c *Controller) HasReachedBottom() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reachedBottom
}

// AdvanceFromWelcome moves Welcome → Terms. Outside StageWelcome it is a
// no-op, so duplicate UI triggers are harmless.
func (c *Controller) AdvanceFromWelcome() {
	c.mu.Lock()
	if c.stage != StageWelcome {
		c.mu.Unlock()
		return
	}
	c.stage = StageTerms
	subs := c.notifyLocked(Transition{From: StageWelcome, To: StageTerms, Forward: true})
	c.mu.Unlock()
	deliver(subs)
}

// ReportScrollPosition feeds the current terms-pane geometry to the scroll
// gate. When the gate reports the end of content is visible, the result is
// latched: scrolling back up afterwards does not revoke eligibility to
// proceed. Outside StageTerms the call is a no-op.
func (c *Controller) ReportScrollPosition(markerBottom, viewportBottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage != StageTerms || c.reachedBottom {
		return
	}
	if c.gate.AtBottom(markerBottom, viewportBottom) {
		c.reachedBottom = true
		c.log.Debug("terms scrolled to the end",
			zap.Float64("marker_bottom", markerBottom),
			zap.Float64("viewport_bottom", viewportBottom))
	}
}

// AdvanceFromTerms moves Terms → Main once the scroll gate has latched.
// Before that it returns ErrTermsNotRead and leaves the stage unchanged.
// Outside StageTerms it is a no-op returning nil.
func (c *Controller) AdvanceFromTerms() error {
	c.mu.Lock()
	if c.stage != StageTerms {
		c.mu.Unlock()
		return nil
	}
	if !c.reachedBottom {
		c.mu.Unlock()
		c.log.Debug("advance from terms rejected: gate not satisfied")
		return ErrTermsNotRead
	}
	c.stage = StageMain
	subs := c.notifyLocked(Transition{From: StageTerms, To: StageMain, Forward: true})
	c.mu.Unlock()
	deliver(subs)
	return nil
}

// notifyLocked snapshots the subscriber list and transition under the lock;
// delivery happens after unlock so subscribers may call back into the
// controller.
func (c *Controller) notifyLocked(t Transition) []func() {
	c.log.Debug("onboarding transition",
		zap.Stringer("from", t.From),
		zap.Stringer("to", t.To))
	calls := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		fn := fn
		calls = append(calls, func() { fn(t) })
	}
	return calls
}

func deliver(calls []func()) {
	for _, call := range calls {
		call()
	}
}
