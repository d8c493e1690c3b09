// Package integrator provides fixed step numerical ODE integrators behind a
// common stepping contract with single level rollback.
package integrator

import "math"

// intervalε scales the landing tolerance of IntegrateTo.
const intervalε = 1e-12

// DerivativeFunc returns the state derivative at the given independent
// variable value and state. It must return a new slice and may not mutate s.
type DerivativeFunc func(interval float64, s []float64) []float64

// Integrator defines a fixed step integration scheme over a []float64 state.
//
// An instance is not safe for concurrent use; integrate independent
// trajectories with independent instances.
type Integrator interface {
	// CurrentInterval returns the current independent variable value.
	CurrentInterval() float64
	// CurrentState returns a copy of the current state.
	CurrentState() []float64
	// NextStepSize returns the step size the next step would use, i.e. the
	// size of the last step actually taken.
	NextStepSize() float64
	// PerformIntegrationStep advances the state by exactly one step of the
	// concrete scheme and returns the new state. The pre-step interval and
	// state are cached for rollback. A zero step size is a legal no-op step.
	PerformIntegrationStep(stepSize float64) []float64
	// RollbackToPreviousState restores the interval and state cached by the
	// last step. It returns false, without touching anything, if no step was
	// taken since construction or since the last rollback. Only one level of
	// history is kept.
	RollbackToPreviousState() bool
}

// core carries the state shared by all schemes: the derivative function, the
// current (interval, state) pair and the one slot rollback cache.
type core struct {
	f            DerivativeFunc
	interval     float64
	state        []float64
	prevInterval float64
	prevState    []float64
	hasHistory   bool
	lastStepSize float64
}

func newCore(f DerivativeFunc, intervalStart float64, initialState []float64) core {
	if f == nil {
		panic("integrator: derivative function may not be nil")
	}
	s := make([]float64, len(initialState))
	copy(s, initialState)
	return core{f: f, interval: intervalStart, state: s}
}

// CurrentInterval returns the current independent variable value.
func (c *core) CurrentInterval() float64 {
	return c.interval
}

// CurrentState returns a copy of the current state.
func (c *core) CurrentState() []float64 {
	s := make([]float64, len(c.state))
	copy(s, c.state)
	return s
}

// NextStepSize returns the size of the last step taken.
func (c *core) NextStepSize() float64 {
	return c.lastStepSize
}

// checkpoint caches the pre-step pair and records the step size. Called by
// the concrete schemes at the top of each step.
func (c *core) checkpoint(stepSize float64) {
	if c.prevState == nil {
		c.prevState = make([]float64, len(c.state))
	}
	c.prevInterval = c.interval
	copy(c.prevState, c.state)
	c.hasHistory = true
	c.lastStepSize = stepSize
}

// RollbackToPreviousState restores the cached pre-step pair, once.
func (c *core) RollbackToPreviousState() bool {
	if !c.hasHistory {
		return false
	}
	c.interval = c.prevInterval
	copy(c.state, c.prevState)
	c.hasHistory = false
	return true
}

// IntegrateTo drives integ with repeated steps of initialStepSize (then
// NextStepSize) until the current interval reaches intervalEnd, and returns
// the final state. The last step is clipped so the landing interval is
// exactly intervalEnd, for forward and backward integration alike.
//
// A zero initial step size cannot make progress and returns the current
// state immediately. Early termination is not supported: callers wanting to
// stop mid-run should drive PerformIntegrationStep in their own loop.
func IntegrateTo(integ Integrator, intervalEnd, initialStepSize float64) []float64 {
	h := initialStepSize
	for h != 0 && !reached(integ.CurrentInterval(), intervalEnd, h) {
		remaining := intervalEnd - integ.CurrentInterval()
		if (h > 0 && remaining < h) || (h < 0 && remaining > h) {
			h = remaining
		}
		integ.PerformIntegrationStep(h)
		h = integ.NextStepSize()
	}
	return integ.CurrentState()
}

// reached reports whether interval is at intervalEnd, comparing in the
// direction of travel so an exact landing is never overshot by one extra
// step.
func reached(interval, intervalEnd, stepSize float64) bool {
	tol := intervalε * math.Max(1, math.Abs(intervalEnd))
	if stepSize > 0 {
		return interval >= intervalEnd-tol
	}
	return interval <= intervalEnd+tol
}
