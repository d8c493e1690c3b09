package integrator

import "gonum.org/v1/gonum/floats"

// Euler implements the forward Euler scheme,
// s_{n+1} = s_n + h f(t_n, s_n).
type Euler struct {
	core
}

// NewEuler returns a forward Euler integrator positioned at the provided
// initial interval and state. Panics if f is nil.
func NewEuler(f DerivativeFunc, intervalStart float64, initialState []float64) *Euler {
	return &Euler{newCore(f, intervalStart, initialState)}
}

// PerformIntegrationStep advances one Euler step.
func (e *Euler) PerformIntegrationStep(stepSize float64) []float64 {
	e.checkpoint(stepSize)
	floats.AddScaled(e.state, stepSize, e.f(e.interval, e.state))
	e.interval += stepSize
	return e.CurrentState()
}
