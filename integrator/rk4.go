package integrator

// RK4 implements the classical 4-stage Runge-Kutta scheme.
type RK4 struct {
	core
}

// NewRK4 returns a classical Runge-Kutta integrator positioned at the
// provided initial interval and state. Panics if f is nil.
func NewRK4(f DerivativeFunc, intervalStart float64, initialState []float64) *RK4 {
	return &RK4{newCore(f, intervalStart, initialState)}
}

// PerformIntegrationStep advances one RK4 step.
func (r *RK4) PerformIntegrationStep(stepSize float64) []float64 {
	const (
		half     = 1 / 2.0
		oneSixth = 1 / 6.0
		oneThird = 1 / 3.0
	)
	r.checkpoint(stepSize)

	n := len(r.state)
	k1 := make([]float64, n)
	// k2 and k3 are used as buffers AND result variables.
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tState := make([]float64, n)
	halfStep := stepSize * half

	// Compute the k's.
	for i, y := range r.f(r.interval, r.state) {
		k1[i] = y * stepSize
		tState[i] = r.state[i] + k1[i]*half
	}
	for i, y := range r.f(r.interval+halfStep, tState) {
		k2[i] = y * stepSize
	}
	for i := range tState {
		tState[i] = r.state[i] + k2[i]*half
	}
	for i, y := range r.f(r.interval+halfStep, tState) {
		k3[i] = y * stepSize
	}
	for i := range tState {
		tState[i] = r.state[i] + k3[i]
	}
	for i, y := range r.f(r.interval+stepSize, tState) {
		k4[i] = y * stepSize
		r.state[i] += oneSixth*(k1[i]+k4[i]) + oneThird*(k2[i]+k3[i])
	}

	r.interval += stepSize
	return r.CurrentState()
}
