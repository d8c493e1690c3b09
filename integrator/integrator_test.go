package integrator

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var schemes = []struct {
	name  string
	build func(f DerivativeFunc, intervalStart float64, initialState []float64) Integrator
}{
	{"euler", func(f DerivativeFunc, t0 float64, s0 []float64) Integrator { return NewEuler(f, t0, s0) }},
	{"rk4", func(f DerivativeFunc, t0 float64, s0 []float64) Integrator { return NewRK4(f, t0, s0) }},
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func zeroDerivative(_ float64, s []float64) []float64 {
	return make([]float64, len(s))
}

func unitDerivative(_ float64, s []float64) []float64 {
	ds := make([]float64, len(s))
	for i := range ds {
		ds[i] = 1
	}
	return ds
}

func identityDerivative(_ float64, s []float64) []float64 {
	ds := make([]float64, len(s))
	copy(ds, s)
	return ds
}

// benchmarkFunction groups a derivative function with a known initial and
// final (interval, state) pair.
type benchmarkFunction struct {
	name          string
	f             DerivativeFunc
	intervalStart float64
	initialState  []float64
	intervalEnd   float64
	finalState    []float64
	stepSize      float64
	eulerRelTol   float64
	rk4RelTol     float64
}

var benchmarkFunctions = []benchmarkFunction{
	{
		name:          "zero derivative",
		f:             zeroDerivative,
		intervalStart: 0,
		initialState:  []float64{1.5, -2, 3},
		intervalEnd:   2,
		finalState:    []float64{1.5, -2, 3},
		stepSize:      0.2,
		eulerRelTol:   0,
		rk4RelTol:     0,
	},
	{
		name:          "constant derivative",
		f:             unitDerivative,
		intervalStart: 0,
		initialState:  []float64{0.6},
		intervalEnd:   3,
		finalState:    []float64{3.6},
		stepSize:      0.2,
		eulerRelTol:   1e-12,
		rk4RelTol:     1e-12,
	},
	{
		name:          "exponential growth",
		f:             identityDerivative,
		intervalStart: 0,
		initialState:  []float64{0.7},
		intervalEnd:   20,
		finalState:    []float64{0.7 * math.Exp(20)},
		stepSize:      1e-4,
		eulerRelTol:   1e-2,
		rk4RelTol:     1e-9,
	},
	{
		name:          "backward exponential",
		f:             identityDerivative,
		intervalStart: 4,
		initialState:  []float64{0.7 * math.Exp(4)},
		intervalEnd:   0,
		finalState:    []float64{0.7},
		stepSize:      -1e-4,
		eulerRelTol:   1e-2,
		rk4RelTol:     1e-9,
	},
}

func TestBenchmarkFunctions(t *testing.T) {
	for _, scheme := range schemes {
		for _, bench := range benchmarkFunctions {
			tol := bench.eulerRelTol
			if scheme.name == "rk4" {
				tol = bench.rk4RelTol
			}
			integ := scheme.build(bench.f, bench.intervalStart, bench.initialState)
			final := IntegrateTo(integ, bench.intervalEnd, bench.stepSize)
			if !scalar.EqualWithinAbs(integ.CurrentInterval(), bench.intervalEnd, 1e-10) {
				t.Fatalf("%s/%s: landed at %v instead of %v", scheme.name, bench.name,
					integ.CurrentInterval(), bench.intervalEnd)
			}
			for i := range final {
				if tol == 0 {
					if final[i] != bench.finalState[i] {
						t.Fatalf("%s/%s: state[%d]=%v, want exactly %v", scheme.name, bench.name,
							i, final[i], bench.finalState[i])
					}
				} else if !scalar.EqualWithinRel(final[i], bench.finalState[i], tol) {
					t.Fatalf("%s/%s: state[%d]=%v, want %v (rel tol %v)", scheme.name, bench.name,
						i, final[i], bench.finalState[i], tol)
				}
			}
		}
	}
}

func TestIntegrateToSplit(t *testing.T) {
	// With a midpoint on the step grid the split run takes the exact same
	// steps as the direct run, so the states must agree to machine epsilon.
	for _, scheme := range schemes {
		direct := scheme.build(identityDerivative, 0, []float64{0.7})
		want := IntegrateTo(direct, 3, 0.25)

		split := scheme.build(identityDerivative, 0, []float64{0.7})
		IntegrateTo(split, 1.5, 0.25)
		got := IntegrateTo(split, 3, 0.25)

		if !scalar.EqualWithinRel(got[0], want[0], 1e-15) {
			t.Fatalf("%s: split integration diverges: %v != %v", scheme.name, got[0], want[0])
		}
		if split.CurrentInterval() != direct.CurrentInterval() {
			t.Fatalf("%s: split landing interval diverges", scheme.name)
		}
	}
}

func TestRollback(t *testing.T) {
	for _, scheme := range schemes {
		integ := scheme.build(identityDerivative, 1.0, []float64{2, 3})
		if integ.RollbackToPreviousState() {
			t.Fatalf("%s: rollback before any step must fail", scheme.name)
		}
		integ.PerformIntegrationStep(0.3)
		if !integ.RollbackToPreviousState() {
			t.Fatalf("%s: rollback after a step must succeed", scheme.name)
		}
		if integ.CurrentInterval() != 1.0 {
			t.Fatalf("%s: interval not restored: %v", scheme.name, integ.CurrentInterval())
		}
		if s := integ.CurrentState(); s[0] != 2 || s[1] != 3 {
			t.Fatalf("%s: state not restored: %+v", scheme.name, s)
		}
		if integ.RollbackToPreviousState() {
			t.Fatalf("%s: second consecutive rollback must fail", scheme.name)
		}
		if integ.CurrentInterval() != 1.0 {
			t.Fatalf("%s: failed rollback must not touch the interval", scheme.name)
		}
		// A further step re-arms the cache.
		integ.PerformIntegrationStep(0.1)
		if !integ.RollbackToPreviousState() {
			t.Fatalf("%s: rollback after re-stepping must succeed", scheme.name)
		}
	}
}

// countingIntegrator counts the single step calls made by IntegrateTo.
type countingIntegrator struct {
	Integrator
	steps int
}

func (c *countingIntegrator) PerformIntegrationStep(stepSize float64) []float64 {
	c.steps++
	return c.Integrator.PerformIntegrationStep(stepSize)
}

func TestIntegrateToStepCount(t *testing.T) {
	cases := []struct {
		intervalStart, intervalEnd, stepSize float64
		steps                                int
	}{
		{0, 2, 0.2, 10},
		{0, 3, 0.2, 15},
		{0, 1, 0.3, 4},
		{4, 0, -0.5, 8},
	}
	for _, cse := range cases {
		counter := &countingIntegrator{
			Integrator: NewEuler(zeroDerivative, cse.intervalStart, []float64{1}),
		}
		IntegrateTo(counter, cse.intervalEnd, cse.stepSize)
		if counter.steps != cse.steps {
			t.Fatalf("[%v,%v] h=%v: %d steps, want %d", cse.intervalStart, cse.intervalEnd,
				cse.stepSize, counter.steps, cse.steps)
		}
	}
}

func TestIntegrateToZeroStepSize(t *testing.T) {
	integ := NewEuler(unitDerivative, 0, []float64{1})
	final := IntegrateTo(integ, 5, 0)
	if final[0] != 1 || integ.CurrentInterval() != 0 {
		t.Fatal("zero initial step size must return immediately")
	}
}

func TestZeroLengthStep(t *testing.T) {
	for _, scheme := range schemes {
		integ := scheme.build(identityDerivative, 2, []float64{1.5})
		got := integ.PerformIntegrationStep(0)
		if got[0] != 1.5 || integ.CurrentInterval() != 2 {
			t.Fatalf("%s: zero length step must not change the state", scheme.name)
		}
		if integ.NextStepSize() != 0 {
			t.Fatalf("%s: next step size must echo the last step", scheme.name)
		}
		if !integ.RollbackToPreviousState() {
			t.Fatalf("%s: a zero length step is still a step", scheme.name)
		}
	}
}

func TestNextStepSizeEcho(t *testing.T) {
	integ := NewRK4(zeroDerivative, 0, []float64{1})
	if integ.NextStepSize() != 0 {
		t.Fatal("next step size must be zero before any step")
	}
	integ.PerformIntegrationStep(0.7)
	if integ.NextStepSize() != 0.7 {
		t.Fatalf("next step size invalid: %v", integ.NextStepSize())
	}
}

func TestNilDerivativeFuncPanics(t *testing.T) {
	assertPanic(t, func() { NewEuler(nil, 0, []float64{1}) })
	assertPanic(t, func() { NewRK4(nil, 0, []float64{1}) })
}

func TestCurrentStateIsACopy(t *testing.T) {
	integ := NewEuler(zeroDerivative, 0, []float64{1, 2})
	s := integ.CurrentState()
	s[0] = 42
	if integ.CurrentState()[0] != 1 {
		t.Fatal("CurrentState must return a copy")
	}
}
