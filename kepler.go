package astrodyn

import "math"

// Closed form two-body formulas. None of these validate their input; a
// non-positive gravitational parameter or a regime-inconsistent semi-major
// axis propagates as NaN/Inf.

// KeplerOrbitalPeriod returns the orbital period of an elliptical orbit,
// T = 2π √(a³/μ).
func KeplerOrbitalPeriod(a, μ float64) float64 {
	return 2 * math.Pi * math.Sqrt(a*a*a/μ)
}

// KeplerAngularMomentum returns the specific orbital angular momentum,
// h = √(μ a (1-e²)).
func KeplerAngularMomentum(a, e, μ float64) float64 {
	return math.Sqrt(μ * a * (1 - e*e))
}

// KeplerMeanMotion returns the mean motion of an elliptical orbit,
// n = √(μ/a³).
func KeplerMeanMotion(a, μ float64) float64 {
	return SemiMajorAxisToMeanMotion(a, μ)
}

// KeplerEnergy returns the specific orbital energy, ξ = -μ/(2a).
func KeplerEnergy(a, μ float64) float64 {
	return -μ / (2 * a)
}

// SynodicPeriod returns the synodic period of two orbits from their
// respective orbital periods.
func SynodicPeriod(period1, period2 float64) float64 {
	return 1 / math.Abs(1/period1-1/period2)
}
