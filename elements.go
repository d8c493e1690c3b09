package astrodyn

import (
	"fmt"
	"math"
)

const (
	// machineε is the double precision machine epsilon.
	machineε = 2.220446049250313e-16
	// parabolicε gates the reinterpretation of the semi-major axis as the
	// semi-latus rectum when |e-1| falls below it.
	parabolicε = machineε
	// circularε is the eccentricity below which an orbit is treated as circular.
	circularε = 1e-13
	// equatorialε is the sine of the inclination below which an orbit is
	// treated as equatorial.
	equatorialε = 1e-13
)

// KeplerianElements defines an orbit via the six classical orbital elements.
// Angles are in radians, the semi-major axis is in the same length unit as
// the gravitational parameter passed to the conversions (SI by convention).
//
// When |Eccentricity - 1| is within machine epsilon, the orbit is parabolic
// and SemiMajorAxis holds the semi-latus rectum instead. This mirrors the
// convention of the Cartesian conversion and is not enforced by a separate
// type.
type KeplerianElements struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	ArgumentOfPeriapsis      float64
	LongitudeOfAscendingNode float64
	TrueAnomaly              float64
}

// SemiLatusRectum returns the conic parameter p = a(1-e²), or the stored
// semi-major axis directly for a parabolic orbit.
func (k KeplerianElements) SemiLatusRectum() float64 {
	if math.Abs(k.Eccentricity-1) > parabolicε {
		return k.SemiMajorAxis * (1 - k.Eccentricity*k.Eccentricity)
	}
	return k.SemiMajorAxis
}

// String implements the stringer interface.
func (k KeplerianElements) String() string {
	return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f",
		k.SemiMajorAxis, k.Eccentricity, Rad2deg(k.Inclination),
		Rad2deg(k.LongitudeOfAscendingNode), Rad2deg(k.ArgumentOfPeriapsis),
		Rad2deg(k.TrueAnomaly))
}

// CartesianElements defines an orbital state via inertial position and
// velocity vectors.
type CartesianElements struct {
	R []float64 // Position x, y, z.
	V []float64 // Velocity vx, vy, vz.
}

// String implements the stringer interface.
func (c CartesianElements) String() string {
	return fmt.Sprintf("R=%v V=%v", c.R, c.V)
}

// KeplerianToCartesian converts the provided Keplerian element set to inertial
// position and velocity vectors for the gravitational parameter μ.
// From Vallado's COE2RV.
//
// The caller must supply μ > 0 and a regime-consistent element set; out of
// domain inputs are not validated and propagate as NaN/Inf.
func KeplerianToCartesian(k KeplerianElements, μ float64) CartesianElements {
	p := k.SemiLatusRectum()
	sinν, cosν := math.Sincos(k.TrueAnomaly)
	denom := 1 + k.Eccentricity*cosν

	rPQW := []float64{p * cosν / denom, p * sinν / denom, 0}
	vPQW := []float64{-math.Sqrt(μ/p) * sinν, math.Sqrt(μ/p) * (k.Eccentricity + cosν), 0}

	R := PQW2ECI(k.Inclination, k.ArgumentOfPeriapsis, k.LongitudeOfAscendingNode, rPQW)
	V := PQW2ECI(k.Inclination, k.ArgumentOfPeriapsis, k.LongitudeOfAscendingNode, vPQW)
	return CartesianElements{R: R, V: V}
}

// CartesianToKeplerian converts the provided inertial position and velocity
// vectors to a Keplerian element set for the gravitational parameter μ.
// From Vallado's RV2COE, extended to hyperbolic and near-parabolic orbits.
//
// Circular and equatorial singularities are substituted by convention rather
// than rejected: a circular orbit gets ω=0, an equatorial orbit gets Ω=0, and
// the true anomaly degrades to the argument of latitude or the true longitude
// as appropriate. All angles are normalized into [0, 2π).
//
// For a circular inclined orbit the ν quadrant is selected on the sign of the
// Cartesian z velocity, matching the historical convention of the benchmark
// values this is validated against.
func CartesianToKeplerian(c CartesianElements, μ float64) KeplerianElements {
	hVec := cross(c.R, c.V)
	h := norm(hVec)
	// Node direction from the normalized momentum so the equatorial gate is
	// dimensionless (|n| = sin i).
	nVec := cross([]float64{0, 0, 1}, unit(hVec))
	r := norm(c.R)
	v := norm(c.V)

	eVec := make([]float64, 3)
	for j := 0; j < 3; j++ {
		eVec[j] = ((v*v-μ/r)*c.R[j] - dot(c.R, c.V)*c.V[j]) / μ
	}
	e := norm(eVec)
	circular := e < circularε
	equatorial := norm(nVec) < equatorialε

	ξ := v*v/2 - μ/r
	var a float64
	if math.Abs(e-1) > parabolicε {
		a = -μ / (2 * ξ)
	} else {
		// Parabolic: reinterpret as the semi-latus rectum.
		a = h * h / μ
	}

	i := math.Acos(hVec[2] / h)

	var ω float64
	switch {
	case circular:
		ω = 0
	case equatorial:
		ω = mod2pi(math.Atan2(eVec[1], eVec[0]))
	default:
		ω = AngleBetween(nVec, eVec)
		if eVec[2] < 0 {
			ω = 2*math.Pi - ω
		}
		ω = mod2pi(ω)
	}

	var Ω float64
	if !equatorial {
		Ω = mod2pi(math.Atan2(nVec[1], nVec[0]))
	}

	var ν float64
	switch {
	case !circular:
		ν = AngleBetween(c.R, eVec)
		if dot(c.R, c.V) < 0 {
			ν = 2*math.Pi - ν
		}
	case equatorial:
		// Circular equatorial: true longitude.
		ν = math.Atan2(c.R[1], c.R[0])
	default:
		// Circular inclined: argument of latitude, measured from the node.
		ν = AngleBetween(c.R, nVec)
		if c.V[2] < 0 {
			ν = 2*math.Pi - ν
		}
	}
	ν = mod2pi(ν)

	return KeplerianElements{
		SemiMajorAxis:            a,
		Eccentricity:             e,
		Inclination:              mod2pi(i),
		ArgumentOfPeriapsis:      ω,
		LongitudeOfAscendingNode: Ω,
		TrueAnomaly:              ν,
	}
}
