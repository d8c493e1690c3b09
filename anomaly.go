package astrodyn

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidEccentricity is returned when an anomaly conversion is called
// with an eccentricity outside the domain its formula supports. The wrapped
// error carries the offending value and the expected domain.
var ErrInvalidEccentricity = errors.New("invalid eccentricity")

func invalidEccentricity(e float64, domain string) error {
	return errors.Wrapf(ErrInvalidEccentricity, "e=%v, expected %s", e, domain)
}

// TrueToEccentricAnomaly converts the true anomaly ν to the eccentric
// anomaly for an elliptical orbit (0 ≤ e < 1). The result is in (-π, π].
func TrueToEccentricAnomaly(ν, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), invalidEccentricity(e, "0 <= e < 1")
	}
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinE := math.Sqrt(1-e*e) * sinν / denom
	cosE := (e + cosν) / denom
	return math.Atan2(sinE, cosE), nil
}

// EccentricToTrueAnomaly converts the eccentric anomaly E to the true
// anomaly for an elliptical orbit (0 ≤ e < 1). The result is in (-π, π].
func EccentricToTrueAnomaly(E, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), invalidEccentricity(e, "0 <= e < 1")
	}
	sinE, cosE := math.Sincos(E)
	denom := 1 - e*cosE
	sinν := math.Sqrt(1-e*e) * sinE / denom
	cosν := (cosE - e) / denom
	return math.Atan2(sinν, cosν), nil
}

// TrueToHyperbolicAnomaly converts the true anomaly ν to the hyperbolic
// eccentric anomaly for a hyperbolic orbit (e > 1).
func TrueToHyperbolicAnomaly(ν, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), invalidEccentricity(e, "e > 1")
	}
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinhH := math.Sqrt(e*e-1) * sinν / denom
	coshH := (e + cosν) / denom
	return math.Atanh(sinhH / coshH), nil
}

// HyperbolicToTrueAnomaly converts the hyperbolic eccentric anomaly H to the
// true anomaly for a hyperbolic orbit (e > 1). The result is in (-π, π].
func HyperbolicToTrueAnomaly(H, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), invalidEccentricity(e, "e > 1")
	}
	// Common strictly positive denominator e*cosh(H)-1 dropped from both
	// atan2 arguments.
	sinν := math.Sqrt(e*e-1) * math.Sinh(H)
	cosν := e - math.Cosh(H)
	return math.Atan2(sinν, cosν), nil
}

// EccentricToMeanAnomaly converts the eccentric anomaly E to the mean
// anomaly via Kepler's equation, M = E - e sin E, for an elliptical orbit
// (0 ≤ e < 1). Only the forward map is provided; inverting it requires a
// root finder.
func EccentricToMeanAnomaly(E, e float64) (float64, error) {
	if e < 0 || e >= 1 {
		return math.NaN(), invalidEccentricity(e, "0 <= e < 1")
	}
	return E - e*math.Sin(E), nil
}

// HyperbolicToMeanAnomaly converts the hyperbolic eccentric anomaly H to the
// mean anomaly via the hyperbolic Kepler equation, M = e sinh H - H, for a
// hyperbolic orbit (e > 1).
func HyperbolicToMeanAnomaly(H, e float64) (float64, error) {
	if e <= 1 {
		return math.NaN(), invalidEccentricity(e, "e > 1")
	}
	return e*math.Sinh(H) - H, nil
}

// ElapsedTimeToMeanAnomalyChange converts an elapsed time to the
// corresponding mean anomaly change by scaling with the mean motion. The
// semi-major axis sign selects the regime: positive for an ellipse, negative
// for a hyperbola. A zero or regime-inconsistent semi-major axis is not
// validated and propagates as Inf/NaN.
func ElapsedTimeToMeanAnomalyChange(elapsedTime, μ, a float64) float64 {
	if a > 0 {
		return elapsedTime * math.Sqrt(μ/(a*a*a))
	}
	return elapsedTime * math.Sqrt(μ/-(a*a*a))
}

// MeanAnomalyChangeToElapsedTime converts a mean anomaly change to the
// corresponding elapsed time, the inverse of ElapsedTimeToMeanAnomalyChange.
func MeanAnomalyChangeToElapsedTime(meanAnomalyChange, μ, a float64) float64 {
	if a > 0 {
		return meanAnomalyChange * math.Sqrt((a*a*a)/μ)
	}
	return meanAnomalyChange * math.Sqrt(-(a * a * a) / μ)
}

// MeanMotionToSemiMajorAxis converts the elliptical mean motion n to the
// semi-major axis, a = (μ/n²)^(1/3).
func MeanMotionToSemiMajorAxis(n, μ float64) float64 {
	return math.Cbrt(μ / (n * n))
}

// SemiMajorAxisToMeanMotion converts the semi-major axis of an elliptical
// orbit to the mean motion, n = √(μ/a³).
func SemiMajorAxisToMeanMotion(a, μ float64) float64 {
	return math.Sqrt(μ / (a * a * a))
}
