package astrodyn

import "math"

// Physical constants, in SI units (meters, seconds, kilograms).
const (
	// GravitationalConstant is the universal gravitational constant in m^3.kg^-1.s^-2.
	GravitationalConstant = 6.67259e-11
	// AU is one astronomical unit in meters.
	AU = 1.49597870691e11
	// JulianDay is exactly 24 hours, in seconds.
	JulianDay = 86400.0
	// JulianYearInDays is the number of Julian days in a Julian year.
	JulianYearInDays = 365.25
	// JulianYear is one Julian year in seconds.
	JulianYear = JulianDay * JulianYearInDays
	// SiderealDay is one Earth rotation with respect to the stars, in seconds.
	SiderealDay = 86164.09054
	// SiderealYearInDays is the number of Julian days in a sidereal year.
	SiderealYearInDays = 365.25636
	// SiderealYear is one sidereal year in seconds.
	SiderealYear = SiderealYearInDays * JulianDay
)

// Mathematical constants not provided by the math package.
const (
	// GoldenRatio is (1+√5)/2.
	GoldenRatio = 1.6180339887498948482
)

// NaN is the not-a-number sentinel returned by conversions whose input
// violates a documented domain. Use math.IsNaN to test for it; never compare
// with ==.
var NaN = math.NaN()
