// Package astro provides the analytical orbital mechanics used by the
// propagation systems: Kepler's equation, anomaly conversions, and the
// element-to-position transform. Everything here is pure double-precision
// math with no ECS or I/O dependencies.
package astro

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Tau is one full turn.
	Tau = 2 * math.Pi

	// keplerTolerance is the convergence tolerance for the Kepler solver.
	keplerTolerance = 1e-10

	// maxKeplerIterations caps the Newton-Raphson loop. Eccentricities in
	// this engine stay below 0.9, where 5-8 iterations suffice; the cap
	// guarantees termination for pathological inputs, returning the best
	// available estimate instead of failing.
	maxKeplerIterations = 50
)

// Elements are Keplerian orbital elements. Angles in radians, the
// semi-major axis in AU, mean motion in rad/s of simulated time.
type Elements struct {
	SemiMajorAxisAU float64
	Eccentricity    float64
	Inclination     float64
	LongAscNode     float64
	ArgPeriapsis    float64
	MeanAnomaly0    float64
	MeanMotion      float64
}

// SolveKepler solves M = E - e*sin(E) for the eccentric anomaly E using
// Newton-Raphson iteration starting from E0 = M.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	// Circular orbits need no iteration.
	if eccentricity < 1e-10 {
		return meanAnomaly
	}

	e := meanAnomaly
	for i := 0; i < maxKeplerIterations; i++ {
		f := e - eccentricity*math.Sin(e) - meanAnomaly
		fPrime := 1 - eccentricity*math.Cos(e)
		delta := f / fPrime
		e -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return e
}

// TrueAnomaly converts an eccentric anomaly to a true anomaly via
// tan(nu/2) = sqrt((1+e)/(1-e)) * tan(E/2).
func TrueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	if eccentricity < 1e-10 {
		return eccentricAnomaly
	}
	sqrtTerm := math.Sqrt((1 + eccentricity) / (1 - eccentricity))
	return 2 * math.Atan(sqrtTerm*math.Tan(eccentricAnomaly/2))
}

// OrbitalRadius returns the distance from the focus at a given true
// anomaly: r = a(1-e^2) / (1 + e*cos(nu)).
func OrbitalRadius(semiMajorAxis, eccentricity, trueAnomaly float64) float64 {
	return semiMajorAxis * (1 - eccentricity*eccentricity) /
		(1 + eccentricity*math.Cos(trueAnomaly))
}

// WrapAngle wraps an angle to [0, 2*pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	return a
}

// PositionAt computes the absolute double-precision position of a body at
// elapsed simulated time t, given its elements and its parent's absolute
// position. The result is in AU in the parent's reference frame plus the
// parent offset, so chaining through moons-planets-stars is a matter of
// resolving parents first.
func PositionAt(el Elements, parentPos r3.Vec, t float64) r3.Vec {
	meanAnomaly := WrapAngle(el.MeanAnomaly0 + el.MeanMotion*t)

	eccAnomaly := SolveKepler(meanAnomaly, el.Eccentricity)
	nu := TrueAnomaly(eccAnomaly, el.Eccentricity)
	r := OrbitalRadius(el.SemiMajorAxisAU, el.Eccentricity, nu)

	// Position in the orbital plane, x toward periapsis.
	xOrb := r * math.Cos(nu)
	yOrb := r * math.Sin(nu)

	// Rotate by argument of periapsis within the plane.
	cosW, sinW := math.Cos(el.ArgPeriapsis), math.Sin(el.ArgPeriapsis)
	xPf := xOrb*cosW - yOrb*sinW
	yPf := xOrb*sinW + yOrb*cosW

	// Tilt by inclination and swing by the ascending node to reach the
	// parent's reference frame.
	cosI, sinI := math.Cos(el.Inclination), math.Sin(el.Inclination)
	cosO, sinO := math.Cos(el.LongAscNode), math.Sin(el.LongAscNode)

	rel := r3.Vec{
		X: xPf*cosO - yPf*cosI*sinO,
		Y: xPf*sinO + yPf*cosI*cosO,
		Z: yPf * sinI,
	}
	return r3.Add(parentPos, rel)
}

// Period returns the orbital period for a mean motion, or 0 for a static
// body.
func Period(meanMotion float64) float64 {
	if meanMotion <= 0 {
		return 0
	}
	return Tau / meanMotion
}

// MeanMotionFromPeriod is the inverse of Period.
func MeanMotionFromPeriod(periodSeconds float64) float64 {
	if periodSeconds <= 0 {
		return 0
	}
	return Tau / periodSeconds
}

// PeriodYearsFromAxis applies Kepler's third law for a solar-mass primary:
// T[years]^2 = a[AU]^3.
func PeriodYearsFromAxis(semiMajorAxisAU float64) float64 {
	return math.Pow(semiMajorAxisAU, 1.5)
}

// Periapsis returns the closest approach distance a(1-e).
func Periapsis(el Elements) float64 {
	return el.SemiMajorAxisAU * (1 - el.Eccentricity)
}

// Apoapsis returns the farthest distance a(1+e).
func Apoapsis(el Elements) float64 {
	return el.SemiMajorAxisAU * (1 + el.Eccentricity)
}
