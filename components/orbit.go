package components

import "github.com/mlange-42/ark/ecs"

// KeplerOrbit holds the fixed Keplerian elements of a body around its
// parent. Elements never change after creation: orbits do not decay or
// precess in this model. Angles are radians, distances AU, mean motion
// rad/s of simulated time.
type KeplerOrbit struct {
	SemiMajorAxisAU float64
	Eccentricity    float64 // [0,1), elliptical only
	Inclination     float64
	LongAscNode     float64
	ArgPeriapsis    float64
	MeanAnomaly0    float64
	MeanMotion      float64
}

// OrbitParent links a body to the body it orbits. Every body carrying a
// KeplerOrbit has one; the system root (the star) has neither.
type OrbitParent struct {
	Parent ecs.Entity
}

// SystemMember tags a body with the star system it belongs to.
type SystemMember struct {
	SystemID uint64
}
