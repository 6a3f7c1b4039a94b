// Package components defines ECS components for the celestial simulation.
package components

// BodyType classifies a celestial body.
type BodyType uint8

const (
	BodyStar BodyType = iota
	BodyPlanet
	BodyGasGiant
	BodyIceGiant
	BodyDwarfPlanet
	BodyMoon
	BodyAsteroid
	BodyComet
)

// String returns the lowercase name used in data files and logs.
func (t BodyType) String() string {
	switch t {
	case BodyStar:
		return "star"
	case BodyPlanet:
		return "planet"
	case BodyGasGiant:
		return "gas_giant"
	case BodyIceGiant:
		return "ice_giant"
	case BodyDwarfPlanet:
		return "dwarf_planet"
	case BodyMoon:
		return "moon"
	case BodyAsteroid:
		return "asteroid"
	case BodyComet:
		return "comet"
	}
	return "unknown"
}

// IsMinor reports whether the body is small enough to be mined throughout,
// which skews its resource reserves toward the proven tier.
func (t BodyType) IsMinor() bool {
	return t == BodyAsteroid || t == BodyComet
}

// AsteroidClass is the spectral/compositional class of an asteroid or comet.
// Taxonomy follows the standard C/S/M/V/D/P survey classes.
type AsteroidClass uint8

const (
	ClassNone AsteroidClass = iota
	ClassC                  // carbonaceous, volatile-rich
	ClassS                  // silicaceous, stony
	ClassM                  // metallic
	ClassV                  // basaltic (Vesta family)
	ClassD                  // dark primitive, outer belt
	ClassP                  // primitive, volatile-rich
)

func (c AsteroidClass) String() string {
	switch c {
	case ClassC:
		return "C"
	case ClassS:
		return "S"
	case ClassM:
		return "M"
	case ClassV:
		return "V"
	case ClassD:
		return "D"
	case ClassP:
		return "P"
	}
	return ""
}

// CelestialBody holds the identity and bulk physical properties of a body.
type CelestialBody struct {
	Name     string
	Type     BodyType
	MassKg   float64
	RadiusKm float64

	// Color is a pass-through hint for the rendering collaborator.
	Color [3]float32

	// RotationPeriodHours is a pass-through for the rendering collaborator;
	// the core does not simulate spin.
	RotationPeriodHours float64

	Class AsteroidClass // ClassNone for non-minor bodies
}
