// Package economy implements resource abundance generation: the tiered
// reserve model and the accretion-chemistry rules that decide what a body
// is made of based on where it formed relative to its star's frost line.
package economy

// ResourceType identifies a mineable resource.
type ResourceType uint8

const (
	// Volatiles, common beyond the frost line.
	Water ResourceType = iota
	Hydrogen
	Ammonia
	Methane

	// Atmospheric gases, needed for terraforming.
	Nitrogen
	Oxygen
	CarbonDioxide
	Argon

	// Construction materials, common in the inner system.
	Iron
	Aluminum
	Titanium
	Silicates

	// Fusion fuel.
	Helium3

	// Fissiles.
	Uranium
	Thorium

	// Precious metals.
	Gold
	Silver
	Platinum

	// Specialty materials.
	Copper
	RareEarths

	numResourceTypes
)

// AllResources returns every resource type in a stable order.
func AllResources() []ResourceType {
	all := make([]ResourceType, numResourceTypes)
	for i := range all {
		all[i] = ResourceType(i)
	}
	return all
}

// Category groups resource types for the abundance rules.
type Category uint8

const (
	CatVolatile Category = iota
	CatAtmospheric
	CatConstruction
	CatFusionFuel
	CatFissile
	CatPrecious
	CatSpecialty
)

// Category returns the rule-set category of the resource.
func (r ResourceType) Category() Category {
	switch r {
	case Water, Hydrogen, Ammonia, Methane:
		return CatVolatile
	case Nitrogen, Oxygen, CarbonDioxide, Argon:
		return CatAtmospheric
	case Iron, Aluminum, Titanium, Silicates:
		return CatConstruction
	case Helium3:
		return CatFusionFuel
	case Uranium, Thorium:
		return CatFissile
	case Gold, Silver, Platinum:
		return CatPrecious
	default:
		return CatSpecialty
	}
}

// IsRare reports whether the resource receives the stellar metallicity
// multiplier (heavy elements track the protoplanetary disk composition).
func (r ResourceType) IsRare() bool {
	switch r.Category() {
	case CatFissile, CatPrecious, CatFusionFuel:
		return true
	}
	return r == RareEarths
}

// IsCritical resources are never randomly absent from a body; the rest may
// be skipped to keep bodies compositionally distinct.
func (r ResourceType) IsCritical() bool {
	switch r {
	case Water, Oxygen, Iron, Helium3, Uranium:
		return true
	}
	return false
}

func (r ResourceType) String() string {
	switch r {
	case Water:
		return "water"
	case Hydrogen:
		return "hydrogen"
	case Ammonia:
		return "ammonia"
	case Methane:
		return "methane"
	case Nitrogen:
		return "nitrogen"
	case Oxygen:
		return "oxygen"
	case CarbonDioxide:
		return "carbon_dioxide"
	case Argon:
		return "argon"
	case Iron:
		return "iron"
	case Aluminum:
		return "aluminum"
	case Titanium:
		return "titanium"
	case Silicates:
		return "silicates"
	case Helium3:
		return "helium3"
	case Uranium:
		return "uranium"
	case Thorium:
		return "thorium"
	case Gold:
		return "gold"
	case Silver:
		return "silver"
	case Platinum:
		return "platinum"
	case Copper:
		return "copper"
	case RareEarths:
		return "rare_earths"
	}
	return "unknown"
}
