package economy

import (
	"math"
	"math/rand"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

// BodyContext is everything the generator needs to know about a body.
type BodyContext struct {
	Name            string
	Type            components.BodyType
	Class           components.AsteroidClass
	MassKg          float64
	DistanceAU      float64 // from the parent star
	FrostLineAU     float64
	MetallicityMult float64 // from astro.MetallicityMultiplier
}

// Generate produces the full resource endowment for a body. All randomness
// comes from the supplied seeded stream, so identical context and stream
// yield identical reserves.
//
// Rules, in order: hand-authored overrides for named bodies win outright;
// asteroid spectral classes reshape category abundance; otherwise the
// frost-line side of the body picks the abundance band, a smooth distance
// modifier adjusts it, and rare categories get the stellar metallicity
// multiplier.
func Generate(ctx BodyContext, rng *rand.Rand) BodyResources {
	if res, ok := overrideProfile(ctx); ok {
		return res
	}

	res := NewBodyResources()
	inner := ctx.DistanceAU < ctx.FrostLineAU
	minor := ctx.Type.IsMinor()

	for _, rt := range AllResources() {
		// Non-critical resources are randomly absent so bodies are not
		// compositionally identical.
		if !rt.IsCritical() && rng.Float64() < 0.4 {
			continue
		}

		abundance, accessibility := baseAbundance(rt, inner, rng)

		if ctx.Class != components.ClassNone {
			abundance *= classMultiplier(ctx.Class, rt.Category())
		}

		dist := distanceModifier(rt, ctx.DistanceAU, ctx.FrostLineAU)
		abundance = clamp(abundance*dist, 0, 1)
		accessibility = clamp(accessibility*dist, 0, 1)

		if rt.IsRare() {
			abundance *= ctx.MetallicityMult
		}

		d := depositFromAbundance(abundance, accessibility, ctx.MassKg, minor)
		if d.Viable() {
			res.Add(rt, d)
		}
	}
	return res
}

// baseAbundance returns the composition fraction and accessibility band
// for a resource on the given side of the frost line.
func baseAbundance(rt ResourceType, inner bool, rng *rand.Rand) (abundance, accessibility float64) {
	in := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

	switch rt.Category() {
	case CatVolatile:
		if inner {
			return in(0, 0.02), in(0, 0.1)
		}
		return in(0.3, 0.7), in(0.5, 0.9) // surface ice

	case CatAtmospheric:
		if inner {
			return in(0, 0.15), in(0.2, 0.6)
		}
		return in(0.1, 0.4), in(0.4, 0.8) // trapped in ice

	case CatConstruction:
		if !inner {
			return in(0.05, 0.2), in(0.1, 0.3) // buried under ice
		}
		switch rt {
		case Iron:
			return in(0.15, 0.35), in(0.6, 0.95)
		case Silicates:
			return in(0.25, 0.45), in(0.6, 0.95)
		case Aluminum:
			return in(0.05, 0.12), in(0.6, 0.95)
		case Titanium:
			return in(0.003, 0.01), in(0.6, 0.95)
		}
		return in(0.1, 0.3), in(0.6, 0.95)

	case CatFusionFuel:
		if inner {
			return in(1e-6, 1e-5), in(0.1, 0.3)
		}
		return in(1e-5, 1e-4), in(0.3, 0.7)

	case CatFissile:
		if !inner {
			return in(1e-7, 1e-6), in(0.1, 0.3)
		}
		switch rt {
		case Uranium:
			return in(1e-6, 1e-5), in(0.3, 0.6) // ~3 ppm crustal
		case Thorium:
			return in(3e-6, 3e-5), in(0.3, 0.6) // ~12 ppm crustal
		}
		return in(1e-5, 1e-4), in(0.3, 0.6)

	case CatPrecious:
		if !inner {
			return in(1e-7, 1e-6), in(0.1, 0.3)
		}
		switch rt {
		case Gold:
			return in(1e-7, 1e-6), in(0.2, 0.5)
		case Silver:
			return in(3e-7, 3e-6), in(0.2, 0.5)
		case Platinum:
			return in(1e-8, 1e-7), in(0.2, 0.5)
		}
		return in(1e-7, 1e-6), in(0.2, 0.5)

	default: // CatSpecialty
		if !inner {
			return in(1e-5, 1e-4), in(0.2, 0.5)
		}
		switch rt {
		case Copper:
			return in(3e-5, 1e-4), in(0.3, 0.7)
		case RareEarths:
			return in(5e-5, 2e-4), in(0.3, 0.7)
		}
		return in(1e-4, 1e-3), in(0.3, 0.7)
	}
}

// distanceModifier smooths abundance across the frost line instead of a
// hard cutover.
func distanceModifier(rt ResourceType, distanceAU, frostLineAU float64) float64 {
	switch rt.Category() {
	case CatVolatile:
		if distanceAU > frostLineAU {
			return math.Min(1.0+(distanceAU-frostLineAU)*0.2, 1.5)
		}
		// Sharp drop-off sunward of the frost line.
		return math.Pow(distanceAU/frostLineAU, 2)

	case CatAtmospheric:
		if distanceAU > frostLineAU {
			return 1.0 + (distanceAU-frostLineAU)*0.15
		}
		return 0.8

	case CatConstruction:
		if distanceAU < frostLineAU {
			return 1.0
		}
		return math.Sqrt(frostLineAU / distanceAU)

	case CatFusionFuel:
		if distanceAU > frostLineAU {
			return 1.0 + (distanceAU-frostLineAU)*0.1
		}
		return 0.2

	case CatFissile:
		if distanceAU < frostLineAU {
			return 1.0
		}
		return 0.8

	case CatPrecious:
		// Peaks in the belt region just past the frost line.
		optimal := frostLineAU * 1.2
		return 1.0 - math.Min(math.Abs(distanceAU-optimal)*0.1, 0.5)

	default: // CatSpecialty
		optimal := frostLineAU * 0.6
		return 1.0 - math.Min(math.Abs(distanceAU-optimal)*0.15, 0.6)
	}
}

// classMultiplier reshapes category abundance for an asteroid spectral
// class. C/D/P keep their volatiles even sunward of the frost line; M-types
// concentrate metals far beyond planetary crust levels.
func classMultiplier(class components.AsteroidClass, cat Category) float64 {
	switch class {
	case components.ClassC:
		switch cat {
		case CatVolatile:
			return 8
		case CatConstruction:
			return 0.5
		}
	case components.ClassS:
		switch cat {
		case CatVolatile:
			return 0.1
		case CatConstruction:
			return 1.5
		}
	case components.ClassM:
		switch cat {
		case CatVolatile:
			return 0.02
		case CatConstruction:
			return 3
		case CatPrecious:
			return 20
		case CatSpecialty:
			return 5
		}
	case components.ClassV:
		switch cat {
		case CatVolatile:
			return 0.1
		case CatConstruction:
			return 2
		}
	case components.ClassD, components.ClassP:
		switch cat {
		case CatVolatile:
			return 10
		case CatConstruction:
			return 0.3
		}
	}
	return 1
}
