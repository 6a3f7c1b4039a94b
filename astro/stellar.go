package astro

import (
	"math"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

// SecondsPerDay and SecondsPerYear convert catalog periods to simulated
// seconds.
const (
	SecondsPerDay  = 86400.0
	SecondsPerYear = 365.25 * SecondsPerDay
)

// FrostLineAU returns the orbital distance beyond which volatiles persist
// as ice, from stellar luminosity in solar units:
//
//	d_frost = 4.85 * sqrt(L)
//
// derived from the equilibrium temperature for water-ice sublimation
// (~170K). Luminosity is assumed positive; the catalog loader rejects
// non-positive values before generation runs.
func FrostLineAU(luminositySol float64) float64 {
	return 4.85 * math.Sqrt(luminositySol)
}

// MetallicityMultiplier maps a star's [Fe/H] to a resource abundance
// multiplier. Roughly +-30% across +-0.5 dex, clamped to [0.5, 1.5] so
// extreme catalog values cannot distort generation.
func MetallicityMultiplier(feH float64) float64 {
	m := 1.0 + feH*0.6
	if m < 0.5 {
		return 0.5
	}
	if m > 1.5 {
		return 1.5
	}
	return m
}

// ParseSpectralClass maps a catalog spectral type string like "G2V" or
// "M5.5Ve" to its coarse class. Unrecognized types default to G.
func ParseSpectralClass(spectralType string) components.SpectralClass {
	if spectralType == "" {
		return components.SpectralG
	}
	switch spectralType[0] {
	case 'O':
		return components.SpectralO
	case 'B':
		return components.SpectralB
	case 'A':
		return components.SpectralA
	case 'F':
		return components.SpectralF
	case 'G':
		return components.SpectralG
	case 'K':
		return components.SpectralK
	case 'M':
		return components.SpectralM
	}
	return components.SpectralG
}

// NewStarSystem builds the immutable stellar parameter record for a star,
// caching the derived frost line.
func NewStarSystem(luminositySol, metallicity float64, spectral components.SpectralClass) components.StarSystem {
	return components.StarSystem{
		LuminositySol: luminositySol,
		Metallicity:   metallicity,
		Spectral:      spectral,
		FrostLineAU:   FrostLineAU(luminositySol),
	}
}
