package components

// SpectralClass is the coarse stellar classification.
type SpectralClass uint8

const (
	SpectralO SpectralClass = iota
	SpectralB
	SpectralA
	SpectralF
	SpectralG
	SpectralK
	SpectralM
)

func (s SpectralClass) String() string {
	switch s {
	case SpectralO:
		return "O"
	case SpectralB:
		return "B"
	case SpectralA:
		return "A"
	case SpectralF:
		return "F"
	case SpectralG:
		return "G"
	case SpectralK:
		return "K"
	case SpectralM:
		return "M"
	}
	return "?"
}

// StarSystem marks a star entity and carries the stellar parameters that
// drive procedural generation. Immutable after creation.
type StarSystem struct {
	LuminositySol float64 // > 0, validated at load time
	Metallicity   float64 // [Fe/H], typically -1.0..+1.0
	Spectral      SpectralClass

	// FrostLineAU is derived from luminosity at creation and cached here
	// because every generator and resource query needs it.
	FrostLineAU float64
}
