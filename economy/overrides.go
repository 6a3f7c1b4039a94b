package economy

// Hand-authored reserve profiles for named bodies. These are scientifically
// fixed points supplied with the body identity data, not generated values:
// when a body matches, the fractional path is bypassed for it entirely.

type overrideDeposit struct {
	resource ResourceType

	// Exactly one of abundance or absoluteMt is set. Abundance entries are
	// a fraction of body mass (gas-giant atmospheres); absolute entries are
	// measured masses in Mt (Mars polar ice).
	abundance  float64
	absoluteMt float64

	accessibility float64
}

var bodyOverrides = map[string][]overrideDeposit{
	// Gas giants carry atmosphere only: no solid ice reserves to mine.
	"Jupiter": {
		{resource: Hydrogen, abundance: 0.90, accessibility: 0.02},
		{resource: Helium3, abundance: 2e-5, accessibility: 0.05},
	},
	"Saturn": {
		{resource: Hydrogen, abundance: 0.96, accessibility: 0.02},
		{resource: Helium3, abundance: 1e-5, accessibility: 0.05},
	},
	"Uranus": {
		{resource: Hydrogen, abundance: 0.83, accessibility: 0.02},
		{resource: Helium3, abundance: 1.5e-5, accessibility: 0.05},
		{resource: Methane, abundance: 0.02, accessibility: 0.03},
	},
	"Neptune": {
		{resource: Hydrogen, abundance: 0.80, accessibility: 0.02},
		{resource: Helium3, abundance: 1.9e-5, accessibility: 0.05},
		{resource: Methane, abundance: 0.025, accessibility: 0.03},
	},

	// Europa's subsurface ocean holds two to three Earth oceans of water.
	"Europa": {
		{resource: Water, abundance: 0.85, accessibility: 0.4},
		{resource: Oxygen, abundance: 0.05, accessibility: 0.3},
		{resource: Silicates, abundance: 0.08, accessibility: 0.2},
		{resource: Iron, abundance: 0.02, accessibility: 0.1},
	},

	// Mars: ~5 million km^3 of polar and subsurface ice = 4.6e9 Mt.
	"Mars": {
		{resource: Water, absoluteMt: 4.6e9, accessibility: 0.5},
		{resource: Iron, abundance: 0.18, accessibility: 0.8},
		{resource: Silicates, abundance: 0.40, accessibility: 0.85},
		{resource: Aluminum, abundance: 0.04, accessibility: 0.7},
	},
}

// overrideProfile returns the fixed resource record for a named body, or
// ok=false when the body generates normally.
func overrideProfile(ctx BodyContext) (BodyResources, bool) {
	specs, ok := bodyOverrides[ctx.Name]
	if !ok {
		return BodyResources{}, false
	}

	res := NewBodyResources()
	minor := ctx.Type.IsMinor()
	for _, s := range specs {
		var d MineralDeposit
		if s.absoluteMt > 0 {
			d = depositFromAbsoluteMass(s.absoluteMt, s.accessibility, minor)
		} else {
			d = depositFromAbundance(s.abundance, s.accessibility, ctx.MassKg, minor)
		}
		res.Add(s.resource, d)
	}
	return res, true
}
