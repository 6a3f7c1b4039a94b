package economy

// ResourceReserve is a tiered reserve record. Quantities are megatons
// (1 Mt = 1e9 kg).
type ResourceReserve struct {
	// ProvenMt is accessible with current-era extraction.
	ProvenMt float64
	// DeepMt needs high energy or advanced technology.
	DeepMt float64
	// BulkMt is the body-scale remainder, effectively inaccessible.
	BulkMt float64
	// Concentration in (0,1], drives extraction energy cost.
	Concentration float64
}

// TotalMt is the sum over all tiers.
func (r ResourceReserve) TotalMt() float64 {
	return r.ProvenMt + r.DeepMt + r.BulkMt
}

// MineralDeposit couples a reserve with how reachable it is.
type MineralDeposit struct {
	Reserve       ResourceReserve
	Accessibility float64 // [0,1], 1 = surface deposits
}

// Viable reports whether the deposit is worth recording at all.
func (d MineralDeposit) Viable() bool {
	return d.Reserve.TotalMt() > 0 && d.Accessibility > 0
}

// BodyResources maps resource types to their deposits for one body.
// Created once at generation time; consumers decrement tiers through
// Extract but never grow them.
type BodyResources struct {
	Deposits map[ResourceType]MineralDeposit
}

// NewBodyResources returns an empty resource record.
func NewBodyResources() BodyResources {
	return BodyResources{Deposits: make(map[ResourceType]MineralDeposit)}
}

// Add records a deposit, replacing any previous entry for the type.
func (b *BodyResources) Add(r ResourceType, d MineralDeposit) {
	b.Deposits[r] = d
}

// Get returns the deposit for a resource type, if present.
func (b *BodyResources) Get(r ResourceType) (MineralDeposit, bool) {
	d, ok := b.Deposits[r]
	return d, ok
}

// Extract removes up to amountMt from the proven tier and returns what was
// actually taken. Accessibility and concentration are unchanged: depleting
// a tier does not make the remainder harder to reach, it just runs out.
func (b *BodyResources) Extract(r ResourceType, amountMt float64) float64 {
	d, ok := b.Deposits[r]
	if !ok || amountMt <= 0 {
		return 0
	}
	taken := amountMt
	if taken > d.Reserve.ProvenMt {
		taken = d.Reserve.ProvenMt
	}
	d.Reserve.ProvenMt -= taken
	b.Deposits[r] = d
	return taken
}

// splitTiers divides a total mass into proven/deep/bulk according to body
// reachability. Planetary crusts expose only a sliver of the composition;
// minor bodies can be stripped almost entirely.
func splitTiers(totalMt float64, accessibility float64, minor bool) ResourceReserve {
	var provenF, deepF float64
	if minor {
		provenF = 0.3 + accessibility*0.4
		deepF = 0.2 + accessibility*0.1
	} else {
		// Proven reserves on an Earth-sized body are gigatons, not
		// exatons: the crust is a ~1e-10 fraction of total composition.
		provenF = 1.0e-10 + accessibility*5.0e-10
		deepF = 1.0e-7 + accessibility*5.0e-7
	}

	proven := totalMt * provenF
	deep := totalMt * deepF
	bulk := totalMt - proven - deep
	if bulk < 0 {
		bulk = 0
	}
	return ResourceReserve{ProvenMt: proven, DeepMt: deep, BulkMt: bulk}
}

// depositFromAbundance builds a deposit from a composition fraction of the
// body's mass.
func depositFromAbundance(abundance, accessibility, bodyMassKg float64, minor bool) MineralDeposit {
	totalMt := bodyMassKg * abundance / 1e9

	res := splitTiers(totalMt, accessibility, minor)
	res.Concentration = clamp(abundance, 0.001, 1.0)
	return MineralDeposit{Reserve: res, Accessibility: clamp(accessibility, 0, 1)}
}

// depositFromAbsoluteMass builds a deposit from a measured absolute mass in
// megatons. Used for hand-authored overrides where scientific estimates
// already describe the extractable amount, so the proven share is far
// higher than the fractional path would give.
func depositFromAbsoluteMass(totalMt, accessibility float64, minor bool) MineralDeposit {
	var provenF, deepF float64
	if minor {
		provenF = 0.3 + accessibility*0.4
		deepF = 0.2 + accessibility*0.1
	} else {
		provenF = 0.1 + accessibility*0.3
		deepF = 0.2 + accessibility*0.4
	}

	proven := totalMt * provenF
	deep := totalMt * deepF
	bulk := totalMt - proven - deep
	if bulk < 0 {
		bulk = 0
	}
	return MineralDeposit{
		Reserve: ResourceReserve{
			ProvenMt:      proven,
			DeepMt:        deep,
			BulkMt:        bulk,
			Concentration: clamp(accessibility*0.8+0.1, 0.001, 1.0),
		},
		Accessibility: clamp(accessibility, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
