package economy

import (
	"math/rand"
	"testing"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

const testMassKg = 1e24

func innerCtx() BodyContext {
	return BodyContext{
		Name:            "Test Inner",
		Type:            components.BodyPlanet,
		MassKg:          testMassKg,
		DistanceAU:      1.0,
		FrostLineAU:     4.85,
		MetallicityMult: 1.0,
	}
}

func outerCtx() BodyContext {
	c := innerCtx()
	c.Name = "Test Outer"
	c.DistanceAU = 10.0
	return c
}

func TestGenerate_InnerBodyFavorsConstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	res := Generate(innerCtx(), rng)

	iron, ok := res.Get(Iron)
	if !ok {
		t.Fatal("inner planet missing iron (critical resource)")
	}
	water, _ := res.Get(Water)

	if iron.Reserve.TotalMt() <= water.Reserve.TotalMt() {
		t.Errorf("inner planet should have more iron than water: iron=%v water=%v",
			iron.Reserve.TotalMt(), water.Reserve.TotalMt())
	}
}

func TestGenerate_OuterBodyFavorsVolatiles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	res := Generate(outerCtx(), rng)

	water, ok := res.Get(Water)
	if !ok {
		t.Fatal("outer planet missing water (critical resource)")
	}
	iron, _ := res.Get(Iron)

	if water.Reserve.TotalMt() <= iron.Reserve.TotalMt() {
		t.Errorf("outer planet should have more water than iron: water=%v iron=%v",
			water.Reserve.TotalMt(), iron.Reserve.TotalMt())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(innerCtx(), rand.New(rand.NewSource(7)))
	b := Generate(innerCtx(), rand.New(rand.NewSource(7)))

	if len(a.Deposits) != len(b.Deposits) {
		t.Fatalf("deposit counts differ: %d vs %d", len(a.Deposits), len(b.Deposits))
	}
	for rt, da := range a.Deposits {
		db, ok := b.Deposits[rt]
		if !ok {
			t.Fatalf("resource %v present in one run only", rt)
		}
		if da != db {
			t.Errorf("resource %v differs between identically seeded runs", rt)
		}
	}
}

func TestGenerate_CriticalResourcesAlwaysConsidered(t *testing.T) {
	// Over many seeds, critical resources must appear whenever viable;
	// specifically iron on an inner planet should never be skipped.
	for seed := int64(0); seed < 20; seed++ {
		res := Generate(innerCtx(), rand.New(rand.NewSource(seed)))
		if _, ok := res.Get(Iron); !ok {
			t.Fatalf("seed %d: inner planet lost its iron", seed)
		}
	}
}

func TestGenerate_SomeResourcesAbsent(t *testing.T) {
	res := Generate(innerCtx(), rand.New(rand.NewSource(42)))
	if len(res.Deposits) >= int(numResourceTypes) {
		t.Error("expected some non-critical resources to be absent")
	}
}

func TestGenerate_MetallicityBoostsRares(t *testing.T) {
	rich := innerCtx()
	rich.MetallicityMult = 1.5
	poor := innerCtx()
	poor.MetallicityMult = 0.5

	// Same seed: identical draws, only the multiplier differs.
	resRich := Generate(rich, rand.New(rand.NewSource(11)))
	resPoor := Generate(poor, rand.New(rand.NewSource(11)))

	dRich, ok1 := resRich.Get(Uranium)
	dPoor, ok2 := resPoor.Get(Uranium)
	if !ok1 || !ok2 {
		t.Fatal("uranium is critical and must be present on both")
	}
	if dRich.Reserve.TotalMt() <= dPoor.Reserve.TotalMt() {
		t.Errorf("metal-rich star should yield more uranium: rich=%v poor=%v",
			dRich.Reserve.TotalMt(), dPoor.Reserve.TotalMt())
	}

	ironRich, _ := resRich.Get(Iron)
	ironPoor, _ := resPoor.Get(Iron)
	if ironRich.Reserve.TotalMt() != ironPoor.Reserve.TotalMt() {
		t.Error("metallicity must not touch construction materials")
	}
}

func TestGenerate_MTypeAsteroidMetalRich(t *testing.T) {
	ctx := BodyContext{
		Name:            "Belt Asteroid 1",
		Type:            components.BodyAsteroid,
		Class:           components.ClassM,
		MassKg:          1e18,
		DistanceAU:      9.7,
		FrostLineAU:     4.85,
		MetallicityMult: 1.0,
	}
	res := Generate(ctx, rand.New(rand.NewSource(3)))

	iron, ok := res.Get(Iron)
	if !ok {
		t.Fatal("M-type asteroid has no iron")
	}
	water, hasWater := res.Get(Water)
	if hasWater && water.Reserve.TotalMt() > iron.Reserve.TotalMt() {
		t.Error("M-type asteroid should not be water-dominated")
	}
}

func TestGenerate_MinorBodyProvenSkew(t *testing.T) {
	planet := Generate(innerCtx(), rand.New(rand.NewSource(5)))
	asteroid := Generate(BodyContext{
		Name:            "Rock",
		Type:            components.BodyAsteroid,
		Class:           components.ClassS,
		MassKg:          1e18,
		DistanceAU:      1.0,
		FrostLineAU:     4.85,
		MetallicityMult: 1.0,
	}, rand.New(rand.NewSource(5)))

	pIron, _ := planet.Get(Iron)
	aIron, _ := asteroid.Get(Iron)

	pShare := pIron.Reserve.ProvenMt / pIron.Reserve.TotalMt()
	aShare := aIron.Reserve.ProvenMt / aIron.Reserve.TotalMt()
	if aShare < 0.3 {
		t.Errorf("asteroid proven share %v, want >= 0.3", aShare)
	}
	if pShare > 1e-6 {
		t.Errorf("planetary proven share %v should be a crustal sliver", pShare)
	}
}

func TestOverride_MarsWaterFixedPoint(t *testing.T) {
	ctx := innerCtx()
	ctx.Name = "Mars"
	// Any seed: overrides bypass the random path entirely.
	a := Generate(ctx, rand.New(rand.NewSource(1)))
	b := Generate(ctx, rand.New(rand.NewSource(999)))

	wa, ok := a.Get(Water)
	if !ok {
		t.Fatal("Mars override missing water")
	}
	wb, _ := b.Get(Water)
	if wa != wb {
		t.Error("override profile must be seed-independent")
	}
	if total := wa.Reserve.TotalMt(); total < 4.5e9 || total > 4.7e9 {
		t.Errorf("Mars water total = %v Mt, want ~4.6e9", total)
	}
}

func TestOverride_JupiterNoSolidResources(t *testing.T) {
	ctx := BodyContext{Name: "Jupiter", Type: components.BodyGasGiant, MassKg: 1.898e27,
		DistanceAU: 5.2, FrostLineAU: 4.85, MetallicityMult: 1.0}
	res := Generate(ctx, rand.New(rand.NewSource(1)))

	if _, ok := res.Get(Iron); ok {
		t.Error("gas giant override should not mint solid iron deposits")
	}
	if _, ok := res.Get(Hydrogen); !ok {
		t.Error("Jupiter should carry atmospheric hydrogen")
	}
}

func TestExtract_MonotonicDecrease(t *testing.T) {
	res := Generate(innerCtx(), rand.New(rand.NewSource(9)))
	before, _ := res.Get(Iron)

	taken := res.Extract(Iron, before.Reserve.ProvenMt/2)
	if taken <= 0 {
		t.Fatal("extraction returned nothing")
	}
	after, _ := res.Get(Iron)
	if after.Reserve.ProvenMt >= before.Reserve.ProvenMt {
		t.Error("proven tier did not decrease")
	}
	if after.Accessibility != before.Accessibility {
		t.Error("extraction must not change accessibility")
	}

	// Over-extraction drains the tier but never goes negative.
	res.Extract(Iron, 1e30)
	final, _ := res.Get(Iron)
	if final.Reserve.ProvenMt != 0 {
		t.Errorf("proven tier should be exactly drained, got %v", final.Reserve.ProvenMt)
	}
}

func TestReserve_TiersNonNegative(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		res := Generate(outerCtx(), rand.New(rand.NewSource(seed)))
		for rt, d := range res.Deposits {
			r := d.Reserve
			if r.ProvenMt < 0 || r.DeepMt < 0 || r.BulkMt < 0 {
				t.Fatalf("seed %d resource %v: negative tier %+v", seed, rt, r)
			}
		}
	}
}
