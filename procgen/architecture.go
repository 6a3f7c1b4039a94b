package procgen

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"github.com/Slatibartfas/Helios-Ascension-sub000/astro"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

const (
	earthMassKg   = 5.972e24
	earthRadiusKm = 6371.0

	targetPlanets = 5

	// Zone geometry relative to the frost line.
	innerZoneMinAU   = 0.3
	innerZoneMaxFrac = 0.95
	outerZoneMinFrac = 1.2
	outerZoneCapAU   = 30.0

	// Minimum gaps between neighbouring semi-major axes.
	innerSeparationAU = 0.1
	outerSeparationAU = 0.5

	rockyEccMax = 0.15
	giantEccMax = 0.25

	placementRetries = 16
	zoneEdgeMarginAU = 1e-6 // clamped axes stay strictly inside the zone

	// Giants sit on log-spaced base orbits so spacing widens with
	// distance; each base gets a fractional jitter, and conflicts walk
	// outward in random steps.
	giantAxisJitter = 0.15
	giantNudgeMinAU = 0.3
	giantNudgeMaxAU = 0.8

	beltProbability = 0.8
	beltCenterFrac  = 2.0 // times the frost line
	beltHalfWidth   = 0.3 // fractional spread around the center
	beltClearAU     = 1.0 // planets this close to the center push the belt aside
	beltShiftGapAU  = 0.3
	beltCountMin    = 50
	beltCountMax    = 200

	cloudProbability = 0.7
	cloudInnerMinAU  = 20.0
	cloudInnerFrac   = 4.0 // times the frost line
	cloudOuterAU     = 50.0
	cloudCountMin    = 20
	cloudCountMax    = 80
)

// StarContext carries the stellar inputs the generator needs.
// KnownPlanetAxesAU lists the semi-major axes of observationally
// confirmed planets; the generator only fills the remaining deficit and
// keeps clear of the known orbits.
type StarContext struct {
	SystemID          uint64
	Name              string
	LuminositySol     float64
	Metallicity       float64
	FrostLineAU       float64
	KnownPlanetAxesAU []float64
}

// PlanetSpec describes one generated planet before it is spawned.
type PlanetSpec struct {
	Name     string
	Type     components.BodyType
	MassKg   float64
	RadiusKm float64
	Orbit    components.KeplerOrbit
}

// MinorBodySpec describes one belt asteroid or cloud comet.
type MinorBodySpec struct {
	Name     string
	Type     components.BodyType
	Class    components.AsteroidClass
	MassKg   float64
	RadiusKm float64
	Orbit    components.KeplerOrbit
}

// BeltSpec is a generated asteroid belt.
type BeltSpec struct {
	CenterAU float64
	InnerAU  float64
	OuterAU  float64
	Bodies   []MinorBodySpec
}

// CloudSpec is a generated cometary cloud.
type CloudSpec struct {
	InnerAU float64
	OuterAU float64
	Bodies  []MinorBodySpec
}

// Architecture is the full generated layout of one star system.
type Architecture struct {
	Planets []PlanetSpec
	Belt    *BeltSpec
	Cloud   *CloudSpec
}

// GenerateArchitecture lays out a system's planets, belt, and cloud from
// the star's parameters. Identical inputs always produce an identical
// layout; each concern draws from its own seed stream so changing one
// does not cascade into the others.
func GenerateArchitecture(seed Seed, star StarContext) Architecture {
	arch := Architecture{}

	rng := seed.Stream(star.SystemID, StreamArchitecture)
	arch.Planets = generatePlanets(star, rng)

	beltRng := seed.Stream(star.SystemID, StreamBelt)
	if beltRng.Float64() < beltProbability {
		axes := make([]float64, 0, len(star.KnownPlanetAxesAU)+len(arch.Planets))
		axes = append(axes, star.KnownPlanetAxesAU...)
		for _, p := range arch.Planets {
			axes = append(axes, p.Orbit.SemiMajorAxisAU)
		}
		arch.Belt = generateBelt(star, axes, beltRng)
	}

	cloudRng := seed.Stream(star.SystemID, StreamCloud)
	if cloudRng.Float64() < cloudProbability {
		arch.Cloud = generateCloud(star, cloudRng)
	}

	return arch
}

// generatePlanets partitions the roster between the rocky zone inside the
// frost line and the giant zone beyond it, then places each planet with
// collision retries.
func generatePlanets(star StarContext, rng *rand.Rand) []PlanetSpec {
	frost := star.FrostLineAU

	innerMin := math.Min(innerZoneMinAU, frost*0.5)
	innerMax := frost * innerZoneMaxFrac
	outerMin := frost * outerZoneMinFrac
	outerMax := outerZoneCapAU

	deficit := targetPlanets - len(star.KnownPlanetAxesAU)
	if deficit <= 0 {
		return nil
	}

	// Partition the deficit; a deficit of one goes to the rocky zone
	// (or shifts outward below if that zone is degenerate).
	rockyCount := 1
	if deficit > 1 {
		rockyCount = 1 + rng.Intn(deficit-1)
	}
	giantCount := deficit - rockyCount

	// Deficit guards: a dim star's rocky zone can be too cramped to hold
	// anything, in which case its quota shifts outward, and vice versa.
	if innerMax-innerMin < innerSeparationAU {
		slog.Debug("rocky zone degenerate, shifting quota to giants",
			"star", star.Name, "inner_min", innerMin, "inner_max", innerMax)
		giantCount += rockyCount
		rockyCount = 0
	}
	if outerMax-outerMin < outerSeparationAU {
		slog.Debug("giant zone degenerate, dropping giant quota",
			"star", star.Name, "outer_min", outerMin, "outer_max", outerMax)
		giantCount = 0
	}

	axes := append([]float64(nil), star.KnownPlanetAxesAU...)
	var specs []PlanetSpec

	place := func(zMin, zMax, sep float64) (float64, bool) {
		if zMax-zMin < sep {
			return 0, false
		}
		var a float64
		for try := 0; try < placementRetries; try++ {
			a = zMin + rng.Float64()*(zMax-zMin)
			a += (rng.Float64() - 0.5) * sep // jitter off the uniform grid
			if a < zMin {
				a = zMin
			}
			if a > zMax-zoneEdgeMarginAU {
				a = zMax - zoneEdgeMarginAU
			}
			if clearOf(axes, a, sep) {
				return a, true
			}
		}
		// Clamp the last candidate against the nearest neighbour instead
		// of discarding the planet outright.
		a = nudgeClear(axes, a, sep, zMin, zMax)
		if clearOf(axes, a, sep) {
			return a, true
		}
		return 0, false
	}

	for i := 0; i < rockyCount; i++ {
		a, ok := place(innerMin, innerMax, innerSeparationAU)
		if !ok {
			slog.Debug("rocky placement exhausted", "star", star.Name, "placed", i)
			break
		}
		axes = append(axes, a)
		specs = append(specs, rockyPlanet(star, a, rng))
	}
	for i := 0; i < giantCount; i++ {
		a, ok := placeGiant(i, giantCount, outerMin, outerMax, axes, rng)
		if !ok {
			slog.Debug("giant placement exhausted",
				"star", star.Name, "slot", i, "of", giantCount)
			continue
		}
		axes = append(axes, a)
		specs = append(specs, giantPlanet(star, a, rng))
	}

	// Designations run b, c, d... ordered by distance from the star.
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Orbit.SemiMajorAxisAU < specs[j].Orbit.SemiMajorAxisAU
	})
	for i := range specs {
		specs[i].Name = fmt.Sprintf("%s %c", star.Name, 'b'+i)
	}
	return specs
}

func clearOf(axes []float64, a, sep float64) bool {
	for _, other := range axes {
		if math.Abs(a-other) < sep {
			return false
		}
	}
	return true
}

// nudgeClear pushes a candidate axis just past its nearest conflicting
// neighbour, clamped strictly inside the zone.
func nudgeClear(axes []float64, a, sep, zMin, zMax float64) float64 {
	for _, other := range axes {
		if math.Abs(a-other) < sep {
			if a >= other {
				a = other + sep
			} else {
				a = other - sep
			}
		}
	}
	if a < zMin {
		a = zMin
	}
	if a > zMax-zoneEdgeMarginAU {
		a = zMax - zoneEdgeMarginAU
	}
	return a
}

// giantBaseAxis is the log-spaced base orbit for slot i of n. Slot
// spacing grows geometrically with distance, the way real giant
// systems spread out.
func giantBaseAxis(i, n int, zMin, zMax float64) float64 {
	t := (float64(i) + 0.5) / float64(n)
	return zMin * math.Pow(zMax/zMin, t)
}

// placeGiant jitters a giant off its log-spaced base, then walks it
// outward in random steps past any conflicting orbit, clamping to the
// zone when the retry budget runs out.
func placeGiant(slot, count int, zMin, zMax float64, axes []float64, rng *rand.Rand) (float64, bool) {
	if zMax-zMin < outerSeparationAU {
		return 0, false
	}
	a := giantBaseAxis(slot, count, zMin, zMax)
	a *= 1 + (rng.Float64()*2-1)*giantAxisJitter
	if a < zMin {
		a = zMin
	}
	if a > zMax {
		a = zMax
	}
	for try := 0; try < placementRetries && !clearOf(axes, a, outerSeparationAU); try++ {
		a += giantNudgeMinAU + rng.Float64()*(giantNudgeMaxAU-giantNudgeMinAU)
		if a > zMax {
			a = zMax
		}
	}
	if clearOf(axes, a, outerSeparationAU) {
		return a, true
	}
	a = nudgeClear(axes, a, outerSeparationAU, zMin, zMax)
	return a, clearOf(axes, a, outerSeparationAU)
}

func rockyPlanet(star StarContext, a float64, rng *rand.Rand) PlanetSpec {
	massEarths := 0.1 + rng.Float64()*4.9
	return PlanetSpec{
		Type:     components.BodyPlanet,
		MassKg:   massEarths * earthMassKg,
		RadiusKm: rockyRadiusKm(massEarths),
		Orbit:    randomOrbit(a, rockyEccMax, rng),
	}
}

func giantPlanet(star StarContext, a float64, rng *rand.Rand) PlanetSpec {
	massEarths := 10 + rng.Float64()*390
	typ := components.BodyGasGiant
	if massEarths < 50 {
		typ = components.BodyIceGiant
	}
	return PlanetSpec{
		Type:     typ,
		MassKg:   massEarths * earthMassKg,
		RadiusKm: giantRadiusKm(massEarths),
		Orbit:    randomOrbit(a, giantEccMax, rng),
	}
}

// rockyRadiusKm follows the terrestrial mass-radius relation R ∝ M^0.27.
func rockyRadiusKm(massEarths float64) float64 {
	return earthRadiusKm * math.Pow(massEarths, 0.27)
}

// giantRadiusKm flattens towards the Jupiter radius: past ~100 Earth
// masses, degeneracy pressure stops giants from growing.
func giantRadiusKm(massEarths float64) float64 {
	r := earthRadiusKm * 3.5 * math.Pow(massEarths/10, 0.2)
	const jupiterRadiusKm = 69911.0
	if r > jupiterRadiusKm*1.1 {
		r = jupiterRadiusKm * 1.1
	}
	return r
}

func randomOrbit(a, eccMax float64, rng *rand.Rand) components.KeplerOrbit {
	return components.KeplerOrbit{
		SemiMajorAxisAU: a,
		Eccentricity:    rng.Float64() * eccMax,
		Inclination:     rng.Float64() * 0.1, // near-coplanar
		LongAscNode:     rng.Float64() * astro.Tau,
		ArgPeriapsis:    rng.Float64() * astro.Tau,
		MeanAnomaly0:    rng.Float64() * astro.Tau,
		MeanMotion:      meanMotionForAxis(a),
	}
}

func meanMotionForAxis(a float64) float64 {
	periodSec := astro.PeriodYearsFromAxis(a) * astro.SecondsPerYear
	return astro.MeanMotionFromPeriod(periodSec)
}

// generateBelt fills the region around twice the frost line with
// asteroids. Class weights skew stony, with metallic and basaltic
// minorities. A planet orbiting near the belt center pushes the band
// to whichever side of its orbit the center falls on.
func generateBelt(star StarContext, planetAxesAU []float64, rng *rand.Rand) *BeltSpec {
	center := star.FrostLineAU * beltCenterFrac
	inner := center * (1 - beltHalfWidth)
	outer := center * (1 + beltHalfWidth)

	for _, orbit := range planetAxesAU {
		if math.Abs(orbit-center) < beltClearAU {
			if orbit < center {
				inner = orbit + beltShiftGapAU
				outer = inner + center*2*beltHalfWidth
			} else {
				outer = orbit - beltShiftGapAU
				inner = outer - center*2*beltHalfWidth
			}
		}
	}
	if inner <= 0 || outer <= inner {
		slog.Debug("belt band degenerate after clearing planet orbits",
			"star", star.Name, "inner", inner, "outer", outer)
		return nil
	}

	count := beltCountMin + rng.Intn(beltCountMax-beltCountMin+1)
	belt := &BeltSpec{CenterAU: center, InnerAU: inner, OuterAU: outer}

	for i := 0; i < count; i++ {
		a := inner + rng.Float64()*(outer-inner)
		massKg := math.Pow(10, 14+rng.Float64()*6) // 1e14..1e20 kg
		belt.Bodies = append(belt.Bodies, MinorBodySpec{
			Name:     fmt.Sprintf("%s-A%03d", star.Name, i+1),
			Type:     components.BodyAsteroid,
			Class:    beltClass(rng),
			MassKg:   massKg,
			RadiusKm: asteroidRadiusKm(massKg),
			Orbit: components.KeplerOrbit{
				SemiMajorAxisAU: a,
				Eccentricity:    rng.Float64() * 0.3,
				Inclination:     rng.Float64() * 0.3,
				LongAscNode:     rng.Float64() * astro.Tau,
				ArgPeriapsis:    rng.Float64() * astro.Tau,
				MeanAnomaly0:    rng.Float64() * astro.Tau,
				MeanMotion:      meanMotionForAxis(a),
			},
		})
	}
	return belt
}

func beltClass(rng *rand.Rand) components.AsteroidClass {
	r := rng.Float64()
	switch {
	case r < 0.30:
		return components.ClassM
	case r < 0.72:
		return components.ClassS
	default:
		return components.ClassV
	}
}

// generateCloud scatters comets in a shell well beyond the planets, with
// the steep inclinations of a scattered disc.
func generateCloud(star StarContext, rng *rand.Rand) *CloudSpec {
	inner := math.Max(cloudInnerMinAU, star.FrostLineAU*cloudInnerFrac)
	outer := cloudOuterAU
	if inner >= outer {
		slog.Debug("cometary shell degenerate, skipping",
			"star", star.Name, "inner", inner, "outer", outer)
		return nil
	}

	count := cloudCountMin + rng.Intn(cloudCountMax-cloudCountMin+1)
	cloud := &CloudSpec{InnerAU: inner, OuterAU: outer}

	for i := 0; i < count; i++ {
		a := inner + rng.Float64()*(outer-inner)
		massKg := math.Pow(10, 12+rng.Float64()*4) // 1e12..1e16 kg
		cloud.Bodies = append(cloud.Bodies, MinorBodySpec{
			Name:     fmt.Sprintf("%s-C%03d", star.Name, i+1),
			Type:     components.BodyComet,
			Class:    components.ClassC,
			MassKg:   massKg,
			RadiusKm: asteroidRadiusKm(massKg),
			Orbit: components.KeplerOrbit{
				SemiMajorAxisAU: a,
				Eccentricity:    0.3 + rng.Float64()*0.6,
				Inclination:     rng.Float64() * (math.Pi / 3),
				LongAscNode:     rng.Float64() * astro.Tau,
				ArgPeriapsis:    rng.Float64() * astro.Tau,
				MeanAnomaly0:    rng.Float64() * astro.Tau,
				MeanMotion:      meanMotionForAxis(a),
			},
		})
	}
	return cloud
}

// asteroidRadiusKm assumes a 2 g/cm³ rubble-pile density.
func asteroidRadiusKm(massKg float64) float64 {
	const densityKgM3 = 2000.0
	volM3 := massKg / densityKgM3
	rM := math.Cbrt(volM3 * 3 / (4 * math.Pi))
	return rM / 1000
}
