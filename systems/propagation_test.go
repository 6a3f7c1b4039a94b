package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Slatibartfas/Helios-Ascension-sub000/astro"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

type testWorld struct {
	world      *ecs.World
	rootMapper *ecs.Map1[components.SpaceCoordinates]
	bodyMapper *ecs.Map3[components.SpaceCoordinates, components.KeplerOrbit, components.OrbitParent]
}

func newTestWorld() *testWorld {
	world := ecs.NewWorld()
	return &testWorld{
		world:      world,
		rootMapper: ecs.NewMap1[components.SpaceCoordinates](world),
		bodyMapper: ecs.NewMap3[components.SpaceCoordinates, components.KeplerOrbit, components.OrbitParent](world),
	}
}

func (tw *testWorld) spawnRoot(pos r3.Vec) ecs.Entity {
	return tw.rootMapper.NewEntity(&components.SpaceCoordinates{Pos: pos})
}

func (tw *testWorld) spawnOrbiter(parent ecs.Entity, aAU, ecc float64) ecs.Entity {
	periodSec := astro.PeriodYearsFromAxis(aAU) * astro.SecondsPerYear
	orbit := components.KeplerOrbit{
		SemiMajorAxisAU: aAU,
		Eccentricity:    ecc,
		MeanMotion:      astro.MeanMotionFromPeriod(periodSec),
	}
	return tw.bodyMapper.NewEntity(
		&components.SpaceCoordinates{},
		&orbit,
		&components.OrbitParent{Parent: parent},
	)
}

func TestPropagation_CircularOrbitRadius(t *testing.T) {
	tw := newTestWorld()
	star := tw.spawnRoot(r3.Vec{})
	planet := tw.spawnOrbiter(star, 1.0, 0.0)

	sys := NewPropagationSystem(tw.world)
	coords := ecs.NewMap1[components.SpaceCoordinates](tw.world)

	for _, tSec := range []float64{0, astro.SecondsPerDay, astro.SecondsPerYear / 4, astro.SecondsPerYear} {
		sys.Update(tw.world, tSec)
		r := r3.Norm(coords.Get(planet).Pos)
		if math.Abs(r-1.0) > 1e-9 {
			t.Errorf("t=%v: circular orbit radius = %v AU, want 1", tSec, r)
		}
	}
}

func TestPropagation_ParentBeforeChild(t *testing.T) {
	tw := newTestWorld()
	star := tw.spawnRoot(r3.Vec{})
	planet := tw.spawnOrbiter(star, 1.0, 0.0167)
	moon := tw.spawnOrbiter(planet, 0.00257, 0.0549)

	sys := NewPropagationSystem(tw.world)
	coords := ecs.NewMap1[components.SpaceCoordinates](tw.world)

	tSec := astro.SecondsPerYear / 3
	sys.Update(tw.world, tSec)

	planetPos := coords.Get(planet).Pos
	moonPos := coords.Get(moon).Pos

	sep := r3.Norm(r3.Sub(moonPos, planetPos))
	maxSep := 0.00257 * (1 + 0.0549)
	minSep := 0.00257 * (1 - 0.0549)
	if sep < minSep-1e-9 || sep > maxSep+1e-9 {
		t.Errorf("moon-planet separation %v AU outside [%v,%v]", sep, minSep, maxSep)
	}
}

func TestPropagation_OffsetRoot(t *testing.T) {
	tw := newTestWorld()
	origin := r3.Vec{X: 100, Y: -50, Z: 25}
	star := tw.spawnRoot(origin)
	planet := tw.spawnOrbiter(star, 2.0, 0.0)

	sys := NewPropagationSystem(tw.world)
	coords := ecs.NewMap1[components.SpaceCoordinates](tw.world)

	sys.Update(tw.world, astro.SecondsPerDay*100)
	r := r3.Norm(r3.Sub(coords.Get(planet).Pos, origin))
	if math.Abs(r-2.0) > 1e-9 {
		t.Errorf("orbit radius about offset root = %v AU, want 2", r)
	}
}

func TestPropagation_DeterministicAcrossRebuilds(t *testing.T) {
	tw := newTestWorld()
	star := tw.spawnRoot(r3.Vec{})
	planet := tw.spawnOrbiter(star, 1.5, 0.1)

	sys := NewPropagationSystem(tw.world)
	coords := ecs.NewMap1[components.SpaceCoordinates](tw.world)

	tSec := astro.SecondsPerYear * 0.7
	sys.Update(tw.world, tSec)
	first := coords.Get(planet).Pos

	sys.Invalidate()
	sys.Update(tw.world, tSec)
	second := coords.Get(planet).Pos

	if first != second {
		t.Errorf("position changed after order rebuild: %v vs %v", first, second)
	}
}

func TestPropagation_OrderedSkipsRoots(t *testing.T) {
	tw := newTestWorld()
	star := tw.spawnRoot(r3.Vec{})
	tw.spawnOrbiter(star, 1.0, 0.0)
	tw.spawnOrbiter(star, 2.0, 0.0)

	sys := NewPropagationSystem(tw.world)
	ordered := sys.Ordered(tw.world)
	if len(ordered) != 2 {
		t.Fatalf("traversal has %d entities, want 2", len(ordered))
	}
	for _, e := range ordered {
		if e == star {
			t.Error("root star must not appear in the traversal")
		}
	}
}
