// Package game wires the ECS world, generation, and per-tick systems
// into a headless simulation engine.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Slatibartfas/Helios-Ascension-sub000/camera"
	"github.com/Slatibartfas/Helios-Ascension-sub000/catalog"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
	"github.com/Slatibartfas/Helios-Ascension-sub000/config"
	"github.com/Slatibartfas/Helios-Ascension-sub000/economy"
	"github.com/Slatibartfas/Helios-Ascension-sub000/procgen"
	"github.com/Slatibartfas/Helios-Ascension-sub000/systems"
)

// Game owns the ECS world and drives the simulation tick.
type Game struct {
	world *ecs.World
	seed  procgen.Seed

	// Entity mappers for the two spawn shapes: roots (stars) and
	// orbiting bodies.
	rootMapper *ecs.Map5[
		components.SpaceCoordinates,
		components.RenderPosition,
		components.CelestialBody,
		components.StarSystem,
		components.SystemMember,
	]
	bodyMapper *ecs.Map6[
		components.SpaceCoordinates,
		components.RenderPosition,
		components.CelestialBody,
		components.KeplerOrbit,
		components.OrbitParent,
		components.SystemMember,
	]

	// Individual component mappers for lookups
	coordsMap *ecs.Map1[components.SpaceCoordinates]
	renderMap *ecs.Map1[components.RenderPosition]
	bodyMap   *ecs.Map1[components.CelestialBody]
	memberMap *ecs.Map1[components.SystemMember]

	propagation *systems.PropagationSystem
	bridge      *systems.BridgeSystem
	registry    *systems.SystemRegistry

	// Resource records per entity; deposits live outside the ECS since
	// their maps are consumed by economy code, not per-tick systems.
	resources map[ecs.Entity]*economy.BodyResources

	// byName resolves body names to entities for lookups and parenting.
	byName map[string]ecs.Entity

	parallel *parallelState
	perf     *PerfStats
	tracker  *camera.Tracker

	simTime float64 // seconds since epoch
	tick    uint64
}

// NewGame creates an empty engine. Config must be initialized first.
func NewGame() *Game {
	world := ecs.NewWorld()
	cfg := config.Cfg()

	g := &Game{
		world: world,
		seed:  resolveSeed(cfg.Seed),
		rootMapper: ecs.NewMap5[
			components.SpaceCoordinates,
			components.RenderPosition,
			components.CelestialBody,
			components.StarSystem,
			components.SystemMember,
		](world),
		bodyMapper: ecs.NewMap6[
			components.SpaceCoordinates,
			components.RenderPosition,
			components.CelestialBody,
			components.KeplerOrbit,
			components.OrbitParent,
			components.SystemMember,
		](world),
		coordsMap: ecs.NewMap1[components.SpaceCoordinates](world),
		renderMap: ecs.NewMap1[components.RenderPosition](world),
		bodyMap:   ecs.NewMap1[components.CelestialBody](world),
		memberMap: ecs.NewMap1[components.SystemMember](world),
		resources: make(map[ecs.Entity]*economy.BodyResources),
		byName:    make(map[string]ecs.Entity),
		registry:  systems.NewSystemRegistry(),
		perf:      NewPerfStats(),
	}

	g.propagation = systems.NewPropagationSystem(world)
	g.bridge = systems.NewBridgeSystem(world,
		cfg.Render.ScaleUnitsPerAU, cfg.Render.GateEpsilonAU)
	g.parallel = newParallelState(cfg.Simulation.Workers)

	slog.Info("engine created", "seed", uint64(g.seed))
	return g
}

// resolveSeed picks the campaign seed: explicit value, then phrase, then
// wall clock.
func resolveSeed(sc config.SeedConfig) procgen.Seed {
	switch {
	case sc.Value != 0:
		return procgen.Seed(sc.Value)
	case sc.Phrase != "":
		return procgen.SeedFromString(sc.Phrase)
	default:
		return procgen.SeedFromTime()
	}
}

// Seed returns the campaign seed in use.
func (g *Game) Seed() procgen.Seed {
	return g.seed
}

// World exposes the ECS world for systems and tests.
func (g *Game) World() *ecs.World {
	return g.world
}

// SimTime returns seconds of simulated time since epoch.
func (g *Game) SimTime() float64 {
	return g.simTime
}

// Tick returns the number of completed steps.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Perf returns the per-system timing tracker.
func (g *Game) Perf() *PerfStats {
	return g.perf
}

// Bridge returns the render bridge, for origin control.
func (g *Game) Bridge() *systems.BridgeSystem {
	return g.bridge
}

// Follow keeps the floating origin near the named body, rebasing the
// bridge whenever the body drifts more than maxDriftAU from the current
// origin. An unknown name returns an error and leaves the origin fixed.
func (g *Game) Follow(name string, maxDriftAU float64) error {
	if _, ok := g.byName[name]; !ok {
		return fmt.Errorf("unknown body %q", name)
	}
	g.tracker = camera.NewTracker(maxDriftAU)
	g.tracker.Focus = name
	return nil
}

// Step advances the simulation by dt seconds and refreshes render
// positions.
func (g *Game) Step(dt float64) {
	g.simTime += dt
	g.tick++

	start := time.Now()
	g.propagate(g.simTime)
	g.perf.Record("propagation", time.Since(start))

	if g.tracker != nil {
		focus := g.coordsMap.Get(g.byName[g.tracker.Focus]).Pos
		if origin, rebased := g.tracker.Update(focus); rebased {
			g.bridge.SetOrigin(g.world, origin)
		}
	}

	start = time.Now()
	g.bridge.Update(g.world)
	g.perf.Record("bridge", time.Since(start))
}

// Shutdown stops the propagation worker pool.
func (g *Game) Shutdown() {
	g.parallel.stopWorkers()
}

// Lookup returns the entity for a body name.
func (g *Game) Lookup(name string) (ecs.Entity, bool) {
	e, ok := g.byName[name]
	return e, ok
}

// PositionOf returns a body's absolute position in AU.
func (g *Game) PositionOf(name string) (r3.Vec, error) {
	e, ok := g.byName[name]
	if !ok {
		return r3.Vec{}, fmt.Errorf("unknown body %q", name)
	}
	return g.coordsMap.Get(e).Pos, nil
}

// RenderPositionOf returns a body's current render-space position.
func (g *Game) RenderPositionOf(name string) (components.RenderPosition, error) {
	e, ok := g.byName[name]
	if !ok {
		return components.RenderPosition{}, fmt.Errorf("unknown body %q", name)
	}
	return *g.renderMap.Get(e), nil
}

// ResourcesOf returns a body's mineral deposits, or nil for bodies
// without any (stars, pure ice giants).
func (g *Game) ResourcesOf(name string) *economy.BodyResources {
	e, ok := g.byName[name]
	if !ok {
		return nil
	}
	return g.resources[e]
}

// BodyCount returns how many celestial bodies exist.
func (g *Game) BodyCount() int {
	return len(g.byName)
}

// LoadCatalog spawns the authored bodies from a catalog into the world.
func (g *Game) LoadCatalog(cat *catalog.BodyCatalog, systemID uint64) error {
	for _, def := range cat.Bodies {
		if _, err := g.spawnFromDef(def, systemID); err != nil {
			return fmt.Errorf("spawning %q: %w", def.Name, err)
		}
	}
	g.propagation.Invalidate()
	return nil
}
