package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/Slatibartfas/Helios-Ascension-sub000/astro"
	"github.com/Slatibartfas/Helios-Ascension-sub000/catalog"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
	"github.com/Slatibartfas/Helios-Ascension-sub000/economy"
	"github.com/Slatibartfas/Helios-Ascension-sub000/procgen"
)

// generatedSystem is the pure output of generating one star system,
// before anything touches the world. Resource slices are index-aligned
// with the architecture's planet, belt, and cloud specs.
type generatedSystem struct {
	rec         catalog.StarRecord
	metallicity float64
	frostAU     float64
	arch        procgen.Architecture
	planetRes   []economy.BodyResources
	beltRes     []economy.BodyResources
	cloudRes    []economy.BodyResources
}

// PopulateFromStars generates one full system per star record and
// spawns them all. Generation is pure and fans out across a bounded
// worker set; spawning happens afterwards in record order, so the
// resulting world is identical however many workers ran.
func (g *Game) PopulateFromStars(stars []catalog.StarRecord) error {
	gens := make([]generatedSystem, len(stars))

	workers := g.parallel.numWorkers
	if workers > len(stars) {
		workers = len(stars)
	}
	if workers <= 1 {
		for i := range stars {
			gens[i] = generateSystem(g.seed, stars[i])
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					gens[i] = generateSystem(g.seed, stars[i])
				}
			}()
		}
		for i := range stars {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for i := range gens {
		if err := g.spawnSystem(&gens[i]); err != nil {
			return fmt.Errorf("populating %q: %w", gens[i].rec.Name, err)
		}
	}
	g.propagation.Invalidate()
	return nil
}

// generateSystem rolls the architecture and resource deposits for one
// star. It only reads the seed and the record, so calls for different
// stars may run concurrently.
func generateSystem(seed procgen.Seed, rec catalog.StarRecord) generatedSystem {
	gen := generatedSystem{
		rec:         rec,
		metallicity: resolveMetallicity(seed, rec),
		frostAU:     astro.FrostLineAU(rec.LuminositySol),
	}

	gen.arch = procgen.GenerateArchitecture(seed, procgen.StarContext{
		SystemID:      rec.ID,
		Name:          rec.Name,
		LuminositySol: rec.LuminositySol,
		Metallicity:   gen.metallicity,
		FrostLineAU:   gen.frostAU,
	})

	metMult := astro.MetallicityMultiplier(gen.metallicity)
	rng := seed.Stream(rec.ID, procgen.StreamResources)

	for _, spec := range gen.arch.Planets {
		gen.planetRes = append(gen.planetRes, rollResources(
			spec.Name, spec.Type, components.ClassNone,
			spec.MassKg, spec.Orbit.SemiMajorAxisAU, gen.frostAU, metMult, rng))
	}
	if gen.arch.Belt != nil {
		for _, spec := range gen.arch.Belt.Bodies {
			gen.beltRes = append(gen.beltRes, rollResources(
				spec.Name, spec.Type, spec.Class,
				spec.MassKg, spec.Orbit.SemiMajorAxisAU, gen.frostAU, metMult, rng))
		}
	}
	if gen.arch.Cloud != nil {
		for _, spec := range gen.arch.Cloud.Bodies {
			gen.cloudRes = append(gen.cloudRes, rollResources(
				spec.Name, spec.Type, spec.Class,
				spec.MassKg, spec.Orbit.SemiMajorAxisAU, gen.frostAU, metMult, rng))
		}
	}
	return gen
}

// spawnSystem writes one generated system into the world.
func (g *Game) spawnSystem(gen *generatedSystem) error {
	if _, exists := g.byName[gen.rec.Name]; exists {
		return fmt.Errorf("star %q already spawned", gen.rec.Name)
	}

	starEntity := g.spawnStar(gen.rec, gen.metallicity)

	for i, spec := range gen.arch.Planets {
		e := g.spawnPlanet(spec, starEntity, gen.rec.ID)
		g.attachResources(e, gen.planetRes[i])
	}
	if gen.arch.Belt != nil {
		for i, spec := range gen.arch.Belt.Bodies {
			e := g.spawnMinor(spec, starEntity, gen.rec.ID)
			g.attachResources(e, gen.beltRes[i])
		}
	}
	if gen.arch.Cloud != nil {
		for i, spec := range gen.arch.Cloud.Bodies {
			e := g.spawnMinor(spec, starEntity, gen.rec.ID)
			g.attachResources(e, gen.cloudRes[i])
		}
	}

	belt, cloud := 0, 0
	if gen.arch.Belt != nil {
		belt = len(gen.arch.Belt.Bodies)
	}
	if gen.arch.Cloud != nil {
		cloud = len(gen.arch.Cloud.Bodies)
	}
	slog.Info("system populated",
		"star", gen.rec.Name,
		"planets", len(gen.arch.Planets),
		"belt_bodies", belt,
		"cloud_bodies", cloud,
		"frost_line_au", gen.frostAU)
	return nil
}

// resolveMetallicity uses the catalog value when present, otherwise
// rolls one from the system's metallicity stream.
func resolveMetallicity(seed procgen.Seed, rec catalog.StarRecord) float64 {
	if rec.Metallicity != nil {
		return *rec.Metallicity
	}
	rng := seed.Stream(rec.ID, procgen.StreamMetallicity)
	return -0.5 + rng.Float64()
}

// rollResources rolls the mineral deposits for one body.
func rollResources(name string, typ components.BodyType, class components.AsteroidClass,
	massKg, distanceAU, frostAU, metMult float64, rng *rand.Rand) economy.BodyResources {

	return economy.Generate(economy.BodyContext{
		Name:            name,
		Type:            typ,
		Class:           class,
		MassKg:          massKg,
		DistanceAU:      distanceAU,
		FrostLineAU:     frostAU,
		MetallicityMult: metMult,
	}, rng)
}

// attachResources stores a body's deposits when it has any.
func (g *Game) attachResources(e ecs.Entity, res economy.BodyResources) {
	if len(res.Deposits) == 0 {
		return
	}
	r := res
	g.resources[e] = &r
}

// GenerateCatalogResources rolls deposits for already-spawned authored
// bodies. The catalog's root star supplies the frost line and
// metallicity context.
func (g *Game) GenerateCatalogResources(cat *catalog.BodyCatalog, systemID uint64) error {
	var starDef *catalog.BodyDef
	for i := range cat.Bodies {
		if cat.Bodies[i].Type == "star" {
			starDef = &cat.Bodies[i]
			break
		}
	}
	if starDef == nil {
		return fmt.Errorf("catalog has no star")
	}

	frost := astro.FrostLineAU(starDef.LuminositySol)
	metMult := astro.MetallicityMultiplier(starDef.Metallicity)
	rng := g.seed.Stream(systemID, procgen.StreamResources)

	for _, def := range cat.Bodies {
		if def.Type == "star" {
			continue
		}
		e, ok := g.byName[def.Name]
		if !ok {
			return fmt.Errorf("body %q not spawned", def.Name)
		}
		typ, err := catalog.ParseBodyType(def.Type)
		if err != nil {
			return err
		}
		res := rollResources(def.Name, typ, components.ClassNone,
			def.MassKg, g.distanceFromStarAU(e), frost, metMult, rng)
		g.attachResources(e, res)
	}
	return nil
}

// distanceFromStarAU approximates a body's distance from its system root
// as the semi-major axis of its outermost ancestor orbit. A moon sits at
// its planet's distance for resource purposes.
func (g *Game) distanceFromStarAU(e ecs.Entity) float64 {
	orbitMap := ecs.NewMap[components.KeplerOrbit](g.world)
	parentMap := ecs.NewMap[components.OrbitParent](g.world)

	dist := 0.0
	cur := e
	for depth := 0; parentMap.Has(cur) && depth < 32; depth++ {
		dist = orbitMap.Get(cur).SemiMajorAxisAU
		cur = parentMap.Get(cur).Parent
	}
	return dist
}
