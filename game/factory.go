package game

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/Slatibartfas/Helios-Ascension-sub000/astro"
	"github.com/Slatibartfas/Helios-Ascension-sub000/catalog"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
	"github.com/Slatibartfas/Helios-Ascension-sub000/procgen"
)

// spawnFromDef creates the entity for one authored catalog body. Bodies
// are spawned in file order, so a parent must be listed before its
// satellites.
func (g *Game) spawnFromDef(def catalog.BodyDef, systemID uint64) (ecs.Entity, error) {
	typ, err := catalog.ParseBodyType(def.Type)
	if err != nil {
		return ecs.Entity{}, err
	}

	body := components.CelestialBody{
		Name:                def.Name,
		Type:                typ,
		MassKg:              def.MassKg,
		RadiusKm:            def.RadiusKm,
		Color:               def.Color,
		RotationPeriodHours: def.RotationPeriodHours,
	}

	if typ == components.BodyStar {
		spectral := astro.ParseSpectralClass(def.Spectral)
		star := astro.NewStarSystem(def.LuminositySol, def.Metallicity, spectral)
		e := g.rootMapper.NewEntity(
			&components.SpaceCoordinates{},
			&components.RenderPosition{},
			&body,
			&star,
			&components.SystemMember{SystemID: systemID},
		)
		g.byName[def.Name] = e
		return e, nil
	}

	parent, ok := g.byName[def.Parent]
	if !ok {
		return ecs.Entity{}, fmt.Errorf("parent %q not spawned yet", def.Parent)
	}

	periodSec := astro.PeriodYearsFromAxis(def.Orbit.SemiMajorAxisAU) * astro.SecondsPerYear
	orbit := components.KeplerOrbit{
		SemiMajorAxisAU: def.Orbit.SemiMajorAxisAU,
		Eccentricity:    def.Orbit.Eccentricity,
		Inclination:     def.Orbit.Inclination,
		LongAscNode:     def.Orbit.LongAscNode,
		ArgPeriapsis:    def.Orbit.ArgPeriapsis,
		MeanAnomaly0:    def.Orbit.MeanAnomaly,
		MeanMotion:      astro.MeanMotionFromPeriod(periodSec),
	}

	e := g.bodyMapper.NewEntity(
		&components.SpaceCoordinates{},
		&components.RenderPosition{},
		&body,
		&orbit,
		&components.OrbitParent{Parent: parent},
		&components.SystemMember{SystemID: systemID},
	)
	g.byName[def.Name] = e
	return e, nil
}

// spawnStar creates the root entity for a generated system.
func (g *Game) spawnStar(rec catalog.StarRecord, metallicity float64) ecs.Entity {
	spectral := astro.ParseSpectralClass(rec.Spectral)
	star := astro.NewStarSystem(rec.LuminositySol, metallicity, spectral)

	// Star bulk properties are derived from luminosity; good enough for
	// a generated background star.
	massKg := 1.989e30 * starMassFromLuminosity(rec.LuminositySol)
	body := components.CelestialBody{
		Name:     rec.Name,
		Type:     components.BodyStar,
		MassKg:   massKg,
		RadiusKm: 696340 * starRadiusFromLuminosity(rec.LuminositySol),
	}

	e := g.rootMapper.NewEntity(
		&components.SpaceCoordinates{},
		&components.RenderPosition{},
		&body,
		&star,
		&components.SystemMember{SystemID: rec.ID},
	)
	g.byName[rec.Name] = e
	return e
}

// spawnPlanet creates one generated planet orbiting the star.
func (g *Game) spawnPlanet(spec procgen.PlanetSpec, parent ecs.Entity, systemID uint64) ecs.Entity {
	body := components.CelestialBody{
		Name:     spec.Name,
		Type:     spec.Type,
		MassKg:   spec.MassKg,
		RadiusKm: spec.RadiusKm,
	}
	orbit := spec.Orbit
	e := g.bodyMapper.NewEntity(
		&components.SpaceCoordinates{},
		&components.RenderPosition{},
		&body,
		&orbit,
		&components.OrbitParent{Parent: parent},
		&components.SystemMember{SystemID: systemID},
	)
	g.byName[spec.Name] = e
	return e
}

// spawnMinor creates one generated asteroid or comet.
func (g *Game) spawnMinor(spec procgen.MinorBodySpec, parent ecs.Entity, systemID uint64) ecs.Entity {
	body := components.CelestialBody{
		Name:     spec.Name,
		Type:     spec.Type,
		MassKg:   spec.MassKg,
		RadiusKm: spec.RadiusKm,
		Class:    spec.Class,
	}
	orbit := spec.Orbit
	e := g.bodyMapper.NewEntity(
		&components.SpaceCoordinates{},
		&components.RenderPosition{},
		&body,
		&orbit,
		&components.OrbitParent{Parent: parent},
		&components.SystemMember{SystemID: systemID},
	)
	g.byName[spec.Name] = e
	return e
}

// starMassFromLuminosity inverts the main-sequence mass-luminosity
// relation L = M^3.5, in solar units.
func starMassFromLuminosity(lum float64) float64 {
	return math.Pow(lum, 1.0/3.5)
}

// starRadiusFromLuminosity uses R = M^0.8 for the main sequence.
func starRadiusFromLuminosity(lum float64) float64 {
	return math.Pow(starMassFromLuminosity(lum), 0.8)
}
