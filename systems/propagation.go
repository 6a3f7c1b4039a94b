// Package systems contains the per-tick ECS systems: orbital propagation
// and the double-to-single precision render bridge.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/Slatibartfas/Helios-Ascension-sub000/astro"
	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

// PropagationSystem advances every orbiting body along its Kepler orbit.
// Bodies are processed in parent-before-child order so a moon always reads
// its planet's position for the current tick, never the previous one.
type PropagationSystem struct {
	filter    ecs.Filter3[components.SpaceCoordinates, components.KeplerOrbit, components.OrbitParent]
	coordsMap *ecs.Map1[components.SpaceCoordinates]
	orbitMap  *ecs.Map2[components.KeplerOrbit, components.OrbitParent]

	// ordered is the depth-sorted entity list, rebuilt when the world's
	// body population changes. levels groups it by hierarchy depth:
	// levels[0] holds bodies orbiting a root, levels[1] their moons, and
	// so on.
	ordered []ecs.Entity
	levels  [][]ecs.Entity
	dirty   bool
}

// NewPropagationSystem creates a propagation system for the world.
func NewPropagationSystem(w *ecs.World) *PropagationSystem {
	return &PropagationSystem{
		filter:    *ecs.NewFilter3[components.SpaceCoordinates, components.KeplerOrbit, components.OrbitParent](w),
		coordsMap: ecs.NewMap1[components.SpaceCoordinates](w),
		orbitMap:  ecs.NewMap2[components.KeplerOrbit, components.OrbitParent](w),
		dirty:     true,
	}
}

// Invalidate marks the traversal order stale. Call after spawning or
// despawning bodies.
func (s *PropagationSystem) Invalidate() {
	s.dirty = true
}

// Ordered returns the current parent-before-child traversal, rebuilding
// it if stale.
func (s *PropagationSystem) Ordered(w *ecs.World) []ecs.Entity {
	if s.dirty {
		s.rebuildOrder(w)
	}
	return s.ordered
}

// rebuildOrder sorts orbiting bodies by hierarchy depth. Roots (stars)
// carry no orbit and are absent from the traversal entirely.
func (s *PropagationSystem) rebuildOrder(w *ecs.World) {
	parentMap := ecs.NewMap[components.OrbitParent](w)

	depth := func(e ecs.Entity) int {
		d := 0
		cur := e
		for parentMap.Has(cur) {
			cur = parentMap.Get(cur).Parent
			d++
			if d > 32 {
				break // cycle guard; catalog validation makes this unreachable
			}
		}
		return d
	}

	type node struct {
		e ecs.Entity
		d int
	}
	var nodes []node

	query := s.filter.Query()
	for query.Next() {
		e := query.Entity()
		nodes = append(nodes, node{e: e, d: depth(e)})
	}

	// Insertion sort by depth; hierarchies are shallow and nearly sorted
	// after the first build.
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].d < nodes[j-1].d; j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}

	s.ordered = s.ordered[:0]
	s.levels = s.levels[:0]
	for _, n := range nodes {
		s.ordered = append(s.ordered, n.e)
		for len(s.levels) < n.d {
			s.levels = append(s.levels, nil)
		}
		s.levels[n.d-1] = append(s.levels[n.d-1], n.e)
	}
	s.dirty = false
}

// Levels returns the traversal grouped by hierarchy depth. Entities
// within one level are independent of each other: they read only
// positions written by earlier levels, so a level may be processed
// concurrently.
func (s *PropagationSystem) Levels(w *ecs.World) [][]ecs.Entity {
	if s.dirty {
		s.rebuildOrder(w)
	}
	return s.levels
}

// Update recomputes positions for all orbiting bodies at simulation time
// simTime (seconds since epoch).
func (s *PropagationSystem) Update(w *ecs.World, simTime float64) {
	s.PropagateSlice(w, s.Ordered(w), simTime)
}

// PropagateSlice advances the given bodies to simTime. Callers must
// ensure every entity's parent position is already current; slices taken
// from Levels satisfy this level by level. Entities in one level write
// disjoint positions, so disjoint sub-slices of a level may run on
// separate goroutines.
func (s *PropagationSystem) PropagateSlice(w *ecs.World, entities []ecs.Entity, simTime float64) {
	for _, e := range entities {
		// Despawn paths call Invalidate; a dead entity here is just
		// skipped until the next rebuild.
		if !w.Alive(e) {
			continue
		}
		orbit, parent := s.orbitMap.Get(e)
		parentPos := s.coordsMap.Get(parent.Parent).Pos

		el := astro.Elements{
			SemiMajorAxisAU: orbit.SemiMajorAxisAU,
			Eccentricity:    orbit.Eccentricity,
			Inclination:     orbit.Inclination,
			LongAscNode:     orbit.LongAscNode,
			ArgPeriapsis:    orbit.ArgPeriapsis,
			MeanAnomaly0:    orbit.MeanAnomaly0,
			MeanMotion:      orbit.MeanMotion,
		}
		s.coordsMap.Get(e).Pos = astro.PositionAt(el, parentPos, simTime)
	}
}
