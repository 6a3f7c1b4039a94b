package game

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
	"github.com/Slatibartfas/Helios-Ascension-sub000/economy"
	"github.com/Slatibartfas/Helios-Ascension-sub000/telemetry"
)

// BodyReport flattens every body in the world into report rows, sorted
// by system then name so output is stable across runs.
func (g *Game) BodyReport() []telemetry.BodyRecord {
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	systemNames := g.systemNames()
	orbitMap := ecs.NewMap[components.KeplerOrbit](g.world)

	records := make([]telemetry.BodyRecord, 0, len(names))
	for _, name := range names {
		e := g.byName[name]
		body := g.bodyMap.Get(e)
		member := g.memberMap.Get(e)

		rec := telemetry.BodyRecord{
			SystemID: member.SystemID,
			System:   systemNames[member.SystemID],
			Name:     body.Name,
			Type:     body.Type.String(),
			MassKg:   body.MassKg,
			RadiusKm: body.RadiusKm,
		}
		if body.Class != components.ClassNone {
			rec.Class = body.Class.String()
		}

		if orbitMap.Has(e) {
			orbit := orbitMap.Get(e)
			rec.SemiMajorAxisAU = orbit.SemiMajorAxisAU
			rec.Eccentricity = orbit.Eccentricity
		}

		if res := g.resources[e]; res != nil {
			rec.DepositKinds = len(res.Deposits)
			rec.ProvenTotalMt = provenTotal(res)
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SystemID < records[j].SystemID
	})
	return records
}

// PerfReport snapshots the current sliding-window averages. Phase IDs
// are resolved to display names through the system registry so the CSV
// matches what any frontend would label them.
func (g *Game) PerfReport() []telemetry.PerfRecord {
	records := make([]telemetry.PerfRecord, 0, 4)
	for _, name := range g.perf.SortedNames() {
		records = append(records, telemetry.PerfRecord{
			Tick:      g.tick,
			System:    g.registry.GetName(name),
			AvgMicros: float64(g.perf.Avg(name).Microseconds()),
		})
	}
	return records
}

// systemNames maps system IDs to their root star names.
func (g *Game) systemNames() map[uint64]string {
	starMap := ecs.NewMap[components.StarSystem](g.world)
	names := make(map[uint64]string)
	for name, e := range g.byName {
		if starMap.Has(e) {
			names[g.memberMap.Get(e).SystemID] = name
		}
	}
	return names
}

func provenTotal(res *economy.BodyResources) float64 {
	total := 0.0
	for _, d := range res.Deposits {
		total += d.Reserve.ProvenMt
	}
	return total
}
