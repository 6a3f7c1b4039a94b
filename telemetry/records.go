// Package telemetry writes CSV reports about generated systems and
// engine tick timings.
package telemetry

// BodyRecord is one row of the generation report: a single celestial
// body with its orbit and resource summary.
type BodyRecord struct {
	SystemID        uint64  `csv:"system_id"`
	System          string  `csv:"system"`
	Name            string  `csv:"name"`
	Type            string  `csv:"type"`
	Class           string  `csv:"class"`
	SemiMajorAxisAU float64 `csv:"semi_major_axis_au"`
	Eccentricity    float64 `csv:"eccentricity"`
	MassKg          float64 `csv:"mass_kg"`
	RadiusKm        float64 `csv:"radius_km"`
	DepositKinds    int     `csv:"deposit_kinds"`
	ProvenTotalMt   float64 `csv:"proven_total_mt"`
}

// PerfRecord is one row of the perf report: the sliding-window average
// cost of one system at one tick.
type PerfRecord struct {
	Tick      uint64  `csv:"tick"`
	System    string  `csv:"system"`
	AvgMicros float64 `csv:"avg_micros"`
}
