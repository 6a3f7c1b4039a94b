package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

// BridgeSystem converts double-precision space coordinates into the
// single-precision, origin-relative positions a renderer consumes.
// A change gate skips bodies that have not moved meaningfully since the
// last emitted position, so a slow outer giant is not re-emitted every
// tick just because the solver's last bits wiggled.
type BridgeSystem struct {
	filter ecs.Filter2[components.SpaceCoordinates, components.RenderPosition]

	// Origin is the floating render origin in AU. The camera's focus
	// body is the usual choice; rebasing it forces a full re-emit.
	origin r3.Vec

	scale     float64 // render units per AU
	epsilonSq float64 // squared gate threshold, AU²

	emitted int // bodies re-emitted last update, for telemetry
}

// NewBridgeSystem creates a bridge with the given render scale and gate
// threshold (both in AU terms; epsilon is the un-squared distance).
func NewBridgeSystem(w *ecs.World, scaleUnitsPerAU, epsilonAU float64) *BridgeSystem {
	return &BridgeSystem{
		filter:    *ecs.NewFilter2[components.SpaceCoordinates, components.RenderPosition](w),
		scale:     scaleUnitsPerAU,
		epsilonSq: epsilonAU * epsilonAU,
	}
}

// SetOrigin moves the floating origin and invalidates every committed
// position, since all render-space offsets just changed.
func (s *BridgeSystem) SetOrigin(w *ecs.World, origin r3.Vec) {
	s.origin = origin

	query := s.filter.Query()
	for query.Next() {
		_, rp := query.Get()
		rp.Valid = false
	}
}

// Origin returns the current floating origin in AU.
func (s *BridgeSystem) Origin() r3.Vec {
	return s.origin
}

// EmittedLast returns how many bodies passed the gate on the most recent
// update.
func (s *BridgeSystem) EmittedLast() int {
	return s.emitted
}

// Update passes each moved body through the gate and refreshes its
// render position. The committed double-precision point, not the lossy
// float32 output, is what the gate compares against: comparing against
// the float32 would let error accumulate across skipped ticks.
func (s *BridgeSystem) Update(w *ecs.World) {
	s.emitted = 0

	query := s.filter.Query()
	for query.Next() {
		coords, rp := query.Get()

		if rp.Valid {
			delta := r3.Sub(coords.Pos, rp.Committed)
			if r3.Norm2(delta) <= s.epsilonSq {
				continue
			}
		}

		rel := r3.Sub(coords.Pos, s.origin)
		rp.X = float32(rel.X * s.scale)
		rp.Y = float32(rel.Y * s.scale)
		rp.Z = float32(rel.Z * s.scale)
		rp.Committed = coords.Pos
		rp.Valid = true
		s.emitted++
	}
}
