package components

import "gonum.org/v1/gonum/spatial/r3"

// SpaceCoordinates is the high-precision absolute position of a body in
// astronomical units. Double precision keeps distant orbits stable; the
// render-space conversion happens in the bridge system, not here.
type SpaceCoordinates struct {
	Pos r3.Vec
}

// RenderPosition is the single-precision render-space position of a body,
// relative to the global floating origin and scaled to render units.
//
// Committed holds the double-precision position at which the render values
// were last recomputed. The bridge system skips bodies whose motion since
// the last commit is below the precision-noise threshold, so downstream
// consumers are not churned by imperceptible updates.
type RenderPosition struct {
	X, Y, Z float32

	Committed r3.Vec
	Valid     bool // false until the first bridge pass
}
