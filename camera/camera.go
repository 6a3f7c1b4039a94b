// Package camera tracks the observer's focus body and decides when the
// render bridge must rebase its floating origin. The renderer itself
// lives outside the engine; this package only owns the policy of where
// the origin sits.
package camera

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Tracker follows a focus point in double-precision space. When the
// focus drifts too far from the current origin, single-precision render
// coordinates around it lose accuracy, and the tracker requests a
// rebase.
type Tracker struct {
	// Focus is the name of the followed body, informational only.
	Focus string

	origin   r3.Vec
	maxDrift float64 // AU the focus may wander before a rebase
}

// NewTracker creates a tracker with the given drift budget in AU.
func NewTracker(maxDriftAU float64) *Tracker {
	return &Tracker{maxDrift: maxDriftAU}
}

// Origin returns the current floating origin.
func (t *Tracker) Origin() r3.Vec {
	return t.origin
}

// NeedsRebase reports whether the focus position has drifted past the
// budget.
func (t *Tracker) NeedsRebase(focusPos r3.Vec) bool {
	delta := r3.Sub(focusPos, t.origin)
	return r3.Norm2(delta) > t.maxDrift*t.maxDrift
}

// Rebase moves the origin onto the focus position and returns the new
// origin. The caller is responsible for pushing it into the bridge,
// which invalidates every committed render position.
func (t *Tracker) Rebase(focusPos r3.Vec) r3.Vec {
	t.origin = focusPos
	return t.origin
}

// Update follows one focus sample: rebases if needed and reports whether
// it did.
func (t *Tracker) Update(focusPos r3.Vec) (r3.Vec, bool) {
	if !t.NeedsRebase(focusPos) {
		return t.origin, false
	}
	return t.Rebase(focusPos), true
}
