package game

import (
	"github.com/Slatibartfas/Helios-Ascension-sub000/config"
	"github.com/Slatibartfas/Helios-Ascension-sub000/telemetry"
)

// NewOutput builds the CSV output manager for the given telemetry
// settings. Returns a nil manager when output is disabled; all writes on
// a nil manager are no-ops.
func NewOutput(tc config.TelemetryConfig) (*telemetry.OutputManager, error) {
	if !tc.Enabled {
		return nil, nil
	}
	return telemetry.NewOutputManager(tc.Dir)
}
