// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Seed       SeedConfig       `yaml:"seed"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimulationConfig holds time stepping and scheduling parameters.
type SimulationConfig struct {
	DT                float64 `yaml:"dt"`                 // Seconds of simulated time per tick
	TimeScale         float64 `yaml:"time_scale"`         // Multiplier applied to DT each tick
	Workers           int     `yaml:"workers"`            // Propagation worker count; 0 = GOMAXPROCS
	ParallelThreshold int     `yaml:"parallel_threshold"` // Bodies per depth level before fanning out
}

// RenderConfig holds the double-to-single precision bridge parameters.
type RenderConfig struct {
	ScaleUnitsPerAU float64 `yaml:"scale_units_per_au"` // Engine units per astronomical unit
	GateEpsilonAU   float64 `yaml:"gate_epsilon_au"`    // Movement below this does not re-emit
}

// SeedConfig selects the campaign seed. Value wins over Phrase; if both
// are zero/empty the wall clock is used.
type SeedConfig struct {
	Value  uint64 `yaml:"value"`
	Phrase string `yaml:"phrase"`
}

// CatalogConfig points at the authored body and star inputs. Empty paths
// fall back to the embedded defaults.
type CatalogConfig struct {
	BodiesPath string `yaml:"bodies_path"`
	StarsPath  string `yaml:"stars_path"`
}

// TelemetryConfig controls CSV report output.
type TelemetryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"`
	FlushEvery int    `yaml:"flush_every"` // Ticks between flushes
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GateEpsilonSqAU float64 // GateEpsilonAU squared, compared against squared distances
	EffectiveDT     float64 // DT * TimeScale
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.DT <= 0 {
		return fmt.Errorf("simulation.dt must be positive, got %v", c.Simulation.DT)
	}
	if c.Simulation.TimeScale <= 0 {
		return fmt.Errorf("simulation.time_scale must be positive, got %v", c.Simulation.TimeScale)
	}
	if c.Render.ScaleUnitsPerAU <= 0 {
		return fmt.Errorf("render.scale_units_per_au must be positive, got %v", c.Render.ScaleUnitsPerAU)
	}
	if c.Render.GateEpsilonAU < 0 {
		return fmt.Errorf("render.gate_epsilon_au must not be negative, got %v", c.Render.GateEpsilonAU)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.GateEpsilonSqAU = c.Render.GateEpsilonAU * c.Render.GateEpsilonAU
	c.Derived.EffectiveDT = c.Simulation.DT * c.Simulation.TimeScale
}
