// Package catalog loads authored celestial bodies and star tables from
// YAML and CSV inputs, validating them before anything is spawned.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

//go:embed sol.yaml
var defaultBodiesYAML []byte

// OrbitDef is the authored orbital element block. Angles are radians,
// distances AU. Absent fields zero out, which is valid for a star.
type OrbitDef struct {
	SemiMajorAxisAU float64 `yaml:"semi_major_axis_au"`
	Eccentricity    float64 `yaml:"eccentricity"`
	Inclination     float64 `yaml:"inclination"`
	LongAscNode     float64 `yaml:"long_asc_node"`
	ArgPeriapsis    float64 `yaml:"arg_periapsis"`
	MeanAnomaly     float64 `yaml:"mean_anomaly"`
}

// BodyDef is one authored body. Parent is empty for the system root.
type BodyDef struct {
	Name                string     `yaml:"name"`
	Type                string     `yaml:"type"`
	Parent              string     `yaml:"parent"`
	MassKg              float64    `yaml:"mass_kg"`
	RadiusKm            float64    `yaml:"radius_km"`
	Color               [3]float32 `yaml:"color"`
	RotationPeriodHours float64    `yaml:"rotation_period_hours"`
	LuminositySol       float64    `yaml:"luminosity_sol"` // stars only
	Metallicity         float64    `yaml:"metallicity"`    // stars only
	Spectral            string     `yaml:"spectral"`       // stars only
	Orbit               OrbitDef   `yaml:"orbit"`
}

// BodyCatalog is a validated set of authored bodies for one system.
type BodyCatalog struct {
	Bodies []BodyDef
	byName map[string]int
}

// LoadBodies reads a body catalog from path, or the embedded Sol system
// when path is empty. Validation failures are fatal: a bad catalog must
// stop the engine before any entity exists.
func LoadBodies(path string) (*BodyCatalog, error) {
	data := defaultBodiesYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading body catalog: %w", err)
		}
	}

	var doc struct {
		Bodies []BodyDef `yaml:"bodies"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing body catalog: %w", err)
	}

	cat := &BodyCatalog{Bodies: doc.Bodies, byName: make(map[string]int, len(doc.Bodies))}
	for i, b := range doc.Bodies {
		if b.Name == "" {
			return nil, fmt.Errorf("body %d: missing name", i)
		}
		if _, dup := cat.byName[b.Name]; dup {
			return nil, fmt.Errorf("body %q: duplicate name", b.Name)
		}
		cat.byName[b.Name] = i
	}

	for _, b := range doc.Bodies {
		if err := cat.validateBody(b); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Lookup returns the definition for a named body.
func (c *BodyCatalog) Lookup(name string) (BodyDef, bool) {
	i, ok := c.byName[name]
	if !ok {
		return BodyDef{}, false
	}
	return c.Bodies[i], true
}

func (c *BodyCatalog) validateBody(b BodyDef) error {
	typ, err := ParseBodyType(b.Type)
	if err != nil {
		return fmt.Errorf("body %q: %w", b.Name, err)
	}

	if b.Parent != "" {
		if _, ok := c.byName[b.Parent]; !ok {
			return fmt.Errorf("body %q: unknown parent %q", b.Name, b.Parent)
		}
		if b.Orbit.SemiMajorAxisAU <= 0 {
			return fmt.Errorf("body %q: semi-major axis must be positive, got %v",
				b.Name, b.Orbit.SemiMajorAxisAU)
		}
		if b.Orbit.Eccentricity < 0 || b.Orbit.Eccentricity >= 1 {
			return fmt.Errorf("body %q: eccentricity %v outside [0,1)",
				b.Name, b.Orbit.Eccentricity)
		}
	}

	if typ == components.BodyStar {
		if b.Parent != "" {
			return fmt.Errorf("body %q: a star cannot orbit %q", b.Name, b.Parent)
		}
		if b.LuminositySol <= 0 {
			return fmt.Errorf("body %q: star luminosity must be positive, got %v",
				b.Name, b.LuminositySol)
		}
	}

	if b.MassKg <= 0 {
		return fmt.Errorf("body %q: mass must be positive, got %v", b.Name, b.MassKg)
	}
	return nil
}

// ParseBodyType maps a catalog type string to its component enum.
func ParseBodyType(s string) (components.BodyType, error) {
	switch s {
	case "star":
		return components.BodyStar, nil
	case "planet":
		return components.BodyPlanet, nil
	case "gas_giant":
		return components.BodyGasGiant, nil
	case "ice_giant":
		return components.BodyIceGiant, nil
	case "dwarf_planet":
		return components.BodyDwarfPlanet, nil
	case "moon":
		return components.BodyMoon, nil
	case "asteroid":
		return components.BodyAsteroid, nil
	case "comet":
		return components.BodyComet, nil
	default:
		return 0, fmt.Errorf("unknown body type %q", s)
	}
}
