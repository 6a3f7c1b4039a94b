package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Slatibartfas/Helios-Ascension-sub000/components"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBodies_EmbeddedSol(t *testing.T) {
	cat, err := LoadBodies("")
	if err != nil {
		t.Fatalf("loading embedded catalog: %v", err)
	}

	sol, ok := cat.Lookup("Sol")
	if !ok {
		t.Fatal("embedded catalog missing Sol")
	}
	if typ, _ := ParseBodyType(sol.Type); typ != components.BodyStar {
		t.Errorf("Sol type = %q", sol.Type)
	}
	if sol.LuminositySol != 1.0 {
		t.Errorf("Sol luminosity = %v", sol.LuminositySol)
	}

	earth, ok := cat.Lookup("Earth")
	if !ok {
		t.Fatal("embedded catalog missing Earth")
	}
	if earth.Parent != "Sol" {
		t.Errorf("Earth parent = %q", earth.Parent)
	}
	if earth.Orbit.SemiMajorAxisAU != 1.0 {
		t.Errorf("Earth a = %v AU", earth.Orbit.SemiMajorAxisAU)
	}

	luna, ok := cat.Lookup("Luna")
	if !ok {
		t.Fatal("embedded catalog missing Luna")
	}
	if luna.Parent != "Earth" {
		t.Errorf("Luna parent = %q, want Earth", luna.Parent)
	}
}

func TestLoadBodies_UnknownParent(t *testing.T) {
	path := writeTemp(t, "bad.yaml", `
bodies:
  - name: Ghost
    type: planet
    parent: Nothing
    mass_kg: 1.0e24
    orbit:
      semi_major_axis_au: 1.0
`)
	if _, err := LoadBodies(path); err == nil {
		t.Error("expected unknown-parent error")
	}
}

func TestLoadBodies_InvalidOrbit(t *testing.T) {
	cases := []struct {
		name  string
		orbit string
	}{
		{"hyperbolic", "semi_major_axis_au: 1.0\n      eccentricity: 1.5"},
		{"zero axis", "semi_major_axis_au: 0"},
		{"negative axis", "semi_major_axis_au: -2.0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "bad.yaml", `
bodies:
  - name: Host
    type: star
    mass_kg: 2.0e30
    luminosity_sol: 1.0
  - name: Wanderer
    type: planet
    parent: Host
    mass_kg: 1.0e24
    orbit:
      `+tc.orbit+"\n")
			if _, err := LoadBodies(path); err == nil {
				t.Error("expected orbit validation error")
			}
		})
	}
}

func TestLoadBodies_StarConstraints(t *testing.T) {
	path := writeTemp(t, "dark.yaml", `
bodies:
  - name: Dark
    type: star
    mass_kg: 2.0e30
    luminosity_sol: 0
`)
	if _, err := LoadBodies(path); err == nil {
		t.Error("expected luminosity validation error")
	}
}

func TestLoadBodies_DuplicateName(t *testing.T) {
	path := writeTemp(t, "dup.yaml", `
bodies:
  - name: Twin
    type: star
    mass_kg: 2.0e30
    luminosity_sol: 1.0
  - name: Twin
    type: star
    mass_kg: 2.0e30
    luminosity_sol: 1.0
`)
	if _, err := LoadBodies(path); err == nil {
		t.Error("expected duplicate-name error")
	}
}

func TestLoadBodies_UnknownFieldsIgnored(t *testing.T) {
	path := writeTemp(t, "extra.yaml", `
bodies:
  - name: Host
    type: star
    mass_kg: 2.0e30
    luminosity_sol: 1.0
    editor_note: authored by hand
`)
	if _, err := LoadBodies(path); err != nil {
		t.Errorf("unknown fields should be ignored: %v", err)
	}
}

func TestLoadStars_EmbeddedTable(t *testing.T) {
	stars, err := LoadStars("")
	if err != nil {
		t.Fatalf("loading embedded star table: %v", err)
	}
	if len(stars) == 0 {
		t.Fatal("embedded table is empty")
	}

	var wolf *StarRecord
	for i := range stars {
		if stars[i].Name == "Wolf 359" {
			wolf = &stars[i]
		}
	}
	if wolf == nil {
		t.Fatal("embedded table missing Wolf 359")
	}
	if wolf.Metallicity != nil {
		t.Error("Wolf 359 metallicity should be unset in the table")
	}
}

func TestLoadStars_Validation(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"zero luminosity", "id,name,luminosity_sol,spectral,metallicity\n1,Dead,0,G2V,0.0\n"},
		{"duplicate id", "id,name,luminosity_sol,spectral,metallicity\n1,A,1.0,G2V,\n1,B,1.0,G2V,\n"},
		{"missing name", "id,name,luminosity_sol,spectral,metallicity\n1,,1.0,G2V,\n"},
		{"empty", "id,name,luminosity_sol,spectral,metallicity\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "stars.csv", tc.csv)
			if _, err := LoadStars(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
