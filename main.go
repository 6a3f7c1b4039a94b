package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Slatibartfas/Helios-Ascension-sub000/catalog"
	"github.com/Slatibartfas/Helios-Ascension-sub000/config"
	"github.com/Slatibartfas/Helios-Ascension-sub000/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "Generation seed (0 = use config, then wall clock)")
	seedPhrase := flag.String("seed-phrase", "", "Generation seed phrase (overrides config phrase)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV reports (overrides config)")
	solOnly := flag.Bool("sol-only", false, "Spawn only the authored Sol catalog, no generated systems")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *seed != 0 {
		cfg.Seed.Value = *seed
	}
	if *seedPhrase != "" {
		cfg.Seed.Value = 0
		cfg.Seed.Phrase = *seedPhrase
	}
	if *outputDir != "" {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Dir = *outputDir
	}

	if err := run(cfg, *maxTicks, *solOnly); err != nil {
		slog.Error("engine failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, maxTicks int, solOnly bool) error {
	g := game.NewGame()
	defer g.Shutdown()

	bodies, err := catalog.LoadBodies(cfg.Catalog.BodiesPath)
	if err != nil {
		return err
	}
	if err := g.LoadCatalog(bodies, 1); err != nil {
		return err
	}
	if err := g.GenerateCatalogResources(bodies, 1); err != nil {
		return err
	}

	if !solOnly {
		stars, err := catalog.LoadStars(cfg.Catalog.StarsPath)
		if err != nil {
			return err
		}
		// The authored catalog already covers system 1 (Sol).
		generated := make([]catalog.StarRecord, 0, len(stars))
		for _, rec := range stars {
			if rec.ID != 1 {
				generated = append(generated, rec)
			}
		}
		if err := g.PopulateFromStars(generated); err != nil {
			return err
		}
	}

	slog.Info("world ready", "bodies", g.BodyCount(), "seed", uint64(g.Seed()))

	out, err := game.NewOutput(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := out.WriteBodies(g.BodyReport()); err != nil {
		return err
	}

	dt := cfg.Derived.EffectiveDT
	flushEvery := cfg.Telemetry.FlushEvery
	start := time.Now()

	for tick := 0; maxTicks == 0 || tick < maxTicks; tick++ {
		g.Step(dt)

		if flushEvery > 0 && g.Tick()%uint64(flushEvery) == 0 {
			if err := out.WritePerf(g.PerfReport()); err != nil {
				return err
			}
		}
	}

	slog.Info("simulation finished",
		"ticks", g.Tick(),
		"sim_time_years", g.SimTime()/(365.25*86400),
		"wall_time", time.Since(start).Round(time.Millisecond))
	return nil
}
