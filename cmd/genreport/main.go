// Command genreport generates every star system for a seed and dumps
// the full body roster to CSV, without running the simulation loop.
// Useful for eyeballing what a seed produces and for diffing generator
// changes.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Slatibartfas/Helios-Ascension-sub000/catalog"
	"github.com/Slatibartfas/Helios-Ascension-sub000/config"
	"github.com/Slatibartfas/Helios-Ascension-sub000/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 42, "Generation seed")
	starsPath := flag.String("stars", "", "Star table CSV (empty = embedded table)")
	outDir := flag.String("out", "genreport", "Output directory for report.csv")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	cfg.Seed.Value = *seed
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Dir = *outDir

	if err := run(cfg, *starsPath); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, starsPath string) error {
	stars, err := catalog.LoadStars(starsPath)
	if err != nil {
		return err
	}

	g := game.NewGame()
	defer g.Shutdown()

	if err := g.PopulateFromStars(stars); err != nil {
		return err
	}
	// One step at epoch so every body has a resolved position.
	g.Step(0)

	out, err := game.NewOutput(cfg.Telemetry)
	if err != nil {
		return err
	}
	defer out.Close()

	report := g.BodyReport()
	if err := out.WriteBodies(report); err != nil {
		return err
	}

	slog.Info("report written",
		"dir", cfg.Telemetry.Dir,
		"systems", len(stars),
		"bodies", len(report),
		"seed", uint64(g.Seed()))
	return nil
}
