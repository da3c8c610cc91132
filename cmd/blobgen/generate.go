package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/blobgraph/metrics"
	"github.com/katalvlaran/blobgraph/worldgen"
)

type generateFlags struct {
	cfg         worldgen.Config
	verbose     bool
	metricsFile string
	noColour    bool
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{cfg: worldgen.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and condition one world",
		Long: `Generate one world and print its regions.

Examples:
  blobgen generate --seed 42
  blobgen generate --width 300 --height 200 --noise perlin --sea-level 0.4
  blobgen generate --metrics-file /var/lib/node_exporter/blobgen.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.cfg.Width, "width", f.cfg.Width, "Map width")
	fl.Float64Var(&f.cfg.Height, "height", f.cfg.Height, "Map height")
	fl.Float64VarP(&f.cfg.Radius, "radius", "r", f.cfg.Radius, "Minimum distance between cell sites")
	fl.Int64VarP(&f.cfg.Seed, "seed", "s", f.cfg.Seed, "Random seed")
	fl.StringVar(&f.cfg.Noise, "noise", f.cfg.Noise, "Height noise: simplex or perlin")
	fl.Float64Var(&f.cfg.Frequency, "frequency", f.cfg.Frequency, "Noise frequency")
	fl.IntVar(&f.cfg.Octaves, "octaves", f.cfg.Octaves, "Noise octaves")
	fl.BoolVar(&f.cfg.Falloff, "falloff", f.cfg.Falloff, "Fade land out towards the map edge")
	fl.Float64Var(&f.cfg.SeaLevel, "sea-level", f.cfg.SeaLevel, "Land threshold in [0,1]")
	fl.IntVar(&f.cfg.WaterSeeds, "water-seeds", f.cfg.WaterSeeds, "Initial water colours")
	fl.IntVar(&f.cfg.LandSeeds, "land-seeds", f.cfg.LandSeeds, "Initial land colours")
	fl.IntVarP(&f.cfg.MaxIterations, "max-iterations", "n", f.cfg.MaxIterations, "Conditioning pass budget")
	fl.IntVar(&f.cfg.SmallRegion, "small-region", f.cfg.SmallRegion, "Regions at or below this size are merged rather than fed")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log every stage at debug level")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	fl.BoolVar(&f.noColour, "no-colour", false, "Do not print colour swatches")

	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	log, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	out, err := worldgen.Generate(cmd.Context(), f.cfg, worldgen.WithLogger(log), worldgen.WithRecorder(rec))
	if err != nil {
		return err
	}

	colourise := !f.noColour && isTerminal(cmd.OutOrStdout())
	if err = writeReport(cmd.OutOrStdout(), out, colourise); err != nil {
		return err
	}

	if f.metricsFile != "" {
		if err = metrics.WriteTextfile(f.metricsFile, reg); err != nil {
			return err
		}
		log.Info("metrics written", zap.String("path", f.metricsFile))
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// isTerminal reports whether w is a terminal. Anything but an *os.File is not.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
