package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kevincoe/quantum-computing-project/internal/config"
	"github.com/kevincoe/quantum-computing-project/internal/display"
	"github.com/kevincoe/quantum-computing-project/internal/runner"
	"github.com/kevincoe/quantum-computing-project/internal/sim"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
	"github.com/kevincoe/quantum-computing-project/pkg/logger"
)

var (
	flagShots    int
	flagSeed     int64
	flagNoise    float64
	flagLogLevel string
	flagPretty   bool
	flagJSON     bool

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "qcdemo",
	Short: "Quantum circuit demos, games, and measurement statistics",
	Long: `qcdemo runs textbook quantum algorithms and mini-games on a local
statevector simulator and analyzes the measurement statistics: entropy,
fidelity against an expected outcome, total variation distance, and
frequency-ranked histograms.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(logger.Config{Level: flagLogLevel, Pretty: flagPretty})
	},
}

func init() {
	cfg = config.Load()

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagShots, "shots", cfg.Shots, "measurement shots per circuit")
	pf.Int64Var(&flagSeed, "seed", cfg.Seed, "simulator seed, 0 for random")
	pf.Float64Var(&flagNoise, "noise", cfg.NoiseRate, "depolarizing noise rate, 0 disables")
	pf.StringVar(&flagLogLevel, "log-level", cfg.LogLevel, "log level")
	pf.BoolVar(&flagPretty, "pretty", cfg.LogPretty, "human-readable log output")
	pf.BoolVar(&flagJSON, "json", false, "emit reports as JSON")

	rootCmd.AddCommand(demoCmd, gameCmd, compareCmd, benchCmd, sweepCmd, analyzeCmd)
}

// newRunner builds a runner over a freshly configured simulator.
func newRunner() *runner.Runner {
	opts := []sim.Option{sim.WithMaxQubits(cfg.MaxQubits)}
	if flagSeed != 0 || cfg.SeedSet {
		opts = append(opts, sim.WithSeed(flagSeed))
	}
	if flagNoise > 0 {
		opts = append(opts, sim.WithNoise(sim.Depolarizing(flagNoise)))
	}
	return runner.New(sim.New(opts...), log)
}

// printReport renders a summarized counts map on stdout.
func printReport(counts stats.Counts, title string) error {
	rep, err := stats.Summarize(counts, title)
	if err != nil {
		return err
	}
	if flagJSON {
		out, err := display.ReportJSON(rep)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(display.RenderReport(rep))
	return nil
}
