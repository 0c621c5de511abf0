package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevincoe/quantum-computing-project/internal/display"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

var compareRate float64

var compareCmd = &cobra.Command{
	Use:   "compare [demo]",
	Short: "Run a demo with and without noise and report the distance",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "bell"
		if len(args) == 1 {
			name = args[0]
		}
		qc, err := buildDemo(name)
		if err != nil {
			return err
		}

		r := newRunner()
		ideal, noisy, err := r.CompareWithIdeal(cmd.Context(), qc, flagShots, compareRate)
		if err != nil {
			return err
		}

		tvd, err := stats.TotalVariationDistance(ideal.Counts, noisy.Counts, ideal.Shots, noisy.Shots)
		if err != nil {
			return err
		}

		idealRep, err := stats.Summarize(ideal.Counts, qc.Name+" (ideal)")
		if err != nil {
			return err
		}
		noisyRep, err := stats.Summarize(noisy.Counts, qc.Name+" (noisy)")
		if err != nil {
			return err
		}
		fmt.Println(display.RenderComparison(idealRep, noisyRep, tvd))
		return nil
	},
}

func init() {
	addDemoFlags(compareCmd)
	compareCmd.Flags().Float64Var(&compareRate, "rate", 0.02, "depolarizing rate for the noisy run")
}
