package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepRates []float64

var sweepCmd = &cobra.Command{
	Use:   "sweep [demo]",
	Short: "Run a demo across noise levels and report drift from the noiseless run",
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
		rows, err := r.NoiseSweep(cmd.Context(), qc, flagShots, sweepRates)
		if err != nil {
			return err
		}

		fmt.Printf("%-10s %-10s %s\n", "rate", "outcomes", "tvd vs ideal")
		for _, row := range rows {
			fmt.Printf("%-10g %-10d %.4f\n", row.Rate, row.UniqueOutcomes, row.DistanceToIdeal)
		}
		return nil
	},
}

func init() {
	addDemoFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&sweepRates, "rates", []float64{0.01, 0.02, 0.05}, "depolarizing rates to sweep")
}
