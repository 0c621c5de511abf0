package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var benchShots []int

var benchCmd = &cobra.Command{
	Use:   "bench [demo]",
	Short: "Sweep a demo over shot counts and report timing and entropy",
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
		rows, err := r.Benchmark(cmd.Context(), qc, benchShots)
		if err != nil {
			return err
		}

		fmt.Printf("%-10s %-14s %-10s %s\n", "shots", "elapsed", "outcomes", "entropy (bits)")
		for _, row := range rows {
			fmt.Printf("%-10d %-14s %-10d %.4f\n",
				row.Shots, row.Elapsed, row.UniqueOutcomes, row.EntropyBits)
		}
		return nil
	},
}

func init() {
	addDemoFlags(benchCmd)
	benchCmd.Flags().IntSliceVar(&benchShots, "shot-counts", []int{100, 1000, 10000}, "shot counts to sweep")
}
