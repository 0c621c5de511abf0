package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

var (
	analyzeExpected string
	analyzeTitle    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <counts.json>",
	Short: "Analyze an externally produced outcome count map",
	Long: `Reads a JSON object mapping outcome labels to shot counts, for example
{"00": 512, "11": 488}, and prints the summary report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var counts stats.Counts
		if err := json.Unmarshal(raw, &counts); err != nil {
			return fmt.Errorf("parsing counts: %w", err)
		}

		if analyzeExpected != "" {
			fid, err := stats.Fidelity(analyzeExpected, counts)
			if err != nil {
				return err
			}
			fmt.Printf("fidelity(%s) = %.4f\n", analyzeExpected, fid)
		}
		return printReport(counts, analyzeTitle)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeExpected, "expected", "", "outcome label to score fidelity against")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "measurement statistics", "report title")
}
