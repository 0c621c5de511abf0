package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/kevincoe/quantum-computing-project/internal/algorithms"
	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/display"
)

var (
	flagSecret    string
	flagMarked    []string
	flagQubits    int
	flagOracle    string
	flagTheta     float64
	flagPower     float64
	flagPrecision int
	flagQASM      bool
	flagResources bool
)

var demoNames = []string{"bell", "teleport", "grover", "qft", "bv", "dj", "simon", "qpe"}

var demoCmd = &cobra.Command{
	Use:       "demo [bell|teleport|grover|qft|bv|dj|simon|qpe|all]",
	Short:     "Run an algorithm demo and analyze its outcome statistics",
	Args:      cobra.ExactArgs(1),
	ValidArgs: append(demoNames, "all"),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := []string{args[0]}
		if args[0] == "all" {
			names = demoNames
		}

		r := newRunner()
		for _, name := range names {
			qc, err := buildDemo(name)
			if err != nil {
				return err
			}
			if flagQASM {
				fmt.Println(qc.ToQASM())
				continue
			}
			if flagResources {
				fmt.Println(display.RenderResources(qc.Name, qc.Resources()))
			}
			res, err := r.Run(cmd.Context(), qc, flagShots)
			if err != nil {
				return err
			}
			if err := printReport(res.Counts, qc.Name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	addDemoFlags(demoCmd)
	demoCmd.Flags().BoolVar(&flagQASM, "qasm", false, "print OpenQASM 2.0 instead of running")
	demoCmd.Flags().BoolVar(&flagResources, "resources", false, "print the circuit resource estimate")
}

// addDemoFlags registers the circuit-shaping flags shared by every command
// that builds a demo circuit. The flags bind to one set of globals, so the
// last parsed command wins.
func addDemoFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagSecret, "secret", "101", "hidden bit string (bv, simon)")
	f.StringSliceVar(&flagMarked, "marked", []string{"101"}, "marked items (grover)")
	f.IntVar(&flagQubits, "qubits", 3, "register size (qft, dj)")
	f.StringVar(&flagOracle, "oracle", "balanced", "oracle kind (dj): constant or balanced")
	f.Float64Var(&flagTheta, "theta", math.Pi/3, "prepared state angle (teleport)")
	f.Float64Var(&flagPower, "power", 1, "unitary phase power (qpe)")
	f.IntVar(&flagPrecision, "precision", 3, "counting qubits (qpe)")
}

// buildDemo maps a demo name to its circuit.
func buildDemo(name string) (*circuit.Circuit, error) {
	switch name {
	case "bell":
		return algorithms.BellState(), nil
	case "teleport":
		return algorithms.Teleportation(flagTheta), nil
	case "grover":
		return algorithms.GroverSearch(flagMarked)
	case "qft":
		return algorithms.QFT(flagQubits)
	case "bv":
		return algorithms.BernsteinVazirani(flagSecret)
	case "dj":
		return algorithms.DeutschJozsa(flagOracle, flagQubits)
	case "simon":
		return algorithms.Simon(flagSecret)
	case "qpe":
		return algorithms.PhaseEstimation(flagPower, flagPrecision)
	default:
		return nil, fmt.Errorf("unknown demo %q", name)
	}
}
