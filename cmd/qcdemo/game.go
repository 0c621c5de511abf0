package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/games"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

var (
	flagBias     float64
	flagSides    int
	flagSteps    int
	flagMax      int
	flagGuess    int
	flagPicks    int
	flagLength   int
	flagCanvas   int
	flagArtWidth int
)

var gameCmd = &cobra.Command{
	Use:       "game [coin|dice|walk|rps|magic|guess|lottery|password|art]",
	Short:     "Play a quantum mini-game",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"coin", "dice", "walk", "rps", "magic", "guess", "lottery", "password", "art"},
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRunner()
		ctx := cmd.Context()

		runOne := func(qc *circuit.Circuit) (stats.Counts, error) {
			res, err := r.Run(ctx, qc, flagShots)
			if err != nil {
				return nil, err
			}
			return res.Counts, nil
		}

		runEach := func(circuits []*circuit.Circuit) ([]stats.Counts, error) {
			all := make([]stats.Counts, len(circuits))
			for i, qc := range circuits {
				counts, err := runOne(qc)
				if err != nil {
					return nil, err
				}
				all[i] = counts
			}
			return all, nil
		}

		switch args[0] {
		case "coin":
			qc, err := games.CoinFlip(flagBias)
			if err != nil {
				return err
			}
			counts, err := runOne(qc)
			if err != nil {
				return err
			}
			return printReport(counts, fmt.Sprintf("coin flip (bias %.2f)", flagBias))

		case "dice":
			qc, err := games.Dice(flagSides)
			if err != nil {
				return err
			}
			counts, err := runOne(qc)
			if err != nil {
				return err
			}
			return printReport(games.InterpretDice(counts, flagSides), fmt.Sprintf("d%d roll", flagSides))

		case "walk":
			qc, err := games.RandomWalk1D(flagSteps)
			if err != nil {
				return err
			}
			counts, err := runOne(qc)
			if err != nil {
				return err
			}
			positions := make(stats.Counts)
			for label, c := range counts {
				if pos, ok := games.WalkPosition(label); ok {
					positions[fmt.Sprintf("%+d", pos)] += c
				}
			}
			return printReport(positions, fmt.Sprintf("random walk, %d steps", flagSteps))

		case "rps":
			player, computer := games.RockPaperScissors()
			pc, err := runOne(player)
			if err != nil {
				return err
			}
			cc, err := runOne(computer)
			if err != nil {
				return err
			}
			pm := games.RPSMove(stats.RankByFrequency(pc, 1)[0].Outcome)
			cm := games.RPSMove(stats.RankByFrequency(cc, 1)[0].Outcome)
			fmt.Printf("player: %s   computer: %s\n", pm, cm)
			return nil

		case "magic":
			counts, err := runOne(games.MagicSquare())
			if err != nil {
				return err
			}
			return printReport(counts, "magic square round")

		case "guess":
			qc, err := games.NumberGuessing(flagGuess, flagMax)
			if err != nil {
				return err
			}
			counts, err := runOne(qc)
			if err != nil {
				return err
			}
			winner := stats.RankByFrequency(counts, 1)[0].Outcome
			fmt.Printf("the register says: %d\n", games.LabelValue(winner))
			return nil

		case "lottery":
			draws, err := games.Lottery(flagPicks, flagMax)
			if err != nil {
				return err
			}
			merged := make(stats.Counts)
			for _, qc := range draws {
				counts, err := runOne(qc)
				if err != nil {
					return err
				}
				for label, c := range counts {
					merged[label] += c
				}
			}
			fmt.Printf("winning numbers: %v\n", games.InterpretLottery(merged, flagPicks, flagMax))
			return nil

		case "password":
			chars, err := games.PasswordGenerator(flagLength)
			if err != nil {
				return err
			}
			perChar, err := runEach(chars)
			if err != nil {
				return err
			}
			fmt.Printf("generated password: %s\n", games.InterpretPassword(perChar))
			return nil

		case "art":
			cells, err := games.ArtGenerator(flagCanvas)
			if err != nil {
				return err
			}
			perCell, err := runEach(cells)
			if err != nil {
				return err
			}
			fmt.Println(games.InterpretArt(perCell, flagArtWidth))
			return nil
		}
		return fmt.Errorf("unknown game %q", args[0])
	},
}

func init() {
	f := gameCmd.Flags()
	f.Float64Var(&flagBias, "bias", 0.5, "heads probability (coin)")
	f.IntVar(&flagSides, "sides", 6, "die faces (dice)")
	f.IntVar(&flagSteps, "steps", 4, "walk length (walk)")
	f.IntVar(&flagMax, "max", 16, "value range (guess, lottery)")
	f.IntVar(&flagGuess, "number", 7, "hidden number (guess)")
	f.IntVar(&flagPicks, "picks", 5, "numbers drawn (lottery)")
	f.IntVar(&flagLength, "length", 8, "password length (password)")
	f.IntVar(&flagCanvas, "canvas", 32, "canvas cells (art)")
	f.IntVar(&flagArtWidth, "width", 8, "cells per row (art)")
}
