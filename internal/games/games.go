// Package games builds the quantum mini-game circuits and interprets their
// measurement statistics.
package games

import (
	"errors"
	"fmt"
	"math"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
)

var (
	ErrBadBias   = errors.New("bias must be in [0, 1]")
	ErrBadSides  = errors.New("sides must be at least 2")
	ErrBadSteps  = errors.New("steps must be positive")
	ErrBadRange  = errors.New("max must be at least 1")
	ErrBadSecret = errors.New("secret must be in [0, max)")
	ErrBadLength = errors.New("length must be positive")
	ErrBadCanvas = errors.New("canvas must be positive")
)

// bitsFor returns the number of bits needed to represent values in [0, n).
func bitsFor(n int) int {
	bits := 1
	for 1<<bits < n {
		bits++
	}
	return bits
}

// LabelValue decodes an outcome label as an integer, character i carrying
// bit weight 2^i.
func LabelValue(label string) int {
	v := 0
	for i := 0; i < len(label); i++ {
		if label[i] == '1' {
			v |= 1 << i
		}
	}
	return v
}

// CoinFlip returns a one-qubit biased coin. bias is the probability of
// measuring heads ("1"); 0.5 gives a fair flip.
func CoinFlip(bias float64) (*circuit.Circuit, error) {
	if bias < 0 || bias > 1 {
		return nil, fmt.Errorf("%w: %g", ErrBadBias, bias)
	}
	qc := circuit.New("coin-flip", 1, 1)
	qc.RY(2*math.Asin(math.Sqrt(bias)), 0)
	qc.MeasureAll()
	return qc, nil
}

// Dice returns a uniform superposition over enough qubits to cover the die.
// Outcomes decoding to sides or more are rerolls; InterpretDice folds the
// rest into face values.
func Dice(sides int) (*circuit.Circuit, error) {
	if sides < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadSides, sides)
	}
	n := bitsFor(sides)
	qc := circuit.New("dice", n, n)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	qc.MeasureAll()
	return qc, nil
}

// RandomWalk1D builds a coherent quantum walk: a one-hot position register
// of 2*steps+1 qubits with the walker starting at the center cell, plus one
// coin qubit. Each step flips the coin and shifts the walker right on
// |1> and left on |0>; the coin is never measured between steps, so the
// branches interfere. Only the position register is measured.
func RandomWalk1D(steps int) (*circuit.Circuit, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSteps, steps)
	}
	positions := 2*steps + 1
	coin := positions
	center := positions / 2

	qc := circuit.New("random-walk", positions+1, positions)
	qc.X(center)
	for step := 0; step < steps; step++ {
		qc.H(coin)
		for pos := positions - 2; pos >= 0; pos-- {
			coinSwap(qc, coin, pos, pos+1)
		}
		qc.X(coin)
		for pos := 1; pos < positions; pos++ {
			coinSwap(qc, coin, pos, pos-1)
		}
		qc.X(coin)
	}
	for pos := 0; pos < positions; pos++ {
		qc.Measure(pos, pos)
	}
	return qc, nil
}

// coinSwap exchanges two position cells when the coin is set, built from
// three Toffolis. On a one-hot register the adjacent-swap chain acts as a
// conditional shift.
func coinSwap(qc *circuit.Circuit, coin, a, b int) {
	qc.CCX(coin, a, b)
	qc.CCX(coin, b, a)
	qc.CCX(coin, a, b)
}

// WalkPosition decodes a one-hot position label into the walker's
// displacement from the center cell. ok is false when the label is not
// one-hot, which only happens under noise.
func WalkPosition(label string) (pos int, ok bool) {
	idx := -1
	for i := 0; i < len(label); i++ {
		if label[i] == '1' {
			if idx >= 0 {
				return 0, false
			}
			idx = i
		}
	}
	if idx < 0 {
		return 0, false
	}
	return idx - len(label)/2, true
}

// RockPaperScissors returns one two-qubit uniform circuit per player. The
// decoded value mod 3 picks the move.
func RockPaperScissors() (player, computer *circuit.Circuit) {
	build := func(name string) *circuit.Circuit {
		qc := circuit.New(name, 2, 2)
		qc.H(0).H(1).MeasureAll()
		return qc
	}
	return build("rps-player"), build("rps-computer")
}

var rpsMoves = []string{"rock", "paper", "scissors"}

// RPSMove maps an outcome label to a move name.
func RPSMove(label string) string {
	return rpsMoves[LabelValue(label)%3]
}

// MagicSquare returns a three-qubit GHZ circuit whose perfectly correlated
// outcomes drive the parity game round.
func MagicSquare() *circuit.Circuit {
	qc := circuit.New("magic-square", 3, 3)
	qc.H(0).CX(0, 1).CX(0, 2).MeasureAll()
	return qc
}

// NumberGuessing encodes a secret in [0, max) so that every shot reveals
// it: qubit i is flipped when bit i of the secret is set.
func NumberGuessing(secret, max int) (*circuit.Circuit, error) {
	if max < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRange, max)
	}
	if secret < 0 || secret >= max {
		return nil, fmt.Errorf("%w: secret %d, max %d", ErrBadSecret, secret, max)
	}
	n := bitsFor(max)
	qc := circuit.New("number-guessing", n, n)
	for q := 0; q < n; q++ {
		if (secret>>q)&1 == 1 {
			qc.X(q)
		}
	}
	qc.MeasureAll()
	return qc, nil
}

// Lottery returns one uniform draw circuit per ball. Numbers run 1..max;
// InterpretLottery extracts the winning picks from merged counts.
func Lottery(count, max int) ([]*circuit.Circuit, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d draws", ErrBadSteps, count)
	}
	if max < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadRange, max)
	}
	n := bitsFor(max)
	draws := make([]*circuit.Circuit, count)
	for i := range draws {
		qc := circuit.New(fmt.Sprintf("lottery-draw-%d", i+1), n, n)
		for q := 0; q < n; q++ {
			qc.H(q)
		}
		qc.MeasureAll()
		draws[i] = qc
	}
	return draws, nil
}

// passwordBits is the charset index width of one password character.
const passwordBits = 6

// PasswordGenerator returns one six-qubit uniform circuit per password
// character. Characters are drawn independently so the register stays
// small.
func PasswordGenerator(length int) ([]*circuit.Circuit, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	chars := make([]*circuit.Circuit, length)
	for i := range chars {
		qc := circuit.New(fmt.Sprintf("password-char-%d", i+1), passwordBits, passwordBits)
		for q := 0; q < passwordBits; q++ {
			qc.H(q)
		}
		qc.MeasureAll()
		chars[i] = qc
	}
	return chars, nil
}

// artBits is the intensity width of one canvas cell.
const artBits = 3

// ArtGenerator returns one three-qubit circuit per canvas cell. A rotation
// that grows across the canvas biases later cells brighter.
func ArtGenerator(canvas int) ([]*circuit.Circuit, error) {
	if canvas < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCanvas, canvas)
	}
	cells := make([]*circuit.Circuit, canvas)
	for i := range cells {
		qc := circuit.New(fmt.Sprintf("art-cell-%d", i+1), artBits, artBits)
		theta := math.Pi * float64(i+1) / float64(canvas+1)
		for q := 0; q < artBits; q++ {
			qc.RY(theta, q)
		}
		qc.MeasureAll()
		cells[i] = qc
	}
	return cells, nil
}
