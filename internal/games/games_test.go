package games

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/sim"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

func run(t *testing.T, qc *circuit.Circuit, shots int) stats.Counts {
	t.Helper()
	counts, err := sim.New(sim.WithSeed(1)).Execute(context.Background(), qc, shots)
	require.NoError(t, err)
	return counts
}

func TestLabelValue(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"0", 0},
		{"1", 1},
		{"01", 2},
		{"11", 3},
		{"0011", 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelValue(tt.label), "label %q", tt.label)
	}
}

func TestCoinFlipExtremes(t *testing.T) {
	heads, err := CoinFlip(1)
	require.NoError(t, err)
	counts := run(t, heads, 200)
	assert.Equal(t, 200, counts["1"])

	tails, err := CoinFlip(0)
	require.NoError(t, err)
	counts = run(t, tails, 200)
	assert.Equal(t, 200, counts["0"])
}

func TestCoinFlipFair(t *testing.T) {
	qc, err := CoinFlip(0.5)
	require.NoError(t, err)

	counts := run(t, qc, 2000)
	assert.Greater(t, counts["0"], 800)
	assert.Greater(t, counts["1"], 800)
}

func TestCoinFlipValidation(t *testing.T) {
	_, err := CoinFlip(-0.1)
	assert.ErrorIs(t, err, ErrBadBias)

	_, err = CoinFlip(1.1)
	assert.ErrorIs(t, err, ErrBadBias)
}

func TestDice(t *testing.T) {
	qc, err := Dice(6)
	require.NoError(t, err)
	assert.Equal(t, 3, qc.NumQubits)

	counts := run(t, qc, 4000)
	assert.Len(t, counts, 8)

	_, err = Dice(1)
	assert.ErrorIs(t, err, ErrBadSides)
}

func TestInterpretDice(t *testing.T) {
	counts := stats.Counts{
		"000": 10, // 1
		"100": 7,  // 2
		"011": 4,  // 7th value, reroll for a d6
		"111": 5,  // 8th value, reroll
	}
	faces := InterpretDice(counts, 6)
	assert.Equal(t, stats.Counts{"1": 10, "2": 7}, faces)
}

func TestWalkPosition(t *testing.T) {
	tests := []struct {
		label string
		pos   int
		ok    bool
	}{
		{"100", -1, true},
		{"010", 0, true},
		{"001", 1, true},
		{"00001", 2, true},
		{"000", 0, false},
		{"101", 0, false},
	}
	for _, tt := range tests {
		pos, ok := WalkPosition(tt.label)
		assert.Equal(t, tt.ok, ok, "label %q", tt.label)
		assert.Equal(t, tt.pos, pos, "label %q", tt.label)
	}
}

func TestRandomWalkSingleStep(t *testing.T) {
	qc, err := RandomWalk1D(1)
	require.NoError(t, err)
	assert.Equal(t, 4, qc.NumQubits, "3 position cells plus the coin")

	counts := run(t, qc, 1000)
	for label := range counts {
		assert.Contains(t, []string{"100", "001"}, label, "one step moves exactly one cell")
	}
	assert.Greater(t, counts["100"], 300)
	assert.Greater(t, counts["001"], 300)
}

func TestRandomWalkStaysOneHot(t *testing.T) {
	qc, err := RandomWalk1D(2)
	require.NoError(t, err)

	counts := run(t, qc, 1000)
	for label := range counts {
		pos, ok := WalkPosition(label)
		require.True(t, ok, "outcome %q is not one-hot", label)
		assert.Contains(t, []int{-2, 0, 2}, pos, "two steps keep even parity")
	}
}

func TestRandomWalkValidation(t *testing.T) {
	_, err := RandomWalk1D(0)
	assert.ErrorIs(t, err, ErrBadSteps)
}

func TestRPSMove(t *testing.T) {
	assert.Equal(t, "rock", RPSMove("00"))
	assert.Equal(t, "paper", RPSMove("10"))
	assert.Equal(t, "scissors", RPSMove("01"))
	assert.Equal(t, "rock", RPSMove("11"))
}

func TestMagicSquareCorrelations(t *testing.T) {
	counts := run(t, MagicSquare(), 1000)
	for label := range counts {
		assert.Contains(t, []string{"000", "111"}, label)
	}
}

func TestNumberGuessingRevealsSecret(t *testing.T) {
	qc, err := NumberGuessing(7, 16)
	require.NoError(t, err)

	counts := run(t, qc, 300)
	assert.Equal(t, 300, counts["1110"])
	assert.Equal(t, 7, LabelValue("1110"))
}

func TestNumberGuessingValidation(t *testing.T) {
	_, err := NumberGuessing(16, 16)
	assert.ErrorIs(t, err, ErrBadSecret)

	_, err = NumberGuessing(-1, 16)
	assert.ErrorIs(t, err, ErrBadSecret)

	_, err = NumberGuessing(0, 0)
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestLottery(t *testing.T) {
	draws, err := Lottery(5, 49)
	require.NoError(t, err)
	assert.Len(t, draws, 5)
	for _, qc := range draws {
		assert.Equal(t, 6, qc.NumQubits)
	}

	_, err = Lottery(0, 49)
	assert.ErrorIs(t, err, ErrBadSteps)
}

func TestInterpretLottery(t *testing.T) {
	counts := stats.Counts{
		"00": 5, // 1
		"10": 8, // 2
		"01": 9, // 3
		"11": 2, // 4, beyond max
	}
	assert.Equal(t, []int{3, 2}, InterpretLottery(counts, 2, 3))
}

func TestPasswordGenerator(t *testing.T) {
	chars, err := PasswordGenerator(8)
	require.NoError(t, err)
	assert.Len(t, chars, 8)
	for _, qc := range chars {
		assert.Equal(t, passwordBits, qc.NumQubits)
	}

	_, err = PasswordGenerator(0)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestInterpretPassword(t *testing.T) {
	perChar := []stats.Counts{
		{"000000": 90, "111111": 10},
		{"100000": 80, "000000": 20},
	}
	assert.Equal(t, "AB", InterpretPassword(perChar))
}

func TestArtGenerator(t *testing.T) {
	cells, err := ArtGenerator(16)
	require.NoError(t, err)
	assert.Len(t, cells, 16)

	_, err = ArtGenerator(0)
	assert.ErrorIs(t, err, ErrBadCanvas)
}

func TestInterpretArt(t *testing.T) {
	perCell := []stats.Counts{
		{"000": 10},
		{"111": 10},
		{"000": 10},
		{"111": 10},
	}
	assert.Equal(t, " #\n #", InterpretArt(perCell, 2))
}
