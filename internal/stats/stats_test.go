package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalShots(t *testing.T) {
	assert.Equal(t, 0, Counts{}.TotalShots())
	assert.Equal(t, 1000, Counts{"00": 500, "11": 500}.TotalShots())
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		want   float64
	}{
		{"fifty fifty", Counts{"00": 500, "11": 500}, 1.0},
		{"single outcome", Counts{"00": 1000}, 0.0},
		{"uniform four", Counts{"00": 250, "01": 250, "10": 250, "11": 250}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Entropy(tt.counts)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEntropyZeroCountLabelIgnored(t *testing.T) {
	withZero, err := Entropy(Counts{"00": 500, "01": 0, "11": 500})
	require.NoError(t, err)
	without, err := Entropy(Counts{"00": 500, "11": 500})
	require.NoError(t, err)
	assert.InDelta(t, without, withZero, 1e-12)
}

func TestEntropyErrors(t *testing.T) {
	_, err := Entropy(Counts{})
	assert.ErrorIs(t, err, ErrNoCounts)

	_, err = Entropy(Counts{"00": -5, "11": 5})
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = Entropy(Counts{"00": 0})
	assert.ErrorIs(t, err, ErrNoShots)
}

func TestFidelity(t *testing.T) {
	counts := Counts{"00": 500, "11": 500}

	got, err := Fidelity("00", counts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)

	got, err = Fidelity("00", Counts{"00": 1000})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestFidelityAbsentLabelIsZero(t *testing.T) {
	got, err := Fidelity("01", Counts{"00": 500, "11": 500})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestFidelityErrors(t *testing.T) {
	_, err := Fidelity("00", Counts{})
	assert.ErrorIs(t, err, ErrNoCounts)
}

func TestTotalVariationDistance(t *testing.T) {
	a := Counts{"00": 750, "01": 250}
	b := Counts{"00": 250, "01": 750}

	got, err := TotalVariationDistance(a, b, 1000, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

func TestTotalVariationDistanceSymmetric(t *testing.T) {
	a := Counts{"00": 600, "01": 300, "10": 100}
	b := Counts{"00": 100, "11": 900}

	ab, err := TotalVariationDistance(a, b, 1000, 1000)
	require.NoError(t, err)
	ba, err := TotalVariationDistance(b, a, 1000, 1000)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

func TestTotalVariationDistanceIdentical(t *testing.T) {
	a := Counts{"00": 500, "11": 500}
	got, err := TotalVariationDistance(a, a, 1000, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestTotalVariationDistanceDisjoint(t *testing.T) {
	got, err := TotalVariationDistance(Counts{"00": 10}, Counts{"11": 10}, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestTotalVariationDistanceErrors(t *testing.T) {
	_, err := TotalVariationDistance(Counts{"00": 1}, Counts{"00": 1}, 0, 1)
	assert.ErrorIs(t, err, ErrNoShots)

	_, err = TotalVariationDistance(Counts{"00": 1}, Counts{"00": 1}, 1, -3)
	assert.ErrorIs(t, err, ErrNoShots)
}

func TestRankByFrequency(t *testing.T) {
	counts := Counts{"10": 100, "00": 400, "11": 100, "01": 400}

	ranked := RankByFrequency(counts, len(counts))
	require.Len(t, ranked, 4)
	assert.Equal(t, "00", ranked[0].Outcome)
	assert.Equal(t, "01", ranked[1].Outcome)
	assert.Equal(t, "10", ranked[2].Outcome)
	assert.Equal(t, "11", ranked[3].Outcome)
}

func TestRankByFrequencyTopK(t *testing.T) {
	counts := Counts{"00": 400, "01": 300, "10": 200, "11": 100}

	ranked := RankByFrequency(counts, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, OutcomeCount{Outcome: "00", Count: 400}, ranked[0])
	assert.Equal(t, OutcomeCount{Outcome: "01", Count: 300}, ranked[1])

	assert.Len(t, RankByFrequency(counts, 100), 4)
	assert.Empty(t, RankByFrequency(counts, 0))
	assert.Empty(t, RankByFrequency(counts, -1))
	assert.Empty(t, RankByFrequency(Counts{}, 5))
}

func TestSummarize(t *testing.T) {
	rep, err := Summarize(Counts{"00": 500, "11": 500}, "bell")
	require.NoError(t, err)

	assert.Equal(t, "bell", rep.Title)
	assert.Equal(t, 1000, rep.TotalShots)
	assert.Equal(t, 2, rep.UniqueOutcomes)
	assert.InDelta(t, 1.0, rep.EntropyBits, 1e-12)

	require.Len(t, rep.Breakdown, 2)
	assert.Equal(t, "00", rep.Breakdown[0].Outcome)
	assert.InDelta(t, 0.5, rep.Breakdown[0].Probability, 1e-12)
	assert.Equal(t, "11", rep.Breakdown[1].Outcome)
}

func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(nil, "empty")
	assert.ErrorIs(t, err, ErrNoCounts)
}
