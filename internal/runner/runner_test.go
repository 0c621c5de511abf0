package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/sim"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

// fakeBackend records what it was asked to run and returns canned counts.
type fakeBackend struct {
	executed []*circuit.Circuit
	counts   stats.Counts
	err      error
}

func (f *fakeBackend) Name() string   { return "fake" }
func (f *fakeBackend) MaxQubits() int { return 8 }

func (f *fakeBackend) Execute(ctx context.Context, qc *circuit.Circuit, shots int) (stats.Counts, error) {
	f.executed = append(f.executed, qc)
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func newTestRunner(fb *fakeBackend) *Runner {
	return New(fb, zerolog.Nop())
}

func TestRunProducesResult(t *testing.T) {
	fb := &fakeBackend{counts: stats.Counts{"00": 60, "11": 40}}
	r := newTestRunner(fb)

	qc := circuit.New("bell", 2, 2).H(0).CX(0, 1).MeasureAll()
	res, err := r.Run(context.Background(), qc, 100)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "bell", res.Circuit)
	assert.Equal(t, "fake", res.Backend)
	assert.Equal(t, 100, res.Shots)
	assert.Equal(t, fb.counts, res.Counts)
}

func TestRunEnsuresMeasurements(t *testing.T) {
	fb := &fakeBackend{counts: stats.Counts{"0": 1}}
	r := newTestRunner(fb)

	bare := circuit.New("bare", 1, 0).H(0)
	_, err := r.Run(context.Background(), bare, 1)
	require.NoError(t, err)

	require.Len(t, fb.executed, 1)
	assert.True(t, fb.executed[0].HasMeasurements())
	assert.False(t, bare.HasMeasurements(), "caller's circuit must not be mutated")
}

func TestRunPropagatesBackendError(t *testing.T) {
	boom := errors.New("boom")
	r := newTestRunner(&fakeBackend{err: boom})

	_, err := r.Run(context.Background(), circuit.New("x", 1, 1).X(0).MeasureAll(), 10)
	assert.ErrorIs(t, err, boom)
}

func TestExecStatsValueSemantics(t *testing.T) {
	var es ExecStats

	first := es.Record(&Result{Shots: 100, Elapsed: 10})
	second := first.Record(&Result{Shots: 300, Elapsed: 30})

	assert.Zero(t, es.Circuits, "original value must be untouched")
	assert.Equal(t, 1, first.Circuits)
	assert.Equal(t, 2, second.Circuits)
	assert.Equal(t, 400, second.TotalShots)
	assert.InDelta(t, 200.0, second.AvgShots(), 1e-12)
	assert.EqualValues(t, 20, second.AvgElapsed())
}

func TestExecStatsEmpty(t *testing.T) {
	var es ExecStats
	assert.Zero(t, es.AvgElapsed())
	assert.Zero(t, es.AvgShots())
}

func TestRunBatch(t *testing.T) {
	fb := &fakeBackend{counts: stats.Counts{"0": 10}}
	r := newTestRunner(fb)

	circuits := []*circuit.Circuit{
		circuit.New("a", 1, 1).X(0).MeasureAll(),
		circuit.New("b", 1, 1).H(0).MeasureAll(),
	}
	results, err := r.RunBatch(context.Background(), circuits, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Circuit)
	assert.Equal(t, "b", results[1].Circuit)
}

func TestNoiseOnPlainBackendErrors(t *testing.T) {
	r := newTestRunner(&fakeBackend{})

	assert.ErrorIs(t, r.SetNoise(sim.Depolarizing(0.1)), ErrNoiseUnsupported)
	assert.ErrorIs(t, r.ClearNoise(), ErrNoiseUnsupported)

	_, _, err := r.CompareWithIdeal(context.Background(), circuit.New("x", 1, 1).X(0).MeasureAll(), 10, 0.1)
	assert.ErrorIs(t, err, ErrNoiseUnsupported)
}

func TestCompareWithIdeal(t *testing.T) {
	backend := sim.New(sim.WithSeed(7))
	backend.SetNoise(sim.Depolarizing(0.005))
	r := New(backend, zerolog.Nop())

	qc := circuit.New("x", 1, 1).X(0).MeasureAll()
	ideal, noisy, err := r.CompareWithIdeal(context.Background(), qc, 1000, 0.3)
	require.NoError(t, err)

	assert.Equal(t, 1000, ideal.Counts["1"], "ideal run must be noiseless")
	assert.Less(t, noisy.Counts["1"], 1000, "noisy run should degrade")

	prior := backend.Noise()
	assert.InDelta(t, 0.005, prior.OneQubitRate, 1e-12, "prior noise must be restored")
}

func TestNoiseSweep(t *testing.T) {
	backend := sim.New(sim.WithSeed(9))
	backend.SetNoise(sim.Depolarizing(0.007))
	r := New(backend, zerolog.Nop())

	qc := circuit.New("x", 1, 1).X(0).MeasureAll()
	rows, err := r.NoiseSweep(context.Background(), qc, 1000, []float64{0, 0.1, 0.3})
	require.NoError(t, err)
	require.Len(t, rows, 3, "zero rates fold into the baseline row")

	assert.Zero(t, rows[0].Rate)
	assert.Zero(t, rows[0].DistanceToIdeal)
	assert.Equal(t, 1000, rows[0].Counts["1"], "baseline must be noiseless")

	assert.InDelta(t, 0.1, rows[1].Rate, 1e-12)
	assert.Positive(t, rows[1].DistanceToIdeal)
	assert.Positive(t, rows[2].DistanceToIdeal)
	assert.Greater(t, rows[2].DistanceToIdeal, rows[1].DistanceToIdeal,
		"heavier noise should drift further from the baseline")

	prior := backend.Noise()
	assert.InDelta(t, 0.007, prior.OneQubitRate, 1e-12, "prior noise must be restored")
}

func TestNoiseSweepPlainBackendErrors(t *testing.T) {
	r := newTestRunner(&fakeBackend{})
	_, err := r.NoiseSweep(context.Background(), circuit.New("x", 1, 1).X(0).MeasureAll(), 10, []float64{0.1})
	assert.ErrorIs(t, err, ErrNoiseUnsupported)
}

func TestBenchmarkRows(t *testing.T) {
	r := New(sim.New(sim.WithSeed(3)), zerolog.Nop())

	qc := circuit.New("bell", 2, 2).H(0).CX(0, 1).MeasureAll()
	rows, err := r.Benchmark(context.Background(), qc, []int{100, 1000})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 100, rows[0].Shots)
	assert.Equal(t, 1000, rows[1].Shots)
	for _, row := range rows {
		assert.Positive(t, row.UniqueOutcomes)
		assert.InDelta(t, 1.0, row.EntropyBits, 0.2)
	}
}

func TestTomographyBases(t *testing.T) {
	r := New(sim.New(sim.WithSeed(5)), zerolog.Nop())

	// |+> state: deterministic in X basis, uniform in Z.
	qc := circuit.New("plus", 1, 1).H(0).MeasureAll()
	out, err := r.Tomography(context.Background(), qc, 1000)
	require.NoError(t, err)

	require.Contains(t, out, "Z")
	require.Contains(t, out, "X")
	require.Contains(t, out, "Y")

	assert.Equal(t, 1000, out["X"]["0"], "H then H reads |0> exactly")
	assert.Greater(t, out["Z"]["0"], 300)
	assert.Greater(t, out["Z"]["1"], 300)
}
