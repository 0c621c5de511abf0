// Package runner executes circuits against an injected backend and collects
// per-run results and aggregate statistics.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/sim"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

// ErrNoiseUnsupported is returned when a noise operation is requested on a
// backend without a configurable error channel.
var ErrNoiseUnsupported = errors.New("backend does not support noise configuration")

// Result is the outcome of one circuit execution.
type Result struct {
	RunID   string        `json:"run_id"`
	Circuit string        `json:"circuit"`
	Backend string        `json:"backend"`
	Shots   int           `json:"shots"`
	Counts  stats.Counts  `json:"counts"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// ExecStats accumulates totals across runs. It is a plain value owned by
// the caller; Record returns the updated copy.
type ExecStats struct {
	Circuits     int           `json:"circuits"`
	TotalShots   int           `json:"total_shots"`
	TotalElapsed time.Duration `json:"total_elapsed_ns"`
}

// Record folds one result into the stats and returns the new value.
func (e ExecStats) Record(r *Result) ExecStats {
	e.Circuits++
	e.TotalShots += r.Shots
	e.TotalElapsed += r.Elapsed
	return e
}

// AvgElapsed is the mean wall time per circuit.
func (e ExecStats) AvgElapsed() time.Duration {
	if e.Circuits == 0 {
		return 0
	}
	return e.TotalElapsed / time.Duration(e.Circuits)
}

// AvgShots is the mean shot count per circuit.
func (e ExecStats) AvgShots() float64 {
	if e.Circuits == 0 {
		return 0
	}
	return float64(e.TotalShots) / float64(e.Circuits)
}

// Runner wraps a Backend with measurement defaulting, timing, and logging.
type Runner struct {
	backend sim.Backend
	log     zerolog.Logger
}

// New returns a Runner over the given backend.
func New(backend sim.Backend, log zerolog.Logger) *Runner {
	return &Runner{backend: backend, log: log}
}

// Backend exposes the injected backend.
func (r *Runner) Backend() sim.Backend { return r.backend }

// Run executes one circuit. Circuits without measurements get a trailing
// measure-all before execution.
func (r *Runner) Run(ctx context.Context, qc *circuit.Circuit, shots int) (*Result, error) {
	prepared := qc.EnsureMeasured()

	start := time.Now()
	counts, err := r.backend.Execute(ctx, prepared, shots)
	elapsed := time.Since(start)
	if err != nil {
		r.log.Error().Err(err).Str("circuit", qc.Name).Int("shots", shots).Msg("execution failed")
		return nil, err
	}

	res := &Result{
		RunID:   uuid.NewString(),
		Circuit: qc.Name,
		Backend: r.backend.Name(),
		Shots:   shots,
		Counts:  counts,
		Elapsed: elapsed,
	}
	r.log.Debug().
		Str("run_id", res.RunID).
		Str("circuit", res.Circuit).
		Int("shots", shots).
		Int("unique_outcomes", len(counts)).
		Dur("elapsed", elapsed).
		Msg("circuit executed")
	return res, nil
}

// RunBatch executes circuits sequentially, stopping at the first failure.
func (r *Runner) RunBatch(ctx context.Context, circuits []*circuit.Circuit, shots int) ([]*Result, error) {
	results := make([]*Result, 0, len(circuits))
	for _, qc := range circuits {
		res, err := r.Run(ctx, qc, shots)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// noiseBackend is the shape a backend needs for noise toggling.
type noiseBackend interface {
	SetNoise(sim.NoiseModel)
	ClearNoise()
	Noise() sim.NoiseModel
}

// SetNoise installs a noise model on the backend.
func (r *Runner) SetNoise(model sim.NoiseModel) error {
	nb, ok := r.backend.(noiseBackend)
	if !ok {
		return ErrNoiseUnsupported
	}
	nb.SetNoise(model)
	return nil
}

// ClearNoise removes the backend's noise model.
func (r *Runner) ClearNoise() error {
	nb, ok := r.backend.(noiseBackend)
	if !ok {
		return ErrNoiseUnsupported
	}
	nb.ClearNoise()
	return nil
}

// CompareWithIdeal runs the circuit noiselessly and under a depolarizing
// channel of the given rate, restoring whatever noise was installed before.
func (r *Runner) CompareWithIdeal(ctx context.Context, qc *circuit.Circuit, shots int, rate float64) (ideal, noisy *Result, err error) {
	nb, ok := r.backend.(noiseBackend)
	if !ok {
		return nil, nil, ErrNoiseUnsupported
	}
	prior := nb.Noise()
	defer nb.SetNoise(prior)

	nb.ClearNoise()
	ideal, err = r.Run(ctx, qc, shots)
	if err != nil {
		return nil, nil, err
	}

	nb.SetNoise(sim.Depolarizing(rate))
	noisy, err = r.Run(ctx, qc, shots)
	if err != nil {
		return nil, nil, err
	}
	return ideal, noisy, nil
}

// NoiseSweepRow is one noise level of a zero-noise extrapolation sweep.
type NoiseSweepRow struct {
	Rate            float64      `json:"rate"`
	Counts          stats.Counts `json:"counts"`
	UniqueOutcomes  int          `json:"unique_outcomes"`
	DistanceToIdeal float64      `json:"distance_to_ideal"`
}

// NoiseSweep runs the circuit at each depolarizing rate and scores every
// run against a noiseless baseline with the total variation distance. The
// baseline is always the first row; it doubles as the zero-noise estimate.
// Whatever noise was installed before is restored afterwards.
func (r *Runner) NoiseSweep(ctx context.Context, qc *circuit.Circuit, shots int, rates []float64) ([]NoiseSweepRow, error) {
	nb, ok := r.backend.(noiseBackend)
	if !ok {
		return nil, ErrNoiseUnsupported
	}
	prior := nb.Noise()
	defer nb.SetNoise(prior)

	nb.ClearNoise()
	baseline, err := r.Run(ctx, qc, shots)
	if err != nil {
		return nil, err
	}
	rows := []NoiseSweepRow{{
		Rate:           0,
		Counts:         baseline.Counts,
		UniqueOutcomes: len(baseline.Counts),
	}}

	for _, rate := range rates {
		if rate <= 0 {
			continue
		}
		nb.SetNoise(sim.Depolarizing(rate))
		res, err := r.Run(ctx, qc, shots)
		if err != nil {
			return nil, err
		}
		tvd, err := stats.TotalVariationDistance(baseline.Counts, res.Counts, baseline.Shots, res.Shots)
		if err != nil {
			return nil, err
		}
		rows = append(rows, NoiseSweepRow{
			Rate:            rate,
			Counts:          res.Counts,
			UniqueOutcomes:  len(res.Counts),
			DistanceToIdeal: tvd,
		})
	}
	return rows, nil
}

// BenchmarkRow is one line of a shot-count sweep.
type BenchmarkRow struct {
	Shots          int           `json:"shots"`
	Elapsed        time.Duration `json:"elapsed_ns"`
	UniqueOutcomes int           `json:"unique_outcomes"`
	EntropyBits    float64       `json:"entropy_bits"`
}

// Benchmark executes the circuit once per requested shot count.
func (r *Runner) Benchmark(ctx context.Context, qc *circuit.Circuit, shotsList []int) ([]BenchmarkRow, error) {
	rows := make([]BenchmarkRow, 0, len(shotsList))
	for _, shots := range shotsList {
		res, err := r.Run(ctx, qc, shots)
		if err != nil {
			return rows, err
		}
		entropy, err := stats.Entropy(res.Counts)
		if err != nil {
			return rows, err
		}
		rows = append(rows, BenchmarkRow{
			Shots:          shots,
			Elapsed:        res.Elapsed,
			UniqueOutcomes: len(res.Counts),
			EntropyBits:    entropy,
		})
	}
	return rows, nil
}

// Tomography measures the circuit's prepared state in the Z, X, and Y bases
// and returns counts keyed by basis name. Existing measurements are
// stripped before the basis rotation.
func (r *Runner) Tomography(ctx context.Context, qc *circuit.Circuit, shots int) (map[string]stats.Counts, error) {
	out := make(map[string]stats.Counts, 3)
	for _, basis := range []string{"Z", "X", "Y"} {
		rotated := stripMeasurements(qc)
		rotated.Name = qc.Name + "-tomo-" + basis
		for q := 0; q < rotated.NumQubits; q++ {
			switch basis {
			case "X":
				rotated.H(q)
			case "Y":
				rotated.Sdg(q)
				rotated.H(q)
			}
		}
		rotated.MeasureAll()

		res, err := r.Run(ctx, rotated, shots)
		if err != nil {
			return nil, err
		}
		out[basis] = res.Counts
	}
	return out, nil
}

// stripMeasurements copies a circuit without its MEASURE gates.
func stripMeasurements(qc *circuit.Circuit) *circuit.Circuit {
	cp := qc.Copy()
	gates := cp.Gates[:0]
	for _, g := range cp.Gates {
		if g.Type != "MEASURE" {
			gates = append(gates, g)
		}
	}
	cp.Gates = gates
	return cp
}
