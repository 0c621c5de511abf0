package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
	"github.com/kevincoe/quantum-computing-project/internal/stats"
)

// DefaultMaxQubits bounds circuit width so a runaway request cannot allocate
// gigabytes of amplitudes.
const DefaultMaxQubits = 22

var (
	ErrTooManyQubits = errors.New("circuit exceeds backend qubit limit")
	ErrInvalidShots  = errors.New("shots must be positive")
	ErrNoMeasurement = errors.New("circuit has no measurements")
)

// Backend executes circuits and returns measurement counts keyed by outcome
// label. Character i of a label is the value of classical bit i.
type Backend interface {
	Name() string
	MaxQubits() int
	Execute(ctx context.Context, qc *circuit.Circuit, shots int) (stats.Counts, error)
}

// NoiseConfigurable is implemented by backends whose error channel can be
// swapped at runtime.
type NoiseConfigurable interface {
	SetNoise(model NoiseModel)
	ClearNoise()
}

// Simulator is a statevector Backend. It is safe for sequential reuse; the
// zero value is not usable, construct with New.
type Simulator struct {
	maxQubits int
	noise     NoiseModel
	rng       *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes every Execute call reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxQubits overrides the width limit.
func WithMaxQubits(n int) Option {
	return func(s *Simulator) { s.maxQubits = n }
}

// WithNoise installs an error channel.
func WithNoise(model NoiseModel) Option {
	return func(s *Simulator) { s.noise = model }
}

// New returns a ready statevector simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{maxQubits: DefaultMaxQubits}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return s
}

func (s *Simulator) Name() string { return "statevector" }

func (s *Simulator) MaxQubits() int { return s.maxQubits }

func (s *Simulator) SetNoise(model NoiseModel) { s.noise = model }

func (s *Simulator) ClearNoise() { s.noise = NoiseModel{} }

// Noise returns the currently installed error channel.
func (s *Simulator) Noise() NoiseModel { return s.noise }

// Execute runs the circuit for the given number of shots and aggregates the
// outcome labels. Circuits whose measurements all come last and that carry
// no reset or noise are evolved once and sampled from the final
// distribution; anything else is replayed shot by shot with collapse.
func (s *Simulator) Execute(ctx context.Context, qc *circuit.Circuit, shots int) (stats.Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, shots)
	}
	if qc.NumQubits > s.maxQubits {
		return nil, fmt.Errorf("%w: %d qubits, limit %d", ErrTooManyQubits, qc.NumQubits, s.maxQubits)
	}
	if !qc.HasMeasurements() {
		return nil, ErrNoMeasurement
	}

	if !s.noise.Enabled() && terminalMeasurementsOnly(qc) {
		return s.executeSampled(ctx, qc, shots)
	}
	return s.executePerShot(ctx, qc, shots)
}

// terminalMeasurementsOnly reports whether every MEASURE gate comes after
// every gate that evolves the state, and no RESET appears.
func terminalMeasurementsOnly(qc *circuit.Circuit) bool {
	seenMeasure := false
	for _, g := range qc.Gates {
		switch g.Type {
		case "RESET":
			return false
		case "MEASURE":
			seenMeasure = true
		default:
			if seenMeasure {
				return false
			}
		}
	}
	return true
}

// executeSampled evolves the state once and draws shots from the final
// probability distribution.
func (s *Simulator) executeSampled(ctx context.Context, qc *circuit.Circuit, shots int) (stats.Counts, error) {
	state := NewStateVector(qc.NumQubits)
	for i, g := range qc.Gates {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if g.Type == "MEASURE" {
			continue
		}
		if err := state.Apply(g); err != nil {
			return nil, err
		}
	}

	probs := state.Probabilities()
	cumulative := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cumulative[i] = total
	}

	counts := make(stats.Counts)
	for shot := 0; shot < shots; shot++ {
		r := s.rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, r)
		if idx >= len(probs) {
			idx = len(probs) - 1
		}
		counts[labelFor(qc, idx)]++
	}
	return counts, nil
}

// executePerShot replays the whole circuit once per shot, collapsing the
// state at every measurement and injecting configured noise.
func (s *Simulator) executePerShot(ctx context.Context, qc *circuit.Circuit, shots int) (stats.Counts, error) {
	counts := make(stats.Counts)
	for shot := 0; shot < shots; shot++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state := NewStateVector(qc.NumQubits)
		s.noise.prepare(state, s.rng)

		bits := make([]byte, qc.NumCbits)
		for i := range bits {
			bits[i] = '0'
		}

		for _, g := range qc.Gates {
			if g.Type == "MEASURE" {
				outcome := state.MeasureQubit(g.Target, s.rng)
				if g.Cbit >= 0 && g.Cbit < len(bits) {
					bits[g.Cbit] = byte('0' + outcome)
				}
				continue
			}
			if err := state.Apply(g); err != nil {
				return nil, err
			}
			s.noise.afterGate(state, g.Qubits(), s.rng)
		}
		counts[string(bits)]++
	}
	return counts, nil
}

// labelFor maps a basis state index to the outcome label the circuit's
// measurement gates would produce for it.
func labelFor(qc *circuit.Circuit, basis int) string {
	bits := make([]byte, qc.NumCbits)
	for i := range bits {
		bits[i] = '0'
	}
	for _, g := range qc.Gates {
		if g.Type != "MEASURE" || g.Cbit < 0 || g.Cbit >= len(bits) {
			continue
		}
		bits[g.Cbit] = byte('0' + (basis>>g.Target)&1)
	}
	return string(bits)
}
