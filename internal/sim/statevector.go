// Package sim provides a shot-based quantum circuit simulator behind a
// pluggable Backend interface.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
)

// ErrUnknownGate is returned when a circuit contains a gate type the engine
// cannot apply.
var ErrUnknownGate = errors.New("unknown gate type")

// StateVector holds the complex amplitudes of an n-qubit register. Basis
// state i assigns qubit q the bit (i >> q) & 1.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns the |0...0> state on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// single-qubit gate matrices
var (
	matH = [2][2]complex128{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
	matX = [2][2]complex128{{0, 1}, {1, 0}}
	matY = [2][2]complex128{{0, -1i}, {1i, 0}}
)

func matRX(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return [2][2]complex128{{c, js}, {js, c}}
}

func matRY(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	return [2][2]complex128{{c, -sn}, {sn, c}}
}

// apply1Q applies a 2x2 matrix to the target qubit, restricted to basis
// states where every bit of ctrlMask is set. ctrlMask zero means
// unconditional. The amplitude pairs are disjoint, so the update is in
// place.
func (s *StateVector) apply1Q(target, ctrlMask int, m [2][2]complex128) {
	tbit := 1 << target
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&tbit == 0 && i&ctrlMask == ctrlMask {
			j := i | tbit
			a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = m[0][0]*a0 + m[0][1]*a1
			s.Amplitudes[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

// applyPhase multiplies the amplitude of every basis state with all bits of
// mask set by the given factor. This covers Z, S, T, P and their controlled
// and multi-controlled forms.
func (s *StateVector) applyPhase(mask int, factor complex128) {
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&mask == mask {
			s.Amplitudes[i] *= factor
		}
	}
}

// applyRZ applies the symmetric-phase Z rotation, conditioned on ctrlMask.
func (s *StateVector) applyRZ(target, ctrlMask int, theta float64) {
	tbit := 1 << target
	phase := cmplx.Exp(complex(0, theta/2))
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&ctrlMask != ctrlMask {
			continue
		}
		if i&tbit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applySWAP(a, b int) {
	abit, bbit := 1<<a, 1<<b
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&abit != 0 && i&bbit == 0 {
			j := (i &^ abit) | bbit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// applyReset projects the qubit onto |0> and renormalizes. When the qubit is
// certainly |1>, the amplitude is moved instead of discarded.
func (s *StateVector) applyReset(target int) {
	tbit := 1 << target
	prob0 := 0.0
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&tbit == 0 {
			prob0 += probOf(s.Amplitudes[i])
		}
	}

	if prob0 < 1e-12 {
		s.apply1Q(target, 0, matX)
		return
	}

	norm := complex(math.Sqrt(prob0), 0)
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&tbit == 0 {
			s.Amplitudes[i] /= norm
		} else {
			s.Amplitudes[i] = 0
		}
	}
}

// MeasureQubit samples a measurement outcome for one qubit, collapses the
// state accordingly, and returns the observed bit.
func (s *StateVector) MeasureQubit(target int, rng *rand.Rand) int {
	tbit := 1 << target
	prob1 := 0.0
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if i&tbit != 0 {
			prob1 += probOf(s.Amplitudes[i])
		}
	}

	outcome := 0
	if rng.Float64() < prob1 {
		outcome = 1
	}

	keep := func(i int) bool { return (i&tbit != 0) == (outcome == 1) }
	kept := prob1
	if outcome == 0 {
		kept = 1 - prob1
	}
	norm := complex(math.Sqrt(kept), 0)
	for i, n := 0, len(s.Amplitudes); i < n; i++ {
		if keep(i) {
			s.Amplitudes[i] /= norm
		} else {
			s.Amplitudes[i] = 0
		}
	}
	return outcome
}

// Probabilities returns the probability of each basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = probOf(amp)
	}
	return probs
}

func probOf(amp complex128) float64 {
	return real(amp)*real(amp) + imag(amp)*imag(amp)
}

func controlMask(controls []int) int {
	mask := 0
	for _, c := range controls {
		mask |= 1 << c
	}
	return mask
}

// Apply evolves the state by one gate. Measurements are not handled here;
// the caller decides how to sample them.
func (s *StateVector) Apply(g circuit.Gate) error {
	theta := 0.0
	if len(g.Params) > 0 {
		theta = g.Params[0]
	}

	switch g.Type {
	case "H":
		s.apply1Q(g.Target, 0, matH)
	case "X":
		s.apply1Q(g.Target, 0, matX)
	case "Y":
		s.apply1Q(g.Target, 0, matY)
	case "Z":
		s.applyPhase(1<<g.Target, -1)
	case "S":
		s.applyPhase(1<<g.Target, 1i)
	case "SDG":
		s.applyPhase(1<<g.Target, -1i)
	case "T":
		s.applyPhase(1<<g.Target, cmplx.Exp(complex(0, math.Pi/4)))
	case "TDG":
		s.applyPhase(1<<g.Target, cmplx.Exp(complex(0, -math.Pi/4)))
	case "P":
		s.applyPhase(1<<g.Target, cmplx.Exp(complex(0, theta)))
	case "RX":
		s.apply1Q(g.Target, 0, matRX(theta))
	case "RY":
		s.apply1Q(g.Target, 0, matRY(theta))
	case "RZ":
		s.applyRZ(g.Target, 0, theta)
	case "CX":
		s.apply1Q(g.Target, 1<<g.Control, matX)
	case "CZ":
		s.applyPhase(1<<g.Control|1<<g.Target, -1)
	case "CH":
		s.apply1Q(g.Target, 1<<g.Control, matH)
	case "CP":
		s.applyPhase(1<<g.Control|1<<g.Target, cmplx.Exp(complex(0, theta)))
	case "CRX":
		s.apply1Q(g.Target, 1<<g.Control, matRX(theta))
	case "CRY":
		s.apply1Q(g.Target, 1<<g.Control, matRY(theta))
	case "CRZ":
		s.applyRZ(g.Target, 1<<g.Control, theta)
	case "SWAP":
		s.applySWAP(g.Control, g.Target)
	case "MCX":
		s.apply1Q(g.Target, controlMask(g.Controls), matX)
	case "MCZ":
		s.applyPhase(controlMask(g.Controls)|1<<g.Target, -1)
	case "RESET":
		s.applyReset(g.Target)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGate, g.Type)
	}
	return nil
}
