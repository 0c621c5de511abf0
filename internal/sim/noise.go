package sim

import "math/rand"

// NoiseModel describes a simple stochastic Pauli error channel. After every
// one-qubit gate a random Pauli is injected on the target with probability
// OneQubitRate; after every two-qubit gate the same happens independently on
// each involved qubit with probability TwoQubitRate. PrepFlipRate flips each
// qubit at state preparation.
type NoiseModel struct {
	OneQubitRate float64
	TwoQubitRate float64
	PrepFlipRate float64
}

// Depolarizing returns a noise model where two-qubit gates are twice as
// error-prone as one-qubit gates, which roughly matches real devices.
func Depolarizing(rate float64) NoiseModel {
	return NoiseModel{OneQubitRate: rate, TwoQubitRate: 2 * rate}
}

// Enabled reports whether the model injects any errors at all.
func (n NoiseModel) Enabled() bool {
	return n.OneQubitRate > 0 || n.TwoQubitRate > 0 || n.PrepFlipRate > 0
}

var pauliErrors = []string{"X", "Y", "Z"}

// injectPauli applies a uniformly random Pauli error to one qubit.
func injectPauli(s *StateVector, qubit int, rng *rand.Rand) {
	g := pauliErrors[rng.Intn(len(pauliErrors))]
	switch g {
	case "X":
		s.apply1Q(qubit, 0, matX)
	case "Y":
		s.apply1Q(qubit, 0, matY)
	case "Z":
		s.applyPhase(1<<qubit, -1)
	}
}

// afterGate injects errors on the qubits a gate just touched.
func (n NoiseModel) afterGate(s *StateVector, qubits []int, rng *rand.Rand) {
	rate := n.OneQubitRate
	if len(qubits) > 1 {
		rate = n.TwoQubitRate
	}
	if rate <= 0 {
		return
	}
	for _, q := range qubits {
		if rng.Float64() < rate {
			injectPauli(s, q, rng)
		}
	}
}

// prepare applies preparation bit-flip errors to a fresh state.
func (n NoiseModel) prepare(s *StateVector, rng *rand.Rand) {
	if n.PrepFlipRate <= 0 {
		return
	}
	for q := 0; q < s.NumQubits; q++ {
		if rng.Float64() < n.PrepFlipRate {
			s.apply1Q(q, 0, matX)
		}
	}
}
