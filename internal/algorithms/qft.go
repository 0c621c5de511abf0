package algorithms

import (
	"fmt"
	"math"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
)

// QFT returns the n-qubit quantum Fourier transform over the convention
// that qubit i carries bit weight 2^i, followed by measurement of every
// qubit.
func QFT(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	qc := circuit.New("qft", n, n)
	qftGates(qc, n)
	qc.MeasureAll()
	return qc, nil
}

// InverseQFT returns the inverse transform, measured.
func InverseQFT(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	qc := circuit.New("inverse-qft", n, n)
	inverseQFTGates(qc, n)
	qc.MeasureAll()
	return qc, nil
}

// qftGates appends the QFT ladder on qubits [0, n).
func qftGates(qc *circuit.Circuit, n int) {
	for i := n - 1; i >= 0; i-- {
		qc.H(i)
		for j := i - 1; j >= 0; j-- {
			qc.CP(math.Pi/float64(int(1)<<(i-j)), j, i)
		}
	}
	for i := 0; i < n/2; i++ {
		qc.SWAP(i, n-1-i)
	}
}

// inverseQFTGates appends the adjoint ladder, gates reversed and phases
// negated.
func inverseQFTGates(qc *circuit.Circuit, n int) {
	for i := 0; i < n/2; i++ {
		qc.SWAP(i, n-1-i)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			qc.CP(-math.Pi/float64(int(1)<<(i-j)), j, i)
		}
		qc.H(i)
	}
}

// PhaseEstimation estimates the phase of P(pi*unitaryPower) on its |1>
// eigenstate using the given number of counting qubits. The measured
// counting register reads the phase as a binary fraction, so unitaryPower=1
// yields phi=1/2 exactly.
func PhaseEstimation(unitaryPower float64, precision int) (*circuit.Circuit, error) {
	if precision < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, precision)
	}
	eig := precision

	qc := circuit.New("phase-estimation", precision+1, precision)
	qc.X(eig)
	for q := 0; q < precision; q++ {
		qc.H(q)
	}
	for q := 0; q < precision; q++ {
		qc.CP(float64(int(1)<<q)*math.Pi*unitaryPower, q, eig)
	}
	inverseQFTGates(qc, precision)
	for q := 0; q < precision; q++ {
		qc.Measure(q, q)
	}
	return qc, nil
}
