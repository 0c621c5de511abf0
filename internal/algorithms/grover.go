package algorithms

import (
	"errors"
	"fmt"
	"math"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
)

var (
	ErrNoMarked       = errors.New("at least one marked item is required")
	ErrMarkedMismatch = errors.New("marked items must share one length")
	ErrTooManyMarked  = errors.New("marked items must be fewer than the search space")
)

// GroverSearch amplifies the amplitudes of the marked basis states. Marked
// items are binary strings with character i addressing qubit i. The
// iteration count is floor(pi/4 * sqrt(N/M)), at least one.
func GroverSearch(marked []string) (*circuit.Circuit, error) {
	if len(marked) == 0 {
		return nil, ErrNoMarked
	}
	n := len(marked[0])
	for _, item := range marked {
		if !validBinary(item) {
			return nil, fmt.Errorf("%w: %q", ErrBadSecret, item)
		}
		if len(item) != n {
			return nil, fmt.Errorf("%w: %q", ErrMarkedMismatch, item)
		}
	}
	space := 1 << n
	if len(marked) >= space {
		return nil, fmt.Errorf("%w: %d marked, space %d", ErrTooManyMarked, len(marked), space)
	}

	iterations := int(math.Floor(math.Pi / 4 * math.Sqrt(float64(space)/float64(len(marked)))))
	if iterations < 1 {
		iterations = 1
	}

	qc := circuit.New("grover", n, n)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	for it := 0; it < iterations; it++ {
		for _, item := range marked {
			markOracle(qc, item)
		}
		diffusion(qc, n)
	}
	qc.MeasureAll()
	return qc, nil
}

// markOracle flips the phase of exactly one basis state.
func markOracle(qc *circuit.Circuit, item string) {
	n := len(item)
	for q := 0; q < n; q++ {
		if item[q] == '0' {
			qc.X(q)
		}
	}
	phaseFlipAll(qc, n)
	for q := 0; q < n; q++ {
		if item[q] == '0' {
			qc.X(q)
		}
	}
}

// diffusion reflects the state about the uniform superposition.
func diffusion(qc *circuit.Circuit, n int) {
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	for q := 0; q < n; q++ {
		qc.X(q)
	}
	phaseFlipAll(qc, n)
	for q := 0; q < n; q++ {
		qc.X(q)
	}
	for q := 0; q < n; q++ {
		qc.H(q)
	}
}

// phaseFlipAll applies a -1 phase to |11...1>.
func phaseFlipAll(qc *circuit.Circuit, n int) {
	if n == 1 {
		qc.Z(0)
		return
	}
	controls := make([]int, n-1)
	for q := 0; q < n-1; q++ {
		controls[q] = q
	}
	qc.MCZ(controls, n-1)
}
