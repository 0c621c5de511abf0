// Package algorithms builds circuits for the textbook quantum algorithms
// shipped as demos. Bit i of a binary-string argument refers to qubit i, so
// strings read q0,q1,... left to right, matching outcome labels.
package algorithms

import (
	"errors"
	"fmt"

	"github.com/kevincoe/quantum-computing-project/internal/circuit"
)

var (
	ErrBadSecret     = errors.New("secret must be a non-empty binary string")
	ErrBadOracleKind = errors.New("oracle kind must be constant or balanced")
	ErrBadSize       = errors.New("size must be positive")
)

func validBinary(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

// BellState returns the two-qubit circuit preparing (|00>+|11>)/sqrt(2).
func BellState() *circuit.Circuit {
	qc := circuit.New("bell", 2, 2)
	qc.H(0).CX(0, 1).MeasureAll()
	return qc
}

// Teleportation builds the three-qubit teleportation protocol. The state
// RY(theta)|0> prepared on qubit 0 ends up on qubit 2; classical bit 2 holds
// its measurement. Corrections are applied as quantum-controlled gates from
// the collapsed sender qubits.
func Teleportation(theta float64) *circuit.Circuit {
	qc := circuit.New("teleportation", 3, 3)
	qc.RY(theta, 0)
	qc.H(1).CX(1, 2)
	qc.CX(0, 1).H(0)
	qc.Measure(0, 0).Measure(1, 1)
	qc.CX(1, 2).CZ(0, 2)
	qc.Measure(2, 2)
	return qc
}

// BernsteinVazirani recovers a hidden bit string in a single oracle query.
// Each measured shot yields the secret itself.
func BernsteinVazirani(secret string) (*circuit.Circuit, error) {
	if !validBinary(secret) {
		return nil, fmt.Errorf("%w: %q", ErrBadSecret, secret)
	}
	n := len(secret)
	anc := n

	qc := circuit.New("bernstein-vazirani", n+1, n)
	qc.X(anc).H(anc)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	for q := 0; q < n; q++ {
		if secret[q] == '1' {
			qc.CX(q, anc)
		}
	}
	for q := 0; q < n; q++ {
		qc.H(q)
		qc.Measure(q, q)
	}
	return qc, nil
}

// DeutschJozsa decides whether an n-bit oracle is constant or balanced with
// one query. The constant oracle does nothing; the balanced one XORs every
// input bit into the ancilla. An all-zero outcome means constant.
func DeutschJozsa(kind string, n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if kind != "constant" && kind != "balanced" {
		return nil, fmt.Errorf("%w: %q", ErrBadOracleKind, kind)
	}
	anc := n

	qc := circuit.New("deutsch-jozsa-"+kind, n+1, n)
	qc.X(anc).H(anc)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	if kind == "balanced" {
		for q := 0; q < n; q++ {
			qc.CX(q, anc)
		}
	}
	for q := 0; q < n; q++ {
		qc.H(q)
		qc.Measure(q, q)
	}
	return qc, nil
}

// Simon builds one sampling round of Simon's algorithm for a hidden period
// s. Measured strings y always satisfy y.s = 0 (mod 2); collecting n-1
// independent ones pins down s classically.
func Simon(secret string) (*circuit.Circuit, error) {
	if !validBinary(secret) {
		return nil, fmt.Errorf("%w: %q", ErrBadSecret, secret)
	}
	n := len(secret)

	first := -1
	for q := 0; q < n; q++ {
		if secret[q] == '1' {
			first = q
			break
		}
	}

	qc := circuit.New("simon", 2*n, n)
	for q := 0; q < n; q++ {
		qc.H(q)
	}
	// two-to-one oracle with f(x) = f(x xor s)
	for q := 0; q < n; q++ {
		qc.CX(q, n+q)
	}
	if first >= 0 {
		for q := 0; q < n; q++ {
			if secret[q] == '1' {
				qc.CX(first, n+q)
			}
		}
	}
	for q := 0; q < n; q++ {
		qc.H(q)
		qc.Measure(q, q)
	}
	return qc, nil
}
