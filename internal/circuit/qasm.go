package circuit

import (
	"fmt"
	"math"
	"strings"
)

// formatParam formats a gate parameter, using pi notation for the common
// fractions so the exported QASM reads the way circuits are written by hand.
func formatParam(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}
	return fmt.Sprintf("%g", val)
}

// ToQASM renders the circuit as OpenQASM 2.0. Multi-controlled gates beyond
// the Toffoli have no qelib equivalent and are emitted as comments.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", max(c.NumQubits, 1))
	fmt.Fprintf(&sb, "creg c[%d];\n\n", max(c.NumCbits, 1))

	for _, g := range c.Gates {
		switch g.Type {
		case "MEASURE":
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Cbit)
		case "RESET":
			fmt.Fprintf(&sb, "reset q[%d];\n", g.Target)
		case "MCX":
			switch len(g.Controls) {
			case 1:
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Target)
			case 2:
				fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)
			default:
				fmt.Fprintf(&sb, "// mcx %s -> q[%d]\n", qubitList(g.Controls), g.Target)
			}
		case "MCZ":
			switch len(g.Controls) {
			case 1:
				fmt.Fprintf(&sb, "cz q[%d], q[%d];\n", g.Controls[0], g.Target)
			default:
				fmt.Fprintf(&sb, "// mcz %s -> q[%d]\n", qubitList(g.Controls), g.Target)
			}
		case "CX", "CZ", "CH", "SWAP":
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", strings.ToLower(g.Type), g.Control, g.Target)
		case "CP":
			// qelib 2.0 names the controlled phase cu1.
			fmt.Fprintf(&sb, "cu1(%s) q[%d], q[%d];\n", formatParam(g.Params[0]), g.Control, g.Target)
		case "CRX", "CRY", "CRZ":
			fmt.Fprintf(&sb, "%s(%s) q[%d], q[%d];\n", strings.ToLower(g.Type), formatParam(g.Params[0]), g.Control, g.Target)
		case "RX", "RY", "RZ", "P":
			name := strings.ToLower(g.Type)
			if name == "p" {
				name = "u1"
			}
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", name, formatParam(g.Params[0]), g.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(g.Type), g.Target)
		}
	}
	return sb.String()
}

func qubitList(qubits []int) string {
	parts := make([]string, len(qubits))
	for i, q := range qubits {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ", ")
}
