// Package circuit describes quantum circuits as plain gate sequences.
//
// A Circuit is a value handed to a simulation backend; it carries no
// execution state of its own. Gates are applied in slice order.
package circuit

// Gate represents a single operation placed on the circuit.
type Gate struct {
	Type     string
	Target   int
	Control  int       // -1 if not a controlled gate
	Controls []int     // control qubits for CCX/MCX/MCZ
	Cbit     int       // classical bit receiving a measurement, -1 otherwise
	Params   []float64 // parameters for rotation/phase gates
}

// Qubits returns every qubit index the gate touches.
func (g Gate) Qubits() []int {
	qs := make([]int, 0, 2+len(g.Controls))
	if g.Target >= 0 {
		qs = append(qs, g.Target)
	}
	if g.Control >= 0 {
		qs = append(qs, g.Control)
	}
	qs = append(qs, g.Controls...)
	return qs
}

// Circuit holds a named gate sequence over a fixed qubit and classical-bit
// register.
type Circuit struct {
	Name      string
	NumQubits int
	NumCbits  int
	Gates     []Gate
}

// New returns an empty circuit with the given register sizes.
func New(name string, numQubits, numCbits int) *Circuit {
	return &Circuit{Name: name, NumQubits: numQubits, NumCbits: numCbits}
}

// Copy returns a deep copy of the circuit.
func (c *Circuit) Copy() *Circuit {
	cp := &Circuit{Name: c.Name, NumQubits: c.NumQubits, NumCbits: c.NumCbits}
	cp.Gates = make([]Gate, len(c.Gates))
	copy(cp.Gates, c.Gates)
	for i, g := range cp.Gates {
		if len(g.Controls) > 0 {
			ctrls := make([]int, len(g.Controls))
			copy(ctrls, g.Controls)
			cp.Gates[i].Controls = ctrls
		}
		if len(g.Params) > 0 {
			params := make([]float64, len(g.Params))
			copy(params, g.Params)
			cp.Gates[i].Params = params
		}
	}
	return cp
}

func (c *Circuit) add(g Gate) *Circuit {
	c.Gates = append(c.Gates, g)
	return c
}

func (c *Circuit) single(gateType string, qubits []int, params ...float64) *Circuit {
	for _, q := range qubits {
		c.add(Gate{Type: gateType, Target: q, Control: -1, Cbit: -1, Params: params})
	}
	return c
}

func (c *Circuit) controlled(gateType string, control, target int, params ...float64) *Circuit {
	return c.add(Gate{Type: gateType, Target: target, Control: control, Cbit: -1, Params: params})
}

// H applies a Hadamard gate to each given qubit.
func (c *Circuit) H(qubits ...int) *Circuit { return c.single("H", qubits) }

// X applies a Pauli-X (NOT) gate to each given qubit.
func (c *Circuit) X(qubits ...int) *Circuit { return c.single("X", qubits) }

// Y applies a Pauli-Y gate to each given qubit.
func (c *Circuit) Y(qubits ...int) *Circuit { return c.single("Y", qubits) }

// Z applies a Pauli-Z gate to each given qubit.
func (c *Circuit) Z(qubits ...int) *Circuit { return c.single("Z", qubits) }

// S applies the phase gate to each given qubit.
func (c *Circuit) S(qubits ...int) *Circuit { return c.single("S", qubits) }

// Sdg applies the adjoint phase gate to each given qubit.
func (c *Circuit) Sdg(qubits ...int) *Circuit { return c.single("SDG", qubits) }

// T applies the T gate to each given qubit.
func (c *Circuit) T(qubits ...int) *Circuit { return c.single("T", qubits) }

// Tdg applies the adjoint T gate to each given qubit.
func (c *Circuit) Tdg(qubits ...int) *Circuit { return c.single("TDG", qubits) }

// RX rotates each given qubit around the X axis by theta radians.
func (c *Circuit) RX(theta float64, qubits ...int) *Circuit { return c.single("RX", qubits, theta) }

// RY rotates each given qubit around the Y axis by theta radians.
func (c *Circuit) RY(theta float64, qubits ...int) *Circuit { return c.single("RY", qubits, theta) }

// RZ rotates each given qubit around the Z axis by theta radians.
func (c *Circuit) RZ(theta float64, qubits ...int) *Circuit { return c.single("RZ", qubits, theta) }

// P applies a phase shift of theta radians to each given qubit.
func (c *Circuit) P(theta float64, qubits ...int) *Circuit { return c.single("P", qubits, theta) }

// CX applies a controlled-X (CNOT) gate.
func (c *Circuit) CX(control, target int) *Circuit { return c.controlled("CX", control, target) }

// CZ applies a controlled-Z gate.
func (c *Circuit) CZ(control, target int) *Circuit { return c.controlled("CZ", control, target) }

// CH applies a controlled-Hadamard gate.
func (c *Circuit) CH(control, target int) *Circuit { return c.controlled("CH", control, target) }

// SWAP exchanges the states of two qubits.
func (c *Circuit) SWAP(a, b int) *Circuit { return c.controlled("SWAP", a, b) }

// CP applies a controlled phase shift of theta radians.
func (c *Circuit) CP(theta float64, control, target int) *Circuit {
	return c.controlled("CP", control, target, theta)
}

// CRX applies a controlled X rotation of theta radians.
func (c *Circuit) CRX(theta float64, control, target int) *Circuit {
	return c.controlled("CRX", control, target, theta)
}

// CRY applies a controlled Y rotation of theta radians.
func (c *Circuit) CRY(theta float64, control, target int) *Circuit {
	return c.controlled("CRY", control, target, theta)
}

// CRZ applies a controlled Z rotation of theta radians.
func (c *Circuit) CRZ(theta float64, control, target int) *Circuit {
	return c.controlled("CRZ", control, target, theta)
}

// CCX applies a Toffoli gate with two controls.
func (c *Circuit) CCX(control0, control1, target int) *Circuit {
	return c.MCX([]int{control0, control1}, target)
}

// MCX applies a multi-controlled X gate.
func (c *Circuit) MCX(controls []int, target int) *Circuit {
	ctrls := make([]int, len(controls))
	copy(ctrls, controls)
	return c.add(Gate{Type: "MCX", Target: target, Control: -1, Controls: ctrls, Cbit: -1})
}

// MCZ applies a multi-controlled Z gate. The phase flip is symmetric in its
// qubits, so the target choice is cosmetic.
func (c *Circuit) MCZ(controls []int, target int) *Circuit {
	ctrls := make([]int, len(controls))
	copy(ctrls, controls)
	return c.add(Gate{Type: "MCZ", Target: target, Control: -1, Controls: ctrls, Cbit: -1})
}

// Reset forces a qubit back to |0>.
func (c *Circuit) Reset(qubit int) *Circuit {
	return c.add(Gate{Type: "RESET", Target: qubit, Control: -1, Cbit: -1})
}

// Measure records the given qubit into the given classical bit. The
// classical register grows if the bit index lies beyond it.
func (c *Circuit) Measure(qubit, cbit int) *Circuit {
	if cbit >= c.NumCbits {
		c.NumCbits = cbit + 1
	}
	return c.add(Gate{Type: "MEASURE", Target: qubit, Control: -1, Cbit: cbit})
}

// MeasureAll measures every qubit into the classical bit of the same index.
func (c *Circuit) MeasureAll() *Circuit {
	if c.NumCbits < c.NumQubits {
		c.NumCbits = c.NumQubits
	}
	for q := 0; q < c.NumQubits; q++ {
		c.Measure(q, q)
	}
	return c
}

// HasMeasurements reports whether the circuit contains any measurement.
func (c *Circuit) HasMeasurements() bool {
	for _, g := range c.Gates {
		if g.Type == "MEASURE" {
			return true
		}
	}
	return false
}

// EnsureMeasured returns the circuit itself when it already measures
// something, or a copy with a trailing measure-all otherwise.
func (c *Circuit) EnsureMeasured() *Circuit {
	if c.HasMeasurements() {
		return c
	}
	cp := c.Copy()
	cp.MeasureAll()
	return cp
}

// Resources summarizes the static cost of a circuit.
type Resources struct {
	NumQubits int            `json:"num_qubits"`
	NumCbits  int            `json:"num_cbits"`
	Depth     int            `json:"depth"`
	GateCount int            `json:"gate_count"`
	GateTypes map[string]int `json:"gate_types"`
}

// Resources computes qubit/cbit counts, circuit depth, and a per-type gate
// histogram. Depth is the length of the longest chain of gates sharing a
// qubit, scheduled greedily.
func (c *Circuit) Resources() Resources {
	res := Resources{
		NumQubits: c.NumQubits,
		NumCbits:  c.NumCbits,
		GateCount: len(c.Gates),
		GateTypes: make(map[string]int),
	}

	frontier := make([]int, c.NumQubits)
	for _, g := range c.Gates {
		res.GateTypes[g.Type]++

		layer := 0
		for _, q := range g.Qubits() {
			if q >= 0 && q < len(frontier) && frontier[q] > layer {
				layer = frontier[q]
			}
		}
		layer++
		for _, q := range g.Qubits() {
			if q >= 0 && q < len(frontier) {
				frontier[q] = layer
			}
		}
		if layer > res.Depth {
			res.Depth = layer
		}
	}
	return res
}
