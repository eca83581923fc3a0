package qiskit

// QuantumCircuit owns one quantum register, zero or more named classical
// registers, and an ordered instruction list. Instructions are appended
// through the gate methods below and never removed.
type QuantumCircuit struct {
	qreg         QuantumRegister
	cregs        []ClassicalRegister
	instructions []Instruction
}

// New returns a circuit over an implicit quantum register of the given
// size with the default name.
func New(numQubits int) *QuantumCircuit {
	return NewWithRegisters(QuantumRegister{Name: DefaultQubitRegisterName, Size: numQubits})
}

// NewWithRegisters returns a circuit over explicit registers. Classical
// registers keep the given order.
func NewWithRegisters(qreg QuantumRegister, cregs ...ClassicalRegister) *QuantumCircuit {
	c := &QuantumCircuit{qreg: qreg}
	c.cregs = append(c.cregs, cregs...)
	return c
}

// QuantumReg returns the circuit's quantum register.
func (c *QuantumCircuit) QuantumReg() QuantumRegister {
	return c.qreg
}

// ClassicalRegisters returns the classical registers in creation order.
// The returned slice is owned by the circuit.
func (c *QuantumCircuit) ClassicalRegisters() []ClassicalRegister {
	return c.cregs
}

// ClassicalRegisterByName looks up a classical register by name.
func (c *QuantumCircuit) ClassicalRegisterByName(name string) (ClassicalRegister, bool) {
	for _, cr := range c.cregs {
		if cr.Name == name {
			return cr, true
		}
	}
	return ClassicalRegister{}, false
}

// NumQubits returns the quantum register size.
func (c *QuantumCircuit) NumQubits() int {
	return c.qreg.Size
}

// Instructions returns the instruction list in append order. The returned
// slice is owned by the circuit.
func (c *QuantumCircuit) Instructions() []Instruction {
	return c.instructions
}

// Equal reports structural equality: identical quantum register,
// identical classical registers in the same order, identical instruction
// sequence.
func (c *QuantumCircuit) Equal(other *QuantumCircuit) bool {
	if c.qreg != other.qreg || len(c.cregs) != len(other.cregs) ||
		len(c.instructions) != len(other.instructions) {
		return false
	}
	for i, cr := range c.cregs {
		if cr != other.cregs[i] {
			return false
		}
	}
	for i, in := range c.instructions {
		if !in.Equal(other.instructions[i]) {
			return false
		}
	}
	return true
}

// Append adds a raw instruction to the end of the list.
func (c *QuantumCircuit) Append(in Instruction) {
	c.instructions = append(c.instructions, in)
}

func (c *QuantumCircuit) append(in Instruction) {
	c.instructions = append(c.instructions, in)
}

// H appends a Hadamard gate.
func (c *QuantumCircuit) H(qubit int) {
	c.append(Instruction{Name: "h", Qubits: []int{qubit}})
}

// X appends a Pauli X gate.
func (c *QuantumCircuit) X(qubit int) {
	c.append(Instruction{Name: "x", Qubits: []int{qubit}})
}

// Y appends a Pauli Y gate.
func (c *QuantumCircuit) Y(qubit int) {
	c.append(Instruction{Name: "y", Qubits: []int{qubit}})
}

// Z appends a Pauli Z gate.
func (c *QuantumCircuit) Z(qubit int) {
	c.append(Instruction{Name: "z", Qubits: []int{qubit}})
}

// S appends an S phase gate.
func (c *QuantumCircuit) S(qubit int) {
	c.append(Instruction{Name: "s", Qubits: []int{qubit}})
}

// T appends a T phase gate.
func (c *QuantumCircuit) T(qubit int) {
	c.append(Instruction{Name: "t", Qubits: []int{qubit}})
}

// SX appends a sqrt(X) gate.
func (c *QuantumCircuit) SX(qubit int) {
	c.append(Instruction{Name: "sx", Qubits: []int{qubit}})
}

// SXdg appends an inverse sqrt(X) gate.
func (c *QuantumCircuit) SXdg(qubit int) {
	c.append(Instruction{Name: "sxdg", Qubits: []int{qubit}})
}

// RX appends an X-axis rotation by theta radians.
func (c *QuantumCircuit) RX(theta float64, qubit int) {
	c.append(Instruction{Name: "rx", Params: []float64{theta}, Qubits: []int{qubit}})
}

// RY appends a Y-axis rotation by theta radians.
func (c *QuantumCircuit) RY(theta float64, qubit int) {
	c.append(Instruction{Name: "ry", Params: []float64{theta}, Qubits: []int{qubit}})
}

// RZ appends a Z-axis rotation by theta radians.
func (c *QuantumCircuit) RZ(theta float64, qubit int) {
	c.append(Instruction{Name: "rz", Params: []float64{theta}, Qubits: []int{qubit}})
}

// P appends a phase gate by theta radians.
func (c *QuantumCircuit) P(theta float64, qubit int) {
	c.append(Instruction{Name: "p", Params: []float64{theta}, Qubits: []int{qubit}})
}

// U appends a generic single-qubit unitary with Euler angles.
func (c *QuantumCircuit) U(theta, phi, lambda float64, qubit int) {
	c.append(Instruction{Name: "u", Params: []float64{theta, phi, lambda}, Qubits: []int{qubit}})
}

// CX appends a controlled NOT.
func (c *QuantumCircuit) CX(control, target int) {
	c.append(Instruction{Name: "cx", Qubits: []int{control, target}})
}

// CY appends a controlled Y.
func (c *QuantumCircuit) CY(control, target int) {
	c.append(Instruction{Name: "cy", Qubits: []int{control, target}})
}

// CZ appends a controlled Z.
func (c *QuantumCircuit) CZ(control, target int) {
	c.append(Instruction{Name: "cz", Qubits: []int{control, target}})
}

// CP appends a controlled phase shift by theta radians.
func (c *QuantumCircuit) CP(theta float64, control, target int) {
	c.append(Instruction{Name: "cp", Params: []float64{theta}, Qubits: []int{control, target}})
}

// Swap appends a SWAP gate.
func (c *QuantumCircuit) Swap(qubit1, qubit2 int) {
	c.append(Instruction{Name: "swap", Qubits: []int{qubit1, qubit2}})
}

// ISwap appends an iSWAP gate.
func (c *QuantumCircuit) ISwap(qubit1, qubit2 int) {
	c.append(Instruction{Name: "iswap", Qubits: []int{qubit1, qubit2}})
}

// RXX appends an XX interaction by theta radians.
func (c *QuantumCircuit) RXX(theta float64, qubit1, qubit2 int) {
	c.append(Instruction{Name: "rxx", Params: []float64{theta}, Qubits: []int{qubit1, qubit2}})
}

// Reset appends a reset to |0>.
func (c *QuantumCircuit) Reset(qubit int) {
	c.append(Instruction{Name: "reset", Qubits: []int{qubit}})
}

// Initialize appends a state initialization over the whole quantum
// register with the given amplitude vector. The vector is stored as
// passed, without copying or normalization.
func (c *QuantumCircuit) Initialize(amplitudes []complex128) {
	qubits := make([]int, c.qreg.Size)
	for i := range qubits {
		qubits[i] = i
	}
	c.append(Instruction{Name: "initialize", Amplitudes: amplitudes, Qubits: qubits})
}

// Measure appends a single measure instruction mapping qubits[i] to
// clbits[i]. Both slices must have the same length.
func (c *QuantumCircuit) Measure(qubits []int, clbits []Clbit) {
	c.append(Instruction{Name: "measure", Qubits: qubits, Clbits: clbits})
}

// MeasureQubit appends a measure of one qubit into one register bit.
func (c *QuantumCircuit) MeasureQubit(qubit int, register string, index int) {
	c.Measure([]int{qubit}, []Clbit{{Register: register, Index: index}})
}
