package qiskit

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is one entry of a circuit's instruction list. Qubits are
// indices into the circuit's quantum register; Clbits address classical
// registers by name. Amplitudes is populated only for "initialize".
type Instruction struct {
	Name       string
	Params     []float64
	Amplitudes []complex128
	Qubits     []int
	Clbits     []Clbit
}

// Equal reports exact structural equality. Parameters and amplitudes are
// compared bit-for-bit; no tolerance is applied.
func (in Instruction) Equal(other Instruction) bool {
	if in.Name != other.Name ||
		len(in.Params) != len(other.Params) ||
		len(in.Amplitudes) != len(other.Amplitudes) ||
		len(in.Qubits) != len(other.Qubits) ||
		len(in.Clbits) != len(other.Clbits) {
		return false
	}
	for i, p := range in.Params {
		if p != other.Params[i] {
			return false
		}
	}
	for i, a := range in.Amplitudes {
		if a != other.Amplitudes[i] {
			return false
		}
	}
	for i, q := range in.Qubits {
		if q != other.Qubits[i] {
			return false
		}
	}
	for i, b := range in.Clbits {
		if b != other.Clbits[i] {
			return false
		}
	}
	return true
}

// String renders the instruction in a compact single-line form, mainly
// for test failure output.
func (in Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(in.Name)
	if len(in.Params) > 0 {
		parts := make([]string, len(in.Params))
		for i, p := range in.Params {
			parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		sb.WriteString("(" + strings.Join(parts, ",") + ")")
	}
	for i, q := range in.Qubits {
		if i == 0 {
			sb.WriteString(" q")
		} else {
			sb.WriteString(",q")
		}
		sb.WriteString(strconv.Itoa(q))
	}
	for _, b := range in.Clbits {
		fmt.Fprintf(&sb, " -> %s[%d]", b.Register, b.Index)
	}
	return sb.String()
}
