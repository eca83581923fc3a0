package convert

import (
	"fmt"
	"maps"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"quanta/ops"
	"quanta/qiskit"
)

// stateNormTolerance bounds how far the total probability of an explicit
// state vector may drift from 1 before the pragma is rejected.
const stateNormTolerance = 1e-9

// translateSetStateVector emits a single initialize instruction over the
// full qubit register. The amplitude vector must have length 2^n for the
// synthesized register of n qubits and must be normalized; the values
// themselves pass through untouched.
func translateSetStateVector(op ops.Operation, rs *registerSet) (emission, error) {
	amps := op.State.Amplitudes
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return emission{}, &InvalidParameterError{
			Kind:   op.Kind,
			Reason: fmt.Sprintf("state vector length %d is not a power of two", n),
		}
	}
	if qubits := bits.Len(uint(n)) - 1; qubits != rs.qreg.Size {
		return emission{}, &InvalidParameterError{
			Kind: op.Kind,
			Reason: fmt.Sprintf("state vector addresses %d qubit(s), circuit has %d",
				qubits, rs.qreg.Size),
		}
	}
	probabilities := make([]float64, n)
	for i, a := range amps {
		probabilities[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	if !scalar.EqualWithinAbs(floats.Sum(probabilities), 1, stateNormTolerance) {
		return emission{}, &InvalidParameterError{
			Kind:   op.Kind,
			Reason: "state vector is not normalized",
		}
	}
	targets := make([]int, rs.qreg.Size)
	for i := range targets {
		targets[i] = i
	}
	return emission{instructions: []qiskit.Instruction{{
		Name:       "initialize",
		Amplitudes: amps,
		Qubits:     targets,
	}}}, nil
}

// translateRepeatedMeasurement emits exactly one measure instruction
// into the readout register and records the repetition count as
// metadata. Without an explicit mapping, qubit i is measured into bit i
// of the register; with one, the given pairs are used in ascending qubit
// order. The repetition count never reaches the instruction stream.
func translateRepeatedMeasurement(op ops.Operation, rs *registerSet) (emission, error) {
	rm := op.Repeated
	if rm.Repetitions < 1 {
		return emission{}, &InvalidParameterError{
			Kind:   op.Kind,
			Reason: fmt.Sprintf("repetition count %d is not positive", rm.Repetitions),
		}
	}
	creg, err := rs.outputRegister(op.Kind, rm.Readout)
	if err != nil {
		return emission{}, err
	}

	var qubits []int
	var clbits []qiskit.Clbit
	if rm.QubitMapping == nil {
		n := creg.Size
		if rs.qreg.Size < n {
			n = rs.qreg.Size
		}
		for i := 0; i < n; i++ {
			qubits = append(qubits, i)
			clbits = append(clbits, qiskit.Clbit{Register: creg.Name, Index: i})
		}
	} else {
		mapped := make([]int, 0, len(rm.QubitMapping))
		for q := range rm.QubitMapping {
			mapped = append(mapped, q)
		}
		sort.Ints(mapped)
		for _, q := range mapped {
			bit := rm.QubitMapping[q]
			if bit < 0 || bit >= creg.Size {
				return emission{}, &InvalidParameterError{
					Kind:   op.Kind,
					Reason: fmt.Sprintf("mapped bit %d out of range for register %q of size %d", bit, creg.Name, creg.Size),
				}
			}
			qubits = append(qubits, q)
			clbits = append(clbits, qiskit.Clbit{Register: creg.Name, Index: bit})
		}
	}

	var mapping map[int]int
	if rm.QubitMapping != nil {
		mapping = maps.Clone(rm.QubitMapping)
	}
	return emission{
		instructions: []qiskit.Instruction{{Name: "measure", Qubits: qubits, Clbits: clbits}},
		metadata: &metadataEntry{
			register: creg.Name,
			info:     MeasurementInfo{Repetitions: rm.Repetitions, QubitMapping: mapping},
		},
	}, nil
}

// translateMeasureQubit emits a single-qubit measure into one bit of the
// readout register. It records no metadata.
func translateMeasureQubit(op ops.Operation, rs *registerSet) (emission, error) {
	m := op.Measure
	creg, err := rs.outputRegister(op.Kind, m.Readout)
	if err != nil {
		return emission{}, err
	}
	if m.ReadoutIndex < 0 || m.ReadoutIndex >= creg.Size {
		return emission{}, &InvalidParameterError{
			Kind:   op.Kind,
			Reason: fmt.Sprintf("readout index %d out of range for register %q of size %d", m.ReadoutIndex, creg.Name, creg.Size),
		}
	}
	return emission{instructions: []qiskit.Instruction{{
		Name:   "measure",
		Qubits: []int{m.Qubit},
		Clbits: []qiskit.Clbit{{Register: creg.Name, Index: m.ReadoutIndex}},
	}}}, nil
}
