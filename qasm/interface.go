// Package qasm renders source circuits as OpenQASM 2.0 text, the second
// target representation next to the object-model one in package convert.
// Each operation maps to zero or more QASM statements; operations without
// a QASM equivalent fail hard instead of being skipped.
package qasm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"quanta/convert"
	"quanta/ops"
)

const backendName = "QASM"

// CallCircuit translates every operation of the circuit and returns the
// resulting statements in program order. Operations that translate to
// nothing contribute no line; a negative qubit index fails the whole
// translation.
func CallCircuit(operations []ops.Operation, qubitRegisterName string) ([]string, error) {
	lines := make([]string, 0, len(operations))
	for _, op := range operations {
		for _, qubit := range op.InvolvedQubits() {
			if qubit < 0 {
				return nil, &convert.InvalidParameterError{
					Kind:   op.Kind,
					Reason: fmt.Sprintf("qubit index %d is negative", qubit),
				}
			}
		}
		s, err := CallOperation(op, qubitRegisterName)
		if err != nil {
			return nil, err
		}
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines, nil
}

// CallOperation translates a single operation into QASM statements.
// Silent pragmas return the empty string. Angle parameters are printed in
// the shortest form that round-trips.
func CallOperation(op ops.Operation, qubitRegisterName string) (string, error) {
	q := qubitRegisterName
	switch op.Kind {
	case ops.KindHadamard:
		return fmt.Sprintf("h %s[%d];", q, op.Single.Qubit), nil
	case ops.KindPauliX:
		return fmt.Sprintf("x %s[%d];", q, op.Single.Qubit), nil
	case ops.KindPauliY:
		return fmt.Sprintf("y %s[%d];", q, op.Single.Qubit), nil
	case ops.KindPauliZ:
		return fmt.Sprintf("z %s[%d];", q, op.Single.Qubit), nil
	case ops.KindSGate:
		return fmt.Sprintf("s %s[%d];", q, op.Single.Qubit), nil
	case ops.KindTGate:
		return fmt.Sprintf("t %s[%d];", q, op.Single.Qubit), nil
	case ops.KindSqrtPauliX:
		return fmt.Sprintf("sx %s[%d];", q, op.Single.Qubit), nil
	case ops.KindInvSqrtPauliX:
		return fmt.Sprintf("sxdg %s[%d];", q, op.Single.Qubit), nil

	case ops.KindRotateX:
		return fmt.Sprintf("rx(%s) %s[%d];", angle(op.Rotation.Theta), q, op.Rotation.Qubit), nil
	case ops.KindRotateY:
		return fmt.Sprintf("ry(%s) %s[%d];", angle(op.Rotation.Theta), q, op.Rotation.Qubit), nil
	case ops.KindRotateZ:
		return fmt.Sprintf("rz(%s) %s[%d];", angle(op.Rotation.Theta), q, op.Rotation.Qubit), nil
	case ops.KindPhaseShiftState1:
		return fmt.Sprintf("p(%s) %s[%d];", angle(op.Rotation.Theta), q, op.Rotation.Qubit), nil

	case ops.KindSingleQubitGate:
		return singleQubitGateStatement(op, q), nil

	case ops.KindCNOT:
		return fmt.Sprintf("cx %s[%d],%s[%d];", q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindControlledPauliY:
		return fmt.Sprintf("cy %s[%d],%s[%d];", q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindControlledPauliZ:
		return fmt.Sprintf("cz %s[%d],%s[%d];", q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindControlledPhaseShift:
		return fmt.Sprintf("cp(%s) %s[%d],%s[%d];", angle(op.Two.Theta), q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindSWAP:
		return fmt.Sprintf("swap %s[%d],%s[%d];", q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindMolmerSorensenXX:
		return fmt.Sprintf("rxx(pi/2) %s[%d],%s[%d];", q, op.Two.Control, q, op.Two.Target), nil
	case ops.KindVariableMSXX:
		return fmt.Sprintf("rxx(%s) %s[%d],%s[%d];", angle(op.Two.Theta), q, op.Two.Control, q, op.Two.Target), nil

	case ops.KindDefinitionBit:
		return fmt.Sprintf("creg %s[%d];", op.Def.Name, op.Def.Length), nil

	case ops.KindMeasureQubit:
		return fmt.Sprintf("measure %s[%d] -> %s[%d];", q, op.Measure.Qubit, op.Measure.Readout, op.Measure.ReadoutIndex), nil

	case ops.KindPragmaRepeatedMeasurement:
		return repeatedMeasurementStatement(op, q), nil

	case ops.KindPragmaActiveReset:
		return fmt.Sprintf("reset %s[%d];", q, op.Single.Qubit), nil

	case ops.KindPragmaSleep, ops.KindPragmaGlobalPhase,
		ops.KindPragmaStopParallelBlock, ops.KindPragmaStartDecompositionBlock,
		ops.KindPragmaStopDecompositionBlock, ops.KindPragmaSetNumberOfMeasurements,
		ops.KindInputSymbolic:
		return "", nil

	default:
		// Includes ISwap and PragmaSetStateVector: neither has a QASM
		// 2.0 statement form.
		return "", &convert.UnsupportedOperationError{Backend: backendName, Kind: op.Kind}
	}
}

// repeatedMeasurementStatement measures the whole qubit register into the
// readout register, or one statement per pair when an explicit mapping is
// given (in ascending qubit order).
func repeatedMeasurementStatement(op ops.Operation, q string) string {
	rm := op.Repeated
	if rm.QubitMapping == nil {
		return fmt.Sprintf("measure %s -> %s;", q, rm.Readout)
	}
	mapped := make([]int, 0, len(rm.QubitMapping))
	for qubit := range rm.QubitMapping {
		mapped = append(mapped, qubit)
	}
	sort.Ints(mapped)
	var sb strings.Builder
	for i, qubit := range mapped {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "measure %s[%d] -> %s[%d];", q, qubit, rm.Readout, rm.QubitMapping[qubit])
	}
	return sb.String()
}

// singleQubitGateStatement prints the Euler-angle u3 form of an arbitrary
// single-qubit unitary with fixed 15-decimal parameters.
func singleQubitGateStatement(op ops.Operation, q string) string {
	theta, phi, lambda := op.Matrix.EulerAngles()
	return fmt.Sprintf("u3(%s,%s,%s) %s[%d];",
		fixed(theta), fixed(phi), fixed(lambda), q, op.Matrix.Qubit)
}

func angle(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fixed(v float64) string {
	// Flush negative zero so identity angles print as 0, not -0.
	v += 0
	return strconv.FormatFloat(v, 'f', 15, 64)
}
