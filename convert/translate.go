package convert

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"quanta/ops"
	"quanta/qiskit"
)

// unitaryNormTolerance bounds how far |alpha|^2 + |beta|^2 of a
// SingleQubitGate may drift from 1 before the gate is rejected.
const unitaryNormTolerance = 1e-6

// emission is the pure result of translating one operation: the target
// instructions to append and, for measurement pragmas, the metadata entry
// to record. Either part may be empty.
type emission struct {
	instructions []qiskit.Instruction
	metadata     *metadataEntry
}

type metadataEntry struct {
	register string
	info     MeasurementInfo
}

// translateOperation maps one source operation to its emission. The
// switch is exhaustive over supported kinds; anything else is a hard
// stop with UnsupportedOperationError.
func translateOperation(op ops.Operation, rs *registerSet) (emission, error) {
	switch op.Kind {
	case ops.KindHadamard:
		return gate("h", op.Single.Qubit), nil
	case ops.KindPauliX:
		return gate("x", op.Single.Qubit), nil
	case ops.KindPauliY:
		return gate("y", op.Single.Qubit), nil
	case ops.KindPauliZ:
		return gate("z", op.Single.Qubit), nil
	case ops.KindSGate:
		return gate("s", op.Single.Qubit), nil
	case ops.KindTGate:
		return gate("t", op.Single.Qubit), nil
	case ops.KindSqrtPauliX:
		return gate("sx", op.Single.Qubit), nil
	case ops.KindInvSqrtPauliX:
		return gate("sxdg", op.Single.Qubit), nil

	case ops.KindRotateX:
		return gateP("rx", []float64{op.Rotation.Theta}, op.Rotation.Qubit), nil
	case ops.KindRotateY:
		return gateP("ry", []float64{op.Rotation.Theta}, op.Rotation.Qubit), nil
	case ops.KindRotateZ:
		return gateP("rz", []float64{op.Rotation.Theta}, op.Rotation.Qubit), nil
	case ops.KindPhaseShiftState1:
		return gateP("p", []float64{op.Rotation.Theta}, op.Rotation.Qubit), nil

	case ops.KindSingleQubitGate:
		return translateSingleQubitGate(op)

	case ops.KindCNOT:
		return gate("cx", op.Two.Control, op.Two.Target), nil
	case ops.KindControlledPauliY:
		return gate("cy", op.Two.Control, op.Two.Target), nil
	case ops.KindControlledPauliZ:
		return gate("cz", op.Two.Control, op.Two.Target), nil
	case ops.KindControlledPhaseShift:
		return gateP("cp", []float64{op.Two.Theta}, op.Two.Control, op.Two.Target), nil
	case ops.KindSWAP:
		return gate("swap", op.Two.Control, op.Two.Target), nil
	case ops.KindISwap:
		return gate("iswap", op.Two.Control, op.Two.Target), nil
	case ops.KindMolmerSorensenXX:
		return gateP("rxx", []float64{math.Pi / 2}, op.Two.Control, op.Two.Target), nil
	case ops.KindVariableMSXX:
		return gateP("rxx", []float64{op.Two.Theta}, op.Two.Control, op.Two.Target), nil

	case ops.KindDefinitionBit:
		// Registers are synthesized up front; the definition itself
		// emits nothing.
		return emission{}, nil
	case ops.KindMeasureQubit:
		return translateMeasureQubit(op, rs)
	case ops.KindPragmaSetStateVector:
		return translateSetStateVector(op, rs)
	case ops.KindPragmaRepeatedMeasurement:
		return translateRepeatedMeasurement(op, rs)
	case ops.KindPragmaActiveReset:
		return gate("reset", op.Single.Qubit), nil

	case ops.KindPragmaSleep, ops.KindPragmaGlobalPhase,
		ops.KindPragmaStopParallelBlock, ops.KindPragmaStartDecompositionBlock,
		ops.KindPragmaStopDecompositionBlock, ops.KindPragmaSetNumberOfMeasurements,
		ops.KindInputSymbolic:
		return emission{}, nil

	default:
		return emission{}, &UnsupportedOperationError{Backend: "qiskit", Kind: op.Kind}
	}
}

// translateSingleQubitGate rejects non-unitary alpha/beta pairs, then
// emits the generic u instruction with the gate's Euler angles.
func translateSingleQubitGate(op ops.Operation) (emission, error) {
	alpha := complex(op.Matrix.AlphaR, op.Matrix.AlphaI)
	beta := complex(op.Matrix.BetaR, op.Matrix.BetaI)
	norm := real(alpha)*real(alpha) + imag(alpha)*imag(alpha) +
		real(beta)*real(beta) + imag(beta)*imag(beta)
	if !scalar.EqualWithinAbs(norm, 1, unitaryNormTolerance) {
		return emission{}, &InvalidParameterError{
			Kind:   op.Kind,
			Reason: "alpha and beta do not describe a unitary (|alpha|^2+|beta|^2 != 1)",
		}
	}
	theta, phi, lambda := op.Matrix.EulerAngles()
	return gateP("u", []float64{theta, phi, lambda}, op.Matrix.Qubit), nil
}

func gate(name string, qubits ...int) emission {
	return emission{instructions: []qiskit.Instruction{{Name: name, Qubits: qubits}}}
}

func gateP(name string, params []float64, qubits ...int) emission {
	return emission{instructions: []qiskit.Instruction{{Name: name, Params: params, Qubits: qubits}}}
}
