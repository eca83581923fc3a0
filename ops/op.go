package ops

import (
	"math"
	"math/cmplx"
)

// Operation is a tagged variant over all source-circuit operation kinds.
// Kind selects which payload field is populated; all other payloads are
// zero values. Operations are immutable once appended to a circuit.
type Operation struct {
	Kind Kind

	Single   SingleQubitOp
	Rotation RotationOp
	Matrix   MatrixGateOp
	Two      TwoQubitOp
	Def      BitDefinitionOp
	Measure  MeasureOp
	State    StateVectorOp
	Repeated RepeatedMeasurementOp
	Sleep    SleepOp
	Phase    GlobalPhaseOp
	Block    BlockOp
	NumMeas  SetMeasurementsOp
	Symbolic SymbolicOp
}

// SingleQubitOp addresses one qubit with no parameters.
type SingleQubitOp struct {
	Qubit int
}

// RotationOp is a single-qubit gate with one angle parameter.
type RotationOp struct {
	Qubit int
	Theta float64
}

// MatrixGateOp is an arbitrary single-qubit unitary described by the real
// and imaginary parts of its alpha and beta components.
type MatrixGateOp struct {
	Qubit  int
	AlphaR float64
	AlphaI float64
	BetaR  float64
	BetaI  float64
}

// EulerAngles converts the alpha/beta description into the Euler angles
// of the equivalent generic unitary: theta = 2*acos(|alpha|),
// phi = -arg(alpha) + arg(beta), lambda = -arg(alpha) - arg(beta).
func (m MatrixGateOp) EulerAngles() (theta, phi, lambda float64) {
	alpha := complex(m.AlphaR, m.AlphaI)
	beta := complex(m.BetaR, m.BetaI)
	theta = 2 * math.Acos(cmplx.Abs(alpha))
	phi = -cmplx.Phase(alpha) + cmplx.Phase(beta)
	lambda = -cmplx.Phase(alpha) - cmplx.Phase(beta)
	return theta, phi, lambda
}

// TwoQubitOp addresses a control and a target qubit. Theta is only
// meaningful for parameterized kinds (ControlledPhaseShift, VariableMSXX).
type TwoQubitOp struct {
	Control int
	Target  int
	Theta   float64
}

// BitDefinitionOp declares a named classical-bit register.
type BitDefinitionOp struct {
	Name     string
	Length   int
	IsOutput bool
}

// MeasureOp measures one qubit into one bit of a readout register.
type MeasureOp struct {
	Qubit        int
	Readout      string
	ReadoutIndex int
}

// StateVectorOp replaces the full quantum state with an explicit
// amplitude vector of length 2^n for n qubits.
type StateVectorOp struct {
	Amplitudes []complex128
}

// RepeatedMeasurementOp measures all qubits into a readout register and
// asks a downstream executor to repeat the sampling. A nil QubitMapping
// means the identity qubit-to-bit assignment.
type RepeatedMeasurementOp struct {
	Readout      string
	Repetitions  int
	QubitMapping map[int]int
}

// SleepOp marks a timing hold on the given qubits.
type SleepOp struct {
	Qubits   []int
	Duration float64
}

// GlobalPhaseOp records a global phase with no observable effect.
type GlobalPhaseOp struct {
	Phase float64
}

// BlockOp delimits a parallel or decomposition block over qubits.
type BlockOp struct {
	Qubits []int
}

// SetMeasurementsOp is a legacy shot-count hint for a readout register.
type SetMeasurementsOp struct {
	Readout string
	Number  int
}

// SymbolicOp declares a symbolic input value.
type SymbolicOp struct {
	Name  string
	Value float64
}

// InvolvedQubits returns the qubit indices referenced by the operation.
// Register definitions and register-level pragmas without an explicit
// mapping reference no qubits directly.
func (op Operation) InvolvedQubits() []int {
	switch op.Kind {
	case KindHadamard, KindPauliX, KindPauliY, KindPauliZ,
		KindSGate, KindTGate, KindSqrtPauliX, KindInvSqrtPauliX,
		KindPragmaActiveReset:
		return []int{op.Single.Qubit}
	case KindRotateX, KindRotateY, KindRotateZ, KindPhaseShiftState1:
		return []int{op.Rotation.Qubit}
	case KindSingleQubitGate:
		return []int{op.Matrix.Qubit}
	case KindCNOT, KindControlledPauliY, KindControlledPauliZ,
		KindControlledPhaseShift, KindSWAP, KindISwap,
		KindMolmerSorensenXX, KindVariableMSXX:
		return []int{op.Two.Control, op.Two.Target}
	case KindMeasureQubit:
		return []int{op.Measure.Qubit}
	case KindPragmaRepeatedMeasurement:
		if len(op.Repeated.QubitMapping) == 0 {
			return nil
		}
		qubits := make([]int, 0, len(op.Repeated.QubitMapping))
		for q := range op.Repeated.QubitMapping {
			qubits = append(qubits, q)
		}
		return qubits
	case KindPragmaSleep:
		return op.Sleep.Qubits
	case KindPragmaStopParallelBlock, KindPragmaStartDecompositionBlock,
		KindPragmaStopDecompositionBlock:
		return op.Block.Qubits
	default:
		return nil
	}
}
