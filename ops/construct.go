package ops

// Hadamard applies the Hadamard gate to a qubit.
func Hadamard(qubit int) Operation {
	return Operation{Kind: KindHadamard, Single: SingleQubitOp{Qubit: qubit}}
}

// PauliX applies the Pauli X gate to a qubit.
func PauliX(qubit int) Operation {
	return Operation{Kind: KindPauliX, Single: SingleQubitOp{Qubit: qubit}}
}

// PauliY applies the Pauli Y gate to a qubit.
func PauliY(qubit int) Operation {
	return Operation{Kind: KindPauliY, Single: SingleQubitOp{Qubit: qubit}}
}

// PauliZ applies the Pauli Z gate to a qubit.
func PauliZ(qubit int) Operation {
	return Operation{Kind: KindPauliZ, Single: SingleQubitOp{Qubit: qubit}}
}

// SGate applies the S phase gate to a qubit.
func SGate(qubit int) Operation {
	return Operation{Kind: KindSGate, Single: SingleQubitOp{Qubit: qubit}}
}

// TGate applies the T phase gate to a qubit.
func TGate(qubit int) Operation {
	return Operation{Kind: KindTGate, Single: SingleQubitOp{Qubit: qubit}}
}

// SqrtPauliX applies the square root of Pauli X to a qubit.
func SqrtPauliX(qubit int) Operation {
	return Operation{Kind: KindSqrtPauliX, Single: SingleQubitOp{Qubit: qubit}}
}

// InvSqrtPauliX applies the inverse square root of Pauli X to a qubit.
func InvSqrtPauliX(qubit int) Operation {
	return Operation{Kind: KindInvSqrtPauliX, Single: SingleQubitOp{Qubit: qubit}}
}

// RotateX rotates a qubit around the X axis by theta radians.
func RotateX(qubit int, theta float64) Operation {
	return Operation{Kind: KindRotateX, Rotation: RotationOp{Qubit: qubit, Theta: theta}}
}

// RotateY rotates a qubit around the Y axis by theta radians.
func RotateY(qubit int, theta float64) Operation {
	return Operation{Kind: KindRotateY, Rotation: RotationOp{Qubit: qubit, Theta: theta}}
}

// RotateZ rotates a qubit around the Z axis by theta radians.
func RotateZ(qubit int, theta float64) Operation {
	return Operation{Kind: KindRotateZ, Rotation: RotationOp{Qubit: qubit, Theta: theta}}
}

// PhaseShiftState1 shifts the phase of the |1> state of a qubit.
func PhaseShiftState1(qubit int, theta float64) Operation {
	return Operation{Kind: KindPhaseShiftState1, Rotation: RotationOp{Qubit: qubit, Theta: theta}}
}

// SingleQubitGate applies an arbitrary single-qubit unitary given by the
// real and imaginary parts of its alpha and beta components.
func SingleQubitGate(qubit int, alphaR, alphaI, betaR, betaI float64) Operation {
	return Operation{Kind: KindSingleQubitGate, Matrix: MatrixGateOp{
		Qubit:  qubit,
		AlphaR: alphaR,
		AlphaI: alphaI,
		BetaR:  betaR,
		BetaI:  betaI,
	}}
}

// CNOT applies a controlled NOT with the given control and target qubits.
func CNOT(control, target int) Operation {
	return Operation{Kind: KindCNOT, Two: TwoQubitOp{Control: control, Target: target}}
}

// ControlledPauliY applies a controlled Pauli Y gate.
func ControlledPauliY(control, target int) Operation {
	return Operation{Kind: KindControlledPauliY, Two: TwoQubitOp{Control: control, Target: target}}
}

// ControlledPauliZ applies a controlled Pauli Z gate.
func ControlledPauliZ(control, target int) Operation {
	return Operation{Kind: KindControlledPauliZ, Two: TwoQubitOp{Control: control, Target: target}}
}

// ControlledPhaseShift applies a controlled phase shift by theta radians.
func ControlledPhaseShift(control, target int, theta float64) Operation {
	return Operation{Kind: KindControlledPhaseShift, Two: TwoQubitOp{Control: control, Target: target, Theta: theta}}
}

// SWAP exchanges the states of two qubits.
func SWAP(control, target int) Operation {
	return Operation{Kind: KindSWAP, Two: TwoQubitOp{Control: control, Target: target}}
}

// ISwap applies the iSWAP gate to two qubits.
func ISwap(control, target int) Operation {
	return Operation{Kind: KindISwap, Two: TwoQubitOp{Control: control, Target: target}}
}

// MolmerSorensenXX applies the fixed-angle Molmer-Sorensen XX interaction.
func MolmerSorensenXX(control, target int) Operation {
	return Operation{Kind: KindMolmerSorensenXX, Two: TwoQubitOp{Control: control, Target: target}}
}

// VariableMSXX applies the variable-angle Molmer-Sorensen XX interaction.
func VariableMSXX(control, target int, theta float64) Operation {
	return Operation{Kind: KindVariableMSXX, Two: TwoQubitOp{Control: control, Target: target, Theta: theta}}
}

// DefinitionBit declares a classical-bit register. Only registers with
// isOutput set are materialized in translated circuits.
func DefinitionBit(name string, length int, isOutput bool) Operation {
	return Operation{Kind: KindDefinitionBit, Def: BitDefinitionOp{
		Name:     name,
		Length:   length,
		IsOutput: isOutput,
	}}
}

// MeasureQubit measures a single qubit into one bit of a readout register.
func MeasureQubit(qubit int, readout string, readoutIndex int) Operation {
	return Operation{Kind: KindMeasureQubit, Measure: MeasureOp{
		Qubit:        qubit,
		Readout:      readout,
		ReadoutIndex: readoutIndex,
	}}
}

// PragmaSetStateVector replaces the quantum state with the given
// amplitude vector. The vector length must be a power of two.
func PragmaSetStateVector(amplitudes []complex128) Operation {
	return Operation{Kind: KindPragmaSetStateVector, State: StateVectorOp{Amplitudes: amplitudes}}
}

// PragmaRepeatedMeasurement measures into the readout register and records
// the requested number of repetitions as metadata for a downstream
// executor. A nil qubitMapping selects the identity assignment.
func PragmaRepeatedMeasurement(readout string, repetitions int, qubitMapping map[int]int) Operation {
	return Operation{Kind: KindPragmaRepeatedMeasurement, Repeated: RepeatedMeasurementOp{
		Readout:      readout,
		Repetitions:  repetitions,
		QubitMapping: qubitMapping,
	}}
}

// PragmaActiveReset resets a qubit to the |0> state.
func PragmaActiveReset(qubit int) Operation {
	return Operation{Kind: KindPragmaActiveReset, Single: SingleQubitOp{Qubit: qubit}}
}

// PragmaSleep holds the given qubits idle for a duration in seconds.
func PragmaSleep(qubits []int, duration float64) Operation {
	return Operation{Kind: KindPragmaSleep, Sleep: SleepOp{Qubits: qubits, Duration: duration}}
}

// PragmaGlobalPhase records an unobservable global phase.
func PragmaGlobalPhase(phase float64) Operation {
	return Operation{Kind: KindPragmaGlobalPhase, Phase: GlobalPhaseOp{Phase: phase}}
}

// PragmaStopParallelBlock ends a block of parallel operations.
func PragmaStopParallelBlock(qubits []int) Operation {
	return Operation{Kind: KindPragmaStopParallelBlock, Block: BlockOp{Qubits: qubits}}
}

// PragmaStartDecompositionBlock starts a decomposition block.
func PragmaStartDecompositionBlock(qubits []int) Operation {
	return Operation{Kind: KindPragmaStartDecompositionBlock, Block: BlockOp{Qubits: qubits}}
}

// PragmaStopDecompositionBlock ends a decomposition block.
func PragmaStopDecompositionBlock(qubits []int) Operation {
	return Operation{Kind: KindPragmaStopDecompositionBlock, Block: BlockOp{Qubits: qubits}}
}

// PragmaSetNumberOfMeasurements is a legacy shot-count hint for a readout
// register.
func PragmaSetNumberOfMeasurements(number int, readout string) Operation {
	return Operation{Kind: KindPragmaSetNumberOfMeasurements, NumMeas: SetMeasurementsOp{
		Readout: readout,
		Number:  number,
	}}
}

// InputSymbolic declares a symbolic input value by name.
func InputSymbolic(name string, value float64) Operation {
	return Operation{Kind: KindInputSymbolic, Symbolic: SymbolicOp{Name: name, Value: value}}
}
