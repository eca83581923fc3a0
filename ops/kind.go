package ops

// Kind enumerates operation kinds in a source circuit.
type Kind uint8

const (
	// KindInvalid is the zero value and never appears in a valid circuit.
	KindInvalid Kind = iota

	// Single-qubit gates without parameters.
	KindHadamard
	KindPauliX
	KindPauliY
	KindPauliZ
	KindSGate
	KindTGate
	KindSqrtPauliX
	KindInvSqrtPauliX

	// Single-qubit rotations with one angle parameter.
	KindRotateX
	KindRotateY
	KindRotateZ
	KindPhaseShiftState1

	// Arbitrary single-qubit unitary given by alpha/beta components.
	KindSingleQubitGate

	// Two-qubit gates.
	KindCNOT
	KindControlledPauliY
	KindControlledPauliZ
	KindControlledPhaseShift
	KindSWAP
	KindISwap
	KindMolmerSorensenXX
	KindVariableMSXX

	// Register definitions and measurements.
	KindDefinitionBit
	KindMeasureQubit

	// Pragmas with translation effects.
	KindPragmaSetStateVector
	KindPragmaRepeatedMeasurement
	KindPragmaActiveReset

	// Pragmas that translate to nothing in every target.
	KindPragmaSleep
	KindPragmaGlobalPhase
	KindPragmaStopParallelBlock
	KindPragmaStartDecompositionBlock
	KindPragmaStopDecompositionBlock
	KindPragmaSetNumberOfMeasurements
	KindInputSymbolic

	kindCount
)

var kindNames = [...]string{
	KindInvalid:                       "Invalid",
	KindHadamard:                      "Hadamard",
	KindPauliX:                        "PauliX",
	KindPauliY:                        "PauliY",
	KindPauliZ:                        "PauliZ",
	KindSGate:                         "SGate",
	KindTGate:                         "TGate",
	KindSqrtPauliX:                    "SqrtPauliX",
	KindInvSqrtPauliX:                 "InvSqrtPauliX",
	KindRotateX:                       "RotateX",
	KindRotateY:                       "RotateY",
	KindRotateZ:                       "RotateZ",
	KindPhaseShiftState1:              "PhaseShiftState1",
	KindSingleQubitGate:               "SingleQubitGate",
	KindCNOT:                          "CNOT",
	KindControlledPauliY:              "ControlledPauliY",
	KindControlledPauliZ:              "ControlledPauliZ",
	KindControlledPhaseShift:          "ControlledPhaseShift",
	KindSWAP:                          "SWAP",
	KindISwap:                         "ISwap",
	KindMolmerSorensenXX:              "MolmerSorensenXX",
	KindVariableMSXX:                  "VariableMSXX",
	KindDefinitionBit:                 "DefinitionBit",
	KindMeasureQubit:                  "MeasureQubit",
	KindPragmaSetStateVector:          "PragmaSetStateVector",
	KindPragmaRepeatedMeasurement:     "PragmaRepeatedMeasurement",
	KindPragmaActiveReset:             "PragmaActiveReset",
	KindPragmaSleep:                   "PragmaSleep",
	KindPragmaGlobalPhase:             "PragmaGlobalPhase",
	KindPragmaStopParallelBlock:       "PragmaStopParallelBlock",
	KindPragmaStartDecompositionBlock: "PragmaStartDecompositionBlock",
	KindPragmaStopDecompositionBlock:  "PragmaStopDecompositionBlock",
	KindPragmaSetNumberOfMeasurements: "PragmaSetNumberOfMeasurements",
	KindInputSymbolic:                 "InputSymbolic",
}

// String returns the canonical operation name for the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Invalid"
	}
	return kindNames[k]
}

// KindFromName resolves a canonical operation name back to its kind.
// It returns KindInvalid and false for unknown names.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if Kind(k) != KindInvalid && n == name {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// IsSilentPragma reports whether the kind translates to no instruction in
// every target representation.
func (k Kind) IsSilentPragma() bool {
	switch k {
	case KindPragmaSleep, KindPragmaGlobalPhase, KindPragmaStopParallelBlock,
		KindPragmaStartDecompositionBlock, KindPragmaStopDecompositionBlock,
		KindPragmaSetNumberOfMeasurements, KindInputSymbolic:
		return true
	default:
		return false
	}
}
