package convert_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quanta/circuit"
	"quanta/convert"
	"quanta/ops"
	"quanta/qiskit"
)

func TestBasicCircuit(t *testing.T) {
	c := circuit.New()
	c.Add(ops.Hadamard(0))
	c.Add(ops.PauliX(1))

	want := qiskit.New(2)
	want.H(0)
	want.X(1)

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.True(t, out.Equal(want), "got %v, want %v", out.Instructions(), want.Instructions())
	assert.Empty(t, meta.Measurements)
}

func TestQRegCRegNames(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("cr", 2, true))
	c.Add(ops.DefinitionBit("crr", 3, true))

	want := qiskit.NewWithRegisters(
		qiskit.QuantumRegister{Name: "qrg", Size: 1},
		qiskit.ClassicalRegister{Name: "cr", Size: 2},
		qiskit.ClassicalRegister{Name: "crr", Size: 3},
	)

	out, _, err := convert.ToQiskit(c, convert.WithQubitRegisterName("qrg"))
	require.NoError(t, err)
	assert.True(t, out.Equal(want))
	assert.Empty(t, out.Instructions())
}

func TestSetStateVector(t *testing.T) {
	c := circuit.New()
	c.Add(ops.PragmaSetStateVector([]complex128{0, 1}))

	want := qiskit.New(1)
	want.Initialize([]complex128{0, 1})

	out, _, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.True(t, out.Equal(want))
}

func TestSetStateVectorFollowedByGate(t *testing.T) {
	c := circuit.New()
	c.Add(ops.PragmaSetStateVector([]complex128{0, 1}))
	c.Add(ops.RotateX(0, 0.23))

	want := qiskit.New(1)
	want.Initialize([]complex128{0, 1})
	want.RX(0.23, 0)

	out, _, err := convert.ToQiskit(c)
	require.NoError(t, err)
	require.Len(t, out.Instructions(), 2)
	assert.Equal(t, "initialize", out.Instructions()[0].Name)
	assert.Equal(t, "rx", out.Instructions()[1].Name)
	assert.True(t, out.Equal(want))
}

func TestRepeatedMeasurement(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ri", 1, true))
	c.Add(ops.PragmaRepeatedMeasurement("ri", 300, nil))

	want := qiskit.NewWithRegisters(
		qiskit.QuantumRegister{Name: "q", Size: 1},
		qiskit.ClassicalRegister{Name: "ri", Size: 1},
	)
	want.MeasureQubit(0, "ri", 0)

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.True(t, out.Equal(want))
	assert.True(t, meta.Contains("ri", 300, nil))
}

func TestRepeatedMeasurementWithMapping(t *testing.T) {
	mapping := map[int]int{0: 1, 1: 0}
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 50, mapping))

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)

	require.Len(t, out.Instructions(), 1)
	in := out.Instructions()[0]
	assert.Equal(t, "measure", in.Name)
	assert.Equal(t, []int{0, 1}, in.Qubits)
	assert.Equal(t, []qiskit.Clbit{
		{Register: "ro", Index: 1},
		{Register: "ro", Index: 0},
	}, in.Clbits)
	assert.True(t, meta.Contains("ro", 50, mapping))
	assert.False(t, meta.Contains("ro", 50, nil))
}

func TestRepeatedMeasurementOverwrites(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 1, true))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 300, nil))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 500, nil))

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	// Each pragma still emits its measure instruction; the metadata
	// entry is keyed by register and keeps only the last pragma.
	assert.Len(t, out.Instructions(), 2)
	require.Len(t, meta.Measurements, 1)
	assert.True(t, meta.Contains("ro", 500, nil))
}

func TestMeasureQubit(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.PauliX(0))
	c.Add(ops.MeasureQubit(0, "ro", 1))

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	require.Len(t, out.Instructions(), 2)
	assert.Equal(t, qiskit.Instruction{
		Name:   "measure",
		Qubits: []int{0},
		Clbits: []qiskit.Clbit{{Register: "ro", Index: 1}},
	}, out.Instructions()[1])
	assert.Empty(t, meta.Measurements)
}

func TestQubitRegisterNameOverrideOnlyChangesName(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.CNOT(0, 3))

	plain, _, err := convert.ToQiskit(c)
	require.NoError(t, err)
	named, _, err := convert.ToQiskit(c, convert.WithQubitRegisterName("qr"))
	require.NoError(t, err)

	assert.Equal(t, "q", plain.QuantumReg().Name)
	assert.Equal(t, "qr", named.QuantumReg().Name)
	assert.Equal(t, plain.QuantumReg().Size, named.QuantumReg().Size)
	assert.Equal(t, plain.ClassicalRegisters(), named.ClassicalRegisters())
}

func TestGateTranslationTable(t *testing.T) {
	tests := []struct {
		name string
		op   ops.Operation
		want qiskit.Instruction
	}{
		{"hadamard", ops.Hadamard(0), qiskit.Instruction{Name: "h", Qubits: []int{0}}},
		{"pauli_y", ops.PauliY(2), qiskit.Instruction{Name: "y", Qubits: []int{2}}},
		{"pauli_z", ops.PauliZ(1), qiskit.Instruction{Name: "z", Qubits: []int{1}}},
		{"s_gate", ops.SGate(0), qiskit.Instruction{Name: "s", Qubits: []int{0}}},
		{"t_gate", ops.TGate(0), qiskit.Instruction{Name: "t", Qubits: []int{0}}},
		{"sqrt_x", ops.SqrtPauliX(0), qiskit.Instruction{Name: "sx", Qubits: []int{0}}},
		{"inv_sqrt_x", ops.InvSqrtPauliX(0), qiskit.Instruction{Name: "sxdg", Qubits: []int{0}}},
		{"rotate_y", ops.RotateY(1, 0.5), qiskit.Instruction{Name: "ry", Params: []float64{0.5}, Qubits: []int{1}}},
		{"rotate_z", ops.RotateZ(1, -0.5), qiskit.Instruction{Name: "rz", Params: []float64{-0.5}, Qubits: []int{1}}},
		{"phase_shift", ops.PhaseShiftState1(0, 1.25), qiskit.Instruction{Name: "p", Params: []float64{1.25}, Qubits: []int{0}}},
		{"cnot", ops.CNOT(1, 0), qiskit.Instruction{Name: "cx", Qubits: []int{1, 0}}},
		{"controlled_y", ops.ControlledPauliY(0, 1), qiskit.Instruction{Name: "cy", Qubits: []int{0, 1}}},
		{"controlled_z", ops.ControlledPauliZ(0, 1), qiskit.Instruction{Name: "cz", Qubits: []int{0, 1}}},
		{"controlled_phase", ops.ControlledPhaseShift(0, 1, 0.23), qiskit.Instruction{Name: "cp", Params: []float64{0.23}, Qubits: []int{0, 1}}},
		{"swap", ops.SWAP(0, 1), qiskit.Instruction{Name: "swap", Qubits: []int{0, 1}}},
		{"iswap", ops.ISwap(0, 1), qiskit.Instruction{Name: "iswap", Qubits: []int{0, 1}}},
		{"molmer_sorensen", ops.MolmerSorensenXX(0, 1), qiskit.Instruction{Name: "rxx", Params: []float64{math.Pi / 2}, Qubits: []int{0, 1}}},
		{"variable_msxx", ops.VariableMSXX(0, 1, 0.77), qiskit.Instruction{Name: "rxx", Params: []float64{0.77}, Qubits: []int{0, 1}}},
		{"active_reset", ops.PragmaActiveReset(1), qiskit.Instruction{Name: "reset", Qubits: []int{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := circuit.New()
			c.Add(tt.op)
			out, _, err := convert.ToQiskit(c)
			require.NoError(t, err)
			require.Len(t, out.Instructions(), 1)
			assert.True(t, out.Instructions()[0].Equal(tt.want),
				"got %v, want %v", out.Instructions()[0], tt.want)
		})
	}
}

func TestSingleQubitGate(t *testing.T) {
	// alpha = 1, beta = 0 is the identity: all Euler angles are zero.
	c := circuit.New()
	c.Add(ops.SingleQubitGate(0, 1, 0, 0, 0))

	out, _, err := convert.ToQiskit(c)
	require.NoError(t, err)
	require.Len(t, out.Instructions(), 1)
	assert.True(t, out.Instructions()[0].Equal(qiskit.Instruction{
		Name:   "u",
		Params: []float64{0, 0, 0},
		Qubits: []int{0},
	}))
}

func TestSingleQubitGateNotUnitary(t *testing.T) {
	c := circuit.New()
	c.Add(ops.SingleQubitGate(0, 1, 0, 1, 0))

	_, _, err := convert.ToQiskit(c)
	var invalid *convert.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ops.KindSingleQubitGate, invalid.Kind)
}

func TestSilentPragmasEmitNothing(t *testing.T) {
	c := circuit.New()
	c.Add(ops.PragmaSleep([]int{0}, 0.001))
	c.Add(ops.PragmaGlobalPhase(0.5))
	c.Add(ops.PragmaStopParallelBlock([]int{0}))
	c.Add(ops.PragmaStartDecompositionBlock([]int{0}))
	c.Add(ops.PragmaStopDecompositionBlock([]int{0}))
	c.Add(ops.PragmaSetNumberOfMeasurements(10, "ro"))
	c.Add(ops.InputSymbolic("theta", 0.1))

	out, meta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.Empty(t, out.Instructions())
	assert.Empty(t, meta.Measurements)
}

func TestUnsupportedOperation(t *testing.T) {
	c := circuit.New()
	c.Add(ops.Operation{Kind: ops.Kind(250)})

	out, meta, err := convert.ToQiskit(c)
	assert.Nil(t, out)
	assert.Nil(t, meta)
	var unsupported *convert.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "qiskit", unsupported.Backend)
}

func TestDuplicateRegister(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 1, true))
	c.Add(ops.DefinitionBit("ro", 2, true))

	out, meta, err := convert.ToQiskit(c)
	assert.Nil(t, out)
	assert.Nil(t, meta)
	var dup *convert.DuplicateRegisterError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "ro", dup.Name)
	assert.Equal(t, 2, dup.Size)
	assert.Equal(t, 1, dup.Previous)
}

func TestIdenticalRedeclarationIsIdempotent(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.DefinitionBit("ro", 2, true))

	out, _, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.Equal(t, []qiskit.ClassicalRegister{{Name: "ro", Size: 2}}, out.ClassicalRegisters())
}

func TestStateVectorValidation(t *testing.T) {
	tests := []struct {
		name string
		c    *circuit.Circuit
	}{
		{
			"length_not_power_of_two",
			circuit.New().Add(ops.PragmaSetStateVector([]complex128{1, 0, 0})),
		},
		{
			"length_does_not_match_qubits",
			circuit.New().
				Add(ops.Hadamard(1)).
				Add(ops.PragmaSetStateVector([]complex128{1, 0})),
		},
		{
			"not_normalized",
			circuit.New().Add(ops.PragmaSetStateVector([]complex128{0.5, 0.5})),
		},
		{
			"empty",
			circuit.New().Add(ops.PragmaSetStateVector(nil)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, meta, err := convert.ToQiskit(tt.c)
			assert.Nil(t, out)
			assert.Nil(t, meta)
			var invalid *convert.InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, ops.KindPragmaSetStateVector, invalid.Kind)
		})
	}
}

func TestReadoutRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		c    *circuit.Circuit
	}{
		{
			"undeclared_register",
			circuit.New().Add(ops.PragmaRepeatedMeasurement("ro", 10, nil)),
		},
		{
			"non_output_register",
			circuit.New().
				Add(ops.DefinitionBit("ro", 1, false)).
				Add(ops.PragmaRepeatedMeasurement("ro", 10, nil)),
		},
		{
			"measure_into_undeclared",
			circuit.New().Add(ops.MeasureQubit(0, "ro", 0)),
		},
		{
			"measure_index_out_of_range",
			circuit.New().
				Add(ops.DefinitionBit("ro", 1, true)).
				Add(ops.MeasureQubit(0, "ro", 1)),
		},
		{
			"repetitions_not_positive",
			circuit.New().
				Add(ops.DefinitionBit("ro", 1, true)).
				Add(ops.PragmaRepeatedMeasurement("ro", 0, nil)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, meta, err := convert.ToQiskit(tt.c)
			assert.Nil(t, out)
			assert.Nil(t, meta)
			var invalid *convert.InvalidParameterError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestNegativeQubitIndex(t *testing.T) {
	tests := []struct {
		name string
		c    *circuit.Circuit
	}{
		{"single_qubit_gate", circuit.New().Add(ops.Hadamard(-1))},
		{"two_qubit_gate", circuit.New().Add(ops.CNOT(0, -2))},
		{
			"mapped_measurement",
			circuit.New().
				Add(ops.DefinitionBit("ro", 1, true)).
				Add(ops.PragmaRepeatedMeasurement("ro", 10, map[int]int{-1: 0})),
		},
		{"sleep", circuit.New().Add(ops.PragmaSleep([]int{0, -3}, 0.01))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, meta, err := convert.ToQiskit(tt.c)
			assert.Nil(t, out)
			assert.Nil(t, meta)
			var invalid *convert.InvalidParameterError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Reason, "negative")
		})
	}
}

func TestDeterministic(t *testing.T) {
	c := circuit.New()
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.Hadamard(0))
	c.Add(ops.CNOT(0, 1))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 100, map[int]int{1: 0, 0: 1}))

	first, firstMeta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	second, secondMeta, err := convert.ToQiskit(c)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.Equal(t, firstMeta.Measurements, secondMeta.Measurements)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c := circuit.New()
	c.Add(ops.Hadamard(0))
	_, _, err := convert.ToQiskit(c, convert.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "translated circuit")
	assert.Contains(t, buf.String(), `"instructions":1`)
}

func TestToQiskitBatch(t *testing.T) {
	first := circuit.New().Add(ops.Hadamard(0))
	second := circuit.New().Add(ops.PauliX(1))
	third := circuit.New().
		Add(ops.DefinitionBit("ro", 1, true)).
		Add(ops.PragmaRepeatedMeasurement("ro", 25, nil))

	results, err := convert.ToQiskitBatch(context.Background(), []*circuit.Circuit{first, second, third})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "h", results[0].Circuit.Instructions()[0].Name)
	assert.Equal(t, "x", results[1].Circuit.Instructions()[0].Name)
	assert.True(t, results[2].Metadata.Contains("ro", 25, nil))
}

func TestToQiskitBatchPropagatesError(t *testing.T) {
	good := circuit.New().Add(ops.Hadamard(0))
	bad := circuit.New().Add(ops.Operation{Kind: ops.Kind(250)})

	results, err := convert.ToQiskitBatch(context.Background(), []*circuit.Circuit{good, bad})
	assert.Nil(t, results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit 1")
	var unsupported *convert.UnsupportedOperationError
	assert.True(t, errors.As(err, &unsupported))
}
