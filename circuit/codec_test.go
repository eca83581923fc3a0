package circuit

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"quanta/ops"
)

// fullCircuit touches every operation kind once.
func fullCircuit() *Circuit {
	c := New()
	c.Add(ops.Hadamard(0))
	c.Add(ops.PauliX(1))
	c.Add(ops.PauliY(0))
	c.Add(ops.PauliZ(0))
	c.Add(ops.SGate(0))
	c.Add(ops.TGate(0))
	c.Add(ops.SqrtPauliX(1))
	c.Add(ops.InvSqrtPauliX(1))
	c.Add(ops.RotateX(0, 0.1))
	c.Add(ops.RotateY(0, -0.2))
	c.Add(ops.RotateZ(1, 0.3))
	c.Add(ops.PhaseShiftState1(0, 0.4))
	c.Add(ops.SingleQubitGate(0, 0.5, 0.5, 0.5, 0.5))
	c.Add(ops.CNOT(0, 1))
	c.Add(ops.ControlledPauliY(1, 0))
	c.Add(ops.ControlledPauliZ(0, 1))
	c.Add(ops.ControlledPhaseShift(0, 1, 0.5))
	c.Add(ops.SWAP(0, 1))
	c.Add(ops.ISwap(0, 1))
	c.Add(ops.MolmerSorensenXX(0, 1))
	c.Add(ops.VariableMSXX(0, 1, 0.6))
	c.Add(ops.DefinitionBit("ro", 2, true))
	c.Add(ops.DefinitionBit("tmp", 1, false))
	c.Add(ops.MeasureQubit(0, "ro", 0))
	c.Add(ops.PragmaSetStateVector([]complex128{complex(0, 1), 0, 0, 0}))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 100, map[int]int{0: 1, 1: 0}))
	c.Add(ops.PragmaRepeatedMeasurement("ro", 100, nil))
	c.Add(ops.PragmaActiveReset(0))
	c.Add(ops.PragmaSleep([]int{0, 1}, 0.001))
	c.Add(ops.PragmaGlobalPhase(0.5))
	c.Add(ops.PragmaStopParallelBlock([]int{0}))
	c.Add(ops.PragmaStartDecompositionBlock([]int{0, 1}))
	c.Add(ops.PragmaStopDecompositionBlock([]int{1}))
	c.Add(ops.PragmaSetNumberOfMeasurements(10, "ro"))
	c.Add(ops.InputSymbolic("theta", 1.5))
	return c
}

func TestMsgpackRoundTrip(t *testing.T) {
	original := fullCircuit()

	var buf bytes.Buffer
	if err := EncodeMsgpack(&buf, original); err != nil {
		t.Fatalf("EncodeMsgpack: %v", err)
	}
	decoded, err := DecodeMsgpack(&buf)
	if err != nil {
		t.Fatalf("DecodeMsgpack: %v", err)
	}
	if !reflect.DeepEqual(original.Operations(), decoded.Operations()) {
		t.Error("decoded circuit differs from original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := fullCircuit()

	data, err := ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	decoded, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !reflect.DeepEqual(original.Operations(), decoded.Operations()) {
		t.Error("decoded circuit differs from original")
	}
}

func TestJSONKnownForm(t *testing.T) {
	c := New().Add(ops.Hadamard(0))
	data, err := ToJSON(c)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	for _, fragment := range []string{`"schema":1`, `"kind":"Hadamard"`, `"qubits":[0]`} {
		if !strings.Contains(string(data), fragment) {
			t.Errorf("JSON %s missing fragment %s", data, fragment)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"bad_schema", `{"schema":99,"operations":[]}`},
		{"unknown_kind", `{"schema":1,"operations":[{"kind":"Bogus"}]}`},
		{"wrong_arity", `{"schema":1,"operations":[{"kind":"Hadamard","qubits":[0,1]}]}`},
		{"missing_params", `{"schema":1,"operations":[{"kind":"RotateX","qubits":[0]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tt.json)); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}
