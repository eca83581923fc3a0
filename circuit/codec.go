package circuit

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"quanta/ops"
)

// Current schema version - increment when the wire format changes.
const codecSchemaVersion uint16 = 1

// payload is the serialized form of a circuit.
type payload struct {
	Schema     uint16          `json:"schema" msgpack:"schema"`
	Operations []wireOperation `json:"operations" msgpack:"operations"`
}

// wireOperation is the flattened wire form shared by the msgpack and JSON
// codecs. Complex amplitudes travel as [re, im] pairs because neither
// format carries complex numbers natively.
type wireOperation struct {
	Kind        string       `json:"kind" msgpack:"kind"`
	Qubits      []int        `json:"qubits,omitempty" msgpack:"qubits,omitempty"`
	Params      []float64    `json:"params,omitempty" msgpack:"params,omitempty"`
	Register    string       `json:"register,omitempty" msgpack:"register,omitempty"`
	Size        int64        `json:"size,omitempty" msgpack:"size,omitempty"`
	IsOutput    bool         `json:"is_output,omitempty" msgpack:"is_output,omitempty"`
	BitIndex    int64        `json:"bit_index,omitempty" msgpack:"bit_index,omitempty"`
	Repetitions int64        `json:"repetitions,omitempty" msgpack:"repetitions,omitempty"`
	Mapping     map[int]int  `json:"mapping,omitempty" msgpack:"mapping,omitempty"`
	Amplitudes  [][2]float64 `json:"amplitudes,omitempty" msgpack:"amplitudes,omitempty"`
	Symbol      string       `json:"symbol,omitempty" msgpack:"symbol,omitempty"`
}

// EncodeMsgpack writes the circuit to w in the versioned msgpack form.
func EncodeMsgpack(w io.Writer, c *Circuit) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(toPayload(c))
}

// DecodeMsgpack reads a circuit previously written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) (*Circuit, error) {
	dec := msgpack.NewDecoder(r)
	var p payload
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return fromPayload(&p)
}

// ToJSON renders the circuit in the JSON text form.
func ToJSON(c *Circuit) ([]byte, error) {
	return json.Marshal(toPayload(c))
}

// FromJSON parses a circuit previously rendered by ToJSON.
func FromJSON(data []byte) (*Circuit, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return fromPayload(&p)
}

func toPayload(c *Circuit) *payload {
	wire := make([]wireOperation, 0, c.Len())
	for _, op := range c.Operations() {
		wire = append(wire, toWire(op))
	}
	return &payload{Schema: codecSchemaVersion, Operations: wire}
}

func fromPayload(p *payload) (*Circuit, error) {
	if p.Schema != codecSchemaVersion {
		return nil, fmt.Errorf("unsupported circuit schema %d (want %d)", p.Schema, codecSchemaVersion)
	}
	c := New()
	for i, w := range p.Operations {
		op, err := fromWire(w)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		c.Add(op)
	}
	return c, nil
}

func toWire(op ops.Operation) wireOperation {
	w := wireOperation{Kind: op.Kind.String()}
	switch op.Kind {
	case ops.KindHadamard, ops.KindPauliX, ops.KindPauliY, ops.KindPauliZ,
		ops.KindSGate, ops.KindTGate, ops.KindSqrtPauliX, ops.KindInvSqrtPauliX,
		ops.KindPragmaActiveReset:
		w.Qubits = []int{op.Single.Qubit}
	case ops.KindRotateX, ops.KindRotateY, ops.KindRotateZ, ops.KindPhaseShiftState1:
		w.Qubits = []int{op.Rotation.Qubit}
		w.Params = []float64{op.Rotation.Theta}
	case ops.KindSingleQubitGate:
		w.Qubits = []int{op.Matrix.Qubit}
		w.Params = []float64{op.Matrix.AlphaR, op.Matrix.AlphaI, op.Matrix.BetaR, op.Matrix.BetaI}
	case ops.KindCNOT, ops.KindControlledPauliY, ops.KindControlledPauliZ,
		ops.KindSWAP, ops.KindISwap, ops.KindMolmerSorensenXX:
		w.Qubits = []int{op.Two.Control, op.Two.Target}
	case ops.KindControlledPhaseShift, ops.KindVariableMSXX:
		w.Qubits = []int{op.Two.Control, op.Two.Target}
		w.Params = []float64{op.Two.Theta}
	case ops.KindDefinitionBit:
		w.Register = op.Def.Name
		w.Size = int64(op.Def.Length)
		w.IsOutput = op.Def.IsOutput
	case ops.KindMeasureQubit:
		w.Qubits = []int{op.Measure.Qubit}
		w.Register = op.Measure.Readout
		w.BitIndex = int64(op.Measure.ReadoutIndex)
	case ops.KindPragmaSetStateVector:
		w.Amplitudes = make([][2]float64, len(op.State.Amplitudes))
		for i, a := range op.State.Amplitudes {
			w.Amplitudes[i] = [2]float64{real(a), imag(a)}
		}
	case ops.KindPragmaRepeatedMeasurement:
		w.Register = op.Repeated.Readout
		w.Repetitions = int64(op.Repeated.Repetitions)
		w.Mapping = op.Repeated.QubitMapping
	case ops.KindPragmaSleep:
		w.Qubits = op.Sleep.Qubits
		w.Params = []float64{op.Sleep.Duration}
	case ops.KindPragmaGlobalPhase:
		w.Params = []float64{op.Phase.Phase}
	case ops.KindPragmaStopParallelBlock, ops.KindPragmaStartDecompositionBlock,
		ops.KindPragmaStopDecompositionBlock:
		w.Qubits = op.Block.Qubits
	case ops.KindPragmaSetNumberOfMeasurements:
		w.Register = op.NumMeas.Readout
		w.Repetitions = int64(op.NumMeas.Number)
	case ops.KindInputSymbolic:
		w.Symbol = op.Symbolic.Name
		w.Params = []float64{op.Symbolic.Value}
	}
	return w
}

func fromWire(w wireOperation) (ops.Operation, error) {
	kind, known := ops.KindFromName(w.Kind)
	if !known {
		return ops.Operation{}, fmt.Errorf("unknown operation kind %q", w.Kind)
	}
	switch kind {
	case ops.KindHadamard, ops.KindPauliX, ops.KindPauliY, ops.KindPauliZ,
		ops.KindSGate, ops.KindTGate, ops.KindSqrtPauliX, ops.KindInvSqrtPauliX,
		ops.KindPragmaActiveReset:
		if err := wantArity(w, 1, 0); err != nil {
			return ops.Operation{}, err
		}
		return ops.Operation{Kind: kind, Single: ops.SingleQubitOp{Qubit: w.Qubits[0]}}, nil
	case ops.KindRotateX, ops.KindRotateY, ops.KindRotateZ, ops.KindPhaseShiftState1:
		if err := wantArity(w, 1, 1); err != nil {
			return ops.Operation{}, err
		}
		return ops.Operation{Kind: kind, Rotation: ops.RotationOp{Qubit: w.Qubits[0], Theta: w.Params[0]}}, nil
	case ops.KindSingleQubitGate:
		if err := wantArity(w, 1, 4); err != nil {
			return ops.Operation{}, err
		}
		return ops.Operation{Kind: kind, Matrix: ops.MatrixGateOp{
			Qubit:  w.Qubits[0],
			AlphaR: w.Params[0],
			AlphaI: w.Params[1],
			BetaR:  w.Params[2],
			BetaI:  w.Params[3],
		}}, nil
	case ops.KindCNOT, ops.KindControlledPauliY, ops.KindControlledPauliZ,
		ops.KindSWAP, ops.KindISwap, ops.KindMolmerSorensenXX:
		if err := wantArity(w, 2, 0); err != nil {
			return ops.Operation{}, err
		}
		return ops.Operation{Kind: kind, Two: ops.TwoQubitOp{Control: w.Qubits[0], Target: w.Qubits[1]}}, nil
	case ops.KindControlledPhaseShift, ops.KindVariableMSXX:
		if err := wantArity(w, 2, 1); err != nil {
			return ops.Operation{}, err
		}
		return ops.Operation{Kind: kind, Two: ops.TwoQubitOp{Control: w.Qubits[0], Target: w.Qubits[1], Theta: w.Params[0]}}, nil
	case ops.KindDefinitionBit:
		length, err := safecast.Conv[int](w.Size)
		if err != nil {
			return ops.Operation{}, fmt.Errorf("%s: register size: %w", kind, err)
		}
		return ops.DefinitionBit(w.Register, length, w.IsOutput), nil
	case ops.KindMeasureQubit:
		if err := wantArity(w, 1, 0); err != nil {
			return ops.Operation{}, err
		}
		bitIndex, err := safecast.Conv[int](w.BitIndex)
		if err != nil {
			return ops.Operation{}, fmt.Errorf("%s: bit index: %w", kind, err)
		}
		return ops.MeasureQubit(w.Qubits[0], w.Register, bitIndex), nil
	case ops.KindPragmaSetStateVector:
		amps := make([]complex128, len(w.Amplitudes))
		for i, pair := range w.Amplitudes {
			amps[i] = complex(pair[0], pair[1])
		}
		return ops.PragmaSetStateVector(amps), nil
	case ops.KindPragmaRepeatedMeasurement:
		repetitions, err := safecast.Conv[int](w.Repetitions)
		if err != nil {
			return ops.Operation{}, fmt.Errorf("%s: repetitions: %w", kind, err)
		}
		return ops.PragmaRepeatedMeasurement(w.Register, repetitions, w.Mapping), nil
	case ops.KindPragmaSleep:
		if len(w.Params) != 1 {
			return ops.Operation{}, fmt.Errorf("%s: want 1 parameter, have %d", kind, len(w.Params))
		}
		return ops.PragmaSleep(w.Qubits, w.Params[0]), nil
	case ops.KindPragmaGlobalPhase:
		if len(w.Params) != 1 {
			return ops.Operation{}, fmt.Errorf("%s: want 1 parameter, have %d", kind, len(w.Params))
		}
		return ops.PragmaGlobalPhase(w.Params[0]), nil
	case ops.KindPragmaStopParallelBlock:
		return ops.PragmaStopParallelBlock(w.Qubits), nil
	case ops.KindPragmaStartDecompositionBlock:
		return ops.PragmaStartDecompositionBlock(w.Qubits), nil
	case ops.KindPragmaStopDecompositionBlock:
		return ops.PragmaStopDecompositionBlock(w.Qubits), nil
	case ops.KindPragmaSetNumberOfMeasurements:
		number, err := safecast.Conv[int](w.Repetitions)
		if err != nil {
			return ops.Operation{}, fmt.Errorf("%s: number: %w", kind, err)
		}
		return ops.PragmaSetNumberOfMeasurements(number, w.Register), nil
	case ops.KindInputSymbolic:
		if len(w.Params) != 1 {
			return ops.Operation{}, fmt.Errorf("%s: want 1 parameter, have %d", kind, len(w.Params))
		}
		return ops.InputSymbolic(w.Symbol, w.Params[0]), nil
	default:
		return ops.Operation{}, fmt.Errorf("unknown operation kind %q", w.Kind)
	}
}

func wantArity(w wireOperation, qubits, params int) error {
	if len(w.Qubits) != qubits {
		return fmt.Errorf("%s: want %d qubit(s), have %d", w.Kind, qubits, len(w.Qubits))
	}
	if len(w.Params) != params {
		return fmt.Errorf("%s: want %d parameter(s), have %d", w.Kind, params, len(w.Params))
	}
	return nil
}
