package convert

import (
	"fmt"
	"strconv"

	"quanta/circuit"
	"quanta/ops"
	"quanta/qiskit"
)

// registerSet is the result of register synthesis: the single qubit
// register, the output classical registers in declaration order, and the
// full declaration table used to resolve readout references.
type registerSet struct {
	qreg     qiskit.QuantumRegister
	cregs    []qiskit.ClassicalRegister
	declared map[string]declaration
}

type declaration struct {
	size     int
	isOutput bool
}

// synthesizeRegisters derives the target registers from the full
// operation sequence. The qubit register is sized to one more than the
// highest referenced qubit index (minimum 1) and named qubitRegisterName.
// One classical register is materialized per output bit definition, in
// declaration order. Re-declaring a name with the same size is
// idempotent; a conflicting size fails. Negative qubit indices are
// rejected so every instruction stays inside the synthesized register.
func synthesizeRegisters(c *circuit.Circuit, qubitRegisterName string) (*registerSet, error) {
	size := c.MaxQubit() + 1
	if size < 1 {
		size = 1
	}
	rs := &registerSet{
		qreg:     qiskit.QuantumRegister{Name: qubitRegisterName, Size: size},
		declared: make(map[string]declaration),
	}
	for _, op := range c.Operations() {
		for _, q := range op.InvolvedQubits() {
			if q < 0 {
				return nil, &InvalidParameterError{
					Kind:   op.Kind,
					Reason: fmt.Sprintf("qubit index %d is negative", q),
				}
			}
		}
		if op.Kind != ops.KindDefinitionBit {
			continue
		}
		def := op.Def
		prev, seen := rs.declared[def.Name]
		if seen {
			if prev.size != def.Length {
				return nil, &DuplicateRegisterError{Name: def.Name, Size: def.Length, Previous: prev.size}
			}
			if prev.isOutput || !def.IsOutput {
				continue
			}
		}
		rs.declared[def.Name] = declaration{size: def.Length, isOutput: def.IsOutput || (seen && prev.isOutput)}
		if def.IsOutput {
			rs.cregs = append(rs.cregs, qiskit.ClassicalRegister{Name: def.Name, Size: def.Length})
		}
	}
	return rs, nil
}

// outputRegister resolves a readout register reference. It fails when the
// name was never declared or was declared without the output flag, since
// only output registers exist in the translated circuit.
func (rs *registerSet) outputRegister(kind ops.Kind, name string) (qiskit.ClassicalRegister, error) {
	decl, ok := rs.declared[name]
	if !ok {
		return qiskit.ClassicalRegister{}, &InvalidParameterError{
			Kind:   kind,
			Reason: "readout register " + strconv.Quote(name) + " is not declared",
		}
	}
	if !decl.isOutput {
		return qiskit.ClassicalRegister{}, &InvalidParameterError{
			Kind:   kind,
			Reason: "readout register " + strconv.Quote(name) + " is not an output register",
		}
	}
	return qiskit.ClassicalRegister{Name: name, Size: decl.size}, nil
}
