// Package circuit holds the hardware-agnostic source circuit: an ordered,
// append-only sequence of operations over qubit indices and named
// classical-bit registers. The circuit owns no registers itself; registers
// are implied by definition operations and by the qubit indices in use.
package circuit

import (
	"quanta/ops"
)

// Circuit is an ordered sequence of operations.
type Circuit struct {
	operations []ops.Operation
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Add appends an operation and returns the circuit for chaining.
func (c *Circuit) Add(op ops.Operation) *Circuit {
	c.operations = append(c.operations, op)
	return c
}

// Operations returns the operations in append order. The returned slice
// is owned by the circuit and must not be modified.
func (c *Circuit) Operations() []ops.Operation {
	return c.operations
}

// Len returns the number of operations.
func (c *Circuit) Len() int {
	return len(c.operations)
}

// MaxQubit returns the highest qubit index referenced by any operation,
// or -1 when no operation references a qubit.
func (c *Circuit) MaxQubit() int {
	maxQubit := -1
	for _, op := range c.operations {
		for _, q := range op.InvolvedQubits() {
			if q > maxQubit {
				maxQubit = q
			}
		}
	}
	return maxQubit
}
