// Package qiskit models the target circuit representation: named quantum
// and classical registers plus an append-only instruction list. The model
// mirrors the target ecosystem's own circuit type closely enough that
// structural equality here matches equality there.
package qiskit

// DefaultQubitRegisterName is the conventional name of an implicitly
// created quantum register.
const DefaultQubitRegisterName = "q"

// QuantumRegister is a named, fixed-size group of qubits. A circuit holds
// exactly one.
type QuantumRegister struct {
	Name string
	Size int
}

// ClassicalRegister is a named, fixed-size group of classical bits.
type ClassicalRegister struct {
	Name string
	Size int
}

// Clbit addresses a single bit inside a classical register.
type Clbit struct {
	Register string
	Index    int
}
