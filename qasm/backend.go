package qasm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quanta/circuit"
)

// DefaultQubitRegisterName is used when a backend is created without an
// explicit register name.
const DefaultQubitRegisterName = "q"

// DefaultQASMVersion is the language version written into the program
// header. Only 2.0 statements are ever emitted.
const DefaultQASMVersion = "2.0"

// DefaultInclude is the standard gate library referenced by the header.
const DefaultInclude = "qelib1.inc"

// Backend renders whole circuits as OpenQASM programs. Zero-value fields
// fall back to the defaults above.
type Backend struct {
	QubitRegisterName string
	QASMVersion       string
	Include           string
}

// NewBackend returns a backend. An empty qubitRegisterName selects the
// default.
func NewBackend(qubitRegisterName string) *Backend {
	if qubitRegisterName == "" {
		qubitRegisterName = DefaultQubitRegisterName
	}
	return &Backend{
		QubitRegisterName: qubitRegisterName,
		QASMVersion:       DefaultQASMVersion,
		Include:           DefaultInclude,
	}
}

// CircuitToQASMStr renders the circuit as a complete QASM 2.0 program:
// version header, qelib include, a blank line, the qubit register sized
// to the circuit (minimum one qubit), then one line per translated
// statement.
func (b *Backend) CircuitToQASMStr(c *circuit.Circuit) (string, error) {
	lines, err := CallCircuit(c.Operations(), b.QubitRegisterName)
	if err != nil {
		return "", err
	}
	size := c.MaxQubit() + 1
	if size < 1 {
		size = 1
	}
	version := b.QASMVersion
	if version == "" {
		version = DefaultQASMVersion
	}
	include := b.Include
	if include == "" {
		include = DefaultInclude
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "OPENQASM %s;\n", version)
	fmt.Fprintf(&sb, "include %q;\n", include)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "qreg %s[%d];\n", b.QubitRegisterName, size)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// CircuitToQASMFile writes the rendered program to dir/filename.qasm.
// Without overwrite, an existing file is an error.
func (b *Backend) CircuitToQASMFile(c *circuit.Circuit, dir, filename string, overwrite bool) error {
	program, err := b.CircuitToQASMStr(c)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filename+".qasm")
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	return os.WriteFile(path, []byte(program), 0o644)
}
