// Package convert translates a source circuit into the target circuit
// representation plus a measurement-metadata record. The translation is a
// pure, deterministic, single forward pass: registers are synthesized
// from the full operation sequence first, then every operation is mapped
// to zero or more target instructions in program order. On any error the
// caller receives only the error, never a partially built circuit.
package convert

import (
	"github.com/rs/zerolog"

	"quanta/circuit"
	"quanta/qiskit"
)

type options struct {
	qubitRegisterName string
	logger            zerolog.Logger
}

// Option configures a single conversion.
type Option func(*options)

// WithQubitRegisterName overrides the name of the synthesized qubit
// register. It changes the name only, never the size or the classical
// registers.
func WithQubitRegisterName(name string) Option {
	return func(o *options) { o.qubitRegisterName = name }
}

// WithLogger attaches a logger for pass summaries. The default logger
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// ToQiskit translates the circuit. The returned target circuit and
// metadata are owned by the caller; two invocations never share state.
func ToQiskit(c *circuit.Circuit, opts ...Option) (*qiskit.QuantumCircuit, *Metadata, error) {
	o := options{
		qubitRegisterName: qiskit.DefaultQubitRegisterName,
		logger:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	rs, err := synthesizeRegisters(c, o.qubitRegisterName)
	if err != nil {
		return nil, nil, err
	}
	out := qiskit.NewWithRegisters(rs.qreg, rs.cregs...)
	meta := NewMetadata()

	for _, op := range c.Operations() {
		em, err := translateOperation(op, rs)
		if err != nil {
			return nil, nil, err
		}
		for _, in := range em.instructions {
			out.Append(in)
		}
		if em.metadata != nil {
			meta.record(em.metadata.register, em.metadata.info)
		}
	}

	o.logger.Debug().
		Int("operations", c.Len()).
		Int("instructions", len(out.Instructions())).
		Int("classicalRegisters", len(rs.cregs)).
		Str("qubitRegister", rs.qreg.Name).
		Int("qubits", rs.qreg.Size).
		Msg("translated circuit")
	return out, meta, nil
}
