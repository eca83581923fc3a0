// Package config loads translation options from a TOML file, for callers
// that drive conversions from configuration rather than code.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"quanta/convert"
	"quanta/qasm"
)

// Options is the TOML-loadable option set.
type Options struct {
	// QubitRegisterName overrides the synthesized qubit register name.
	QubitRegisterName string `toml:"qubit_register_name"`
	// QASMVersion is written into the QASM program header.
	QASMVersion string `toml:"qasm_version"`
	// Include is the gate library referenced by the QASM header.
	Include string `toml:"include"`
	// OutputDir is where QASM file exports are written.
	OutputDir string `toml:"output_dir"`
	// Overwrite allows QASM file exports to replace existing files.
	Overwrite bool `toml:"overwrite"`
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		QubitRegisterName: qasm.DefaultQubitRegisterName,
		QASMVersion:       qasm.DefaultQASMVersion,
		Include:           qasm.DefaultInclude,
		OutputDir:         ".",
	}
}

// Load reads options from a TOML file. Keys that are absent keep their
// default values; unknown keys are an error.
func Load(path string) (Options, error) {
	opts := Default()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return opts, nil
}

// ConvertOptions expresses the loaded options for convert.ToQiskit.
func (o Options) ConvertOptions() []convert.Option {
	var out []convert.Option
	if o.QubitRegisterName != "" {
		out = append(out, convert.WithQubitRegisterName(o.QubitRegisterName))
	}
	return out
}

// Backend builds a QASM backend honoring the loaded register name,
// language version and include library.
func (o Options) Backend() *qasm.Backend {
	b := qasm.NewBackend(o.QubitRegisterName)
	if o.QASMVersion != "" {
		b.QASMVersion = o.QASMVersion
	}
	if o.Include != "" {
		b.Include = o.Include
	}
	return b
}
