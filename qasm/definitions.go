package qasm

import (
	"fmt"

	"quanta/ops"
)

// gateDefinitions holds the QASM gate definitions for operations whose
// gate is not part of qelib1.inc, plus the basic rotations for targets
// that do not include the standard library.
var gateDefinitions = map[ops.Kind]string{
	ops.KindRotateX:           "gate rx(theta) a { u3(theta,-pi/2,pi/2) a; }\n",
	ops.KindRotateY:           "gate ry(theta) a { u3(theta,0,0) a; }\n",
	ops.KindRotateZ:           "gate rz(phi) a { u1(phi) a; }\n",
	ops.KindHadamard:          "gate h a { u2(0,pi) a; }\n",
	ops.KindCNOT:              "gate cx c,t { CX c,t; }\n",
	ops.KindISwap:             "gate iswap a,b { rx(pi/2) a; CX a,b; rx(-pi/2) a; ry(-pi/2) b; CX a,b; rx(-pi/2) a; }\n",
	ops.KindPragmaGlobalPhase: "gate gphase(theta) q { x q; u1(theta) q; x q; u1(theta) q; }\n",
}

// GateDefinition returns the QASM gate definition for an operation kind,
// or an error when no definition is known.
func GateDefinition(kind ops.Kind) (string, error) {
	def, ok := gateDefinitions[kind]
	if !ok {
		return "", fmt.Errorf("no QASM gate definition for operation %s", kind)
	}
	return def, nil
}
