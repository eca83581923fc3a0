package convert

import (
	"fmt"

	"quanta/ops"
)

// UnsupportedOperationError reports a source operation kind that has no
// translation rule in the named backend. The whole pass aborts; no
// partial circuit is returned.
type UnsupportedOperationError struct {
	Backend string
	Kind    ops.Kind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %s not supported by the %s backend", e.Kind, e.Backend)
}

// DuplicateRegisterError reports two definitions of the same register
// name with conflicting sizes.
type DuplicateRegisterError struct {
	Name     string
	Size     int
	Previous int
}

func (e *DuplicateRegisterError) Error() string {
	return fmt.Sprintf("register %q redefined with size %d (previously %d)", e.Name, e.Size, e.Previous)
}

// InvalidParameterError reports a malformed gate or pragma parameter.
type InvalidParameterError struct {
	Kind   ops.Kind
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: invalid parameter: %s", e.Kind, e.Reason)
}
