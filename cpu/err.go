package cpu

import (
	"errors"

	"github.com/ezrec/rm64/i18n"
)

var f = i18n.From

var (
	// Fetch/dispatch errors.
	ErrDoubleFault   = errors.New(f("double fault"))
	ErrOutOfBounds   = errors.New(f("physical access out of bounds"))
	ErrExternalRange = errors.New(f("external interrupt code out of hardware range"))

	// Unit-level errors, joined with the *Interrupt the unit also
	// raises so callers can errors.Is against the general category
	// without losing errors.As access to the specific *Interrupt.
	ErrOpcodeUnknown = errors.New(f("unknown opcode"))
	ErrOpcodeStack   = errors.New(f("stack"))
	ErrOpcodeAlu     = errors.New(f("alu"))
	ErrOpcodePriv    = errors.New(f("privileged"))
	ErrOpcodeInt     = errors.New(f("software interrupt code out of range"))

	ErrStackEmpty = errors.New(f("stack empty"))
)

// ErrBadInst decorates a decode/dispatch error with the offending word
// and its decoded form, mirroring the teacher's ErrOpcode type.
type ErrBadInst struct {
	Word uint32
	Inst Inst
	Err  error
}

func (e *ErrBadInst) Error() string {
	return f("bad instruction %#08x (%v): %v", e.Word, e.Inst.Op, e.Err)
}

func (e *ErrBadInst) Unwrap() error {
	return e.Err
}
